package testsupport

// Classifier is a canned byte classifier for tests.
type Classifier struct {
	Label      string
	Confidence float64
}

func (c Classifier) Classify([]byte) (string, float64) {
	return c.Label, c.Confidence
}

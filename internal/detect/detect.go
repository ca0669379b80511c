package detect

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/saintfish/chardet"

	"subfix/internal/errdefs"
	"subfix/internal/logging"
	"subfix/internal/textenc"
)

// Classifier reports the most likely character encoding of raw bytes along
// with a confidence in [0, 1]. An empty label means nothing was detected and
// is treated like zero confidence.
type Classifier interface {
	Classify(data []byte) (label string, confidence float64)
}

type chardetClassifier struct{}

// NewClassifier returns the default byte-statistics classifier.
func NewClassifier() Classifier {
	return chardetClassifier{}
}

func (chardetClassifier) Classify(data []byte) (string, float64) {
	if len(data) == 0 {
		return "", 0
	}
	result, err := chardet.NewTextDetector().DetectBest(data)
	if err != nil || result == nil {
		return "", 0
	}
	confidence := float64(result.Confidence) / 100
	if confidence > 1 {
		confidence = 1
	}
	return result.Charset, confidence
}

// Oracle decides the source encoding of subtitle files: classifier verdicts
// above the confidence threshold are accepted (UTF-8 labels normalized),
// everything else falls back to a fixed legacy encoding.
type Oracle struct {
	classifier Classifier
	threshold  float64
	fallback   string
	logger     *slog.Logger
}

// NewOracle constructs an oracle. A nil classifier selects the default one.
func NewOracle(classifier Classifier, threshold float64, fallback string, logger *slog.Logger) *Oracle {
	if classifier == nil {
		classifier = NewClassifier()
	}
	if fallback == "" {
		fallback = textenc.CP1256
	}
	return &Oracle{
		classifier: classifier,
		threshold:  threshold,
		fallback:   fallback,
		logger:     logging.NewComponentLogger(logger, "detect"),
	}
}

// Detect passes raw bytes through the classifier unchanged. It never fails;
// empty input yields no label and zero confidence.
func (o *Oracle) Detect(data []byte) (label string, confidence float64) {
	return o.classifier.Classify(data)
}

// Resolve reads the file and decides its encoding. Detected UTF-8 at or above
// the threshold is normalized to the canonical label, any other label at or
// above the threshold is returned verbatim, and everything else maps to the
// fallback encoding.
func (o *Oracle) Resolve(filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", errdefs.Wrap(errdefs.ErrNotFound, "detect", "read file",
			fmt.Sprintf("cannot read %q", filePath), err)
	}

	label, confidence := o.Detect(data)
	if label != "" && confidence >= o.threshold {
		lower := strings.ToLower(label)
		if strings.Contains(lower, "utf8") || strings.Contains(lower, "utf-8") {
			label = textenc.UTF8
		}
		o.logger.Debug("accepted detected encoding",
			logging.Args(
				logging.String(logging.FieldFile, filePath),
				logging.String("encoding", label),
				logging.Float64("confidence", confidence),
			)...)
		return label, nil
	}

	o.logger.Debug("falling back to default encoding",
		logging.Args(
			logging.String(logging.FieldFile, filePath),
			logging.String("detected", label),
			logging.Float64("confidence", confidence),
			logging.String("fallback", o.fallback),
		)...)
	return o.fallback, nil
}

package errdefs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation    = errors.New("validation error")
	ErrConfiguration = errors.New("configuration error")
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrEncoding      = errors.New("encoding error")
)

// Wrap builds an error message that includes component context while tagging
// it with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrEncoding
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// IsDomain reports whether err carries one of the taxonomy markers. Errors
// without a marker are treated as unexpected infrastructure failures by the
// batch orchestrator.
func IsDomain(err error) bool {
	if err == nil {
		return false
	}
	for _, marker := range []error{ErrValidation, ErrConfiguration, ErrNotFound, ErrAlreadyExists, ErrEncoding} {
		if errors.Is(err, marker) {
			return true
		}
	}
	var batchErr *BatchError
	return errors.As(err, &batchErr)
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "conversion failure"
	}
	return strings.Join(parts, ": ")
}

// BatchError aggregates every per-file failure recorded during a batch run.
// Failed maps each source file path to the message of the error that stopped
// its conversion. The map is never mutated after the batch completes.
type BatchError struct {
	Failed map[string]string
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("%d subtitle file(s) failed to convert", len(e.Failed))
}

// Count returns the number of files that failed.
func (e *BatchError) Count() int {
	return len(e.Failed)
}

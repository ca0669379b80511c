package converter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"subfix/internal/config"
	"subfix/internal/detect"
	"subfix/internal/errdefs"
	"subfix/internal/fileutil"
	"subfix/internal/logging"
	"subfix/internal/naming"
	"subfix/internal/textenc"
)

// Converter re-encodes subtitle files one at a time or in batches. It holds
// only configuration and collaborators; the filesystem carries all state.
type Converter struct {
	cfg    *config.Config
	oracle *detect.Oracle
	logger *slog.Logger
}

// New constructs a converter using the default byte classifier.
func New(cfg *config.Config, logger *slog.Logger) *Converter {
	return NewWithClassifier(cfg, nil, logger)
}

// NewWithClassifier allows injecting the byte classifier (used in tests).
func NewWithClassifier(cfg *config.Config, classifier detect.Classifier, logger *slog.Logger) *Converter {
	if cfg == nil {
		defaults := config.Default()
		cfg = &defaults
	}
	oracle := detect.NewOracle(classifier, cfg.Conversion.ConfidenceThreshold, cfg.Conversion.FallbackEncoding, logger)
	return &Converter{
		cfg:    cfg,
		oracle: oracle,
		logger: logging.NewComponentLogger(logger, "converter"),
	}
}

// ConvertFile re-encodes one subtitle file and writes the result to a
// collision-free destination, which is returned. The whole file is decoded in
// memory before anything is written, so a failure leaves no partial output.
func (c *Converter) ConvertFile(ctx context.Context, sourcePath string, req Request) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !filepath.IsAbs(sourcePath) {
		return "", errdefs.Wrap(errdefs.ErrValidation, "converter", "convert file",
			fmt.Sprintf("source path %q must be absolute", sourcePath), nil)
	}
	if !fileutil.IsRegularFile(sourcePath) {
		return "", errdefs.Wrap(errdefs.ErrNotFound, "converter", "convert file",
			fmt.Sprintf("file %q does not exist", sourcePath), nil)
	}

	target, err := naming.Resolve(sourcePath, naming.Options{
		TargetDir:  req.TargetDir,
		BaseName:   req.TargetBaseName,
		Suffix:     req.Suffix,
		SlugLength: req.SlugLength,
	})
	if err != nil {
		return "", err
	}
	if err := fileutil.EnsureDir(filepath.Dir(target)); err != nil {
		return "", errdefs.Wrap(errdefs.ErrEncoding, "converter", "create target directory",
			fmt.Sprintf("file %q", sourcePath), err)
	}

	sourceEncoding := req.SourceEncoding
	if sourceEncoding == "" {
		sourceEncoding, err = c.oracle.Resolve(sourcePath)
		if err != nil {
			return "", err
		}
	}
	targetEncoding := req.TargetEncoding
	if targetEncoding == "" {
		targetEncoding = c.cfg.Conversion.TargetEncoding
	}

	raw, err := os.ReadFile(sourcePath)
	if err != nil {
		return "", errdefs.Wrap(errdefs.ErrEncoding, "converter", "read source",
			fmt.Sprintf("file %q", sourcePath), err)
	}
	text, err := textenc.Decode(raw, sourceEncoding)
	if err != nil {
		return "", errdefs.Wrap(errdefs.ErrEncoding, "converter", "decode source",
			fmt.Sprintf("file %q", sourcePath), err)
	}
	encoded, err := textenc.Encode(text, targetEncoding)
	if err != nil {
		return "", errdefs.Wrap(errdefs.ErrEncoding, "converter", "encode target",
			fmt.Sprintf("file %q", sourcePath), err)
	}
	if err := os.WriteFile(target, encoded, 0o644); err != nil {
		return "", errdefs.Wrap(errdefs.ErrEncoding, "converter", "write target",
			fmt.Sprintf("file %q", sourcePath), err)
	}

	c.logger.Info("converted file",
		logging.Args(
			logging.String(logging.FieldFile, sourcePath),
			logging.String(logging.FieldTarget, target),
			logging.String("from", sourceEncoding),
			logging.String("to", targetEncoding),
		)...)
	return target, nil
}

package config

import (
	"errors"
	"fmt"
	"strings"

	"subfix/internal/textenc"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateConversion(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateConversion() error {
	if c.Conversion.ConfidenceThreshold < 0 || c.Conversion.ConfidenceThreshold > 1 {
		return errors.New("conversion.confidence_threshold must be between 0 and 1")
	}
	if c.Conversion.SlugLength < 0 {
		return errors.New("conversion.slug_length must not be negative")
	}
	if strings.TrimSpace(c.Conversion.TargetEncoding) == "" {
		return errors.New("conversion.target_encoding must be set")
	}
	if !textenc.Supported(c.Conversion.TargetEncoding) {
		return fmt.Errorf("conversion.target_encoding: unknown encoding %q", c.Conversion.TargetEncoding)
	}
	if strings.TrimSpace(c.Conversion.FallbackEncoding) == "" {
		return errors.New("conversion.fallback_encoding must be set")
	}
	if !textenc.Supported(c.Conversion.FallbackEncoding) {
		return fmt.Errorf("conversion.fallback_encoding: unknown encoding %q", c.Conversion.FallbackEncoding)
	}
	if len(c.Conversion.Extensions) == 0 {
		return errors.New("conversion.extensions must list at least one extension")
	}
	for _, ext := range c.Conversion.Extensions {
		if strings.TrimSpace(ext) == "" {
			return errors.New("conversion.extensions must not contain blank entries")
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	return nil
}

package testsupport

import (
	"testing"

	"subfix/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config with repository defaults, applying any options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfg := config.Default()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return &cfg
}

// WithSlugLength overrides the default batch slug length.
func WithSlugLength(length int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Conversion.SlugLength = length
	}
}

// WithExtensions overrides the accepted subtitle extensions.
func WithExtensions(extensions ...string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Conversion.Extensions = extensions
	}
}

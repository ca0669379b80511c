package config

import "subfix/internal/textenc"

const (
	defaultConfidenceThreshold = 0.7
	defaultSlugLength          = 3
	defaultLogFormat           = "console"
	defaultLogLevel            = "info"
)

// Default returns a Config populated with repository defaults: convert to
// UTF-8, fall back to cp1256 when detection is inconclusive, and treat .srt
// files as subtitles.
func Default() Config {
	return Config{
		Conversion: Conversion{
			TargetEncoding:      textenc.UTF8,
			FallbackEncoding:    textenc.CP1256,
			ConfidenceThreshold: defaultConfidenceThreshold,
			Extensions:          []string{"srt"},
			SlugLength:          defaultSlugLength,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

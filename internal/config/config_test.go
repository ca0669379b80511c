package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"subfix/internal/config"
	"subfix/internal/textenc"
)

func TestDefaults(t *testing.T) {
	cfg := config.Default()
	if cfg.Conversion.TargetEncoding != textenc.UTF8 {
		t.Fatalf("target encoding = %q", cfg.Conversion.TargetEncoding)
	}
	if cfg.Conversion.FallbackEncoding != textenc.CP1256 {
		t.Fatalf("fallback encoding = %q", cfg.Conversion.FallbackEncoding)
	}
	if cfg.Conversion.ConfidenceThreshold != 0.7 {
		t.Fatalf("confidence threshold = %v", cfg.Conversion.ConfidenceThreshold)
	}
	if len(cfg.Conversion.Extensions) != 1 || cfg.Conversion.Extensions[0] != "srt" {
		t.Fatalf("extensions = %v", cfg.Conversion.Extensions)
	}
	if cfg.Conversion.SlugLength != 3 {
		t.Fatalf("slug length = %d", cfg.Conversion.SlugLength)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Fatal("file should not exist")
	}
	if resolved != path {
		t.Fatalf("resolved = %q, want %q", resolved, path)
	}
	if cfg.Conversion.FallbackEncoding != textenc.CP1256 {
		t.Fatalf("fallback = %q", cfg.Conversion.FallbackEncoding)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[conversion]
fallback_encoding = "windows-1251"
confidence_threshold = 0.8
extensions = ["srt", "sub"]
slug_length = 5

[logging]
format = "json"
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists {
		t.Fatal("file should exist")
	}
	if cfg.Conversion.FallbackEncoding != "windows-1251" {
		t.Fatalf("fallback = %q", cfg.Conversion.FallbackEncoding)
	}
	if cfg.Conversion.ConfidenceThreshold != 0.8 {
		t.Fatalf("threshold = %v", cfg.Conversion.ConfidenceThreshold)
	}
	if len(cfg.Conversion.Extensions) != 2 {
		t.Fatalf("extensions = %v", cfg.Conversion.Extensions)
	}
	// Unset sections keep their defaults.
	if cfg.Conversion.TargetEncoding != textenc.UTF8 {
		t.Fatalf("target = %q", cfg.Conversion.TargetEncoding)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("logging = %+v", cfg.Logging)
	}
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	cases := map[string]string{
		"bad threshold": "[conversion]\nconfidence_threshold = 1.5\n",
		"bad encoding":  "[conversion]\nfallback_encoding = \"nope-99\"\n",
		"bad slug":      "[conversion]\nslug_length = -1\n",
		"no extensions": "[conversion]\nextensions = []\n",
		"bad format":    "[logging]\nformat = \"xml\"\n",
	}
	for name, content := range cases {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write config: %v", err)
		}
		if _, _, _, err := config.Load(path); err == nil {
			t.Errorf("%s: expected validation error", name)
		}
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Fatal("sample should exist")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("sample must validate: %v", err)
	}
}

func TestExpandPathTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home dir: %v", err)
	}
	got, err := config.ExpandPath("~/subtitles")
	if err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}
	if !strings.HasPrefix(got, home) {
		t.Fatalf("ExpandPath = %q, want prefix %q", got, home)
	}
}

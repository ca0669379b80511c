package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// SampleSRT is a minimal ASCII subtitle fixture.
const SampleSRT = "1\n00:00:01,000 --> 00:00:02,000\nhello world\n"

// CP1256Sample is "سلام" encoded in cp1256.
var CP1256Sample = []byte{0xD3, 0xE1, 0xC7, 0xE3}

// WriteFile writes content to path, creating parent directories as needed.
func WriteFile(t testing.TB, path, content string) {
	t.Helper()
	WriteFileBytes(t, path, []byte(content))
}

// WriteFileBytes writes raw bytes to path, creating parent directories as
// needed.
func WriteFileBytes(t testing.TB, path string, data []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// ReadFile returns the contents of path.
func ReadFile(t testing.TB, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return data
}

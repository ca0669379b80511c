package textenc

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

const (
	// UTF8 is the canonical label for the default target encoding.
	UTF8 = "utf-8"
	// CP1256 is the default fallback for undetectable legacy subtitle files.
	CP1256 = "cp1256"
)

// Lookup resolves an encoding label (IANA or WHATWG style, e.g. "cp1256",
// "windows-1256", "UTF-16LE") to its implementation.
func Lookup(label string) (encoding.Encoding, error) {
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("unsupported encoding %q", label)
	}
	return enc, nil
}

// Supported reports whether label resolves to a known encoding.
func Supported(label string) bool {
	_, err := Lookup(label)
	return err == nil
}

// Decode converts data from the given encoding into a UTF-8 string.
func Decode(data []byte, label string) (string, error) {
	enc, err := Lookup(label)
	if err != nil {
		return "", err
	}
	decoded, _, err := transform.Bytes(enc.NewDecoder(), data)
	if err != nil {
		return "", fmt.Errorf("decode from %q: %w", label, err)
	}
	return string(decoded), nil
}

// Encode converts UTF-8 text into the given encoding. Runes the target
// encoding cannot represent yield an error rather than silent replacement.
func Encode(text string, label string) ([]byte, error) {
	enc, err := Lookup(label)
	if err != nil {
		return nil, err
	}
	encoded, _, err := transform.Bytes(enc.NewEncoder(), []byte(text))
	if err != nil {
		return nil, fmt.Errorf("encode to %q: %w", label, err)
	}
	return encoded, nil
}

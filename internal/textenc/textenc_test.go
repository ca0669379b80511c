package textenc_test

import (
	"bytes"
	"testing"

	"subfix/internal/textenc"
)

// "سلام" in cp1256.
var cp1256Salam = []byte{0xD3, 0xE1, 0xC7, 0xE3}

func TestDecodeCP1256(t *testing.T) {
	text, err := textenc.Decode(cp1256Salam, textenc.CP1256)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if text != "سلام" {
		t.Fatalf("decoded %q", text)
	}
}

func TestEncodeCP1256(t *testing.T) {
	data, err := textenc.Encode("سلام", textenc.CP1256)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !bytes.Equal(data, cp1256Salam) {
		t.Fatalf("encoded % x", data)
	}
}

func TestDecodeUTF8Passthrough(t *testing.T) {
	text, err := textenc.Decode([]byte("hello"), textenc.UTF8)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if text != "hello" {
		t.Fatalf("decoded %q", text)
	}
}

func TestLookupAcceptsAliases(t *testing.T) {
	for _, label := range []string{"cp1256", "windows-1256", "UTF-8", "utf8", "ISO-8859-1"} {
		if !textenc.Supported(label) {
			t.Fatalf("label %q should be supported", label)
		}
	}
}

func TestLookupRejectsUnknown(t *testing.T) {
	if textenc.Supported("definitely-not-an-encoding") {
		t.Fatal("bogus label should not be supported")
	}
	if _, err := textenc.Decode([]byte("x"), "definitely-not-an-encoding"); err == nil {
		t.Fatal("Decode with bogus label should fail")
	}
}

func TestEncodeUnmappableRuneFails(t *testing.T) {
	if _, err := textenc.Encode("日本語", textenc.CP1256); err == nil {
		t.Fatal("encoding CJK text to cp1256 should fail")
	}
}

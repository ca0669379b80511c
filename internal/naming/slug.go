package naming

import (
	"math/rand"
	"strings"
)

const slugAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RandomSlug returns a random alphanumeric string of the given length,
// lowercased. A non-positive length yields the empty string.
func RandomSlug(length int) string {
	if length <= 0 {
		return ""
	}
	b := make([]byte, length)
	for i := range b {
		b[i] = slugAlphabet[rand.Intn(len(slugAlphabet))]
	}
	return strings.ToLower(string(b))
}

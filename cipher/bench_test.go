package cipher_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/routecipher/cipher"
)

// BenchmarkEncode encodes a 256×256 grid filled from a repeated pangram.
// Complexity: O(W×H)
func BenchmarkEncode(b *testing.B) {
	text := strings.Repeat("the quick brown fox jumps over the lazy dog ", 2000)
	c := cipher.New(256, 256)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.Encode(text); err != nil {
			b.Fatalf("Encode failed: %v", err)
		}
	}
}

package pattern_test

import (
	"testing"

	"github.com/katalvlaran/markerdict/pattern"
)

// BenchmarkEnumerateAll16 builds the full 4×4 table (65536 rows).
// Complexity: O(2^n · n).
func BenchmarkEnumerateAll16(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = pattern.EnumerateAll(16)
	}
}

package dictionary_test

import (
	"testing"

	"github.com/katalvlaran/markerdict/dictionary"
)

// BenchmarkBuild9_Linear measures the reference scan on 3×3 markers.
// Complexity: O(2^n · |D|).
func BenchmarkBuild9_Linear(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = dictionary.Build(9)
	}
}

// BenchmarkBuild9_Canonical measures the keyed strategy on the same input.
// Complexity: O(2^n).
func BenchmarkBuild9_Canonical(b *testing.B) {
	opt := dictionary.WithStrategy(dictionary.StrategyCanonical)
	for i := 0; i < b.N; i++ {
		_, _ = dictionary.Build(9, opt)
	}
}

// File: dictionary/example_test.go
package dictionary_test

import (
	"fmt"

	"github.com/katalvlaran/markerdict/dictionary"
)

// ExampleBuild builds the 2×2 alphabet. Of the 16 patterns only three
// survive: every other one is symmetric under a half turn or is a rotation
// of an earlier entry.
func ExampleBuild() {
	d, _ := dictionary.Build(4)
	fmt.Print(d)

	// Output:
	// The number of markers in dictionary = 3
	// * *
	// * _
	//
	// * *
	// _ _
	//
	// * _
	// _ _
}

// ExampleBuildWithReport shows how the 512 3×3 patterns are classified.
func ExampleBuildWithReport() {
	_, rep, _ := dictionary.BuildWithReport(9, dictionary.WithStrategy(dictionary.StrategyCanonical))
	fmt.Println("evaluated:", rep.Evaluated)
	fmt.Println("symmetric:", rep.RejectedSymmetry)
	fmt.Println("duplicate:", rep.RejectedDuplicate)
	fmt.Println("accepted: ", rep.Accepted)

	// Output:
	// evaluated: 512
	// symmetric: 32
	// duplicate: 360
	// accepted:  120
}

// Command markergen builds rotation-distinct marker dictionaries, prints them
// to the console and renders them as printable PGM or PNG pages.
//
// Usage:
//
//	markergen build  --bits 9
//	markergen print  --bits 4
//	markergen render --bits 9 --out ./pages --marker-size 50 --rows 15 --cols 8
//	markergen stats  --bits 9 --min-black-regions 2
//	markergen config > markergen.yaml
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Package markerdict builds dictionaries of square black/white markers, the
// tag alphabets used for fiducial detection, such that no accepted marker
// equals one of its own 90° rotations and no two accepted markers are
// rotations of each other.
//
// Under the hood, everything is organized under these subpackages:
//
//	marker/      Cell, Marker, rotations, canonical form, Hamming distance
//	pattern/     every n-bit Black/White sequence in truth-table order
//	dictionary/  the Dictionary type and the two-rule Build algorithm
//	regions/     connected black/white regions of a marker (4/8-neighbour)
//	render/      grayscale pixel buffers for markers and pages, PGM encoding
//
// and one command, cmd/markergen, that prints and renders dictionaries.
//
// Quick ASCII example, the 2×2 dictionary (Build(4)):
//
//	#0     #1     #2
//	* *    * *    * _
//	* _    _ _    _ _
//
// Every other 2×2 pattern is either symmetric under a half turn or a
// rotation of one of these three.
//
//	go get github.com/katalvlaran/markerdict
package markerdict

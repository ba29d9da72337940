// SPDX-License-Identifier: MIT

package dictionary

import (
	"fmt"

	"github.com/katalvlaran/markerdict/marker"
	"github.com/katalvlaran/markerdict/pattern"
)

// Report summarizes one Build run. Evaluated always equals the sum of the
// four outcome counters; a limit stops the run before further evaluation.
type Report struct {
	Dim               int // marker side length, 0 for nBits == 0
	Evaluated         int // candidates examined
	RejectedSymmetry  int // equal to one of their own rotations
	RejectedFilter    int // refused by a WithFilter predicate
	RejectedDuplicate int // rotation-equivalent to an accepted entry
	Accepted          int // appended to the dictionary
}

// Build returns the dictionary of all nBits patterns that survive the two
// acceptance rules, in enumeration order. See BuildWithReport.
func Build(nBits int, opts ...Option) (*Dictionary, error) {
	d, _, err := BuildWithReport(nBits, opts...)

	return d, err
}

// BuildWithReport is Build plus per-outcome counters.
//
// Stage 1 (Validate): nBits == 0 returns an empty dictionary; otherwise nBits
// must be a perfect square (ErrNonSquareBits) within pattern.MaxBits.
// Stage 2 (Prepare): enumerate all 2^nBits patterns.
// Stage 3 (Execute): for each pattern in order, wrap it as a dim×dim marker,
// compute its four orientations and
//   - reject it if any two orientations are equal,
//   - reject it if a filter refuses it,
//   - reject it if an accepted entry equals any orientation,
//   - otherwise append it unrotated.
//
// Complexity: O(2^n · |D| · n) with StrategyLinear, O(2^n · n) with StrategyCanonical.
func BuildWithReport(nBits int, opts ...Option) (*Dictionary, Report, error) {
	o := gatherOptions(opts...)
	d := New()
	var rep Report

	if nBits == 0 {
		return d, rep, nil
	}
	dim, ok := squareSide(nBits)
	if !ok {
		return nil, rep, fmt.Errorf("Build(%d): %w", nBits, ErrNonSquareBits)
	}
	rep.Dim = dim

	patterns, err := pattern.EnumerateAll(nBits)
	if err != nil {
		return nil, rep, fmt.Errorf("Build(%d): %w", nBits, err)
	}

	seen := newSeenSet(o.strategy)
	for _, p := range patterns {
		if o.limit > 0 && d.Count() >= o.limit {
			break
		}
		rep.Evaluated++

		candidate, err := marker.FromCells(dim, p)
		if err != nil {
			return nil, rep, fmt.Errorf("Build(%d): %w", nBits, err)
		}
		rotations := candidate.Rotations()

		if !allDistinct(rotations) {
			rep.RejectedSymmetry++
			continue
		}
		if !passes(o.filters, candidate) {
			rep.RejectedFilter++
			continue
		}
		if seen.contains(d, rotations) {
			rep.RejectedDuplicate++
			continue
		}

		if err = d.Append(candidate); err != nil {
			return nil, rep, fmt.Errorf("Build(%d): %w", nBits, err)
		}
		seen.add(rotations)
		rep.Accepted++
	}

	return d, rep, nil
}

// squareSide returns the integer square root of n and whether n is a
// perfect square.
func squareSide(n int) (int, bool) {
	if n < 0 {
		return 0, false
	}
	s := 0
	for (s+1)*(s+1) <= n {
		s++
	}

	return s, s*s == n
}

// allDistinct reports whether no two of the given orientations are equal.
func allDistinct(rs [4]marker.Marker) bool {
	for i := 0; i < len(rs); i++ {
		for j := 0; j < len(rs); j++ {
			if i == j {
				continue
			}
			if rs[i].Equal(rs[j]) {
				return false
			}
		}
	}

	return true
}

// passes runs every filter; all must accept.
func passes(filters []Filter, m marker.Marker) bool {
	for _, f := range filters {
		if !f(m) {
			return false
		}
	}

	return true
}

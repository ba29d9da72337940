// SPDX-License-Identifier: MIT

// Package dictionary: functional configuration for Build.
//   - Option / Options follow the usual functional-options shape.
//   - Default* constants are the single source of truth for zero-value behavior.
//   - WithX constructors panic only on nonsensical values (programmer error).
package dictionary

import "github.com/katalvlaran/markerdict/marker"

// Strategy selects how Build checks a candidate against accepted entries.
type Strategy int

const (
	// StrategyLinear compares every accepted entry against all four
	// orientations of the candidate.
	StrategyLinear Strategy = iota
	// StrategyCanonical keeps a set of canonical keys of accepted entries and
	// looks the candidate's canonical key up in it.
	StrategyCanonical
)

// String returns "linear" or "canonical".
func (s Strategy) String() string {
	switch s {
	case StrategyLinear:
		return "linear"
	case StrategyCanonical:
		return "canonical"
	default:
		return "unknown"
	}
}

// ParseStrategy maps "linear"/"canonical" to a Strategy.
func ParseStrategy(s string) (Strategy, bool) {
	switch s {
	case "linear":
		return StrategyLinear, true
	case "canonical":
		return StrategyCanonical, true
	default:
		return StrategyLinear, false
	}
}

// Defaults.
const (
	// DefaultStrategy is the plain scan over accepted entries.
	DefaultStrategy = StrategyLinear

	// DefaultLimit of 0 means no cap on accepted entries.
	DefaultLimit = 0
)

const (
	panicStrategyInvalid = "dictionary: WithStrategy: unknown strategy"
	panicLimitInvalid    = "dictionary: WithLimit: limit must be >= 0"
	panicFilterNil       = "dictionary: WithFilter: filter must not be nil"
)

// Filter is an extra acceptance predicate. It sees a candidate that already
// passed the self-symmetry check and returns false to reject it.
type Filter func(marker.Marker) bool

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective Build configuration.
type Options struct {
	strategy Strategy
	limit    int
	filters  []Filter
}

// WithStrategy selects the deduplication strategy.
// Panics on an unknown Strategy value.
func WithStrategy(s Strategy) Option {
	if s != StrategyLinear && s != StrategyCanonical {
		panic(panicStrategyInvalid)
	}

	return func(o *Options) { o.strategy = s }
}

// WithLimit stops Build once n entries are accepted. n == 0 disables the cap.
// Panics if n < 0.
func WithLimit(n int) Option {
	if n < 0 {
		panic(panicLimitInvalid)
	}

	return func(o *Options) { o.limit = n }
}

// WithFilter adds an acceptance predicate. Filters run in the order given,
// after the self-symmetry check and before the duplicate check.
// Panics if f is nil.
func WithFilter(f Filter) Option {
	if f == nil {
		panic(panicFilterNil)
	}

	return func(o *Options) { o.filters = append(o.filters, f) }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		strategy: DefaultStrategy,
		limit:    DefaultLimit,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

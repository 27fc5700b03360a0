// SPDX-License-Identifier: MIT

// Package kinds: functional configuration for kind resolution.
// This file defines:
//   - Thresholds, the configuration object with one field per property,
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - newConfig helper (internal) that resolves the effective configuration.

package kinds

import (
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/atomistic/site"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultChargeThreshold merges charges within 0.1 e.
	DefaultChargeThreshold = 0.1

	// DefaultMassThreshold merges masses within 1e-4 u.
	DefaultMassThreshold = 1e-4

	// DefaultMagnetizationThreshold merges magnetic moments within 1e-2.
	DefaultMagnetizationThreshold = 1e-2

	// DefaultWeightThreshold is exact match: occupations must be identical.
	DefaultWeightThreshold = 0.0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicThresholdInvalid = "kinds: WithThreshold: threshold must be finite, non-negative"
	panicPropertyUnknown  = "kinds: unknown property"
	panicLoggerNil        = "kinds: WithLogger: logger must be non-nil"
	panicStrategyUnknown  = "kinds: WithStrategy: unknown strategy"
)

// Thresholds holds one tolerance per clusterable property. A zero entry
// means exact match.
type Thresholds struct {
	Charge        float64 `json:"charge" yaml:"charge" mapstructure:"charge"`
	Mass          float64 `json:"mass" yaml:"mass" mapstructure:"mass"`
	Magnetization float64 `json:"magnetization" yaml:"magnetization" mapstructure:"magnetization"`
	Weight        float64 `json:"weight" yaml:"weight" mapstructure:"weight"`
}

// DefaultThresholds returns the documented defaults.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Charge:        DefaultChargeThreshold,
		Mass:          DefaultMassThreshold,
		Magnetization: DefaultMagnetizationThreshold,
		Weight:        DefaultWeightThreshold,
	}
}

// Get returns the threshold of p; unknown properties resolve to 0.
func (t Thresholds) Get(p site.Property) float64 {
	switch p {
	case site.Charge:
		return t.Charge
	case site.Mass:
		return t.Mass
	case site.Magnetization:
		return t.Magnetization
	case site.Weight:
		return t.Weight
	}

	return 0
}

// With returns a copy of t with the threshold of p replaced.
func (t Thresholds) With(p site.Property, v float64) Thresholds {
	switch p {
	case site.Charge:
		t.Charge = v
	case site.Mass:
		t.Mass = v
	case site.Magnetization:
		t.Magnetization = v
	case site.Weight:
		t.Weight = v
	}

	return t
}

// Strategy selects how joint kinds are formed from the stacked label rows.
type Strategy int

const (
	// Keyed groups rows through a map keyed by the row tuple. O(N·P).
	Keyed Strategy = iota

	// Pairwise compares every unassigned row with the current one by
	// summed absolute difference. O(N²·P); kept as the reference.
	Pairwise
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case Keyed:
		return "keyed"
	case Pairwise:
		return "pairwise"
	}

	return "unknown"
}

// Option mutates the internal configuration. Safe to apply repeatedly.
type Option func(*config)

// config is the effective configuration after applying Options.
type config struct {
	thresholds Thresholds
	exclude    map[site.Property]bool
	tags       []string
	reserved   map[string]bool
	strategy   Strategy
	logger     *zap.Logger
}

// WithThreshold overrides the threshold of one property.
// Implementation:
//   - Stage 1: validate p is enumerated and v is finite and >= 0.
//   - Stage 2: return a setter that writes v into the configuration.
//
// Errors:
//   - Panics with a stable message when p or v is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithThreshold(p site.Property, v float64) Option {
	if !p.Valid() {
		panic(panicPropertyUnknown)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		panic(panicThresholdInvalid)
	}

	return func(c *config) { c.thresholds = c.thresholds.With(p, v) }
}

// WithThresholds replaces the whole threshold table.
// Every entry must be finite and >= 0; panics otherwise.
func WithThresholds(t Thresholds) Option {
	for _, v := range []float64{t.Charge, t.Mass, t.Magnetization, t.Weight} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			panic(panicThresholdInvalid)
		}
	}

	return func(c *config) { c.thresholds = t }
}

// WithExclude removes properties from kind determination.
// Panics on a property outside the enumeration.
func WithExclude(props ...site.Property) Option {
	for _, p := range props {
		if !p.Valid() {
			panic(panicPropertyUnknown)
		}
	}
	cp := append([]site.Property(nil), props...)

	return func(c *config) {
		for _, p := range cp {
			c.exclude[p] = true
		}
	}
}

// WithTags supplies caller-declared kind names, one per site; "" leaves a
// site undecided. When every entry is set, all thresholds are forced to 0
// and the tags are returned unchanged if they agree with the values.
func WithTags(tags []string) Option {
	cp := append([]string(nil), tags...)

	return func(c *config) { c.tags = cp }
}

// WithReservedNames lists names generated kind names must avoid, without
// taking part in the consistency check. Structures use it to keep
// automatic names clear of names already present on some sites.
func WithReservedNames(names ...string) Option {
	cp := append([]string(nil), names...)

	return func(c *config) {
		for _, n := range cp {
			if n != "" {
				c.reserved[n] = true
			}
		}
	}
}

// WithStrategy selects the partition strategy (Keyed by default).
func WithStrategy(s Strategy) Option {
	if s != Keyed && s != Pairwise {
		panic(panicStrategyUnknown)
	}

	return func(c *config) { c.strategy = s }
}

// WithLogger routes debug output to l. The default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(c *config) { c.logger = l }
}

// newConfig applies options in order (last wins) over the defaults.
func newConfig(opts ...Option) config {
	c := config{
		thresholds: DefaultThresholds(),
		exclude:    make(map[site.Property]bool),
		reserved:   make(map[string]bool),
		strategy:   Keyed,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

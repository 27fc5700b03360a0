// SPDX-License-Identifier: MIT

package formula

import "github.com/katalvlaran/atomistic/errors"

// Mode selects a formula rendering.
type Mode string

const (
	Hill         Mode = "hill"
	HillCompact  Mode = "hill_compact"
	Reduce       Mode = "reduce"
	Group        Mode = "group"
	Count        Mode = "count"
	CountCompact Mode = "count_compact"
)

// CompositionMode selects a composition normalization.
type CompositionMode string

const (
	Full       CompositionMode = "full"
	Reduced    CompositionMode = "reduced"
	Fractional CompositionMode = "fractional"
)

// Modes lists the formula modes in documentation order.
func Modes() []Mode { return []Mode{Hill, HillCompact, Reduce, Group, Count, CountCompact} }

// CompositionModes lists the composition modes in documentation order.
func CompositionModes() []CompositionMode { return []CompositionMode{Full, Reduced, Fractional} }

// ParseMode validates a formula mode name.
func ParseMode(s string) (Mode, error) {
	accepted := make([]string, 0, 6)
	for _, m := range Modes() {
		if string(m) == s {
			return m, nil
		}
		accepted = append(accepted, string(m))
	}

	return "", errors.Usage("mode", s, accepted...)
}

// ParseCompositionMode validates a composition mode name.
func ParseCompositionMode(s string) (CompositionMode, error) {
	accepted := make([]string, 0, 3)
	for _, m := range CompositionModes() {
		if string(m) == s {
			return m, nil
		}
		accepted = append(accepted, string(m))
	}

	return "", errors.Usage("mode", s, accepted...)
}

// SPDX-License-Identifier: MIT

package formula

// Composition returns the per-symbol amounts of symbols in the given mode.
// An empty symbol list yields an empty map.
//
// Errors:
//   - errors.ErrUsage for an unknown mode.
func Composition(symbols []string, mode CompositionMode) (map[string]float64, error) {
	if _, err := ParseCompositionMode(string(mode)); err != nil {
		return nil, err
	}
	items := counts(symbols)
	out := make(map[string]float64, len(items))

	var div float64 = 1
	switch mode {
	case Reduced:
		g := 0
		for _, it := range items {
			g = gcd(g, it.count)
		}
		if g > 0 {
			div = float64(g)
		}
	case Fractional:
		if len(symbols) > 0 {
			div = float64(len(symbols))
		}
	}
	for _, it := range items {
		out[it.symbol] = float64(it.count) / div
	}

	return out, nil
}

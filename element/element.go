// SPDX-License-Identifier: MIT

package element

// Element is one entry of the periodic table.
type Element struct {
	// Number is the atomic number Z (0 for the placeholder "X").
	Number int
	// Symbol is the chemical symbol, case-sensitive ("Fe", not "FE").
	Symbol string
	// Name is the English element name.
	Name string
	// Mass is the standard atomic mass in u.
	Mass float64
}

// bySymbol is built once from table; read-only afterwards.
var bySymbol = func() map[string]Element {
	m := make(map[string]Element, len(table))
	for _, e := range table {
		m[e.Symbol] = e
	}

	return m
}()

// Lookup returns the element with the given symbol.
// Complexity: O(1).
func Lookup(symbol string) (Element, bool) {
	e, ok := bySymbol[symbol]

	return e, ok
}

// IsValid reports whether symbol belongs to the vocabulary.
func IsValid(symbol string) bool {
	_, ok := bySymbol[symbol]

	return ok
}

// Mass returns the standard atomic mass for symbol.
func Mass(symbol string) (float64, bool) {
	e, ok := bySymbol[symbol]

	return e.Mass, ok
}

// ByNumber returns the element with atomic number z.
func ByNumber(z int) (Element, bool) {
	if z < 0 || z >= len(table) {
		return Element{}, false
	}

	return table[z], true
}

// Symbols returns all symbols ordered by atomic number.
func Symbols() []string {
	out := make([]string, len(table))
	for i, e := range table {
		out[i] = e.Symbol
	}

	return out
}

// Package element is the fixed periodic-table vocabulary used by sites.
//
// Every site symbol must be one of the symbols listed here. The table also
// supplies the atomic number and the standard atomic mass (in unified atomic
// mass units) used as the default site mass.
//
// ⚙️ Usage:
//
//	if e, ok := element.Lookup("Fe"); ok {
//	  fmt.Println(e.Number, e.Mass) // 26 55.845
//	}
//
// The pseudo-element "X" (Z = 0, mass 1.0) is accepted for dummy or
// placeholder sites.
package element

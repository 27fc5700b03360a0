// Package formula renders chemical formulas and compositions from an
// ordered list of chemical symbols.
//
// 🚀 Formula modes (Format):
//
//	hill           C2H6O, H2O4S   C then H when carbon is present, rest alphabetical
//	hill_compact   CH3O2          hill divided by the gcd of the counts
//	reduce         BaTiO3BaTiO3BaTi2O3   consecutive equal symbols run-length encoded
//	group          (BaTiO3)2BaTi2O3      repeated consecutive blocks collapsed
//	count          Ba2Ti2O6       counts in order of first appearance
//	count_compact  BaTiO3         count divided by the gcd of the counts
//
// A count of 1 is never written: CuLi2, not Cu1Li2.
//
// ✨ Composition modes (Composition):
//
//	full        counts per symbol
//	reduced     counts divided by their gcd
//	fractional  counts divided by the total
//
// Unknown mode names are usage errors listing the accepted values.
package formula

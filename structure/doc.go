// Package structure is the validated aggregate of an atomistic system: an
// ordered list of sites inside a lattice cell with periodic boundary
// conditions.
//
// 🚀 Two variants, one read surface:
//
//   - Structure is immutable. It is validated once at construction and
//     offers no mutators; slicing and conversion produce new values.
//   - Builder is mutable and may hold transient invalid states. Build
//     copies its content and validates it.
//
// Both implement View, backed by one shared frame, so every query
// (formula, composition, kinds, cell geometry, property arrays) behaves
// identically on either.
//
// ✨ Validation (all-or-nothing):
//   - at least one site;
//   - cell/pbc consistency: the periodic part of the cell has nonzero
//     length, surface or volume;
//   - kind referential integrity: every site carries a kind name, declared
//     kinds are unique and referenced, one name never spans two elements;
//   - co-located sites model a disordered site only: their kinds differ and
//     their weights sum to at most 1.
//
// Sites constructed without a kind name receive one from package kinds:
// symbol+ordinal, or the bare symbol when the element forms a single kind.
//
// ⚙️ Usage:
//
//	s, err := structure.New(cell.Cell{{3, 0, 0}, {0, 3, 0}, {0, 0, 3}}, cell.DefaultPBC(), sites)
//	f, _ := s.Formula(formula.Hill, "")
//	a, _ := s.GetKinds(kinds.WithThreshold(site.Charge, 0.05))
//
// A Structure is safe for concurrent reads; every getter returns a copy.
// A Builder is not safe for concurrent use.
package structure

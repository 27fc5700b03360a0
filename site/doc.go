// Package site models one atomic placement: a chemical symbol at a Cartesian
// position together with the physical properties the kind-resolution engine
// compares (charge, mass, magnetic moment, occupation weight).
//
// A Site is an immutable value. It is built once from a Properties record,
// which is validated on the way in:
//
//	s, err := site.New(site.Properties{
//	  Symbol:   "Fe",
//	  Position: [3]float64{0, 0, 0},
//	  Charge:   site.Float(2),
//	})
//
// Absent optional fields take documented defaults: charge 0, magnetic
// moment 0, weight 1 and the element's standard atomic mass. Any "change"
// produces a new Site (WithKindName, WithPosition).
//
// Property enumerates, in a fixed order, the numeric properties that take
// part in kind resolution. The order is part of the public contract because
// per-property cluster breakdowns are reported in it.
package site

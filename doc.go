// Package atomistic is an in-memory model of atomistic structures: a
// periodic cell, a list of sites, and the kinds that group them.
//
// 🚀 What is atomistic?
//
//	A validation-first library built around a small set of packages:
//		• Sites: chemical symbol, position, charge, mass, magnetic moment, weight
//		• Cells: lattice vectors, periodicity, dimensionality, volume, angles
//		• Kinds: per-property threshold clustering joined into kind names
//		• Formulas: Hill, reduced, grouped and count notations; compositions
//		• Exchange: JSON, YAML and MessagePack documents with schema checks
//		• Structures: immutable values plus a mutable Builder
//
// ✨ Why choose atomistic?
//
//   - Deterministic: the same sites always resolve to the same kinds
//   - Every failure names its field and carries one error class
//   - Immutable structures are safe to share between goroutines
//
// Packages:
//
//	errors/       error classes (schema, consistency, integrity, usage, capability)
//	element/      periodic table symbols and standard masses
//	site/         Site values and the clusterable properties
//	cluster/      one-dimensional threshold clustering
//	kinds/        kind resolution (Resolve) with functional options
//	cell/         Cell and PBC geometry
//	formula/      formula strings and compositions
//	exchange/     Document, validation and codecs
//	structure/    Structure, Builder and the shared read-only View
//	cmd/kindsctl  command line front end
//
// Quick example:
//
//	Li(q=1.00) Li(q=1.05) Cu   →   kinds Li0 Li0 Cu0   (charge threshold 0.1)
//
//	go get github.com/katalvlaran/atomistic
package atomistic

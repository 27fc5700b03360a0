// Package cell holds the lattice of a structure: three cell vectors, the
// periodic boundary conditions and the geometry derived from them.
//
// 🚀 What does it compute?
//
//   - Dimensionality: the number of periodic axes (0..3).
//   - Measure: the length, surface or volume spanned by the periodic cell
//     vectors, labelled "length", "surface" or "volume".
//   - Volume: |a·(b×c)|, computed as the absolute determinant of the cell.
//   - Lengths and Angles (degrees; α=∠(b,c), β=∠(a,c), γ=∠(a,b)).
//
// ✨ Validation:
//
// Validate accepts a (Cell, PBC) pair iff every entry is finite and the
// measure along the periodic axes is nonzero. A 0-d (molecular) system
// places no constraint on the cell.
//
// Geometry is built on gonum: mat.Det for volumes, spatial/r3 for vector
// products and norms.
package cell

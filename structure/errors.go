// SPDX-License-Identifier: MIT

package structure

import "github.com/katalvlaran/atomistic/errors"

var (
	// ErrNoSites indicates an immutable structure without sites.
	ErrNoSites = errors.Classed("structure: at least one site is required", errors.ErrSchema)

	// ErrMissingKind indicates a site without a kind name at validation.
	ErrMissingKind = errors.Classed("structure: site has no kind name", errors.ErrConsistency)

	// ErrUndeclaredKind indicates a site referencing a kind that is not declared.
	ErrUndeclaredKind = errors.Classed("structure: kind is not declared", errors.ErrConsistency)

	// ErrOrphanKind indicates a declared kind no site references.
	ErrOrphanKind = errors.Classed("structure: declared kind is not referenced", errors.ErrConsistency)

	// ErrDuplicateKind indicates a kind declared twice, or one name used
	// for two elements.
	ErrDuplicateKind = errors.Classed("structure: duplicate kind", errors.ErrConsistency)

	// ErrOverlap indicates two sites of the same kind at one position.
	ErrOverlap = errors.Classed("structure: sites of the same kind overlap", errors.ErrConsistency)

	// ErrOverfull indicates co-located sites whose weights exceed 1.
	ErrOverfull = errors.Classed("structure: occupation at a position exceeds 1", errors.ErrConsistency)

	// ErrIndex indicates a site index or range outside the structure.
	ErrIndex = errors.Classed("structure: index out of range", errors.ErrUsage)
)

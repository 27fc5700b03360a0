// SPDX-License-Identifier: MIT

package structure

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/atomistic/cell"
	"github.com/katalvlaran/atomistic/errors"
	"github.com/katalvlaran/atomistic/site"
)

// occupationTolerance bounds the summed weight of co-located sites.
const occupationTolerance = 1e-6

// validate checks f as a finalized structure.
//
// Implementation:
//   - Stage 1: at least one site.
//   - Stage 2: cell/pbc consistency via cell.Validate.
//   - Stage 3: kind referential integrity.
//   - Stage 4: co-located sites.
//
// Errors:
//   - the first violation found, as a *errors.FieldError.
//
// Complexity:
//   - Time O(N + K), Space O(N + K) for N sites and K declared kinds.
func (f *frame) validate() error {
	if len(f.sites) == 0 {
		return errors.With(ErrNoSites, "sites", 0, "must contain at least one site")
	}
	if err := cell.Validate(f.cell, f.pbc); err != nil {
		return err
	}
	if err := f.validateKinds(); err != nil {
		return err
	}

	return f.validateOccupation()
}

func (f *frame) validateKinds() error {
	symbolOf := make(map[string]int)
	for i, s := range f.sites {
		name := s.KindName()
		if name == "" {
			return errors.With(ErrMissingKind, siteField(i, site.FieldKindName), name, "must be non-empty")
		}
		if j, ok := symbolOf[name]; ok && f.sites[j].Symbol() != s.Symbol() {
			return errors.With(ErrDuplicateKind, siteField(i, site.FieldKindName), name,
				fmt.Sprintf("already names element %s at site %d", f.sites[j].Symbol(), j))
		}
		if _, ok := symbolOf[name]; !ok {
			symbolOf[name] = i
		}
	}
	if f.declared == nil {
		return nil
	}

	declared := make(map[string]int, len(f.declared))
	for k, name := range f.declared {
		if j, ok := declared[name]; ok {
			return errors.With(ErrDuplicateKind, kindField(k), name, "already declared at "+kindField(j))
		}
		declared[name] = k
	}
	for i, s := range f.sites {
		if _, ok := declared[s.KindName()]; !ok {
			return errors.With(ErrUndeclaredKind, siteField(i, site.FieldKindName), s.KindName(), "must be one of the declared kinds")
		}
	}
	for k, name := range f.declared {
		if _, ok := symbolOf[name]; !ok {
			return errors.With(ErrOrphanKind, kindField(k), name, "must be referenced by at least one site")
		}
	}

	return nil
}

// validateOccupation accepts co-located sites only as a disordered site:
// pairwise different kinds, weights summing to at most 1.
func (f *frame) validateOccupation() error {
	for _, group := range f.colocated() {
		seen := make(map[string]int, len(group))
		var w float64
		for _, i := range group {
			s := f.sites[i]
			if j, ok := seen[s.KindName()]; ok {
				return errors.With(ErrOverlap, siteField(i, site.FieldPosition), s.Position(),
					fmt.Sprintf("coincides with site %d of kind %s", j, s.KindName()))
			}
			seen[s.KindName()] = i
			w += s.Weight()
		}
		if w > 1+occupationTolerance {
			last := group[len(group)-1]
			return errors.With(ErrOverfull, siteField(last, string(site.Weight)), w,
				fmt.Sprintf("summed weight of sites %v must not exceed 1", group))
		}
	}

	return nil
}

func siteField(i int, field string) string {
	return "sites[" + strconv.Itoa(i) + "]." + field
}

func kindField(k int) string {
	return "kinds[" + strconv.Itoa(k) + "]"
}

// SPDX-License-Identifier: MIT

package structure

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/atomistic/cell"
	"github.com/katalvlaran/atomistic/errors"
	"github.com/katalvlaran/atomistic/site"
)

// Structure is an immutable, validated atomistic structure.
// The zero value is not usable; build one with New, FromDict or Builder.Build.
type Structure struct {
	frame
	logger *zap.Logger
}

var _ View = (*Structure)(nil)

// New validates and returns a Structure over copies of sites. Sites
// without a kind name are named automatically.
//
// Errors:
//   - ErrNoSites (errors.ErrSchema) for an empty site list.
//   - cell.ErrDegenerate and the kind and occupation consistency errors.
func New(c cell.Cell, p cell.PBC, sites []site.Site, opts ...Option) (*Structure, error) {
	return build(frame{cell: c, pbc: p, sites: append([]site.Site(nil), sites...)}, newConfig(opts...))
}

// NewFromProperties is New over unvalidated site input.
func NewFromProperties(c cell.Cell, p cell.PBC, props []site.Properties, opts ...Option) (*Structure, error) {
	sites, err := newSites(props)
	if err != nil {
		return nil, err
	}

	return build(frame{cell: c, pbc: p, sites: sites}, newConfig(opts...))
}

// build names, validates and wraps f, which it takes ownership of.
func build(f frame, cfg config) (*Structure, error) {
	if len(f.sites) == 0 {
		return nil, errors.With(ErrNoSites, "sites", 0, "must contain at least one site")
	}
	named, err := nameUnnamed(f.sites, cfg)
	if err != nil {
		return nil, err
	}
	f.sites = named
	if err := f.validate(); err != nil {
		return nil, err
	}
	cfg.logger.Debug("structure built",
		zap.Int("sites", len(f.sites)),
		zap.Int("dim", f.pbc.Dimensionality()),
		zap.Int("declared_kinds", len(f.declared)),
	)

	return &Structure{frame: f, logger: cfg.logger}, nil
}

func newSites(props []site.Properties) ([]site.Site, error) {
	out := make([]site.Site, len(props))
	for i, p := range props {
		s, err := site.New(p)
		if err != nil {
			return nil, errors.Wrapf(err, "sites[%d]", i)
		}
		out[i] = s
	}

	return out, nil
}

// At returns the one-site structure holding site i. Negative i counts
// from the end.
//
// Errors:
//   - ErrIndex (errors.ErrUsage) when i is out of range.
//   - any validation error of the new structure.
func (s *Structure) At(i int) (*Structure, error) {
	n := len(s.sites)
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return nil, errors.With(ErrIndex, "index", i, "must lie in [-len, len)")
	}

	return s.Slice(i, i+1)
}

// Slice returns the structure of sites [i, j), re-validated. Negative
// bounds count from the end. Declared kinds are narrowed to those the
// selected sites reference.
//
// Errors:
//   - ErrIndex (errors.ErrUsage) for bounds outside [0, len] or i > j.
//   - any validation error of the new structure, ErrNoSites for i == j.
func (s *Structure) Slice(i, j int) (*Structure, error) {
	n := len(s.sites)
	if i < 0 {
		i += n
	}
	if j < 0 {
		j += n
	}
	if i < 0 || i > n {
		return nil, errors.With(ErrIndex, "start", i, "must lie in [-len, len]")
	}
	if j < i || j > n {
		return nil, errors.With(ErrIndex, "end", j, "must lie in [start, len]")
	}

	f := frame{cell: s.cell, pbc: s.pbc, sites: append([]site.Site(nil), s.sites[i:j]...)}
	if s.declared != nil {
		used := make(map[string]bool)
		for _, st := range f.sites {
			used[st.KindName()] = true
		}
		f.declared = []string{}
		for _, name := range s.declared {
			if used[name] {
				f.declared = append(f.declared, name)
			}
		}
	}

	return build(f, config{logger: s.logger})
}

// ToBuilder returns a Builder holding a copy of s.
func (s *Structure) ToBuilder() *Builder {
	return &Builder{frame: s.clone(), cfg: config{logger: s.logger}}
}

// Equal reports structural equality: same cell, pbc, declared kinds and
// ordered site list.
func (s *Structure) Equal(o *Structure) bool {
	if s == nil || o == nil {
		return s == o
	}
	if s.cell != o.cell || s.pbc != o.pbc || len(s.sites) != len(o.sites) || len(s.declared) != len(o.declared) {
		return false
	}
	for i := range s.sites {
		if !s.sites[i].Equal(o.sites[i]) {
			return false
		}
	}
	for i := range s.declared {
		if s.declared[i] != o.declared[i] {
			return false
		}
	}

	return true
}

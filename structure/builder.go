// SPDX-License-Identifier: MIT

package structure

import (
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/atomistic/cell"
	"github.com/katalvlaran/atomistic/errors"
	"github.com/katalvlaran/atomistic/kinds"
	"github.com/katalvlaran/atomistic/site"
)

// Builder is the mutable variant. It may hold states that would not
// validate; Build copies and validates. Not safe for concurrent use.
type Builder struct {
	frame
	cfg config
}

var _ View = (*Builder)(nil)

// NewBuilder returns an empty Builder with the default cell and pbc.
func NewBuilder(opts ...Option) *Builder {
	return &Builder{
		frame: frame{cell: cell.DefaultCell(), pbc: cell.DefaultPBC()},
		cfg:   newConfig(opts...),
	}
}

// SetCell replaces the lattice.
func (b *Builder) SetCell(c cell.Cell) *Builder {
	b.cell = c

	return b
}

// SetPBC replaces the periodic boundary conditions.
func (b *Builder) SetPBC(p cell.PBC) *Builder {
	b.pbc = p

	return b
}

// AppendSite validates p and appends it.
func (b *Builder) AppendSite(p site.Properties) error {
	s, err := site.New(p)
	if err != nil {
		return errors.Wrapf(err, "sites[%d]", len(b.sites))
	}
	b.sites = append(b.sites, s)

	return nil
}

// AppendSites appends every element of props, or none of them.
func (b *Builder) AppendSites(props ...site.Properties) error {
	sites := make([]site.Site, len(props))
	for k, p := range props {
		s, err := site.New(p)
		if err != nil {
			return errors.Wrapf(err, "sites[%d]", len(b.sites)+k)
		}
		sites[k] = s
	}
	b.sites = append(b.sites, sites...)

	return nil
}

// RemoveSite deletes site i; negative i counts from the end.
func (b *Builder) RemoveSite(i int) error {
	i, err := b.index(i)
	if err != nil {
		return err
	}
	b.sites = append(b.sites[:i], b.sites[i+1:]...)

	return nil
}

// Pop removes and returns site i; negative i counts from the end, so
// Pop(-1) removes the last site.
func (b *Builder) Pop(i int) (site.Site, error) {
	i, err := b.index(i)
	if err != nil {
		return site.Site{}, err
	}
	s := b.sites[i]
	b.sites = append(b.sites[:i], b.sites[i+1:]...)

	return s, nil
}

// ClearSites removes every site.
func (b *Builder) ClearSites() { b.sites = nil }

// SetPositions replaces every site position.
func (b *Builder) SetPositions(positions [][3]float64) error {
	if len(positions) != len(b.sites) {
		return errors.Schema("positions", len(positions), "must have one entry per site")
	}
	next := make([]site.Site, len(b.sites))
	for i, pos := range positions {
		s, err := b.sites[i].WithPosition(pos)
		if err != nil {
			return errors.Wrapf(err, "sites[%d]", i)
		}
		next[i] = s
	}
	b.sites = next

	return nil
}

// SetSiteProperty replaces one numeric property (charge, mass,
// magnetization or its alias magnetic_moment, weight) on every site.
// All values are validated before any is applied.
func (b *Builder) SetSiteProperty(name string, values []float64) error {
	p, err := site.ParseProperty(name)
	if err != nil {
		return err
	}
	if len(values) != len(b.sites) {
		return errors.Schema(string(p), len(values), "must have one entry per site")
	}
	next := make([]site.Site, len(b.sites))
	for i, v := range values {
		props := b.sites[i].Properties()
		switch p {
		case site.Charge:
			props.Charge = site.Float(v)
		case site.Mass:
			props.Mass = site.Float(v)
		case site.Magnetization:
			props.MagneticMoment = site.Float(v)
		case site.Weight:
			props.Weight = site.Float(v)
		}
		s, err := site.New(props)
		if err != nil {
			return errors.Wrapf(err, "sites[%d]", i)
		}
		next[i] = s
	}
	b.sites = next

	return nil
}

// SetKindNames replaces every kind name; "" clears a name so Build
// assigns one.
func (b *Builder) SetKindNames(names []string) error {
	if len(names) != len(b.sites) {
		return errors.Schema(site.FieldKindName, len(names), "must have one entry per site")
	}
	for i, name := range names {
		b.sites[i] = b.sites[i].WithKindName(name)
	}

	return nil
}

// DeclareKind adds names to the declared kinds. Duplicates are kept and
// reported by Build.
func (b *Builder) DeclareKind(names ...string) {
	if b.declared == nil {
		b.declared = []string{}
	}
	b.declared = append(b.declared, names...)
}

// ClearDeclaredKinds drops every declaration.
func (b *Builder) ClearDeclaredKinds() { b.declared = nil }

// AutomaticKindNames renames every site from its resolved kind; opts are
// passed to kinds.Resolve.
func (b *Builder) AutomaticKindNames(opts ...kinds.Option) error {
	a, err := kinds.Resolve(&b.frame, append([]kinds.Option{kinds.WithLogger(b.cfg.logger)}, opts...)...)
	if err != nil {
		return err
	}
	for i := range b.sites {
		b.sites[i] = b.sites[i].WithKindName(a.Kinds[i])
	}

	return nil
}

// AdjustDefaultCell fits an orthorhombic cell around the sites of a
// structure imported without one: positions are translated so their
// minimum is the origin, the cell diagonal becomes
// vacuumFactor*extent + vacuumAddition, and pbc is set.
//
// Errors:
//   - errors.ErrSchema for a non-finite or negative vacuum parameter.
//   - ErrNoSites when the builder holds no sites.
func (b *Builder) AdjustDefaultCell(vacuumFactor, vacuumAddition float64, pbc cell.PBC) error {
	if math.IsNaN(vacuumFactor) || math.IsInf(vacuumFactor, 0) || vacuumFactor < 0 {
		return errors.Schema("vacuum_factor", vacuumFactor, "must be finite and >= 0")
	}
	if math.IsNaN(vacuumAddition) || math.IsInf(vacuumAddition, 0) || vacuumAddition < 0 {
		return errors.Schema("vacuum_addition", vacuumAddition, "must be finite and >= 0")
	}
	if len(b.sites) == 0 {
		return errors.With(ErrNoSites, "sites", 0, "must contain at least one site")
	}

	lo, hi := b.sites[0].Position(), b.sites[0].Position()
	for _, s := range b.sites[1:] {
		p := s.Position()
		for k := range p {
			lo[k] = math.Min(lo[k], p[k])
			hi[k] = math.Max(hi[k], p[k])
		}
	}
	next := make([]site.Site, len(b.sites))
	for i, s := range b.sites {
		p := s.Position()
		for k := range p {
			p[k] -= lo[k]
		}
		moved, err := s.WithPosition(p)
		if err != nil {
			return errors.Wrapf(err, "sites[%d]", i)
		}
		next[i] = moved
	}

	var c cell.Cell
	for k := range c {
		c[k][k] = vacuumFactor*(hi[k]-lo[k]) + vacuumAddition
	}
	b.sites, b.cell, b.pbc = next, c, pbc
	b.cfg.logger.Debug("default cell adjusted",
		zap.Float64s("diagonal", []float64{c[0][0], c[1][1], c[2][2]}),
	)

	return nil
}

// Build names unnamed sites and validates a copy of the builder content.
// The builder itself is left unchanged.
func (b *Builder) Build() (*Structure, error) {
	return build(b.clone(), b.cfg)
}

func (b *Builder) index(i int) (int, error) {
	n := len(b.sites)
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return 0, errors.With(ErrIndex, "index", i, "must lie in [-len, len)")
	}

	return i, nil
}

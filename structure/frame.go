// File: frame.go
// Role: the data shared by Structure and Builder, and every read-only query.
// Determinism:
//   - Queries follow site order; kinds follow first appearance.
// AI-HINT (file):
//   - Getters return copies; nothing here mutates the frame.

package structure

import (
	"math"

	"github.com/katalvlaran/atomistic/cell"
	"github.com/katalvlaran/atomistic/errors"
	"github.com/katalvlaran/atomistic/exchange"
	"github.com/katalvlaran/atomistic/formula"
	"github.com/katalvlaran/atomistic/kinds"
	"github.com/katalvlaran/atomistic/site"
)

// View is the read-only surface of Structure and Builder.
type View interface {
	kinds.Source

	Cell() cell.Cell
	PBC() cell.PBC
	Sites() []site.Site
	DeclaredKinds() []string

	Symbols() []string
	KindNames() []string
	Positions() [][3]float64
	Charges() []float64
	Masses() []float64
	MagneticMoments() []float64
	Weights() []float64
	SiteProperty(name string) (interface{}, error)
	PropertyNames(domain string) ([]string, error)

	Kinds() []Kind
	GetKinds(opts ...kinds.Option) (*kinds.Assignment, error)

	Formula(mode formula.Mode, separator string) (string, error)
	Composition(mode formula.CompositionMode) (map[string]float64, error)
	Description() string

	CellVolume() float64
	Dimensionality() cell.Extent
	CellLengths() [3]float64
	CellAngles() ([3]float64, error)

	IsAlloy() bool
	HasVacancies() bool

	ToDict() *exchange.Document
}

// Property domains of PropertyNames.
const (
	DomainAll  = ""
	DomainSite = "site"
)

// Global (non-site) fields of the exchange contract.
const (
	FieldCell = "cell"
	FieldPBC  = "pbc"
)

// Kind is one named class of sites, derived from the kind names.
type Kind struct {
	Name   string `json:"name" yaml:"name"`
	Symbol string `json:"symbol" yaml:"symbol"`
	Sites  []int  `json:"sites" yaml:"sites"`
}

// frame is the state behind both variants.
type frame struct {
	cell  cell.Cell
	pbc   cell.PBC
	sites []site.Site
	// declared is nil when no kinds are declared.
	declared []string
}

// clone returns a deep copy.
func (f *frame) clone() frame {
	out := frame{cell: f.cell, pbc: f.pbc, sites: append([]site.Site(nil), f.sites...)}
	if f.declared != nil {
		out.declared = append([]string{}, f.declared...)
	}

	return out
}

// Len returns the number of sites.
func (f *frame) Len() int { return len(f.sites) }

// Site returns site i. It panics when i is out of range, like a slice
// index; use At for a checked, negative-aware lookup.
func (f *frame) Site(i int) site.Site { return f.sites[i] }

// Cell returns the lattice.
func (f *frame) Cell() cell.Cell { return f.cell }

// PBC returns the periodic boundary conditions.
func (f *frame) PBC() cell.PBC { return f.pbc }

// Sites returns a copy of the site list.
func (f *frame) Sites() []site.Site { return append([]site.Site(nil), f.sites...) }

// DeclaredKinds returns the declared kind names, nil when none are declared.
func (f *frame) DeclaredKinds() []string {
	if f.declared == nil {
		return nil
	}

	return append([]string{}, f.declared...)
}

// Symbols returns the chemical symbol of every site.
func (f *frame) Symbols() []string {
	out := make([]string, len(f.sites))
	for i, s := range f.sites {
		out[i] = s.Symbol()
	}

	return out
}

// KindNames returns the kind name of every site.
func (f *frame) KindNames() []string {
	out := make([]string, len(f.sites))
	for i, s := range f.sites {
		out[i] = s.KindName()
	}

	return out
}

// Positions returns the position of every site.
func (f *frame) Positions() [][3]float64 {
	out := make([][3]float64, len(f.sites))
	for i, s := range f.sites {
		out[i] = s.Position()
	}

	return out
}

// Charges returns the charge of every site.
func (f *frame) Charges() []float64 { return f.values(site.Charge) }

// Masses returns the mass of every site.
func (f *frame) Masses() []float64 { return f.values(site.Mass) }

// MagneticMoments returns the magnetic moment of every site.
func (f *frame) MagneticMoments() []float64 { return f.values(site.Magnetization) }

// Weights returns the occupation weight of every site.
func (f *frame) Weights() []float64 { return f.values(site.Weight) }

func (f *frame) values(p site.Property) []float64 {
	out := make([]float64, len(f.sites))
	for i, s := range f.sites {
		out[i], _ = s.Value(p)
	}

	return out
}

// SiteProperty returns one site field for every site: []string for symbol
// and kind_name, [][3]float64 for position, []float64 otherwise.
func (f *frame) SiteProperty(name string) (interface{}, error) {
	switch name {
	case site.FieldSymbol:
		return f.Symbols(), nil
	case site.FieldKindName:
		return f.KindNames(), nil
	case site.FieldPosition:
		return f.Positions(), nil
	}
	p, err := site.ParseProperty(name)
	if err != nil {
		return nil, errors.Usage("property", name, site.FieldNames()...)
	}

	return f.values(p), nil
}

// PropertyNames lists the fields of a domain: DomainAll gives cell, pbc
// and the site fields, DomainSite the site fields only.
func (f *frame) PropertyNames(domain string) ([]string, error) {
	switch domain {
	case DomainAll:
		return append([]string{FieldCell, FieldPBC}, site.FieldNames()...), nil
	case DomainSite:
		return site.FieldNames(), nil
	}

	return nil, errors.Usage("domain", domain, `""`, DomainSite)
}

// Kinds groups sites by kind name in order of first appearance. Sites
// without a kind name are left out.
func (f *frame) Kinds() []Kind {
	pos := make(map[string]int)
	var out []Kind
	for i, s := range f.sites {
		name := s.KindName()
		if name == "" {
			continue
		}
		k, ok := pos[name]
		if !ok {
			k = len(out)
			pos[name] = k
			out = append(out, Kind{Name: name, Symbol: s.Symbol()})
		}
		out[k].Sites = append(out[k].Sites, i)
	}

	return out
}

// GetKinds resolves kinds from the site property values.
func (f *frame) GetKinds(opts ...kinds.Option) (*kinds.Assignment, error) {
	return kinds.Resolve(f, opts...)
}

// Formula renders the chemical formula of the site symbols.
func (f *frame) Formula(mode formula.Mode, separator string) (string, error) {
	return formula.Format(f.Symbols(), mode, separator)
}

// Composition returns the per-element amounts.
func (f *frame) Composition(mode formula.CompositionMode) (map[string]float64, error) {
	return formula.Composition(f.Symbols(), mode)
}

// Description is the hill_compact formula.
func (f *frame) Description() string {
	s, _ := formula.Format(f.Symbols(), formula.HillCompact, "")

	return s
}

// CellVolume returns |det(cell)| regardless of pbc; see Dimensionality
// for the measure of lower-dimensional cells.
func (f *frame) CellVolume() float64 { return f.cell.Volume() }

// Dimensionality returns the number of periodic axes and the measure of
// the periodic part of the cell.
func (f *frame) Dimensionality() cell.Extent { return cell.Measure(f.cell, f.pbc) }

// CellLengths returns the cell vector norms.
func (f *frame) CellLengths() [3]float64 { return f.cell.Lengths() }

// CellAngles returns α, β, γ in degrees.
func (f *frame) CellAngles() ([3]float64, error) { return f.cell.Angles() }

// IsAlloy reports whether some position is shared by sites of different
// elements.
func (f *frame) IsAlloy() bool {
	for _, group := range f.colocated() {
		for _, j := range group[1:] {
			if f.sites[j].Symbol() != f.sites[group[0]].Symbol() {
				return true
			}
		}
	}

	return false
}

// HasVacancies reports whether the total weight at some position is
// below 1.
func (f *frame) HasVacancies() bool {
	for _, group := range f.positionGroups() {
		var w float64
		for _, i := range group {
			w += f.sites[i].Weight()
		}
		if w < 1-site.VacancyTolerance {
			return true
		}
	}

	return false
}

// positionGroups partitions site indices by identical position, in order
// of first appearance.
func (f *frame) positionGroups() [][]int {
	pos := make(map[[3]float64]int)
	var out [][]int
	for i, s := range f.sites {
		p := s.Position()
		for k := range p {
			// -0 and +0 share a position
			if p[k] == 0 {
				p[k] = math.Abs(p[k])
			}
		}
		g, ok := pos[p]
		if !ok {
			g = len(out)
			pos[p] = g
			out = append(out, nil)
		}
		out[g] = append(out[g], i)
	}

	return out
}

// colocated returns the position groups holding more than one site.
func (f *frame) colocated() [][]int {
	var out [][]int
	for _, g := range f.positionGroups() {
		if len(g) > 1 {
			out = append(out, g)
		}
	}

	return out
}

// ToDict renders the frame as an exchange document with every field set.
func (f *frame) ToDict() *exchange.Document {
	doc := &exchange.Document{
		Cell:  f.cell.Rows(),
		PBC:   f.pbc.Bools(),
		Sites: make([]exchange.SiteDoc, len(f.sites)),
		Kinds: f.DeclaredKinds(),
	}
	for i, s := range f.sites {
		doc.Sites[i] = exchange.FromSite(s)
	}

	return doc
}

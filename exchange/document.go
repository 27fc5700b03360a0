// SPDX-License-Identifier: MIT

package exchange

import (
	"github.com/katalvlaran/atomistic/cell"
	"github.com/katalvlaran/atomistic/site"
)

// Document is the exchange form of a structure.
type Document struct {
	Cell  [][]float64 `json:"cell,omitempty" yaml:"cell,omitempty" validate:"omitempty,len=3,dive,len=3,dive,finite"`
	PBC   []bool      `json:"pbc,omitempty" yaml:"pbc,omitempty" validate:"omitempty,len=3"`
	Sites []SiteDoc   `json:"sites" yaml:"sites" validate:"dive"`
	Kinds []string    `json:"kinds,omitempty" yaml:"kinds,omitempty" validate:"omitempty,dive,required"`
}

// SiteDoc is the exchange form of one site. Nil numeric fields take the
// site defaults.
type SiteDoc struct {
	Symbol         string    `json:"symbol" yaml:"symbol" validate:"required,element"`
	Position       []float64 `json:"position" yaml:"position" validate:"len=3,dive,finite"`
	KindName       string    `json:"kind_name,omitempty" yaml:"kind_name,omitempty"`
	Charge         *float64  `json:"charge,omitempty" yaml:"charge,omitempty" validate:"omitempty,finite"`
	Mass           *float64  `json:"mass,omitempty" yaml:"mass,omitempty" validate:"omitempty,finite,gte=0"`
	MagneticMoment *float64  `json:"magnetic_moment,omitempty" yaml:"magnetic_moment,omitempty" validate:"omitempty,finite"`
	Weight         *float64  `json:"weight,omitempty" yaml:"weight,omitempty" validate:"omitempty,finite,gt=0,lte=1"`
}

// Lattice returns the cell and pbc, substituting the defaults for absent
// fields. Call Validate first; shapes are re-checked here regardless.
func (d *Document) Lattice() (cell.Cell, cell.PBC, error) {
	c, p := cell.DefaultCell(), cell.DefaultPBC()
	var err error
	if d.Cell != nil {
		if c, err = cell.FromRows(d.Cell); err != nil {
			return c, p, err
		}
	}
	if d.PBC != nil {
		if p, err = cell.FromBools(d.PBC); err != nil {
			return c, p, err
		}
	}

	return c, p, nil
}

// SiteProperties converts the site documents to site.Properties.
func (d *Document) SiteProperties() []site.Properties {
	out := make([]site.Properties, len(d.Sites))
	for i, s := range d.Sites {
		out[i] = s.Properties()
	}

	return out
}

// Properties converts s to site.Properties. Extra position components are
// ignored; Validate rejects them.
func (s SiteDoc) Properties() site.Properties {
	p := site.Properties{
		Symbol:         s.Symbol,
		KindName:       s.KindName,
		Charge:         s.Charge,
		Mass:           s.Mass,
		MagneticMoment: s.MagneticMoment,
		Weight:         s.Weight,
	}
	copy(p.Position[:], s.Position)

	return p
}

// FromSite renders a site with every field filled in.
func FromSite(s site.Site) SiteDoc {
	p := s.Properties()

	return SiteDoc{
		Symbol:         p.Symbol,
		Position:       []float64{p.Position[0], p.Position[1], p.Position[2]},
		KindName:       p.KindName,
		Charge:         p.Charge,
		Mass:           p.Mass,
		MagneticMoment: p.MagneticMoment,
		Weight:         p.Weight,
	}
}

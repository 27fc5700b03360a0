// SPDX-License-Identifier: MIT

package site

import (
	"fmt"
	"math"

	"github.com/katalvlaran/atomistic/element"
	"github.com/katalvlaran/atomistic/errors"
)

// Documented defaults for absent optional properties.
const (
	DefaultCharge         = 0.0
	DefaultMagneticMoment = 0.0
	DefaultWeight         = 1.0

	// VacancyTolerance is the slack below 1 under which an occupation weight
	// (or a sum of weights at one position) counts as a vacancy.
	VacancyTolerance = 1e-6
)

// Properties is the mutable input record a Site is built from.
// Nil pointers mean "absent, use the default".
type Properties struct {
	Symbol         string
	Position       [3]float64
	KindName       string
	Charge         *float64
	Mass           *float64
	MagneticMoment *float64
	Weight         *float64
}

// Float returns a pointer to v, for filling optional Properties fields.
func Float(v float64) *float64 { return &v }

// Site is an immutable atomic placement. The zero value is not a valid site;
// build one with New.
type Site struct {
	symbol   string
	position [3]float64
	kindName string
	charge   float64
	mass     float64
	magmom   float64
	weight   float64
}

// New validates p and returns the corresponding Site.
//
// Errors (all errors.ErrSchema):
//   - symbol not in the element vocabulary;
//   - non-finite position component or property value;
//   - weight outside (0, 1];
//   - negative mass.
//
// Complexity: O(1).
func New(p Properties) (Site, error) {
	el, ok := element.Lookup(p.Symbol)
	if !ok {
		return Site{}, errors.Schema(FieldSymbol, p.Symbol, "must be a chemical symbol of the periodic table")
	}
	for _, x := range p.Position {
		if !finite(x) {
			return Site{}, errors.Schema(FieldPosition, p.Position, "components must be finite")
		}
	}

	s := Site{
		symbol:   p.Symbol,
		position: p.Position,
		kindName: p.KindName,
		charge:   valueOr(p.Charge, DefaultCharge),
		mass:     valueOr(p.Mass, el.Mass),
		magmom:   valueOr(p.MagneticMoment, DefaultMagneticMoment),
		weight:   valueOr(p.Weight, DefaultWeight),
	}

	// Stage 2: numeric policy.
	if !finite(s.charge) {
		return Site{}, errors.Schema(string(Charge), s.charge, "must be finite")
	}
	if !finite(s.mass) || s.mass < 0 {
		return Site{}, errors.Schema(string(Mass), s.mass, "must be finite and >= 0")
	}
	if !finite(s.magmom) {
		return Site{}, errors.Schema(FieldMagneticMoment, s.magmom, "must be finite")
	}
	if !finite(s.weight) || s.weight <= 0 || s.weight > 1 {
		return Site{}, errors.Schema(string(Weight), s.weight, "must lie in (0, 1]")
	}

	return s, nil
}

// MustNew is New that panics on error. Intended for fixtures and examples.
func MustNew(p Properties) Site {
	s, err := New(p)
	if err != nil {
		panic(err)
	}

	return s
}

// Symbol returns the chemical symbol.
func (s Site) Symbol() string { return s.symbol }

// Position returns the Cartesian coordinates.
func (s Site) Position() [3]float64 { return s.position }

// KindName returns the kind label, "" when not decided yet.
func (s Site) KindName() string { return s.kindName }

// Charge returns the site charge in units of e.
func (s Site) Charge() float64 { return s.charge }

// Mass returns the mass in atomic mass units.
func (s Site) Mass() float64 { return s.mass }

// MagneticMoment returns the magnetic moment; it is clustered as
// Magnetization.
func (s Site) MagneticMoment() float64 { return s.magmom }

// Weight returns the occupation in (0, 1].
func (s Site) Weight() float64 { return s.weight }

// HasVacancy reports whether the site is partially occupied.
func (s Site) HasVacancy() bool { return s.weight < 1-VacancyTolerance }

// Value returns the numeric value of a clusterable property.
func (s Site) Value(p Property) (float64, error) {
	switch p {
	case Charge:
		return s.charge, nil
	case Mass:
		return s.mass, nil
	case Magnetization:
		return s.magmom, nil
	case Weight:
		return s.weight, nil
	}

	return 0, errors.Usage("property", string(p), propertyNames()...)
}

// WithKindName returns a copy of s labelled name.
func (s Site) WithKindName(name string) Site {
	s.kindName = name

	return s
}

// WithPosition returns a copy of s moved to pos. pos must be finite.
func (s Site) WithPosition(pos [3]float64) (Site, error) {
	for _, x := range pos {
		if !finite(x) {
			return Site{}, errors.Schema(FieldPosition, pos, "components must be finite")
		}
	}
	s.position = pos

	return s, nil
}

// Properties returns the input record that rebuilds s. Every optional field
// is filled, so New(s.Properties()) == s.
func (s Site) Properties() Properties {
	return Properties{
		Symbol:         s.symbol,
		Position:       s.position,
		KindName:       s.kindName,
		Charge:         Float(s.charge),
		Mass:           Float(s.mass),
		MagneticMoment: Float(s.magmom),
		Weight:         Float(s.weight),
	}
}

// Equal reports field-wise equality.
func (s Site) Equal(o Site) bool { return s == o }

// String implements fmt.Stringer.
func (s Site) String() string {
	name := s.kindName
	if name == "" {
		name = "-"
	}

	return fmt.Sprintf("%s(%s) at %v q=%g m=%g mu=%g w=%g", s.symbol, name, s.position, s.charge, s.mass, s.magmom, s.weight)
}

func valueOr(p *float64, def float64) float64 {
	if p == nil {
		return def
	}

	return *p
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

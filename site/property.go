// SPDX-License-Identifier: MIT

package site

import (
	"github.com/katalvlaran/atomistic/errors"
)

// Property names a numeric site property that can be clustered.
type Property string

// Clusterable properties, in reporting order.
const (
	Charge        Property = "charge"
	Mass          Property = "mass"
	Magnetization Property = "magnetization"
	Weight        Property = "weight"
)

// Names of the non-numeric site fields and of the magnetic moment as it
// appears in the data-exchange contract.
const (
	FieldSymbol         = "symbol"
	FieldPosition       = "position"
	FieldKindName       = "kind_name"
	FieldMagneticMoment = "magnetic_moment"
)

var allProperties = []Property{Charge, Mass, Magnetization, Weight}

// AllProperties returns the clusterable properties in reporting order.
// The returned slice is a fresh copy.
func AllProperties() []Property {
	out := make([]Property, len(allProperties))
	copy(out, allProperties)

	return out
}

// FieldNames lists every site field of the exchange contract.
func FieldNames() []string {
	return []string{
		FieldSymbol, FieldPosition, FieldKindName,
		string(Charge), string(Mass), FieldMagneticMoment, string(Weight),
	}
}

// ParseProperty maps a name to a Property. "magnetic_moment" is accepted as
// an alias of "magnetization".
func ParseProperty(name string) (Property, error) {
	switch name {
	case string(Charge):
		return Charge, nil
	case string(Mass):
		return Mass, nil
	case string(Magnetization), FieldMagneticMoment:
		return Magnetization, nil
	case string(Weight):
		return Weight, nil
	}

	return "", errors.Usage("property", name, propertyNames()...)
}

// String implements fmt.Stringer.
func (p Property) String() string { return string(p) }

// Valid reports whether p is one of the enumerated properties.
func (p Property) Valid() bool {
	for _, q := range allProperties {
		if p == q {
			return true
		}
	}

	return false
}

func propertyNames() []string {
	names := make([]string, len(allProperties))
	for i, p := range allProperties {
		names[i] = string(p)
	}

	return names
}

// SPDX-License-Identifier: MIT

package structure

import (
	"github.com/katalvlaran/atomistic/exchange"
)

// FromDict builds a Structure from an exchange document: the document is
// validated, absent cell and pbc take their defaults, and declared kinds
// are carried over. FromDict(s.ToDict()) is Equal to s.
func FromDict(doc *exchange.Document, opts ...Option) (*Structure, error) {
	f, err := frameFromDict(doc)
	if err != nil {
		return nil, err
	}

	return build(f, newConfig(opts...))
}

// BuilderFromDict loads an exchange document into a Builder without
// validating structure-level invariants.
func BuilderFromDict(doc *exchange.Document, opts ...Option) (*Builder, error) {
	f, err := frameFromDict(doc)
	if err != nil {
		return nil, err
	}

	return &Builder{frame: f, cfg: newConfig(opts...)}, nil
}

func frameFromDict(doc *exchange.Document) (frame, error) {
	if err := doc.Validate(); err != nil {
		return frame{}, err
	}
	c, p, err := doc.Lattice()
	if err != nil {
		return frame{}, err
	}
	sites, err := newSites(doc.SiteProperties())
	if err != nil {
		return frame{}, err
	}
	f := frame{cell: c, pbc: p, sites: sites}
	if doc.Kinds != nil {
		f.declared = append([]string{}, doc.Kinds...)
	}

	return f, nil
}

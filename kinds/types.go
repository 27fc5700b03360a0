// SPDX-License-Identifier: MIT

package kinds

import (
	"github.com/katalvlaran/atomistic/errors"
	"github.com/katalvlaran/atomistic/site"
)

var (
	// ErrTagCount indicates kind tags whose length differs from the site count.
	ErrTagCount = errors.Classed("kinds: kind tags length must match site count", errors.ErrSchema)

	// ErrTagMismatch indicates kind tags that disagree with the exact
	// partition of the property values.
	ErrTagMismatch = errors.Classed("kinds: kind tags disagree with property values", errors.ErrConsistency)

	// ErrMissingValue indicates a compared property that is missing or
	// non-finite on some site.
	ErrMissingValue = errors.Classed("kinds: property value missing or non-finite", errors.ErrIntegrity)
)

// Source is the read-only site sequence kinds are resolved over.
type Source interface {
	Len() int
	Site(i int) site.Site
}

// Sites adapts a plain slice to Source.
type Sites []site.Site

// Len implements Source.
func (s Sites) Len() int { return len(s) }

// Site implements Source.
func (s Sites) Site(i int) site.Site { return s[i] }

// PropertyClusters is the clustering breakdown of one property.
type PropertyClusters struct {
	Property  site.Property `json:"property" yaml:"property"`
	Threshold float64       `json:"threshold" yaml:"threshold"`
	Labels    []int         `json:"labels" yaml:"labels"`
	Values    []float64     `json:"values" yaml:"values"`
	Count     int           `json:"count" yaml:"count"`
}

// Assignment is the outcome of Resolve.
type Assignment struct {
	// Properties holds one breakdown per included property, in
	// site.AllProperties order.
	Properties []PropertyClusters `json:"properties" yaml:"properties"`
	// Kinds[i] is the kind name of site i: the caller's tag when given,
	// the generated name otherwise.
	Kinds []string `json:"kinds" yaml:"kinds"`
	// Index[i] is the joint kind of site i, numbered densely by first
	// appearance.
	Index []int `json:"index" yaml:"index"`
	// Symbols[i] is the chemical symbol of site i.
	Symbols []string `json:"symbols" yaml:"symbols"`
	// Count is the number of joint kinds.
	Count int `json:"count" yaml:"count"`
}

// Clusters returns the breakdown of p, if p was included.
func (a *Assignment) Clusters(p site.Property) (PropertyClusters, bool) {
	for _, pc := range a.Properties {
		if pc.Property == p {
			return pc, true
		}
	}

	return PropertyClusters{}, false
}

// Names returns the distinct kind names in order of first appearance.
func (a *Assignment) Names() []string {
	seen := make(map[string]bool, len(a.Kinds))
	out := make([]string, 0, a.Count)
	for _, k := range a.Kinds {
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}

	return out
}

// Groups returns, per joint kind, the ascending indices of its sites.
func (a *Assignment) Groups() [][]int {
	out := make([][]int, a.Count)
	for i, g := range a.Index {
		out[g] = append(out[g], i)
	}

	return out
}

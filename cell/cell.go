// SPDX-License-Identifier: MIT

package cell

import (
	"math"
	"strconv"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/atomistic/errors"
)

// Cell is the lattice, one cell vector per row.
type Cell [3][3]float64

// PBC flags periodicity along each cell vector.
type PBC [3]bool

// Dimensionality labels indexed by the number of periodic axes.
const (
	LabelNone    = ""
	LabelLength  = "length"
	LabelSurface = "surface"
	LabelVolume  = "volume"
)

var labels = [4]string{LabelNone, LabelLength, LabelSurface, LabelVolume}

var (
	// ErrDegenerate indicates a periodic cell whose measure is zero.
	ErrDegenerate = errors.Classed("cell: periodic cell has zero measure", errors.ErrConsistency)

	// ErrZeroVector indicates an angle requested against a zero-length vector.
	ErrZeroVector = errors.Classed("cell: zero-length cell vector", errors.ErrUsage)
)

// Extent is the measure of the periodic part of a cell.
type Extent struct {
	Dim   int     `json:"dim" yaml:"dim"`
	Label string  `json:"label" yaml:"label"`
	Value float64 `json:"value" yaml:"value"`
}

// DefaultCell is the all-zero cell assigned when none is given.
func DefaultCell() Cell { return Cell{} }

// DefaultPBC is fully periodic.
func DefaultPBC() PBC { return PBC{true, true, true} }

// FromRows converts a row slice into a Cell. The shape must be 3×3.
func FromRows(rows [][]float64) (Cell, error) {
	var c Cell
	if len(rows) != 3 {
		return c, errors.Schema("cell", len(rows), "must have 3 rows")
	}
	for i, row := range rows {
		if len(row) != 3 {
			return c, errors.Schema("cell["+strconv.Itoa(i)+"]", len(row), "must have 3 components")
		}
		copy(c[i][:], row)
	}

	return c, nil
}

// FromBools converts a flag slice into a PBC. The length must be 3.
func FromBools(flags []bool) (PBC, error) {
	var p PBC
	if len(flags) != 3 {
		return p, errors.Schema("pbc", len(flags), "must have 3 entries")
	}
	copy(p[:], flags)

	return p, nil
}

// Rows returns the cell as a freshly allocated row slice.
func (c Cell) Rows() [][]float64 {
	out := make([][]float64, 3)
	for i := range c {
		out[i] = []float64{c[i][0], c[i][1], c[i][2]}
	}

	return out
}

// Bools returns the flags as a freshly allocated slice.
func (p PBC) Bools() []bool { return []bool{p[0], p[1], p[2]} }

// Dimensionality counts the periodic axes.
func (p PBC) Dimensionality() int {
	var d int
	for _, b := range p {
		if b {
			d++
		}
	}

	return d
}

// Vector returns cell vector i as an r3.Vec.
func (c Cell) Vector(i int) r3.Vec { return r3.Vec{X: c[i][0], Y: c[i][1], Z: c[i][2]} }

// Volume returns |a·(b×c)|. Linearly dependent integer cells give exactly 0.
func (c Cell) Volume() float64 {
	return math.Abs(r3.Dot(c.Vector(0), r3.Cross(c.Vector(1), c.Vector(2))))
}

// Lengths returns the norms of the three cell vectors.
func (c Cell) Lengths() [3]float64 {
	return [3]float64{r3.Norm(c.Vector(0)), r3.Norm(c.Vector(1)), r3.Norm(c.Vector(2))}
}

// Angles returns α=∠(b,c), β=∠(a,c), γ=∠(a,b) in degrees.
// Any zero-length vector yields ErrZeroVector.
func (c Cell) Angles() ([3]float64, error) {
	var out [3]float64
	pairs := [3][2]int{{1, 2}, {0, 2}, {0, 1}}
	for k, pr := range pairs {
		u, v := c.Vector(pr[0]), c.Vector(pr[1])
		nu, nv := r3.Norm(u), r3.Norm(v)
		if nu == 0 || nv == 0 {
			zero := pr[0]
			if nu != 0 {
				zero = pr[1]
			}
			return out, errors.With(ErrZeroVector, "cell["+strconv.Itoa(zero)+"]", c[zero], "must be nonzero to define an angle")
		}
		cos := r3.Dot(u, v) / (nu * nv)
		// rounding can push |cos| slightly past 1
		cos = math.Max(-1, math.Min(1, cos))
		out[k] = math.Acos(cos) * 180 / math.Pi
	}

	return out, nil
}

// Measure returns the length, surface or volume spanned by the periodic
// cell vectors. A 0-d system has measure 0.
func Measure(c Cell, p PBC) Extent {
	dim := p.Dimensionality()
	e := Extent{Dim: dim, Label: labels[dim]}

	var periodic []r3.Vec
	for i, b := range p {
		if b {
			periodic = append(periodic, c.Vector(i))
		}
	}
	switch dim {
	case 1:
		e.Value = r3.Norm(periodic[0])
	case 2:
		e.Value = r3.Norm(r3.Cross(periodic[0], periodic[1]))
	case 3:
		e.Value = c.Volume()
	}

	return e
}

// Validate checks that every entry of c is finite and that the periodic
// part of the cell is non-degenerate.
//
// Errors:
//   - errors.ErrSchema for a NaN or infinite entry.
//   - ErrDegenerate (errors.ErrConsistency) for a zero length, surface or volume.
func Validate(c Cell, p PBC) error {
	for i := range c {
		for j, v := range c[i] {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return errors.Schema("cell["+strconv.Itoa(i)+"]["+strconv.Itoa(j)+"]", v, "must be finite")
			}
		}
	}
	e := Measure(c, p)
	if e.Dim > 0 && e.Value == 0 {
		return errors.With(ErrDegenerate, "cell", c.Rows(),
			"pbc "+formatPBC(p)+" requires a nonzero "+strconv.Itoa(e.Dim)+"-d "+e.Label)
	}

	return nil
}

func formatPBC(p PBC) string {
	s := "["
	for i, b := range p {
		if i > 0 {
			s += " "
		}
		s += strconv.FormatBool(b)
	}

	return s + "]"
}

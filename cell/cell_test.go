package cell_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/atomistic/cell"
	"github.com/katalvlaran/atomistic/errors"
)

const eps = 1e-9

// TestMeasure_SurfacePasses covers pbc [T,T,F] with a unit square.
func TestMeasure_SurfacePasses(t *testing.T) {
	c := cell.Cell{{1, 0, 0}, {0, 1, 0}, {0, 0, 0}}
	p := cell.PBC{true, true, false}

	e := cell.Measure(c, p)
	assert.Equal(t, 2, e.Dim)
	assert.Equal(t, cell.LabelSurface, e.Label)
	assert.InDelta(t, 1.0, e.Value, eps)
	assert.NoError(t, cell.Validate(c, p))
}

// TestMeasure_SurfaceFails covers pbc [T,T,F] with a collapsed second vector.
func TestMeasure_SurfaceFails(t *testing.T) {
	c := cell.Cell{{1, 0, 0}, {0, 0, 0}, {0, 0, 0}}
	p := cell.PBC{true, true, false}

	assert.Zero(t, cell.Measure(c, p).Value)
	err := cell.Validate(c, p)
	require.Error(t, err)
	assert.ErrorIs(t, err, cell.ErrDegenerate)
	assert.ErrorIs(t, err, errors.ErrConsistency)
}

// TestValidate_Dimensionality checks each dimensionality against its measure.
func TestValidate_Dimensionality(t *testing.T) {
	cubic := cell.Cell{{2, 0, 0}, {0, 2, 0}, {0, 0, 2}}
	cases := []struct {
		name  string
		c     cell.Cell
		p     cell.PBC
		value float64
		ok    bool
	}{
		{"0d zero cell", cell.DefaultCell(), cell.PBC{}, 0, true},
		{"1d length", cell.Cell{{0, 0, 3}}, cell.PBC{true, false, false}, 3, true},
		{"1d zero", cell.Cell{{0, 0, 0}, {1, 0, 0}}, cell.PBC{true, false, false}, 0, false},
		{"1d on b", cell.Cell{{0, 0, 0}, {0, 4, 0}}, cell.PBC{false, true, false}, 4, true},
		{"3d cubic", cubic, cell.DefaultPBC(), 8, true},
		{"3d coplanar", cell.Cell{{1, 0, 0}, {0, 1, 0}, {1, 1, 0}}, cell.DefaultPBC(), 0, false},
		{"3d dependent rows", cell.Cell{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, cell.DefaultPBC(), 0, false},
		{"3d default cell", cell.DefaultCell(), cell.DefaultPBC(), 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.value, cell.Measure(tc.c, tc.p).Value, eps)
			if tc.ok {
				assert.NoError(t, cell.Validate(tc.c, tc.p))
			} else {
				assert.ErrorIs(t, cell.Validate(tc.c, tc.p), cell.ErrDegenerate)
			}
		})
	}
}

// TestValidate_NonFinite verifies a NaN entry is a schema error naming the entry.
func TestValidate_NonFinite(t *testing.T) {
	c := cell.Cell{{1, 0, 0}, {0, math.NaN(), 0}, {0, 0, 1}}
	err := cell.Validate(c, cell.DefaultPBC())
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrSchema)

	var fe *errors.FieldError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "cell[1][1]", fe.Field)
}

// TestVolume_LinearlyDependent verifies a - 2b + c = 0 yields exactly zero,
// not a round-off remainder.
func TestVolume_LinearlyDependent(t *testing.T) {
	c := cell.Cell{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	assert.Zero(t, c.Volume())

	err := cell.Validate(c, cell.DefaultPBC())
	require.Error(t, err)
	assert.ErrorIs(t, err, cell.ErrDegenerate)
	assert.ErrorIs(t, err, errors.ErrConsistency)
}

// TestVolume_Sign verifies a left-handed cell still has positive volume.
func TestVolume_Sign(t *testing.T) {
	c := cell.Cell{{0, 1, 0}, {1, 0, 0}, {0, 0, 3}}
	assert.InDelta(t, 3.0, c.Volume(), eps)
}

// TestLengthsAndAngles checks a hexagonal cell.
func TestLengthsAndAngles(t *testing.T) {
	a := 2.0
	c := cell.Cell{
		{a, 0, 0},
		{-a / 2, a * math.Sqrt(3) / 2, 0},
		{0, 0, 5},
	}
	l := c.Lengths()
	assert.InDelta(t, a, l[0], eps)
	assert.InDelta(t, a, l[1], eps)
	assert.InDelta(t, 5.0, l[2], eps)

	ang, err := c.Angles()
	require.NoError(t, err)
	assert.InDelta(t, 90.0, ang[0], 1e-7)
	assert.InDelta(t, 90.0, ang[1], 1e-7)
	assert.InDelta(t, 120.0, ang[2], 1e-7)
}

// TestAngles_ZeroVector verifies angles against a zero vector are rejected.
func TestAngles_ZeroVector(t *testing.T) {
	c := cell.Cell{{1, 0, 0}, {0, 1, 0}}
	_, err := c.Angles()
	require.Error(t, err)
	assert.ErrorIs(t, err, cell.ErrZeroVector)

	var fe *errors.FieldError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "cell[2]", fe.Field)
}

// TestFromRows checks shape validation and copying.
func TestFromRows(t *testing.T) {
	rows := [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	c, err := cell.FromRows(rows)
	require.NoError(t, err)
	rows[0][0] = 9
	assert.Equal(t, 1.0, c[0][0], "rows are copied")
	assert.Equal(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, c.Rows())

	_, err = cell.FromRows([][]float64{{1, 0, 0}})
	assert.ErrorIs(t, err, errors.ErrSchema)
	_, err = cell.FromRows([][]float64{{1, 0, 0}, {0, 1}, {0, 0, 1}})
	assert.ErrorIs(t, err, errors.ErrSchema)
}

// TestFromBools checks pbc length validation.
func TestFromBools(t *testing.T) {
	p, err := cell.FromBools([]bool{true, false, true})
	require.NoError(t, err)
	assert.Equal(t, 2, p.Dimensionality())
	assert.Equal(t, []bool{true, false, true}, p.Bools())

	_, err = cell.FromBools([]bool{true})
	assert.ErrorIs(t, err, errors.ErrSchema)
}

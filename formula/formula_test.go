package formula_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/atomistic/errors"
	"github.com/katalvlaran/atomistic/formula"
)

func split(s string) []string { return strings.Fields(s) }

var perovskite = split("Ba Ti O O O Ba Ti O O O Ba Ti Ti O O O")

// TestFormat_Modes pins every mode against the documented examples.
func TestFormat_Modes(t *testing.T) {
	cases := []struct {
		symbols []string
		mode    formula.Mode
		want    string
	}{
		{split("C H H H O C H H H"), formula.Hill, "C2H6O"},
		{split("S O O H O H O"), formula.Hill, "H2O4S"},
		{split("Li Li Cu"), formula.Hill, "CuLi2"}, // Cu1Li2 with the count of 1 dropped
		{split("H C H H H"), formula.Hill, "CH4"},
		{split("C H H H O C H H H O O O"), formula.HillCompact, "CH3O2"},
		{perovskite, formula.Reduce, "BaTiO3BaTiO3BaTi2O3"},
		{perovskite, formula.Group, "(BaTiO3)2BaTi2O3"},
		{split("Ba Ti O O O Ba Ti O O O"), formula.Count, "Ba2Ti2O6"},
		{split("Ba Ti O O O Ba Ti O O O"), formula.CountCompact, "BaTiO3"},
		{split("Fe"), formula.Group, "Fe"},
		{split("A B A B"), formula.Group, "(AB)2"},
		{split("O O O O"), formula.Group, "O4"},
		{split("Na Cl Na Cl Na Cl Na Cl"), formula.Group, "(NaCl)4"},
	}
	for _, tc := range cases {
		t.Run(string(tc.mode)+"/"+tc.want, func(t *testing.T) {
			got, err := formula.Format(tc.symbols, tc.mode, "")
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestFormat_Separator verifies the separator joins terms at every level.
func TestFormat_Separator(t *testing.T) {
	got, err := formula.Format(perovskite, formula.Group, " ")
	require.NoError(t, err)
	assert.Equal(t, "(Ba Ti O3)2 Ba Ti2 O3", got)

	got, err = formula.Format(split("Li Li Cu"), formula.Hill, "-")
	require.NoError(t, err)
	assert.Equal(t, "Cu-Li2", got)
}

// TestFormat_Empty verifies an empty list renders as "".
func TestFormat_Empty(t *testing.T) {
	for _, m := range formula.Modes() {
		got, err := formula.Format(nil, m, "")
		require.NoError(t, err)
		assert.Empty(t, got, m)
	}
}

// TestFormat_UnknownMode verifies a usage error listing the accepted modes.
func TestFormat_UnknownMode(t *testing.T) {
	_, err := formula.Format(split("H H O"), formula.Mode("iupac"), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrUsage)
	assert.Contains(t, err.Error(), "hill_compact")
	assert.Contains(t, errors.FlattenHints(err), "count_compact")
}

// TestComposition_Modes checks full, reduced and fractional compositions.
func TestComposition_Modes(t *testing.T) {
	symbols := split("Ba Zr O O O Ba Zr O O O")

	full, err := formula.Composition(symbols, formula.Full)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"Ba": 2, "Zr": 2, "O": 6}, full)

	reduced, err := formula.Composition(symbols, formula.Reduced)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"Ba": 1, "Zr": 1, "O": 3}, reduced)

	frac, err := formula.Composition(symbols, formula.Fractional)
	require.NoError(t, err)
	assert.InDelta(t, 0.2, frac["Ba"], 1e-12)
	assert.InDelta(t, 0.6, frac["O"], 1e-12)
}

// TestComposition_EmptyAndUnknown covers the edge cases.
func TestComposition_EmptyAndUnknown(t *testing.T) {
	got, err := formula.Composition(nil, formula.Fractional)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = formula.Composition(split("H"), formula.CompositionMode("molar"))
	assert.ErrorIs(t, err, errors.ErrUsage)
}

// TestParseMode covers the name validation helpers.
func TestParseMode(t *testing.T) {
	m, err := formula.ParseMode("group")
	require.NoError(t, err)
	assert.Equal(t, formula.Group, m)
	_, err = formula.ParseMode("Group")
	assert.ErrorIs(t, err, errors.ErrUsage)

	cm, err := formula.ParseCompositionMode("reduced")
	require.NoError(t, err)
	assert.Equal(t, formula.Reduced, cm)
	_, err = formula.ParseCompositionMode("")
	assert.ErrorIs(t, err, errors.ErrUsage)
}

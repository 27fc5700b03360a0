package element_test

import (
	"testing"

	"github.com/katalvlaran/atomistic/element"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_KnownSymbols(t *testing.T) {
	fe, ok := element.Lookup("Fe")
	require.True(t, ok)
	assert.Equal(t, 26, fe.Number)
	assert.Equal(t, "Iron", fe.Name)
	assert.InDelta(t, 55.845, fe.Mass, 1e-9)

	m, ok := element.Mass("Li")
	require.True(t, ok)
	assert.InDelta(t, 6.941, m, 1e-9)
}

func TestLookup_IsCaseSensitive(t *testing.T) {
	assert.False(t, element.IsValid("fe"))
	assert.False(t, element.IsValid("FE"))
	assert.False(t, element.IsValid(""))
	assert.True(t, element.IsValid("X"))
}

func TestTable_IndexedByNumber(t *testing.T) {
	symbols := element.Symbols()
	require.Len(t, symbols, 119)
	for z, s := range symbols {
		e, ok := element.ByNumber(z)
		require.True(t, ok)
		assert.Equal(t, z, e.Number, "entry %s out of place", s)
		assert.Equal(t, s, e.Symbol)
	}
	_, ok := element.ByNumber(119)
	assert.False(t, ok)
	_, ok = element.ByNumber(-1)
	assert.False(t, ok)
}

package kinds_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/katalvlaran/atomistic/kinds"
	"github.com/katalvlaran/atomistic/site"
)

// TestDefaultThresholds pins the documented defaults.
func TestDefaultThresholds(t *testing.T) {
	d := kinds.DefaultThresholds()
	assert.Equal(t, 0.1, d.Get(site.Charge))
	assert.Equal(t, 1e-4, d.Get(site.Mass))
	assert.Equal(t, 1e-2, d.Get(site.Magnetization))
	assert.Equal(t, 0.0, d.Get(site.Weight))
	assert.Equal(t, 0.0, d.Get(site.Property("spin")), "unknown property resolves to 0")
}

// TestThresholds_With verifies With returns a modified copy.
func TestThresholds_With(t *testing.T) {
	d := kinds.DefaultThresholds()
	m := d.With(site.Mass, 0.5)
	assert.Equal(t, 0.5, m.Mass)
	assert.Equal(t, kinds.DefaultMassThreshold, d.Mass, "receiver unchanged")
}

// TestOptions_Panics verifies option constructors reject nonsense.
func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { kinds.WithThreshold(site.Charge, -1) })
	assert.Panics(t, func() { kinds.WithThreshold(site.Charge, math.NaN()) })
	assert.Panics(t, func() { kinds.WithThreshold(site.Charge, math.Inf(1)) })
	assert.Panics(t, func() { kinds.WithThreshold(site.Property("spin"), 1) })
	assert.Panics(t, func() { kinds.WithThresholds(kinds.Thresholds{Mass: -1}) })
	assert.Panics(t, func() { kinds.WithExclude(site.Property("spin")) })
	assert.Panics(t, func() { kinds.WithStrategy(kinds.Strategy(9)) })
	assert.Panics(t, func() { kinds.WithLogger(nil) })

	assert.NotPanics(t, func() { kinds.WithThreshold(site.Weight, 0) })
	assert.NotPanics(t, func() { kinds.WithLogger(zap.NewNop()) })
}

// TestStrategy_String covers the Stringer.
func TestStrategy_String(t *testing.T) {
	assert.Equal(t, "keyed", kinds.Keyed.String())
	assert.Equal(t, "pairwise", kinds.Pairwise.String())
	assert.Equal(t, "unknown", kinds.Strategy(9).String())
}

// TestWithTags_Copies verifies the caller's slice is not retained.
func TestWithTags_Copies(t *testing.T) {
	tags := []string{"Li0", "Li0", "Cu0"}
	opt := kinds.WithTags(tags)
	tags[0] = "X"
	a, err := kinds.Resolve(lithiumCopper(), opt)
	assert.NoError(t, err)
	assert.Equal(t, []string{"Li0", "Li0", "Cu0"}, a.Kinds)
}

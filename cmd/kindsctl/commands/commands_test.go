package commands_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/atomistic/cluster"
	"github.com/katalvlaran/atomistic/cmd/kindsctl/commands"
	"github.com/katalvlaran/atomistic/errors"
	"github.com/katalvlaran/atomistic/exchange"
	"github.com/katalvlaran/atomistic/kinds"
)

const lithiumCopper = `{
  "cell": [[3, 0, 0], [0, 3, 0], [0, 0, 3]],
  "pbc": [true, true, true],
  "sites": [
    {"symbol": "Li", "position": [0, 0, 0], "charge": 1.0},
    {"symbol": "Li", "position": [1, 0, 0], "charge": 1.05},
    {"symbol": "Cu", "position": [2, 0, 0]}
  ]
}`

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := commands.NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

func runKinds(t *testing.T, args ...string) kinds.Assignment {
	t.Helper()
	out, err := run(t, "", append([]string{"kinds"}, args...)...)
	require.NoError(t, err)
	var a kinds.Assignment
	require.NoError(t, json.Unmarshal([]byte(out), &a))

	return a
}

func TestKinds_DefaultThresholds(t *testing.T) {
	path := writeFile(t, "LiCu.json", lithiumCopper)
	a := runKinds(t, path)
	assert.Equal(t, []string{"Li0", "Li0", "Cu0"}, a.Kinds)
	assert.Equal(t, []int{0, 0, 1}, a.Index)
}

func TestKinds_ThresholdFlag(t *testing.T) {
	path := writeFile(t, "LiCu.json", lithiumCopper)
	a := runKinds(t, path, "--threshold", "charge=0.01")
	assert.Equal(t, []string{"Li0", "Li1", "Cu0"}, a.Kinds)
}

func TestKinds_ThresholdFromEnv(t *testing.T) {
	t.Setenv("ATOMISTIC_THRESHOLDS_CHARGE", "0.01")
	path := writeFile(t, "LiCu.json", lithiumCopper)
	a := runKinds(t, path)
	assert.Equal(t, []string{"Li0", "Li1", "Cu0"}, a.Kinds)
}

func TestKinds_ThresholdFromConfigFile(t *testing.T) {
	cfg := writeFile(t, "kindsctl.yaml", "thresholds:\n  charge: 0.01\n")
	path := writeFile(t, "LiCu.json", lithiumCopper)
	a := runKinds(t, "--config", cfg, path)
	assert.Equal(t, []string{"Li0", "Li1", "Cu0"}, a.Kinds)
}

func TestKinds_ExcludeAndTags(t *testing.T) {
	path := writeFile(t, "LiCu.json", lithiumCopper)
	a := runKinds(t, path, "--threshold", "charge=0.01", "--exclude", "charge")
	assert.Equal(t, []string{"Li0", "Li0", "Cu0"}, a.Kinds)

	a = runKinds(t, path, "--tags", "A,A,B", "--threshold", "charge=0.01", "--exclude", "charge")
	assert.Equal(t, []string{"A", "A", "B"}, a.Kinds)
}

func TestKinds_BadFlags(t *testing.T) {
	path := writeFile(t, "LiCu.json", lithiumCopper)

	_, err := run(t, "", "kinds", path, "--threshold", "charge=-1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, cluster.ErrBadThreshold))

	_, err = run(t, "", "kinds", path, "--threshold", "charge")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrSchema))

	_, err = run(t, "", "kinds", path, "--strategy", "greedy")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrUsage))
	assert.Contains(t, errors.FlattenHints(err), "pairwise")
}

func TestFormulaAndComposition(t *testing.T) {
	path := writeFile(t, "LiCu.json", lithiumCopper)

	out, err := run(t, "", "formula", path)
	require.NoError(t, err)
	assert.Equal(t, "CuLi2\n", out)

	out, err = run(t, "", "formula", path, "--mode", "count", "--separator", " ")
	require.NoError(t, err)
	assert.Equal(t, "Li2 Cu\n", out)

	out, err = run(t, "", "composition", path)
	require.NoError(t, err)
	var comp map[string]float64
	require.NoError(t, json.Unmarshal([]byte(out), &comp))
	assert.Equal(t, map[string]float64{"Li": 2, "Cu": 1}, comp)

	_, err = run(t, "", "formula", path, "--mode", "iupac")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrUsage))
}

func TestValidate(t *testing.T) {
	path := writeFile(t, "LiCu.json", lithiumCopper)
	out, err := run(t, "", "validate", path)
	require.NoError(t, err)
	assert.Equal(t, "ok: 3 sites, 2 kinds, CuLi2\n", out)

	bad := writeFile(t, "bad.json", `{"sites":[{"symbol":"Li","position":[0,0]}]}`)
	_, err = run(t, "", "validate", bad)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrSchema))
	var fe *errors.FieldError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "sites[0].position", fe.Field)

	unknown := writeFile(t, "unknown.json", `{"sites":[],"lattice":[]}`)
	_, err = run(t, "", "validate", unknown)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrUsage))
}

func TestInspect(t *testing.T) {
	path := writeFile(t, "LiCu.json", lithiumCopper)
	out, err := run(t, "", "inspect", path, "-o", "json")
	require.NoError(t, err)
	var got commands.Inspection
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 3, got.Sites)
	assert.Equal(t, 3, got.Dimensionality.Dim)
	assert.InDelta(t, 27.0, got.CellVolume, 1e-9)
	assert.InDeltaSlice(t, []float64{90, 90, 90}, got.CellAngles, 1e-9)
	assert.False(t, got.IsAlloy)
	assert.False(t, got.HasVacancies)

	out, err = run(t, "", "inspect", path, "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "cell_volume: 27")
	assert.Contains(t, out, "label: volume")
}

func TestConvert(t *testing.T) {
	path := writeFile(t, "LiCu.json", lithiumCopper)
	out, err := run(t, "", "convert", path, "--to", "yaml")
	require.NoError(t, err)
	doc, err := exchange.DecodeBytes([]byte(out), exchange.YAML)
	require.NoError(t, err)
	require.NoError(t, doc.Validate())
	require.Len(t, doc.Sites, 3)
	assert.Equal(t, "Li", doc.Sites[0].KindName)
	assert.Equal(t, "Cu", doc.Sites[2].KindName)

	target := filepath.Join(t.TempDir(), "LiCu.msgpack")
	_, err = run(t, "", "convert", path, "--to", "msgpack", "--out", target)
	require.NoError(t, err)
	out, err = run(t, "", "formula", target)
	require.NoError(t, err)
	assert.Equal(t, "CuLi2\n", out)

	_, err = run(t, "", "convert", path, "--to", "cif")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCapability))
}

func TestStdin(t *testing.T) {
	_, err := run(t, lithiumCopper, "formula", "-")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrUsage))

	out, err := run(t, lithiumCopper, "formula", "-", "--format", "json")
	require.NoError(t, err)
	assert.Equal(t, "CuLi2\n", out)
}

func TestConfig_BadOutput(t *testing.T) {
	path := writeFile(t, "LiCu.json", lithiumCopper)
	_, err := run(t, "", "inspect", path, "-o", "xml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrUsage))

	t.Setenv("ATOMISTIC_THRESHOLDS_MASS", "-1")
	_, err = run(t, "", "kinds", path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, cluster.ErrBadThreshold))
}

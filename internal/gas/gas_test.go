package gas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	p, ok := Get("lox-lh2")
	require.True(t, ok)
	assert.Equal(t, 1.26, p.Gamma)
	assert.Equal(t, 616.0, p.Rs)
	assert.Equal(t, 3560.0, p.T0)

	_, ok = Get("kerolox")
	assert.False(t, ok)
}

func TestPresetsAreValidDomains(t *testing.T) {
	for name, p := range Presets {
		assert.Greater(t, p.Gamma, 1.0, "preset %s", name)
		assert.Greater(t, p.Rs, 0.0, "preset %s", name)
		assert.Greater(t, p.T0, 0.0, "preset %s", name)
	}
}

func TestList(t *testing.T) {
	names := List()
	require.NotEmpty(t, names)
	assert.IsIncreasing(t, names)
	assert.Contains(t, names, "lox-rp1")
}

func TestLoadTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gases.yaml")
	content := []byte("h2o2:\n  gamma: 1.25\n  rs: 380\n  t0: 1300\n")
	require.NoError(t, os.WriteFile(path, content, 0644))

	table, err := LoadTable(path)
	require.NoError(t, err)
	require.Contains(t, table, "h2o2")
	assert.Equal(t, 1.25, table["h2o2"].Gamma)
}

func TestLoadTableRejectsBadGamma(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gases.yaml")
	content := []byte("bad:\n  gamma: 0.9\n  rs: 380\n  t0: 1300\n")
	require.NoError(t, os.WriteFile(path, content, 0644))

	_, err := LoadTable(path)
	assert.Error(t, err)
}

func TestLoadTableMissingFile(t *testing.T) {
	_, err := LoadTable(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCase(t *testing.T) {
	c := DefaultCase()

	assert.NoError(t, c.Validate())
	assert.Equal(t, DefaultGamma, c.Gas.Gamma)
	assert.Equal(t, "pe_p0", c.Sweep.Quantity)
	assert.Greater(t, c.Sweep.Points, 1)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "case.yaml")

	c := DefaultCase()
	c.Gas.Preset = "lox-rp1"
	c.Gas.Gamma = 1.22
	c.Nozzle.RatioAeAstar = 40

	require.NoError(t, Save(path, c))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, c, loaded)
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	content := []byte("gas:\n  gamma: 1.3\n  rs: 296\n  t0: 2800\n")
	require.NoError(t, os.WriteFile(path, content, 0644))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1.3, loaded.Gas.Gamma)
	// fields absent from the file keep their defaults
	assert.Equal(t, DefaultPeP0, loaded.Nozzle.RatioPeP0)
	assert.Equal(t, DefaultPoints, loaded.Sweep.Points)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Case)
	}{
		{"gamma too small", func(c *Case) { c.Gas.Gamma = 1.0 }},
		{"negative rs", func(c *Case) { c.Gas.Rs = -1 }},
		{"zero t0", func(c *Case) { c.Gas.T0 = 0 }},
		{"pe_p0 at one", func(c *Case) { c.Nozzle.RatioPeP0 = 1 }},
		{"negative pa_p0", func(c *Case) { c.Nozzle.RatioPaP0 = -0.1 }},
		{"area ratio below one", func(c *Case) { c.Nozzle.RatioAeAstar = 0.9 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultCase()
			tt.mutate(c)
			assert.Error(t, c.Validate())
		})
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/tuning"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	path := filepath.Join(t.TempDir(), "fretdex.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0666))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestLoadMissingOptional(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), true)
	require.NoError(t, err)
	assert.Equal(t, Default().Profiles, cfg.Profiles)

	_, err = Load(filepath.Join(t.TempDir(), "nope.yaml"), false)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
listen_addr: ":9090"
default_tuning: drop-d
default_profile: tight
profiles:
  tight:
    max_fingers: 3
    max_fret_span: 2
    allow_barres: false
    allow_open_strings: true
    allow_muted_strings: true
cache:
  ttl: 1h
`)
	cfg, err := Load(path, false)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.Equal(t, "drop-d", cfg.DefaultTuning)
	assert.Equal(t, time.Hour, cfg.Cache.TTL)
	assert.Contains(t, cfg.Profiles, "default")

	c, err := cfg.Constraints("", tuning.Standard())
	require.NoError(t, err)
	assert.Equal(t, 3, c.MaxFingers)
	assert.False(t, c.AllowBarres)
	assert.Len(t, c.Tuning, 6)
}

func TestPartialProfileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
profiles:
  default:
    max_fingers: 3
  loose:
    max_fret_span: 5
`)
	cfg, err := Load(path, false)
	require.NoError(t, err)

	def := Default().Profiles["default"]
	got := cfg.Profiles["default"]
	assert.Equal(t, 3, got.MaxFingers)
	assert.Equal(t, def.MaxFretSpan, got.MaxFretSpan)
	assert.True(t, got.AllowBarres)
	assert.True(t, got.AllowOpenStrings)
	assert.True(t, got.AllowMutedStrings)

	loose := cfg.Profiles["loose"]
	assert.Equal(t, 5, loose.MaxFretSpan)
	assert.Equal(t, def.MaxFingers, loose.MaxFingers)
	assert.True(t, loose.AllowMutedStrings)
	assert.Contains(t, cfg.Profiles, "root-in-bass")
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("INDEX_PATH", "/tmp/fretdex-index")
	t.Setenv("LISTEN_ADDR", ":7000")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), true)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/fretdex-index", cfg.IndexDir)
	assert.Equal(t, ":7000", cfg.ListenAddr)
}

func TestInvalidConfigs(t *testing.T) {
	cases := map[string]string{
		"negative fingers": "profiles:\n  default:\n    max_fingers: -1\n",
		"unknown default":  "default_profile: nope\n",
		"unknown tuning":   "default_tuning: Q Q Q\n",
		"dynamo no table":  "cache:\n  dynamo_endpoint: http://localhost:8000\n  table: \"\"\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body), false)
			assert.Error(t, err)
		})
	}
}

func TestUnknownProfile(t *testing.T) {
	_, err := Default().Constraints("nope", tuning.Standard())
	assert.ErrorIs(t, err, ErrUnknownProfile)
}

func TestValidateConstraints(t *testing.T) {
	c := model.DefaultConstraints(tuning.Standard())
	assert.NoError(t, ValidateConstraints(c))

	c.MaxFretSpan = -2
	assert.Error(t, ValidateConstraints(c))

	c = model.DefaultConstraints(model.Tuning{})
	assert.Error(t, ValidateConstraints(c))

	neg := -1
	assert.Error(t, ValidatePatch(&model.ConstraintsPatch{MaxFingers: &neg}))
	assert.NoError(t, ValidatePatch(nil))
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitop/internal/errors"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, int64(DefaultRateMs), cfg.RateMs)
	assert.Equal(t, UnitCelsius, cfg.TemperatureUnit)
	assert.False(t, cfg.ShowAverageCPU)
	assert.NoError(t, Validate(cfg))
}

func TestRateDuration(t *testing.T) {
	cfg := &Config{RateMs: 1500}
	assert.Equal(t, 1500*time.Millisecond, cfg.Rate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid defaults", *DefaultConfig(), false},
		{"minimum rate", Config{RateMs: MinRateMs, TemperatureUnit: UnitCelsius}, false},
		{"rate below minimum", Config{RateMs: 249, TemperatureUnit: UnitCelsius}, true},
		{"zero rate", Config{RateMs: 0}, true},
		{"negative rate", Config{RateMs: -1000}, true},
		{"rate above representable range", Config{RateMs: MaxRateMs + 1, TemperatureUnit: UnitCelsius}, true},
		{"fahrenheit", Config{RateMs: 1000, TemperatureUnit: UnitFahrenheit}, false},
		{"kelvin", Config{RateMs: 1000, TemperatureUnit: UnitKelvin}, false},
		{"empty unit falls back to default", Config{RateMs: 1000}, false},
		{"unknown unit", Config{RateMs: 1000, TemperatureUnit: "rankine"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(&tt.cfg)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsCode(err, errors.ErrConfig))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	content := "rate_ms: 2000\ntemperature_unit: kelvin\nshow_average_cpu: true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, int64(2000), cfg.RateMs)
	assert.Equal(t, UnitKelvin, cfg.TemperatureUnit)
	assert.True(t, cfg.ShowAverageCPU)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("rate_ms: [not a number\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestFindExplicitMissing(t *testing.T) {
	_, err := Find(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestLoadOrDefaultWithoutFile(t *testing.T) {
	// Run from an empty directory so no local config is picked up.
	dir := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer func() { _ = os.Chdir(cwd) }()
	t.Setenv("HOME", dir)

	cfg, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, int64(DefaultRateMs), cfg.RateMs)
	assert.Equal(t, UnitCelsius, cfg.TemperatureUnit)
}

func TestEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("rate_ms: 2000\n"), 0o644))
	t.Setenv("VITOP_RATE_MS", "3000")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(3000), cfg.RateMs)
}

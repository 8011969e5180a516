package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	opts, err := parseFlags([]string{"-dep", "ULLI", "-arr", "UUEE", "-aircraft", "B738", "-save", "out", "-dump"})
	require.NoError(t, err)
	assert.Equal(t, "ULLI", opts.departure)
	assert.Equal(t, "UUEE", opts.arrival)
	assert.Equal(t, "B738", opts.aircraft)
	assert.Equal(t, "out", opts.saveDir)
	assert.True(t, opts.dump)
}

func TestParseFlagsRequiresRoute(t *testing.T) {
	_, err := parseFlags([]string{"-dep", "ULLI"})
	assert.ErrorIs(t, err, flag.ErrHelp)
}

func TestRunWithStaticAirports(t *testing.T) {
	dir := t.TempDir()
	airports := filepath.Join(dir, "airports.json")
	require.NoError(t, os.WriteFile(airports, []byte(`[
		{"icao": "ULLI", "latitude": 59.8003, "longitude": 30.2625},
		{"icao": "UUEE", "latitude": 55.9726, "longitude": 37.4146}
	]`), 0o600))

	err := run(context.Background(), options{
		departure: "ULLI",
		arrival:   "UUEE",
		aircraft:  "B738",
		saveDir:   dir,
		airports:  airports,
	})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "route-B738-ULLI-to-UUEE.json"))
	require.NoError(t, err)

	var record map[string]any
	require.NoError(t, json.Unmarshal(data, &record))
	assert.Equal(t, "B738", record["aircraft"])
}

func TestRunUnknownAircraft(t *testing.T) {
	dir := t.TempDir()
	airports := filepath.Join(dir, "airports.json")
	require.NoError(t, os.WriteFile(airports, []byte(`[]`), 0o600))

	err := run(context.Background(), options{departure: "ULLI", arrival: "UUEE", aircraft: "X1", airports: airports})
	assert.ErrorContains(t, err, "unknown aircraft type")
}

func TestLoadConfigAirportsFlagOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
modules:
  flight-plan:
    airports:
      file: /from/config.json
    provider:
      max_retries: 3
`), 0o600))

	cfg, err := loadConfig(options{configPath: path})
	require.NoError(t, err)
	assert.Equal(t, "/from/config.json", cfg.GetString("modules.flight-plan.airports.file"))

	cfg, err = loadConfig(options{configPath: path, airports: "/from/flag.json"})
	require.NoError(t, err)
	assert.Equal(t, "/from/flag.json", cfg.GetString("modules.flight-plan.airports.file"))
	assert.Equal(t, 3, cfg.GetInt("modules.flight-plan.provider.max_retries"))
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := loadConfig(options{configPath: filepath.Join(t.TempDir(), "missing.yaml")})
	assert.Error(t, err)
}

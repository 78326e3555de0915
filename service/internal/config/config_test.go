// internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv(lookupFrom(nil))
	require.NoError(t, err)
	assert.Equal(t, 200000, cfg.Games)
	assert.Equal(t, runtime.NumCPU(), cfg.Parallelism)
	assert.Equal(t, 10, cfg.WarmupGames)
	assert.False(t, cfg.DetailedLog)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestFromEnvOverrides(t *testing.T) {
	cfg, err := FromEnv(lookupFrom(map[string]string{
		EnvGames:       "5000",
		EnvParallelism: " 3 ",
		EnvWarmupGames: "0",
		EnvDetailedLog: "true",
		EnvLogLevel:    "DEBUG",
		EnvLogFormat:   "json",
	}))
	require.NoError(t, err)
	assert.Equal(t, Simulation{
		Games:       5000,
		Parallelism: 3,
		WarmupGames: 0,
		DetailedLog: true,
		LogLevel:    "debug",
		LogFormat:   "json",
	}, cfg)
}

func TestFromEnvInvalid(t *testing.T) {
	tests := map[string]map[string]string{
		"non-numeric games":  {EnvGames: "lots"},
		"zero games":         {EnvGames: "0"},
		"zero parallelism":   {EnvParallelism: "0"},
		"negative warmup":    {EnvWarmupGames: "-1"},
		"bad bool":           {EnvDetailedLog: "maybe"},
		"unknown log format": {EnvLogFormat: "xml"},
	}
	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := FromEnv(lookupFrom(env))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte(EnvWarmupGames+"=7\n"), 0o600))

	// godotenv.Load sets process variables; make sure they are cleared.
	t.Setenv(EnvWarmupGames, "")
	require.NoError(t, os.Unsetenv(EnvWarmupGames))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.WarmupGames)
}

func TestLoadEnvFileDoesNotOverrideEnvironment(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte(EnvGames+"=10\n"), 0o600))
	t.Setenv(EnvGames, "20")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Games)
}

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.NoError(t, err)
}

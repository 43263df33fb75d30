package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, time.UTC, cfg.Location())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corebank.yaml")
	body := []byte("app_env: test\nlog:\n  level: DEBUG\n  format: text\nprimes:\n  workers: 8\n")
	require.NoError(t, os.WriteFile(path, body, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "test", cfg.AppEnv)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, 8, cfg.Primes.Workers)
	assert.Equal(t, defaultCompoundFrequency, cfg.Calculator.CompoundFrequency)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corebank.yaml")
	require.NoError(t, os.WriteFile(path, []byte("primes:\n  workers: 8\n"), 0o600))
	t.Setenv("COREBANK_PRIMES_WORKERS", "2")
	t.Setenv("COREBANK_BANK_INTEREST_WORKERS", "6")
	t.Setenv("COREBANK_CLOCK_TIMEZONE", "Africa/Brazzaville")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Primes.Workers)
	assert.Equal(t, 6, cfg.Bank.InterestWorkers)
	assert.Equal(t, "Africa/Brazzaville", cfg.Location().String())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestValidateCollectsErrors(t *testing.T) {
	cfg := Default()
	cfg.Log.Format = "xml"
	cfg.Primes.Workers = 0
	cfg.Bank.InterestWorkers = -1
	cfg.Clock.Timezone = "Nowhere/Special"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log.format")
	assert.Contains(t, err.Error(), "primes.workers")
	assert.Contains(t, err.Error(), "bank.interest_workers")
	assert.Contains(t, err.Error(), "clock.timezone")
}

package netgym

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
env_config:
  env: obss
  address: localhost:8088
  client_id: 1
  steps: 500
  history_capacity: 50
rl_config:
  agent: thompson
  seed: 7
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "obss", cfg.EnvConfig.Env)
	assert.Equal(t, "localhost:8088", cfg.EnvConfig.Address)
	assert.Equal(t, 500, cfg.EnvConfig.Steps)
	assert.Equal(t, 50, cfg.EnvConfig.HistoryCapacity)
	assert.Equal(t, "thompson", cfg.RLConfig.Agent)
	assert.Equal(t, int64(7), cfg.RLConfig.Seed)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_UnknownFieldIsError(t *testing.T) {
	path := writeConfig(t, `
env_config:
  env: ts
  adress: localhost:8088
`)

	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "parsing config")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "reading config")
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, configFor("apb").Validate())
	assert.NoError(t, configFor("ts").Validate())
	assert.NoError(t, configFor("obss").Validate())

	assert.ErrorContains(t, configFor("nqos_split").Validate(), "unknown environment")
	assert.ErrorContains(t, configFor("").Validate(), "unknown environment")

	bad := configFor("apb")
	bad.EnvConfig.Steps = -1
	assert.ErrorContains(t, bad.Validate(), "steps")
}

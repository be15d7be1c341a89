package netgym

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func configFor(env string) *Config {
	return &Config{EnvConfig: EnvConfig{Env: env}}
}

func TestNewAdapter_SelectsVariantByName(t *testing.T) {
	for name, want := range map[string]string{"apb": "apb", "ts": "ts", "obss": "obss"} {
		adapter, err := NewAdapter(configFor(name))
		require.NoError(t, err)
		assert.Equal(t, want, adapter.Name())
	}
}

func TestNewAdapter_UnknownEnvironment(t *testing.T) {
	_, err := NewAdapter(configFor("nqos_split"))
	assert.ErrorContains(t, err, "unknown environment")
}

func TestVariantConstructors_RejectMismatchedConfig(t *testing.T) {
	// Directly constructing a variant against a config naming a different
	// environment is the fatal configured-vs-launched mismatch.
	_, err := NewAPB(configFor("ts"))
	assert.ErrorContains(t, err, "wrong environment adapter")

	_, err = NewTS(configFor("obss"))
	assert.ErrorContains(t, err, "wrong environment adapter")

	_, err = NewOBSS(configFor("apb"))
	assert.ErrorContains(t, err, "wrong environment adapter")
}

func TestAdapter_SpacesAreStable(t *testing.T) {
	adapter, err := NewAdapter(configFor("obss"))
	require.NoError(t, err)

	// Declared contracts must not drift over the adapter's lifetime.
	assert.Equal(t, adapter.ActionSpace(), adapter.ActionSpace())
	assert.Equal(t, adapter.ObservationSpace().String(), adapter.ObservationSpace().String())
}

func TestAdapter_EncodePolicyBeforeAnyBatch(t *testing.T) {
	adapter, err := NewAdapter(configFor("apb"))
	require.NoError(t, err)

	_, err = adapter.EncodePolicy([]int{5})
	assert.ErrorIs(t, err, ErrNoTemplate)
}

package netgym

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func apbBatch(a, b float64) Batch {
	return Batch{
		{Source: "calculator", Name: "addend::a", StartTS: 10, EndTS: 20, IDs: []int{0}, Values: []float64{a}},
		{Source: "calculator", Name: "addend::b", StartTS: 10, EndTS: 20, IDs: []int{0}, Values: []float64{b}},
	}
}

func TestAPB_BuildObservation(t *testing.T) {
	adapter, err := NewAPB(configFor("apb"))
	require.NoError(t, err)

	obs, err := adapter.BuildObservation(apbBatch(7, 3))
	require.NoError(t, err)
	require.NoError(t, adapter.ObservationSpace().Validate(obs))
	assert.Equal(t, 7.0, obs[0].At(0, 0))
	assert.Equal(t, 3.0, obs[0].At(1, 0))
}

func TestAPB_BuildObservation_MissingFieldsAreSentinel(t *testing.T) {
	adapter, err := NewAPB(configFor("apb"))
	require.NoError(t, err)

	obs, err := adapter.BuildObservation(Batch{})
	require.NoError(t, err)
	assert.Equal(t, Missing, obs[0].At(0, 0))
	assert.Equal(t, Missing, obs[0].At(1, 0))
}

func TestAPB_DifferenceReward(t *testing.T) {
	adapter, err := NewAPB(configFor("apb"))
	require.NoError(t, err)

	batch := apbBatch(7, 3)
	_, err = adapter.BuildObservation(batch)
	require.NoError(t, err)

	reward, err := adapter.EvaluateReward(batch)
	require.NoError(t, err)
	assert.Equal(t, 4.0, reward)
	assert.Equal(t, 4.0, adapter.History().Recent(MetricReward, 1)[0])
}

func TestAPB_EncodePolicy(t *testing.T) {
	adapter, err := NewAPB(configFor("apb"))
	require.NoError(t, err)
	_, err = adapter.BuildObservation(apbBatch(7, 3))
	require.NoError(t, err)

	cmds, err := adapter.EncodePolicy([]int{10})
	require.NoError(t, err)
	require.Len(t, cmds, 1)

	// The command is the template record with name/value overridden:
	// source, timestamps and entity ids pass through.
	assert.Equal(t, "sum", cmds[0].Name)
	assert.Equal(t, "calculator", cmds[0].Source)
	assert.Equal(t, int64(10), cmds[0].StartTS)
	assert.Equal(t, []int{0}, cmds[0].IDs)
	assert.Equal(t, []float64{10}, cmds[0].Values)
}

func TestAPB_EncodePolicy_RejectsOutOfBoundsAction(t *testing.T) {
	adapter, err := NewAPB(configFor("apb"))
	require.NoError(t, err)
	_, err = adapter.BuildObservation(apbBatch(7, 3))
	require.NoError(t, err)

	// Action space is 19 integers starting at 2: [2, 20].
	_, err = adapter.EncodePolicy([]int{21})
	assert.ErrorContains(t, err, "outside action space")
	_, err = adapter.EncodePolicy([]int{1})
	assert.ErrorContains(t, err, "outside action space")
}

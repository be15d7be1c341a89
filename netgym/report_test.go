package netgym

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderStepHistory(t *testing.T) {
	h := NewHistory(10)
	h.Push(MetricStep, 1)
	h.Push(MetricTotalThpt, 100)
	h.Push(MetricVRThpt, 20)
	h.Push(MetricVRDelay, 2)
	h.Push(MetricReward, 120.3)
	h.Push(MetricObssPD, -70)
	h.Push(MetricTxPower, 18)

	out := RenderStepHistory(h, 5)
	require.NotEmpty(t, out)

	assert.Contains(t, out, "Step history (showing 5 records)")
	assert.Contains(t, out, "reward")
	assert.Contains(t, out, "120.30")
	assert.Contains(t, out, "-70")
	assert.Contains(t, out, "18")
	// Rows beyond the recorded count render the no-data marker.
	assert.Contains(t, out, "-")
}

func TestRenderStepHistory_EmptyLedger(t *testing.T) {
	out := RenderStepHistory(NewHistory(10), 3)
	require.NotEmpty(t, out)
	// Every cell is the no-data marker; the header row still names the metrics.
	assert.Contains(t, out, "VR delay (ms)")
	assert.False(t, strings.Contains(out, "NaN"))
}

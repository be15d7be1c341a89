package netgym

import "math"

// DefaultHistoryCapacity is the per-metric ring capacity used when the
// config does not override it.
const DefaultHistoryCapacity = 100

// Metric names recorded by the adapter variants. Reporting reads these;
// nothing in the observation/action/reward path ever reads them back.
const (
	MetricReward    = "reward"
	MetricStep      = "step"
	MetricAction    = "action"
	MetricObssPD    = "obss_pd"
	MetricTxPower   = "tx_power"
	MetricTotalThpt = "total_thpt"
	MetricVRThpt    = "vr_thpt"
	MetricVRDelay   = "vr_delay"
)

// History holds one fixed-capacity ring buffer per tracked scalar metric.
// Push is O(1) and silently evicts the oldest entry at capacity. Reads are
// newest-first and pad with NaN beyond the recorded count.
type History struct {
	capacity int
	series   map[string]*ring
}

type ring struct {
	buf   []float64
	head  int // next write position
	count int
}

// NewHistory creates a ledger with the given per-metric capacity;
// non-positive capacity falls back to DefaultHistoryCapacity.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultHistoryCapacity
	}
	return &History{capacity: capacity, series: make(map[string]*ring)}
}

// Capacity returns the per-metric ring capacity.
func (h *History) Capacity() int { return h.capacity }

// Push appends a value to the metric's ring, evicting the oldest entry
// once the ring is full.
func (h *History) Push(metric string, v float64) {
	r, ok := h.series[metric]
	if !ok {
		r = &ring{buf: make([]float64, h.capacity)}
		h.series[metric] = r
	}
	r.buf[r.head] = v
	r.head = (r.head + 1) % h.capacity
	if r.count < h.capacity {
		r.count++
	}
}

// Len returns the number of recorded values for a metric, at most the
// capacity.
func (h *History) Len(metric string) int {
	if r, ok := h.series[metric]; ok {
		return r.count
	}
	return 0
}

// Recent returns the n most-recent values for a metric, newest first,
// padding with NaN for slots beyond the recorded count.
func (h *History) Recent(metric string, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	r, ok := h.series[metric]
	if !ok {
		return out
	}
	for i := 0; i < n && i < r.count; i++ {
		out[i] = r.buf[((r.head-1-i)%h.capacity+h.capacity)%h.capacity]
	}
	return out
}

package netgym

import (
	"errors"
	"fmt"
)

// Missing is the sentinel returned when a selector matches no record in a
// batch. Downstream reward formulas may legitimately observe it; see the
// per-variant docs.
const Missing = -1.0

// ErrContractViolation reports a telemetry entity index outside the shape
// declared by the observation space. The simulator side is broken when this
// happens, so extraction fails fast instead of clipping.
var ErrContractViolation = errors.New("telemetry index outside declared observation shape")

// ErrNoTemplate reports that a policy was requested before any batch
// supplied the template record that seeds outgoing commands.
var ErrNoTemplate = errors.New("no telemetry template retained for this step")

// ErrDivisionByZero reports a reward formula whose denominator collapsed
// to zero for the current batch.
var ErrDivisionByZero = errors.New("reward denominator is zero")

// Measurement is one row of a step's telemetry batch. IDs and Values are
// positionally aligned; StartTS/EndTS are passthrough timestamps the
// simulator stamps on every record and expects back on commands.
type Measurement struct {
	Source  string    `json:"source"`
	Name    string    `json:"name"`
	StartTS int64     `json:"start_ts"`
	EndTS   int64     `json:"end_ts"`
	IDs     []int     `json:"id"`
	Values  []float64 `json:"value"`
}

// Validate checks the id/value alignment invariant. A record with no IDs is
// valid: the id is implicit (single-entity metrics).
func (m Measurement) Validate() error {
	if len(m.IDs) > 0 && len(m.IDs) != len(m.Values) {
		return fmt.Errorf("measurement %s/%s: id count %d != value count %d",
			m.Source, m.Name, len(m.IDs), len(m.Values))
	}
	return nil
}

// Command is an outgoing control directive. It is structurally a
// Measurement so that the simulator sees the record schema it emitted:
// commands are derived from a retained template record with name, id and
// value overridden.
type Command struct {
	Source  string    `json:"source"`
	Name    string    `json:"name"`
	StartTS int64     `json:"start_ts"`
	EndTS   int64     `json:"end_ts"`
	IDs     []int     `json:"id"`
	Values  []float64 `json:"value"`
}

// Command derives an outgoing command from this measurement, keeping the
// passthrough fields (source, timestamps) verbatim. A nil ids keeps the
// template's entity ids.
func (m Measurement) Command(name string, ids []int, values []float64) Command {
	if ids == nil {
		ids = append([]int(nil), m.IDs...)
	}
	return Command{
		Source:  m.Source,
		Name:    name,
		StartTS: m.StartTS,
		EndTS:   m.EndTS,
		IDs:     ids,
		Values:  values,
	}
}

// Batch is the unordered set of measurements delivered for one control
// step. There is no uniqueness constraint on (source, name); extraction
// scans the whole batch and the last match wins, mirroring the upstream
// record order contract (duplicates are the simulator's ambiguity, not
// ours).
type Batch []Measurement

// Validate checks every record's id/value alignment.
func (b Batch) Validate() error {
	for _, m := range b {
		if err := m.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Find returns the last record matching (source, name) and whether any
// matched.
func (b Batch) Find(source, name string) (Measurement, bool) {
	var found Measurement
	ok := false
	for _, m := range b {
		if m.Source == source && m.Name == name {
			found = m
			ok = true
		}
	}
	return found, ok
}

// Scalar extracts the first value of the last record matching
// (source, name), or Missing when the batch carries no such record.
func (b Batch) Scalar(source, name string) float64 {
	m, ok := b.Find(source, name)
	if !ok || len(m.Values) == 0 {
		return Missing
	}
	return m.Values[0]
}

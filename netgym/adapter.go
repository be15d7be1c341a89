package netgym

import (
	"fmt"
)

// Adapter translates between one environment variant's telemetry and the
// RL control loop. Implementations are stateful within a step: the
// template record retained by BuildObservation seeds the commands produced
// by EncodePolicy, and EvaluateReward may read the observation built for
// the same step. Callers must invoke BuildObservation before either of
// the other two for a given step; adapters are not safe for concurrent
// use and never need to be (one step at a time, by contract).
type Adapter interface {
	// Name returns the variant name the adapter was built for.
	Name() string
	// ActionSpace declares the bounds of acceptable action vectors.
	// Stable for the adapter's lifetime.
	ActionSpace() MultiDiscrete
	// ObservationSpace declares the shape of built observations.
	// Stable for the adapter's lifetime.
	ObservationSpace() Space
	// BuildObservation decodes a telemetry batch into a dense observation
	// conforming to ObservationSpace, retaining the variant's template
	// record as a side effect.
	BuildObservation(batch Batch) (Observation, error)
	// EncodePolicy converts a validated action vector into one or more
	// outgoing commands derived from the retained template.
	EncodePolicy(action []int) ([]Command, error)
	// EvaluateReward scores the step with the variant's reward formula.
	EvaluateReward(batch Batch) (float64, error)
	// History exposes the rolling ledger of recent step scalars, for
	// reporting only.
	History() *History
}

// NewAdapter constructs the adapter for the configured environment
// variant. An unrecognized name is a fatal configuration error: the
// client cannot talk to a simulator it has no decoding rules for.
func NewAdapter(cfg *Config) (Adapter, error) {
	switch cfg.EnvConfig.Env {
	case "apb":
		return NewAPB(cfg)
	case "ts":
		return NewTS(cfg)
	case "obss":
		return NewOBSS(cfg)
	default:
		return nil, fmt.Errorf("unknown environment %q (valid: apb, ts, obss)", cfg.EnvConfig.Env)
	}
}

// adapterState carries the per-step state shared by all variants: the
// retained template record, the last built observation, and the ledger.
type adapterState struct {
	history     *History
	template    Measurement
	hasTemplate bool
	observation Observation
	steps       int
}

func newAdapterState(cfg *Config) adapterState {
	return adapterState{history: NewHistory(cfg.EnvConfig.HistoryCapacity)}
}

// History implements Adapter.
func (s *adapterState) History() *History { return s.history }

// retain stores the template record that seeds this step's commands.
func (s *adapterState) retain(m Measurement) {
	s.template = m
	s.hasTemplate = true
}

// checkVariant enforces the configured-vs-launched variant match at
// construction. Mismatch is fatal at startup, not recoverable.
func checkVariant(cfg *Config, name string) error {
	if cfg.EnvConfig.Env != name {
		return fmt.Errorf("wrong environment adapter: configured environment %q != launched environment %q",
			cfg.EnvConfig.Env, name)
	}
	return nil
}

// checkAction rejects actions outside the declared action space.
func checkAction(space MultiDiscrete, action []int) error {
	if !space.Contains(action) {
		return fmt.Errorf("action %v outside action space %s", action, space)
	}
	return nil
}

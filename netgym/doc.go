// Package netgym is the translation layer between a NetworkGym simulator's
// telemetry stream and a reinforcement-learning control loop.
//
// # Reading Guide
//
// Start with these three files to understand the per-step data path:
//   - measurement.go: Measurement/Batch/Command schema and selector extraction
//   - adapter.go: the Adapter interface and the environment-variant registry
//   - env.go: the Reset/Step loop that wires a transport Conn to an Adapter
//
// # Architecture
//
// Each control step the simulator delivers an unordered Batch of tagged
// measurements. The configured Adapter variant decodes it into a dense,
// fixed-shape Observation (space.go, observation.go), the agent picks an
// action inside the declared action space, the adapter encodes that action
// into one or more template-derived Commands, and scores the step with its
// variant-specific reward formula. A bounded History ledger (history.go)
// records recent scalars for reporting only (report.go).
//
// Variant implementations live in apb.go (difference reward), ts.go
// (success-ratio reward) and obss.go (weighted-objective reward over a
// packed RX-power matrix). Sub-packages:
//   - netgym/transport: websocket JSON client to the simulator gateway
//   - netgym/agent: reference agents (random, Thompson sampling)
package netgym

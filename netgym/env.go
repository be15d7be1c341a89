package netgym

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Conn delivers telemetry batches from the simulator and carries commands
// back. Recv returns io.EOF once the simulator ends the session.
// The websocket implementation lives in netgym/transport.
type Conn interface {
	Recv() (Batch, error)
	Send(cmds []Command) error
	Close() error
}

// Env runs the synchronous per-step contract over a Conn and an Adapter:
// encode and send the action's commands, receive the next batch, build
// the observation, evaluate the reward. Exactly one batch in and one
// command list out per step, no overlap between steps.
type Env struct {
	adapter Adapter
	conn    Conn
}

// NewEnv wires an adapter to a transport connection.
func NewEnv(adapter Adapter, conn Conn) *Env {
	return &Env{adapter: adapter, conn: conn}
}

// Adapter returns the wired adapter (space contracts, history).
func (e *Env) Adapter() Adapter { return e.adapter }

// Reset receives the first batch of the session and builds the initial
// observation.
func (e *Env) Reset() (Observation, error) {
	batch, err := e.conn.Recv()
	if err != nil {
		return nil, fmt.Errorf("reset: %w", err)
	}
	obs, err := e.adapter.BuildObservation(batch)
	if err != nil {
		return nil, fmt.Errorf("reset: %w", err)
	}
	return obs, nil
}

// Step sends the action's commands, then receives and scores the next
// batch. done is true once the simulator ends the session; obs and reward
// are zero-valued in that case.
func (e *Env) Step(action []int) (obs Observation, reward float64, done bool, err error) {
	cmds, err := e.adapter.EncodePolicy(action)
	if err != nil {
		return nil, 0, false, fmt.Errorf("step: %w", err)
	}
	if err := e.conn.Send(cmds); err != nil {
		return nil, 0, false, fmt.Errorf("step: %w", err)
	}

	batch, err := e.conn.Recv()
	if errors.Is(err, io.EOF) {
		logrus.Info("simulator ended the session")
		return nil, 0, true, nil
	}
	if err != nil {
		return nil, 0, false, fmt.Errorf("step: %w", err)
	}

	obs, err = e.adapter.BuildObservation(batch)
	if err != nil {
		return nil, 0, false, fmt.Errorf("step: %w", err)
	}
	reward, err = e.adapter.EvaluateReward(batch)
	if err != nil {
		// Observation is valid even when the reward formula faults
		// (e.g. division by zero on an idle interval); surface both.
		return obs, 0, false, fmt.Errorf("step: %w", err)
	}
	return obs, reward, false, nil
}

// Close releases the underlying connection.
func (e *Env) Close() error { return e.conn.Close() }

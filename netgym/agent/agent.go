// Package agent provides the reference agents that drive the client
// without an external learner: a uniform random policy and Thompson
// sampling for rate selection.
package agent

import (
	"fmt"
	"math/rand"

	"github.com/networkgym/netgym-go/netgym"
)

// Agent selects the next action from the latest observation and reward.
// Agents own whatever learning state they need; the adapter never sees it.
type Agent interface {
	Act(obs netgym.Observation, reward float64) []int
}

// ValidAgents is the set of recognized agent names.
var ValidAgents = map[string]bool{"": true, "random": true, "thompson": true}

// New creates an agent by name against the given action space. Empty
// string defaults to random.
func New(name string, space netgym.MultiDiscrete, seed int64) (Agent, error) {
	switch name {
	case "", "random":
		return NewRandom(space, seed), nil
	case "thompson":
		return NewThompson(space, seed)
	default:
		return nil, fmt.Errorf("unknown agent %q (valid: random, thompson)", name)
	}
}

// Random samples uniformly from the action space every step.
type Random struct {
	space netgym.MultiDiscrete
	rng   *rand.Rand
}

// NewRandom creates a seeded uniform-random agent.
func NewRandom(space netgym.MultiDiscrete, seed int64) *Random {
	return &Random{space: space, rng: rand.New(rand.NewSource(seed))}
}

// Act implements Agent.
func (r *Random) Act(_ netgym.Observation, _ float64) []int {
	return r.space.Sample(r.rng)
}

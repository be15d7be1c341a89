package agent

import (
	"fmt"

	exprand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/networkgym/netgym-go/netgym"
)

// mcsRateMbps is the nominal 20 MHz PHY rate per MCS index, used to weight
// the sampled success probability by the rate an arm would deliver.
var mcsRateMbps = []float64{8.6, 17.2, 25.8, 34.4, 51.6, 68.8,
	77.4, 86.0, 103.2, 114.7, 129.0, 143.4}

// Thompson selects the MCS arm maximizing sampled expected throughput:
// per arm, draw Beta(succ+1, fail+1) and multiply by the arm's rate,
// then take the argmax. Built for the ts variant's (succ, fail)
// observation.
type Thompson struct {
	space   netgym.MultiDiscrete
	rates   []float64
	succ    []float64
	fail    []float64
	prevArm int
	src     exprand.Source
}

// NewThompson creates a seeded Thompson-sampling agent. The action space
// must be a single knob with one arm per MCS index.
func NewThompson(space netgym.MultiDiscrete, seed int64) (*Thompson, error) {
	if len(space.Counts) != 1 || space.Counts[0] > len(mcsRateMbps) {
		return nil, fmt.Errorf("thompson agent needs a single knob with at most %d arms, got %s",
			len(mcsRateMbps), space)
	}
	n := space.Counts[0]
	return &Thompson{
		space:   space,
		rates:   mcsRateMbps[:n],
		succ:    make([]float64, n),
		fail:    make([]float64, n),
		prevArm: -1,
		src:     exprand.NewSource(uint64(seed)),
	}, nil
}

// Act implements Agent: credit the previous arm with the observed success
// and failure counts, then sample all arms. Idle intervals (no counts)
// and sentinel observations leave the posteriors untouched.
func (t *Thompson) Act(obs netgym.Observation, _ float64) []int {
	succ := obs[0].At(0, 0)
	fail := obs[0].At(1, 0)
	if t.prevArm >= 0 && succ >= 0 && fail >= 0 && succ+fail > 0 {
		t.succ[t.prevArm] += succ
		t.fail[t.prevArm] += fail
	}

	best, bestScore := 0, -1.0
	for arm := range t.rates {
		beta := distuv.Beta{Alpha: t.succ[arm] + 1, Beta: t.fail[arm] + 1, Src: t.src}
		if score := beta.Rand() * t.rates[arm]; score > bestScore {
			best, bestScore = arm, score
		}
	}
	t.prevArm = best
	return []int{t.space.Start[0] + best}
}

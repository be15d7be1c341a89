package netgym

import (
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"
)

// TS is the transmission-rate-selection variant: the simulator reports
// per-interval success and failure counts and the agent picks the next
// MCS index. Reward is the packet success ratio.
type TS struct {
	adapterState
}

// NewTS constructs the ts adapter, verifying the configured variant.
func NewTS(cfg *Config) (*TS, error) {
	if err := checkVariant(cfg, "ts"); err != nil {
		return nil, err
	}
	return &TS{adapterState: newAdapterState(cfg)}, nil
}

// Name implements Adapter.
func (t *TS) Name() string { return "ts" }

// ActionSpace implements Adapter: one knob, MCS 0 through 11.
func (t *TS) ActionSpace() MultiDiscrete {
	return NewMultiDiscrete([]int{12}, []int{0})
}

// ObservationSpace implements Adapter: success and failure counts.
func (t *TS) ObservationSpace() Space {
	return NewBox(0, 10000, []int{2, 1}, Uint32)
}

// BuildObservation implements Adapter: a 2x1 vector of (succ, fail),
// Missing when absent. The meas::succ record is retained as the command
// template.
func (t *TS) BuildObservation(batch Batch) (Observation, error) {
	if m, ok := batch.Find("TsRateControl", "meas::succ"); ok {
		t.retain(m)
	}
	succ := batch.Scalar("TsRateControl", "meas::succ")
	fail := batch.Scalar("TsRateControl", "meas::fail")
	logrus.Debugf("[ts] succ=%v fail=%v", succ, fail)

	t.observation = Observation{mat.NewDense(2, 1, []float64{succ, fail})}
	t.steps++
	return t.observation, nil
}

// EncodePolicy implements Adapter: a single "mcsNew" command carrying the
// chosen MCS, addressed with the template's entity ids.
func (t *TS) EncodePolicy(action []int) ([]Command, error) {
	if err := checkAction(t.ActionSpace(), action); err != nil {
		return nil, err
	}
	if !t.hasTemplate {
		return nil, ErrNoTemplate
	}
	cmd := t.template.Command("mcsNew", nil, intsToFloats(action))
	t.history.Push(MetricAction, float64(action[0]))
	logrus.Debugf("[ts] command %s -> %v", cmd.Name, cmd.Values)
	return []Command{cmd}, nil
}

// EvaluateReward implements Adapter: succ / (succ + fail).
//
// The upstream formula divides unguarded; when both counts are zero this
// implementation returns ErrDivisionByZero instead of NaN, a documented
// deviation so callers can decide how to treat an idle interval.
func (t *TS) EvaluateReward(batch Batch) (float64, error) {
	succ := batch.Scalar("TsRateControl", "meas::succ")
	fail := batch.Scalar("TsRateControl", "meas::fail")
	if succ+fail == 0 {
		return 0, ErrDivisionByZero
	}
	reward := succ / (succ + fail)
	t.history.Push(MetricReward, reward)
	t.history.Push(MetricStep, float64(t.steps))
	return reward, nil
}

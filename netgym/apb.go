package netgym

import (
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"
)

// APB is the adder-playback variant: the simulator emits two addends and
// the agent replies with their sum. Reward is the difference of the two
// addends; it is purely informative and enforces nothing.
type APB struct {
	adapterState
}

// NewAPB constructs the apb adapter, verifying the configured variant.
func NewAPB(cfg *Config) (*APB, error) {
	if err := checkVariant(cfg, "apb"); err != nil {
		return nil, err
	}
	return &APB{adapterState: newAdapterState(cfg)}, nil
}

// Name implements Adapter.
func (a *APB) Name() string { return "apb" }

// ActionSpace implements Adapter: the sum, 19 integers starting at 2.
func (a *APB) ActionSpace() MultiDiscrete {
	return NewMultiDiscrete([]int{19}, []int{2})
}

// ObservationSpace implements Adapter: the two addends, each in [1, 10].
func (a *APB) ObservationSpace() Space {
	return NewMultiDiscrete([]int{10, 10}, []int{1, 1})
}

// BuildObservation implements Adapter: a 2x1 vector of the two addends,
// Missing when a selector finds nothing. The addend::a record is retained
// as the command template.
func (a *APB) BuildObservation(batch Batch) (Observation, error) {
	if m, ok := batch.Find("calculator", "addend::a"); ok {
		a.retain(m)
	}
	aValue := batch.Scalar("calculator", "addend::a")
	bValue := batch.Scalar("calculator", "addend::b")
	logrus.Debugf("[apb] a=%v b=%v", aValue, bValue)

	a.observation = Observation{mat.NewDense(2, 1, []float64{aValue, bValue})}
	a.steps++
	return a.observation, nil
}

// EncodePolicy implements Adapter: a single "sum" command carrying the
// action, addressed with the template's entity ids.
func (a *APB) EncodePolicy(action []int) ([]Command, error) {
	if err := checkAction(a.ActionSpace(), action); err != nil {
		return nil, err
	}
	if !a.hasTemplate {
		return nil, ErrNoTemplate
	}
	cmd := a.template.Command("sum", nil, intsToFloats(action))
	a.history.Push(MetricAction, float64(action[0]))
	logrus.Debugf("[apb] command %s -> %v", cmd.Name, cmd.Values)
	return []Command{cmd}, nil
}

// EvaluateReward implements Adapter: a - b, re-extracted from the batch.
func (a *APB) EvaluateReward(batch Batch) (float64, error) {
	aValue := batch.Scalar("calculator", "addend::a")
	bValue := batch.Scalar("calculator", "addend::b")
	reward := aValue - bValue
	a.history.Push(MetricReward, reward)
	a.history.Push(MetricStep, float64(a.steps))
	return reward, nil
}

func intsToFloats(action []int) []float64 {
	values := make([]float64, len(action))
	for i, a := range action {
		values[i] = float64(a)
	}
	return values
}

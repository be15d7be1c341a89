package netgym

import (
	"fmt"
	"math/bits"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"
)

// The RX power matrix arrives as a flat record whose ids pack (rx, tx)
// cells: the low log2(obssMaxNodes) bits address the transmitter column.
const (
	obssMaxNodesBSS0 = 1 << 3 // receivers tracked in BSS 0
	obssMaxNodes     = 1 << 5 // nodes across all BSSs
)

// Weighted-objective reward constants. The VR node at vrNodeIndex is the
// priority entity among otherwise homogeneous stations.
const (
	rewardAlpha          = 1.0
	rewardBeta           = 5.0
	rewardEta            = 1.0
	vrDelayBudgetMs      = 5.0
	vrThptConstraintMbps = 14.7
	vrNodeIndex          = 4
)

// OBSS is the overlapping-BSS spatial-reuse variant: the agent tunes the
// OBSS_PD threshold and TX power from an RX-power matrix, per-node
// throughput and the VR node's access delay. Reward is the weighted
// objective over total throughput, VR delay slack and VR throughput
// margin.
type OBSS struct {
	adapterState
}

// NewOBSS constructs the obss adapter, verifying the configured variant.
func NewOBSS(cfg *Config) (*OBSS, error) {
	if err := checkVariant(cfg, "obss"); err != nil {
		return nil, err
	}
	return &OBSS{adapterState: newAdapterState(cfg)}, nil
}

// Name implements Adapter.
func (o *OBSS) Name() string { return "obss" }

// ActionSpace implements Adapter: OBSS_PD in [-82, -62] dBm and TX power
// in [16, 20] dBm.
func (o *OBSS) ActionSpace() MultiDiscrete {
	return NewMultiDiscrete([]int{21, 5}, []int{-82, 16})
}

// ObservationSpace implements Adapter.
func (o *OBSS) ObservationSpace() Space {
	return Tuple{
		NewBox(-100, 100, []int{obssMaxNodesBSS0, obssMaxNodes}, Float32), // RX power (dBm)
		NewBox(0, 11, []int{obssMaxNodesBSS0}, Uint32),                    // MCS index
		NewBox(0, 1000, []int{obssMaxNodes}, Float32),                     // UL throughput (Mbps)
		NewBox(0, 10000, []int{1}, Float32),                               // VR access delay (ms)
		NewBox(-100, 100, []int{obssMaxNodes, 2}, Float32),                // node location
	}
}

// unpackCell decomposes a packed matrix id: the low log2(cols) bits are
// the column, the rest the row. cols must be a power of two.
func unpackCell(id, cols int) (row, col int) {
	shift := bits.TrailingZeros(uint(cols))
	return id >> shift, id & (cols - 1)
}

// packCell is the inverse of unpackCell.
func packCell(row, col, cols int) int {
	shift := bits.TrailingZeros(uint(cols))
	return row<<shift | col
}

// BuildObservation implements Adapter. Every tensor starts zeroed; cells
// untouched by this step's batch stay zero. The RxPowerDbmMatrix record is
// retained as the command template.
func (o *OBSS) BuildObservation(batch Batch) (Observation, error) {
	rxPower := mat.NewDense(obssMaxNodesBSS0, obssMaxNodes, nil)
	mcsIndex := mat.NewDense(obssMaxNodesBSS0, 1, nil)
	ulThpt := mat.NewDense(obssMaxNodes, 1, nil)
	vrDelay := mat.NewDense(1, 1, nil)
	nodeLoc := mat.NewDense(obssMaxNodes, 2, nil)

	for _, m := range batch {
		if m.Source != "Obss" {
			continue
		}
		var err error
		switch m.Name {
		case "Cpp2Py::RxPowerDbmMatrix":
			for i, id := range m.IDs {
				row, col := unpackCell(id, obssMaxNodes)
				if row < 0 || row >= obssMaxNodesBSS0 {
					return nil, fmt.Errorf("%w: packed id %d decodes to row %d outside [0,%d)",
						ErrContractViolation, id, row, obssMaxNodesBSS0)
				}
				rxPower.Set(row, col, m.Values[i])
			}
			o.retain(m)
		case "Cpp2Py::NodeX":
			err = scatterColumn(nodeLoc, 0, m.IDs, m.Values)
		case "Cpp2Py::NodeY":
			err = scatterColumn(nodeLoc, 1, m.IDs, m.Values)
		case "Cpp2Py::McsIndex":
			err = scatterColumn(mcsIndex, 0, m.IDs, m.Values)
		case "Cpp2Py::UplinkThptMbps":
			err = scatterColumn(ulThpt, 0, m.IDs, m.Values)
		case "Cpp2Py::AccessDelayMs":
			if len(m.Values) > 0 {
				vrDelay.Set(0, 0, m.Values[0]) // id not used
			}
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", m.Name, err)
		}
	}

	o.observation = Observation{rxPower, mcsIndex, ulThpt, vrDelay, nodeLoc}
	o.steps++
	return o.observation, nil
}

// EncodePolicy implements Adapter: one command per knob, both derived from
// the retained RX-power template and addressed to entity 0.
func (o *OBSS) EncodePolicy(action []int) ([]Command, error) {
	if err := checkAction(o.ActionSpace(), action); err != nil {
		return nil, err
	}
	if !o.hasTemplate {
		return nil, ErrNoTemplate
	}

	obssPd := o.template.Command("Py2Cpp::ObssPdNew", []int{0}, []float64{float64(action[0])})
	txPower := o.template.Command("Py2Cpp::TxPowerNew", []int{0}, []float64{float64(action[1])})

	o.history.Push(MetricObssPD, float64(action[0]))
	o.history.Push(MetricTxPower, float64(action[1]))
	logrus.Debugf("[obss] commands %s -> %v, %s -> %v",
		obssPd.Name, obssPd.Values, txPower.Name, txPower.Values)

	return []Command{obssPd, txPower}, nil
}

// EvaluateReward implements Adapter:
//
//	reward = α·ΣThpt + β·(DelayBudget − VRDelay) + η·(VRThpt − ThptConstraint)
//
// computed from the observation built for this step, not from the raw
// batch.
func (o *OBSS) EvaluateReward(_ Batch) (float64, error) {
	if o.observation == nil {
		return 0, fmt.Errorf("reward requested before observation was built")
	}
	ulThpt := o.observation[2]
	totalThpt := mat.Sum(ulThpt)
	vrThpt := ulThpt.At(vrNodeIndex, 0)
	vrDelay := o.observation[3].At(0, 0)

	reward := rewardAlpha*totalThpt + rewardBeta*(vrDelayBudgetMs-vrDelay) + rewardEta*(vrThpt-vrThptConstraintMbps)

	o.history.Push(MetricTotalThpt, totalThpt)
	o.history.Push(MetricVRThpt, vrThpt)
	o.history.Push(MetricVRDelay, vrDelay)
	o.history.Push(MetricReward, reward)
	o.history.Push(MetricStep, float64(o.steps))

	logrus.Debugf("[obss] totalThpt=%.2f vrThpt=%.2f vrDelay=%.2f reward=%.2f",
		totalThpt, vrThpt, vrDelay, reward)
	return reward, nil
}

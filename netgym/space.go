package netgym

import (
	"fmt"
	"math/rand"
	"strings"
)

// DType is the numeric precision class a space declares for its elements.
type DType int

const (
	Float32 DType = iota
	Int32
	Uint32
)

// String implements fmt.Stringer for DType.
func (d DType) String() string {
	switch d {
	case Float32:
		return "float32"
	case Int32:
		return "int32"
	case Uint32:
		return "uint32"
	default:
		return fmt.Sprintf("dtype(%d)", int(d))
	}
}

// Space declares the shape (and advisory bounds/dtype) of the observations
// an adapter emits. Validation checks shape only: the Missing sentinel is
// allowed to sit outside the declared bounds, exactly as in the upstream
// protocol, so bounds are metadata for the agent rather than an enforced
// invariant.
type Space interface {
	// Validate checks an observation against the declared shape.
	Validate(obs Observation) error
	String() string
}

// Box is a bounded dense tensor space. Dims has one entry per axis; a
// single-entry Dims declares a column vector.
type Box struct {
	Low, High float64
	Dims      []int
	DType     DType
}

// NewBox constructs a Box space. Panics on empty or non-positive dims:
// space contracts are compile-time constants per variant, so a bad one is
// a programming error.
func NewBox(low, high float64, dims []int, dtype DType) Box {
	if len(dims) == 0 || len(dims) > 2 {
		panic(fmt.Sprintf("NewBox: unsupported rank %d", len(dims)))
	}
	for _, d := range dims {
		if d <= 0 {
			panic(fmt.Sprintf("NewBox: non-positive dim %d", d))
		}
	}
	return Box{Low: low, High: high, Dims: dims, DType: dtype}
}

// Rows and Cols are the dense matrix dimensions backing this box; a rank-1
// box maps to a column vector.
func (b Box) Rows() int { return b.Dims[0] }

// Cols returns the column count of the backing matrix.
func (b Box) Cols() int {
	if len(b.Dims) == 1 {
		return 1
	}
	return b.Dims[1]
}

// Validate implements Space for a single-tensor observation.
func (b Box) Validate(obs Observation) error {
	if len(obs) != 1 {
		return fmt.Errorf("box space expects 1 tensor, observation has %d", len(obs))
	}
	return checkShape(obs[0], b.Rows(), b.Cols())
}

// String implements Space.
func (b Box) String() string {
	return fmt.Sprintf("Box(low=%g, high=%g, shape=%v, dtype=%s)", b.Low, b.High, b.Dims, b.DType)
}

// MultiDiscrete declares a vector of independent discrete knobs. Knob i
// takes Counts[i] consecutive integer values starting at Start[i].
// It doubles as an observation space for small integer column vectors.
type MultiDiscrete struct {
	Counts []int
	Start  []int
}

// NewMultiDiscrete constructs a MultiDiscrete space. A nil start means all
// knobs begin at zero. Panics on mismatched lengths (contracts are
// constants, see NewBox).
func NewMultiDiscrete(counts, start []int) MultiDiscrete {
	if start == nil {
		start = make([]int, len(counts))
	}
	if len(counts) == 0 || len(counts) != len(start) {
		panic(fmt.Sprintf("NewMultiDiscrete: counts %v incompatible with start %v", counts, start))
	}
	for _, n := range counts {
		if n <= 0 {
			panic(fmt.Sprintf("NewMultiDiscrete: non-positive count in %v", counts))
		}
	}
	return MultiDiscrete{Counts: counts, Start: start}
}

// Contains reports whether an action vector lies inside the declared
// per-knob ranges.
func (d MultiDiscrete) Contains(action []int) bool {
	if len(action) != len(d.Counts) {
		return false
	}
	for i, a := range action {
		if a < d.Start[i] || a >= d.Start[i]+d.Counts[i] {
			return false
		}
	}
	return true
}

// Sample draws a uniform action vector from the space.
func (d MultiDiscrete) Sample(rng *rand.Rand) []int {
	action := make([]int, len(d.Counts))
	for i := range d.Counts {
		action[i] = d.Start[i] + rng.Intn(d.Counts[i])
	}
	return action
}

// Validate implements Space: the observation is a single (len(Counts), 1)
// column vector.
func (d MultiDiscrete) Validate(obs Observation) error {
	if len(obs) != 1 {
		return fmt.Errorf("multi-discrete space expects 1 tensor, observation has %d", len(obs))
	}
	return checkShape(obs[0], len(d.Counts), 1)
}

// String implements Space.
func (d MultiDiscrete) String() string {
	return fmt.Sprintf("MultiDiscrete(counts=%v, start=%v)", d.Counts, d.Start)
}

// Tuple is a fixed-order sequence of Box spaces, one per observation
// tensor.
type Tuple []Box

// Validate implements Space.
func (t Tuple) Validate(obs Observation) error {
	if len(obs) != len(t) {
		return fmt.Errorf("tuple space expects %d tensors, observation has %d", len(t), len(obs))
	}
	for i, b := range t {
		if err := checkShape(obs[i], b.Rows(), b.Cols()); err != nil {
			return fmt.Errorf("tensor %d: %w", i, err)
		}
	}
	return nil
}

// String implements Space.
func (t Tuple) String() string {
	parts := make([]string, len(t))
	for i, b := range t {
		parts[i] = b.String()
	}
	return "Tuple(" + strings.Join(parts, ", ") + ")"
}

package netgym

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestMultiDiscrete_Contains(t *testing.T) {
	// The obss action contract: OBSS_PD in [-82,-62], TX power in [16,20].
	space := NewMultiDiscrete([]int{21, 5}, []int{-82, 16})

	assert.True(t, space.Contains([]int{-70, 18}))
	assert.True(t, space.Contains([]int{-82, 16}))
	assert.True(t, space.Contains([]int{-62, 20}))

	assert.False(t, space.Contains([]int{-83, 18}))
	assert.False(t, space.Contains([]int{-61, 18}))
	assert.False(t, space.Contains([]int{-70, 21}))
	assert.False(t, space.Contains([]int{-70}))
	assert.False(t, space.Contains([]int{-70, 18, 0}))
}

func TestMultiDiscrete_Sample_StaysInBounds(t *testing.T) {
	space := NewMultiDiscrete([]int{12}, []int{0})
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		action := space.Sample(rng)
		require.True(t, space.Contains(action), "sample %v escaped the space", action)
	}
}

func TestMultiDiscrete_NilStartDefaultsToZero(t *testing.T) {
	space := NewMultiDiscrete([]int{4, 4}, nil)
	assert.True(t, space.Contains([]int{0, 3}))
	assert.False(t, space.Contains([]int{-1, 0}))
}

func TestNewMultiDiscrete_BadContract_Panics(t *testing.T) {
	assert.Panics(t, func() { NewMultiDiscrete([]int{3}, []int{0, 0}) })
	assert.Panics(t, func() { NewMultiDiscrete([]int{0}, []int{0}) })
	assert.Panics(t, func() { NewMultiDiscrete(nil, nil) })
}

func TestBox_Validate_ShapeOnly(t *testing.T) {
	box := NewBox(0, 10000, []int{2, 1}, Uint32)

	good := Observation{mat.NewDense(2, 1, []float64{3, 1})}
	assert.NoError(t, box.Validate(good))

	// The Missing sentinel sits below Low; bounds are advisory, shape is not.
	sentinel := Observation{mat.NewDense(2, 1, []float64{Missing, Missing})}
	assert.NoError(t, box.Validate(sentinel))

	wrongShape := Observation{mat.NewDense(1, 2, []float64{3, 1})}
	assert.Error(t, box.Validate(wrongShape))

	twoTensors := Observation{mat.NewDense(2, 1, nil), mat.NewDense(2, 1, nil)}
	assert.Error(t, box.Validate(twoTensors))
}

func TestTuple_Validate(t *testing.T) {
	tuple := Tuple{
		NewBox(-100, 100, []int{8, 32}, Float32),
		NewBox(0, 11, []int{8}, Uint32),
	}

	good := Observation{mat.NewDense(8, 32, nil), mat.NewDense(8, 1, nil)}
	assert.NoError(t, tuple.Validate(good))

	short := Observation{mat.NewDense(8, 32, nil)}
	assert.Error(t, tuple.Validate(short))

	misshapen := Observation{mat.NewDense(8, 32, nil), mat.NewDense(9, 1, nil)}
	assert.Error(t, tuple.Validate(misshapen))
}

func TestSpace_Strings(t *testing.T) {
	assert.Equal(t, "MultiDiscrete(counts=[21 5], start=[-82 16])",
		NewMultiDiscrete([]int{21, 5}, []int{-82, 16}).String())
	assert.Equal(t, "Box(low=0, high=11, shape=[8], dtype=uint32)",
		NewBox(0, 11, []int{8}, Uint32).String())
}

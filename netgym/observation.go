package netgym

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Observation is a fixed-order tuple of dense tensors. Single-tensor
// variants use a one-element tuple. Cells not populated by the current
// batch keep their zero default; there is no carry-over between steps.
type Observation []*mat.Dense

// checkShape verifies a tensor's dimensions against a declared shape.
func checkShape(m *mat.Dense, rows, cols int) error {
	r, c := m.Dims()
	if r != rows || c != cols {
		return fmt.Errorf("tensor shape (%d,%d) does not match declared (%d,%d)", r, c, rows, cols)
	}
	return nil
}

// scatterColumn writes values[i] into dst[ids[i], col] for every i, the
// flat-entity-index fill. Indices outside the destination's row range are
// a simulator-side contract violation and fail fast.
func scatterColumn(dst *mat.Dense, col int, ids []int, values []float64) error {
	rows, _ := dst.Dims()
	for i, id := range ids {
		if id < 0 || id >= rows {
			return fmt.Errorf("%w: entity id %d outside [0,%d)", ErrContractViolation, id, rows)
		}
		dst.Set(id, col, values[i])
	}
	return nil
}

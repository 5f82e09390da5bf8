package errors

import (
	"math"
)

// CheckFinite returns an InvalidArgumentError naming the first NaN or Inf in values.
func CheckFinite(op, param string, values []float64) error {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return NewInvalidArgumentError(op, param, "all values must be finite",
				map[string]interface{}{"index": i, "value": v})
		}
	}
	return nil
}

// CheckFiniteMatrix checks every element of a matrix for NaN or Inf.
func CheckFiniteMatrix(op, param string, matrix interface {
	At(int, int) float64
	Dims() (int, int)
}) error {
	rows, cols := matrix.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := matrix.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return NewInvalidArgumentError(op, param, "all values must be finite",
					map[string]interface{}{"row": i, "col": j, "value": v})
			}
		}
	}
	return nil
}

package preprocessing

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/housing/core/parallel"
	"github.com/YuminosukeSato/housing/pkg/errors"
)

// NumericColumns is the fitted state of a NumericConcatenator. It carries no
// learned values; the column list is fixed at construction.
type NumericColumns struct {
	names []string
}

// NumericConcatenator copies the numeric predictors of each record into
// consecutive columns. Values are passed through unscaled.
type NumericConcatenator[R any] struct {
	// Columns names the values written by Extract, in order.
	Columns []string

	// Extract writes the len(Columns) predictors of r into dst.
	Extract func(r R, dst []float64)
}

// Fit validates the stage configuration; there is nothing to learn.
func (c NumericConcatenator[R]) Fit(records []R) (NumericColumns, error) {
	if len(records) == 0 {
		return NumericColumns{}, errors.NewInvalidArgumentError("NumericConcatenator.Fit", "records", "no training records", 0)
	}
	if len(c.Columns) == 0 || c.Extract == nil {
		return NumericColumns{}, errors.NewInvalidArgumentError("NumericConcatenator.Fit", "Columns", "no numeric columns configured", len(c.Columns))
	}
	names := make([]string, len(c.Columns))
	copy(names, c.Columns)
	return NumericColumns{names: names}, nil
}

// Transform returns a len(records) x len(Columns) matrix of raw values.
func (c NumericConcatenator[R]) Transform(params NumericColumns, records []R) (*mat.Dense, error) {
	width := len(params.names)
	if width == 0 {
		return nil, errors.NewInvalidArgumentError("NumericConcatenator.Transform", "params", "stage has not been fitted", nil)
	}
	if len(records) == 0 {
		return nil, errors.NewInvalidArgumentError("NumericConcatenator.Transform", "records", "no records to transform", 0)
	}

	data := make([]float64, len(records)*width)
	parallel.ParallelizeWithThreshold(len(records), parallel.DefaultThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			c.Extract(records[i], data[i*width:(i+1)*width])
		}
	})
	return mat.NewDense(len(records), width, data), nil
}

// Width returns the number of numeric columns.
func (c NumericConcatenator[R]) Width(params NumericColumns) int {
	return len(params.names)
}

// Names returns the numeric column names.
func (c NumericConcatenator[R]) Names(params NumericColumns) []string {
	names := make([]string, len(params.names))
	copy(names, params.names)
	return names
}

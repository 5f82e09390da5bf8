package linear

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/housing/pkg/errors"
)

func TestLinearModel_Predict(t *testing.T) {
	m := &LinearModel{weights: []float64{2, -1}, intercept: 0.5}

	X := mat.NewDense(3, 2, []float64{
		1, 1,
		0, 2,
		3, 0,
	})
	pred, err := m.Predict(X)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, -1.5, 6.5}, pred.RawVector().Data)
	assert.Equal(t, 1.5, m.PredictOne([]float64{1, 1}))
}

func TestLinearModel_PredictParallelMatchesPredictOne(t *testing.T) {
	X, y := linearData(5000, []float64{1, 2, 3}, 1, 1, 7)
	m, err := NewSDCARegressor().Train(X, y)
	require.NoError(t, err)

	pred, err := m.Predict(X)
	require.NoError(t, err)
	for i := 0; i < 5000; i++ {
		assert.Equal(t, m.PredictOne(mat.Row(nil, i, X)), pred.AtVec(i))
	}
}

func TestLinearModel_PredictErrors(t *testing.T) {
	m := &LinearModel{weights: []float64{1, 2}}

	_, err := m.Predict(mat.NewDense(1, 3, []float64{1, 2, 3}))
	var de *errors.DimensionError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, 2, de.Expected)
	assert.Equal(t, 3, de.Got)

	_, err = m.Predict(&mat.Dense{})
	var iae *errors.InvalidArgumentError
	assert.True(t, errors.As(err, &iae))
}

func TestLinearModel_Immutable(t *testing.T) {
	m := &LinearModel{weights: []float64{1, 2}}
	w := m.Weights()
	w[0] = 100
	assert.Equal(t, []float64{1, 2}, m.Weights())
}

func TestLinearModel_ExportWeights(t *testing.T) {
	X, y := linearData(20, []float64{1, -1}, 3, 1, 8)
	m, err := NewSDCARegressor(WithL2(0), WithTol(1e-14)).Train(X, y)
	require.NoError(t, err)

	mw, err := m.ExportWeights([]string{"a", "b"})
	require.NoError(t, err)
	require.NoError(t, mw.Validate())
	assert.Equal(t, "SDCARegressor", mw.ModelType)

	a, ok := mw.Coefficient("a")
	assert.True(t, ok)
	assert.InDelta(t, 1.0, a, 1e-6)
	assert.Equal(t, 0.0, mw.Hyperparameters["l2"])
	assert.Equal(t, true, mw.Metadata["converged"])

	_, err = m.ExportWeights([]string{"only-one"})
	assert.Error(t, err)
}

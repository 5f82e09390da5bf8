package metrics

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/housing/pkg/errors"
)

// rowSumPredictor predicts the sum of each row plus a constant.
type rowSumPredictor struct {
	width  int
	offset float64
}

func (p rowSumPredictor) PredictOne(x []float64) float64 {
	sum := p.offset
	for _, v := range x {
		sum += v
	}
	return sum
}

func (p rowSumPredictor) Predict(X mat.Matrix) (*mat.VecDense, error) {
	r, c := X.Dims()
	if c != p.width {
		return nil, errors.NewDimensionError("rowSumPredictor.Predict", p.width, c, 1)
	}
	out := mat.NewVecDense(r, nil)
	for i := 0; i < r; i++ {
		out.SetVec(i, p.PredictOne(mat.Row(nil, i, X)))
	}
	return out, nil
}

func (p rowSumPredictor) NFeatures() int { return p.width }

func TestRMSESquaredEqualsMSE(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 11))
	for trial := 0; trial < 20; trial++ {
		n := 1 + rng.IntN(200)
		yTrue := mat.NewVecDense(n, nil)
		yPred := mat.NewVecDense(n, nil)
		for i := 0; i < n; i++ {
			yTrue.SetVec(i, rng.NormFloat64()*1e5)
			yPred.SetVec(i, rng.NormFloat64()*1e5)
		}

		m, err := Evaluate(yTrue, yPred)
		require.NoError(t, err)
		assert.InEpsilon(t, m.MeanSquaredError, m.RootMeanSquaredError*m.RootMeanSquaredError, 1e-12)
		assert.Equal(t, n, m.Samples)
	}
}

func TestR2Score_ConstantTargetWarns(t *testing.T) {
	var warnings []error
	prev := errors.SetWarningHandler(func(w error) { warnings = append(warnings, w) })
	defer errors.SetWarningHandler(prev)

	yTrue := mat.NewVecDense(4, []float64{7, 7, 7, 7})
	yPred := mat.NewVecDense(4, []float64{1, 100, -3, 7})

	r2, err := R2Score(yTrue, yPred)
	require.NoError(t, err)
	assert.Equal(t, 0.0, r2)

	require.Len(t, warnings, 1)
	var uw *errors.UndefinedMetricWarning
	require.True(t, errors.As(warnings[0], &uw))
	assert.Equal(t, "R2Score", uw.Metric)
}

func TestMetrics_ErrorKinds(t *testing.T) {
	empty := &mat.VecDense{}
	short := mat.NewVecDense(2, []float64{1, 2})
	long := mat.NewVecDense(3, []float64{1, 2, 3})

	for name, fn := range map[string]func(a, b *mat.VecDense) (float64, error){
		"MSE": MSE, "RMSE": RMSE, "MAE": MAE, "R2Score": R2Score,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := fn(empty, empty)
			var iae *errors.InvalidArgumentError
			assert.True(t, errors.As(err, &iae), "empty: got %v", err)

			_, err = fn(long, short)
			var de *errors.DimensionError
			assert.True(t, errors.As(err, &de), "mismatch: got %v", err)

			_, err = fn(nil, nil)
			assert.True(t, errors.As(err, &iae), "nil: got %v", err)
		})
	}
}

func TestEvaluateRegression(t *testing.T) {
	X := mat.NewDense(4, 2, []float64{
		1, 0,
		0, 2,
		1, 1,
		3, 0,
	})
	y := []float64{1, 2, 2, 4}
	predictor := rowSumPredictor{width: 2, offset: 0.5}

	m, err := EvaluateRegression(predictor, X, y)
	require.NoError(t, err)

	// predictions 1.5, 2.5, 2.5, 3.5; residuals +0.5, +0.5, +0.5, -0.5
	assert.InDelta(t, 0.25, m.MeanSquaredError, 1e-12)
	assert.InDelta(t, 0.5, m.MeanAbsoluteError, 1e-12)
	assert.InDelta(t, 0.5, m.RootMeanSquaredError, 1e-12)
	// mean 2.25, tss = 1.5625+0.0625+0.0625+3.0625 = 4.75, rss = 1
	assert.InDelta(t, 1-1/4.75, m.RSquared, 1e-12)
	assert.Equal(t, 4, m.Samples)
	assert.Contains(t, m.String(), "n=4")
}

func TestEvaluateRegression_Errors(t *testing.T) {
	predictor := rowSumPredictor{width: 2}

	_, err := EvaluateRegression(predictor, mat.NewDense(1, 2, nil), nil)
	var iae *errors.InvalidArgumentError
	assert.True(t, errors.As(err, &iae))

	_, err = EvaluateRegression(predictor, mat.NewDense(2, 2, nil), []float64{1})
	var de *errors.DimensionError
	assert.True(t, errors.As(err, &de))

	_, err = EvaluateRegression(predictor, mat.NewDense(1, 3, nil), []float64{1})
	assert.True(t, errors.As(err, &de))
}

package linear

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/housing/core/model"
	"github.com/YuminosukeSato/housing/core/parallel"
	"github.com/YuminosukeSato/housing/pkg/errors"
)

var _ model.Predictor = (*LinearModel)(nil)

// LinearModel is a trained ŷ = w·x + b. It is never mutated after Train
// returns it, so it is safe for concurrent use.
type LinearModel struct {
	weights   []float64
	intercept float64

	iterations      int
	converged       bool
	objective       float64
	hyperparameters map[string]interface{}
}

// NFeatures returns the expected feature vector length.
func (m *LinearModel) NFeatures() int {
	return len(m.weights)
}

// Weights returns a copy of w in feature order.
func (m *LinearModel) Weights() []float64 {
	w := make([]float64, len(m.weights))
	copy(w, m.weights)
	return w
}

// Intercept returns b.
func (m *LinearModel) Intercept() float64 {
	return m.intercept
}

// Iterations returns the number of solver epochs that were run.
func (m *LinearModel) Iterations() int {
	return m.iterations
}

// Converged reports whether the solver met its tolerance.
func (m *LinearModel) Converged() bool {
	return m.converged
}

// PredictOne returns w·x + b. It panics if len(x) != NFeatures().
func (m *LinearModel) PredictOne(x []float64) float64 {
	return floats.Dot(m.weights, x) + m.intercept
}

// Predict returns one prediction per row of X.
func (m *LinearModel) Predict(X mat.Matrix) (*mat.VecDense, error) {
	r, c := X.Dims()
	if r == 0 {
		return nil, errors.NewInvalidArgumentError("LinearModel.Predict", "X", "no rows to predict", 0)
	}
	if c != len(m.weights) {
		return nil, errors.NewDimensionError("LinearModel.Predict", len(m.weights), c, 1)
	}

	out := make([]float64, r)
	parallel.ParallelizeWithThreshold(r, parallel.DefaultThreshold, func(start, end int) {
		row := make([]float64, c)
		for i := start; i < end; i++ {
			mat.Row(row, i, X)
			out[i] = floats.Dot(m.weights, row) + m.intercept
		}
	})
	return mat.NewVecDense(r, out), nil
}

// ExportWeights returns the coefficients labelled with featureNames, which
// may be nil.
func (m *LinearModel) ExportWeights(featureNames []string) (*model.ModelWeights, error) {
	if featureNames != nil && len(featureNames) != len(m.weights) {
		return nil, errors.NewDimensionError("LinearModel.ExportWeights", len(m.weights), len(featureNames), 1)
	}
	hp := make(map[string]interface{}, len(m.hyperparameters))
	for k, v := range m.hyperparameters {
		hp[k] = v
	}
	mw := &model.ModelWeights{
		ModelType:       modelName,
		Coefficients:    m.Weights(),
		Intercept:       m.intercept,
		Features:        append([]string(nil), featureNames...),
		Hyperparameters: hp,
		Metadata: map[string]interface{}{
			"iterations": m.iterations,
			"converged":  m.converged,
			"objective":  m.objective,
		},
	}
	return mw, nil
}

func (m *LinearModel) String() string {
	return fmt.Sprintf("LinearModel(n_features=%d, intercept=%g, converged=%t)", len(m.weights), m.intercept, m.converged)
}

package metrics

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/housing/core/model"
	"github.com/YuminosukeSato/housing/pkg/errors"
	"github.com/YuminosukeSato/housing/pkg/log"
)

// RegressionMetrics is computed once from a (prediction, actual) sequence.
type RegressionMetrics struct {
	RSquared             float64
	RootMeanSquaredError float64
	MeanSquaredError     float64
	MeanAbsoluteError    float64
	Samples              int
}

func (m RegressionMetrics) String() string {
	return fmt.Sprintf("RegressionMetrics(r2=%g, rmse=%g, mse=%g, mae=%g, n=%d)",
		m.RSquared, m.RootMeanSquaredError, m.MeanSquaredError, m.MeanAbsoluteError, m.Samples)
}

// Evaluate computes all metrics for one pair of vectors.
func Evaluate(yTrue, yPred *mat.VecDense) (RegressionMetrics, error) {
	mse, err := MSE(yTrue, yPred)
	if err != nil {
		return RegressionMetrics{}, err
	}
	rmse, err := RMSE(yTrue, yPred)
	if err != nil {
		return RegressionMetrics{}, err
	}
	mae, err := MAE(yTrue, yPred)
	if err != nil {
		return RegressionMetrics{}, err
	}
	r2, err := R2Score(yTrue, yPred)
	if err != nil {
		return RegressionMetrics{}, err
	}

	return RegressionMetrics{
		RSquared:             r2,
		RootMeanSquaredError: rmse,
		MeanSquaredError:     mse,
		MeanAbsoluteError:    mae,
		Samples:              yTrue.Len(),
	}, nil
}

// EvaluateRegression predicts every row of X with predictor and scores the
// predictions against y.
func EvaluateRegression(predictor model.Predictor, X mat.Matrix, y []float64) (RegressionMetrics, error) {
	const op = "EvaluateRegression"
	start := time.Now()

	if len(y) == 0 {
		return RegressionMetrics{}, errors.NewInvalidArgumentError(op, "y", "evaluation set is empty", 0)
	}
	if X == nil {
		return RegressionMetrics{}, errors.NewInvalidArgumentError(op, "X", "feature matrix is nil", nil)
	}
	if r, _ := X.Dims(); r != len(y) {
		return RegressionMetrics{}, errors.NewDimensionError(op, len(y), r, 0)
	}

	yPred, err := predictor.Predict(X)
	if err != nil {
		return RegressionMetrics{}, errors.Wrap(err, op)
	}
	result, err := Evaluate(mat.NewVecDense(len(y), append([]float64(nil), y...)), yPred)
	if err != nil {
		return RegressionMetrics{}, err
	}

	log.GetLogger().With(log.ComponentKey, "metrics").Info("Evaluation completed",
		log.OperationKey, log.OperationEvaluate,
		log.PhaseKey, log.PhaseTesting,
		log.SamplesKey, result.Samples,
		log.R2ScoreKey, result.RSquared,
		log.RMSEKey, result.RootMeanSquaredError,
		log.MSEKey, result.MeanSquaredError,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return result, nil
}

// Package linear trains L2-regularized least-squares regressors.
//
// SDCARegressor minimizes
//
//	½/n · Σ (y_i − w·x_i − b)² + ½ · λ · ‖w‖²
//
// by cyclic coordinate descent over internally standardized features, or by a
// closed-form QR solve when configured with WithSolver(SolverQR). Weights are
// mapped back to the raw feature scale, so the returned LinearModel accepts
// the same unscaled matrices it was trained on.
package linear

import (
	"math"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/YuminosukeSato/housing/pkg/errors"
	"github.com/YuminosukeSato/housing/pkg/log"
	"github.com/YuminosukeSato/housing/preprocessing"
)

const modelName = "SDCARegressor"

// SDCARegressor is the trainer configuration. It holds no fitted state;
// Train returns a new immutable LinearModel on every call.
type SDCARegressor struct {
	l2           float64
	maxIter      int
	tol          float64
	fitIntercept bool
	solver       Solver
	logger       log.Logger
}

// NewSDCARegressor creates a trainer with the given options applied over
// the defaults (λ=1e-6, 10000 epochs, tol=1e-10, intercept on, coordinate
// descent).
func NewSDCARegressor(opts ...Option) *SDCARegressor {
	r := &SDCARegressor{
		l2:           1e-6,
		maxIter:      10000,
		tol:          1e-10,
		fitIntercept: true,
		solver:       SolverCoordinateDescent,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// problem is the standardized training problem shared by both solvers.
type problem struct {
	n, p    int
	cols    [][]float64 // standardized columns of X
	colSq   []float64
	active  []bool
	target  []float64 // y, centered when fitting an intercept
	scaler  *preprocessing.StandardScaler
	yMean   float64
	penalty float64 // n·λ
}

// result is a solver outcome in standardized coordinates.
type result struct {
	weights    []float64
	iterations int
	converged  bool
	objective  float64
}

// Train fits the model on X (n×p) and targets y (length n).
//
// Inputs must be non-empty and finite. Features that are constant over the
// training rows get a weight of exactly 0. Training never fails for lack of
// convergence: the best iterate is returned and an errors.ConvergenceWarning
// is emitted.
func (r *SDCARegressor) Train(X mat.Matrix, y []float64) (*LinearModel, error) {
	const op = "SDCARegressor.Train"
	start := time.Now()

	if err := r.validateParams(op); err != nil {
		return nil, err
	}
	prob, err := r.prepare(op, X, y)
	if err != nil {
		return nil, err
	}

	var res result
	switch r.solver {
	case SolverQR:
		res, err = solveQR(prob)
		if err != nil {
			return nil, errors.Wrap(err, op)
		}
	default:
		res = r.solveCD(prob)
	}

	if !res.converged {
		errors.Warn(errors.NewConvergenceWarning(modelName, res.iterations,
			"returning the best iterate; consider increasing max_iter or tol"))
	}

	m := r.unscale(prob, res)

	r.getLogger().Info("Training completed",
		log.OperationKey, log.OperationFit,
		log.PhaseKey, log.PhaseTraining,
		log.ModelNameKey, modelName,
		log.SolverKey, r.solver.String(),
		log.RegularizationKey, r.l2,
		log.SamplesKey, prob.n,
		log.FeaturesKey, prob.p,
		log.IterationKey, res.iterations,
		log.ConvergedKey, res.converged,
		log.LossKey, res.objective,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return m, nil
}

func (r *SDCARegressor) getLogger() log.Logger {
	if r.logger != nil {
		return r.logger.With(log.ComponentKey, "linear")
	}
	return log.GetLogger().With(log.ComponentKey, "linear")
}

func (r *SDCARegressor) validateParams(op string) error {
	if math.IsNaN(r.l2) || math.IsInf(r.l2, 0) || r.l2 < 0 {
		return errors.NewInvalidArgumentError(op, "l2", "must be finite and non-negative", r.l2)
	}
	if r.maxIter < 1 {
		return errors.NewInvalidArgumentError(op, "max_iter", "must be at least 1", r.maxIter)
	}
	if math.IsNaN(r.tol) || r.tol < 0 {
		return errors.NewInvalidArgumentError(op, "tol", "must be non-negative", r.tol)
	}
	return nil
}

// prepare validates the inputs and standardizes X.
func (r *SDCARegressor) prepare(op string, X mat.Matrix, y []float64) (*problem, error) {
	if X == nil {
		return nil, errors.NewInvalidArgumentError(op, "X", "training matrix is nil", nil)
	}
	n, p := X.Dims()
	if n == 0 || p == 0 {
		return nil, errors.NewInvalidArgumentError(op, "X", "training set is empty", [2]int{n, p})
	}
	if len(y) != n {
		return nil, errors.NewDimensionError(op, n, len(y), 0)
	}
	if err := errors.CheckFiniteMatrix(op, "X", X); err != nil {
		return nil, err
	}
	if err := errors.CheckFinite(op, "y", y); err != nil {
		return nil, err
	}

	scaler := preprocessing.NewStandardScaler(r.fitIntercept, true)
	Z, err := scaler.FitTransform(X)
	if err != nil {
		return nil, errors.Wrap(err, op)
	}

	prob := &problem{
		n:       n,
		p:       p,
		cols:    make([][]float64, p),
		colSq:   make([]float64, p),
		active:  make([]bool, p),
		target:  make([]float64, n),
		scaler:  scaler,
		penalty: float64(n) * r.l2,
	}
	for j := 0; j < p; j++ {
		prob.cols[j] = mat.Col(nil, j, Z)
		prob.colSq[j] = floats.Dot(prob.cols[j], prob.cols[j])
		// 切片ありの場合、定数列は中心化で情報を失うので重みを0に固定する
		if r.fitIntercept {
			prob.active[j] = !scaler.Constant[j]
		} else {
			prob.active[j] = prob.colSq[j] > 0
		}
	}

	copy(prob.target, y)
	if r.fitIntercept {
		prob.yMean = stat.Mean(y, nil)
		floats.AddConst(-prob.yMean, prob.target)
	}
	return prob, nil
}

// objective returns ½/n·‖resid‖² + ½λ‖w‖².
func (r *SDCARegressor) objective(prob *problem, resid, w []float64) float64 {
	return 0.5*floats.Dot(resid, resid)/float64(prob.n) + 0.5*r.l2*floats.Dot(w, w)
}

// solveCD runs cyclic coordinate descent keeping the residual up to date.
// Each coordinate update is the exact minimizer along that axis:
//
//	w_j ← (z_j·resid + ‖z_j‖² w_j) / (‖z_j‖² + nλ)
func (r *SDCARegressor) solveCD(prob *problem) result {
	w := make([]float64, prob.p)
	resid := make([]float64, prob.n)
	copy(resid, prob.target)

	best := make([]float64, prob.p)
	prev := r.objective(prob, resid, w)
	bestObj := prev
	if prev == 0 {
		return result{weights: best, converged: true, objective: 0}
	}

	for epoch := 1; epoch <= r.maxIter; epoch++ {
		for j := 0; j < prob.p; j++ {
			if !prob.active[j] {
				continue
			}
			denom := prob.colSq[j] + prob.penalty
			if denom == 0 {
				continue
			}
			zj := prob.cols[j]
			wj := (floats.Dot(zj, resid) + prob.colSq[j]*w[j]) / denom
			if d := wj - w[j]; d != 0 {
				floats.AddScaled(resid, -d, zj)
				w[j] = wj
			}
		}

		obj := r.objective(prob, resid, w)
		if obj < bestObj {
			bestObj = obj
			copy(best, w)
		}
		if obj == 0 || prev-obj <= r.tol*prev {
			return result{weights: best, iterations: epoch, converged: true, objective: bestObj}
		}
		prev = obj
	}
	return result{weights: best, iterations: r.maxIter, converged: false, objective: bestObj}
}

// unscale maps standardized weights back to raw feature scale.
func (r *SDCARegressor) unscale(prob *problem, res result) *LinearModel {
	weights := make([]float64, prob.p)
	intercept := 0.0
	if r.fitIntercept {
		intercept = prob.yMean
	}
	for j := 0; j < prob.p; j++ {
		if !prob.active[j] {
			continue
		}
		weights[j] = res.weights[j] / prob.scaler.Scale[j]
		intercept -= weights[j] * prob.scaler.Mean[j]
	}

	return &LinearModel{
		weights:    weights,
		intercept:  intercept,
		iterations: res.iterations,
		converged:  res.converged,
		objective:  res.objective,
		hyperparameters: map[string]interface{}{
			"l2":            r.l2,
			"max_iter":      r.maxIter,
			"tol":           r.tol,
			"fit_intercept": r.fitIntercept,
			"solver":        r.solver.String(),
		},
	}
}

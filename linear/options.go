package linear

import "github.com/YuminosukeSato/housing/pkg/log"

// Solver selects the optimization method used by SDCARegressor.
type Solver int

const (
	// SolverCoordinateDescent runs cyclic coordinate descent (default).
	SolverCoordinateDescent Solver = iota
	// SolverQR solves the ridge problem in closed form via QR.
	SolverQR
)

func (s Solver) String() string {
	switch s {
	case SolverCoordinateDescent:
		return "coordinate_descent"
	case SolverQR:
		return "qr"
	default:
		return "unknown"
	}
}

// Option is a function that configures SDCARegressor
type Option func(*SDCARegressor)

// WithL2 sets the L2 regularization strength λ. Must be >= 0.
func WithL2(l2 float64) Option {
	return func(r *SDCARegressor) {
		r.l2 = l2
	}
}

// WithMaxIter sets the maximum number of coordinate-descent epochs
func WithMaxIter(n int) Option {
	return func(r *SDCARegressor) {
		r.maxIter = n
	}
}

// WithTol sets the relative objective improvement below which training stops
func WithTol(tol float64) Option {
	return func(r *SDCARegressor) {
		r.tol = tol
	}
}

// WithFitIntercept sets whether to calculate the intercept
func WithFitIntercept(fit bool) Option {
	return func(r *SDCARegressor) {
		r.fitIntercept = fit
	}
}

// WithSolver selects the solver
func WithSolver(s Solver) Option {
	return func(r *SDCARegressor) {
		r.solver = s
	}
}

// WithLogger overrides the process-wide logger
func WithLogger(l log.Logger) Option {
	return func(r *SDCARegressor) {
		r.logger = l
	}
}

// Package log defines standard attribute keys for the pipeline stages.
//
// The keys follow a hierarchical naming convention (e.g. "ml.operation",
// "data.samples") so records from different stages can be filtered and
// aggregated the same way.

package log

// Model and Operation Context
const (
	// ModelNameKey identifies the estimator type.
	// Examples: "SDCARegressor", "OneHotEncoder"
	ModelNameKey = "model.name"

	// OperationKey specifies the pipeline operation being performed.
	OperationKey = "ml.operation"

	// ComponentKey identifies which package is performing the operation.
	// Examples: "dataset", "preprocessing", "linear", "metrics"
	ComponentKey = "ml.component"

	// PhaseKey indicates the phase of the pipeline.
	PhaseKey = "ml.phase"
)

// Data Shape and Characteristics
const (
	// SamplesKey indicates the number of samples (rows).
	SamplesKey = "data.samples"

	// FeaturesKey indicates the number of features (columns).
	FeaturesKey = "data.features"

	// CategoriesKey indicates the number of distinct categories learned by an encoder.
	CategoriesKey = "data.categories"

	// SkippedKey indicates the number of input rows that were dropped.
	SkippedKey = "data.skipped"

	// PathKey records the input file path.
	PathKey = "data.path"
)

// Performance and Quality Metrics
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// LossKey records the objective value reached by an optimizer.
	LossKey = "metrics.loss"

	// R2ScoreKey records R² coefficient of determination.
	R2ScoreKey = "metrics.r2_score"

	// RMSEKey records the root mean squared error.
	RMSEKey = "metrics.rmse"

	// MSEKey records the mean squared error.
	MSEKey = "metrics.mse"

	// IterationKey records the number of optimizer iterations (epochs).
	IterationKey = "training.iteration"

	// ConvergedKey records whether the optimizer met its tolerance.
	ConvergedKey = "training.converged"
)

// Configuration
const (
	// RegularizationKey records L2 regularization strength.
	RegularizationKey = "hyperparams.regularization"

	// SolverKey records the solver used by a trainer.
	SolverKey = "hyperparams.solver"

	// RandomSeedKey records the random seed for reproducibility.
	RandomSeedKey = "config.random_seed"

	// TestFractionKey records the requested test fraction of a split.
	TestFractionKey = "config.test_fraction"
)

// Error Context
const (
	// ErrorTypeKey categorizes the type of error encountered.
	ErrorTypeKey = "error.type"

	// ErrorDetailKey groups the structured fields of a pipeline error type.
	ErrorDetailKey = "error.detail"

	// SuggestionKey provides helpful suggestions for resolving issues.
	SuggestionKey = "error.suggestion"
)

// Standard attribute values.
const (
	OperationLoad      = "load"
	OperationSplit     = "split"
	OperationFit       = "fit"
	OperationTransform = "transform"
	OperationPredict   = "predict"
	OperationEvaluate  = "evaluate"

	PhasePreprocessing = "preprocessing"
	PhaseTraining      = "training"
	PhaseTesting       = "testing"
)

// Package pipeline wires the housing stages together:
// load → split → fit features → train → evaluate.
package pipeline

import (
	"path/filepath"
	"time"

	"github.com/YuminosukeSato/housing/core/model"
	"github.com/YuminosukeSato/housing/dataset"
	"github.com/YuminosukeSato/housing/linear"
	"github.com/YuminosukeSato/housing/metrics"
	"github.com/YuminosukeSato/housing/model_selection"
	"github.com/YuminosukeSato/housing/pkg/errors"
	"github.com/YuminosukeSato/housing/pkg/log"
	"github.com/YuminosukeSato/housing/preprocessing"
)

const (
	// DataFileName is the input file looked up by DataPath.
	DataFileName = "housing.csv"

	// ParentLevels is how many directories above the working directory
	// the input file lives.
	ParentLevels = 3
)

// DataPath returns <wd>/../../../housing.csv.
func DataPath(wd string) string {
	parts := []string{wd}
	for i := 0; i < ParentLevels; i++ {
		parts = append(parts, "..")
	}
	return filepath.Join(append(parts, DataFileName)...)
}

// Config holds everything Run needs.
type Config struct {
	DataPath     string
	Schema       dataset.Schema
	TestFraction float64
	Seed         uint64

	// TrainerOptions are passed to linear.NewSDCARegressor.
	TrainerOptions []linear.Option
}

// DefaultConfig returns the settings used by the command-line entry point,
// without a data path. Rows with empty numeric cells are skipped.
func DefaultConfig() Config {
	schema := dataset.HousingSchema()
	schema.SkipIncomplete = true
	return Config{
		Schema:       schema,
		TestFraction: 0.2,
		Seed:         1,
	}
}

// Result is the outcome of one Run.
type Result struct {
	Metrics      metrics.RegressionMetrics
	Model        *linear.LinearModel
	Weights      *model.ModelWeights
	Features     *preprocessing.FittedFeatures[dataset.HousingRecord]
	FeatureNames []string
	TrainSize    int
	TestSize     int
}

// Run executes the whole pipeline once. Errors are wrapped with the stage
// that failed; the typed causes (*errors.NotFoundError, *errors.ParseError,
// *errors.InvalidArgumentError) stay reachable through errors.As.
func Run(cfg Config) (res *Result, err error) {
	defer errors.Recover(&err, "pipeline.Run")

	start := time.Now()
	logger := log.GetLogger().With(log.ComponentKey, "pipeline")

	if cfg.DataPath == "" {
		return nil, errors.NewInvalidArgumentError("pipeline.Run", "DataPath", "no input file configured", cfg.DataPath)
	}

	ds, err := dataset.Load(cfg.DataPath, cfg.Schema)
	if err != nil {
		return nil, errors.Wrap(err, "load dataset")
	}

	split, err := model_selection.TrainTestSplit(ds, cfg.TestFraction, cfg.Seed)
	if err != nil {
		return nil, errors.Wrap(err, "split dataset")
	}
	train, test := split.TrainRecords(), split.TestRecords()
	if len(train) == 0 || len(test) == 0 {
		return nil, errors.NewInvalidArgumentError("pipeline.Run", "TestFraction",
			"split produced an empty subset; use more rows or another seed",
			map[string]int{"train": len(train), "test": len(test)})
	}
	logger.Info("Dataset split",
		log.OperationKey, log.OperationSplit,
		log.RandomSeedKey, cfg.Seed,
		log.TestFractionKey, cfg.TestFraction,
		"split.train", len(train),
		"split.test", len(test),
	)

	features, err := preprocessing.NewHousingFeatures().Fit(train)
	if err != nil {
		return nil, errors.Wrap(err, "fit features")
	}

	trained, err := linear.NewSDCARegressor(cfg.TrainerOptions...).Train(features.TrainMatrix(), dataset.Targets(train))
	if err != nil {
		return nil, errors.Wrap(err, "train model")
	}

	Xtest, err := features.Transform(test)
	if err != nil {
		return nil, errors.Wrap(err, "transform test set")
	}
	m, err := metrics.EvaluateRegression(trained, Xtest, dataset.Targets(test))
	if err != nil {
		return nil, errors.Wrap(err, "evaluate model")
	}

	weights, err := trained.ExportWeights(features.FeatureNames())
	if err != nil {
		return nil, errors.Wrap(err, "export weights")
	}

	logger.Info("Pipeline completed",
		log.SamplesKey, ds.Len(),
		log.FeaturesKey, features.Width(),
		log.R2ScoreKey, m.RSquared,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)

	return &Result{
		Metrics:      m,
		Model:        trained,
		Weights:      weights,
		Features:     features,
		FeatureNames: features.FeatureNames(),
		TrainSize:    len(train),
		TestSize:     len(test),
	}, nil
}

// Package preprocessing turns housing records into feature matrices.
//
// The feature pipeline has two stages, each implementing model.Stage: a
// one-hot encoder for the categorical column and a numeric concatenator for
// the raw predictors. Both are fit once on the training records; the fitted
// parameters are then applied unchanged to any other record set.
package preprocessing

import (
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/housing/core/model"
	"github.com/YuminosukeSato/housing/dataset"
	"github.com/YuminosukeSato/housing/pkg/errors"
	"github.com/YuminosukeSato/housing/pkg/log"
)

var (
	_ model.Stage[dataset.HousingRecord, *CategoryIndex]  = OneHotEncoder[dataset.HousingRecord]{}
	_ model.Stage[dataset.HousingRecord, NumericColumns] = NumericConcatenator[dataset.HousingRecord]{}
)

// FeaturePipeline produces concat(one-hot(category), numeric predictors).
type FeaturePipeline[R any] struct {
	Categorical OneHotEncoder[R]
	Numeric     NumericConcatenator[R]
}

// NewHousingFeatures returns the pipeline for dataset.HousingRecord: one-hot
// ocean_proximity followed by the eight numeric predictors. The target
// median_house_value is never a feature.
func NewHousingFeatures() *FeaturePipeline[dataset.HousingRecord] {
	return &FeaturePipeline[dataset.HousingRecord]{
		Categorical: OneHotEncoder[dataset.HousingRecord]{
			Name:   dataset.FieldOceanProximity,
			Column: func(r dataset.HousingRecord) string { return r.OceanProximity },
		},
		Numeric: NumericConcatenator[dataset.HousingRecord]{
			Columns: dataset.NumericPredictors,
			Extract: func(r dataset.HousingRecord, dst []float64) {
				p := r.Predictors()
				copy(dst, p[:])
			},
		},
	}
}

// Fit fits both stages on train and materializes the training matrix.
func (p *FeaturePipeline[R]) Fit(train []R) (*FittedFeatures[R], error) {
	start := time.Now()

	categories, err := p.Categorical.Fit(train)
	if err != nil {
		return nil, errors.Wrap(err, "fit categorical encoder")
	}
	numeric, err := p.Numeric.Fit(train)
	if err != nil {
		return nil, errors.Wrap(err, "fit numeric stage")
	}

	fitted := &FittedFeatures[R]{
		pipeline:   *p,
		categories: categories,
		numeric:    numeric,
	}
	fitted.names = append(p.Categorical.Names(categories), p.Numeric.Names(numeric)...)

	// 訓練行列は一度だけ作成し、以降は使い回す
	fitted.train, err = fitted.Transform(train)
	if err != nil {
		return nil, err
	}

	log.GetLogger().With(log.ComponentKey, "preprocessing").Info("Feature pipeline fitted",
		log.OperationKey, log.OperationFit,
		log.PhaseKey, log.PhasePreprocessing,
		log.SamplesKey, len(train),
		log.CategoriesKey, categories.Len(),
		log.FeaturesKey, fitted.Width(),
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return fitted, nil
}

// FittedFeatures holds the frozen stage parameters and the cached training
// matrix. It is immutable after Fit.
type FittedFeatures[R any] struct {
	pipeline   FeaturePipeline[R]
	categories *CategoryIndex
	numeric    NumericColumns
	names      []string
	train      *mat.Dense
}

// TrainMatrix returns the training feature matrix computed by Fit. The
// matrix is shared; callers must not modify it.
func (f *FittedFeatures[R]) TrainMatrix() *mat.Dense {
	return f.train
}

// Transform encodes records with the fitted parameters.
func (f *FittedFeatures[R]) Transform(records []R) (*mat.Dense, error) {
	onehot, err := f.pipeline.Categorical.Transform(f.categories, records)
	if err != nil {
		return nil, errors.Wrap(err, "categorical transform")
	}
	numeric, err := f.pipeline.Numeric.Transform(f.numeric, records)
	if err != nil {
		return nil, errors.Wrap(err, "numeric transform")
	}

	var out mat.Dense
	out.Augment(onehot, numeric)
	return &out, nil
}

// Width returns the length of every encoded feature vector, K + numeric.
func (f *FittedFeatures[R]) Width() int {
	return len(f.names)
}

// FeatureNames returns the output column names in order.
func (f *FittedFeatures[R]) FeatureNames() []string {
	names := make([]string, len(f.names))
	copy(names, f.names)
	return names
}

// Categories returns the categorical vocabulary in index order.
func (f *FittedFeatures[R]) Categories() []string {
	return f.categories.Categories()
}

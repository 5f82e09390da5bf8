// Package housing predicts California district median house values with a
// linear model trained on tabular data.
//
// The module is a one-shot batch pipeline: load a comma-delimited file with
// a fixed schema, split it into training and test subsets, fit a one-hot
// plus numeric feature pipeline on the training subset, train an
// L2-regularized linear regressor by coordinate descent and report R²,
// RMSE and MSE on the test subset.
//
// # Quick Start
//
//	cfg := pipeline.DefaultConfig()
//	cfg.DataPath = "housing.csv"
//
//	res, err := pipeline.Run(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("R Squared:", res.Metrics.RSquared)
//
// The stages can also be used on their own:
//
//	ds, err := dataset.Load("housing.csv", dataset.HousingSchema())
//	split, err := model_selection.TrainTestSplit(ds, 0.2, 1)
//	features, err := preprocessing.NewHousingFeatures().Fit(split.TrainRecords())
//	model, err := linear.NewSDCARegressor(linear.WithL2(1e-4)).
//	    Train(features.TrainMatrix(), dataset.Targets(split.TrainRecords()))
//	Xtest, err := features.Transform(split.TestRecords())
//	m, err := metrics.EvaluateRegression(model, Xtest, dataset.Targets(split.TestRecords()))
//
// # Packages
//
//   - dataset: Schema, HousingRecord and the delimited-file loader
//   - model_selection: Seeded Bernoulli train/test split
//   - preprocessing: One-hot encoder, numeric concatenation, feature pipeline, StandardScaler
//   - linear: SDCARegressor (coordinate descent or QR ridge) and LinearModel
//   - metrics: MSE, RMSE, MAE, R² and RegressionMetrics
//   - pipeline: End-to-end orchestration
//   - core/model: Stage and Predictor interfaces, ModelWeights, StateManager
//   - core/parallel: Row-chunked parallel loops
//   - pkg/errors: Typed errors and warnings on top of cockroachdb/errors
//   - pkg/log: slog/zerolog structured logging
//
// # Performance
//
// Feature transforms and batch prediction run in parallel row chunks for
// inputs with more than 1000 rows; results are identical to a sequential
// loop. Coordinate descent itself is sequential and deterministic.
package housing

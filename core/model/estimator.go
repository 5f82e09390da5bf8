package model

import "gonum.org/v1/gonum/mat"

// Predictor は学習済みモデルの予測インターフェース
// 実装は不変であり、予測は副作用を持たない
type Predictor interface {
	// PredictOne は1つの特徴量ベクトルに対する予測値を返す
	PredictOne(x []float64) float64

	// Predict は各行に対する予測値を返す
	Predict(X mat.Matrix) (*mat.VecDense, error)

	// NFeatures は学習時の特徴量の数を返す
	NFeatures() int
}

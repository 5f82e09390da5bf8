package model

import (
	"fmt"
)

// ModelWeights は線形モデルの重みを特徴量名付きで表す構造体
type ModelWeights struct {
	// ModelType はモデルの種類（SDCARegressor等）
	ModelType string `json:"model_type"`

	// Coefficients は重み係数
	Coefficients []float64 `json:"coefficients"`

	// Intercept は切片
	Intercept float64 `json:"intercept"`

	// Features は特徴量の名前（Coefficientsと同じ順序）
	Features []string `json:"features,omitempty"`

	// Hyperparameters は学習時のハイパーパラメータ
	Hyperparameters map[string]interface{} `json:"hyperparameters"`

	// Metadata は学習時の統計（反復回数、目的関数値など）
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// Validate はModelWeightsの妥当性を検証
func (mw *ModelWeights) Validate() error {
	if mw.ModelType == "" {
		return fmt.Errorf("model_type is required")
	}
	if len(mw.Coefficients) == 0 {
		return fmt.Errorf("coefficients are required")
	}
	if len(mw.Features) > 0 && len(mw.Features) != len(mw.Coefficients) {
		return fmt.Errorf("features length %d does not match coefficients length %d",
			len(mw.Features), len(mw.Coefficients))
	}
	return nil
}

// Coefficient は名前で重みを引く。見つからなければ false を返す
func (mw *ModelWeights) Coefficient(feature string) (float64, bool) {
	for i, name := range mw.Features {
		if name == feature {
			return mw.Coefficients[i], true
		}
	}
	return 0, false
}

package model

import "gonum.org/v1/gonum/mat"

// Stage は特徴量パイプラインの1段を表すインターフェース
//
// Fit は訓練レコードだけからパラメータ P を学習し、Transform は学習済み
// パラメータを任意のレコード集合に適用して行列ブロックを返す。
// 行数は入力レコード数と一致し、列数は P で決まる。
type Stage[R any, P any] interface {
	// Fit は変換に必要なパラメータを学習する
	Fit(records []R) (P, error)

	// Transform は学習済みパラメータでレコードを変換する
	Transform(params P, records []R) (*mat.Dense, error)

	// Width は params を適用したときの出力列数を返す
	Width(params P) int

	// Names は出力列の名前を返す
	Names(params P) []string
}

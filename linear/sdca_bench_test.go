package linear

import (
	"math/rand/v2"
	"testing"

	"gonum.org/v1/gonum/mat"
)

// createBenchmarkData はベンチマーク用のデータを生成する
func createBenchmarkData(rows, cols int) (*mat.Dense, []float64) {
	// シードを固定して再現性を確保
	rng := rand.New(rand.NewPCG(42, 42))

	X := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			X.Set(i, j, rng.Float64()*2.0-1.0)
		}
	}

	// y = X * weights + 1 + 小さなノイズ
	y := make([]float64, rows)
	for i := 0; i < rows; i++ {
		sum := 1.0
		for j := 0; j < cols; j++ {
			sum += X.At(i, j) * float64(j+1) * 0.5
		}
		y[i] = sum + (rng.Float64()-0.5)*0.1
	}

	return X, y
}

// BenchmarkSDCARegressorTrain はソルバーごとの学習時間を測定する
func BenchmarkSDCARegressorTrain(b *testing.B) {
	sizes := []struct {
		name string
		rows int
		cols int
	}{
		{"Small_100x10", 100, 10},
		{"Medium_1000x13", 1000, 13},
		{"Housing_16500x13", 16500, 13}, // housing.csv の訓練行数程度
	}

	for _, size := range sizes {
		X, y := createBenchmarkData(size.rows, size.cols)
		for _, solver := range []Solver{SolverCoordinateDescent, SolverQR} {
			b.Run(size.name+"/"+solver.String(), func(b *testing.B) {
				trainer := NewSDCARegressor(WithSolver(solver))
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					if _, err := trainer.Train(X, y); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

// BenchmarkLinearModelPredict は並列化閾値の前後で予測を測定する
func BenchmarkLinearModelPredict(b *testing.B) {
	sizes := []struct {
		name string
		rows int
	}{
		{"Sequential_900", 900}, // 閾値(1000)未満
		{"Parallel_5000", 5000},
		{"Parallel_50000", 50000},
	}

	for _, size := range sizes {
		b.Run(size.name, func(b *testing.B) {
			X, y := createBenchmarkData(size.rows, 13)
			m, err := NewSDCARegressor().Train(X, y)
			if err != nil {
				b.Fatal(err)
			}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := m.Predict(X); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

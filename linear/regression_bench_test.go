package linear

import (
	"math/rand/v2"
	"testing"
)

// createBenchmarkData はベンチマーク用のデータ y = 1 + 0.5x + noise を生成する
func createBenchmarkData(n int) ([]float64, []float64) {
	// シードを固定して再現性を確保
	rng := rand.New(rand.NewPCG(42, 42))

	x := make([]float64, n)
	y := make([]float64, n)
	for i := range x {
		x[i] = rng.Float64()*2.0 - 1.0
		y[i] = 1.0 + 0.5*x[i] + (rng.Float64()-0.5)*0.1
	}
	return x, y
}

var benchSizes = []struct {
	name string
	n    int
}{
	{"Small_100", 100},
	{"Medium_10000", 10000},
	{"Large_1000000", 1000000},
}

// BenchmarkRegressionFit はFitメソッドのベンチマークを実行する
func BenchmarkRegressionFit(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(size.name, func(b *testing.B) {
			x, y := createBenchmarkData(size.n)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				r := NewRegression()
				if err := r.Fit(x, y); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkRegressionPredict はPredictメソッドのベンチマークを実行する
func BenchmarkRegressionPredict(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(size.name, func(b *testing.B) {
			x, y := createBenchmarkData(size.n)
			r := NewRegression()
			if err := r.Fit(x, y); err != nil {
				b.Fatal(err)
			}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := r.Predict(x); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

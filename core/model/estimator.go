package model

// Fitter は学習可能な一変数モデルのインターフェース
type Fitter interface {
	// Fit はモデルを訓練データ (x, y) で学習させる
	Fit(x, y []float64) error
}

// Predictor は予測可能なモデルのインターフェース
type Predictor interface {
	// Predict は入力 x の各要素に対する予測値を同じ順序で返す
	Predict(x []float64) ([]float64, error)
}

// Scorer はスコアを計算できるモデルのインターフェース
type Scorer interface {
	// Score は (x, y) に対する決定係数 R² を返す
	Score(x, y []float64) (float64, error)
}

// LinearModel は直線 y = Intercept + Coef*x を表すモデルのインターフェース
type LinearModel interface {
	Fitter
	Predictor
	Scorer
	// Coef は学習された係数を返す
	Coef() []float64
	// Intercept は学習された切片を返す
	Intercept() float64
	// IsFitted はモデルが学習済みかどうかを返す
	IsFitted() bool
}

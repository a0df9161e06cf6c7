// Package metrics は回帰モデルの評価指標を提供する
package metrics

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/YuminosukeSato/simplereg/pkg/errors"
)

// checkPair は yTrue と yPred が同じ長さで空でないことを検証する
func checkPair(op string, yTrue, yPred []float64) error {
	if len(yTrue) == 0 || len(yPred) == 0 {
		return errors.NewInvalidInputError(op, "empty vector", len(yTrue), len(yPred))
	}
	if len(yTrue) != len(yPred) {
		return errors.NewInvalidInputError(op, "yTrue and yPred must have the same length", len(yTrue), len(yPred))
	}
	return nil
}

// MSE は平均二乗誤差（Mean Squared Error）を計算する
func MSE(yTrue, yPred []float64) (float64, error) {
	if err := checkPair("MSE", yTrue, yPred); err != nil {
		return 0, err
	}

	// MSE = (1/n) * Σ(yTrue - yPred)²
	d := floats.Distance(yTrue, yPred, 2)
	return d * d / float64(len(yTrue)), nil
}

// RMSE は平方根平均二乗誤差（Root Mean Squared Error）を計算する
func RMSE(yTrue, yPred []float64) (float64, error) {
	mse, err := MSE(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(mse), nil
}

// MAE は平均絶対誤差（Mean Absolute Error）を計算する
func MAE(yTrue, yPred []float64) (float64, error) {
	if err := checkPair("MAE", yTrue, yPred); err != nil {
		return 0, err
	}

	// MAE = (1/n) * Σ|yTrue - yPred|
	return floats.Distance(yTrue, yPred, 1) / float64(len(yTrue)), nil
}

// R2Score は決定係数（R²）を計算する
// yTrue の分散がゼロの場合は DegenerateInput を返す
func R2Score(yTrue, yPred []float64) (float64, error) {
	if err := checkPair("R2Score", yTrue, yPred); err != nil {
		return 0, err
	}

	mean := stat.Mean(yTrue, nil)
	var tss, rss float64
	for i, v := range yTrue {
		tss += (v - mean) * (v - mean)
		rss += (v - yPred[i]) * (v - yPred[i])
	}

	if tss == 0 {
		return 0, errors.NewDegenerateInputError("R2Score", len(yTrue), yTrue[0])
	}

	// R² = 1 - RSS/TSS
	return 1 - rss/tss, nil
}

// ExplainedVarianceScore は説明分散スコアを計算する
func ExplainedVarianceScore(yTrue, yPred []float64) (float64, error) {
	if err := checkPair("ExplainedVarianceScore", yTrue, yPred); err != nil {
		return 0, err
	}

	diff := make([]float64, len(yTrue))
	floats.SubTo(diff, yTrue, yPred)

	// 母分散（重みなし、n で割る）
	_, varYTrue := stat.PopMeanVariance(yTrue, nil)
	_, varDiff := stat.PopMeanVariance(diff, nil)

	if varYTrue == 0 {
		return 0, errors.NewDegenerateInputError("ExplainedVarianceScore", len(yTrue), yTrue[0])
	}

	// 説明分散スコア = 1 - Var(yTrue - yPred) / Var(yTrue)
	return 1 - varDiff/varYTrue, nil
}

// Summary はよく使う回帰指標をまとめたもの
type Summary struct {
	MSE  float64 `json:"mse"`
	RMSE float64 `json:"rmse"`
	MAE  float64 `json:"mae"`
	// R2 は yTrue が定数の場合 nil
	R2 *float64 `json:"r2,omitempty"`
}

// Summarize は MSE, RMSE, MAE, R² をまとめて計算する
// R² が定義できない（yTrue が定数）場合でもエラーにはせず R2 を nil にする
func Summarize(yTrue, yPred []float64) (Summary, error) {
	mse, err := MSE(yTrue, yPred)
	if err != nil {
		return Summary{}, err
	}
	mae, err := MAE(yTrue, yPred)
	if err != nil {
		return Summary{}, err
	}

	s := Summary{MSE: mse, RMSE: math.Sqrt(mse), MAE: mae}
	r2, err := R2Score(yTrue, yPred)
	switch {
	case err == nil:
		s.R2 = &r2
	case errors.Is(err, errors.ErrDegenerateInput):
	default:
		return Summary{}, err
	}
	return s, nil
}

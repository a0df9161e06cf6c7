// Package linear は一変数の最小二乗法（OLS）による線形回帰を提供する。
//
//	r := linear.NewRegression()
//	if err := r.Fit([]float64{1, 2, 3}, []float64{2, 4, 6}); err != nil {
//	    return err
//	}
//	pred, err := r.Predict([]float64{4}) // [8]
package linear

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/YuminosukeSato/simplereg/core/model"
	"github.com/YuminosukeSato/simplereg/metrics"
	"github.com/YuminosukeSato/simplereg/pkg/errors"
	"github.com/YuminosukeSato/simplereg/pkg/log"
)

const modelName = "Regression"

var _ model.LinearModel = (*Regression)(nil)

// Regression は一変数の線形回帰モデル y = intercept + slope*x
// 1つのインスタンスを複数のゴルーチンから同時に変更してはならない
type Regression struct {
	model.BaseEstimator // BaseEstimatorを埋め込み

	slope     float64 // 傾き（係数）
	intercept float64 // 切片

	name   string
	logger log.Logger
}

// NewRegression は未学習の線形回帰モデルを作成する
func NewRegression(opts ...Option) *Regression {
	r := &Regression{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Fit はモデルを訓練データで学習させる
// 閉形式の最小二乗解 slope = Σ(x-x̄)(y-ȳ) / Σ(x-x̄)², intercept = ȳ - slope*x̄ を使用
//
// エラー:
//   - InvalidInput: x と y の長さが異なる、または空
//   - DegenerateInput: x の分散がゼロ（全要素が同じ値）
//
// 失敗した場合、モデルの状態は呼び出し前のまま変更されない
func (r *Regression) Fit(x, y []float64) error {
	const op = modelName + ".Fit"
	logger := r.contextLogger().With(log.OperationKey, log.OperationFit)

	// 入力の検証
	if len(x) != len(y) {
		err := errors.NewInvalidInputError(op, "x and y must have the same length", len(x), len(y))
		logger.Debug("fit rejected", err)
		return err
	}
	if len(x) == 0 {
		err := errors.NewInvalidInputError(op, "x and y must not be empty", len(x), len(y))
		logger.Debug("fit rejected", err)
		return err
	}
	if allEqual(x) {
		err := errors.NewDegenerateInputError(op, len(x), x[0])
		logger.Debug("fit rejected", err)
		return err
	}

	n := float64(len(x))
	meanX := floats.Sum(x) / n
	meanY := floats.Sum(y) / n

	// float64 変換で FMA への融合を防ぐ
	var num, den float64
	for i, xi := range x {
		dx := xi - meanX
		num += float64(dx * (y[i] - meanY))
		den += float64(dx * dx)
	}

	// 誤差の許容値は設けず、ちょうどゼロのみを退化とみなす
	if den == 0 {
		err := errors.NewDegenerateInputError(op, len(x), x[0])
		logger.Debug("fit rejected", err)
		return err
	}

	slope := num / den
	intercept := meanY - float64(slope*meanX)

	if w := errors.CheckFinite(op,
		errors.NamedValue{Name: "slope", Value: slope},
		errors.NamedValue{Name: "intercept", Value: intercept},
	); w != nil {
		errors.Warn(w)
	}

	r.slope = slope
	r.intercept = intercept
	r.SetFitted()

	logger.Debug("fit completed",
		log.SamplesKey, len(x),
		log.SlopeKey, slope,
		log.InterceptKey, intercept,
	)
	return nil
}

// Predict は入力データの各要素に対する予測 intercept + slope*x を返す
// 空の入力には空のスライスを返す。モデルの状態は変更しない
func (r *Regression) Predict(x []float64) ([]float64, error) {
	if !r.IsFitted() {
		return nil, errors.NewNotFittedError(modelName, "Predict")
	}

	predictions := make([]float64, len(x))
	for i, xi := range x {
		predictions[i] = r.intercept + float64(r.slope*xi)
	}

	r.contextLogger().Debug("predict completed",
		log.OperationKey, log.OperationPredict,
		log.PredsKey, len(predictions),
	)
	return predictions, nil
}

// Score はモデルの決定係数（R²）を計算する
func (r *Regression) Score(x, y []float64) (float64, error) {
	if !r.IsFitted() {
		return 0, errors.NewNotFittedError(modelName, "Score")
	}

	yPred, err := r.Predict(x)
	if err != nil {
		return 0, err
	}

	score, err := metrics.R2Score(y, yPred)
	if err != nil {
		return 0, err
	}
	r.contextLogger().Debug("score completed",
		log.OperationKey, log.OperationScore,
		log.R2ScoreKey, score,
	)
	return score, nil
}

// Slope は学習された傾きを返す。未学習の場合は0
func (r *Regression) Slope() float64 {
	return r.slope
}

// Intercept は学習された切片を返す。未学習の場合は0
func (r *Regression) Intercept() float64 {
	return r.intercept
}

// Coef は学習された係数を長さ1のスライスで返す。未学習の場合はnil
func (r *Regression) Coef() []float64 {
	if !r.IsFitted() {
		return nil
	}
	return []float64{r.slope}
}

// Equation は学習された直線を "y = 2x + 1" の形式で返す
func (r *Regression) Equation() string {
	if !r.IsFitted() {
		return "not fitted"
	}
	sign := "+"
	intercept := r.intercept
	switch {
	case intercept == 0:
		intercept = 0 // -0
	case intercept < 0:
		sign, intercept = "-", -intercept
	}
	return fmt.Sprintf("y = %gx %s %g", r.slope, sign, intercept)
}

// FitPredict は新しいモデルを (x, y) で学習させ、xPred に対する予測を返す
// Fit のエラーはそのまま返され、その場合 Predict は呼ばれない
func FitPredict(x, y, xPred []float64, opts ...Option) ([]float64, error) {
	r := NewRegression(opts...)
	if err := r.Fit(x, y); err != nil {
		return nil, err
	}
	return r.Predict(xPred)
}

func (r *Regression) contextLogger() log.Logger {
	l := r.logger
	if l == nil {
		l = log.GetLogger()
	}
	l = l.With(log.ModelNameKey, modelName)
	if r.name != "" {
		l = l.With(log.EstimatorIDKey, r.name)
	}
	return l
}

// allEqual は全要素が同じ値かどうかを返す
// 全要素が等しければ、平均の丸め誤差で分母がわずかに非ゼロになっても分散ゼロとみなす
func allEqual(x []float64) bool {
	for _, v := range x[1:] {
		if v != x[0] {
			return false
		}
	}
	return true
}

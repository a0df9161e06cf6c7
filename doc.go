// Package simplereg fits a straight line y = intercept + slope*x to paired
// samples with ordinary least squares and predicts from it.
//
// The model is solved in closed form from the sample means:
//
//	slope     = Σ(xi - x̄)(yi - ȳ) / Σ(xi - x̄)²
//	intercept = ȳ - slope*x̄
//
// # Installation
//
//	go get github.com/YuminosukeSato/simplereg
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/simplereg/linear"
//	)
//
//	func main() {
//	    model := linear.NewRegression()
//	    if err := model.Fit([]float64{1, 2, 3}, []float64{2, 4, 6}); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    predictions, err := model.Predict([]float64{4})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println("Predictions:", predictions) // [8]
//	}
//
// For one-shot use, linear.FitPredict fits a fresh model and predicts in a
// single call.
//
// # Errors
//
// Failures are reported as typed errors from pkg/errors that stay
// distinguishable through wrapping:
//
//   - InvalidInputError (ErrInvalidInput): x and y differ in length or are empty
//   - DegenerateInputError (ErrDegenerateInput): every x is the same value
//   - NotFittedError (ErrNotFitted): Predict or Score before a successful Fit
//
// errors.Code maps any of them to a stable string such as "DEGENERATE_INPUT".
//
// # Packages
//
//   - linear: the Regression model and FitPredict
//   - metrics: MSE, RMSE, MAE, R² and explained variance over []float64
//   - dataset: CSV loading of x,y samples
//   - report: JSON report of training metrics and predictions
//   - plot: PNG/SVG charts (gonum/plot) and HTML charts (go-echarts)
//   - core/model: estimator interfaces and fitted-state tracking
//   - pkg/errors: error types, warnings and panic recovery
//   - pkg/log: structured logging on zerolog or slog
//   - cmd/olsfit: command line front end
//
// # License
//
// simplereg is released under the MIT License.
package simplereg

// Package report builds the result document written by the olsfit command.
//
// A report holds the training-set metrics and the predictions for the
// requested inputs. Fitted parameters are not part of it; a report cannot be
// loaded back as a model.
package report

import (
	"io"

	"github.com/goccy/go-json"

	"github.com/YuminosukeSato/simplereg/core/model"
	"github.com/YuminosukeSato/simplereg/metrics"
	"github.com/YuminosukeSato/simplereg/pkg/errors"
)

// Prediction is one inference result.
type Prediction struct {
	X    float64 `json:"x"`
	YHat float64 `json:"y_hat"`
}

// Report is the JSON document produced by a fit-and-predict run.
type Report struct {
	Model       string          `json:"model"`
	Samples     int             `json:"samples"`
	Training    metrics.Summary `json:"training"`
	Predictions []Prediction    `json:"predictions"`
}

// Build evaluates a fitted model on its training data and predicts xPred.
// An unfitted model yields NotFitted.
func Build(name string, m model.Predictor, x, y, xPred []float64) (*Report, error) {
	fitted, err := m.Predict(x)
	if err != nil {
		return nil, err
	}
	summary, err := metrics.Summarize(y, fitted)
	if err != nil {
		return nil, errors.Wrap(err, "training metrics")
	}

	yHat, err := m.Predict(xPred)
	if err != nil {
		return nil, err
	}
	preds := make([]Prediction, len(xPred))
	for i := range xPred {
		preds[i] = Prediction{X: xPred[i], YHat: yHat[i]}
	}

	return &Report{
		Model:       name,
		Samples:     len(x),
		Training:    summary,
		Predictions: preds,
	}, nil
}

// Write encodes rep as indented JSON followed by a newline.
func Write(w io.Writer, rep *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rep); err != nil {
		return errors.Wrap(err, "encode report")
	}
	return nil
}

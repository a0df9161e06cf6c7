// Command olsfit fits a straight line to x,y samples from a CSV file and
// writes a JSON report with training metrics and predictions.
//
// Usage:
//
//	olsfit -train train.csv [-predict inputs.csv] [-out report.json]
//	       [-png fit.png] [-svg fit.svg] [-html fit.html]
//	       [-log-level info] [-log-format json] [-profile cpu|mem]
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/profile"

	"github.com/YuminosukeSato/simplereg/dataset"
	"github.com/YuminosukeSato/simplereg/linear"
	"github.com/YuminosukeSato/simplereg/pkg/errors"
	"github.com/YuminosukeSato/simplereg/pkg/log"
	"github.com/YuminosukeSato/simplereg/plot"
	"github.com/YuminosukeSato/simplereg/report"
)

const modelName = "linear.Regression"

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "olsfit: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) (err error) {
	defer errors.Recover(&err, "olsfit")

	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	logger := cfg.logger(stderr).With(log.ComponentKey, "olsfit")
	log.SetLogger(logger)
	log.InstallWarnings(logger)

	if mode, _ := cfg.profileMode(); mode != nil {
		defer profile.Start(mode, profile.ProfilePath(cfg.ProfileDir), profile.Quiet).Stop()
	}

	samples, err := dataset.LoadXYFile(cfg.TrainPath)
	if err != nil {
		return err
	}
	xPred := []float64{}
	if cfg.PredictPath != "" {
		if xPred, err = dataset.LoadXFile(cfg.PredictPath); err != nil {
			return err
		}
	}

	m := linear.NewRegression(linear.WithLogger(logger), linear.WithName("olsfit"))
	if err := m.Fit(samples.X, samples.Y); err != nil {
		logger.Error("fit failed", err)
		return err
	}
	logger.Info("model fitted",
		log.SamplesKey, samples.Len(),
		log.SlopeKey, m.Slope(),
		log.InterceptKey, m.Intercept(),
		"equation", m.Equation(),
	)

	rep, err := report.Build(modelName, m, samples.X, samples.Y, xPred)
	if err != nil {
		return err
	}
	if err := writeTo(cfg.OutPath, stdout, func(w io.Writer) error {
		return report.Write(w, rep)
	}); err != nil {
		return err
	}

	chart := &plot.Chart{
		Title:    m.Equation(),
		X:        samples.X,
		Y:        samples.Y,
		Model:    m,
		PredictX: xPred,
	}
	return renderCharts(cfg, chart, logger)
}

func renderCharts(cfg *Config, chart *plot.Chart, logger log.Logger) error {
	outputs := []struct{ path, format string }{
		{cfg.PNGPath, "png"},
		{cfg.SVGPath, "svg"},
		{cfg.HTMLPath, "html"},
	}
	for _, o := range outputs {
		if o.path == "" {
			continue
		}
		err := writeTo(o.path, nil, func(w io.Writer) error {
			if o.format == "html" {
				return chart.RenderHTML(w)
			}
			return chart.WriteImage(w, o.format, plot.DefaultWidth, plot.DefaultHeight)
		})
		if err != nil {
			return err
		}
		logger.Info("chart written", log.OperationKey, log.OperationRender, log.OutputKey, o.path)
	}
	return nil
}

// writeTo calls fn with the file at path, or with fallback when path is empty.
func writeTo(path string, fallback io.Writer, fn func(io.Writer) error) error {
	if path == "" {
		return fn(fallback)
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "close %s", path)
	}
	return nil
}

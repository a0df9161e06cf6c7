// Package plot draws training samples together with a fitted regression line.
//
// Static images (PNG, SVG, PDF, ...) are rendered with gonum.org/v1/plot and
// interactive HTML pages with go-echarts.
package plot

import (
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/floats"
	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	_ "gonum.org/v1/plot/vg/vgimg" // png, jpg, tif
	_ "gonum.org/v1/plot/vg/vgsvg" // svg

	"github.com/YuminosukeSato/simplereg/core/model"
	"github.com/YuminosukeSato/simplereg/pkg/errors"
	"github.com/YuminosukeSato/simplereg/pkg/log"
)

// Default image size.
const (
	DefaultWidth  = 6 * vg.Inch
	DefaultHeight = 4 * vg.Inch
)

var (
	sampleColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	fitColor    = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	predColor   = color.RGBA{R: 44, G: 160, B: 44, A: 255}
)

// Chart describes one figure: the training samples, the model whose line is
// drawn across them and optional extra inputs to mark as predictions.
type Chart struct {
	Title string
	X, Y  []float64
	Model model.Predictor
	// PredictX are drawn as predicted points on the line.
	PredictX []float64
}

func (c *Chart) validate(op string) error {
	if c.Model == nil {
		return errors.Newf("%s: chart has no model", op)
	}
	if len(c.X) != len(c.Y) || len(c.X) == 0 {
		return errors.NewInvalidInputError(op, "chart needs equal-length non-empty samples", len(c.X), len(c.Y))
	}
	return nil
}

// lineEnds returns the fitted line evaluated at the smallest and largest x
// over samples and prediction inputs.
func (c *Chart) lineEnds() ([]float64, []float64, error) {
	lo, hi := floats.Min(c.X), floats.Max(c.X)
	if len(c.PredictX) > 0 {
		lo = min(lo, floats.Min(c.PredictX))
		hi = max(hi, floats.Max(c.PredictX))
	}
	xs := []float64{lo, hi}
	ys, err := c.Model.Predict(xs)
	if err != nil {
		return nil, nil, err
	}
	return xs, ys, nil
}

func (c *Chart) title() string {
	if c.Title == "" {
		return "Linear regression"
	}
	return c.Title
}

func toXYs(x, y []float64) plotter.XYs {
	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}
	return pts
}

// Plot builds the gonum plot for the chart.
func (c *Chart) Plot() (*gplot.Plot, error) {
	if err := c.validate("plot.Plot"); err != nil {
		return nil, err
	}

	p := gplot.New()
	p.Title.Text = c.title()
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	s, err := plotter.NewScatter(toXYs(c.X, c.Y))
	if err != nil {
		return nil, errors.Wrap(err, "scatter")
	}
	s.GlyphStyle.Color = sampleColor
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	s.GlyphStyle.Radius = vg.Points(3)
	p.Add(s)
	p.Legend.Add("samples", s)

	lx, ly, err := c.lineEnds()
	if err != nil {
		return nil, err
	}
	l, err := plotter.NewLine(toXYs(lx, ly))
	if err != nil {
		return nil, errors.Wrap(err, "line")
	}
	l.LineStyle.Width = vg.Points(2)
	l.LineStyle.Color = fitColor
	p.Add(l)
	p.Legend.Add("fit", l)

	if len(c.PredictX) > 0 {
		py, err := c.Model.Predict(c.PredictX)
		if err != nil {
			return nil, err
		}
		ps, err := plotter.NewScatter(toXYs(c.PredictX, py))
		if err != nil {
			return nil, errors.Wrap(err, "predictions")
		}
		ps.GlyphStyle.Color = predColor
		ps.GlyphStyle.Shape = draw.TriangleGlyph{}
		ps.GlyphStyle.Radius = vg.Points(4)
		p.Add(ps)
		p.Legend.Add("predictions", ps)
	}
	p.Legend.Top = true
	p.Legend.Left = true

	return p, nil
}

// Save renders the chart to path. The format follows the file extension
// (png, svg, pdf, eps, jpg, tif).
func (c *Chart) Save(path string, width, height vg.Length) error {
	p, err := c.Plot()
	if err != nil {
		return err
	}
	if err := p.Save(width, height, path); err != nil {
		return errors.Wrapf(err, "save %s", path)
	}
	log.GetLogger().Debug("chart saved",
		log.ComponentKey, "plot",
		log.OperationKey, log.OperationRender,
		log.OutputKey, path,
	)
	return nil
}

// WriteImage renders the chart in the given format ("png", "svg", ...) to w.
func (c *Chart) WriteImage(w io.Writer, format string, width, height vg.Length) error {
	p, err := c.Plot()
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(width, height, strings.ToLower(format))
	if err != nil {
		return errors.Wrapf(err, "format %s", format)
	}
	_, err = wt.WriteTo(w)
	return err
}

// RenderHTML writes an interactive echarts page with the samples, the fitted
// line and any predicted points.
func (c *Chart) RenderHTML(w io.Writer) error {
	if err := c.validate("plot.RenderHTML"); err != nil {
		return err
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: c.title()}),
		charts.WithXAxisOpts(opts.XAxis{Name: "x", Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "y", Type: "value"}),
	)

	samples := make([]opts.ScatterData, len(c.X))
	for i := range c.X {
		samples[i] = opts.ScatterData{Value: []float64{c.X[i], c.Y[i]}}
	}
	scatter.AddSeries("samples", samples)

	if len(c.PredictX) > 0 {
		py, err := c.Model.Predict(c.PredictX)
		if err != nil {
			return err
		}
		preds := make([]opts.ScatterData, len(c.PredictX))
		for i := range c.PredictX {
			preds[i] = opts.ScatterData{Value: []float64{c.PredictX[i], py[i]}}
		}
		scatter.AddSeries("predictions", preds)
	}

	lx, ly, err := c.lineEnds()
	if err != nil {
		return err
	}
	line := charts.NewLine()
	line.AddSeries("fit", []opts.LineData{
		{Value: []float64{lx[0], ly[0]}},
		{Value: []float64{lx[1], ly[1]}},
	})
	scatter.Overlap(line)

	page := components.NewPage()
	page.AddCharts(scatter)
	return page.Render(w)
}

// SaveAny writes the chart to path, choosing RenderHTML for .html/.htm and
// the gonum renderer for everything else.
func (c *Chart) SaveAny(path string, width, height vg.Length) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
	default:
		return c.Save(path, width, height)
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	if err := c.RenderHTML(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "close %s", path)
	}
	log.GetLogger().Debug("chart saved",
		log.ComponentKey, "plot",
		log.OperationKey, log.OperationRender,
		log.OutputKey, path,
	)
	return nil
}

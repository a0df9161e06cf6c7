package plot

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/simplereg/linear"
	"github.com/YuminosukeSato/simplereg/pkg/errors"
)

func fittedChart(t *testing.T) *Chart {
	t.Helper()
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{2.1, 3.9, 6.2, 7.8, 10.1}
	m := linear.NewRegression()
	require.NoError(t, m.Fit(x, y))
	return &Chart{
		Title:    "training fit",
		X:        x,
		Y:        y,
		Model:    m,
		PredictX: []float64{6, 7},
	}
}

func TestChart_Plot(t *testing.T) {
	p, err := fittedChart(t).Plot()
	require.NoError(t, err)
	assert.Equal(t, "training fit", p.Title.Text)
	// 予測点を含むように x 軸が広がる
	assert.GreaterOrEqual(t, p.X.Max, 7.0)
	assert.LessOrEqual(t, p.X.Min, 1.0)
}

func TestChart_WriteImage(t *testing.T) {
	c := fittedChart(t)

	var png bytes.Buffer
	require.NoError(t, c.WriteImage(&png, "PNG", DefaultWidth, DefaultHeight))
	assert.True(t, bytes.HasPrefix(png.Bytes(), []byte("\x89PNG\r\n\x1a\n")), "png magic")

	var svg bytes.Buffer
	require.NoError(t, c.WriteImage(&svg, "svg", DefaultWidth, DefaultHeight))
	assert.Contains(t, svg.String(), "<svg")

	err := c.WriteImage(&bytes.Buffer{}, "bmp", DefaultWidth, DefaultHeight)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bmp")
}

func TestChart_RenderHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, fittedChart(t).RenderHTML(&buf))
	out := buf.String()
	assert.Contains(t, out, "echarts")
	assert.Contains(t, out, "training fit")
	assert.Contains(t, out, "predictions")
}

func TestChart_SaveAny(t *testing.T) {
	c := fittedChart(t)
	dir := t.TempDir()

	for _, name := range []string{"fit.png", "fit.svg", "fit.html"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, c.SaveAny(path, DefaultWidth, DefaultHeight))
			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Positive(t, info.Size())
		})
	}

	err := c.SaveAny(filepath.Join(dir, "missing", "fit.html"), DefaultWidth, DefaultHeight)
	assert.Error(t, err)
}

func TestChart_Validation(t *testing.T) {
	unfitted := linear.NewRegression()

	testData := map[string]struct {
		chart   *Chart
		errCode string
	}{
		"no model": {
			chart:   &Chart{X: []float64{1}, Y: []float64{1}},
			errCode: errors.CodeUnknown,
		},
		"length mismatch": {
			chart:   &Chart{X: []float64{1, 2}, Y: []float64{1}, Model: unfitted},
			errCode: errors.CodeInvalidInput,
		},
		"empty samples": {
			chart:   &Chart{Model: unfitted},
			errCode: errors.CodeInvalidInput,
		},
		"unfitted model": {
			chart:   &Chart{X: []float64{1, 2}, Y: []float64{1, 2}, Model: unfitted},
			errCode: errors.CodeNotFitted,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			_, err := td.chart.Plot()
			require.Error(t, err)
			assert.Equal(t, td.errCode, errors.Code(err))

			err = td.chart.RenderHTML(&bytes.Buffer{})
			require.Error(t, err)
			assert.Equal(t, td.errCode, errors.Code(err))
		})
	}
}

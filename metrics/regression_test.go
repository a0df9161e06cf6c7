package metrics

import (
	"math"
	"testing"

	"github.com/YuminosukeSato/simplereg/pkg/errors"
)

func TestMSE(t *testing.T) {
	tests := []struct {
		name      string
		yTrue     []float64
		yPred     []float64
		want      float64
		tolerance float64
		wantErr   error
	}{
		{
			name:      "perfect prediction",
			yTrue:     []float64{1.0, 2.0, 3.0, 4.0, 5.0},
			yPred:     []float64{1.0, 2.0, 3.0, 4.0, 5.0},
			want:      0.0,
			tolerance: 1e-10,
		},
		{
			name:      "simple case",
			yTrue:     []float64{1.0, 2.0, 3.0, 4.0},
			yPred:     []float64{1.5, 2.5, 2.5, 3.5},
			want:      0.25, // (0.25 * 4) / 4
			tolerance: 1e-10,
		},
		{
			name:      "larger errors",
			yTrue:     []float64{10.0, 20.0, 30.0},
			yPred:     []float64{12.0, 18.0, 33.0},
			want:      17.0 / 3.0, // (4 + 4 + 9) / 3
			tolerance: 1e-10,
		},
		{
			name:    "length mismatch",
			yTrue:   []float64{1.0, 2.0, 3.0},
			yPred:   []float64{1.0, 2.0},
			wantErr: errors.ErrInvalidInput,
		},
		{
			name:    "empty",
			yTrue:   []float64{},
			yPred:   []float64{},
			wantErr: errors.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MSE(tt.yTrue, tt.yPred)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("MSE() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("MSE() unexpected error = %v", err)
			}
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("MSE() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRMSE(t *testing.T) {
	got, err := RMSE([]float64{10, 20, 30}, []float64{12, 18, 33})
	if err != nil {
		t.Fatalf("RMSE() unexpected error = %v", err)
	}
	want := math.Sqrt(17.0 / 3.0)
	if math.Abs(got-want) > 1e-10 {
		t.Errorf("RMSE() = %v, want %v", got, want)
	}

	if _, err := RMSE([]float64{1}, nil); !errors.Is(err, errors.ErrInvalidInput) {
		t.Errorf("RMSE() error = %v, want InvalidInput", err)
	}
}

func TestMAE(t *testing.T) {
	tests := []struct {
		name  string
		yTrue []float64
		yPred []float64
		want  float64
	}{
		{"perfect prediction", []float64{1, 2, 3}, []float64{1, 2, 3}, 0},
		{"mixed signs", []float64{1, 2, 3, 4}, []float64{2, 1, 5, 4}, 1.0}, // (1 + 1 + 2 + 0) / 4
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MAE(tt.yTrue, tt.yPred)
			if err != nil {
				t.Fatalf("MAE() unexpected error = %v", err)
			}
			if math.Abs(got-tt.want) > 1e-10 {
				t.Errorf("MAE() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestR2Score(t *testing.T) {
	tests := []struct {
		name    string
		yTrue   []float64
		yPred   []float64
		want    float64
		wantErr error
	}{
		{
			name:  "perfect prediction",
			yTrue: []float64{1, 2, 3, 4, 5},
			yPred: []float64{1, 2, 3, 4, 5},
			want:  1.0,
		},
		{
			name:  "mean prediction",
			yTrue: []float64{1, 2, 3, 4, 5},
			yPred: []float64{3, 3, 3, 3, 3},
			want:  0.0,
		},
		{
			name:  "partial fit",
			yTrue: []float64{3, -0.5, 2, 7},
			yPred: []float64{2.5, 0.0, 2, 8},
			want:  0.9486081370449679, // scikit-learn r2_score の値
		},
		{
			name:    "constant truth",
			yTrue:   []float64{2, 2, 2},
			yPred:   []float64{1, 2, 3},
			wantErr: errors.ErrDegenerateInput,
		},
		{
			name:    "length mismatch",
			yTrue:   []float64{1, 2},
			yPred:   []float64{1},
			wantErr: errors.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := R2Score(tt.yTrue, tt.yPred)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("R2Score() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("R2Score() unexpected error = %v", err)
			}
			if math.Abs(got-tt.want) > 1e-10 {
				t.Errorf("R2Score() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExplainedVarianceScore(t *testing.T) {
	// scikit-learn explained_variance_score の例
	got, err := ExplainedVarianceScore([]float64{3, -0.5, 2, 7}, []float64{2.5, 0.0, 2, 8})
	if err != nil {
		t.Fatalf("ExplainedVarianceScore() unexpected error = %v", err)
	}
	if math.Abs(got-0.9571734475374732) > 1e-10 {
		t.Errorf("ExplainedVarianceScore() = %v, want 0.957...", got)
	}

	if _, err := ExplainedVarianceScore([]float64{1, 1}, []float64{0, 2}); !errors.Is(err, errors.ErrDegenerateInput) {
		t.Errorf("ExplainedVarianceScore() error = %v, want DegenerateInput", err)
	}
}

func TestSummarize(t *testing.T) {
	s, err := Summarize([]float64{1, 2, 3, 4}, []float64{1.5, 2.5, 2.5, 3.5})
	if err != nil {
		t.Fatalf("Summarize() unexpected error = %v", err)
	}
	if math.Abs(s.MSE-0.25) > 1e-10 || math.Abs(s.RMSE-0.5) > 1e-10 || math.Abs(s.MAE-0.5) > 1e-10 {
		t.Errorf("Summarize() = %+v", s)
	}
	if s.R2 == nil || math.Abs(*s.R2-0.8) > 1e-10 {
		t.Errorf("R2 = %v, want 0.8", s.R2)
	}

	// 定数の yTrue では R² を省略する
	s, err = Summarize([]float64{2, 2}, []float64{2, 2})
	if err != nil {
		t.Fatalf("Summarize() unexpected error = %v", err)
	}
	if s.R2 != nil {
		t.Errorf("R2 = %v, want nil", *s.R2)
	}
}

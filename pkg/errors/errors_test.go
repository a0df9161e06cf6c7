package errors

import (
	"fmt"
	"math"
	"strings"
	"testing"
	"time"
)

func TestNewInvalidInputError(t *testing.T) {
	err := NewInvalidInputError("Regression.Fit", "x and y must have the same length", 2, 1)

	want := "simplereg: Regression.Fit: invalid input: x and y must have the same length (len(x)=2, len(y)=1)"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	// スタックトレースの存在確認
	formatted := fmt.Sprintf("%+v", err)
	if !strings.Contains(formatted, "errors_test.go") {
		t.Error("Expected stack trace to contain test file name")
	}

	var invalid *InvalidInputError
	if !As(err, &invalid) {
		t.Fatal("Error should be castable to *InvalidInputError")
	}
	if invalid.LenX != 2 || invalid.LenY != 1 {
		t.Errorf("lengths = (%d, %d), want (2, 1)", invalid.LenX, invalid.LenY)
	}
}

func TestNewDegenerateInputError(t *testing.T) {
	err := NewDegenerateInputError("Regression.Fit", 3, 1)

	want := "simplereg: Regression.Fit: degenerate input: variance is zero (all 3 values equal 1)"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var degenerate *DegenerateInputError
	if !As(err, &degenerate) {
		t.Error("Error should be castable to *DegenerateInputError")
	}
}

func TestNewNotFittedError(t *testing.T) {
	err := NewNotFittedError("Regression", "Predict")

	want := "simplereg: Regression: this model is not fitted yet. Call Fit() before using Predict()"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var notFittedErr *NotFittedError
	if !As(err, &notFittedErr) {
		t.Error("Error should be castable to *NotFittedError")
	}
}

// 3種類のエラーは互いに区別できなければならない
func TestErrorKindsAreDistinguishable(t *testing.T) {
	errs := map[string]error{
		CodeInvalidInput:    NewInvalidInputError("op", "empty", 0, 0),
		CodeDegenerateInput: NewDegenerateInputError("op", 2, 5),
		CodeNotFitted:       NewNotFittedError("Regression", "Predict"),
	}
	sentinels := map[string]error{
		CodeInvalidInput:    ErrInvalidInput,
		CodeDegenerateInput: ErrDegenerateInput,
		CodeNotFitted:       ErrNotFitted,
	}

	for code, err := range errs {
		for sentinelCode, sentinel := range sentinels {
			got := Is(err, sentinel)
			want := code == sentinelCode
			if got != want {
				t.Errorf("Is(%s error, %s sentinel) = %v, want %v", code, sentinelCode, got, want)
			}
		}
		if got := Code(err); got != code {
			t.Errorf("Code() = %s, want %s", got, code)
		}
	}
}

func TestCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"unknown", New("boom"), CodeUnknown},
		{"wrapped not fitted", Wrap(NewNotFittedError("Regression", "Score"), "scoring"), CodeNotFitted},
		{"fmt wrapped invalid", fmt.Errorf("loading: %w", NewInvalidInputError("op", "empty", 0, 0)), CodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Code(tt.err); got != tt.want {
				t.Errorf("Code() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrapAndIs(t *testing.T) {
	baseErr := NewDegenerateInputError("Regression.Fit", 4, 2)

	wrapped := Wrap(baseErr, "in FitPredict")

	if !Is(wrapped, ErrDegenerateInput) {
		t.Error("Expected Is(wrapped, ErrDegenerateInput) to be true")
	}

	if !strings.Contains(wrapped.Error(), "in FitPredict") {
		t.Error("Expected wrapped error to contain wrapping message")
	}
}

func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrInvalidInput, "line %d: expected %d columns, got %d", 3, 2, 1)

	if !Is(wrapped, ErrInvalidInput) {
		t.Error("Expected Is(wrapped, ErrInvalidInput) to be true")
	}

	expectedMsg := "line 3: expected 2 columns, got 1"
	if !strings.Contains(wrapped.Error(), expectedMsg) {
		t.Errorf("Expected wrapped error to contain %q", expectedMsg)
	}
}

func TestStackTrace(t *testing.T) {
	if got := StackTrace(fmt.Errorf("plain")); got != "" {
		t.Errorf("StackTrace(plain) = %q, want empty", got)
	}
	if got := StackTrace(NewNotFittedError("Regression", "Predict")); got == "" {
		t.Error("Expected stack trace for error created with WithStack")
	}
}

func TestWarn(t *testing.T) {
	var got []error
	SetWarningHandler(func(w error) { got = append(got, w) })
	defer SetWarningHandler(nil)

	Warn(New("first"))

	// zerolog関数が設定されている場合はそちらが優先される
	var zerologGot []error
	SetZerologWarnFunc(func(w error) { zerologGot = append(zerologGot, w) })
	Warn(New("second"))
	SetZerologWarnFunc(nil)

	if len(got) != 1 || got[0].Error() != "first" {
		t.Errorf("handler received %v, want [first]", got)
	}
	if len(zerologGot) != 1 || zerologGot[0].Error() != "second" {
		t.Errorf("zerolog func received %v, want [second]", zerologGot)
	}
}

func TestWarn_HandlerMayReplaceHandler(t *testing.T) {
	var calls int
	SetWarningHandler(func(w error) {
		calls++
		// ハンドラ内から差し替えてもデッドロックしない
		SetWarningHandler(nil)
		SetZerologWarnFunc(nil)
	})
	defer SetWarningHandler(nil)

	done := make(chan struct{})
	go func() {
		defer close(done)
		Warn(New("first"))
		Warn(New("second"))
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Warn did not return while the handler replaced itself")
	}
	if calls != 1 {
		t.Errorf("handler called %d times, want 1", calls)
	}
}

func TestCheckFinite(t *testing.T) {
	if w := CheckFinite("fit", NamedValue{"slope", 1}, NamedValue{"intercept", -2}); w != nil {
		t.Fatalf("CheckFinite() = %v, want nil", w)
	}

	w := CheckFinite("fit", NamedValue{"slope", math.NaN()}, NamedValue{"intercept", math.Inf(1)})
	if w == nil {
		t.Fatal("CheckFinite() = nil, want warning")
	}
	if len(w.Names) != 2 || w.Names[0] != "slope" || w.Names[1] != "intercept" {
		t.Errorf("Names = %v", w.Names)
	}
	if !strings.Contains(w.Error(), "slope=NaN") || !strings.Contains(w.Error(), "intercept=+Inf") {
		t.Errorf("Error() = %q", w.Error())
	}
}

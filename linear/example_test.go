package linear_test

import (
	"fmt"

	"github.com/YuminosukeSato/simplereg/linear"
	"github.com/YuminosukeSato/simplereg/pkg/errors"
)

func ExampleRegression() {
	r := linear.NewRegression()
	if err := r.Fit([]float64{1, 2, 3}, []float64{2, 4, 6}); err != nil {
		panic(err)
	}

	pred, err := r.Predict([]float64{4})
	if err != nil {
		panic(err)
	}
	fmt.Println(r.Equation())
	fmt.Println(pred)
	// Output:
	// y = 2x + 0
	// [8]
}

func ExampleFitPredict() {
	pred, err := linear.FitPredict([]float64{1, 2, 3}, []float64{1, 2, 3}, []float64{10})
	if err != nil {
		panic(err)
	}
	fmt.Println(pred)
	// Output: [10]
}

func ExampleFitPredict_degenerate() {
	_, err := linear.FitPredict([]float64{1, 1, 1}, []float64{1, 2, 3}, []float64{10})
	fmt.Println(errors.Code(err))
	// Output: DEGENERATE_INPUT
}

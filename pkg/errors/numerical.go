package errors

import (
	"fmt"
	"math"
	"strings"

	"github.com/rs/zerolog"
)

// NumericalWarning is raised when a computation finished but produced NaN or
// Inf values. It is a warning, not an error: the result is still returned to
// the caller.
type NumericalWarning struct {
	Op     string
	Names  []string
	Values []float64
}

func (w *NumericalWarning) Error() string {
	parts := make([]string, len(w.Values))
	for i, v := range w.Values {
		parts[i] = fmt.Sprintf("%s=%g", w.Names[i], v)
	}
	return fmt.Sprintf("simplereg: %s produced non-finite values: %s", w.Op, strings.Join(parts, ", "))
}

// MarshalZerologObject adds the offending values to a zerolog event.
func (w *NumericalWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("operation", w.Op).
		Strs("names", w.Names).
		Floats64("values", w.Values).
		Str("type", "NumericalWarning")
}

// NamedValue pairs a label with the value it describes.
type NamedValue struct {
	Name  string
	Value float64
}

// CheckFinite returns a NumericalWarning listing every value that is NaN or
// Inf, or nil when all values are finite.
func CheckFinite(op string, values ...NamedValue) *NumericalWarning {
	var w *NumericalWarning
	for _, nv := range values {
		if math.IsNaN(nv.Value) || math.IsInf(nv.Value, 0) {
			if w == nil {
				w = &NumericalWarning{Op: op}
			}
			w.Names = append(w.Names, nv.Name)
			w.Values = append(w.Values, nv.Value)
		}
	}
	return w
}

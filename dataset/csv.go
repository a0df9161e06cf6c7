// Package dataset reads univariate samples from CSV input.
//
// Training files hold two columns, x and y. Prediction files hold x in the
// first column; other columns are ignored. Values must be finite numbers;
// NaN and Inf are rejected. A first row whose values are not finite numbers
// is treated as a header.
package dataset

import (
	"encoding/csv"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/YuminosukeSato/simplereg/pkg/errors"
	"github.com/YuminosukeSato/simplereg/pkg/log"
)

// Samples is a set of paired observations.
type Samples struct {
	X      []float64
	Y      []float64
	Header []string // nil when the input has no header row
}

// Len returns the number of observations.
func (s *Samples) Len() int {
	return len(s.X)
}

// LoadXY reads two-column CSV data. Rows must have at least two fields; extra
// fields are ignored. Empty input is an error.
func LoadXY(r io.Reader) (*Samples, error) {
	s := &Samples{}
	err := readRows(r, 2, func(line int, rec []string, header bool) error {
		if header {
			s.Header = append([]string(nil), rec...)
			return nil
		}
		x, err := parseField(rec[0], line, 1)
		if err != nil {
			return err
		}
		y, err := parseField(rec[1], line, 2)
		if err != nil {
			return err
		}
		s.X = append(s.X, x)
		s.Y = append(s.Y, y)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if s.Len() == 0 {
		return nil, errors.NewInvalidInputError("dataset.LoadXY", "no samples", 0, 0)
	}
	return s, nil
}

// LoadX reads the first column of CSV data. Empty input yields an empty slice.
func LoadX(r io.Reader) ([]float64, error) {
	x := []float64{}
	err := readRows(r, 1, func(line int, rec []string, header bool) error {
		if header {
			return nil
		}
		v, err := parseField(rec[0], line, 1)
		if err != nil {
			return err
		}
		x = append(x, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return x, nil
}

// LoadXYFile opens path and calls LoadXY. The path "-" reads stdin.
func LoadXYFile(path string) (*Samples, error) {
	var s *Samples
	err := withFile(path, func(r io.Reader) error {
		var err error
		s, err = LoadXY(r)
		return err
	})
	if err != nil {
		return nil, err
	}
	log.GetLogger().Debug("loaded training data",
		log.ComponentKey, "dataset",
		log.OperationKey, log.OperationLoad,
		log.SourceKey, path,
		log.SamplesKey, s.Len(),
	)
	return s, nil
}

// LoadXFile opens path and calls LoadX. The path "-" reads stdin.
func LoadXFile(path string) ([]float64, error) {
	var x []float64
	err := withFile(path, func(r io.Reader) error {
		var err error
		x, err = LoadX(r)
		return err
	})
	if err != nil {
		return nil, err
	}
	log.GetLogger().Debug("loaded prediction inputs",
		log.ComponentKey, "dataset",
		log.OperationKey, log.OperationLoad,
		log.SourceKey, path,
		log.SamplesKey, len(x),
	)
	return x, nil
}

func withFile(path string, fn func(io.Reader) error) error {
	if path == "-" {
		return fn(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()
	if err := fn(f); err != nil {
		return errors.Wrapf(err, "read %s", path)
	}
	return nil
}

// readRows calls fn for every record. The first record is reported as a
// header when none of its first minFields values parse as numbers.
func readRows(r io.Reader, minFields int, fn func(line int, rec []string, header bool) error) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	first := true
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(errors.ErrInvalidInput, err.Error())
		}
		line, _ := cr.FieldPos(0)
		if isBlank(rec) {
			continue
		}
		if len(rec) < minFields {
			return errors.Wrapf(errors.ErrInvalidInput, "line %d: expected at least %d fields, got %d", line, minFields, len(rec))
		}
		header := first && isHeader(rec[:minFields])
		first = false
		if err := fn(line, rec, header); err != nil {
			return err
		}
	}
}

func parseField(s string, line, col int) (float64, error) {
	v, ok := parseFinite(s)
	if !ok {
		return 0, errors.Wrapf(errors.ErrInvalidInput, "line %d column %d: %q is not a finite number", line, col, s)
	}
	return v, nil
}

// parseFinite parses s as a float64. NaN and ±Inf are not accepted.
func parseFinite(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func isHeader(fields []string) bool {
	for _, f := range fields {
		if _, ok := parseFinite(f); ok {
			return false
		}
	}
	return true
}

func isBlank(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

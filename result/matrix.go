// Package result holds the readout produced by running a program and writes
// it out.
package result

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Matrix is the readout of a run: one row per shot, one column per readout
// bit.
type Matrix [][]int

// FromRows copies rows into a matrix. All rows must have the same length.
func FromRows(rows [][]int) (Matrix, error) {
	m := make(Matrix, len(rows))

	for i, row := range rows {
		if len(row) != len(rows[0]) {
			return nil, errors.Errorf("row %d has %d columns, row 0 has %d",
				i, len(row), len(rows[0]))
		}

		m[i] = append([]int(nil), row...)
	}

	return m, nil
}

// Shape returns the number of rows and columns.
func (m Matrix) Shape() (rows, cols int) {
	if len(m) == 0 {
		return 0, 0
	}

	return len(m), len(m[0])
}

// Validate checks the shape and that every entry is a bit.
func (m Matrix) Validate(rows, cols int) error {
	if len(m) != rows {
		return errors.Errorf("expected %d shots, got %d", rows, len(m))
	}

	for i, row := range m {
		if len(row) != cols {
			return errors.Errorf("shot %d: expected %d bits, got %d", i, cols, len(row))
		}

		for j, v := range row {
			if v != 0 && v != 1 {
				return errors.Errorf("shot %d bit %d: %d is not a bit", i, j, v)
			}
		}
	}

	return nil
}

// SaveTxt writes one line per row with space-separated integers.
func (m Matrix) SaveTxt(w io.Writer) error {
	var sb strings.Builder

	for _, row := range m {
		sb.Reset()

		for j, v := range row {
			if j > 0 {
				sb.WriteByte(' ')
			}

			sb.WriteString(strconv.FormatFloat(float64(v), 'f', 0, 64))
		}

		sb.WriteByte('\n')

		if _, err := io.WriteString(w, sb.String()); err != nil {
			return errors.Wrap(err, "write row")
		}
	}

	return nil
}

// SaveTxtFile writes the matrix to a file, replacing any existing content.
func SaveTxtFile(path string, m Matrix) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create result file")
	}

	if err := m.SaveTxt(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "write %s", path)
	}

	return errors.Wrapf(f.Close(), "close %s", path)
}

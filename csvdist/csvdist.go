// Package csvdist - CSV parsing into distance grids.
package csvdist

import (
	"encoding/csv"
	"errors"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// ErrEmptyInput is returned when the source contains no data rows
// (a lone header row counts as empty).
var ErrEmptyInput = errors.New("csvdist: no data rows in input")

// Load reads a comma-separated distance table from r and returns the numeric
// grid: header row and label column removed, non-numeric cells and the
// diagonal mapped to +Inf.
//
// Ragged rows are rejected by the csv reader itself (csv.ErrFieldCount).
//
// Complexity: O(n²) for an n-node table.
func Load(r io.Reader) ([][]float64, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}
	// Drop the header row; require at least one data row after it.
	if len(records) < 2 {
		return nil, ErrEmptyInput
	}
	records = records[1:]

	grid := make([][]float64, len(records))

	var (
		i    int
		j    int
		rec  []string
		cell string
		v    float64
		perr error
	)
	for i, rec = range records {
		if len(rec) < 2 {
			// A record with only the label cell carries no distances.
			return nil, ErrEmptyInput
		}
		row := make([]float64, len(rec)-1)
		for j, cell = range rec[1:] { // rec[0] is the node label
			if i == j {
				row[j] = math.Inf(1)
				continue
			}
			v, perr = strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if perr != nil {
				// "-", empty, or any other placeholder: no direct edge.
				v = math.Inf(1)
			}
			row[j] = v
		}
		grid[i] = row
	}

	return grid, nil
}

// LoadFile opens path and delegates to Load.
func LoadFile(path string) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

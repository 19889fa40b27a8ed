package fcusum

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// Dataset is a named-column view of a loaded CSV file.
type Dataset struct {
	// Data matrix, one row per observation
	M *mat.Dense
	// Column names from the header row, in matrix column order
	Names []string
}

// LoadCSVDataset loads a CSV file with a header row into a Dataset.
// Every cell must parse as a float.
func LoadCSVDataset(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) == 0 {
		return nil, fmt.Errorf("empty header in %s", path)
	}
	k := len(header)

	var (
		data []float64
		row  int
	)

	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", row+2, err) // +2 for header + 1-based
		}

		// Skip completely empty lines
		if len(record) == 1 && record[0] == "" {
			continue
		}

		if len(record) != k {
			return nil, fmt.Errorf("row %d: expected %d columns, got %d", row+2, k, len(record))
		}

		for j, s := range record {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("parse float at row %d col %d (%q): %w", row+2, j+1, s, err)
			}
			data = append(data, v)
		}
		row++
	}

	if row == 0 {
		return nil, fmt.Errorf("no data rows in %s", path)
	}

	return &Dataset{
		M:     mat.NewDense(row, k, data),
		Names: header,
	}, nil
}

// Column returns a copy of the named column.
func (d *Dataset) Column(name string) ([]float64, error) {
	j, err := d.columnIndex(name)
	if err != nil {
		return nil, err
	}
	return mat.Col(nil, j, d.M), nil
}

// Columns returns a new matrix holding the named columns in order.
func (d *Dataset) Columns(names []string) (*mat.Dense, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("no column names given")
	}

	rows, _ := d.M.Dims()
	out := mat.NewDense(rows, len(names), nil)
	for i, name := range names {
		j, err := d.columnIndex(name)
		if err != nil {
			return nil, err
		}
		out.SetCol(i, mat.Col(nil, j, d.M))
	}
	return out, nil
}

func (d *Dataset) columnIndex(name string) (int, error) {
	for j, n := range d.Names {
		if n == name {
			return j, nil
		}
	}
	return 0, fmt.Errorf("no column named %q (have %v)", name, d.Names)
}

// WriteResultCSV writes a one-row CSV summary of the test result.
// Columns: Statistic, CV1, CV5, CV10, PAdj, KAdj, KStar, BestFrequency,
// Decision, Marker.
func WriteResultCSV(path string, r *TestResult) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{
		"Statistic", "CV1", "CV5", "CV10",
		"PAdj", "KAdj", "KStar", "BestFrequency",
		"Decision", "Marker",
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	record := []string{
		fmt.Sprintf("%f", r.Statistic),
		fmt.Sprintf("%f", r.CriticalValues.OnePct),
		fmt.Sprintf("%f", r.CriticalValues.FivePct),
		fmt.Sprintf("%f", r.CriticalValues.TenPct),
		fmt.Sprintf("%d", r.PAdj),
		fmt.Sprintf("%d", r.KAdj),
		fmt.Sprintf("%g", r.KStar),
		fmt.Sprintf("%f", r.BestFrequency),
		r.Decision,
		r.Marker,
	}
	return writer.Write(record)
}

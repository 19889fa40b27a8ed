package fcusum

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"testing"
)

func TestLoadCSVDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "series.csv")
	content := "y,x1,x2\n1.5,2.0,3.0\n2.5,4.0,6.0\n3.5,6.0,9.0\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	ds, err := LoadCSVDataset(path)
	if err != nil {
		t.Fatalf("LoadCSVDataset: %v", err)
	}

	rows, cols := ds.M.Dims()
	if rows != 3 || cols != 3 {
		t.Fatalf("dims = %dx%d; want 3x3", rows, cols)
	}
	if ds.Names[0] != "y" || ds.Names[1] != "x1" || ds.Names[2] != "x2" {
		t.Errorf("names = %v", ds.Names)
	}

	y, err := ds.Column("y")
	if err != nil {
		t.Fatalf("Column: %v", err)
	}
	if len(y) != 3 || y[0] != 1.5 || y[2] != 3.5 {
		t.Errorf("column y = %v", y)
	}

	xs, err := ds.Columns([]string{"x2", "x1"})
	if err != nil {
		t.Fatalf("Columns: %v", err)
	}
	if xs.At(1, 0) != 6.0 || xs.At(1, 1) != 4.0 {
		t.Errorf("reordered columns wrong: %v, %v", xs.At(1, 0), xs.At(1, 1))
	}

	if _, err := ds.Column("missing"); err == nil {
		t.Error("expected an error for a missing column")
	}
}

func TestLoadCSVDatasetRejectsBadInput(t *testing.T) {
	dir := t.TempDir()

	cases := map[string]string{
		"non-numeric cell": "y,x\n1.0,abc\n",
		"ragged row":       "y,x\n1.0,2.0\n3.0\n",
		"no data rows":     "y,x\n",
	}
	for name, content := range cases {
		path := filepath.Join(dir, name+".csv")
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadCSVDataset(path); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}
}

func TestWriteResultCSV(t *testing.T) {
	result := &TestResult{
		Statistic:      1.234567,
		CriticalValues: CriticalValues{OnePct: 1.648, FivePct: 1.431, TenPct: 1.326},
		PAdj:           1,
		KAdj:           3,
		KStar:          3,
		BestFrequency:  0.42,
		Decision:       DecisionFailToReject,
		Marker:         "",
	}

	path := filepath.Join(t.TempDir(), "result.csv")
	if err := WriteResultCSV(path, result); err != nil {
		t.Fatalf("WriteResultCSV: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records; want header + one row", len(records))
	}

	stat, err := strconv.ParseFloat(records[1][0], 64)
	if err != nil {
		t.Fatalf("parse statistic: %v", err)
	}
	if !almostEqual(stat, result.Statistic, 1e-6) {
		t.Errorf("round-tripped statistic %v; want %v", stat, result.Statistic)
	}
	if records[1][8] != DecisionFailToReject {
		t.Errorf("decision column = %q", records[1][8])
	}
}

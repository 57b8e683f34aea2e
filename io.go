package cst

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ReadPoints reads an ordered coordinate sequence from a CSV file with
// columns x and y (extra columns are ignored). Row order defines the point
// sequence. A missing column, a non-numeric field, or fewer than three data
// rows is reported as ErrInvalidPointFile.
func ReadPoints(path string) ([]Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPointFile, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: empty file", ErrInvalidPointFile)
	}

	xCol, yCol := -1, -1
	for i, name := range records[0] {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "x":
			xCol = i
		case "y":
			yCol = i
		}
	}
	if xCol < 0 || yCol < 0 {
		return nil, fmt.Errorf("%w: missing x or y column", ErrInvalidPointFile)
	}

	rows := records[1:]
	if len(rows) < 3 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPointFile, ErrTooFewPoints)
	}
	pts := make([]Point, 0, len(rows))
	for i, row := range rows {
		if len(row) <= xCol || len(row) <= yCol {
			return nil, fmt.Errorf("%w: row %d has too few fields", ErrInvalidPointFile, i+2)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(row[xCol]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrInvalidPointFile, i+2, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(row[yCol]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrInvalidPointFile, i+2, err)
		}
		pt := Pt(x, y)
		if pt.IsNaN() {
			return nil, fmt.Errorf("%w: row %d: NaN coordinate", ErrInvalidPointFile, i+2)
		}
		pts = append(pts, pt)
	}
	return pts, nil
}

// WritePoints writes an ordered coordinate sequence as a CSV file with
// columns x, y, z. The profile is flat, so z is always zero.
func WritePoints(pts []Point, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	records := make([][]string, 0, len(pts)+1)
	records = append(records, []string{"x", "y", "z"})
	for _, pt := range pts {
		records = append(records, []string{
			strconv.FormatFloat(pt.X, 'g', -1, 64),
			strconv.FormatFloat(pt.Y, 'g', -1, 64),
			"0",
		})
	}
	if err := w.WriteAll(records); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// OutputPath derives the conventional output filename for a fitted profile:
// the input's base name with a _CST suffix and a .csv extension, in the same
// directory.
func OutputPath(input string) string {
	dir := filepath.Dir(input)
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(dir, base+"_CST.csv")
}

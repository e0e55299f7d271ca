package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// LoadError is a fatal dataset load failure: missing or unreadable source,
// missing required column, or an unparseable cell. The dashboard never
// starts with partial data, so callers treat any LoadError as terminal.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load dataset %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// LoadCSV reads records from a CSV file with exactly the raw schema columns
// in the header. Row order is preserved; derived columns are computed per
// row. Any failure returns a *LoadError and no records.
func LoadCSV(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	defer func() { _ = f.Close() }()

	records, err := parseCSV(f)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	return records, nil
}

func parseCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty file")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var records []Record
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		rec, err := parseRow(row, idx)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// columnIndex maps each required column name to its position in the header.
// Header names must match exactly; no variations are tolerated.
func columnIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[name] = i
	}
	for _, col := range Columns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("missing required column %q", col)
		}
	}
	return idx, nil
}

func parseRow(row []string, idx map[string]int) (Record, error) {
	get := func(col string) (string, error) {
		i := idx[col]
		if i >= len(row) {
			return "", fmt.Errorf("missing value for column %q", col)
		}
		return row[i], nil
	}
	getFloat := func(col string) (float64, error) {
		s, err := get(col)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("column %q: %w", col, err)
		}
		return v, nil
	}

	var rec Record
	var err error
	if rec.City, err = get("City"); err != nil {
		return rec, err
	}
	if rec.State, err = get("State"); err != nil {
		return rec, err
	}
	if rec.Lat, err = getFloat("Lat"); err != nil {
		return rec, err
	}
	if rec.Lon, err = getFloat("Lon"); err != nil {
		return rec, err
	}
	if rec.CostOfLivingIndex, err = getFloat("Cost_of_Living_Index"); err != nil {
		return rec, err
	}
	if rec.RentCityCenter, err = getFloat("Rent_1BR_City_Center"); err != nil {
		return rec, err
	}
	if rec.RentOutsideCenter, err = getFloat("Rent_1BR_Outside_Center"); err != nil {
		return rec, err
	}
	if rec.NetSalary, err = getFloat("Avg_Monthly_Net_Salary"); err != nil {
		return rec, err
	}
	if rec.Groceries, err = getFloat("Groceries_Monthly_Est"); err != nil {
		return rec, err
	}
	if rec.Dining, err = getFloat("Dining_Monthly_Est"); err != nil {
		return rec, err
	}

	rec.derive()
	return rec, nil
}

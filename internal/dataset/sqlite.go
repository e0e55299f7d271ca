package dataset

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "modernc.org/sqlite" // sqlite driver
)

// cityTable is the table a SQLite source must contain. Its columns are the
// raw schema columns from Columns.
const cityTable = "cities"

// LoadSQLite reads records from the cities table of a SQLite database.
// Rows come back in insertion (rowid) order so a database produced by
// ImportCSV round-trips with the same ordering as its source CSV.
func LoadSQLite(path string) ([]Record, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	defer func() { _ = db.Close() }()

	records, err := querySQLite(db)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	return records, nil
}

func querySQLite(db *sql.DB) ([]Record, error) {
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY rowid",
		strings.Join(quoteAll(Columns), ", "), cityTable)

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("query %s table: %w", cityTable, err)
	}
	defer func() { _ = rows.Close() }()

	var records []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(
			&rec.City,
			&rec.State,
			&rec.Lat,
			&rec.Lon,
			&rec.CostOfLivingIndex,
			&rec.RentCityCenter,
			&rec.RentOutsideCenter,
			&rec.NetSalary,
			&rec.Groceries,
			&rec.Dining,
		); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		rec.derive()
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// ImportCSV copies a CSV dataset into a SQLite database, replacing any
// existing cities table. The resulting file is a valid source for
// LoadSQLite. Returns the number of rows written.
func ImportCSV(csvPath, dbPath string) (int, error) {
	records, err := LoadCSV(csvPath)
	if err != nil {
		return 0, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", dbPath, err)
	}
	defer func() { _ = db.Close() }()

	tx, err := db.Begin()
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s", cityTable)); err != nil {
		return 0, err
	}

	cols := make([]string, len(Columns))
	for i, c := range Columns {
		typ := "REAL"
		if c == "City" || c == "State" {
			typ = "TEXT"
		}
		cols[i] = fmt.Sprintf("%q %s NOT NULL", c, typ)
	}
	create := fmt.Sprintf("CREATE TABLE %s (%s)", cityTable, strings.Join(cols, ", "))
	if _, err := tx.Exec(create); err != nil {
		return 0, fmt.Errorf("create %s table: %w", cityTable, err)
	}

	insert := fmt.Sprintf("INSERT INTO %s (%s) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		cityTable, strings.Join(quoteAll(Columns), ", "))
	stmt, err := tx.Prepare(insert)
	if err != nil {
		return 0, err
	}
	defer func() { _ = stmt.Close() }()

	for _, r := range records {
		if _, err := stmt.Exec(
			r.City, r.State, r.Lat, r.Lon,
			r.CostOfLivingIndex, r.RentCityCenter, r.RentOutsideCenter,
			r.NetSalary, r.Groceries, r.Dining,
		); err != nil {
			return 0, fmt.Errorf("insert %s: %w", r.CityState, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return len(records), nil
}

func quoteAll(names []string) []string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = fmt.Sprintf("%q", n)
	}
	return quoted
}

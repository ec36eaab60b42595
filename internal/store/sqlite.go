package store

import (
	"database/sql"
	"fmt"

	"github.com/theirongolddev/ecotrack/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS entries (
    id             INTEGER PRIMARY KEY AUTOINCREMENT,
    date           TEXT NOT NULL,
    car_miles      REAL NOT NULL,
    transit_miles  REAL NOT NULL,
    elec_kwh       REAL NOT NULL,
    diet           TEXT NOT NULL,
    em_car         REAL NOT NULL,
    em_transit     REAL NOT NULL,
    em_elec        REAL NOT NULL,
    em_diet        REAL NOT NULL,
    em_total       REAL NOT NULL
);
`

// SQLiteStore persists entries in a SQLite database. It keeps the same
// contract as the JSON store: Load returns everything in insertion order
// and Save rewrites the full set, inside one transaction.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens or creates the entry database at the given path.
func OpenSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening entry db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Load reads all entries in insertion order.
func (s *SQLiteStore) Load() ([]model.Entry, error) {
	rows, err := s.db.Query(`SELECT
		date, car_miles, transit_miles, elec_kwh, diet,
		em_car, em_transit, em_elec, em_diet, em_total
		FROM entries ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var entries []model.Entry
	for rows.Next() {
		var e model.Entry
		var diet string
		err := rows.Scan(
			&e.Date, &e.CarMiles, &e.TransitMiles, &e.ElecKWh, &diet,
			&e.Emissions.Car, &e.Emissions.Transit, &e.Emissions.Elec,
			&e.Emissions.Diet, &e.Emissions.Total,
		)
		if err != nil {
			return nil, err
		}
		e.Diet = model.Diet(diet)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Save rewrites the full entry set in one transaction.
func (s *SQLiteStore) Save(entries []model.Entry) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM entries"); err != nil {
		return err
	}

	for _, e := range entries {
		_, err := tx.Exec(`INSERT INTO entries
			(date, car_miles, transit_miles, elec_kwh, diet,
			 em_car, em_transit, em_elec, em_diet, em_total)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			e.Date, e.CarMiles, e.TransitMiles, e.ElecKWh, string(e.Diet),
			e.Emissions.Car, e.Emissions.Transit, e.Emissions.Elec,
			e.Emissions.Diet, e.Emissions.Total,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

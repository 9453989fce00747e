package dataset

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/deppfellow/titanic-api/internal/config"
)

// passengersTable is the table the embedded store exposes records from.
const passengersTable = "passengers"

// SQLiteSource serves passenger records from an embedded SQLite store.
//
// Rows are loaded through the driver at open time in primary-key order,
// which keeps reads identical to the CSV backend and avoids any
// concurrency concerns on the handle. The handle itself stays open for
// the life of the process so health checks can ping the store.
type SQLiteSource struct {
	table
	db *sql.DB
}

// OpenSQLite opens the database file at path and loads the passengers
// table into memory.
func OpenSQLite(path string, logger zerolog.Logger) (*SQLiteSource, error) {
	// sql.Open does not touch the file, so a missing database would
	// otherwise be created empty and fail later with a confusing
	// "no such table" error.
	if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrapf(err, "dataset: sqlite file %s", path)
	}

	db, err := sql.Open("sqlite", path+"?_busy_timeout=5000")
	if err != nil {
		return nil, errors.Wrapf(err, "dataset: open sqlite %s", path)
	}
	// The dataset is read-only; one connection is all the loader and
	// health pings ever need.
	db.SetMaxOpenConns(1)

	columns, records, err := loadPassengers(db, logger)
	if err != nil {
		db.Close()
		return nil, err
	}

	if len(records) == 0 {
		db.Close()
		return nil, errors.Errorf("dataset: sqlite store %s contains no records", path)
	}

	logger.Info().
		Str("source", config.SourceSQLite).
		Str("path", path).
		Int("records", len(records)).
		Msg("loaded passenger dataset")

	return &SQLiteSource{
		table: newTable(config.SourceSQLite, columns, records),
		db:    db,
	}, nil
}

func loadPassengers(db *sql.DB, logger zerolog.Logger) ([]string, []Record, error) {
	query := fmt.Sprintf("SELECT * FROM %s ORDER BY %q", passengersTable, IDColumn)

	rows, err := db.Query(query)
	if err != nil {
		return nil, nil, errors.Wrap(err, "dataset: query passengers")
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, nil, errors.Wrap(err, "dataset: read passenger columns")
	}

	var records []Record
	for rows.Next() {
		raw := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range raw {
			ptrs[i] = &raw[i]
		}

		if err := rows.Scan(ptrs...); err != nil {
			return nil, nil, errors.Wrap(err, "dataset: scan passenger row")
		}

		values := make(map[string]any, len(columns))
		for i, column := range columns {
			values[column] = normalizeDriverValue(column, raw[i], logger)
		}
		records = append(records, NewRecord(columns, values))
	}
	if err := rows.Err(); err != nil {
		return nil, nil, errors.Wrap(err, "dataset: iterate passenger rows")
	}

	return columns, records, nil
}

// Ping verifies the store handle is still usable. Used by the health
// endpoint.
func (s *SQLiteSource) Ping() error {
	return s.db.Ping()
}

// Close releases the store handle.
func (s *SQLiteSource) Close() error {
	return s.db.Close()
}

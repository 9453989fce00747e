// Package dataset contains the data-access layer for passenger records.
//
// It defines the Source contract that both storage backends satisfy
// (delimited-text file and embedded SQLite store), the ordered Record
// type they return, and the type coercion rules that keep the two
// backends field-for-field identical for the same underlying dataset.
//
// The backend is selected once at startup from config; after Open
// returns, the dataset is immutable for the life of the process and all
// reads are lock-free.
package dataset

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/deppfellow/titanic-api/internal/config"
)

// Source is the common contract both storage backends satisfy.
//
// Both implementations must agree field-for-field on every record they
// expose for a given id; that compatibility is what justifies having two
// backends at all.
type Source interface {
	// Kind reports which backend serves the data ("csv" or "sqlite").
	Kind() string

	// Columns returns the dataset's field names in schema order. The
	// slice is fixed at open time and must not be mutated by callers.
	Columns() []string

	// ListAll returns every record in a stable, deterministic order:
	// source order for the file backend, primary-key order for the
	// store backend. Returned records are copies; callers may mutate
	// them freely.
	ListAll() ([]Record, error)

	// GetByID performs an exact-match lookup on the identifier field.
	// A missing id is reported via the bool, not an error.
	GetByID(id int) (Record, bool, error)

	// Close releases any backend handle. Called once at process teardown.
	Close() error
}

// Open resolves the configured backend kind and opens it.
//
// The concrete implementation is selected here, once, rather than at
// each call site. Any failure to open or read the backend is a startup
// error; there is no per-request retry because every underlying
// operation is a deterministic local read.
func Open(cfg *config.Config, logger zerolog.Logger) (Source, error) {
	switch cfg.Data.Source {
	case config.SourceCSV:
		return OpenCSV(cfg.Data.CSVPath, logger)
	case config.SourceSQLite:
		return OpenSQLite(cfg.Data.SQLitePath, logger)
	default:
		// Config validation rejects unknown kinds before this point.
		return nil, fmt.Errorf("dataset: unsupported data source %q", cfg.Data.Source)
	}
}

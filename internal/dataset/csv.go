package dataset

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/deppfellow/titanic-api/internal/config"
)

// CSVSource serves passenger records from a delimited-text file.
//
// The whole file is parsed into memory at open time; record order is
// file order.
type CSVSource struct {
	table
}

// OpenCSV reads and parses the dataset at path.
//
// The first row is the header and defines the schema's field names and
// order. Rows with a wrong field count are rejected by encoding/csv and
// fail the open: a truncated or corrupt file should surface at startup,
// not as silently missing records.
func OpenCSV(path string, logger zerolog.Logger) (*CSVSource, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "dataset: open csv file %s", path)
	}
	defer file.Close()

	reader := csv.NewReader(file)

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrapf(err, "dataset: read csv header %s", path)
	}

	var records []Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "dataset: read csv row %s", path)
		}

		values := make(map[string]any, len(header))
		for i, column := range header {
			values[column] = coerceString(column, row[i], logger)
		}
		records = append(records, NewRecord(header, values))
	}

	if len(records) == 0 {
		return nil, errors.Errorf("dataset: csv file %s contains no records", path)
	}

	logger.Info().
		Str("source", config.SourceCSV).
		Str("path", path).
		Int("records", len(records)).
		Msg("loaded passenger dataset")

	return &CSVSource{table: newTable(config.SourceCSV, header, records)}, nil
}

// Close is a no-op: the file handle is released as soon as the dataset
// is loaded.
func (s *CSVSource) Close() error {
	return nil
}

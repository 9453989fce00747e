package service_test

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/deppfellow/titanic-api/internal/config"
	"github.com/deppfellow/titanic-api/internal/dataset"
	"github.com/deppfellow/titanic-api/internal/server"
)

// stubSource is an in-memory dataset.Source for service tests.
type stubSource struct {
	columns []string
	records []dataset.Record
}

func (s *stubSource) Kind() string      { return "stub" }
func (s *stubSource) Columns() []string { return s.columns }
func (s *stubSource) Close() error      { return nil }

func (s *stubSource) ListAll() ([]dataset.Record, error) {
	out := make([]dataset.Record, len(s.records))
	for i, rec := range s.records {
		out[i] = rec.Clone()
	}
	return out, nil
}

func (s *stubSource) GetByID(id int) (dataset.Record, bool, error) {
	for _, rec := range s.records {
		if rec.ID() == id {
			return rec.Clone(), true, nil
		}
	}
	return dataset.Record{}, false, nil
}

// failingSource simulates a backend that cannot be read.
type failingSource struct {
	stubSource
}

func (s *failingSource) ListAll() ([]dataset.Record, error) {
	return nil, errors.New("backend gone")
}

func (s *failingSource) GetByID(id int) (dataset.Record, bool, error) {
	return dataset.Record{}, false, errors.New("backend gone")
}

func newTestServer(src dataset.Source) *server.Server {
	log := zerolog.Nop()
	return &server.Server{
		Config: &config.Config{
			Primary: config.Primary{Env: "test"},
			Analytics: config.AnalyticsConfig{
				HistogramBuckets: config.DefaultHistogramBuckets,
			},
		},
		Logger: &log,
		Source: src,
	}
}

func passengerRecord(id int64, name string, fare any) dataset.Record {
	columns := []string{"PassengerId", "Name", "Age", "Fare"}
	return dataset.NewRecord(columns, map[string]any{
		"PassengerId": id,
		"Name":        name,
		"Age":         float64(30),
		"Fare":        fare,
	})
}

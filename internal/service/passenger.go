package service

import (
	"fmt"
	"strings"

	"github.com/deppfellow/titanic-api/internal/dataset"
	"github.com/deppfellow/titanic-api/internal/errs"
	"github.com/deppfellow/titanic-api/internal/server"
)

// invalidAttributesCode is the machine code clients get when a
// projection names fields the dataset does not have.
var invalidAttributesCode = "INVALID_ATTRIBUTES"

// PassengerService answers record retrieval and projection requests
// against the configured data source.
type PassengerService struct {
	server *server.Server
}

// NewPassengerService constructs a PassengerService.
func NewPassengerService(s *server.Server) *PassengerService {
	return &PassengerService{server: s}
}

// List returns every passenger record in the backend's stable order.
func (p *PassengerService) List() ([]dataset.Record, error) {
	records, err := p.server.Source.ListAll()
	if err != nil {
		p.server.Logger.Error().Err(err).Msg("failed to list passengers")
		return nil, errs.NewSourceUnavailableError()
	}
	return records, nil
}

// Get returns the passenger with the given id, or a 404 error when no
// record matches. The id has already been validated as a positive
// integer by the handler layer.
func (p *PassengerService) Get(id int) (dataset.Record, error) {
	record, found, err := p.server.Source.GetByID(id)
	if err != nil {
		p.server.Logger.Error().Err(err).Int("passenger_id", id).Msg("failed to get passenger")
		return dataset.Record{}, errs.NewSourceUnavailableError()
	}
	if !found {
		return dataset.Record{}, errs.NewNotFoundError(fmt.Sprintf("Passenger %d not found", id), nil)
	}
	return record, nil
}

// GetProjected returns the passenger with the given id projected onto
// the requested attributes, in request order.
//
// Attribute names are matched case-sensitively against the record's
// field set. Any unknown name fails the whole request with a 400 naming
// every offending attribute; there is no partial response.
func (p *PassengerService) GetProjected(id int, attributes []string) (dataset.Record, error) {
	record, err := p.Get(id)
	if err != nil {
		return dataset.Record{}, err
	}

	projected, unknown := record.Project(attributes)
	if len(unknown) > 0 {
		fieldErrors := make([]errs.FieldError, 0, len(unknown))
		for _, name := range unknown {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: "attributes",
				Error: "unknown attribute: " + name,
			})
		}

		return dataset.Record{}, errs.NewBadRequestError(
			"Invalid attributes requested: "+strings.Join(unknown, ", "),
			&invalidAttributesCode,
			fieldErrors,
		)
	}

	return projected, nil
}

// Columns returns the dataset's field names in schema order.
func (p *PassengerService) Columns() []string {
	return p.server.Source.Columns()
}

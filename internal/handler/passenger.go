package handler

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/titanic-api/internal/dataset"
	"github.com/deppfellow/titanic-api/internal/server"
	"github.com/deppfellow/titanic-api/internal/service"
	"github.com/deppfellow/titanic-api/internal/validation"
)

// PassengerHandler serves the passenger record endpoints.
type PassengerHandler struct {
	Handler
	passengers *service.PassengerService
}

// NewPassengerHandler constructs a PassengerHandler.
func NewPassengerHandler(s *server.Server, passengers *service.PassengerService) *PassengerHandler {
	return &PassengerHandler{
		Handler:    NewHandler(s),
		passengers: passengers,
	}
}

// ListPassengersRequest is the (empty) payload for the list endpoint.
type ListPassengersRequest struct{}

// Validate implements validation.Validatable.
func (r *ListPassengersRequest) Validate() error {
	return nil
}

// GetPassengerRequest is the payload for the get-by-id endpoint.
//
// ID stays a string through binding so a malformed value produces our
// 400 shape instead of Echo's bind error; Validate parses it.
type GetPassengerRequest struct {
	ID         string `param:"id"`
	Attributes string `query:"attributes"`

	id int
}

// Validate implements validation.Validatable. The identifier must be a
// positive integer; anything else is rejected here, before the data
// layer is consulted.
func (r *GetPassengerRequest) Validate() error {
	id, err := strconv.Atoi(r.ID)
	if err != nil || id <= 0 {
		return validation.CustomValidationErrors{{
			Field:   "id",
			Message: "must be a positive integer",
		}}
	}

	r.id = id
	return nil
}

// AttributeList returns the requested attribute names in request order.
// Surrounding whitespace is trimmed and empty segments are dropped, so
// `?attributes=` behaves like no projection at all.
func (r *GetPassengerRequest) AttributeList() []string {
	if r.Attributes == "" {
		return nil
	}

	var names []string
	for _, name := range strings.Split(r.Attributes, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// List returns all passenger records as a JSON array, in the backend's
// stable order.
func (h *PassengerHandler) List(c echo.Context, req *ListPassengersRequest) ([]dataset.Record, error) {
	return h.passengers.List()
}

// Get returns a single passenger record by id.
//
// With an `attributes` query parameter it returns only the requested
// fields, in request order; unknown names fail the whole request.
func (h *PassengerHandler) Get(c echo.Context, req *GetPassengerRequest) (dataset.Record, error) {
	if attributes := req.AttributeList(); len(attributes) > 0 {
		return h.passengers.GetProjected(req.id, attributes)
	}
	return h.passengers.Get(req.id)
}

// Package service contains the business logic.
//
// It sits between the handler and dataset layers. It receives validated
// data from the handler, performs record retrieval, projection, and
// aggregation, and maps outcomes onto the errs taxonomy.
package service

import (
	"github.com/deppfellow/titanic-api/internal/server"
)

// Services is a container that groups all service instances so router
// and handler setup pass one object around instead of many.
type Services struct {
	Passenger *PassengerService
	Analytics *AnalyticsService
}

// NewServices constructs the service container.
func NewServices(s *server.Server) *Services {
	return &Services{
		Passenger: NewPassengerService(s),
		Analytics: NewAnalyticsService(s),
	}
}

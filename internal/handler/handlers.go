package handler

import (
	"github.com/deppfellow/titanic-api/internal/server"
	"github.com/deppfellow/titanic-api/internal/service"
)

// Handlers is a container that groups all HTTP handlers, keeping router
// setup clean: one object gets passed around instead of many.
type Handlers struct {
	Passenger *PassengerHandler // Passenger serves record listing, lookup, and projection.
	Analytics *AnalyticsHandler // Analytics serves derived views (fare histogram).
	Health    *HealthHandler    // Health serves service health endpoints.
	Meta      *MetaHandler      // Meta serves static API metadata at the root.
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Passenger: NewPassengerHandler(s, services.Passenger),
		Analytics: NewAnalyticsHandler(s, services.Analytics),
		Health:    NewHealthHandler(s),
		Meta:      NewMetaHandler(s),
	}
}

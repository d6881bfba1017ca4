package http

import (
	"github.com/MKhiriev/fieldsync/internal/logger"
	"github.com/MKhiriev/fieldsync/internal/service"
)

// Handler serves the sync API. Requests log through the scoped logger the
// middleware attaches; logger is for everything outside a request.
type Handler struct {
	services *service.Services

	logger *logger.Logger
}

// NewHandler creates the API handler. Init builds its router.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Str("func", "NewHandler").Msg("sync API handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

package http

import (
	"net/http"

	"github.com/MKhiriev/fieldsync/internal/app"
	"github.com/MKhiriev/fieldsync/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/sync/updates", h.getUpdates)
		r.Get("/api/sync/readings", h.streamReadings)

		r.Post("/api/patients", h.createPatient)
		r.Get("/api/patients/{id}", h.getPatient)
		r.Get("/api/patients/{id}/info", h.getPatientInfo)
		r.Put("/api/patients/{id}/info", h.updatePatientInfo)

		r.Post("/api/readings", h.createReading)
		r.Get("/api/readings/{id}", h.getReading)
		r.Get("/api/readings/{id}/assessments", h.getAssessments)
		r.Post("/api/readings/{id}/assessments", h.createAssessment)
	})

	router.NotFound(routeNotFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func routeNotFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteError(w, app.MsgRouteNotFound, http.StatusNotFound)
}

package http

import (
	"net/http"

	"github.com/MKhiriev/fieldsync/internal/utils"
	"github.com/MKhiriev/fieldsync/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createReading(w http.ResponseWriter, r *http.Request) {
	var reading models.Reading
	if !decodeBody(w, r, &reading, "*Handler.createReading") {
		return
	}

	created, err := h.services.RecordService.CreateReading(r.Context(), reading)
	if err != nil {
		writeServiceError(w, r, err, "*Handler.createReading", "error creating reading")
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getReading(w http.ResponseWriter, r *http.Request) {
	reading, err := h.services.RecordService.GetReading(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err, "*Handler.getReading", "error getting reading")
		return
	}

	utils.WriteJSON(w, reading, http.StatusOK)
}

func (h *Handler) getAssessments(w http.ResponseWriter, r *http.Request) {
	assessments, err := h.services.RecordService.GetAssessments(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err, "*Handler.getAssessments", "error getting assessments")
		return
	}

	utils.WriteJSON(w, assessments, http.StatusOK)
}

// createAssessment records a follow-up for the reading in the path.
func (h *Handler) createAssessment(w http.ResponseWriter, r *http.Request) {
	var assessment models.Assessment
	if !decodeBody(w, r, &assessment, "*Handler.createAssessment") {
		return
	}

	id := chi.URLParam(r, "id")
	if assessment.ReadingID != "" && assessment.ReadingID != id {
		utils.WriteError(w, ErrIDMismatch.Error(), http.StatusBadRequest)
		return
	}
	assessment.ReadingID = id

	created, err := h.services.RecordService.CreateAssessment(r.Context(), assessment)
	if err != nil {
		writeServiceError(w, r, err, "*Handler.createAssessment", "error creating assessment")
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

package http

import (
	"net/http"

	"github.com/MKhiriev/fieldsync/internal/utils"
	"github.com/MKhiriev/fieldsync/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createPatient(w http.ResponseWriter, r *http.Request) {
	var patient models.PatientAndReadings
	if !decodeBody(w, r, &patient, "*Handler.createPatient") {
		return
	}

	created, err := h.services.RecordService.CreatePatient(r.Context(), patient)
	if err != nil {
		writeServiceError(w, r, err, "*Handler.createPatient", "error creating patient")
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getPatient(w http.ResponseWriter, r *http.Request) {
	patient, err := h.services.RecordService.GetPatient(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err, "*Handler.getPatient", "error getting patient")
		return
	}

	utils.WriteJSON(w, patient, http.StatusOK)
}

func (h *Handler) getPatientInfo(w http.ResponseWriter, r *http.Request) {
	patient, err := h.services.RecordService.GetPatientInfo(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err, "*Handler.getPatientInfo", "error getting patient info")
		return
	}

	utils.WriteJSON(w, patient, http.StatusOK)
}

// updatePatientInfo takes the patient id from the path. A body carrying a
// different id is rejected.
func (h *Handler) updatePatientInfo(w http.ResponseWriter, r *http.Request) {
	var patient models.Patient
	if !decodeBody(w, r, &patient, "*Handler.updatePatientInfo") {
		return
	}

	id := chi.URLParam(r, "id")
	if patient.ID != "" && patient.ID != id {
		utils.WriteError(w, ErrIDMismatch.Error(), http.StatusBadRequest)
		return
	}
	patient.ID = id

	updated, err := h.services.RecordService.UpdatePatientInfo(r.Context(), patient)
	if err != nil {
		writeServiceError(w, r, err, "*Handler.updatePatientInfo", "error updating patient")
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

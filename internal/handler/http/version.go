package http

import (
	"net/http"

	"github.com/MKhiriev/fieldsync/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.AppInfoService.GetVersionInfo(r.Context()), http.StatusOK)
}

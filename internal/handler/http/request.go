package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/fieldsync/internal/logger"
	"github.com/MKhiriev/fieldsync/internal/utils"
	"github.com/goccy/go-json"
)

// decodeBody decodes the JSON request body into dst. On failure it writes a
// 400 response and returns false.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any, fn string) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.FromRequest(r).Err(err).Str("func", fn).Msg(ErrInvalidJSON.Error())
		utils.WriteError(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

// sinceParam reads the since query parameter. A missing parameter means 0.
func sinceParam(r *http.Request) (int64, error) {
	raw := r.URL.Query().Get("since")
	if raw == "" {
		return 0, nil
	}

	since, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, ErrInvalidSinceParam
	}
	return since, nil
}

// writeServiceError logs err and answers with the status it maps to.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fn, msg string) {
	status := statusFromError(err)

	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Str("func", fn).Int("status", status).Msg(msg)

	utils.WriteError(w, err.Error(), status)
}

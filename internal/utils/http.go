package utils

import (
	"fmt"
	"net/http"

	"github.com/goccy/go-json"
)

// WriteJSON serializes data with go-json and writes it with statusCode and
// a JSON content type. If marshaling fails the client gets 500 and the
// error is returned.
//
//	utils.WriteJSON(w, patient, http.StatusCreated)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// errorBody is the JSON shape of every API error.
type errorBody struct {
	Error string `json:"error"`
}

// WriteError writes {"error": message} with statusCode.
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	_, _ = WriteJSON(w, errorBody{Error: message}, statusCode)
}

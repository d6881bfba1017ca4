// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the sync
// client and the reference server.
//
// Msg* constants are human-readable strings written into HTTP response
// bodies, log entries and the sync error report. Code* constants are the
// non-HTTP keys of the sync error report.
package app

import (
	"fmt"
	"net/http"
)

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpired is returned when a JWT bearer token is syntactically
	// valid but its expiry time has passed.
	MsgTokenIsExpired = "token is expired"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgPatientNotFound is returned when the requested patient does not exist.
	MsgPatientNotFound = "patient not found"

	// MsgReadingNotFound is returned when the requested reading does not exist.
	MsgReadingNotFound = "reading not found"

	// MsgAlreadyExists is returned when a record with the same id was
	// already uploaded.
	MsgAlreadyExists = "record already exists"

	// MsgRouteNotFound is returned for an unknown path, or a known path
	// requested with a method it does not serve.
	MsgRouteNotFound = "route not found"

	// MsgInvalidSince is returned when the since query parameter is not an
	// epoch second.
	MsgInvalidSince = "since must be a unix timestamp in seconds"
)

// Keys of the sync error report that are not HTTP statuses.
const (
	// CodeNetwork marks requests that got no answer from the server.
	CodeNetwork = -1
	// CodeLocalStore marks records the server accepted or sent that could
	// not be written to the device store.
	CodeLocalStore = -2
	// CodeCancelled marks a cycle that was cancelled or timed out.
	CodeCancelled = -3
	// CodeStream marks a batched readings download that broke mid-stream.
	CodeStream = -4
)

// MessageFor returns the text shown to the user for a sync error code.
func MessageFor(code int) string {
	switch code {
	case CodeNetwork:
		return "unable to reach the server, check the connection"
	case CodeLocalStore:
		return "failed to save synced records on this device"
	case CodeCancelled:
		return "sync was cancelled before it finished"
	case CodeStream:
		return "the readings download was interrupted"
	case http.StatusBadRequest:
		return "the server rejected invalid data"
	case http.StatusUnauthorized:
		return "not authorized, sign in again"
	case http.StatusForbidden:
		return "you do not have permission for this record"
	case http.StatusNotFound:
		return "the record was not found on the server"
	case http.StatusConflict:
		return "the record already exists on the server"
	case http.StatusInternalServerError:
		return "the server failed to process the request"
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return "the server is temporarily unavailable"
	default:
		if text := http.StatusText(code); text != "" {
			return fmt.Sprintf("unexpected server response %d (%s)", code, text)
		}
		return fmt.Sprintf("unexpected error code %d", code)
	}
}

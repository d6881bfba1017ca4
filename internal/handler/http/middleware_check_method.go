// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/fieldsync/internal/app"
	"github.com/MKhiriev/fieldsync/internal/logger"
	"github.com/MKhiriev/fieldsync/internal/utils"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
// A path requested with a method it does not serve is answered like an
// unknown path: 404 with the usual JSON error body.
//
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// registered for this method after all, e.g. on a mounted sub-router
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		logger.FromRequest(r).Debug().
			Str("func", "CheckHTTPMethod").
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("method is not served for path")
		utils.WriteError(w, app.MsgRouteNotFound, http.StatusNotFound)
	}
}

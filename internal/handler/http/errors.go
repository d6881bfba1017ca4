// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the handlers when reading a request.
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidSinceParam is returned when the since query parameter is not
	// an integer.
	ErrInvalidSinceParam = errors.New("since must be an integer epoch second")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrIDMismatch is returned when the id in the body contradicts the id
	// in the path.
	ErrIDMismatch = errors.New("id in body does not match id in path")
)

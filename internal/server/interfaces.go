// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server is the lifecycle of the sync server process.
type Server interface {
	// RunServer serves requests until the process is asked to stop and
	// then drains in-flight requests. It returns an error only when the
	// listener failed on its own.
	RunServer() error

	// Shutdown gracefully stops the server.
	Shutdown()
}

package server

import "errors"

var (
	errNoServersAreCreated = errors.New("no servers are created")

	// ErrServerStopped is returned by RunServer when the listener failed
	// before a shutdown was requested, e.g. because the address is taken.
	ErrServerStopped = errors.New("http server stopped unexpectedly")
)

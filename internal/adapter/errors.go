package adapter

import "errors"

var (
	// ErrInvalidAddress is returned by the constructor when the server
	// address cannot be turned into a base URL.
	ErrInvalidAddress = errors.New("invalid server address")

	// ErrDecodingResponse is the cause of a NetworkException when a 2xx
	// body could not be decoded.
	ErrDecodingResponse = errors.New("error decoding server response")

	// ErrStreamNotStarted closes the sinks of a readings stream whose
	// response never reached the parser.
	ErrStreamNotStarted = errors.New("readings stream was not started")
)

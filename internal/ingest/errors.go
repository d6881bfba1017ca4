package ingest

import "errors"

var (
	// ErrSinkClosed is returned by Send after the sink was closed.
	ErrSinkClosed = errors.New("sink is closed")

	// ErrIngestAborted is what every sink is closed with when the stream
	// could not be read to the end. The underlying cause is wrapped with it.
	ErrIngestAborted = errors.New("readings stream aborted")

	// ErrMalformedPayload is returned when the payload does not have the
	// expected object/array shape.
	ErrMalformedPayload = errors.New("malformed readings payload")

	// ErrTotalNotFirst is returned when a record array appears before the
	// total field.
	ErrTotalNotFirst = errors.New("total must precede record arrays")
)

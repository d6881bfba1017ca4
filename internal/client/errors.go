package client

import "errors"

var (
	ErrUnknownCommand   = errors.New("unknown command")
	ErrMissingFile      = errors.New("command needs a JSON file argument")
	ErrSyncIncomplete   = errors.New("sync cycle did not complete")
	ErrNoClientServices = errors.New("client services are not configured")
)

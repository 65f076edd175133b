package loader

import "errors"

var (
	// ErrNotFound signals expected absence: the source has no data for the
	// requested resource and locale. The chain moves on to the next candidate.
	ErrNotFound = errors.New("loader: resource not found")

	// ErrMalformed reports backing data that exists but cannot be used.
	ErrMalformed = errors.New("loader: malformed resource data")

	// ErrLoadFailed marks a chain result that ended without data after at
	// least one unexpected loader failure.
	ErrLoadFailed = errors.New("loader: one or more loaders failed")

	// ErrNilLoader is returned when registering a nil loader.
	ErrNilLoader = errors.New("loader: loader cannot be nil")

	// ErrUnknownFormat is returned when no format is registered for a name.
	ErrUnknownFormat = errors.New("loader: unknown format")
)

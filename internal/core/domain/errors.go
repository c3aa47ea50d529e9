package domain

import "go.trai.ch/zerr"

var (
	// ErrRemoteNotFound is returned when the build service answers 404 for a resource.
	ErrRemoteNotFound = zerr.New("remote resource not found")

	// ErrRemoteRequestFailed is returned when a build service request fails with a
	// non-retryable status or cannot be sent at all.
	ErrRemoteRequestFailed = zerr.New("remote request failed")

	// ErrRemoteRetriesExhausted is returned when a read kept failing with server errors
	// until the attempt budget was spent.
	ErrRemoteRetriesExhausted = zerr.New("remote read retries exhausted")

	// ErrRemoteParseFailed is returned when a build service response cannot be decoded.
	ErrRemoteParseFailed = zerr.New("failed to parse remote response")

	// ErrInvalidProvenance is returned when a persisted lookup entry cannot be decoded.
	ErrInvalidProvenance = zerr.New("invalid provenance entry")

	// ErrLookupParseFailed is returned when the lookup document is not a valid mapping.
	ErrLookupParseFailed = zerr.New("failed to parse lookup document")

	// ErrLookupWriteFailed is returned when the lookup document cannot be stored.
	ErrLookupWriteFailed = zerr.New("failed to write lookup document")

	// ErrAmbiguousRequests is returned when more than one pending request exists where
	// at most one is expected.
	ErrAmbiguousRequests = zerr.New("multiple pending requests")

	// ErrRequestSubmitFailed is returned when submitting a request fails.
	ErrRequestSubmitFailed = zerr.New("failed to submit request")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigInvalid is returned when the config file parses but violates a constraint.
	ErrConfigInvalid = zerr.New("invalid configuration")

	// ErrConfigPathMissing is returned when no config file was given.
	ErrConfigPathMissing = zerr.New("no config file specified")
)

package extractor

import "errors"

// Domain errors surfaced to the service layer. Each terminates the extraction
// with no partial result; the caller maps them to transport responses.
var (
	// ErrEmptyResponse means the backend produced no usable text.
	ErrEmptyResponse = errors.New("model response was empty")

	// ErrMalformedResponse means the response could not be parsed as JSON
	// even after fence stripping and brace extraction.
	ErrMalformedResponse = errors.New("model response was not valid JSON")

	// ErrInvalidShape means the parsed payload's items field is not a
	// well-formed list of action items.
	ErrInvalidShape = errors.New("model response did not contain an items list")
)

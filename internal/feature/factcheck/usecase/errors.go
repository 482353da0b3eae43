// Package usecase implements the business logic for the factcheck feature.
package usecase

import "errors"

var (
	// ErrUpstream is returned when the completion service is unreachable,
	// rejected the request, or timed out. The underlying cause is attached
	// via error wrapping for diagnostics.
	ErrUpstream = errors.New("completion service request failed")

	// ErrUpstreamFormat is returned when the completion service responded,
	// but the response could not be parsed into the expected shape.
	ErrUpstreamFormat = errors.New("completion response has unexpected format")
)

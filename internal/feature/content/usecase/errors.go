// Package usecase implements the business logic for the content feature.
package usecase

import "errors"

var (
	// ErrContentNotFound is returned when no content exists with the requested ID.
	ErrContentNotFound = errors.New("content not found")

	// ErrForbidden is returned when the caller is authenticated but is not
	// the owner of the requested content.
	ErrForbidden = errors.New("content belongs to another user")

	// ErrInvalidScore is returned when attempting to attach a fact-check score
	// outside the [0,100] range.
	ErrInvalidScore = errors.New("fact-check score out of range")
)

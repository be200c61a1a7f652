// Package common defines shared constants and sentinel errors used across
// the gourmich server layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Auth errors.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")

	// Authorization errors.
	ErrNotOwner = errors.New("not the resource owner")

	// Recipe-specific errors.
	ErrDuplicateTitle     = errors.New("duplicate recipe title")
	ErrMissingIngredients = errors.New("ingredients are missing")
	ErrUnknownCategory    = errors.New("unknown category")
)

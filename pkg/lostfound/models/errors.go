package models

import "errors"

// Common errors for lost-and-found operations.
var (
	ErrDiscNotFound  = errors.New("found disc not found")
	ErrInvalidDisc   = errors.New("invalid found disc")
	ErrInvalidStatus = errors.New("invalid disc status")
	ErrInvalidDate   = errors.New("invalid calendar date")
)

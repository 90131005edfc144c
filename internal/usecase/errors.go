package usecase

import (
	"errors"
)

// Error kinds the handlers translate into HTTP statuses
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrConflict        = errors.New("already exists")
	ErrForbidden       = errors.New("forbidden")
)

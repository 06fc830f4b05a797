package domain

import "errors"

var (
	ErrDuplicateKey     = errors.New("duplicate key")
	ErrNotFound         = errors.New("not found")
	ErrCapacityExceeded = errors.New("no seats available in requested class")

	ErrInvalidClass = errors.New("invalid travel class")
	ErrInvalidDate  = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidTime  = errors.New("invalid time, expected HH:MM")

	ErrUnauthorized = errors.New("invalid staff credentials")
)

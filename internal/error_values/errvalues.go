package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong email or password")
	ErrInvalidToken     = errors.New("invalid token")

	ErrHabitNotFound = errors.New("habit not found")
	ErrValidation    = errors.New("validation error")

	// Storage layer
	ErrKeyNotFound       = errors.New("key not found")
	ErrCorruptedData     = errors.New("stored data is corrupted")
	ErrUnsupportedSchema = errors.New("unsupported schema version")
	ErrNoSession         = errors.New("no user logged in")
)

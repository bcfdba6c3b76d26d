package repository

import "errors"

var (
	// ErrConstraintViolation is returned when a write breaks a table constraint,
	// such as inserting a duplicate primary key
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrStorageUnavailable is returned when the database cannot be opened or written
	ErrStorageUnavailable = errors.New("storage unavailable")
)

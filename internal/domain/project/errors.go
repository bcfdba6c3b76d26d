package project

import "errors"

var (
	// ErrProjectNotFound indicates the project doesn't exist in the current snapshot.
	ErrProjectNotFound = errors.New("project not found")
	// ErrInvalidInput indicates a status or priority outside its enumeration.
	ErrInvalidInput = errors.New("invalid project input")
)

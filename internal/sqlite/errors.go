package sqlite

import (
	"fmt"
	"strings"

	"github.com/miraway/projects/internal/repository"
)

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func isCheckViolation(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "CHECK constraint failed")
}

// classify tags a driver error with the matching repository sentinel.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if isUniqueViolation(err) || isCheckViolation(err) {
		return fmt.Errorf("%w: %v", repository.ErrConstraintViolation, err)
	}
	return fmt.Errorf("%w: %v", repository.ErrStorageUnavailable, err)
}

package mcp

import (
	"errors"
	"fmt"

	"github.com/miraway/projects/internal/domain/activity"
	"github.com/miraway/projects/internal/domain/project"
	"github.com/miraway/projects/internal/repository"
)

// APIError represents an MCP tool error.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	if e.RecoveryHint != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.RecoveryHint)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// MapError maps domain errors to MCP error codes. Unknown errors are
// returned as-is.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, project.ErrProjectNotFound):
		return &APIError{Code: "PROJECT_NOT_FOUND", Message: "project not found", RecoveryHint: "Call list_projects for valid ids"}
	case errors.Is(err, project.ErrInvalidInput), errors.Is(err, activity.ErrInvalidInput):
		return &APIError{Code: "INVALID_INPUT", Message: "invalid status or priority", RecoveryHint: "Use Open, In-Progress, Closed and High, Medium, Low"}
	case errors.Is(err, repository.ErrConstraintViolation):
		return &APIError{Code: "CONSTRAINT_VIOLATION", Message: "a project with this id already exists", RecoveryHint: "Nothing was written"}
	case errors.Is(err, repository.ErrStorageUnavailable):
		return &APIError{Code: "STORAGE_UNAVAILABLE", Message: "project store is unavailable"}
	default:
		return err
	}
}

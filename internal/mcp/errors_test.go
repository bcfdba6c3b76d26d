package mcp

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/miraway/projects/internal/domain/project"
	"github.com/miraway/projects/internal/repository"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
	}{
		{"not found", project.ErrProjectNotFound, "PROJECT_NOT_FOUND"},
		{"invalid", fmt.Errorf("wrap: %w", project.ErrInvalidInput), "INVALID_INPUT"},
		{"constraint", fmt.Errorf("creating project PROJECT-2: %w", repository.ErrConstraintViolation), "CONSTRAINT_VIOLATION"},
		{"storage", repository.ErrStorageUnavailable, "STORAGE_UNAVAILABLE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var apiErr *APIError
			require.True(t, errors.As(MapError(tt.err), &apiErr))
			require.Equal(t, tt.code, apiErr.Code)
		})
	}

	require.NoError(t, MapError(nil))

	other := errors.New("boom")
	require.Same(t, other, MapError(other))
}

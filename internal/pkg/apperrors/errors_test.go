package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainErrorsCarryTheirCategory(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		category error
	}{
		{name: "invalid email", err: ErrInvalidEmail, category: ErrValidation},
		{name: "weak password", err: ErrPasswordTooWeak, category: ErrValidation},
		{name: "invalid credentials", err: ErrInvalidCredentials, category: ErrAuth},
		{name: "email already registered", err: ErrEmailAlreadyRegistered, category: ErrAuth},
		{name: "token expired", err: ErrTokenExpired, category: ErrAuth},
		{name: "department not found", err: ErrDepartmentNotFound, category: ErrNotFound},
		{name: "department exists", err: ErrDepartmentAlreadyExists, category: ErrConflict},
		{name: "faculty not found", err: ErrFacultyNotFound, category: ErrNotFound},
		{name: "faculty email exists", err: ErrEmailAlreadyExists, category: ErrConflict},
		{name: "duplicate assignment", err: ErrDuplicateAssignment, category: ErrConflict},
		{name: "profile not found", err: ErrProfileNotFound, category: ErrNotFound},
	}

	categories := []error{ErrValidation, ErrNotFound, ErrConflict, ErrConnection, ErrAuth}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.category)
			// Exactly one category matches.
			matches := 0
			for _, category := range categories {
				if errors.Is(tt.err, category) {
					matches++
				}
			}
			assert.Equal(t, 1, matches)
		})
	}
}

func TestCategorySurvivesWrapping(t *testing.T) {
	wrapped := fmt.Errorf("create department: %w", ErrDepartmentAlreadyExists)
	assert.ErrorIs(t, wrapped, ErrConflict)
	assert.ErrorIs(t, wrapped, ErrDepartmentAlreadyExists)
}

func TestDistinctSignUpAndSignInCauses(t *testing.T) {
	// Both are auth errors, but callers can tell them apart.
	assert.NotEqual(t, ErrInvalidCredentials.Error(), ErrEmailAlreadyRegistered.Error())
	assert.ErrorIs(t, ErrInvalidCredentials, ErrAuth)
	assert.ErrorIs(t, ErrEmailAlreadyRegistered, ErrAuth)
	assert.NotErrorIs(t, ErrInvalidCredentials, ErrEmailAlreadyRegistered)
}

func TestWithDetailsLeavesSentinelUntouched(t *testing.T) {
	detailed := ErrFacultyNotFound.WithDetails(map[string]interface{}{"id": "42"})
	require.NotSame(t, ErrFacultyNotFound, detailed)
	assert.ErrorIs(t, detailed, ErrNotFound)
	assert.Nil(t, ErrFacultyNotFound.Details)
	assert.Equal(t, "42", detailed.Details["id"])
}

func TestConstructors(t *testing.T) {
	assert.ErrorIs(t, NewValidationError("x"), ErrValidation)
	assert.ErrorIs(t, NewNotFoundError("x"), ErrNotFound)
	assert.ErrorIs(t, NewConflictError("x"), ErrConflict)
	assert.ErrorIs(t, NewConnectionError("x"), ErrConnection)
	assert.ErrorIs(t, NewAuthError("x"), ErrAuth)
	assert.Equal(t, "x", NewValidationError("x").Error())
}

package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feims/feims/internal/app/models/dto"
	"github.com/feims/feims/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func responseFor(t *testing.T, err error) (int, *dto.ErrorResponse) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

	HandleAPIError(c, err)

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, &body
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"validation", apperrors.NewValidationError("bad input"), http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials},
		{"expired token", apperrors.ErrTokenExpired, http.StatusUnauthorized, dto.ErrorCodeExpiredToken},
		{"generic auth", apperrors.ErrSessionNotFound, http.StatusUnauthorized, dto.ErrorCodeUnauthorized},
		{"email registered", apperrors.ErrEmailAlreadyRegistered, http.StatusConflict, dto.ErrorCodeEmailTaken},
		{"not found", apperrors.ErrFacultyNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"conflict", apperrors.ErrDepartmentAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"connection", apperrors.NewConnectionError("timeout"), http.StatusServiceUnavailable, dto.ErrorCodeStoreUnavailable},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := responseFor(t, tt.err)
			assert.Equal(t, tt.wantStatus, status)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.False(t, body.Success)
		})
	}
}

func TestHandleAPIErrorSurfacesValidationDetails(t *testing.T) {
	err := apperrors.ErrInvalidID.WithDetails(map[string]interface{}{"field": "departmentId"})

	status, body := responseFor(t, err)
	assert.Equal(t, http.StatusBadRequest, status)
	require.NotNil(t, body.Error)
	assert.Equal(t, dto.ErrorCodeValidationFailed, body.Error.Code)

	details, ok := body.Error.Details.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "departmentId", details["field"])
}

func TestHandleAPIErrorSurfacesDomainMessage(t *testing.T) {
	_, body := responseFor(t, apperrors.ErrFacultyNotFound)
	require.NotNil(t, body.Error)
	assert.Equal(t, "faculty member not found", body.Error.Message)
}

func TestHandleAPIErrorHidesInternals(t *testing.T) {
	_, body := responseFor(t, errors.New("pq: something leaked"))
	require.NotNil(t, body.Error)
	assert.Equal(t, "internal server error", body.Error.Message)
}

package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/feims/feims/internal/app/models/dto"
	"github.com/feims/feims/internal/pkg/apperrors"
	"github.com/feims/feims/internal/pkg/logger"
)

// HandleAPIError maps the application error taxonomy onto HTTP
// statuses in one place so controllers stay uniform:
// validation 400, auth 401, not found 404, conflict 409,
// connection 503, everything else 500.
func HandleAPIError(c *gin.Context, err error) {
	message := err.Error()
	var custom *apperrors.CustomError
	if errors.As(err, &custom) {
		message = custom.Message
	}

	switch {
	case errors.Is(err, apperrors.ErrValidation):
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message)
		if custom != nil && custom.Details != nil {
			detail = detail.WithDetails(custom.Details)
		}
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, message)))

	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeExpiredToken, message)))

	case errors.Is(err, apperrors.ErrEmailAlreadyRegistered):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeEmailTaken, message)))

	case errors.Is(err, apperrors.ErrAuth):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, message)))

	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, message)))

	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, message)))

	case errors.Is(err, apperrors.ErrConnection):
		c.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeStoreUnavailable, "data store unavailable")))

	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("unhandled error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "internal server error")))
	}
}

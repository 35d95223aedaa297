// Package controllers binds the HTTP surface to the service layer.
// Controllers translate requests, delegate to services, and hand
// every service error to the central error mapper.
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/feims/feims/internal/app/models/dto"
	"github.com/feims/feims/internal/middleware"
	"github.com/feims/feims/internal/pkg/apperrors"
)

// parseIDParam reads a uuid path parameter, writing a 400 response
// and returning false when it is malformed.
func parseIDParam(ctx *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrInvalidID.WithDetails(
			map[string]interface{}{"field": name}))
		return uuid.Nil, false
	}
	return id, true
}

// parseOptionalIDQuery reads an optional uuid query parameter.
func parseOptionalIDQuery(ctx *gin.Context, name string) (*uuid.UUID, bool) {
	raw := ctx.Query(name)
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrInvalidID.WithDetails(
			map[string]interface{}{"field": name}))
		return nil, false
	}
	return &id, true
}

// bindJSON binds the request body, writing a 400 response and
// returning false on malformed input.
func bindJSON(ctx *gin.Context, target interface{}) bool {
	if err := ctx.ShouldBindJSON(target); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "invalid request data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return false
	}
	return true
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/feims/feims/internal/app/models/dto"
	"github.com/feims/feims/internal/app/services"
	"github.com/feims/feims/internal/middleware"
	"github.com/feims/feims/internal/pkg/apperrors"
)

// AuthController handles registration, sign-in and token rotation
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Register handles sign-up
// @Summary Register a new account
// @Description Registers an account and creates its profile. No session is established.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Credentials"
// @Success 201 {object} dto.APIResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid email or password"
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Router /auth/signup [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if !bindJSON(ctx, &req) {
		return
	}

	user, err := c.authService.SignUp(ctx, req.Email, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewDataResponse(gin.H{
		"userId": user.ID,
		"email":  user.Email,
	}))
}

// Login handles sign-in
// @Summary Sign in
// @Description Exchanges credentials for an access and refresh token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.APIResponse{data=dto.AuthResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid email or password format"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /auth/signin [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(ctx, &req) {
		return
	}

	user, pair, err := c.authService.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.AuthResponse{
		UserID: user.ID.String(),
		Email:  user.Email,
		Tokens: dto.TokenResponse{
			AccessToken:      pair.AccessToken,
			RefreshToken:     pair.RefreshToken,
			ExpiresIn:        pair.ExpiresIn,
			RefreshExpiresIn: pair.RefreshExpiresIn,
		},
	}))
}

// Refresh rotates a refresh token
// @Summary Refresh tokens
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} dto.APIResponse{data=dto.TokenResponse}
// @Failure 401 {object} dto.ErrorResponse "Invalid, expired or revoked token"
// @Router /auth/refresh [post]
func (c *AuthController) Refresh(ctx *gin.Context) {
	var req dto.RefreshTokenRequest
	if !bindJSON(ctx, &req) {
		return
	}

	pair, err := c.authService.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.TokenResponse{
		AccessToken:      pair.AccessToken,
		RefreshToken:     pair.RefreshToken,
		ExpiresIn:        pair.ExpiresIn,
		RefreshExpiresIn: pair.RefreshExpiresIn,
	}))
}

// Confirm activates an account with its confirmation token
// @Summary Confirm email address
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.ConfirmEmailRequest true "Confirmation token"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 401 {object} dto.ErrorResponse "Invalid, expired or revoked token"
// @Router /auth/confirm [post]
func (c *AuthController) Confirm(ctx *gin.Context) {
	var req dto.ConfirmEmailRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if err := c.authService.ConfirmEmail(ctx, req.Token); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.SuccessResponse{Message: "email confirmed"}))
}

// Logout revokes the caller's refresh tokens
// @Summary Sign out
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /auth/signout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrSessionNotFound)
		return
	}

	if err := c.authService.SignOut(ctx, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.SuccessResponse{Message: "signed out"}))
}

// Me returns the caller's profile
// @Summary Current profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.Profile}
// @Failure 404 {object} dto.ErrorResponse "Profile not found"
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrSessionNotFound)
		return
	}

	profile, err := c.authService.GetProfile(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(profile))
}

// UpdateMe renames the caller's profile
// @Summary Update current profile
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateProfileRequest true "New name"
// @Success 200 {object} dto.APIResponse{data=models.Profile}
// @Router /auth/me [put]
func (c *AuthController) UpdateMe(ctx *gin.Context) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrSessionNotFound)
		return
	}

	var req dto.UpdateProfileRequest
	if !bindJSON(ctx, &req) {
		return
	}

	profile, err := c.authService.UpdateProfile(ctx, userID, req.Name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(profile))
}

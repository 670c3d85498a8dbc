package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bazarkas/cashflow_app/internal/apperrors"
	portssvc "github.com/bazarkas/cashflow_app/internal/core/ports/services"
	"github.com/bazarkas/cashflow_app/internal/dto"
	"github.com/bazarkas/cashflow_app/internal/middleware"
)

// GoogleOAuthHandler handles Google OAuth related requests. Google
// sign-in only maps a validated Google identity onto an account an admin
// has already provisioned; it never creates accounts.
type GoogleOAuthHandler struct {
	googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade
	tenantService      portssvc.TenantSvcFacade
	tokenService       portssvc.TokenSvcFacade
}

// NewGoogleOAuthHandler creates a new instance of GoogleOAuthHandler.
func NewGoogleOAuthHandler(
	googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade,
	tenantService portssvc.TenantSvcFacade,
	tokenService portssvc.TokenSvcFacade,
) *GoogleOAuthHandler {
	return &GoogleOAuthHandler{
		googleOAuthService: googleOAuthService,
		tenantService:      tenantService,
		tokenService:       tokenService,
	}
}

// registerGoogleOAuthRoutes registers the Google OAuth routes.
func registerGoogleOAuthRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	h := NewGoogleOAuthHandler(services.GoogleOAuthHandler, services.Tenant, services.Token)
	google := r.Group("/api/v1/auth/google")
	{
		google.POST("/exchange-code", h.ExchangeCodeGoogle)
	}
}

// ExchangeCodeRequest is the JSON body for the exchange-code endpoint.
type ExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// ExchangeCodeGoogle handles the POST request from the frontend containing
// the authorization code from Google. It exchanges the code for Google
// tokens, validates the ID token, resolves the provisioned account by
// email, and returns an application JWT.
// @Summary Exchange Google authorization code
// @Description Exchanges a Google authorization code for an application access token
// @Tags auth
// @Accept json
// @Produce json
// @Param code body ExchangeCodeRequest true "Authorization code"
// @Success 200 {object} dto.Envelope[dto.LoginResponse]
// @Failure 400 {object} dto.Envelope[any]
// @Failure 401 {object} dto.Envelope[any]
// @Router /auth/google/exchange-code [post]
func (h *GoogleOAuthHandler) ExchangeCodeGoogle(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	var req ExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind exchange code request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid request payload: "+err.Error()))
		return
	}

	oauth2Token, err := h.googleOAuthService.ExchangeCodeForToken(ctx, req.Code)
	if err != nil {
		logger.Error("Failed to exchange authorization code with Google", slog.String("error", err.Error()))
		if strings.Contains(strings.ToLower(err.Error()), "invalid_grant") || strings.Contains(strings.ToLower(err.Error()), "bad request") {
			c.JSON(http.StatusBadRequest, dto.Fail("Invalid or expired authorization code."))
			return
		}
		c.JSON(http.StatusGatewayTimeout, dto.Fail("Failed to communicate with Google OAuth service."))
		return
	}

	idTokenString, ok := oauth2Token.Extra("id_token").(string)
	if !ok || idTokenString == "" {
		logger.Error("ID token not found in Google's token response")
		c.JSON(http.StatusInternalServerError, dto.Fail("Failed to retrieve ID token from Google."))
		return
	}

	payload, err := h.googleOAuthService.ValidateGoogleIDToken(ctx, idTokenString)
	if err != nil {
		logger.Error("Google ID token validation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, dto.Fail("Invalid Google ID token."))
		return
	}

	email, _ := payload.Claims["email"].(string)
	emailVerified, _ := payload.Claims["email_verified"].(bool)
	if email == "" || !emailVerified {
		logger.Warn("Google token carries no verified email", slog.String("google_user_id", payload.Subject))
		c.JSON(http.StatusUnauthorized, dto.Fail("Google account has no verified email."))
		return
	}

	tenant, err := h.tenantService.GetTenantByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Google sign-in for unprovisioned email")
			c.JSON(http.StatusUnauthorized, dto.Fail("No account is registered for this Google identity."))
			return
		}
		logger.Error("Failed to resolve account for Google sign-in", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Fail("Failed to process sign-in."))
		return
	}

	accessToken, expiresAt, err := h.tokenService.GenerateAccessToken(ctx, tenant)
	if err != nil {
		logger.Error("Failed to generate access token", slog.String("error", err.Error()), slog.String("tenant_id", tenant.ID))
		c.JSON(http.StatusInternalServerError, dto.Fail("Failed to generate access token."))
		return
	}

	logger.Info("Google sign-in succeeded", slog.String("tenant_id", tenant.ID))
	c.JSON(http.StatusOK, dto.OK(dto.LoginResponse{
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
		User:        dto.ToTenantResponse(tenant),
	}))
}

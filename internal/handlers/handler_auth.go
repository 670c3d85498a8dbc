package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/bazarkas/cashflow_app/internal/core/ports/services"
	"github.com/bazarkas/cashflow_app/internal/dto"
	"github.com/bazarkas/cashflow_app/internal/middleware"
	"github.com/bazarkas/cashflow_app/internal/platform/config"
)

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	tenantService portssvc.TenantSvcFacade
	tokenService  portssvc.TokenSvcFacade
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(ts portssvc.TenantSvcFacade, tok portssvc.TokenSvcFacade) *AuthHandler {
	return &AuthHandler{tenantService: ts, tokenService: tok}
}

// registerAuthRoutes sets up the public authentication routes, rate
// limited per client IP.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := NewAuthHandler(services.Tenant, services.Token)

	rate, err := limiter.NewRateFromFormatted(cfg.LoginRateLimit)
	if err != nil {
		rate, _ = limiter.NewRateFromFormatted("10-M")
	}
	ipLimiter := limiter.New(memory.NewStore(), rate)

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/login", middleware.RateLimit(ipLimiter), h.Login)
	}
}

// Login godoc
// @Summary Log in
// @Description Authenticates email+password credentials and returns a JWT access token
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.Envelope[dto.LoginResponse]
// @Failure 401 {object} dto.Envelope[any]
// @Failure 429 {object} dto.Envelope[any]
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid request body"))
		return
	}

	tenant, err := h.tenantService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// One message for every failure so login cannot be used to probe
		// for registered emails.
		c.JSON(http.StatusUnauthorized, dto.Fail("Invalid email or password"))
		return
	}

	accessToken, expiresAt, err := h.tokenService.GenerateAccessToken(c.Request.Context(), tenant)
	if err != nil {
		logger.Error("Failed to generate access token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Fail("Failed to generate token"))
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.LoginResponse{
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
		User:        dto.ToTenantResponse(tenant),
	}))
}

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/bazarkas/cashflow_app/internal/core/ports/services"
	"github.com/bazarkas/cashflow_app/internal/dto"
	"github.com/bazarkas/cashflow_app/internal/middleware"
)

// tenantHandler handles HTTP requests related to vendor accounts.
type tenantHandler struct {
	tenantService portssvc.TenantSvcFacade
}

// newTenantHandler creates a new tenantHandler.
func newTenantHandler(ts portssvc.TenantSvcFacade) *tenantHandler {
	return &tenantHandler{tenantService: ts}
}

// registerTenantRoutes registers routes related to vendor accounts.
func registerTenantRoutes(rg *gin.RouterGroup, tenantService portssvc.TenantSvcFacade) {
	h := newTenantHandler(tenantService)

	tenants := rg.Group("/tenants")
	{
		tenants.GET("", h.listTenants)
		tenants.GET("/options", h.listTenantOptions)
		tenants.GET("/summaries", h.listTenantRevenueSummaries)
		tenants.GET("/:id", h.getTenantByID)
		tenants.POST("", h.createTenant)
		tenants.PATCH("/:id", h.updateTenant)
		tenants.DELETE("/:id", h.deleteTenant)
	}
	rg.GET("/me", h.getOwnProfile)
}

// getOwnProfile godoc
// @Summary Get own profile
// @Description Returns the authenticated account's profile
// @Tags tenants
// @Produce json
// @Success 200 {object} dto.Envelope[dto.TenantResponse]
// @Security BearerAuth
// @Router /me [get]
func (h *tenantHandler) getOwnProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	requestor, ok := middleware.GetRequestorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("Unauthorized"))
		return
	}

	tenant, err := h.tenantService.GetTenantByID(c.Request.Context(), requestor.ID)
	if err != nil {
		respondError(c, logger, err, "Failed to load profile")
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToTenantResponse(tenant)))
}

// listTenants godoc
// @Summary List tenants
// @Description Lists all vendor accounts (admin only)
// @Tags tenants
// @Produce json
// @Success 200 {object} dto.Envelope[[]dto.TenantResponse]
// @Failure 403 {object} dto.Envelope[any]
// @Security BearerAuth
// @Router /tenants [get]
func (h *tenantHandler) listTenants(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	requestor, ok := middleware.GetRequestorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("Unauthorized"))
		return
	}

	tenants, err := h.tenantService.ListTenants(c.Request.Context(), requestor)
	if err != nil {
		respondError(c, logger, err, "Failed to list tenants")
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToTenantResponses(tenants)))
}

// listTenantOptions godoc
// @Summary List tenant filter options
// @Description Minimal identity list for filter dropdowns (admin only)
// @Tags tenants
// @Produce json
// @Success 200 {object} dto.Envelope[[]dto.TenantOptionResponse]
// @Failure 403 {object} dto.Envelope[any]
// @Security BearerAuth
// @Router /tenants/options [get]
func (h *tenantHandler) listTenantOptions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	requestor, ok := middleware.GetRequestorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("Unauthorized"))
		return
	}

	options, err := h.tenantService.ListTenantOptions(c.Request.Context(), requestor)
	if err != nil {
		respondError(c, logger, err, "Failed to list tenant options")
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToTenantOptionResponses(options)))
}

// listTenantRevenueSummaries godoc
// @Summary List tenant revenue summaries
// @Description Per-tenant lifetime transaction counts and net revenue (admin only)
// @Tags tenants
// @Produce json
// @Success 200 {object} dto.Envelope[[]dto.TenantRevenueSummaryResponse]
// @Failure 403 {object} dto.Envelope[any]
// @Security BearerAuth
// @Router /tenants/summaries [get]
func (h *tenantHandler) listTenantRevenueSummaries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	requestor, ok := middleware.GetRequestorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("Unauthorized"))
		return
	}

	summaries, err := h.tenantService.ListTenantRevenueSummaries(c.Request.Context(), requestor)
	if err != nil {
		respondError(c, logger, err, "Failed to list tenant summaries")
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToTenantRevenueSummaryResponses(summaries)))
}

// getTenantByID godoc
// @Summary Get a tenant
// @Description Retrieves one vendor account; tenants can only read their own
// @Tags tenants
// @Produce json
// @Param id path string true "Tenant ID"
// @Success 200 {object} dto.Envelope[dto.TenantResponse]
// @Failure 404 {object} dto.Envelope[any]
// @Security BearerAuth
// @Router /tenants/{id} [get]
func (h *tenantHandler) getTenantByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param("id")

	requestor, ok := middleware.GetRequestorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("Unauthorized"))
		return
	}
	if !requestor.IsAdmin() && requestor.ID != id {
		c.JSON(http.StatusForbidden, dto.Fail("Unauthorized"))
		return
	}

	tenant, err := h.tenantService.GetTenantByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve tenant")
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToTenantResponse(tenant)))
}

// createTenant godoc
// @Summary Provision a tenant
// @Description Creates a new vendor account (admin only)
// @Tags tenants
// @Accept json
// @Produce json
// @Param tenant body dto.CreateTenantRequest true "Tenant details"
// @Success 201 {object} dto.Envelope[dto.TenantResponse]
// @Failure 409 {object} dto.Envelope[any]
// @Security BearerAuth
// @Router /tenants [post]
func (h *tenantHandler) createTenant(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind tenant create request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid request format: "+err.Error()))
		return
	}

	requestor, ok := middleware.GetRequestorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("Unauthorized"))
		return
	}

	tenant, err := h.tenantService.CreateTenant(c.Request.Context(), requestor, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create tenant")
		return
	}

	logger.Info("Tenant created", slog.String("tenant_id", tenant.ID))
	c.JSON(http.StatusCreated, dto.OK(dto.ToTenantResponse(tenant)))
}

// updateTenant godoc
// @Summary Update a tenant
// @Description Edits a vendor profile; tenants may edit their own, admins anyone's
// @Tags tenants
// @Accept json
// @Produce json
// @Param id path string true "Tenant ID"
// @Param tenant body dto.UpdateTenantRequest true "Fields to change"
// @Success 200 {object} dto.Envelope[dto.TenantResponse]
// @Failure 404 {object} dto.Envelope[any]
// @Security BearerAuth
// @Router /tenants/{id} [patch]
func (h *tenantHandler) updateTenant(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind tenant update request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid request format: "+err.Error()))
		return
	}

	requestor, ok := middleware.GetRequestorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("Unauthorized"))
		return
	}

	tenant, err := h.tenantService.UpdateTenant(c.Request.Context(), requestor, c.Param("id"), req)
	if err != nil {
		respondError(c, logger, err, "Failed to update tenant")
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToTenantResponse(tenant)))
}

// deleteTenant godoc
// @Summary Delete a tenant
// @Description Soft-deletes a vendor account; its transaction history stays attributable (admin only)
// @Tags tenants
// @Produce json
// @Param id path string true "Tenant ID"
// @Success 200 {object} dto.Envelope[any]
// @Failure 404 {object} dto.Envelope[any]
// @Security BearerAuth
// @Router /tenants/{id} [delete]
func (h *tenantHandler) deleteTenant(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	requestor, ok := middleware.GetRequestorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("Unauthorized"))
		return
	}

	if err := h.tenantService.DeleteTenant(c.Request.Context(), requestor, c.Param("id")); err != nil {
		respondError(c, logger, err, "Failed to delete tenant")
		return
	}

	c.JSON(http.StatusOK, dto.OK[any](gin.H{"deleted": true}))
}

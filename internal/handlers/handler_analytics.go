package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/bazarkas/cashflow_app/internal/core/ports/services"
	"github.com/bazarkas/cashflow_app/internal/dto"
	"github.com/bazarkas/cashflow_app/internal/middleware"
)

// Defaults for the dashboard widgets.
const (
	defaultSeriesDays   = 7
	defaultRankingLimit = 5
)

// analyticsHandler handles HTTP requests for the admin dashboard.
type analyticsHandler struct {
	analyticsService portssvc.AnalyticsSvcFacade
}

// newAnalyticsHandler creates a new analyticsHandler.
func newAnalyticsHandler(as portssvc.AnalyticsSvcFacade) *analyticsHandler {
	return &analyticsHandler{analyticsService: as}
}

// registerAnalyticsRoutes registers routes related to the dashboard.
func registerAnalyticsRoutes(rg *gin.RouterGroup, analyticsService portssvc.AnalyticsSvcFacade) {
	h := newAnalyticsHandler(analyticsService)

	analytics := rg.Group("/analytics")
	{
		analytics.GET("/overview", h.getOverview)
		analytics.GET("/revenue", h.getRevenueSeries)
		analytics.GET("/top-tenants", h.getTopTenants)
		analytics.GET("/top-products", h.getTopProducts)
		analytics.GET("/types", h.getTypeDistribution)
	}
}

// intQuery parses a positive integer query parameter, falling back to def
// when absent or malformed.
func intQuery(c *gin.Context, name string, def int) int {
	value, err := strconv.Atoi(c.Query(name))
	if err != nil || value < 1 {
		return def
	}
	return value
}

// getOverview godoc
// @Summary Dashboard overview
// @Description Returns headline totals and month-over-month growth (admin only)
// @Tags analytics
// @Produce json
// @Success 200 {object} dto.Envelope[dto.AnalyticsOverviewResponse]
// @Failure 403 {object} dto.Envelope[any]
// @Security BearerAuth
// @Router /analytics/overview [get]
func (h *analyticsHandler) getOverview(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	requestor, ok := middleware.GetRequestorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("Unauthorized"))
		return
	}

	overview, err := h.analyticsService.Overview(c.Request.Context(), requestor)
	if err != nil {
		respondError(c, logger, err, "Failed to load overview")
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToAnalyticsOverviewResponse(*overview)))
}

// getRevenueSeries godoc
// @Summary Daily revenue series
// @Description Returns the zero-filled revenue-per-day series for the trailing window (admin only)
// @Tags analytics
// @Produce json
// @Param days query int false "Window length in days" default(7)
// @Success 200 {object} dto.Envelope[[]dto.RevenuePointResponse]
// @Failure 403 {object} dto.Envelope[any]
// @Security BearerAuth
// @Router /analytics/revenue [get]
func (h *analyticsHandler) getRevenueSeries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	requestor, ok := middleware.GetRequestorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("Unauthorized"))
		return
	}

	days := intQuery(c, "days", defaultSeriesDays)
	points, err := h.analyticsService.DailyRevenueSeries(c.Request.Context(), requestor, days)
	if err != nil {
		respondError(c, logger, err, "Failed to load revenue series")
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToRevenuePointResponses(points)))
}

// getTopTenants godoc
// @Summary Top tenants leaderboard
// @Description Ranks tenants by net revenue descending (admin only)
// @Tags analytics
// @Produce json
// @Param limit query int false "Max rows" default(5)
// @Success 200 {object} dto.Envelope[[]dto.TenantRankingResponse]
// @Failure 403 {object} dto.Envelope[any]
// @Security BearerAuth
// @Router /analytics/top-tenants [get]
func (h *analyticsHandler) getTopTenants(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	requestor, ok := middleware.GetRequestorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("Unauthorized"))
		return
	}

	limit := intQuery(c, "limit", defaultRankingLimit)
	rankings, err := h.analyticsService.TopTenants(c.Request.Context(), requestor, limit)
	if err != nil {
		respondError(c, logger, err, "Failed to load top tenants")
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToTenantRankingResponses(rankings)))
}

// getTopProducts godoc
// @Summary Top products leaderboard
// @Description Ranks products by revenue descending, including deleted catalog entries by their snapshot name (admin only)
// @Tags analytics
// @Produce json
// @Param limit query int false "Max rows" default(5)
// @Success 200 {object} dto.Envelope[[]dto.ProductRankingResponse]
// @Failure 403 {object} dto.Envelope[any]
// @Security BearerAuth
// @Router /analytics/top-products [get]
func (h *analyticsHandler) getTopProducts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	requestor, ok := middleware.GetRequestorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("Unauthorized"))
		return
	}

	limit := intQuery(c, "limit", defaultRankingLimit)
	rankings, err := h.analyticsService.TopProducts(c.Request.Context(), requestor, limit)
	if err != nil {
		respondError(c, logger, err, "Failed to load top products")
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToProductRankingResponses(rankings)))
}

// getTypeDistribution godoc
// @Summary Transaction type distribution
// @Description Returns per-type counts and sums (admin only)
// @Tags analytics
// @Produce json
// @Success 200 {object} dto.Envelope[[]dto.TypeBreakdownResponse]
// @Failure 403 {object} dto.Envelope[any]
// @Security BearerAuth
// @Router /analytics/types [get]
func (h *analyticsHandler) getTypeDistribution(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	requestor, ok := middleware.GetRequestorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("Unauthorized"))
		return
	}

	breakdown, err := h.analyticsService.TypeDistribution(c.Request.Context(), requestor)
	if err != nil {
		respondError(c, logger, err, "Failed to load type distribution")
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToTypeBreakdownResponses(breakdown)))
}

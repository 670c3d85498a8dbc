package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/bazarkas/cashflow_app/internal/core/domain"
	portssvc "github.com/bazarkas/cashflow_app/internal/core/ports/services"
	"github.com/bazarkas/cashflow_app/internal/dto"
	"github.com/bazarkas/cashflow_app/internal/middleware"
	"github.com/bazarkas/cashflow_app/internal/platform/config"
)

// visitorHandler handles the public scanner endpoint and the admin
// traffic reports.
type visitorHandler struct {
	visitorService portssvc.VisitorSvcFacade
}

// newVisitorHandler creates a new visitorHandler.
func newVisitorHandler(vs portssvc.VisitorSvcFacade) *visitorHandler {
	return &visitorHandler{visitorService: vs}
}

// registerPublicVisitorRoutes registers the unauthenticated scanner
// endpoint, rate limited per client IP since anyone can hit it.
func registerPublicVisitorRoutes(r *gin.Engine, cfg *config.Config, visitorService portssvc.VisitorSvcFacade) {
	h := newVisitorHandler(visitorService)

	rate, err := limiter.NewRateFromFormatted(cfg.VisitRateLimit)
	if err != nil {
		rate, _ = limiter.NewRateFromFormatted("60-M")
	}
	ipLimiter := limiter.New(memory.NewStore(), rate)

	r.POST("/visits", middleware.RateLimit(ipLimiter), h.recordVisit)
}

// registerVisitorRoutes registers the admin traffic reports.
func registerVisitorRoutes(rg *gin.RouterGroup, visitorService portssvc.VisitorSvcFacade) {
	h := newVisitorHandler(visitorService)

	visitors := rg.Group("/visitors")
	{
		visitors.GET("/overview", h.getVisitorOverview)
		visitors.GET("/daily", h.getVisitorsByDay)
	}
}

// recordVisit godoc
// @Summary Record a visit
// @Description Records one foot-traffic event from the public QR scanner; no authentication
// @Tags visitors
// @Accept json
// @Produce json
// @Param visit body dto.RecordVisitRequest false "Visit details"
// @Success 201 {object} dto.Envelope[any]
// @Failure 429 {object} dto.Envelope[any]
// @Router /visits [post]
func (h *visitorHandler) recordVisit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RecordVisitRequest
	// An empty or absent body is fine; it records an anonymous visit.
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Warn("Failed to bind visit request", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, dto.Fail("Invalid request format: "+err.Error()))
			return
		}
	}

	visit := domain.Visit{
		TenantID: req.TenantID,
		Metadata: req.Metadata,
	}
	if err := h.visitorService.RecordVisit(c.Request.Context(), visit); err != nil {
		respondError(c, logger, err, "Failed to record visit")
		return
	}

	c.JSON(http.StatusCreated, dto.OK[any](gin.H{"recorded": true}))
}

// getVisitorOverview godoc
// @Summary Visitor totals
// @Description Lifetime and today's visit counts (admin only)
// @Tags visitors
// @Produce json
// @Success 200 {object} dto.Envelope[dto.VisitorOverviewResponse]
// @Failure 403 {object} dto.Envelope[any]
// @Security BearerAuth
// @Router /visitors/overview [get]
func (h *visitorHandler) getVisitorOverview(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	requestor, ok := middleware.GetRequestorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("Unauthorized"))
		return
	}

	overview, err := h.visitorService.VisitorOverview(c.Request.Context(), requestor)
	if err != nil {
		respondError(c, logger, err, "Failed to load visitor overview")
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToVisitorOverviewResponse(*overview)))
}

// getVisitorsByDay godoc
// @Summary Daily visitor series
// @Description Zero-filled visits-per-day series for the trailing window (admin only)
// @Tags visitors
// @Produce json
// @Param days query int false "Window length in days" default(7)
// @Success 200 {object} dto.Envelope[[]dto.VisitorPointResponse]
// @Failure 403 {object} dto.Envelope[any]
// @Security BearerAuth
// @Router /visitors/daily [get]
func (h *visitorHandler) getVisitorsByDay(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	requestor, ok := middleware.GetRequestorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("Unauthorized"))
		return
	}

	days := intQuery(c, "days", defaultSeriesDays)
	points, err := h.visitorService.VisitorsByDay(c.Request.Context(), requestor, days)
	if err != nil {
		respondError(c, logger, err, "Failed to load visitor series")
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToVisitorPointResponses(points)))
}

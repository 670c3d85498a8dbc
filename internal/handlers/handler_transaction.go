package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/bazarkas/cashflow_app/internal/core/ports/services"
	"github.com/bazarkas/cashflow_app/internal/dto"
	"github.com/bazarkas/cashflow_app/internal/middleware"
)

// transactionHandler handles HTTP requests related to transactions.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

// newTransactionHandler creates a new transactionHandler.
func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{transactionService: ts}
}

// RegisterTransactionRoutes registers routes related to transactions.
func RegisterTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(transactionService)

	transactions := rg.Group("/transactions")
	{
		transactions.GET("", h.listTransactions)
		transactions.GET("/stats", h.getTransactionStats)
		transactions.GET("/:id", h.getTransactionByID)
		transactions.POST("", h.createTransaction)
		transactions.PATCH("/:id", h.updateTransaction)
		transactions.DELETE("/:id", h.deleteTransaction)
	}
	rg.GET("/tenants/:id/transactions", h.listTenantTransactions)
}

// listTransactions godoc
// @Summary List transactions
// @Description Runs the filtered, sorted, paginated transaction search (admin only)
// @Tags transactions
// @Produce json
// @Param tenantId query string false "Filter by tenant"
// @Param type query string false "Filter by type" Enums(INCOME, EXPENSE)
// @Param search query string false "Match tenant business name, owner name or email"
// @Param noteSearch query string false "Match transaction note"
// @Param dateFrom query string false "Inclusive lower bound (YYYY-MM-DD)"
// @Param dateTo query string false "Inclusive upper bound (YYYY-MM-DD)"
// @Param page query int false "Page number (1-based)"
// @Param pageSize query int false "Rows per page"
// @Param sortBy query string false "Sort axis" Enums(date, amount)
// @Param sortDir query string false "Sort direction" Enums(asc, desc)
// @Success 200 {object} dto.Envelope[[]dto.TransactionResponse]
// @Failure 400 {object} dto.Envelope[any]
// @Failure 403 {object} dto.Envelope[any]
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ListTransactionsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Warn("Failed to bind transaction list query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.FailPaged("Invalid query parameters: "+err.Error()))
		return
	}

	requestor, ok := middleware.GetRequestorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.FailPaged("Unauthorized"))
		return
	}

	rows, total, err := h.transactionService.ListTransactions(c.Request.Context(), requestor, req.ToFilter())
	if err != nil {
		respondError(c, logger, err, "Failed to list transactions")
		return
	}

	c.JSON(http.StatusOK, dto.Paged(dto.ToTransactionResponses(rows), total))
}

// getTransactionStats godoc
// @Summary Aggregate transaction stats
// @Description Aggregates every transaction matching the filter, pagination ignored (admin only)
// @Tags transactions
// @Produce json
// @Success 200 {object} dto.Envelope[dto.TransactionStatsResponse]
// @Failure 403 {object} dto.Envelope[any]
// @Security BearerAuth
// @Router /transactions/stats [get]
func (h *transactionHandler) getTransactionStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ListTransactionsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Warn("Failed to bind transaction stats query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid query parameters: "+err.Error()))
		return
	}

	requestor, ok := middleware.GetRequestorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("Unauthorized"))
		return
	}

	stats, err := h.transactionService.GetTransactionStats(c.Request.Context(), requestor, req.ToFilter())
	if err != nil {
		respondError(c, logger, err, "Failed to aggregate transactions")
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToTransactionStatsResponse(stats)))
}

// getTransactionByID godoc
// @Summary Get transaction detail
// @Description Retrieves one transaction with its line items and tenant identity (admin only)
// @Tags transactions
// @Produce json
// @Param id path int true "Transaction ID"
// @Success 200 {object} dto.Envelope[dto.TransactionDetailResponse]
// @Failure 404 {object} dto.Envelope[any]
// @Security BearerAuth
// @Router /transactions/{id} [get]
func (h *transactionHandler) getTransactionByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid transaction ID"))
		return
	}

	requestor, ok := middleware.GetRequestorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("Unauthorized"))
		return
	}

	detail, err := h.transactionService.GetTransactionByID(c.Request.Context(), requestor, id)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve transaction")
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToTransactionDetailResponse(detail)))
}

// listTenantTransactions godoc
// @Summary List one tenant's transactions
// @Description Tenants can read their own history; admins can read anyone's
// @Tags transactions
// @Produce json
// @Param id path string true "Tenant ID"
// @Success 200 {object} dto.Envelope[[]dto.TransactionResponse]
// @Failure 403 {object} dto.Envelope[any]
// @Security BearerAuth
// @Router /tenants/{id}/transactions [get]
func (h *transactionHandler) listTenantTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	requestor, ok := middleware.GetRequestorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("Unauthorized"))
		return
	}

	txns, err := h.transactionService.ListTenantTransactions(c.Request.Context(), requestor, c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to list transactions")
		return
	}

	responses := make([]dto.TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = dto.ToTransactionResponse(&txns[i])
	}
	c.JSON(http.StatusOK, dto.OK(responses))
}

// createTransaction godoc
// @Summary Record a transaction
// @Description Records a new transaction with line items for the calling tenant
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.Envelope[dto.TransactionResponse]
// @Failure 400 {object} dto.Envelope[any]
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind transaction create request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid request format: "+err.Error()))
		return
	}

	requestor, ok := middleware.GetRequestorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("Unauthorized"))
		return
	}

	txn, err := h.transactionService.CreateTransaction(c.Request.Context(), requestor, req)
	if err != nil {
		respondError(c, logger, err, "Failed to record transaction")
		return
	}

	logger.Info("Transaction recorded", slog.Int64("transaction_id", txn.ID))
	c.JSON(http.StatusCreated, dto.OK(dto.ToTransactionResponse(txn)))
}

// updateTransaction godoc
// @Summary Correct a transaction
// @Description Applies an admin correction to an existing transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path int true "Transaction ID"
// @Param transaction body dto.UpdateTransactionRequest true "Fields to change"
// @Success 200 {object} dto.Envelope[dto.TransactionDetailResponse]
// @Failure 404 {object} dto.Envelope[any]
// @Security BearerAuth
// @Router /transactions/{id} [patch]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid transaction ID"))
		return
	}

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind transaction update request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid request format: "+err.Error()))
		return
	}

	requestor, ok := middleware.GetRequestorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("Unauthorized"))
		return
	}

	detail, err := h.transactionService.UpdateTransaction(c.Request.Context(), requestor, id, req)
	if err != nil {
		respondError(c, logger, err, "Failed to update transaction")
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToTransactionDetailResponse(detail)))
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Description Soft-deletes a transaction; it disappears from every listing and aggregate (admin only)
// @Tags transactions
// @Produce json
// @Param id path int true "Transaction ID"
// @Success 200 {object} dto.Envelope[any]
// @Failure 404 {object} dto.Envelope[any]
// @Security BearerAuth
// @Router /transactions/{id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid transaction ID"))
		return
	}

	requestor, ok := middleware.GetRequestorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("Unauthorized"))
		return
	}

	if err := h.transactionService.DeleteTransaction(c.Request.Context(), requestor, id); err != nil {
		respondError(c, logger, err, "Failed to delete transaction")
		return
	}

	c.JSON(http.StatusOK, dto.OK[any](gin.H{"deleted": true}))
}

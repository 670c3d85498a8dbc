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

// productHandler handles HTTP requests related to tenant catalogs.
type productHandler struct {
	productService portssvc.ProductSvcFacade
}

// newProductHandler creates a new productHandler.
func newProductHandler(ps portssvc.ProductSvcFacade) *productHandler {
	return &productHandler{productService: ps}
}

// registerProductRoutes registers routes related to catalogs.
func registerProductRoutes(rg *gin.RouterGroup, productService portssvc.ProductSvcFacade) {
	h := newProductHandler(productService)

	products := rg.Group("/products")
	{
		products.GET("", h.listProducts)
		products.GET("/:id", h.getProductByID)
		products.POST("", h.createProduct)
		products.PATCH("/:id", h.updateProduct)
		products.DELETE("/:id", h.deleteProduct)
	}
}

// listProducts godoc
// @Summary List products
// @Description Lists the calling tenant's catalog, or any tenant's via tenantId (admin only)
// @Tags products
// @Produce json
// @Param tenantId query string false "Tenant to list (admin only)"
// @Success 200 {object} dto.Envelope[[]dto.ProductResponse]
// @Failure 403 {object} dto.Envelope[any]
// @Security BearerAuth
// @Router /products [get]
func (h *productHandler) listProducts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	requestor, ok := middleware.GetRequestorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("Unauthorized"))
		return
	}

	products, err := h.productService.ListProducts(c.Request.Context(), requestor, c.Query("tenantId"))
	if err != nil {
		respondError(c, logger, err, "Failed to list products")
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToProductResponses(products)))
}

// getProductByID godoc
// @Summary Get a product
// @Description Retrieves one catalog entry; tenants can only read their own
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} dto.Envelope[dto.ProductResponse]
// @Failure 404 {object} dto.Envelope[any]
// @Security BearerAuth
// @Router /products/{id} [get]
func (h *productHandler) getProductByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid product ID"))
		return
	}

	requestor, ok := middleware.GetRequestorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("Unauthorized"))
		return
	}

	product, err := h.productService.GetProductByID(c.Request.Context(), requestor, id)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve product")
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToProductResponse(product)))
}

// createProduct godoc
// @Summary Create a product
// @Description Adds a catalog entry for the calling tenant
// @Tags products
// @Accept json
// @Produce json
// @Param product body dto.CreateProductRequest true "Product details"
// @Success 201 {object} dto.Envelope[dto.ProductResponse]
// @Failure 400 {object} dto.Envelope[any]
// @Security BearerAuth
// @Router /products [post]
func (h *productHandler) createProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind product create request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid request format: "+err.Error()))
		return
	}

	requestor, ok := middleware.GetRequestorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("Unauthorized"))
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), requestor, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create product")
		return
	}

	logger.Info("Product created", slog.Int64("product_id", product.ID))
	c.JSON(http.StatusCreated, dto.OK(dto.ToProductResponse(product)))
}

// updateProduct godoc
// @Summary Update a product
// @Description Edits a catalog entry owned by the calling tenant
// @Tags products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param product body dto.UpdateProductRequest true "Fields to change"
// @Success 200 {object} dto.Envelope[dto.ProductResponse]
// @Failure 404 {object} dto.Envelope[any]
// @Security BearerAuth
// @Router /products/{id} [patch]
func (h *productHandler) updateProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid product ID"))
		return
	}

	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind product update request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid request format: "+err.Error()))
		return
	}

	requestor, ok := middleware.GetRequestorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("Unauthorized"))
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), requestor, id, req)
	if err != nil {
		respondError(c, logger, err, "Failed to update product")
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToProductResponse(product)))
}

// deleteProduct godoc
// @Summary Delete a product
// @Description Soft-deletes a catalog entry; line items keep its name snapshot
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} dto.Envelope[any]
// @Failure 404 {object} dto.Envelope[any]
// @Security BearerAuth
// @Router /products/{id} [delete]
func (h *productHandler) deleteProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid product ID"))
		return
	}

	requestor, ok := middleware.GetRequestorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("Unauthorized"))
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), requestor, id); err != nil {
		respondError(c, logger, err, "Failed to delete product")
		return
	}

	c.JSON(http.StatusOK, dto.OK[any](gin.H{"deleted": true}))
}

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bazarkas/cashflow_app/internal/apperrors"
	"github.com/bazarkas/cashflow_app/internal/dto"
)

// respondError maps a service error onto the HTTP status and envelope the
// clients expect. Validation detail is surfaced; internal failures are
// replaced by the generic fallback message so store errors never leak.
func respondError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.Fail(err.Error()))
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.Fail("Unauthorized"))
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.Fail("Unauthorized"))
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.Fail("Not found"))
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, dto.Fail("Already exists"))
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Fail(fallback))
	}
}

package services

import (
	"context"
	"log/slog"

	"github.com/bazarkas/cashflow_app/internal/apperrors"
	"github.com/bazarkas/cashflow_app/internal/core/domain"
	"github.com/bazarkas/cashflow_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// RequireAdmin rejects callers that do not hold the admin role. Role
// checks live here rather than in route middleware so every entry point
// into an admin operation enforces them.
func (s *BaseService) RequireAdmin(ctx context.Context, requestor domain.Requestor) error {
	if requestor.IsAdmin() {
		return nil
	}
	s.LogDebug(ctx, "admin operation refused",
		slog.String("requestor_id", requestor.ID),
		slog.String("role", string(requestor.Role)))
	return apperrors.ErrForbidden
}

package services

import (
	portsrepo "github.com/bazarkas/cashflow_app/internal/core/ports/repositories"
	portssvc "github.com/bazarkas/cashflow_app/internal/core/ports/services"
	"github.com/bazarkas/cashflow_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Transaction = NewTransactionService(repos.TransactionRepo)
	container.Analytics = NewAnalyticsService(repos.AnalyticsRepo)
	container.Tenant = NewTenantService(repos.TenantRepo)
	container.Product = NewProductService(repos.ProductRepo)
	container.Visitor = NewVisitorService(repos.VisitorRepo)

	container.Token = NewTokenService(cfg)
	container.GoogleOAuthHandler = NewGoogleOAuthHandlerService(cfg)

	return container
}

// Compile-time checks that the implementations satisfy their facades.
var (
	_ portssvc.TransactionSvcFacade = (*transactionService)(nil)
	_ portssvc.AnalyticsSvcFacade   = (*analyticsService)(nil)
	_ portssvc.TenantSvcFacade      = (*tenantService)(nil)
	_ portssvc.ProductSvcFacade     = (*productService)(nil)
	_ portssvc.VisitorSvcFacade     = (*visitorService)(nil)
)

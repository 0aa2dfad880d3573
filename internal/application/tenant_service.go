package application

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"storepulse/internal/domain"
	"storepulse/internal/ports"
)

// TenantService exposes tenant directory operations.
type TenantService struct {
	tenants ports.TenantRepository
	logger  zerolog.Logger
}

// NewTenantService creates a new tenant service
func NewTenantService(tenants ports.TenantRepository, logger zerolog.Logger) *TenantService {
	return &TenantService{
		tenants: tenants,
		logger:  logger,
	}
}

// List returns every registered tenant. The route serving this is not
// tenant-scoped.
func (s *TenantService) List(ctx context.Context) ([]*domain.Tenant, error) {
	tenants, err := s.tenants.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	return tenants, nil
}

package api

import (
	"net/http"

	"github.com/rs/zerolog"

	"storepulse/internal/application"
)

// TenantHandler serves the tenant directory.
type TenantHandler struct {
	tenants *application.TenantService
	logger  zerolog.Logger
	devMode bool
}

// NewTenantHandler creates a new tenant handler
func NewTenantHandler(tenants *application.TenantService, logger zerolog.Logger, devMode bool) *TenantHandler {
	return &TenantHandler{
		tenants: tenants,
		logger:  logger,
		devMode: devMode,
	}
}

// List handles GET /tenants
func (h *TenantHandler) List(w http.ResponseWriter, r *http.Request) {
	tenants, err := h.tenants.List(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Tenant list query failed")
		writeError(w, http.StatusInternalServerError, "failed to list tenants", err, h.devMode)
		return
	}

	writeJSON(w, http.StatusOK, tenants)
}

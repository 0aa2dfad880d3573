package api

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"storepulse/internal/application"
	"storepulse/internal/domain"
	"storepulse/internal/infrastructure/metrics"
)

// SyncHandler serves the sync trigger endpoint.
type SyncHandler struct {
	sync    *application.SyncService
	logger  zerolog.Logger
	devMode bool
}

// NewSyncHandler creates a new sync handler
func NewSyncHandler(sync *application.SyncService, logger zerolog.Logger, devMode bool) *SyncHandler {
	return &SyncHandler{
		sync:    sync,
		logger:  logger,
		devMode: devMode,
	}
}

// Sync handles POST /shopify/sync
func (h *SyncHandler) Sync(w http.ResponseWriter, r *http.Request) {
	tenantID := domain.TenantIDFromContext(r.Context())

	err := h.sync.Sync(r.Context(), tenantID)
	switch {
	case errors.Is(err, domain.ErrSyncInProgress):
		metrics.RecordSync("locked")
		writeJSON(w, http.StatusConflict, map[string]string{"error": "a sync for this tenant is already running"})
		return
	case err != nil:
		metrics.RecordSync("failure")
		h.logger.Error().Err(err).Str("tenantId", tenantID).Msg("Sync failed")
		writeError(w, http.StatusInternalServerError, "Failed to sync data", err, h.devMode)
		return
	}

	metrics.RecordSync("success")
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Synced customers, products, orders, and order items successfully",
	})
}

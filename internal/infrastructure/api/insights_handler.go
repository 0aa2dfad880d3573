package api

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"storepulse/internal/application"
	"storepulse/internal/domain"
)

// InsightsHandler serves the read-side aggregation endpoints.
type InsightsHandler struct {
	insights *application.InsightsService
	logger   zerolog.Logger
	devMode  bool
}

// NewInsightsHandler creates a new insights handler
func NewInsightsHandler(insights *application.InsightsService, logger zerolog.Logger, devMode bool) *InsightsHandler {
	return &InsightsHandler{
		insights: insights,
		logger:   logger,
		devMode:  devMode,
	}
}

// Overview handles GET /insights/overview
func (h *InsightsHandler) Overview(w http.ResponseWriter, r *http.Request) {
	tenantID := domain.TenantIDFromContext(r.Context())

	overview, err := h.insights.Overview(r.Context(), tenantID)
	if err != nil {
		h.logger.Error().Err(err).Str("tenantId", tenantID).Msg("Overview query failed")
		writeError(w, http.StatusInternalServerError, "Failed to load overview", err, h.devMode)
		return
	}

	writeJSON(w, http.StatusOK, overview)
}

// Revenue handles GET /insights/revenue?start=...&end=...
func (h *InsightsHandler) Revenue(w http.ResponseWriter, r *http.Request) {
	tenantID := domain.TenantIDFromContext(r.Context())

	start, err := parseTimeParam(r.URL.Query().Get("start"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid start date"})
		return
	}
	end, err := parseTimeParam(r.URL.Query().Get("end"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid end date"})
		return
	}

	series, err := h.insights.Revenue(r.Context(), tenantID, start, end)
	if err != nil {
		h.logger.Error().Err(err).Str("tenantId", tenantID).Msg("Revenue query failed")
		writeError(w, http.StatusInternalServerError, "Failed to load revenue data", err, h.devMode)
		return
	}

	writeJSON(w, http.StatusOK, series)
}

// TopCustomers handles GET /insights/top-customers
func (h *InsightsHandler) TopCustomers(w http.ResponseWriter, r *http.Request) {
	tenantID := domain.TenantIDFromContext(r.Context())

	customers, err := h.insights.TopCustomers(r.Context(), tenantID)
	if err != nil {
		h.logger.Error().Err(err).Str("tenantId", tenantID).Msg("Top customers query failed")
		writeError(w, http.StatusInternalServerError, "Failed to load top customers", err, h.devMode)
		return
	}

	writeJSON(w, http.StatusOK, customers)
}

// TopProducts handles GET /insights/top-products
func (h *InsightsHandler) TopProducts(w http.ResponseWriter, r *http.Request) {
	tenantID := domain.TenantIDFromContext(r.Context())

	products, err := h.insights.TopProducts(r.Context(), tenantID)
	if err != nil {
		h.logger.Error().Err(err).Str("tenantId", tenantID).Msg("Top products query failed")
		writeError(w, http.StatusInternalServerError, "Failed to load top products", err, h.devMode)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// parseTimeParam accepts either a bare calendar date or a full RFC 3339
// timestamp. Empty values mean the bound is open.
func parseTimeParam(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

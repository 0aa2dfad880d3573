package shopify

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"storepulse/internal/domain"
	"storepulse/internal/ports"
)

// ConfigCredentialsResolver resolves store credentials from configuration. A
// per-tenant entry wins; otherwise the process-wide default applies. Tenants
// without either cannot sync until configured.
type ConfigCredentialsResolver struct {
	perTenant map[string]domain.StoreCredentials
	fallback  domain.StoreCredentials
	logger    zerolog.Logger
}

// NewConfigCredentialsResolver creates a resolver from a per-tenant map and
// a process default.
func NewConfigCredentialsResolver(
	perTenant map[string]domain.StoreCredentials,
	fallback domain.StoreCredentials,
	logger zerolog.Logger,
) ports.CredentialsResolver {
	if perTenant == nil {
		perTenant = map[string]domain.StoreCredentials{}
	}
	return &ConfigCredentialsResolver{
		perTenant: perTenant,
		fallback:  fallback,
		logger:    logger,
	}
}

// Resolve returns the tenant's store credentials.
func (r *ConfigCredentialsResolver) Resolve(_ context.Context, tenantID string) (domain.StoreCredentials, error) {
	if creds, ok := r.perTenant[tenantID]; ok {
		return creds, nil
	}
	if r.fallback.Domain != "" && r.fallback.AccessToken != "" {
		r.logger.Debug().Str("tenantId", tenantID).Msg("No tenant-specific store credentials, using default")
		return r.fallback, nil
	}
	return domain.StoreCredentials{}, domain.ErrStoreNotConfigured
}

// ParseTenantStores parses the SHOPIFY_TENANT_STORES environment value, a
// comma-separated list of tenantID=shopDomain:accessToken entries. Malformed
// entries are skipped.
func ParseTenantStores(value string) map[string]domain.StoreCredentials {
	out := map[string]domain.StoreCredentials{}
	for _, entry := range strings.Split(value, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		tenantID, rest, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		shop, token, ok := strings.Cut(rest, ":")
		if !ok || tenantID == "" || shop == "" || token == "" {
			continue
		}
		out[tenantID] = domain.StoreCredentials{Domain: shop, AccessToken: token}
	}
	return out
}

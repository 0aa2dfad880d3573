package domain

import "context"

// contextKey is a private type for context keys to avoid collisions
type contextKey string

const tenantIDKey contextKey = "tenant_id"

// WithTenantID returns a context carrying the authenticated tenant ID.
func WithTenantID(ctx context.Context, tenantID string) context.Context {
	return context.WithValue(ctx, tenantIDKey, tenantID)
}

// TenantIDFromContext extracts the tenant ID set by the auth middleware.
// Returns "" when the request was not tenant-scoped.
func TenantIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(tenantIDKey).(string); ok {
		return v
	}
	return ""
}

package ports

import (
	"context"

	shopify "github.com/bold-commerce/go-shopify/v4"

	"storepulse/internal/domain"
)

// StoreClient defines the read-only Shopify Admin API surface the sync
// pipeline consumes. Implementations fetch full collections for one shop;
// any transport or non-2xx failure is returned as-is and aborts the caller.
type StoreClient interface {
	// ListCustomers fetches every customer of the shop.
	ListCustomers(ctx context.Context, shop string, accessToken string) ([]shopify.Customer, error)

	// ListProducts fetches every product of the shop.
	ListProducts(ctx context.Context, shop string, accessToken string) ([]shopify.Product, error)

	// ListOrders fetches every order of the shop, including cancelled and
	// closed ones (status=any).
	ListOrders(ctx context.Context, shop string, accessToken string) ([]shopify.Order, error)
}

// CredentialsResolver resolves the Shopify credentials a tenant's store is
// materialized from on first sync. A resolver may fall back to a
// process-wide default; it returns domain.ErrStoreNotConfigured when neither
// a per-tenant entry nor a default exists.
type CredentialsResolver interface {
	Resolve(ctx context.Context, tenantID string) (domain.StoreCredentials, error)
}

package ports

import (
	"context"
	"time"

	"storepulse/internal/domain"
)

// TenantRepository defines the interface for tenant persistence
type TenantRepository interface {
	Create(ctx context.Context, tenant *domain.Tenant) error

	// GetByEmail returns (nil, nil) when no tenant has the email.
	GetByEmail(ctx context.Context, email string) (*domain.Tenant, error)

	// GetByID returns (nil, nil) when the tenant does not exist.
	GetByID(ctx context.Context, id string) (*domain.Tenant, error)

	List(ctx context.Context) ([]*domain.Tenant, error)
}

// StoreRepository defines the interface for store persistence
type StoreRepository interface {
	// FirstByTenant returns the tenant's store, first found, or (nil, nil).
	FirstByTenant(ctx context.Context, tenantID string) (*domain.Store, error)

	Create(ctx context.Context, store *domain.Store) error
}

// CommerceRepository defines the interface for the mirrored commerce
// entities. Every upsert is keyed by the stable external identifier and is
// individually atomic; Upsert* returns the stored row including its local ID.
type CommerceRepository interface {
	UpsertCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)

	// GetCustomerByShopifyID returns (nil, nil) when unknown.
	GetCustomerByShopifyID(ctx context.Context, shopifyID string) (*domain.Customer, error)

	UpsertProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)

	// GetProductByShopifyID returns (nil, nil) when unknown.
	GetProductByShopifyID(ctx context.Context, shopifyID string) (*domain.Product, error)

	UpsertOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)

	// UpsertOrderItem is keyed by the (OrderID, ProductID) pair.
	UpsertOrderItem(ctx context.Context, item *domain.OrderItem) error
}

// InsightsReader defines the read-side interface the aggregation engine
// queries. All reads are tenant-scoped.
type InsightsReader interface {
	CountCustomers(ctx context.Context, tenantID string) (int64, error)
	CountProducts(ctx context.Context, tenantID string) (int64, error)
	CountOrders(ctx context.Context, tenantID string) (int64, error)

	// SumOrderAmounts returns 0 when the tenant has no orders.
	SumOrderAmounts(ctx context.Context, tenantID string) (float64, error)

	// OrdersInRange filters by order CreatedAt; nil bounds are open ends,
	// both bounds inclusive.
	OrdersInRange(ctx context.Context, tenantID string, start, end *time.Time) ([]*domain.Order, error)

	ListCustomers(ctx context.Context, tenantID string) ([]*domain.Customer, error)
	ListProducts(ctx context.Context, tenantID string) ([]*domain.Product, error)
	ListOrders(ctx context.Context, tenantID string) ([]*domain.Order, error)
	ListOrderItems(ctx context.Context, tenantID string) ([]*domain.OrderItem, error)
}

package domain

import "time"

// Store is a tenant's connection to one Shopify shop. The access token is
// resolved per tenant when the store is first materialized; there is at most
// one store per tenant.
type Store struct {
	ID          string    `json:"id"`
	TenantID    string    `json:"tenant_id"`
	Name        string    `json:"name"`
	Domain      string    `json:"domain"`
	AccessToken string    `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// StoreCredentials are the Shopify shop domain and Admin API access token
// used to materialize a tenant's store on first sync.
type StoreCredentials struct {
	Domain      string
	AccessToken string
}

// Customer mirrors a Shopify customer. ShopifyID is the upsert key.
type Customer struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id"`
	StoreID   string    `json:"store_id"`
	ShopifyID string    `json:"shopify_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	Country   string    `json:"country"`
	Zip       string    `json:"zip"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Product mirrors a Shopify product. Price comes from the first listed
// variant only; multi-variant products lose price granularity.
type Product struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id"`
	StoreID   string    `json:"store_id"`
	ShopifyID string    `json:"shopify_id"`
	Title     string    `json:"title"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Order mirrors a Shopify order. CreatedAt is the transaction time reported
// by Shopify, not the sync time; revenue bucketing depends on that.
// CustomerID is empty for guest orders or when the customer is not yet known
// locally.
type Order struct {
	ID         string    `json:"id"`
	TenantID   string    `json:"tenant_id"`
	StoreID    string    `json:"store_id"`
	ShopifyID  string    `json:"shopify_id"`
	CustomerID string    `json:"customer_id,omitempty"`
	Amount     float64   `json:"amount"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// OrderItem links one order to one product. The (OrderID, ProductID) pair is
// the upsert key. Price is the unit price at time of sale, not the current
// product price.
type OrderItem struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id"`
	OrderID   string    `json:"order_id"`
	ProductID string    `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

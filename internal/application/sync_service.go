package application

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	goshopify "github.com/bold-commerce/go-shopify/v4"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"storepulse/internal/domain"
	"storepulse/internal/ports"
)

// SyncService is the reconciliation pipeline: it pulls the full customer,
// product and order collections from Shopify and mirrors them into the
// tenant's local entities via idempotent upserts.
//
// The upsert phases run in a fixed order (customers, products, then orders
// with their line items) because later phases look up rows created by
// earlier ones. The three fetches have no such dependency and run
// concurrently. There is no cross-phase transaction; a failure partway
// through leaves a partially-synced state that the next run repairs, since
// every upsert is keyed by a stable external identifier.
type SyncService struct {
	stores      ports.StoreRepository
	commerce    ports.CommerceRepository
	client      ports.StoreClient
	credentials ports.CredentialsResolver
	locker      ports.SyncLocker
	logger      zerolog.Logger
}

// NewSyncService creates a new sync service
func NewSyncService(
	stores ports.StoreRepository,
	commerce ports.CommerceRepository,
	client ports.StoreClient,
	credentials ports.CredentialsResolver,
	locker ports.SyncLocker,
	logger zerolog.Logger,
) *SyncService {
	return &SyncService{
		stores:      stores,
		commerce:    commerce,
		client:      client,
		credentials: credentials,
		locker:      locker,
		logger:      logger,
	}
}

// Sync mirrors the tenant's shop into local storage. Concurrent calls for
// the same tenant are rejected with domain.ErrSyncInProgress.
func (s *SyncService) Sync(ctx context.Context, tenantID string) error {
	acquired, err := s.locker.Acquire(ctx, tenantID)
	if err != nil {
		return fmt.Errorf("failed to acquire sync lock: %w", err)
	}
	if !acquired {
		return domain.ErrSyncInProgress
	}
	defer func() {
		if err := s.locker.Release(context.WithoutCancel(ctx), tenantID); err != nil {
			s.logger.Warn().Err(err).Str("tenantId", tenantID).Msg("Failed to release sync lock")
		}
	}()

	store, err := s.resolveStore(ctx, tenantID)
	if err != nil {
		return err
	}

	var (
		customers []goshopify.Customer
		products  []goshopify.Product
		orders    []goshopify.Order
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		customers, err = s.client.ListCustomers(gctx, store.Domain, store.AccessToken)
		return err
	})
	g.Go(func() error {
		var err error
		products, err = s.client.ListProducts(gctx, store.Domain, store.AccessToken)
		return err
	})
	g.Go(func() error {
		var err error
		orders, err = s.client.ListOrders(gctx, store.Domain, store.AccessToken)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error().Err(err).Str("tenantId", tenantID).Str("shop", store.Domain).Msg("Failed to fetch shop data")
		return fmt.Errorf("failed to fetch shop data: %w", err)
	}

	if err := s.syncCustomers(ctx, store, customers); err != nil {
		return err
	}
	if err := s.syncProducts(ctx, store, products); err != nil {
		return err
	}
	if err := s.syncOrders(ctx, store, orders); err != nil {
		return err
	}

	s.logger.Info().
		Str("tenantId", tenantID).
		Str("shop", store.Domain).
		Int("customers", len(customers)).
		Int("products", len(products)).
		Int("orders", len(orders)).
		Msg("Sync completed")

	return nil
}

// resolveStore returns the tenant's store, materializing it from the
// tenant's configured credentials the first time. First found wins; at most
// one store per tenant is supported.
func (s *SyncService) resolveStore(ctx context.Context, tenantID string) (*domain.Store, error) {
	store, err := s.stores.FirstByTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve store: %w", err)
	}
	if store != nil {
		return store, nil
	}

	creds, err := s.credentials.Resolve(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	store = &domain.Store{
		TenantID:    tenantID,
		Name:        creds.Domain,
		Domain:      creds.Domain,
		AccessToken: creds.AccessToken,
	}
	if err := s.stores.Create(ctx, store); err != nil {
		return nil, fmt.Errorf("failed to create store: %w", err)
	}

	s.logger.Info().Str("tenantId", tenantID).Str("shop", store.Domain).Msg("Materialized store for tenant")
	return store, nil
}

func (s *SyncService) syncCustomers(ctx context.Context, store *domain.Store, customers []goshopify.Customer) error {
	for i := range customers {
		c := &customers[i]
		customer := &domain.Customer{
			TenantID:  store.TenantID,
			StoreID:   store.ID,
			ShopifyID: strconv.FormatUint(c.Id, 10),
			Name:      strings.TrimSpace(c.FirstName + " " + c.LastName),
			Email:     c.Email,
			Phone:     c.Phone,
		}
		// Address fields come from the default address only; no fallback to
		// other addresses.
		if c.DefaultAddress != nil {
			customer.City = c.DefaultAddress.City
			customer.State = c.DefaultAddress.Province
			customer.Country = c.DefaultAddress.Country
			customer.Zip = c.DefaultAddress.Zip
		}
		if _, err := s.commerce.UpsertCustomer(ctx, customer); err != nil {
			return fmt.Errorf("failed to upsert customer %s: %w", customer.ShopifyID, err)
		}
	}

	s.logger.Info().Str("tenantId", store.TenantID).Str("step", "customers").Int("records", len(customers)).Msg("Sync step completed")
	return nil
}

func (s *SyncService) syncProducts(ctx context.Context, store *domain.Store, products []goshopify.Product) error {
	for i := range products {
		p := &products[i]
		product := &domain.Product{
			TenantID:  store.TenantID,
			StoreID:   store.ID,
			ShopifyID: strconv.FormatUint(p.Id, 10),
			Title:     p.Title,
			Price:     firstVariantPrice(p),
		}
		if _, err := s.commerce.UpsertProduct(ctx, product); err != nil {
			return fmt.Errorf("failed to upsert product %s: %w", product.ShopifyID, err)
		}
	}

	s.logger.Info().Str("tenantId", store.TenantID).Str("step", "products").Int("records", len(products)).Msg("Sync step completed")
	return nil
}

func (s *SyncService) syncOrders(ctx context.Context, store *domain.Store, orders []goshopify.Order) error {
	items := 0
	dropped := 0
	for i := range orders {
		o := &orders[i]

		// A missing local customer (guest checkout, or a customer deleted
		// upstream) downgrades to an unlinked order, not a failed sync.
		customerID := ""
		if o.Customer != nil {
			customer, err := s.commerce.GetCustomerByShopifyID(ctx, strconv.FormatUint(o.Customer.Id, 10))
			if err != nil {
				return fmt.Errorf("failed to look up order customer: %w", err)
			}
			if customer != nil {
				customerID = customer.ID
			}
		}

		order := &domain.Order{
			TenantID:   store.TenantID,
			StoreID:    store.ID,
			ShopifyID:  strconv.FormatUint(o.Id, 10),
			CustomerID: customerID,
			Amount:     decimalValue(o.TotalPrice),
			CreatedAt:  orderCreatedAt(o),
		}
		saved, err := s.commerce.UpsertOrder(ctx, order)
		if err != nil {
			return fmt.Errorf("failed to upsert order %s: %w", order.ShopifyID, err)
		}

		for j := range o.LineItems {
			li := &o.LineItems[j]
			product, err := s.commerce.GetProductByShopifyID(ctx, strconv.FormatUint(li.ProductId, 10))
			if err != nil {
				return fmt.Errorf("failed to look up line item product: %w", err)
			}
			if product == nil {
				// Line items for products we have never seen are dropped.
				dropped++
				continue
			}
			item := &domain.OrderItem{
				TenantID:  store.TenantID,
				OrderID:   saved.ID,
				ProductID: product.ID,
				Quantity:  li.Quantity,
				Price:     decimalValue(li.Price),
			}
			if err := s.commerce.UpsertOrderItem(ctx, item); err != nil {
				return fmt.Errorf("failed to upsert order item: %w", err)
			}
			items++
		}
	}

	s.logger.Info().
		Str("tenantId", store.TenantID).
		Str("step", "orders").
		Int("records", len(orders)).
		Int("lineItems", items).
		Int("droppedLineItems", dropped).
		Msg("Sync step completed")
	return nil
}

// firstVariantPrice takes the price of the first listed variant only,
// defaulting to 0 when the product has no variants.
func firstVariantPrice(p *goshopify.Product) float64 {
	if len(p.Variants) == 0 {
		return 0
	}
	return decimalValue(p.Variants[0].Price)
}

func decimalValue(d *decimal.Decimal) float64 {
	if d == nil {
		return 0
	}
	return d.InexactFloat64()
}

// orderCreatedAt is the transaction time reported by Shopify, never the time
// the sync ran. Revenue-by-date bucketing depends on this.
func orderCreatedAt(o *goshopify.Order) time.Time {
	if o.CreatedAt == nil {
		return time.Time{}
	}
	return *o.CreatedAt
}

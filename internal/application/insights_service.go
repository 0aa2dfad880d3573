package application

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"storepulse/internal/domain"
	"storepulse/internal/ports"
)

const topListSize = 5

// InsightsService computes the dashboard aggregates from the mirrored data.
// It only reads; all writes go through the sync pipeline.
type InsightsService struct {
	reader ports.InsightsReader
	logger zerolog.Logger
}

// NewInsightsService creates a new insights service
func NewInsightsService(reader ports.InsightsReader, logger zerolog.Logger) *InsightsService {
	return &InsightsService{
		reader: reader,
		logger: logger,
	}
}

// Overview returns the per-entity counts and the total order revenue for the
// tenant. Revenue is 0, never null, when the tenant has no orders.
func (s *InsightsService) Overview(ctx context.Context, tenantID string) (*domain.Overview, error) {
	customers, err := s.reader.CountCustomers(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to count customers: %w", err)
	}
	products, err := s.reader.CountProducts(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}
	orders, err := s.reader.CountOrders(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}
	revenue, err := s.reader.SumOrderAmounts(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum order amounts: %w", err)
	}

	return &domain.Overview{
		TotalCustomers: customers,
		TotalOrders:    orders,
		TotalRevenue:   revenue,
		TotalProducts:  products,
	}, nil
}

// Revenue buckets the tenant's orders by UTC calendar date and sums amounts
// per date. Bounds are inclusive; nil bounds are open ends. Dates with no
// orders are absent from the result. The series is sorted ascending by date.
func (s *InsightsService) Revenue(ctx context.Context, tenantID string, start, end *time.Time) ([]domain.RevenuePoint, error) {
	orders, err := s.reader.OrdersInRange(ctx, tenantID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}

	byDate := make(map[string]float64)
	for _, o := range orders {
		key := o.CreatedAt.UTC().Format("2006-01-02")
		byDate[key] += o.Amount
	}

	series := make([]domain.RevenuePoint, 0, len(byDate))
	for date, revenue := range byDate {
		series = append(series, domain.RevenuePoint{Date: date, Revenue: revenue})
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Date < series[j].Date })

	return series, nil
}

// TopCustomers ranks customers by the sum of their orders' amounts,
// descending, ties stable in query order. Customers with no spend are
// excluded entirely. At most 5 entries.
func (s *InsightsService) TopCustomers(ctx context.Context, tenantID string) ([]domain.TopCustomer, error) {
	customers, err := s.reader.ListCustomers(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load customers: %w", err)
	}
	orders, err := s.reader.ListOrders(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}

	spentBy := make(map[string]float64)
	for _, o := range orders {
		if o.CustomerID != "" {
			spentBy[o.CustomerID] += o.Amount
		}
	}

	ranked := make([]domain.TopCustomer, 0, len(customers))
	for _, c := range customers {
		spent := spentBy[c.ID]
		if spent <= 0 {
			continue
		}
		ranked = append(ranked, domain.TopCustomer{
			ID:         c.ID,
			Name:       c.Name,
			Email:      c.Email,
			TotalSpent: spent,
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].TotalSpent > ranked[j].TotalSpent })

	return truncate(ranked, topListSize), nil
}

// TopProducts ranks products by units sold, descending (note: sold, not
// revenue), ties stable in query order. Products with nothing sold are
// excluded. At most 5 entries.
func (s *InsightsService) TopProducts(ctx context.Context, tenantID string) ([]domain.TopProduct, error) {
	products, err := s.reader.ListProducts(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	items, err := s.reader.ListOrderItems(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load order items: %w", err)
	}

	type tally struct {
		sold    int
		revenue float64
	}
	tallies := make(map[string]tally)
	for _, it := range items {
		t := tallies[it.ProductID]
		t.sold += it.Quantity
		// Revenue uses the unit price captured at time of sale, not the
		// current product price.
		t.revenue += float64(it.Quantity) * it.Price
		tallies[it.ProductID] = t
	}

	ranked := make([]domain.TopProduct, 0, len(products))
	for _, p := range products {
		t := tallies[p.ID]
		if t.sold <= 0 {
			continue
		}
		ranked = append(ranked, domain.TopProduct{
			ID:      p.ID,
			Title:   p.Title,
			Price:   p.Price,
			Sold:    t.sold,
			Revenue: t.revenue,
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Sold > ranked[j].Sold })

	return truncate(ranked, topListSize), nil
}

func truncate[T any](list []T, n int) []T {
	if len(list) > n {
		return list[:n]
	}
	return list
}

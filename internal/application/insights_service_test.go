package application

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storepulse/internal/domain"
)

type fakeInsightsReader struct {
	customers []*domain.Customer
	products  []*domain.Product
	orders    []*domain.Order
	items     []*domain.OrderItem
}

func (r *fakeInsightsReader) CountCustomers(_ context.Context, _ string) (int64, error) {
	return int64(len(r.customers)), nil
}

func (r *fakeInsightsReader) CountProducts(_ context.Context, _ string) (int64, error) {
	return int64(len(r.products)), nil
}

func (r *fakeInsightsReader) CountOrders(_ context.Context, _ string) (int64, error) {
	return int64(len(r.orders)), nil
}

func (r *fakeInsightsReader) SumOrderAmounts(_ context.Context, _ string) (float64, error) {
	total := 0.0
	for _, o := range r.orders {
		total += o.Amount
	}
	return total, nil
}

func (r *fakeInsightsReader) OrdersInRange(_ context.Context, _ string, start, end *time.Time) ([]*domain.Order, error) {
	var out []*domain.Order
	for _, o := range r.orders {
		if start != nil && o.CreatedAt.Before(*start) {
			continue
		}
		if end != nil && o.CreatedAt.After(*end) {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

func (r *fakeInsightsReader) ListCustomers(_ context.Context, _ string) ([]*domain.Customer, error) {
	return r.customers, nil
}

func (r *fakeInsightsReader) ListProducts(_ context.Context, _ string) ([]*domain.Product, error) {
	return r.products, nil
}

func (r *fakeInsightsReader) ListOrders(_ context.Context, _ string) ([]*domain.Order, error) {
	return r.orders, nil
}

func (r *fakeInsightsReader) ListOrderItems(_ context.Context, _ string) ([]*domain.OrderItem, error) {
	return r.items, nil
}

func orderAt(id string, day string, amount float64, customerID string) *domain.Order {
	created, err := time.Parse("2006-01-02T15:04:05Z07:00", day)
	if err != nil {
		panic(err)
	}
	return &domain.Order{ID: id, Amount: amount, CreatedAt: created, CustomerID: customerID}
}

func TestOverviewCountsAndRevenue(t *testing.T) {
	reader := &fakeInsightsReader{
		customers: []*domain.Customer{{ID: "c1"}, {ID: "c2"}},
		products:  []*domain.Product{{ID: "p1"}},
		orders: []*domain.Order{
			orderAt("o1", "2024-01-01T09:00:00Z", 100, "c1"),
			orderAt("o2", "2024-01-01T17:30:00Z", 50, "c2"),
			orderAt("o3", "2024-01-02T08:00:00Z", 25, "c1"),
		},
	}
	svc := NewInsightsService(reader, testLogger())

	overview, err := svc.Overview(context.Background(), "tenant-1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), overview.TotalCustomers)
	assert.Equal(t, int64(3), overview.TotalOrders)
	assert.Equal(t, int64(1), overview.TotalProducts)
	assert.Equal(t, 175.0, overview.TotalRevenue)
}

func TestOverviewEmptyTenant(t *testing.T) {
	svc := NewInsightsService(&fakeInsightsReader{}, testLogger())

	overview, err := svc.Overview(context.Background(), "tenant-1")
	require.NoError(t, err)
	assert.Equal(t, float64(0), overview.TotalRevenue)
	assert.Equal(t, int64(0), overview.TotalOrders)
}

func TestRevenueBucketsByCalendarDate(t *testing.T) {
	reader := &fakeInsightsReader{orders: []*domain.Order{
		orderAt("o1", "2024-01-01T09:00:00Z", 100, ""),
		orderAt("o2", "2024-01-01T17:30:00Z", 50, ""),
		orderAt("o3", "2024-01-02T08:00:00Z", 25, ""),
	}}
	svc := NewInsightsService(reader, testLogger())

	series, err := svc.Revenue(context.Background(), "tenant-1", nil, nil)
	require.NoError(t, err)
	require.Len(t, series, 2)
	assert.Equal(t, domain.RevenuePoint{Date: "2024-01-01", Revenue: 150}, series[0])
	assert.Equal(t, domain.RevenuePoint{Date: "2024-01-02", Revenue: 25}, series[1])
}

func TestRevenueSeriesSortedAscending(t *testing.T) {
	reader := &fakeInsightsReader{orders: []*domain.Order{
		orderAt("o1", "2024-03-10T00:00:00Z", 1, ""),
		orderAt("o2", "2024-01-05T00:00:00Z", 2, ""),
		orderAt("o3", "2024-02-20T00:00:00Z", 3, ""),
	}}
	svc := NewInsightsService(reader, testLogger())

	series, err := svc.Revenue(context.Background(), "tenant-1", nil, nil)
	require.NoError(t, err)
	require.Len(t, series, 3)
	assert.Equal(t, "2024-01-05", series[0].Date)
	assert.Equal(t, "2024-02-20", series[1].Date)
	assert.Equal(t, "2024-03-10", series[2].Date)
}

func TestRevenueRespectsRangeBounds(t *testing.T) {
	reader := &fakeInsightsReader{orders: []*domain.Order{
		orderAt("o1", "2024-01-01T00:00:00Z", 100, ""),
		orderAt("o2", "2024-01-15T00:00:00Z", 50, ""),
		orderAt("o3", "2024-02-01T00:00:00Z", 25, ""),
	}}
	svc := NewInsightsService(reader, testLogger())

	start := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)
	series, err := svc.Revenue(context.Background(), "tenant-1", &start, &end)
	require.NoError(t, err)
	require.Len(t, series, 1)
	assert.Equal(t, "2024-01-15", series[0].Date)
}

func TestRevenueTotalMatchesOverview(t *testing.T) {
	reader := &fakeInsightsReader{orders: []*domain.Order{
		orderAt("o1", "2024-01-01T09:00:00Z", 100, ""),
		orderAt("o2", "2024-01-01T17:30:00Z", 50, ""),
		orderAt("o3", "2024-01-02T08:00:00Z", 25, ""),
	}}
	svc := NewInsightsService(reader, testLogger())

	overview, err := svc.Overview(context.Background(), "tenant-1")
	require.NoError(t, err)
	series, err := svc.Revenue(context.Background(), "tenant-1", nil, nil)
	require.NoError(t, err)

	total := 0.0
	for _, p := range series {
		total += p.Revenue
	}
	assert.Equal(t, overview.TotalRevenue, total)
}

func TestTopCustomersRankedBySpend(t *testing.T) {
	reader := &fakeInsightsReader{
		customers: []*domain.Customer{
			{ID: "c1", Name: "Ada", Email: "ada@example.com"},
			{ID: "c2", Name: "Grace", Email: "grace@example.com"},
			{ID: "c3", Name: "Idle", Email: "idle@example.com"},
		},
		orders: []*domain.Order{
			orderAt("o1", "2024-01-01T00:00:00Z", 40, "c1"),
			orderAt("o2", "2024-01-02T00:00:00Z", 100, "c2"),
			orderAt("o3", "2024-01-03T00:00:00Z", 20, "c1"),
			orderAt("o4", "2024-01-04T00:00:00Z", 30, ""),
		},
	}
	svc := NewInsightsService(reader, testLogger())

	top, err := svc.TopCustomers(context.Background(), "tenant-1")
	require.NoError(t, err)
	require.Len(t, top, 2, "customers with no spend are excluded")
	assert.Equal(t, "Grace", top[0].Name)
	assert.Equal(t, 100.0, top[0].TotalSpent)
	assert.Equal(t, "Ada", top[1].Name)
	assert.Equal(t, 60.0, top[1].TotalSpent)
}

func TestTopCustomersCapsAtFive(t *testing.T) {
	reader := &fakeInsightsReader{}
	for i := 1; i <= 8; i++ {
		id := fmt.Sprintf("c%d", i)
		reader.customers = append(reader.customers, &domain.Customer{ID: id, Name: id})
		reader.orders = append(reader.orders, orderAt(fmt.Sprintf("o%d", i), "2024-01-01T00:00:00Z", float64(i*10), id))
	}
	svc := NewInsightsService(reader, testLogger())

	top, err := svc.TopCustomers(context.Background(), "tenant-1")
	require.NoError(t, err)
	require.Len(t, top, 5)
	assert.Equal(t, 80.0, top[0].TotalSpent)
	assert.Equal(t, 40.0, top[4].TotalSpent)
}

func TestTopProductsRankedByUnitsSold(t *testing.T) {
	reader := &fakeInsightsReader{
		products: []*domain.Product{
			{ID: "p1", Title: "Widget", Price: 10},
			{ID: "p2", Title: "Gadget", Price: 100},
			{ID: "p3", Title: "Shelfwarmer", Price: 5},
		},
		items: []*domain.OrderItem{
			{OrderID: "o1", ProductID: "p1", Quantity: 3, Price: 10},
			{OrderID: "o2", ProductID: "p1", Quantity: 2, Price: 8},
			{OrderID: "o1", ProductID: "p2", Quantity: 1, Price: 100},
		},
	}
	svc := NewInsightsService(reader, testLogger())

	top, err := svc.TopProducts(context.Background(), "tenant-1")
	require.NoError(t, err)
	require.Len(t, top, 2, "products never sold are excluded")

	// Ranking is by units sold, not revenue: 5 widgets beat one 100-unit
	// gadget.
	assert.Equal(t, "Widget", top[0].Title)
	assert.Equal(t, 5, top[0].Sold)
	assert.Equal(t, 46.0, top[0].Revenue, "revenue uses the per-item sale price")
	assert.Equal(t, "Gadget", top[1].Title)
	assert.Equal(t, 1, top[1].Sold)
	assert.Equal(t, 100.0, top[1].Revenue)
}

func TestTopProductsTiesKeepQueryOrder(t *testing.T) {
	reader := &fakeInsightsReader{
		products: []*domain.Product{
			{ID: "p1", Title: "First", Price: 1},
			{ID: "p2", Title: "Second", Price: 1},
		},
		items: []*domain.OrderItem{
			{OrderID: "o1", ProductID: "p1", Quantity: 2, Price: 1},
			{OrderID: "o1", ProductID: "p2", Quantity: 2, Price: 1},
		},
	}
	svc := NewInsightsService(reader, testLogger())

	top, err := svc.TopProducts(context.Background(), "tenant-1")
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "First", top[0].Title)
	assert.Equal(t, "Second", top[1].Title)
}

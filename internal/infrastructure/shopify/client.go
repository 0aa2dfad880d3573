package shopify

import (
	"context"
	"fmt"

	goshopify "github.com/bold-commerce/go-shopify/v4"
	"github.com/rs/zerolog"

	"storepulse/internal/ports"
)

type client struct {
	app    goshopify.App
	logger zerolog.Logger
}

// NewClient creates a new Shopify read client adapter. Shops are accessed
// with a static Admin API access token per store; no OAuth app credentials
// are required for reads.
func NewClient(logger zerolog.Logger) ports.StoreClient {
	return &client{
		app:    goshopify.App{},
		logger: logger,
	}
}

// createClient is a helper to create a goshopify client for one shop
func (c *client) createClient(shopDomain string, accessToken string) (*goshopify.Client, error) {
	cl, err := goshopify.NewClient(c.app, shopDomain, accessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return cl, nil
}

func (c *client) ListCustomers(ctx context.Context, shopDomain string, accessToken string) ([]goshopify.Customer, error) {
	cl, err := c.createClient(shopDomain, accessToken)
	if err != nil {
		return nil, err
	}
	customers, err := cl.Customer.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}

func (c *client) ListProducts(ctx context.Context, shopDomain string, accessToken string) ([]goshopify.Product, error) {
	cl, err := c.createClient(shopDomain, accessToken)
	if err != nil {
		return nil, err
	}
	products, err := cl.Product.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (c *client) ListOrders(ctx context.Context, shopDomain string, accessToken string) ([]goshopify.Order, error) {
	cl, err := c.createClient(shopDomain, accessToken)
	if err != nil {
		return nil, err
	}
	// status=any keeps cancelled and closed orders in the mirror.
	orders, err := cl.Order.List(ctx, goshopify.OrderListOptions{Status: "any"})
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

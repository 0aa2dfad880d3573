package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"storepulse/internal/domain"
	"storepulse/internal/infrastructure/repository/entity"
	"storepulse/internal/ports"
)

// MongoInsightsRepository implements InsightsReader using MongoDB. It reads
// the collections the sync pipeline writes; it never writes.
type MongoInsightsRepository struct {
	customers  *mongo.Collection
	products   *mongo.Collection
	orders     *mongo.Collection
	orderItems *mongo.Collection
}

// NewMongoInsightsRepository creates a new MongoDB insights repository
func NewMongoInsightsRepository(db *mongo.Database) ports.InsightsReader {
	return &MongoInsightsRepository{
		customers:  db.Collection("customers"),
		products:   db.Collection("products"),
		orders:     db.Collection("orders"),
		orderItems: db.Collection("order_items"),
	}
}

func (r *MongoInsightsRepository) CountCustomers(ctx context.Context, tenantID string) (int64, error) {
	n, err := r.customers.CountDocuments(ctx, bson.M{"tenantId": tenantID})
	if err != nil {
		return 0, fmt.Errorf("failed to count customers: %w", err)
	}
	return n, nil
}

func (r *MongoInsightsRepository) CountProducts(ctx context.Context, tenantID string) (int64, error) {
	n, err := r.products.CountDocuments(ctx, bson.M{"tenantId": tenantID})
	if err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return n, nil
}

func (r *MongoInsightsRepository) CountOrders(ctx context.Context, tenantID string) (int64, error) {
	n, err := r.orders.CountDocuments(ctx, bson.M{"tenantId": tenantID})
	if err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return n, nil
}

// SumOrderAmounts sums every order amount for the tenant, 0 when there are
// none.
func (r *MongoInsightsRepository) SumOrderAmounts(ctx context.Context, tenantID string) (float64, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "tenantId", Value: tenantID}}}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$amount"}}},
		}}},
	}

	cursor, err := r.orders.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("failed to aggregate order amounts: %w", err)
	}
	defer cursor.Close(ctx)

	var result struct {
		Total float64 `bson:"total"`
	}
	if cursor.Next(ctx) {
		if err := cursor.Decode(&result); err != nil {
			return 0, fmt.Errorf("failed to decode aggregate: %w", err)
		}
	}
	if err := cursor.Err(); err != nil {
		return 0, fmt.Errorf("cursor error: %w", err)
	}
	return result.Total, nil
}

// OrdersInRange returns the tenant's orders with createdAt within the
// inclusive bounds; nil bounds are open ends.
func (r *MongoInsightsRepository) OrdersInRange(ctx context.Context, tenantID string, start, end *time.Time) ([]*domain.Order, error) {
	filter := bson.M{"tenantId": tenantID}
	if start != nil || end != nil {
		createdAt := bson.M{}
		if start != nil {
			createdAt["$gte"] = *start
		}
		if end != nil {
			createdAt["$lte"] = *end
		}
		filter["createdAt"] = createdAt
	}
	return r.findOrders(ctx, filter)
}

func (r *MongoInsightsRepository) ListOrders(ctx context.Context, tenantID string) ([]*domain.Order, error) {
	return r.findOrders(ctx, bson.M{"tenantId": tenantID})
}

func (r *MongoInsightsRepository) findOrders(ctx context.Context, filter bson.M) ([]*domain.Order, error) {
	cursor, err := r.orders.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer cursor.Close(ctx)

	var orders []*domain.Order
	for cursor.Next(ctx) {
		var doc entity.OrderDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode order: %w", err)
		}
		orders = append(orders, doc.ToDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return orders, nil
}

func (r *MongoInsightsRepository) ListCustomers(ctx context.Context, tenantID string) ([]*domain.Customer, error) {
	cursor, err := r.customers.Find(ctx, bson.M{"tenantId": tenantID})
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer cursor.Close(ctx)

	var customers []*domain.Customer
	for cursor.Next(ctx) {
		var doc entity.CustomerDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode customer: %w", err)
		}
		customers = append(customers, doc.ToDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return customers, nil
}

func (r *MongoInsightsRepository) ListProducts(ctx context.Context, tenantID string) ([]*domain.Product, error) {
	cursor, err := r.products.Find(ctx, bson.M{"tenantId": tenantID})
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer cursor.Close(ctx)

	var products []*domain.Product
	for cursor.Next(ctx) {
		var doc entity.ProductDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode product: %w", err)
		}
		products = append(products, doc.ToDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return products, nil
}

func (r *MongoInsightsRepository) ListOrderItems(ctx context.Context, tenantID string) ([]*domain.OrderItem, error) {
	cursor, err := r.orderItems.Find(ctx, bson.M{"tenantId": tenantID})
	if err != nil {
		return nil, fmt.Errorf("failed to list order items: %w", err)
	}
	defer cursor.Close(ctx)

	var items []*domain.OrderItem
	for cursor.Next(ctx) {
		var doc entity.OrderItemDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode order item: %w", err)
		}
		items = append(items, doc.ToDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return items, nil
}

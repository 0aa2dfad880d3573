package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"storepulse/internal/domain"
	"storepulse/internal/infrastructure/repository/entity"
	"storepulse/internal/ports"
)

// MongoStoreRepository implements StoreRepository using MongoDB
type MongoStoreRepository struct {
	collection *mongo.Collection
}

// NewMongoStoreRepository creates a new MongoDB store repository
func NewMongoStoreRepository(db *mongo.Database) ports.StoreRepository {
	return &MongoStoreRepository{
		collection: db.Collection("stores"),
	}
}

// FirstByTenant returns the tenant's store, first found, (nil, nil) when the
// tenant has none yet.
func (r *MongoStoreRepository) FirstByTenant(ctx context.Context, tenantID string) (*domain.Store, error) {
	var doc entity.StoreDoc
	err := r.collection.FindOne(ctx, bson.M{"tenantId": tenantID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get store: %w", err)
	}
	return doc.ToDomain(), nil
}

// Create inserts a new store and backfills its generated ID.
func (r *MongoStoreRepository) Create(ctx context.Context, store *domain.Store) error {
	doc := entity.StoreDocFromDomain(store)
	doc.ID = primitive.NewObjectID()
	doc.CreatedAt = time.Now()
	doc.UpdatedAt = doc.CreatedAt

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to create store: %w", err)
	}

	store.ID = doc.ID.Hex()
	store.CreatedAt = doc.CreatedAt
	store.UpdatedAt = doc.UpdatedAt
	return nil
}

// MongoCommerceRepository implements CommerceRepository using MongoDB.
// Upserts use FindOneAndUpdate with SetUpsert so each write is individually
// atomic and returns the stored row including its local ID.
type MongoCommerceRepository struct {
	customers  *mongo.Collection
	products   *mongo.Collection
	orders     *mongo.Collection
	orderItems *mongo.Collection
}

// NewMongoCommerceRepository creates a new MongoDB commerce repository
func NewMongoCommerceRepository(db *mongo.Database) ports.CommerceRepository {
	return &MongoCommerceRepository{
		customers:  db.Collection("customers"),
		products:   db.Collection("products"),
		orders:     db.Collection("orders"),
		orderItems: db.Collection("order_items"),
	}
}

// UpsertCustomer saves or updates a customer keyed by its Shopify ID.
func (r *MongoCommerceRepository) UpsertCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	doc := entity.CustomerDocFromDomain(customer)
	doc.UpdatedAt = time.Now()

	filter := bson.M{"shopifyId": customer.ShopifyID}
	update := bson.M{
		"$set":         doc,
		"$setOnInsert": bson.M{"createdAt": time.Now()},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var saved entity.CustomerDoc
	if err := r.customers.FindOneAndUpdate(ctx, filter, update, opts).Decode(&saved); err != nil {
		return nil, fmt.Errorf("failed to upsert customer: %w", err)
	}
	return saved.ToDomain(), nil
}

// GetCustomerByShopifyID retrieves a customer by Shopify ID, (nil, nil) when
// unknown.
func (r *MongoCommerceRepository) GetCustomerByShopifyID(ctx context.Context, shopifyID string) (*domain.Customer, error) {
	var doc entity.CustomerDoc
	err := r.customers.FindOne(ctx, bson.M{"shopifyId": shopifyID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return doc.ToDomain(), nil
}

// UpsertProduct saves or updates a product keyed by its Shopify ID.
func (r *MongoCommerceRepository) UpsertProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	doc := entity.ProductDocFromDomain(product)
	doc.UpdatedAt = time.Now()

	filter := bson.M{"shopifyId": product.ShopifyID}
	update := bson.M{
		"$set":         doc,
		"$setOnInsert": bson.M{"createdAt": time.Now()},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var saved entity.ProductDoc
	if err := r.products.FindOneAndUpdate(ctx, filter, update, opts).Decode(&saved); err != nil {
		return nil, fmt.Errorf("failed to upsert product: %w", err)
	}
	return saved.ToDomain(), nil
}

// GetProductByShopifyID retrieves a product by Shopify ID, (nil, nil) when
// unknown.
func (r *MongoCommerceRepository) GetProductByShopifyID(ctx context.Context, shopifyID string) (*domain.Product, error) {
	var doc entity.ProductDoc
	err := r.products.FindOne(ctx, bson.M{"shopifyId": shopifyID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return doc.ToDomain(), nil
}

// UpsertOrder saves or updates an order keyed by its Shopify ID. The
// createdAt field is written on every upsert because it mirrors the external
// transaction timestamp.
func (r *MongoCommerceRepository) UpsertOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	doc := entity.OrderDocFromDomain(order)
	doc.UpdatedAt = time.Now()

	filter := bson.M{"shopifyId": order.ShopifyID}
	update := bson.M{"$set": doc}
	// A re-linked guest order keeps no stale customer reference.
	if order.CustomerID == "" {
		update["$unset"] = bson.M{"customerId": ""}
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var saved entity.OrderDoc
	if err := r.orders.FindOneAndUpdate(ctx, filter, update, opts).Decode(&saved); err != nil {
		return nil, fmt.Errorf("failed to upsert order: %w", err)
	}
	return saved.ToDomain(), nil
}

// UpsertOrderItem saves or updates a line item keyed by the
// (orderId, productId) pair.
func (r *MongoCommerceRepository) UpsertOrderItem(ctx context.Context, item *domain.OrderItem) error {
	doc := entity.OrderItemDocFromDomain(item)
	doc.UpdatedAt = time.Now()

	filter := bson.M{
		"orderId":   item.OrderID,
		"productId": item.ProductID,
	}
	update := bson.M{
		"$set":         doc,
		"$setOnInsert": bson.M{"createdAt": time.Now()},
	}
	opts := options.Update().SetUpsert(true)

	if _, err := r.orderItems.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to upsert order item: %w", err)
	}
	return nil
}

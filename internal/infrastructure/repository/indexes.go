package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the unique indexes the upsert keys rely on. Safe to
// call on every startup; CreateOne is a no-op for an existing index.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	indexes := map[*mongo.Collection]mongo.IndexModel{
		db.Collection("tenants"): {
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: unique,
		},
		db.Collection("customers"): {
			Keys:    bson.D{{Key: "shopifyId", Value: 1}},
			Options: unique,
		},
		db.Collection("products"): {
			Keys:    bson.D{{Key: "shopifyId", Value: 1}},
			Options: unique,
		},
		db.Collection("orders"): {
			Keys:    bson.D{{Key: "shopifyId", Value: 1}},
			Options: unique,
		},
		db.Collection("order_items"): {
			Keys:    bson.D{{Key: "orderId", Value: 1}, {Key: "productId", Value: 1}},
			Options: unique,
		},
	}

	for coll, model := range indexes {
		if _, err := coll.Indexes().CreateOne(ctx, model); err != nil {
			return fmt.Errorf("failed to create index on %s: %w", coll.Name(), err)
		}
	}
	return nil
}

package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"storepulse/internal/domain"
)

// TenantDoc represents a tenant in MongoDB
type TenantDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"passwordHash"`
	CreatedAt    time.Time          `bson:"createdAt,omitempty"`
	UpdatedAt    time.Time          `bson:"updatedAt"`
}

// ToDomain converts the MongoDB document to a domain entity
func (d *TenantDoc) ToDomain() *domain.Tenant {
	return &domain.Tenant{
		ID:           d.ID.Hex(),
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// TenantDocFromDomain converts a domain entity to a MongoDB document
func TenantDocFromDomain(t *domain.Tenant) *TenantDoc {
	doc := &TenantDoc{
		Name:         t.Name,
		Email:        t.Email,
		PasswordHash: t.PasswordHash,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
	if t.ID != "" {
		if objID, err := primitive.ObjectIDFromHex(t.ID); err == nil {
			doc.ID = objID
		}
	}
	return doc
}

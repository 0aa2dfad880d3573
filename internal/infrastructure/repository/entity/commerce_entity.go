package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"storepulse/internal/domain"
)

// StoreDoc represents a tenant's store connection in MongoDB
type StoreDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	TenantID    string             `bson:"tenantId"`
	Name        string             `bson:"name"`
	Domain      string             `bson:"domain"`
	AccessToken string             `bson:"accessToken"`
	CreatedAt   time.Time          `bson:"createdAt,omitempty"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

func (d *StoreDoc) ToDomain() *domain.Store {
	return &domain.Store{
		ID:          d.ID.Hex(),
		TenantID:    d.TenantID,
		Name:        d.Name,
		Domain:      d.Domain,
		AccessToken: d.AccessToken,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func StoreDocFromDomain(s *domain.Store) *StoreDoc {
	doc := &StoreDoc{
		TenantID:    s.TenantID,
		Name:        s.Name,
		Domain:      s.Domain,
		AccessToken: s.AccessToken,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
	if s.ID != "" {
		if objID, err := primitive.ObjectIDFromHex(s.ID); err == nil {
			doc.ID = objID
		}
	}
	return doc
}

// CustomerDoc represents a mirrored customer in MongoDB. ShopifyID carries a
// unique index and is the upsert key.
type CustomerDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	TenantID  string             `bson:"tenantId"`
	StoreID   string             `bson:"storeId"`
	ShopifyID string             `bson:"shopifyId"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Phone     string             `bson:"phone"`
	City      string             `bson:"city"`
	State     string             `bson:"state"`
	Country   string             `bson:"country"`
	Zip       string             `bson:"zip"`
	CreatedAt time.Time          `bson:"createdAt,omitempty"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func (d *CustomerDoc) ToDomain() *domain.Customer {
	return &domain.Customer{
		ID:        d.ID.Hex(),
		TenantID:  d.TenantID,
		StoreID:   d.StoreID,
		ShopifyID: d.ShopifyID,
		Name:      d.Name,
		Email:     d.Email,
		Phone:     d.Phone,
		City:      d.City,
		State:     d.State,
		Country:   d.Country,
		Zip:       d.Zip,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func CustomerDocFromDomain(c *domain.Customer) *CustomerDoc {
	return &CustomerDoc{
		TenantID:  c.TenantID,
		StoreID:   c.StoreID,
		ShopifyID: c.ShopifyID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		City:      c.City,
		State:     c.State,
		Country:   c.Country,
		Zip:       c.Zip,
		UpdatedAt: c.UpdatedAt,
	}
}

// ProductDoc represents a mirrored product in MongoDB
type ProductDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	TenantID  string             `bson:"tenantId"`
	StoreID   string             `bson:"storeId"`
	ShopifyID string             `bson:"shopifyId"`
	Title     string             `bson:"title"`
	Price     float64            `bson:"price"`
	CreatedAt time.Time          `bson:"createdAt,omitempty"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func (d *ProductDoc) ToDomain() *domain.Product {
	return &domain.Product{
		ID:        d.ID.Hex(),
		TenantID:  d.TenantID,
		StoreID:   d.StoreID,
		ShopifyID: d.ShopifyID,
		Title:     d.Title,
		Price:     d.Price,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func ProductDocFromDomain(p *domain.Product) *ProductDoc {
	return &ProductDoc{
		TenantID:  p.TenantID,
		StoreID:   p.StoreID,
		ShopifyID: p.ShopifyID,
		Title:     p.Title,
		Price:     p.Price,
		UpdatedAt: p.UpdatedAt,
	}
}

// OrderDoc represents a mirrored order in MongoDB. CreatedAt is the external
// transaction timestamp and is written on every upsert, unlike the other
// docs where createdAt is insert-only.
type OrderDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	TenantID   string             `bson:"tenantId"`
	StoreID    string             `bson:"storeId"`
	ShopifyID  string             `bson:"shopifyId"`
	CustomerID string             `bson:"customerId,omitempty"`
	Amount     float64            `bson:"amount"`
	CreatedAt  time.Time          `bson:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt"`
}

func (d *OrderDoc) ToDomain() *domain.Order {
	return &domain.Order{
		ID:         d.ID.Hex(),
		TenantID:   d.TenantID,
		StoreID:    d.StoreID,
		ShopifyID:  d.ShopifyID,
		CustomerID: d.CustomerID,
		Amount:     d.Amount,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

func OrderDocFromDomain(o *domain.Order) *OrderDoc {
	return &OrderDoc{
		TenantID:   o.TenantID,
		StoreID:    o.StoreID,
		ShopifyID:  o.ShopifyID,
		CustomerID: o.CustomerID,
		Amount:     o.Amount,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
}

// OrderItemDoc represents an order line item in MongoDB. The
// (orderId, productId) pair carries a unique compound index and is the
// upsert key.
type OrderItemDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	TenantID  string             `bson:"tenantId"`
	OrderID   string             `bson:"orderId"`
	ProductID string             `bson:"productId"`
	Quantity  int                `bson:"quantity"`
	Price     float64            `bson:"price"`
	CreatedAt time.Time          `bson:"createdAt,omitempty"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func (d *OrderItemDoc) ToDomain() *domain.OrderItem {
	return &domain.OrderItem{
		ID:        d.ID.Hex(),
		TenantID:  d.TenantID,
		OrderID:   d.OrderID,
		ProductID: d.ProductID,
		Quantity:  d.Quantity,
		Price:     d.Price,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func OrderItemDocFromDomain(i *domain.OrderItem) *OrderItemDoc {
	return &OrderItemDoc{
		TenantID:  i.TenantID,
		OrderID:   i.OrderID,
		ProductID: i.ProductID,
		Quantity:  i.Quantity,
		Price:     i.Price,
		UpdatedAt: i.UpdatedAt,
	}
}

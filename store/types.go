// Package store holds sample entities used to exercise column resolution.
package store

import (
	"encoding/json"
	"time"

	"github.com/golang-sql/civil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"mysql-typemap/column"
)

// Audit is embedded in entities that track their modification time.
type Audit struct {
	CreatedAt time.Time  `mysql:"created_at"`
	UpdatedAt *time.Time `mysql:"updated_at"`
	Version   []byte     `mysql:"version,rowversion"`
}

// Product represents an individual item available for sale.
type Product struct {
	ID          int64           `mysql:"id,key"`
	SKU         string          `mysql:"sku,maxlen=32,index"`
	Name        string          `mysql:"name,maxlen=200"`
	Description string          `mysql:"description,maxlen=100000"`
	Price       decimal.Decimal `mysql:"price"`
	Inventory   uint32          `mysql:"inventory_count"`
	Thumbnail   []byte          `mysql:"thumbnail"`
	Checksum    []byte          `mysql:"checksum,size=32,index"`
	Attributes  column.JSON[map[string]string]
	Audit
}

// Customer represents the user placing orders.
type Customer struct {
	ID        uuid.UUID   `mysql:"id,key"`
	Email     string      `mysql:"email,maxlen=320,index"`
	FullName  string      `mysql:"full_name"`
	Birthday  *civil.Date `mysql:"birthday"`
	IsActive  bool        `mysql:"is_active"`
	Notes     string      `mysql:"notes,maxlen=20000000"`
	Raw       json.RawMessage
	password  string
	Transient string `mysql:"-"`
}

// Order represents a transaction made by a customer.
type Order struct {
	ID         int64       `mysql:"id,key"`
	CustomerID uuid.UUID   `mysql:"customer_id,index"`
	Status     OrderStatus `mysql:"status,maxlen=16"`
	Priority   Priority    `mysql:"priority"`
	TotalCents int64       `mysql:"total_cents"`
	Items      []OrderItem `mysql:"-"`
	Delivery   civil.Time  `mysql:"delivery_window"`
	OrderedAt  time.Time   `mysql:"ordered_at"`
}

// OrderItem represents a specific product line within an order.
type OrderItem struct {
	OrderID   int64 `mysql:"order_id,key"`
	ProductID int64 `mysql:"product_id,key"`
	Quantity  int16 `mysql:"quantity"`
	UnitPrice decimal.Decimal
}

// OrderStatus is a custom type for type-safe status handling.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusPaid      OrderStatus = "PAID"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusCancelled OrderStatus = "CANCELLED"
)

// Priority orders fulfilment.
type Priority uint8

const (
	PriorityLow Priority = iota
	PriorityNormal
	PriorityHigh
)

// Score is a named float; only bool, integer and string names are enums.
type Score float64

// Broken carries fields that cannot be mapped to a column.
type Broken struct {
	Tags     []string `mysql:"tags"`
	Rating   Score    `mysql:"rating"`
	Name     string   `mysql:"name,maxlen=0"`
	Weight   float64  `mysql:"weight,precision=2"`
	Location struct {
		Lat, Lng float64
	}
}

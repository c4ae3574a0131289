package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	OrderStatusPending    = "Pending"
	OrderStatusDispatched = "Dispatched"
	OrderStatusDelivered  = "Delivered"
	OrderStatusCancelled  = "Cancelled"
)

type OrderItem struct {
	ProductID primitive.ObjectID `bson:"product_id" json:"product_id"`
	Name      string             `bson:"name" json:"name"`
	Price     float64            `bson:"price" json:"price"`
	Quantity  int                `bson:"quantity" json:"quantity"`
}

type ShippingAddress struct {
	Street     string `bson:"street" json:"street"`
	City       string `bson:"city" json:"city"`
	State      string `bson:"state,omitempty" json:"state,omitempty"`
	PostalCode string `bson:"postal_code,omitempty" json:"postal_code,omitempty"`
	Country    string `bson:"country,omitempty" json:"country,omitempty"`
}

type TrackingInfo struct {
	Carrier        string `bson:"carrier,omitempty" json:"carrier,omitempty"`
	TrackingNumber string `bson:"tracking_number,omitempty" json:"tracking_number,omitempty"`
}

type Order struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrderNumber        string             `bson:"order_number" json:"order_number"`
	CustomerName       string             `bson:"customer_name" json:"customer_name"`
	CustomerEmail      string             `bson:"customer_email,omitempty" json:"customer_email,omitempty"`
	CustomerPhone      string             `bson:"customer_phone,omitempty" json:"customer_phone,omitempty"`
	ShippingAddress    ShippingAddress    `bson:"shipping_address" json:"shipping_address"`
	Items              []OrderItem        `bson:"items" json:"items"`
	Subtotal           float64            `bson:"subtotal" json:"subtotal"`
	ShippingFee        float64            `bson:"shipping_fee" json:"shipping_fee"`
	Total              float64            `bson:"total" json:"total"`
	Status             string             `bson:"status" json:"status"`
	Tracking           *TrackingInfo      `bson:"tracking,omitempty" json:"tracking,omitempty"`
	CancellationReason string             `bson:"cancellation_reason,omitempty" json:"cancellation_reason,omitempty"`
	DispatchedAt       *time.Time         `bson:"dispatched_at,omitempty" json:"dispatched_at,omitempty"`
	DeliveredAt        *time.Time         `bson:"delivered_at,omitempty" json:"delivered_at,omitempty"`
	CancelledAt        *time.Time         `bson:"cancelled_at,omitempty" json:"cancelled_at,omitempty"`
	CreatedAt          time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt          time.Time          `bson:"updated_at" json:"updated_at"`
}

package services

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"petshop-admin/models"
	"petshop-admin/utils"
)

const DefaultCancellationReason = "No reason provided"

// OrderTransitionError rejects an illegal status change with a 400.
type OrderTransitionError struct {
	From, To string
}

func (e *OrderTransitionError) Error() string {
	return fmt.Sprintf("cannot change order status from %s to %s", e.From, e.To)
}

var validStatuses = map[string]bool{
	models.OrderStatusPending:    true,
	models.OrderStatusDispatched: true,
	models.OrderStatusDelivered:  true,
	models.OrderStatusCancelled:  true,
}

// CanTransition enforces Pending -> Dispatched -> Delivered, with Cancelled
// reachable from Pending or Dispatched only.
func CanTransition(from, to string) bool {
	switch to {
	case models.OrderStatusDispatched:
		return from == models.OrderStatusPending
	case models.OrderStatusDelivered:
		return from == models.OrderStatusDispatched
	case models.OrderStatusCancelled:
		return from == models.OrderStatusPending || from == models.OrderStatusDispatched
	default:
		return false
	}
}

// OrderStatusUpdate builds the update document for a status transition,
// stamping the matching timestamp and recording tracking info or a
// cancellation reason.
func OrderStatusUpdate(current *models.Order, in Input) (bson.M, error) {
	target := in.String("status")
	if target == "" {
		return nil, utils.NewValidationError("status", "status is required")
	}
	if !validStatuses[target] {
		return nil, utils.NewValidationError("status", "unknown status "+target)
	}
	if !CanTransition(current.Status, target) {
		return nil, &OrderTransitionError{From: current.Status, To: target}
	}

	now := time.Now()
	set := bson.M{
		"status":     target,
		"updated_at": now,
	}

	switch target {
	case models.OrderStatusDispatched:
		set["dispatched_at"] = now
		if in.Has("carrier") || in.Has("tracking_number") {
			set["tracking"] = models.TrackingInfo{
				Carrier:        in.String("carrier"),
				TrackingNumber: in.String("tracking_number"),
			}
		}
	case models.OrderStatusDelivered:
		set["delivered_at"] = now
	case models.OrderStatusCancelled:
		set["cancelled_at"] = now
		reason := in.String("reason")
		if reason == "" {
			reason = DefaultCancellationReason
		}
		set["cancellation_reason"] = reason
	}

	return set, nil
}

// NewOrder builds an order with server-side computed totals.
func NewOrder(in Input, items []models.OrderItem, address models.ShippingAddress) (*models.Order, error) {
	customerName := in.String("customer_name")
	if customerName == "" {
		return nil, utils.NewValidationError("customer_name", "customer_name is required")
	}
	if len(items) == 0 {
		return nil, utils.NewValidationError("items", "order must contain at least one item")
	}

	subtotal := 0.0
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, utils.NewValidationError("items", "item quantity must be positive")
		}
		subtotal += item.Price * float64(item.Quantity)
	}

	shippingFee := 0.0
	if in.Has("shipping_fee") {
		fee, err := in.Float("shipping_fee")
		if err != nil || fee < 0 {
			return nil, utils.NewValidationError("shipping_fee", "shipping_fee must be a non-negative number")
		}
		shippingFee = fee
	}

	now := time.Now()
	return &models.Order{
		OrderNumber:     fmt.Sprintf("ORD-%d", now.UnixMilli()),
		CustomerName:    customerName,
		CustomerEmail:   in.String("customer_email"),
		CustomerPhone:   in.String("customer_phone"),
		ShippingAddress: address,
		Items:           items,
		Subtotal:        subtotal,
		ShippingFee:     shippingFee,
		Total:           subtotal + shippingFee,
		Status:          models.OrderStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

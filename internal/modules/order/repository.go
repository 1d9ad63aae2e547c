package order

import "context"

// Repository defines the interface for order data storage.
type Repository interface {
	// CreateOrder persists the order and all its items atomically.
	CreateOrder(ctx context.Context, o *Order) error
	GetOrderByID(ctx context.Context, id string) (*Order, error)
	ListOrdersByUser(ctx context.Context, userID string) ([]*Order, error)
}

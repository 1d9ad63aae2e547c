package order

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusDelivered OrderStatus = "DELIVERED"
	StatusCancelled OrderStatus = "CANCELLED"
)

// Order is a placed order with the cart contents frozen into line items.
type Order struct {
	ID              uuid.UUID    `json:"id"`
	UserID          uuid.UUID    `json:"user_id"`
	Status          OrderStatus  `json:"status"`
	Subtotal        float64      `json:"subtotal"`
	ShippingCost    float64      `json:"shipping_cost"`
	Total           float64      `json:"total"`
	ShippingName    string       `json:"shipping_name"`
	ShippingEmail   string       `json:"shipping_email"`
	ShippingPhone   string       `json:"shipping_phone"`
	ShippingAddress string       `json:"shipping_address"`
	ShippingCity    string       `json:"shipping_city"`
	ShippingState   string       `json:"shipping_state"`
	ShippingZip     string       `json:"shipping_zip"`
	Items           []*OrderItem `json:"items,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// OrderItem is a single line item. Price is the effective price the line
// was charged at when the order was placed.
type OrderItem struct {
	ID        uuid.UUID `json:"id"`
	OrderID   uuid.UUID `json:"order_id"`
	ProductID int64     `json:"product_id"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
	Size      string    `json:"size,omitempty"`
	Color     string    `json:"color,omitempty"`
}

// ShippingDetails is the checkout form payload.
type ShippingDetails struct {
	Name    string `json:"shippingName"`
	Email   string `json:"shippingEmail"`
	Phone   string `json:"shippingPhone"`
	Address string `json:"shippingAddress"`
	City    string `json:"shippingCity"`
	State   string `json:"shippingState"`
	Zip     string `json:"shippingZip"`
}

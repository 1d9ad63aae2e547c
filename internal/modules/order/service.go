package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/tinytots/storefront/internal/modules/cart"
)

// ErrEmptyCart rejects a checkout before anything is persisted.
var ErrEmptyCart = errors.New("cart is empty")

// Service defines the checkout and order-history business logic.
type Service interface {
	// Checkout converts the user's current cart plus shipping details into
	// a persisted order. The cart is cleared only after the order is
	// stored; on any failure the cart is left untouched.
	Checkout(ctx context.Context, userID string, details ShippingDetails) (*Order, error)
	GetOrder(ctx context.Context, userID, id string) (*Order, error)
	ListOrders(ctx context.Context, userID string) ([]*Order, error)
}

type service struct {
	repo    Repository
	carts   *cart.Stores
	pricing cart.PricingConfig
	log     *logrus.Logger
}

// NewService creates a new order service.
func NewService(repo Repository, carts *cart.Stores, pricing cart.PricingConfig, log *logrus.Logger) Service {
	return &service{repo: repo, carts: carts, pricing: pricing, log: log}
}

func (s *service) Checkout(ctx context.Context, userID string, details ShippingDetails) (*Order, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}

	store, err := s.carts.ForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	items := store.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	summary := s.pricing.Summarize(items)

	o := &Order{
		ID:              uuid.New(),
		UserID:          uid,
		Status:          StatusPending,
		Subtotal:        summary.Subtotal,
		ShippingCost:    summary.ShippingCost,
		Total:           summary.Total,
		ShippingName:    details.Name,
		ShippingEmail:   details.Email,
		ShippingPhone:   details.Phone,
		ShippingAddress: details.Address,
		ShippingCity:    details.City,
		ShippingState:   details.State,
		ShippingZip:     details.Zip,
	}
	for _, item := range items {
		o.Items = append(o.Items, &OrderItem{
			ID:        uuid.New(),
			OrderID:   o.ID,
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Price:     item.EffectivePrice(),
			Size:      item.Size,
			Color:     item.Color,
		})
	}

	if err := s.repo.CreateOrder(ctx, o); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	// The order exists; a failed cart clear must not fail the checkout.
	if err := store.Clear(ctx); err != nil {
		s.log.WithError(err).WithField("order_id", o.ID).
			Warn("order placed but cart snapshot was not cleared")
	}

	s.log.WithFields(logrus.Fields{
		"order_id": o.ID,
		"user_id":  userID,
		"total":    o.Total,
	}).Info("order placed")
	return o, nil
}

func (s *service) GetOrder(ctx context.Context, userID, id string) (*Order, error) {
	o, err := s.repo.GetOrderByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o.UserID.String() != userID {
		return nil, fmt.Errorf("order not found")
	}
	return o, nil
}

func (s *service) ListOrders(ctx context.Context, userID string) ([]*Order, error) {
	return s.repo.ListOrdersByUser(ctx, userID)
}

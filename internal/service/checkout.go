package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lokesh-18a/artiflex/internal/dto"
	"github.com/lokesh-18a/artiflex/internal/model"
	"github.com/lokesh-18a/artiflex/internal/repository"
)

type CheckoutService interface {
	Checkout(ctx context.Context, customer model.Identity, req *dto.CheckoutRequest) (*model.Order, error)
}

type checkoutServiceImpl struct {
	db          *gorm.DB
	cartRepo    repository.CartRepository
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
}

func NewCheckoutService(
	db *gorm.DB,
	cartRepo repository.CartRepository,
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
) CheckoutService {
	return &checkoutServiceImpl{
		db:          db,
		cartRepo:    cartRepo,
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

// Checkout converts the customer's cart into an order. The order row, its
// item snapshots, the stock decrements and the cart clear commit as one
// transaction, so a concurrent reader never sees a partial order.
func (s *checkoutServiceImpl) Checkout(ctx context.Context, customer model.Identity, req *dto.CheckoutRequest) (*model.Order, error) {
	cartItems, err := s.cartRepo.FindByCustomer(ctx, customer.UserID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if len(cartItems) == 0 {
		return nil, ErrEmptyCart
	}

	// Total and snapshots use the price at this moment; later product edits
	// never reach back into the order.
	var totalCents int64
	orderItems := make([]*model.OrderItem, len(cartItems))
	for i, item := range cartItems {
		totalCents += item.Product.PriceCents * int64(item.Quantity)
		orderItems[i] = &model.OrderItem{
			ProductID:            item.ProductID,
			Quantity:             item.Quantity,
			PriceAtPurchaseCents: item.Product.PriceCents,
		}
	}

	order := &model.Order{
		Reference:            uuid.NewString(),
		CustomerID:           customer.UserID,
		Status:               model.StatusPending,
		TotalCents:           totalCents,
		ShippingAddressLine1: req.Shipping.AddressLine1,
		ShippingCity:         req.Shipping.City,
		ShippingPostalCode:   req.Shipping.PostalCode,
		ShippingCountry:      req.Shipping.Country,
		PaymentMethod:        req.PaymentMethod,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.orderRepo.Create(ctx, tx, order); err != nil {
			return fmt.Errorf("store order: %w", err)
		}

		for i, item := range orderItems {
			item.OrderID = order.ID
			if err := s.productRepo.DecrementStock(ctx, tx, cartItems[i].ProductID, cartItems[i].Quantity); err != nil {
				return fmt.Errorf("decrement stock for product %d: %w", cartItems[i].ProductID, err)
			}
		}

		if err := s.orderRepo.CreateOrderItems(ctx, tx, orderItems); err != nil {
			return fmt.Errorf("store order items: %w", err)
		}

		if err := s.cartRepo.ClearCustomer(ctx, tx, customer.UserID); err != nil {
			return fmt.Errorf("clear cart: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	order.Items = make([]model.OrderItem, len(orderItems))
	for i, item := range orderItems {
		order.Items[i] = *item
	}

	return order, nil
}

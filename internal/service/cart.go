package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/lokesh-18a/artiflex/internal/model"
	"github.com/lokesh-18a/artiflex/internal/repository"
)

type CartService interface {
	AddItem(ctx context.Context, customer model.Identity, productID uint) error
	Items(ctx context.Context, customer model.Identity) ([]*model.CartItem, int64, error)
	RemoveItem(ctx context.Context, customer model.Identity, cartItemID uint) error
	ClearCart(ctx context.Context, customer model.Identity) error
}

type cartServiceImpl struct {
	db          *gorm.DB
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

func NewCartService(
	db *gorm.DB,
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
) CartService {
	return &cartServiceImpl{
		db:          db,
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// AddItem puts one unit of the product in the customer's cart, merging into
// an existing line if there is one. No stock check and no quantity cap.
func (s *cartServiceImpl) AddItem(ctx context.Context, customer model.Identity, productID uint) error {
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("find product: %w", err)
	}

	if err := s.cartRepo.AddItem(ctx, customer.UserID, productID); err != nil {
		return fmt.Errorf("upsert cart item: %w", err)
	}
	return nil
}

// Items returns the cart lines with products preloaded, plus the running
// total at live prices.
func (s *cartServiceImpl) Items(ctx context.Context, customer model.Identity) ([]*model.CartItem, int64, error) {
	items, err := s.cartRepo.FindByCustomer(ctx, customer.UserID)
	if err != nil {
		return nil, 0, fmt.Errorf("load cart: %w", err)
	}

	var total int64
	for _, item := range items {
		total += item.Product.PriceCents * int64(item.Quantity)
	}

	return items, total, nil
}

// RemoveItem deletes a cart line. ErrNotFound when the line does not exist,
// ErrNotOwner when it belongs to another customer.
func (s *cartServiceImpl) RemoveItem(ctx context.Context, customer model.Identity, cartItemID uint) error {
	item, err := s.cartRepo.FindItem(ctx, cartItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("find cart item: %w", err)
	}

	if item.CustomerID != customer.UserID {
		return ErrNotOwner
	}

	if err := s.cartRepo.DeleteItem(ctx, cartItemID); err != nil {
		return fmt.Errorf("delete cart item: %w", err)
	}
	return nil
}

func (s *cartServiceImpl) ClearCart(ctx context.Context, customer model.Identity) error {
	if err := s.cartRepo.ClearCustomer(ctx, s.db, customer.UserID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

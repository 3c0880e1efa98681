package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/lokesh-18a/artiflex/internal/model"
	"github.com/lokesh-18a/artiflex/internal/repository"
)

type OrderService interface {
	OrdersByCustomer(ctx context.Context, customer model.Identity) ([]*model.Order, error)
	OrdersForArtist(ctx context.Context, artist model.Identity) ([]*model.Order, error)
	GetOrder(ctx context.Context, identity model.Identity, orderID uint) (*model.Order, error)
	UpdateStatus(ctx context.Context, artist model.Identity, orderID uint, status model.OrderStatus) (*model.Order, error)
}

type orderServiceImpl struct {
	orderRepo repository.OrderRepository
}

func NewOrderService(orderRepo repository.OrderRepository) OrderService {
	return &orderServiceImpl{
		orderRepo: orderRepo,
	}
}

func (s *orderServiceImpl) OrdersByCustomer(ctx context.Context, customer model.Identity) ([]*model.Order, error) {
	return s.orderRepo.FindByCustomer(ctx, customer.UserID)
}

func (s *orderServiceImpl) OrdersForArtist(ctx context.Context, artist model.Identity) ([]*model.Order, error) {
	return s.orderRepo.FindForArtist(ctx, artist.UserID)
}

// GetOrder is visible to the owning customer and to any artist with a
// product in the order.
func (s *orderServiceImpl) GetOrder(ctx context.Context, identity model.Identity, orderID uint) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find order: %w", err)
	}

	if identity.IsCustomer() {
		if order.CustomerID != identity.UserID {
			return nil, ErrNotOwner
		}
		return order, nil
	}

	owns, err := s.orderRepo.ArtistOwnsOrderProduct(ctx, identity.UserID, orderID)
	if err != nil {
		return nil, fmt.Errorf("check order ownership: %w", err)
	}
	if !owns {
		return nil, ErrNotOwner
	}

	return order, nil
}

// UpdateStatus moves an order through pending -> shipped -> delivered, with
// canceled reachable from pending and shipped. Only an artist owning at
// least one product in the order may move it.
func (s *orderServiceImpl) UpdateStatus(ctx context.Context, artist model.Identity, orderID uint, status model.OrderStatus) (*model.Order, error) {
	if !status.Valid() {
		return nil, ErrInvalidTransition
	}

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find order: %w", err)
	}

	owns, err := s.orderRepo.ArtistOwnsOrderProduct(ctx, artist.UserID, orderID)
	if err != nil {
		return nil, fmt.Errorf("check order ownership: %w", err)
	}
	if !owns {
		return nil, ErrNotOwner
	}

	if !order.Status.CanTransitionTo(status) {
		return nil, ErrInvalidTransition
	}

	if err := s.orderRepo.UpdateStatus(ctx, orderID, status); err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}

	order.Status = status
	return order, nil
}

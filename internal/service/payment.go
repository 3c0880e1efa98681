package service

import (
	"context"
	"fmt"

	"github.com/lokesh-18a/artiflex/internal/client"
	"github.com/lokesh-18a/artiflex/internal/model"
	"github.com/lokesh-18a/artiflex/internal/repository"
)

// PaymentService hands the cart to the hosted checkout provider and returns
// the redirect URL. Payment capture itself is the provider's problem.
type PaymentService interface {
	CheckoutURL(ctx context.Context, customer model.Identity) (string, error)
}

type paymentServiceImpl struct {
	stripe   client.StripeClient
	cartRepo repository.CartRepository
	baseURL  string
}

func NewPaymentService(
	stripe client.StripeClient,
	cartRepo repository.CartRepository,
	baseURL string,
) PaymentService {
	return &paymentServiceImpl{
		stripe:   stripe,
		cartRepo: cartRepo,
		baseURL:  baseURL,
	}
}

func (s *paymentServiceImpl) CheckoutURL(ctx context.Context, customer model.Identity) (string, error) {
	items, err := s.cartRepo.FindByCustomer(ctx, customer.UserID)
	if err != nil {
		return "", fmt.Errorf("load cart: %w", err)
	}
	if len(items) == 0 {
		return "", ErrEmptyCart
	}

	url, err := s.stripe.CreateCheckoutSession(ctx, s.baseURL, items)
	if err != nil {
		return "", fmt.Errorf("create checkout session: %w", err)
	}

	return url, nil
}

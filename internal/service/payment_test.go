package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lokesh-18a/artiflex/internal/model"
)

type stubStripeClient struct {
	url string
	err error

	gotItems []*model.CartItem
}

func (s *stubStripeClient) CreateCheckoutSession(ctx context.Context, serviceBaseURL string, items []*model.CartItem) (string, error) {
	s.gotItems = items
	return s.url, s.err
}

func TestCheckoutURLEmptyCart(t *testing.T) {
	deps := newTestDeps(t)
	svc := NewPaymentService(&stubStripeClient{url: "https://pay.example/cs_1"}, deps.cartRepo, "http://localhost:8080")

	customer := seedUser(t, deps.db, "customer@example.com", model.RoleCustomer)

	_, err := svc.CheckoutURL(context.Background(), identityOf(customer))
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCheckoutURLPassesCartLines(t *testing.T) {
	deps := newTestDeps(t)
	stripe := &stubStripeClient{url: "https://pay.example/cs_1"}
	svc := NewPaymentService(stripe, deps.cartRepo, "http://localhost:8080")
	ctx := context.Background()

	artist := seedUser(t, deps.db, "artist@example.com", model.RoleArtist)
	customer := seedUser(t, deps.db, "customer@example.com", model.RoleCustomer)
	mug := seedProduct(t, deps.db, artist.ID, "Glazed Mug", 1000, 5)

	require.NoError(t, deps.cartRepo.AddItem(ctx, customer.ID, mug.ID))

	url, err := svc.CheckoutURL(ctx, identityOf(customer))
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example/cs_1", url)
	require.Len(t, stripe.gotItems, 1)
	assert.Equal(t, "Glazed Mug", stripe.gotItems[0].Product.Name)
}

func TestCheckoutURLProviderFailure(t *testing.T) {
	deps := newTestDeps(t)
	svc := NewPaymentService(&stubStripeClient{err: errors.New("stripe 500")}, deps.cartRepo, "http://localhost:8080")
	ctx := context.Background()

	artist := seedUser(t, deps.db, "artist@example.com", model.RoleArtist)
	customer := seedUser(t, deps.db, "customer@example.com", model.RoleCustomer)
	mug := seedProduct(t, deps.db, artist.ID, "Glazed Mug", 1000, 5)

	require.NoError(t, deps.cartRepo.AddItem(ctx, customer.ID, mug.ID))

	_, err := svc.CheckoutURL(ctx, identityOf(customer))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrEmptyCart)
}

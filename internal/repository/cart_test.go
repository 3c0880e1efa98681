package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lokesh-18a/artiflex/internal/model"
)

func TestAddItemMergesIntoOneRow(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewCartRepository(db)

	artist := seedUser(t, db, "artist@example.com", model.RoleArtist)
	customer := seedUser(t, db, "customer@example.com", model.RoleCustomer)
	mug := seedProduct(t, db, artist.ID, "Glazed Mug", 1000, 5)

	require.NoError(t, repo.AddItem(ctx, customer.ID, mug.ID))
	require.NoError(t, repo.AddItem(ctx, customer.ID, mug.ID))

	items, err := repo.FindByCustomer(ctx, customer.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int32(2), items[0].Quantity)
}

func TestAddItemKeepsSeparateProductsSeparate(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewCartRepository(db)

	artist := seedUser(t, db, "artist@example.com", model.RoleArtist)
	customer := seedUser(t, db, "customer@example.com", model.RoleCustomer)
	mug := seedProduct(t, db, artist.ID, "Glazed Mug", 1000, 5)
	bowl := seedProduct(t, db, artist.ID, "Carved Bowl", 500, 3)

	require.NoError(t, repo.AddItem(ctx, customer.ID, mug.ID))
	require.NoError(t, repo.AddItem(ctx, customer.ID, bowl.ID))

	items, err := repo.FindByCustomer(ctx, customer.ID)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestFindByCustomerPreloadsProduct(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewCartRepository(db)

	artist := seedUser(t, db, "artist@example.com", model.RoleArtist)
	customer := seedUser(t, db, "customer@example.com", model.RoleCustomer)
	mug := seedProduct(t, db, artist.ID, "Glazed Mug", 1000, 5)

	require.NoError(t, repo.AddItem(ctx, customer.ID, mug.ID))

	items, err := repo.FindByCustomer(ctx, customer.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Glazed Mug", items[0].Product.Name)
	assert.Equal(t, int64(1000), items[0].Product.PriceCents)
}

func TestClearCustomerLeavesOtherCartsAlone(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewCartRepository(db)

	artist := seedUser(t, db, "artist@example.com", model.RoleArtist)
	alice := seedUser(t, db, "alice@example.com", model.RoleCustomer)
	bob := seedUser(t, db, "bob@example.com", model.RoleCustomer)
	mug := seedProduct(t, db, artist.ID, "Glazed Mug", 1000, 5)

	require.NoError(t, repo.AddItem(ctx, alice.ID, mug.ID))
	require.NoError(t, repo.AddItem(ctx, bob.ID, mug.ID))

	require.NoError(t, repo.ClearCustomer(ctx, db, alice.ID))

	aliceItems, err := repo.FindByCustomer(ctx, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, aliceItems)

	bobItems, err := repo.FindByCustomer(ctx, bob.ID)
	require.NoError(t, err)
	assert.Len(t, bobItems, 1)
}

package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lokesh-18a/artiflex/internal/model"
	"github.com/lokesh-18a/artiflex/internal/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.CartItem{},
		&model.Order{},
		&model.OrderItem{},
	))

	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string, role model.Role) *model.User {
	t.Helper()

	user := &model.User{
		Email:          email,
		HashedPassword: "x",
		Role:           role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedProduct(t *testing.T, db *gorm.DB, ownerID uint, name string, priceCents int64, stock int32) *model.Product {
	t.Helper()

	product := &model.Product{
		Name:       name,
		Category:   "Pottery",
		PriceCents: priceCents,
		Stock:      stock,
		OwnerID:    ownerID,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func identityOf(user *model.User) model.Identity {
	return model.Identity{UserID: user.ID, Role: user.Role}
}

type testDeps struct {
	db          *gorm.DB
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
}

func newTestDeps(t *testing.T) *testDeps {
	t.Helper()

	db := newTestDB(t)
	return &testDeps{
		db:          db,
		cartRepo:    repository.NewCartRepository(db),
		productRepo: repository.NewProductRepository(db),
		orderRepo:   repository.NewOrderRepository(db),
	}
}

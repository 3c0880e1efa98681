package repository

import (
	"context"

	"github.com/lokesh-18a/artiflex/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartRepository interface {
	AddItem(ctx context.Context, customerID, productID uint) error
	FindByCustomer(ctx context.Context, customerID uint) ([]*model.CartItem, error)
	FindItem(ctx context.Context, cartItemID uint) (*model.CartItem, error)
	DeleteItem(ctx context.Context, cartItemID uint) error
	ClearCustomer(ctx context.Context, tx *gorm.DB, customerID uint) error
}

type cartRepoImpl struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepoImpl{
		db: db,
	}
}

// AddItem inserts a (customer, product) row with quantity 1, or bumps the
// existing row's quantity by 1. A single conditional upsert, so two
// concurrent adds cannot lose an increment.
func (r *cartRepoImpl) AddItem(ctx context.Context, customerID, productID uint) error {
	item := &model.CartItem{
		CustomerID: customerID,
		ProductID:  productID,
		Quantity:   1,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "customer_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity": gorm.Expr("cart_items.quantity + 1"),
		}),
	}).Create(&item).Error
}

func (r *cartRepoImpl) FindByCustomer(ctx context.Context, customerID uint) ([]*model.CartItem, error) {
	var items []*model.CartItem
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("customer_id = ?", customerID).
		Find(&items).Error

	if err != nil {
		return nil, err
	}

	return items, nil
}

func (r *cartRepoImpl) FindItem(ctx context.Context, cartItemID uint) (*model.CartItem, error) {
	var item model.CartItem
	err := r.db.WithContext(ctx).
		Where("id = ?", cartItemID).
		First(&item).Error

	if err != nil {
		return nil, err
	}

	return &item, nil
}

func (r *cartRepoImpl) DeleteItem(ctx context.Context, cartItemID uint) error {
	return r.db.WithContext(ctx).
		Delete(&model.CartItem{}, cartItemID).Error
}

func (r *cartRepoImpl) ClearCustomer(ctx context.Context, tx *gorm.DB, customerID uint) error {
	return tx.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Delete(&model.CartItem{}).Error
}

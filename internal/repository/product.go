package repository

import (
	"context"

	"github.com/lokesh-18a/artiflex/internal/model"

	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	FindByID(ctx context.Context, productID uint) (*model.Product, error)
	FindLatest(ctx context.Context, offset, limit int) ([]*model.Product, error)
	FindByOwner(ctx context.Context, ownerID uint) ([]*model.Product, error)
	FindByCategory(ctx context.Context, category string) ([]*model.Product, error)
	Categories(ctx context.Context) ([]string, error)
	FindTrending(ctx context.Context, limit int) ([]*model.Product, error)
	UpdatePrice(ctx context.Context, productID uint, priceCents int64) error
	DecrementStock(ctx context.Context, tx *gorm.DB, productID uint, quantity int32) error
}

type productRepoImpl struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepoImpl{
		db: db,
	}
}

func (r *productRepoImpl) Create(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepoImpl) FindByID(ctx context.Context, productID uint) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).
		Where("id = ?", productID).
		First(&product).Error

	if err != nil {
		return nil, err
	}

	return &product, nil
}

func (r *productRepoImpl) FindLatest(ctx context.Context, offset, limit int) ([]*model.Product, error) {
	var products []*model.Product
	err := r.db.WithContext(ctx).
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&products).Error

	if err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepoImpl) FindByOwner(ctx context.Context, ownerID uint) ([]*model.Product, error) {
	var products []*model.Product
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Find(&products).Error

	if err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepoImpl) FindByCategory(ctx context.Context, category string) ([]*model.Product, error) {
	var products []*model.Product
	err := r.db.WithContext(ctx).
		Where("category = ?", category).
		Find(&products).Error

	if err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepoImpl) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("category <> ''").
		Distinct().
		Pluck("category", &categories).Error

	if err != nil {
		return nil, err
	}

	return categories, nil
}

// FindTrending orders products by total units sold across all orders.
func (r *productRepoImpl) FindTrending(ctx context.Context, limit int) ([]*model.Product, error) {
	var products []*model.Product
	err := r.db.WithContext(ctx).Model(&model.Product{}).
		Joins("JOIN order_items ON order_items.product_id = products.id").
		Group("products.id").
		Order("SUM(order_items.quantity) DESC").
		Limit(limit).
		Find(&products).Error

	if err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepoImpl) UpdatePrice(ctx context.Context, productID uint, priceCents int64) error {
	return r.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ?", productID).
		Update("price_cents", priceCents).Error
}

// DecrementStock subtracts quantity inside the caller's transaction. Stock is
// allowed to go negative, matching the permissive checkout behavior.
func (r *productRepoImpl) DecrementStock(ctx context.Context, tx *gorm.DB, productID uint, quantity int32) error {
	return tx.WithContext(ctx).Model(&model.Product{}).
		Where("id = ?", productID).
		Update("stock", gorm.Expr("stock - ?", quantity)).Error
}

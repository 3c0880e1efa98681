package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/lokesh-18a/artiflex/internal/model"
	"github.com/lokesh-18a/artiflex/internal/repository"
)

// CatalogService serves the public browse surface: product listings,
// categories, trending, artist profiles.
type CatalogService interface {
	ListProducts(ctx context.Context, offset, limit int) ([]*model.Product, error)
	GetProduct(ctx context.Context, productID uint) (*model.Product, error)
	ProductsByCategory(ctx context.Context, category string) ([]*model.Product, error)
	Categories(ctx context.Context) ([]string, error)
	TrendingProducts(ctx context.Context, limit int) ([]*model.Product, error)
	ListArtists(ctx context.Context, limit int) ([]*model.User, error)
	GetArtist(ctx context.Context, artistID uint) (*model.User, []*model.Product, error)
}

type catalogServiceImpl struct {
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
}

func NewCatalogService(
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
) CatalogService {
	return &catalogServiceImpl{
		productRepo: productRepo,
		userRepo:    userRepo,
	}
}

func (s *catalogServiceImpl) ListProducts(ctx context.Context, offset, limit int) ([]*model.Product, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	return s.productRepo.FindLatest(ctx, offset, limit)
}

func (s *catalogServiceImpl) GetProduct(ctx context.Context, productID uint) (*model.Product, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return product, nil
}

func (s *catalogServiceImpl) ProductsByCategory(ctx context.Context, category string) ([]*model.Product, error) {
	return s.productRepo.FindByCategory(ctx, category)
}

func (s *catalogServiceImpl) Categories(ctx context.Context) ([]string, error) {
	return s.productRepo.Categories(ctx)
}

func (s *catalogServiceImpl) TrendingProducts(ctx context.Context, limit int) ([]*model.Product, error) {
	return s.productRepo.FindTrending(ctx, limit)
}

func (s *catalogServiceImpl) ListArtists(ctx context.Context, limit int) ([]*model.User, error) {
	return s.userRepo.FindArtists(ctx, limit)
}

func (s *catalogServiceImpl) GetArtist(ctx context.Context, artistID uint) (*model.User, []*model.Product, error) {
	artist, err := s.userRepo.FindByID(ctx, artistID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("find artist: %w", err)
	}
	if artist.Role != model.RoleArtist {
		return nil, nil, ErrNotFound
	}

	products, err := s.productRepo.FindByOwner(ctx, artistID)
	if err != nil {
		return nil, nil, fmt.Errorf("find artist products: %w", err)
	}

	return artist, products, nil
}

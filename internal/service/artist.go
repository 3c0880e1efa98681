package service

import (
	"context"
	"fmt"

	"github.com/lokesh-18a/artiflex/internal/dto"
	"github.com/lokesh-18a/artiflex/internal/model"
	"github.com/lokesh-18a/artiflex/internal/repository"
)

// ArtistService covers the artist back office: product creation with
// generated copy, the dashboard, and profile edits.
type ArtistService interface {
	DraftProduct(ctx context.Context, req *dto.ProductDraftRequest) *dto.ProductDraftResponse
	CreateProduct(ctx context.Context, artist model.Identity, req *dto.CreateProductRequest) (*model.Product, error)
	Dashboard(ctx context.Context, artist model.Identity) (*Dashboard, error)
	UpdateProfile(ctx context.Context, artist model.Identity, req *dto.UpdateProfileRequest) error
}

// Dashboard aggregates what the artist sees on login. TotalIncomeCents sums
// snapshot prices over the artist's own items only, not whole orders.
type Dashboard struct {
	Products         []*model.Product `json:"products"`
	Orders           []*model.Order   `json:"orders"`
	TotalIncomeCents int64            `json:"total_income_cents"`
}

type artistServiceImpl struct {
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	userRepo    repository.UserRepository
	ai          AIService
}

func NewArtistService(
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	userRepo repository.UserRepository,
	ai AIService,
) ArtistService {
	return &artistServiceImpl{
		productRepo: productRepo,
		orderRepo:   orderRepo,
		userRepo:    userRepo,
		ai:          ai,
	}
}

// DraftProduct is step two of product creation: generated description and
// price suggestion for the artist to review. Never fails; the AI service
// degrades to placeholders.
func (s *artistServiceImpl) DraftProduct(ctx context.Context, req *dto.ProductDraftRequest) *dto.ProductDraftResponse {
	return &dto.ProductDraftResponse{
		Description:     s.ai.Describe(ctx, req.Name, req.Category, req.ArtistNotes),
		PriceSuggestion: s.ai.SuggestPrice(ctx, req.Name, req.Category, req.ArtistNotes),
	}
}

func (s *artistServiceImpl) CreateProduct(ctx context.Context, artist model.Identity, req *dto.CreateProductRequest) (*model.Product, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("product name is required")
	}
	if req.PriceCents <= 0 {
		return nil, fmt.Errorf("product price must be positive")
	}

	product := &model.Product{
		Name:          req.Name,
		Category:      req.Category,
		ArtistNotes:   req.ArtistNotes,
		Description:   req.Description,
		PriceCents:    req.PriceCents,
		Stock:         req.Stock,
		ImageFilename: req.ImageFilename,
		OwnerID:       artist.UserID,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	return product, nil
}

func (s *artistServiceImpl) Dashboard(ctx context.Context, artist model.Identity) (*Dashboard, error) {
	products, err := s.productRepo.FindByOwner(ctx, artist.UserID)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}

	orders, err := s.orderRepo.FindForArtist(ctx, artist.UserID)
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}

	var income int64
	for _, order := range orders {
		for _, item := range order.Items {
			if item.Product.OwnerID == artist.UserID {
				income += item.PriceAtPurchaseCents * int64(item.Quantity)
			}
		}
	}

	return &Dashboard{
		Products:         products,
		Orders:           orders,
		TotalIncomeCents: income,
	}, nil
}

func (s *artistServiceImpl) UpdateProfile(ctx context.Context, artist model.Identity, req *dto.UpdateProfileRequest) error {
	fields := map[string]interface{}{
		"studio_name":   req.StudioName,
		"bio":           req.Bio,
		"skills":        req.Skills,
		"location":      req.Location,
		"phone_contact": req.PhoneContact,
	}
	if err := s.userRepo.UpdateProfile(ctx, artist.UserID, fields); err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}

package dto

import "github.com/lokesh-18a/artiflex/internal/model"

type RegisterRequest struct {
	Email    string     `json:"email"`
	FullName string     `json:"full_name"`
	Password string     `json:"password"`
	Role     model.Role `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateProductRequest struct {
	Name          string `json:"name"`
	Category      string `json:"category"`
	ArtistNotes   string `json:"artist_notes"`
	Description   string `json:"description"`
	PriceCents    int64  `json:"price_cents"`
	Stock         int32  `json:"stock"`
	ImageFilename string `json:"image_filename"`
}

type ProductDraftRequest struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	ArtistNotes string `json:"artist_notes"`
}

// ProductDraftResponse carries the generated copy for the artist to review
// before saving (step two of product creation).
type ProductDraftResponse struct {
	Description     string `json:"description"`
	PriceSuggestion string `json:"price_suggestion"`
}

type UpdateProfileRequest struct {
	StudioName   string `json:"studio_name"`
	Bio          string `json:"bio"`
	Skills       string `json:"skills"`
	Location     string `json:"location"`
	PhoneContact string `json:"phone_contact"`
}

type ShippingInfo struct {
	AddressLine1 string `json:"address_line1"`
	City         string `json:"city"`
	PostalCode   string `json:"postal_code"`
	Country      string `json:"country"`
}

type CheckoutRequest struct {
	Shipping      ShippingInfo `json:"shipping"`
	PaymentMethod string       `json:"payment_method"` // COD or Online
}

type UpdateOrderStatusRequest struct {
	Status model.OrderStatus `json:"status"`
}

type CartResponse struct {
	Items      []*model.CartItem `json:"items"`
	TotalCents int64             `json:"total_cents"`
}

type CheckoutURLResponse struct {
	CheckoutURL string `json:"checkout_url"`
}

package model

import "time"

type Role string

const (
	RoleArtist   Role = "artist"
	RoleCustomer Role = "customer"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusShipped   OrderStatus = "shipped"
	StatusDelivered OrderStatus = "delivered"
	StatusCanceled  OrderStatus = "canceled"
)

// statusTransitions is the allowed order lifecycle. delivered and canceled
// are terminal.
var statusTransitions = map[OrderStatus][]OrderStatus{
	StatusPending: {StatusShipped, StatusCanceled},
	StatusShipped: {StatusDelivered, StatusCanceled},
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusShipped, StatusDelivered, StatusCanceled:
		return true
	}
	return false
}

type User struct {
	ID             uint   `gorm:"primaryKey"`
	Email          string `gorm:"size:255;uniqueIndex;not null"`
	HashedPassword string `gorm:"size:128;not null"`
	FullName       string `gorm:"size:255"`
	Role           Role   `gorm:"size:16;index;not null"`
	CreatedAt      time.Time

	// Artist profile. Empty for customers.
	StudioName    string  `gorm:"size:255"`
	Bio           string  `gorm:"type:text"`
	Skills        string  `gorm:"size:512"` // comma-separated, e.g. "Pottery,Glazing"
	Location      string  `gorm:"size:255"`
	PhoneContact  string  `gorm:"size:32"`
	AverageRating float64 `gorm:"default:0"`

	Products []Product `gorm:"foreignKey:OwnerID"`
	Orders   []Order   `gorm:"foreignKey:CustomerID"`
}

type Product struct {
	ID            uint   `gorm:"primaryKey"`
	Name          string `gorm:"size:255;index;not null"`
	Category      string `gorm:"size:64;index"`
	ArtistNotes   string `gorm:"type:text"`
	Description   string `gorm:"type:text"` // generated copy, editable by the artist
	PriceCents    int64  `gorm:"not null"`  // USD cents
	Stock         int32  `gorm:"default:1"`
	ImageFilename string `gorm:"size:255"`
	OwnerID       uint   `gorm:"index;not null"`
	CreatedAt     time.Time
}

// CartItem is one (customer, product) line. The pair is unique; repeated adds
// increment Quantity through a conditional upsert, never a second row.
type CartItem struct {
	ID         uint  `gorm:"primaryKey"`
	CustomerID uint  `gorm:"uniqueIndex:idx_cart_customer_product;not null"`
	ProductID  uint  `gorm:"uniqueIndex:idx_cart_customer_product;not null"`
	Quantity   int32 `gorm:"not null;default:1"`

	Product Product `gorm:"foreignKey:ProductID"`
}

type Order struct {
	ID         uint        `gorm:"primaryKey"`
	Reference  string      `gorm:"size:64;uniqueIndex;not null"`
	CustomerID uint        `gorm:"index;not null"`
	Status     OrderStatus `gorm:"size:16;index;not null"`
	TotalCents int64       `gorm:"not null"`

	ShippingAddressLine1 string `gorm:"size:255"`
	ShippingCity         string `gorm:"size:128"`
	ShippingPostalCode   string `gorm:"size:32"`
	ShippingCountry      string `gorm:"size:64"`
	PaymentMethod        string `gorm:"size:16"` // COD or Online

	CreatedAt time.Time
	UpdatedAt time.Time

	Items []OrderItem `gorm:"foreignKey:OrderID"`
}

// OrderItem is an immutable snapshot taken at checkout. PriceAtPurchaseCents
// freezes the product price so later price edits never touch past orders.
type OrderItem struct {
	ID                   uint  `gorm:"primaryKey"`
	OrderID              uint  `gorm:"index;not null"`
	ProductID            uint  `gorm:"index;not null"`
	Quantity             int32 `gorm:"not null"`
	PriceAtPurchaseCents int64 `gorm:"not null"`
	CreatedAt            time.Time

	Product Product `gorm:"foreignKey:ProductID"`
}

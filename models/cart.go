package models

import "time"

// Cart is keyed by an opaque token issued to the browser; one cart per token.
type Cart struct {
	CartID    uint       `gorm:"primaryKey" json:"cartId"`
	Token     string     `gorm:"uniqueIndex" json:"token"`
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// CartItem rows are unique per (ProductID, VariantName) within a cart.
// UnitPrice is frozen at add-time and does not track later catalog edits.
type CartItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CartID      uint      `gorm:"index" json:"-"`
	ProductID   uint      `json:"productId"`
	ProductName string    `json:"productName"`
	VariantName string    `json:"variantName,omitempty"`
	Quantity    int       `json:"quantity"`
	UnitPrice   float64   `json:"unitPrice"`
	Image       string    `json:"image"`
	AddedAt     time.Time `json:"addedAt"`
}

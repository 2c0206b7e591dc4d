package models

import (
	"time"

	"gorm.io/gorm"
)

type ProductType string

const (
	ProductTypeFood      ProductType = "FOOD"
	ProductTypePackaging ProductType = "PACKAGING"
)

type Product struct {
	ID            uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	NameFr        string      `gorm:"not null" json:"nameFr"`
	NameAr        string      `json:"nameAr"`
	DescriptionFr string      `json:"descriptionFr"`
	DescriptionAr string      `json:"descriptionAr"`
	BasePrice     float64     `gorm:"not null" json:"basePrice"`
	Type          ProductType `gorm:"type:VARCHAR(20);default:'PACKAGING'" json:"type"`
	Image         string      `json:"image"`
	HasVariants   bool        `json:"hasVariants"`
	IsPopular     bool        `json:"isPopular"`
	IsPinned      bool        `json:"isPinned"`
	RibbonText    string      `json:"ribbonText,omitempty"`
	NewUntil      *time.Time  `json:"newUntil,omitempty"`
	Variants      []Variant   `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"variants"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// Variant is owned by exactly one product. A variant's Price is the absolute
// unit price charged when the variant is selected, not an adjustment on top
// of the product's base price.
type Variant struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint    `gorm:"index" json:"productId"`
	NameFr    string  `gorm:"not null" json:"nameFr"`
	NameAr    string  `json:"nameAr"`
	Price     float64 `gorm:"not null" json:"price"`
	CreatedAt time.Time `json:"createdAt"`
}

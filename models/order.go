package models

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"   // placed, not yet accepted by the carrier
	OrderStatusConfirmed OrderStatus = "CONFIRMED" // accepted by the carrier, tracking attached
	OrderStatusCancelled OrderStatus = "CANCELLED" // terminal
	OrderStatusDelivered OrderStatus = "DELIVERED" // carrier-reported, terminal
)

type DeliveryType string

const (
	DeliveryHome     DeliveryType = "HOME"
	DeliveryStopdesk DeliveryType = "STOPDESK"
)

type Order struct {
	ID             uint         `gorm:"primaryKey" json:"id"`
	OrderNumber    string       `gorm:"uniqueIndex;not null" json:"orderNumber"`
	CustomerName   string       `gorm:"not null" json:"customerName"`
	CustomerPhone  string       `gorm:"not null;index" json:"customerPhone"`
	CustomerEmail  string       `json:"customerEmail,omitempty"`
	Address        string       `json:"address"`
	WilayaID       string       `json:"wilayaId"`
	Wilaya         string       `json:"wilaya"`
	MunicipalityID string       `json:"municipalityId"`
	Municipality   string       `json:"municipality"`
	DeliveryType   DeliveryType `gorm:"type:VARCHAR(10);default:'HOME'" json:"deliveryType"`
	ShippingCost   float64      `json:"shippingCost"`
	Subtotal       float64      `json:"subtotal"`
	Total          float64      `json:"total"`
	Status         OrderStatus  `gorm:"type:VARCHAR(20);default:'PENDING'" json:"status"`
	TrackingNumber string       `json:"trackingNumber,omitempty"`
	Notes          string       `json:"notes,omitempty"` // internal, e.g. carrier forward failures
	Items          []OrderItem  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt      time.Time    `json:"createdAt"`
}

// OrderItem snapshots the product at purchase time; it does not follow later
// catalog edits.
type OrderItem struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	OrderID     uint    `gorm:"index" json:"orderId"`
	ProductID   uint    `json:"productId"`
	ProductName string  `json:"productName"`
	VariantName string  `json:"variantName,omitempty"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Total       float64 `json:"total"`
}

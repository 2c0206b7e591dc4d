package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sidjamyl/Darine-emballage/elogistia"
	"github.com/sidjamyl/Darine-emballage/models"
)

func TestUnitPriceVariantReplacesBase(t *testing.T) {
	product := models.Product{BasePrice: 250}

	assert.Equal(t, 250.0, UnitPrice(product, nil))

	variant := models.Variant{NameFr: "Grand format", Price: 900}
	assert.Equal(t, 900.0, UnitPrice(product, &variant), "variant price is absolute, not an adjustment")

	cheap := models.Variant{NameFr: "Petit format", Price: 120}
	assert.Equal(t, 120.0, UnitPrice(product, &cheap), "a variant may cost less than the base price")
}

func TestCoerceQuantity(t *testing.T) {
	assert.Equal(t, 1, CoerceQuantity(0))
	assert.Equal(t, 1, CoerceQuantity(-4))
	assert.Equal(t, 1, CoerceQuantity(1))
	assert.Equal(t, 7, CoerceQuantity(7))
}

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"3", 3},
		{" 12 ", 12},
		{"0", 1},
		{"-2", 1},
		{"abc", 1},
		{"", 1},
		{"2.5", 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseQuantity(tt.raw), "raw=%q", tt.raw)
	}
}

func TestCartSubtotal(t *testing.T) {
	items := []models.CartItem{
		{UnitPrice: 150, Quantity: 2},
		{UnitPrice: 400, Quantity: 1},
		{UnitPrice: 50, Quantity: 0},
	}
	// the zero quantity is floored to 1
	assert.Equal(t, 750.0, CartSubtotal(items))

	assert.Equal(t, 0.0, CartSubtotal(nil))
}

func TestShippingCost(t *testing.T) {
	wilaya := &elogistia.Wilaya{
		WilayaID:    "16",
		WilayaLabel: "Alger",
		Home:        "500",
		Stopdesk:    "300",
	}

	assert.Equal(t, 500.0, ShippingCost(wilaya, models.DeliveryHome))
	assert.Equal(t, 300.0, ShippingCost(wilaya, models.DeliveryStopdesk))
}

func TestShippingCostDegradesToZero(t *testing.T) {
	assert.Equal(t, 0.0, ShippingCost(nil, models.DeliveryHome), "unknown wilaya ships free rather than failing")

	junk := &elogistia.Wilaya{Home: "sur demande", Stopdesk: ""}
	assert.Equal(t, 0.0, ShippingCost(junk, models.DeliveryHome))
	assert.Equal(t, 0.0, ShippingCost(junk, models.DeliveryStopdesk))

	negative := &elogistia.Wilaya{Home: "-100"}
	assert.Equal(t, 0.0, ShippingCost(negative, models.DeliveryHome))
}

func TestOrderTotal(t *testing.T) {
	assert.Equal(t, 700.0, OrderTotal(400, 300))
	assert.Equal(t, 400.0, OrderTotal(400, 0))
}

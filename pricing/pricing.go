// Package pricing computes unit prices, line totals and shipping costs. All
// amounts are kept at full float64 precision; rounding to whole dinars
// happens at presentation time only.
package pricing

import (
	"strconv"
	"strings"

	"github.com/sidjamyl/Darine-emballage/elogistia"
	"github.com/sidjamyl/Darine-emballage/models"
)

// UnitPrice returns the price charged per unit for a product/variant pair.
// A selected variant's price replaces the base price outright; it is not an
// adjustment added on top.
func UnitPrice(product models.Product, variant *models.Variant) float64 {
	if variant != nil {
		return variant.Price
	}
	return product.BasePrice
}

// CoerceQuantity folds any quantity input onto an integer >= 1.
func CoerceQuantity(quantity int) int {
	if quantity < 1 {
		return 1
	}
	return quantity
}

// ParseQuantity parses free-form quantity input with the same floor of 1.
// Junk never produces a zero or negative stored quantity.
func ParseQuantity(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 1
	}
	return CoerceQuantity(n)
}

func LineTotal(unitPrice float64, quantity int) float64 {
	return unitPrice * float64(CoerceQuantity(quantity))
}

func CartSubtotal(items []models.CartItem) float64 {
	var subtotal float64
	for _, item := range items {
		subtotal += LineTotal(item.UnitPrice, item.Quantity)
	}
	return subtotal
}

// ShippingCost reads the delivery fee for a wilaya row and delivery mode.
// A nil wilaya or an unparseable cost string is 0, never an error.
func ShippingCost(wilaya *elogistia.Wilaya, deliveryType models.DeliveryType) float64 {
	if wilaya == nil {
		return 0
	}
	raw := wilaya.Home
	if deliveryType == models.DeliveryStopdesk {
		raw = wilaya.Stopdesk
	}
	cost, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || cost < 0 {
		return 0
	}
	return cost
}

func OrderTotal(subtotal, shippingCost float64) float64 {
	return subtotal + shippingCost
}

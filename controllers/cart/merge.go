package cartControllers

import (
	"time"

	"github.com/sidjamyl/Darine-emballage/models"
	"github.com/sidjamyl/Darine-emballage/pricing"
)

// Cart rows are keyed by (ProductID, VariantName). The merge and quantity
// rules live here as pure slice transforms so they are testable without a
// database; the handlers persist whatever these return.

// MergeItem folds a new item into the cart: an existing row with the same
// key has its quantity incremented, otherwise the item is appended. The
// incoming quantity is floored to 1.
func MergeItem(items []models.CartItem, item models.CartItem) []models.CartItem {
	item.Quantity = pricing.CoerceQuantity(item.Quantity)
	if item.AddedAt.IsZero() {
		item.AddedAt = time.Now()
	}
	for i := range items {
		if items[i].ProductID == item.ProductID && items[i].VariantName == item.VariantName {
			items[i].Quantity += item.Quantity
			items[i].AddedAt = item.AddedAt
			return items
		}
	}
	return append(items, item)
}

// ApplyQuantity sets the quantity of the row with the given key. A quantity
// of 0 or below removes the row. A missing key leaves the cart unchanged.
func ApplyQuantity(items []models.CartItem, productID uint, variantName string, quantity int) []models.CartItem {
	for i := range items {
		if items[i].ProductID != productID || items[i].VariantName != variantName {
			continue
		}
		if quantity <= 0 {
			return append(items[:i], items[i+1:]...)
		}
		items[i].Quantity = quantity
		return items
	}
	return items
}

// RemoveItem drops the row with the given key.
func RemoveItem(items []models.CartItem, productID uint, variantName string) []models.CartItem {
	return ApplyQuantity(items, productID, variantName, 0)
}

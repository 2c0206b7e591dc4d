package orderControllers

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/sidjamyl/Darine-emballage/models"
)

// The carrier's order feed is not shape-stable: keys are French, sometimes
// misspelled ("Addresse"), sometimes carry trailing spaces ("Wilaya "), and
// the status vocabulary is free text. Everything the admin or customer views
// render goes through NormalizeRecord so every endpoint shows the same
// canonical order, whatever shape it came in.

// OrderView is the canonical, shape-independent order representation served
// to admin and customer views.
type OrderView struct {
	ID             string             `json:"id"`
	OrderNumber    string             `json:"orderNumber"`
	CustomerName   string             `json:"customerName"`
	CustomerPhone  string             `json:"customerPhone"`
	CustomerEmail  string             `json:"customerEmail"`
	Address        string             `json:"address"`
	Wilaya         string             `json:"wilaya"`
	Municipality   string             `json:"municipality"`
	DeliveryType   string             `json:"deliveryType"`
	ShippingCost   float64            `json:"shippingCost"`
	Subtotal       float64            `json:"subtotal"`
	Total          float64            `json:"total"`
	Status         models.OrderStatus `json:"status"`
	TrackingNumber string             `json:"trackingNumber"`
	Notes          string             `json:"notes"`
	CreatedAt      string             `json:"createdAt"`
	Items          []OrderItemView    `json:"items"`
}

type OrderItemView struct {
	ID          string  `json:"id"`
	ProductName string  `json:"productName"`
	VariantName string  `json:"variantName,omitempty"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Total       float64 `json:"total"`
}

// NormalizeStatus folds any status string onto the four canonical states.
// It is total: empty, unrecognized or garbage input is PENDING. Precedence
// is confirmed-family, then cancelled-family (returns included), then
// delivered-family, so "Retour en transit" never reads as delivered.
func NormalizeStatus(raw string) models.OrderStatus {
	status := strings.ToUpper(strings.TrimSpace(raw))
	switch {
	case status == "CONFIRMED" || status == "CONFIRMÉE":
		return models.OrderStatusConfirmed
	case status == "CANCELLED" || status == "ANNULÉE" || strings.Contains(status, "RETOUR"):
		return models.OrderStatusCancelled
	case status == "DELIVERED" || strings.Contains(status, "LIVR") || strings.Contains(status, "RÉGLÉE"):
		return models.OrderStatusDelivered
	default:
		// Includes BROUILLON (carrier drafts) and anything unknown.
		return models.OrderStatusPending
	}
}

// NormalizeRecord folds one raw order record into the canonical view. The
// record may be a carrier-feed entry or an already-canonical order; the
// latter passes through unchanged, so normalization is idempotent. Malformed
// input never fails: missing required strings default to "N/A".
func NormalizeRecord(raw map[string]any, index int) OrderView {
	if _, ok := raw["orderNumber"]; ok {
		return canonicalView(raw)
	}
	return carrierView(raw, index)
}

// NormalizeRecords normalizes a batch and sorts it most-recent-first by a
// numeric parse of the order number (non-numeric parses as 0). This is a
// display convenience, not a correctness invariant.
func NormalizeRecords(records []map[string]any) []OrderView {
	views := make([]OrderView, len(records))
	for i, raw := range records {
		views[i] = NormalizeRecord(raw, i)
	}
	SortViews(views)
	return views
}

// SortViews orders views by numeric order number, descending.
func SortViews(views []OrderView) {
	sort.SliceStable(views, func(i, j int) bool {
		return numericOrderNumber(views[i].OrderNumber) > numericOrderNumber(views[j].OrderNumber)
	})
}

// ViewFromOrder projects a local DB order onto the canonical view. Local
// orders carry real subtotal/total and a true item list, which are used
// as-is, never re-derived.
func ViewFromOrder(order models.Order) OrderView {
	items := make([]OrderItemView, len(order.Items))
	for i, item := range order.Items {
		items[i] = OrderItemView{
			ID:          strconv.FormatUint(uint64(item.ID), 10),
			ProductName: item.ProductName,
			VariantName: item.VariantName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Total:       item.Total,
		}
	}
	return OrderView{
		ID:             strconv.FormatUint(uint64(order.ID), 10),
		OrderNumber:    order.OrderNumber,
		CustomerName:   order.CustomerName,
		CustomerPhone:  order.CustomerPhone,
		CustomerEmail:  order.CustomerEmail,
		Address:        order.Address,
		Wilaya:         order.Wilaya,
		Municipality:   order.Municipality,
		DeliveryType:   string(order.DeliveryType),
		ShippingCost:   order.ShippingCost,
		Subtotal:       order.Subtotal,
		Total:          order.Total,
		Status:         NormalizeStatus(string(order.Status)),
		TrackingNumber: order.TrackingNumber,
		Notes:          order.Notes,
		CreatedAt:      order.CreatedAt.UTC().Format(time.RFC3339),
		Items:          items,
	}
}

// carrierView reconstructs a canonical order from a carrier-feed record. The
// feed only supplies the amount to collect ("Total Recouvrement") and the
// delivery fee, so subtotal is derived by subtraction; the free-text product
// field becomes a single synthesized line item priced at the subtotal.
func carrierView(raw map[string]any, index int) OrderView {
	shipping := floatAlias(raw, "Frais de livraison", "Frais ELogistia")
	collect := floatAlias(raw, "Total Recouvrement")
	subtotal := collect - shipping

	orderNumber := stringAlias(raw, "CommandeID", "Tracking")
	if orderNumber == "" {
		orderNumber = fmt.Sprintf("N/A-%d", index)
	}

	id := stringAlias(raw, "CommandeID")
	if id == "" {
		id = fmt.Sprintf("order-%d", index)
	}

	customerName := strings.TrimSpace(stringAlias(raw, "Prénom") + " " + stringAlias(raw, "Nom"))
	if customerName == "" {
		customerName = "N/A"
	}

	phone := stringAlias(raw, "Téléphone")
	if phone == "" {
		phone = "N/A"
	}

	address := stringAlias(raw, "Addresse", "Adresse")
	if address == "" {
		address = "N/A"
	}

	var items []OrderItemView
	if product := stringAlias(raw, "Produit"); product != "" {
		items = append(items, OrderItemView{
			ID:          fmt.Sprintf("item-%d-0", index),
			ProductName: product,
			Quantity:    1,
			UnitPrice:   subtotal,
			Total:       subtotal,
		})
	}

	return OrderView{
		ID:             id,
		OrderNumber:    orderNumber,
		CustomerName:   customerName,
		CustomerPhone:  phone,
		CustomerEmail:  stringAlias(raw, "E-mail"),
		Address:        address,
		Wilaya:         stringAlias(raw, "Wilaya ", "Wilaya"),
		Municipality:   stringAlias(raw, "Commune ", "Commune"),
		DeliveryType:   string(models.DeliveryHome),
		ShippingCost:   shipping,
		Subtotal:       subtotal,
		Total:          collect,
		Status:         NormalizeStatus(stringAlias(raw, "Status")),
		TrackingNumber: stringAlias(raw, "Tracking"),
		Notes:          stringAlias(raw, "Remarque"),
		CreatedAt:      time.Now().UTC().Format(time.RFC3339),
		Items:          items,
	}
}

// canonicalView reads an already-canonical record back without re-deriving
// anything: subtotal and total are independently present and trusted.
func canonicalView(raw map[string]any) OrderView {
	items := []OrderItemView{}
	if rawItems, ok := raw["items"].([]any); ok {
		for _, entry := range rawItems {
			item, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			items = append(items, OrderItemView{
				ID:          stringAlias(item, "id"),
				ProductName: stringAlias(item, "productName"),
				VariantName: stringAlias(item, "variantName"),
				Quantity:    int(floatAlias(item, "quantity")),
				UnitPrice:   floatAlias(item, "unitPrice"),
				Total:       floatAlias(item, "total"),
			})
		}
	}

	return OrderView{
		ID:             stringAlias(raw, "id"),
		OrderNumber:    stringAlias(raw, "orderNumber"),
		CustomerName:   stringAlias(raw, "customerName"),
		CustomerPhone:  stringAlias(raw, "customerPhone"),
		CustomerEmail:  stringAlias(raw, "customerEmail"),
		Address:        stringAlias(raw, "address"),
		Wilaya:         stringAlias(raw, "wilaya"),
		Municipality:   stringAlias(raw, "municipality"),
		DeliveryType:   stringAlias(raw, "deliveryType"),
		ShippingCost:   floatAlias(raw, "shippingCost"),
		Subtotal:       floatAlias(raw, "subtotal"),
		Total:          floatAlias(raw, "total"),
		Status:         NormalizeStatus(stringAlias(raw, "status")),
		TrackingNumber: stringAlias(raw, "trackingNumber"),
		Notes:          stringAlias(raw, "notes"),
		CreatedAt:      stringAlias(raw, "createdAt"),
		Items:          items,
	}
}

// stringAlias returns the first present key's value as a trimmed string.
// Numbers stringify; anything else is skipped.
func stringAlias(raw map[string]any, keys ...string) string {
	for _, key := range keys {
		switch v := raw[key].(type) {
		case string:
			if trimmed := strings.TrimSpace(v); trimmed != "" {
				return trimmed
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return ""
}

// floatAlias returns the first present key's value parsed as a float; missing
// or unparseable values are 0.
func floatAlias(raw map[string]any, keys ...string) float64 {
	for _, key := range keys {
		switch v := raw[key].(type) {
		case float64:
			return v
		case string:
			if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
				return f
			}
		}
	}
	return 0
}

// numericOrderNumber extracts the sortable number from an order number: a
// bare numeric string parses as-is, a local DRN-<unix ms>-<suffix> number
// sorts on its timestamp middle, anything else is 0.
func numericOrderNumber(orderNumber string) int64 {
	trimmed := strings.TrimSpace(orderNumber)
	if n, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return n
	}
	parts := strings.Split(trimmed, "-")
	if len(parts) >= 2 {
		if n, err := strconv.ParseInt(parts[1], 10, 64); err == nil {
			return n
		}
	}
	return 0
}

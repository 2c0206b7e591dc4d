package orderControllers

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sidjamyl/Darine-emballage/models"
)

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want models.OrderStatus
	}{
		{"CONFIRMED", models.OrderStatusConfirmed},
		{"confirmée", models.OrderStatusConfirmed},
		{" Confirmée ", models.OrderStatusConfirmed},
		{"CANCELLED", models.OrderStatusCancelled},
		{"Annulée", models.OrderStatusCancelled},
		{"Retour en transit", models.OrderStatusCancelled},
		{"RETOUR REÇU", models.OrderStatusCancelled},
		{"DELIVERED", models.OrderStatusDelivered},
		{"Livrée", models.OrderStatusDelivered},
		{"En cours de livraison", models.OrderStatusDelivered},
		{"Réglée", models.OrderStatusDelivered},
		{"BROUILLON", models.OrderStatusPending},
		{"quux", models.OrderStatusPending},
		{"", models.OrderStatusPending},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeStatus(tt.raw), "raw=%q", tt.raw)
	}
}

func TestCarrierRecordMoneyReconstruction(t *testing.T) {
	record := map[string]any{
		"CommandeID":          "1726000000123",
		"Prénom":              "Amine",
		"Nom":                 "Benali",
		"Téléphone":           "0550123456",
		"Addresse":            "Rue Didouche Mourad",
		"Wilaya ":             "Alger",
		"Commune ":            "Bab El Oued",
		"Frais de livraison":  "300",
		"Total Recouvrement":  700.0,
		"Produit":             "Boîte pâtissière x2, Caissettes x1",
		"Tracking":            "TRK-1",
		"Status":              "Confirmée",
	}

	view := NormalizeRecord(record, 0)

	assert.Equal(t, "Amine Benali", view.CustomerName)
	assert.Equal(t, "Rue Didouche Mourad", view.Address)
	assert.Equal(t, "Alger", view.Wilaya)
	assert.Equal(t, "Bab El Oued", view.Municipality)
	assert.Equal(t, 300.0, view.ShippingCost)
	assert.Equal(t, 400.0, view.Subtotal, "subtotal is total to collect minus the delivery fee")
	assert.Equal(t, 700.0, view.Total)
	assert.Equal(t, models.OrderStatusConfirmed, view.Status)

	require.Len(t, view.Items, 1, "free-text product becomes one synthesized line")
	assert.Equal(t, "Boîte pâtissière x2, Caissettes x1", view.Items[0].ProductName)
	assert.Equal(t, 1, view.Items[0].Quantity)
	assert.Equal(t, 400.0, view.Items[0].UnitPrice)
}

func TestCarrierRecordFieldAliases(t *testing.T) {
	record := map[string]any{
		"Adresse":        "Cité 20 Août",
		"Wilaya":         "Oran",
		"Commune":        "Es Senia",
		"Frais ELogistia": "400",
		"Total Recouvrement": "1000",
	}

	view := NormalizeRecord(record, 3)

	assert.Equal(t, "Cité 20 Août", view.Address)
	assert.Equal(t, "Oran", view.Wilaya)
	assert.Equal(t, "Es Senia", view.Municipality)
	assert.Equal(t, 400.0, view.ShippingCost)
	assert.Equal(t, 600.0, view.Subtotal)
}

func TestCarrierRecordDefaults(t *testing.T) {
	view := NormalizeRecord(map[string]any{}, 5)

	assert.Equal(t, "N/A", view.CustomerName)
	assert.Equal(t, "N/A", view.CustomerPhone)
	assert.Equal(t, "N/A", view.Address)
	assert.Equal(t, "N/A-5", view.OrderNumber)
	assert.Equal(t, "order-5", view.ID)
	assert.Equal(t, models.OrderStatusPending, view.Status)
	assert.Empty(t, view.Items, "no product text, no synthesized item")
}

func TestNormalizeRecordIsIdempotent(t *testing.T) {
	record := map[string]any{
		"CommandeID":         "42",
		"Prénom":             "Fatima",
		"Nom":                "Cherif",
		"Téléphone":          "0661234567",
		"Frais de livraison": "200",
		"Total Recouvrement": "500",
		"Produit":            "Assiettes carton",
		"Status":             "Livrée",
	}

	once := NormalizeRecord(record, 0)

	// Round-trip through JSON the way a cached canonical record would come back.
	payload, err := json.Marshal(once)
	require.NoError(t, err)
	var roundTripped map[string]any
	require.NoError(t, json.Unmarshal(payload, &roundTripped))

	twice := NormalizeRecord(roundTripped, 0)
	assert.Equal(t, once, twice)
}

func TestNormalizeRecordsSortsNumericDescending(t *testing.T) {
	views := NormalizeRecords([]map[string]any{
		{"CommandeID": "100", "Produit": "A", "Total Recouvrement": "10"},
		{"CommandeID": "300", "Produit": "B", "Total Recouvrement": "10"},
		{"CommandeID": "not-a-number", "Produit": "C", "Total Recouvrement": "10"},
		{"CommandeID": "200", "Produit": "D", "Total Recouvrement": "10"},
	})

	require.Len(t, views, 4)
	assert.Equal(t, "300", views[0].OrderNumber)
	assert.Equal(t, "200", views[1].OrderNumber)
	assert.Equal(t, "100", views[2].OrderNumber)
	assert.Equal(t, "not-a-number", views[3].OrderNumber, "non-numeric parses as 0 and sinks to the bottom")
}

func TestSortViewsLocalOrderNumbers(t *testing.T) {
	views := []OrderView{
		{OrderNumber: "DRN-1726000000100-AAAAAAAAA"},
		{OrderNumber: "DRN-1726000000300-BBBBBBBBB"},
		{OrderNumber: "1726000000200"},
		{OrderNumber: "garbage"},
	}

	SortViews(views)

	assert.Equal(t, "DRN-1726000000300-BBBBBBBBB", views[0].OrderNumber, "local numbers sort on their timestamp middle")
	assert.Equal(t, "1726000000200", views[1].OrderNumber)
	assert.Equal(t, "DRN-1726000000100-AAAAAAAAA", views[2].OrderNumber)
	assert.Equal(t, "garbage", views[3].OrderNumber)
}

func TestViewFromOrder(t *testing.T) {
	created := time.Date(2025, 9, 10, 12, 0, 0, 0, time.UTC)
	order := models.Order{
		ID:            7,
		OrderNumber:   "DRN-1726000000000-9F2K310AB",
		CustomerName:  "Amine Benali",
		CustomerPhone: "0550123456",
		Wilaya:        "Alger",
		Municipality:  "Bab El Oued",
		DeliveryType:  models.DeliveryHome,
		ShippingCost:  300,
		Subtotal:      400,
		Total:         700,
		Status:        models.OrderStatusPending,
		CreatedAt:     created,
		Items: []models.OrderItem{
			{ID: 1, ProductName: "Boîte pâtissière", VariantName: "25cm", Quantity: 2, UnitPrice: 150, Total: 300},
			{ID: 2, ProductName: "Caissettes", Quantity: 1, UnitPrice: 100, Total: 100},
		},
	}

	view := ViewFromOrder(order)

	assert.Equal(t, "7", view.ID)
	assert.Equal(t, 400.0, view.Subtotal, "local amounts are used as-is, never re-derived")
	assert.Equal(t, 700.0, view.Total)
	assert.Equal(t, "2025-09-10T12:00:00Z", view.CreatedAt)
	require.Len(t, view.Items, 2)
	assert.Equal(t, "25cm", view.Items[0].VariantName)
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"0550 12 34 56", "0550123456"},
		{"0550-12-34-56", "0550123456"},
		{"0550.12.34.56", "0550123456"},
		{"+213550123456", "0550123456"},
		{" +213 550 12 34 56 ", "0550123456"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizePhone(tt.raw), "raw=%q", tt.raw)
	}
}

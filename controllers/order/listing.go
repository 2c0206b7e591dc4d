package orderControllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sidjamyl/Darine-emballage/models"
)

// GET /admin/orders — local orders, newest first, optional ?status= filter.
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Preload("Items").Order("created_at DESC")
		if status := c.Query("status"); status != "" && status != "ALL" {
			query = query.Where("status = ?", NormalizeStatus(status))
		}

		var orders []models.Order
		if err := query.Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		views := make([]OrderView, len(orders))
		for i, order := range orders {
			views[i] = ViewFromOrder(order)
		}
		c.JSON(http.StatusOK, views)
	}
}

// GET /admin/orders/:orderID — single order by numeric id or order number.
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("orderID")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}

		var order models.Order
		if err := orderLookup(db, id).Preload("Items").First(&order).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusOK, ViewFromOrder(order))
	}
}

// GET /admin/orders/carrier — the carrier's full feed, normalized. The
// carrier cannot be trusted to filter by status, so ?status= is applied
// locally after the fold.
func GetCarrierOrdersHandler(carrier Carrier) gin.HandlerFunc {
	return func(c *gin.Context) {
		views := NormalizeRecords(carrier.GetOrders())

		if status := c.Query("status"); status != "" && status != "ALL" {
			want := NormalizeStatus(status)
			filtered := views[:0]
			for _, view := range views {
				if view.Status == want {
					filtered = append(filtered, view)
				}
			}
			views = filtered
		}
		c.JSON(http.StatusOK, views)
	}
}

// GET /orders/by-phone?phone= — public order lookup. Serves the carrier feed
// when it answers, otherwise falls back to locally persisted orders, so a
// customer can always see what the shop has on record.
func OrdersByPhoneHandler(db *gorm.DB, carrier Carrier) gin.HandlerFunc {
	return func(c *gin.Context) {
		phone := NormalizePhone(c.Query("phone"))
		if len(phone) < 9 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid phone number"})
			return
		}

		records := carrier.GetOrders()
		if len(records) > 0 {
			var matching []map[string]any
			for _, record := range records {
				if NormalizePhone(stringAlias(record, "Téléphone")) == phone {
					matching = append(matching, record)
				}
			}
			c.JSON(http.StatusOK, NormalizeRecords(matching))
			return
		}

		var orders []models.Order
		if err := db.Preload("Items").
			Where("customer_phone = ?", phone).
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusOK, []OrderView{})
			return
		}
		views := make([]OrderView, len(orders))
		for i, order := range orders {
			views[i] = ViewFromOrder(order)
		}
		c.JSON(http.StatusOK, views)
	}
}

// NormalizePhone strips separators and folds the +213 country prefix onto the
// local leading zero.
func NormalizePhone(phone string) string {
	replacer := strings.NewReplacer(" ", "", "-", "", ".", "")
	normalized := replacer.Replace(strings.TrimSpace(phone))
	if strings.HasPrefix(normalized, "+213") {
		normalized = "0" + strings.TrimPrefix(normalized, "+213")
	}
	return normalized
}

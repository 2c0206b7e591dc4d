package orderControllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sidjamyl/Darine-emballage/elogistia"
	"github.com/sidjamyl/Darine-emballage/models"
	"github.com/sidjamyl/Darine-emballage/pricing"
)

// Carrier is the slice of the logistics client the order flow needs.
type Carrier interface {
	CreateOrder(req elogistia.OrderRequest) elogistia.OrderResult
	GetOrders() []map[string]any
	FindWilaya(wilayaID string) *elogistia.Wilaya
	GetMunicipalities(wilayaID string) []elogistia.Municipality
}

// -------- Request Structs --------

type CheckoutRequest struct {
	CartToken      string `json:"cartToken" binding:"required"`
	CustomerName   string `json:"customerName" binding:"required"`
	CustomerPhone  string `json:"customerPhone" binding:"required"`
	CustomerEmail  string `json:"customerEmail"`
	Address        string `json:"address"`
	WilayaID       string `json:"wilayaId" binding:"required"`
	MunicipalityID string `json:"municipalityId" binding:"required"`
	DeliveryType   string `json:"deliveryType"`
}

var (
	ErrCartEmpty        = errors.New("cart is empty")
	ErrMissingCustomer  = errors.New("customer name, phone, wilaya and municipality are required")
	ErrOrderNotFound    = errors.New("order not found")
	ErrAlreadyProcessed = errors.New("order already processed")
)

// -------- Helpers --------

// generateOrderNumber builds a collision-resistant order key, e.g.
// DRN-1726000000000-9F2K310AB. The numeric middle keeps the feed sortable
// most-recent-first by numeric parse.
func generateOrderNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:9]
	return fmt.Sprintf("DRN-%d-%s", time.Now().UnixMilli(), suffix)
}

func mapDeliveryType(raw string) models.DeliveryType {
	if strings.EqualFold(strings.TrimSpace(raw), string(models.DeliveryStopdesk)) {
		return models.DeliveryStopdesk
	}
	return models.DeliveryHome
}

// -------- Core Logic --------

// PlaceOrder turns a cart plus customer info into a persisted PENDING order,
// then attempts to forward it to the carrier. The local order is durable
// before the carrier is touched: a failed forward leaves the order PENDING
// with the carrier error in its internal notes for an admin to retry, and is
// not reported as a failure to the customer. The cart is cleared as soon as
// local persistence succeeds.
func PlaceOrder(db *gorm.DB, carrier Carrier, req CheckoutRequest) (*models.Order, error) {
	if strings.TrimSpace(req.CustomerName) == "" || strings.TrimSpace(req.CustomerPhone) == "" ||
		strings.TrimSpace(req.WilayaID) == "" || strings.TrimSpace(req.MunicipalityID) == "" {
		return nil, ErrMissingCustomer
	}

	var cart models.Cart
	if err := db.Preload("Items").Where("token = ?", req.CartToken).First(&cart).Error; err != nil {
		return nil, ErrCartEmpty
	}
	if len(cart.Items) == 0 {
		return nil, ErrCartEmpty
	}

	deliveryType := mapDeliveryType(req.DeliveryType)
	wilaya := carrier.FindWilaya(req.WilayaID)
	wilayaLabel := ""
	if wilaya != nil {
		wilayaLabel = strings.TrimSpace(wilaya.WilayaLabel)
	}

	municipalityLabel := ""
	for _, m := range carrier.GetMunicipalities(req.WilayaID) {
		if m.ID == req.MunicipalityID {
			municipalityLabel = strings.TrimSpace(m.Name)
			break
		}
	}

	address := strings.TrimSpace(req.Address)
	if address == "" {
		address = strings.TrimSpace(municipalityLabel + ", " + wilayaLabel)
		address = strings.Trim(address, ", ")
	}

	subtotal := pricing.CartSubtotal(cart.Items)
	shippingCost := pricing.ShippingCost(wilaya, deliveryType)
	total := pricing.OrderTotal(subtotal, shippingCost)

	order := models.Order{
		OrderNumber:  generateOrderNumber(),
		CustomerName: strings.TrimSpace(req.CustomerName),
		// Stored normalized so the by-phone lookup's equality match holds.
		CustomerPhone:  NormalizePhone(req.CustomerPhone),
		CustomerEmail:  strings.TrimSpace(req.CustomerEmail),
		Address:        address,
		WilayaID:       req.WilayaID,
		Wilaya:         wilayaLabel,
		MunicipalityID: req.MunicipalityID,
		Municipality:   municipalityLabel,
		DeliveryType:   deliveryType,
		ShippingCost:   shippingCost,
		Subtotal:       subtotal,
		Total:          total,
		Status:         models.OrderStatusPending,
		CreatedAt:      time.Now(),
	}
	for _, item := range cart.Items {
		quantity := pricing.CoerceQuantity(item.Quantity)
		order.Items = append(order.Items, models.OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			VariantName: item.VariantName,
			Quantity:    quantity,
			UnitPrice:   item.UnitPrice,
			Total:       pricing.LineTotal(item.UnitPrice, quantity),
		})
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		// Purchase intent is durably recorded; the cart's job is done.
		return tx.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return nil, err
	}

	broadcastNewOrder(order)

	if result := forwardOrder(db, carrier, &order); !result.Success {
		log.Printf("order %s: carrier forward failed, left PENDING for manual retry: %s", order.OrderNumber, result.Error)
	}
	return &order, nil
}

// forwardOrder pushes a PENDING order to the carrier and reconciles the
// outcome: success marks it CONFIRMED with the tracking number attached,
// failure records the carrier error in the order's notes and leaves the
// status untouched so the confirm action can be retried.
func forwardOrder(db *gorm.DB, carrier Carrier, order *models.Order) elogistia.OrderResult {
	products := make([]elogistia.OrderProduct, len(order.Items))
	for i, item := range order.Items {
		name := item.ProductName
		if item.VariantName != "" {
			name = fmt.Sprintf("%s - %s", item.ProductName, item.VariantName)
		}
		products[i] = elogistia.OrderProduct{
			Name:  fmt.Sprintf("%s (x%d)", name, item.Quantity),
			Price: item.Total,
		}
	}

	result := carrier.CreateOrder(elogistia.OrderRequest{
		CustomerName:  order.CustomerName,
		CustomerPhone: order.CustomerPhone,
		CustomerEmail: order.CustomerEmail,
		Address:       order.Address,
		WilayaID:      order.WilayaID,
		Municipality:  order.Municipality,
		DeliveryType:  string(order.DeliveryType),
		ShippingCost:  order.ShippingCost,
		Products:      products,
		Notes:         fmt.Sprintf("Sous-total: %.0f DA | Frais de livraison: %.0f DA | Total: %.0f DA", order.Subtotal, order.ShippingCost, order.Total),
		OrderNumber:   order.OrderNumber,
	})

	if result.Success {
		updates := map[string]any{
			"status":          models.OrderStatusConfirmed,
			"tracking_number": result.TrackingNumber,
		}
		if err := db.Model(order).Updates(updates).Error; err != nil {
			log.Printf("order %s: confirmed by carrier but local update failed: %v", order.OrderNumber, err)
		}
		order.Status = models.OrderStatusConfirmed
		order.TrackingNumber = result.TrackingNumber
		return result
	}

	note := "Elogistia error: " + result.Error
	if err := db.Model(order).Update("notes", note).Error; err != nil {
		log.Printf("order %s: recording carrier error failed: %v", order.OrderNumber, err)
	}
	order.Notes = note
	return result
}

// -------- Handlers --------

// POST /orders — customer checkout. Always reports success once the order is
// locally persisted, whatever the carrier said.
func PlaceOrderHandler(db *gorm.DB, carrier Carrier) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		order, err := PlaceOrder(db, carrier, req)
		if err != nil {
			if errors.Is(err, ErrCartEmpty) || errors.Is(err, ErrMissingCustomer) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create order"})
			return
		}
		c.JSON(http.StatusCreated, ViewFromOrder(*order))
	}
}

// POST /admin/orders/:orderID/confirm — re-attempts the carrier forward for
// any PENDING order. The status guard, not a lock, rejects a second
// confirming admin.
func ConfirmOrderHandler(db *gorm.DB, carrier Carrier) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := loadPendingOrder(db, c.Param("orderID"))
		if err != nil {
			respondOrderActionError(c, err)
			return
		}

		result := forwardOrder(db, carrier, order)
		if !result.Success {
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "carrier rejected the order: " + result.Error,
				"order": ViewFromOrder(*order),
			})
			return
		}
		c.JSON(http.StatusOK, ViewFromOrder(*order))
	}
}

// POST /admin/orders/:orderID/cancel — PENDING orders only; terminal.
func CancelOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := loadPendingOrder(db, c.Param("orderID"))
		if err != nil {
			respondOrderActionError(c, err)
			return
		}
		if err := db.Model(order).Update("status", models.OrderStatusCancelled).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel order"})
			return
		}
		order.Status = models.OrderStatusCancelled
		c.JSON(http.StatusOK, ViewFromOrder(*order))
	}
}

// orderLookup addresses an order by numeric id or by order number. Exactly
// one column is queried: postgres refuses to compare the integer id column
// against a non-numeric string.
func orderLookup(db *gorm.DB, orderID string) *gorm.DB {
	if _, err := strconv.ParseUint(orderID, 10, 64); err == nil {
		return db.Where("id = ?", orderID)
	}
	return db.Where("order_number = ?", orderID)
}

func loadPendingOrder(db *gorm.DB, orderID string) (*models.Order, error) {
	if orderID == "" {
		return nil, ErrOrderNotFound
	}
	var order models.Order
	if err := orderLookup(db, orderID).Preload("Items").First(&order).Error; err != nil {
		return nil, ErrOrderNotFound
	}
	if order.Status != models.OrderStatusPending {
		return nil, ErrAlreadyProcessed
	}
	return &order, nil
}

func respondOrderActionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, ErrAlreadyProcessed):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

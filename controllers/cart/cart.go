package cartControllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sidjamyl/Darine-emballage/models"
	"github.com/sidjamyl/Darine-emballage/pricing"
)

// The cart lives server-side, keyed by an opaque token the browser stores.
// Prices and display names are frozen into the row at add-time; later
// catalog edits do not touch carts.

const cartTokenHeader = "X-Cart-Token"

type AddItemInput struct {
	ProductID uint   `json:"product_id" binding:"required"`
	VariantID uint   `json:"variant_id"`
	Quantity  int    `json:"quantity"`
	Locale    string `json:"locale"`
}

type UpdateItemInput struct {
	ProductID   uint   `json:"product_id" binding:"required"`
	VariantName string `json:"variant_name"`
	Quantity    string `json:"quantity"`
}

// POST /cart/token
func IssueCartToken(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart := models.Cart{Token: uuid.NewString()}
		if err := db.Create(&cart).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create cart"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"token": cart.Token})
	}
}

// GET /cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, ok := loadCart(c, db)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"items":    cart.Items,
			"subtotal": pricing.CartSubtotal(cart.Items),
		})
	}
}

// POST /cart/items
func AddCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, ok := loadCart(c, db)
		if !ok {
			return
		}

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.Preload("Variants").First(&product, "id = ?", input.ProductID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			return
		}

		var variant *models.Variant
		if input.VariantID != 0 {
			for i := range product.Variants {
				if product.Variants[i].ID == input.VariantID {
					variant = &product.Variants[i]
					break
				}
			}
			if variant == nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Variant does not belong to product"})
				return
			}
		}

		item := models.CartItem{
			ProductID:   product.ID,
			ProductName: localizedName(product.NameFr, product.NameAr, input.Locale),
			Quantity:    input.Quantity,
			UnitPrice:   pricing.UnitPrice(product, variant),
			Image:       product.Image,
			AddedAt:     time.Now(),
		}
		if variant != nil {
			item.VariantName = localizedName(variant.NameFr, variant.NameAr, input.Locale)
		}

		if err := saveItems(db, cart, MergeItem(cart.Items, item)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Item added"})
	}
}

// PUT /cart/items — set a row's quantity; 0 or below removes it, junk input
// coerces to 1 so a stored quantity is never invalid.
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, ok := loadCart(c, db)
		if !ok {
			return
		}

		var input UpdateItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		// Numeric input passes through so 0 and negatives remove the row;
		// junk coerces to 1 and never lands in storage.
		quantity, err := strconv.Atoi(input.Quantity)
		if err != nil {
			quantity = pricing.ParseQuantity(input.Quantity)
		}

		updated := ApplyQuantity(cart.Items, input.ProductID, input.VariantName, quantity)
		if err := saveItems(db, cart, updated); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart updated"})
	}
}

// DELETE /cart/items/:product_id?variant=
func DeleteCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, ok := loadCart(c, db)
		if !ok {
			return
		}

		productID, err := strconv.ParseUint(c.Param("product_id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			return
		}

		updated := RemoveItem(cart.Items, uint(productID), c.Query("variant"))
		if len(updated) == len(cart.Items) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		if err := saveItems(db, cart, updated); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// DELETE /cart
func ClearCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, ok := loadCart(c, db)
		if !ok {
			return
		}
		if err := db.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

func loadCart(c *gin.Context, db *gorm.DB) (*models.Cart, bool) {
	token := c.GetHeader(cartTokenHeader)
	if token == "" {
		token = c.Query("token")
	}
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart token is required"})
		return nil, false
	}

	var cart models.Cart
	if err := db.Preload("Items").Where("token = ?", token).First(&cart).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
		return nil, false
	}
	return &cart, true
}

// saveItems replaces the cart's rows with the merged list in one transaction.
func saveItems(db *gorm.DB, cart *models.Cart, items []models.CartItem) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].ID = 0
			items[i].CartID = cart.CartID
		}
		if len(items) == 0 {
			return nil
		}
		return tx.Create(&items).Error
	})
}

func localizedName(fr, ar, locale string) string {
	if locale == "ar" && ar != "" {
		return ar
	}
	if fr == "" {
		return ar
	}
	return fr
}

package productcontroller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sidjamyl/Darine-emballage/models"
)

// UpdateProduct replaces the product's fields and its whole variant set.
// Variants are a composition: the old set is deleted and the submitted set
// recreated under the parent, so stale variants never linger.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
			return
		}

		var product models.Product
		if err := db.Preload("Variants").First(&product, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if err := validateProductInput(input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("product_id = ?", product.ID).Delete(&models.Variant{}).Error; err != nil {
				return err
			}

			product.NameFr = strings.TrimSpace(input.NameFr)
			product.NameAr = strings.TrimSpace(input.NameAr)
			product.DescriptionFr = input.DescriptionFr
			product.DescriptionAr = input.DescriptionAr
			product.BasePrice = input.BasePrice
			product.Type = models.ProductType(input.Type)
			product.Image = input.Image
			product.HasVariants = input.HasVariants
			product.IsPopular = input.IsPopular
			product.IsPinned = input.IsPinned
			product.RibbonText = input.RibbonText
			product.NewUntil = input.NewUntil
			product.Variants = buildVariants(input.Variants)

			return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(&product).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}

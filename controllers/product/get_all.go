package productcontroller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sidjamyl/Darine-emballage/models"
)

// GetProducts lists the catalog, newest first, with the storefront's
// filters: ?popular=true, ?pinned=true, ?type=FOOD|PACKAGING, ?search=.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Product{}).Preload("Variants")

		if c.Query("popular") == "true" {
			query = query.Where("is_popular = ?", true)
		}
		if c.Query("pinned") == "true" {
			query = query.Where("is_pinned = ?", true)
		}
		if productType := strings.ToUpper(c.Query("type")); productType != "" {
			switch models.ProductType(productType) {
			case models.ProductTypeFood, models.ProductTypePackaging:
				query = query.Where("type = ?", productType)
			default:
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid type"})
				return
			}
		}
		if search := c.Query("search"); search != "" {
			likePattern := "%" + search + "%"
			query = query.Where(
				"name_fr ILIKE ? OR name_ar ILIKE ? OR description_fr ILIKE ? OR description_ar ILIKE ?",
				likePattern, likePattern, likePattern, likePattern,
			)
		}

		var products []models.Product
		if err := query.Order("created_at DESC").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

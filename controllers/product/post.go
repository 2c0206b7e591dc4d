package productcontroller

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sidjamyl/Darine-emballage/models"
)

type VariantInput struct {
	NameFr string  `json:"nameFr"`
	NameAr string  `json:"nameAr"`
	Price  float64 `json:"price"`
}

type ProductInput struct {
	NameFr        string         `json:"nameFr"`
	NameAr        string         `json:"nameAr"`
	DescriptionFr string         `json:"descriptionFr"`
	DescriptionAr string         `json:"descriptionAr"`
	BasePrice     float64        `json:"basePrice"`
	Type          string         `json:"type"`
	Image         string         `json:"image"`
	HasVariants   bool           `json:"hasVariants"`
	IsPopular     bool           `json:"isPopular"`
	IsPinned      bool           `json:"isPinned"`
	RibbonText    string         `json:"ribbonText"`
	NewUntil      *time.Time     `json:"newUntil"`
	Variants      []VariantInput `json:"variants"`
}

// validateProductInput enforces the catalog rules before anything is
// persisted: a positive base price, a known type, and a variant set that is
// non-empty exactly when hasVariants is set, each variant named with a
// positive absolute price.
func validateProductInput(input ProductInput) error {
	if strings.TrimSpace(input.NameFr) == "" {
		return errors.New("nameFr is required")
	}
	if input.BasePrice <= 0 {
		return errors.New("basePrice must be greater than 0")
	}
	switch models.ProductType(input.Type) {
	case models.ProductTypeFood, models.ProductTypePackaging:
	default:
		return errors.New("type must be FOOD or PACKAGING")
	}
	if input.HasVariants {
		if len(input.Variants) == 0 {
			return errors.New("a product with variants needs at least one variant")
		}
		for _, v := range input.Variants {
			if strings.TrimSpace(v.NameFr) == "" {
				return errors.New("every variant needs a name")
			}
			if v.Price <= 0 {
				return errors.New("every variant needs a price greater than 0")
			}
		}
	} else if len(input.Variants) > 0 {
		return errors.New("variants supplied but hasVariants is false")
	}
	return nil
}

func buildVariants(inputs []VariantInput) []models.Variant {
	variants := make([]models.Variant, len(inputs))
	for i, v := range inputs {
		variants[i] = models.Variant{
			NameFr: strings.TrimSpace(v.NameFr),
			NameAr: strings.TrimSpace(v.NameAr),
			Price:  v.Price,
		}
	}
	return variants
}

// CreateProduct creates a product with its variant set in one transaction.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if err := validateProductInput(input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		product := models.Product{
			NameFr:        strings.TrimSpace(input.NameFr),
			NameAr:        strings.TrimSpace(input.NameAr),
			DescriptionFr: input.DescriptionFr,
			DescriptionAr: input.DescriptionAr,
			BasePrice:     input.BasePrice,
			Type:          models.ProductType(input.Type),
			Image:         input.Image,
			HasVariants:   input.HasVariants,
			IsPopular:     input.IsPopular,
			IsPinned:      input.IsPinned,
			RibbonText:    input.RibbonText,
			NewUntil:      input.NewUntil,
			Variants:      buildVariants(input.Variants),
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}

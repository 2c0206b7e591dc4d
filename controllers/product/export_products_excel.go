package productcontroller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/sidjamyl/Darine-emballage/models"
)

// ExportProductsToExcel dumps the catalog for audit, variants summarized
// inline as "name:price" pairs.
func ExportProductsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Preload("Variants").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "NameFr", "NameAr", "Type", "BasePrice",
			"HasVariants", "Variants", "IsPopular", "IsPinned",
			"Image", "CreatedAt", "UpdatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range products {
			row := sheet.AddRow()

			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.NameFr)
			row.AddCell().SetValue(p.NameAr)
			row.AddCell().SetValue(string(p.Type))
			row.AddCell().SetValue(p.BasePrice)
			row.AddCell().SetValue(p.HasVariants)

			var variants []string
			for _, v := range p.Variants {
				variants = append(variants, v.NameFr+":"+formatPrice(v.Price))
			}
			row.AddCell().SetValue(strings.Join(variants, ","))

			row.AddCell().SetValue(p.IsPopular)
			row.AddCell().SetValue(p.IsPinned)
			row.AddCell().SetValue(p.Image)
			row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
			row.AddCell().SetValue(p.UpdatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}

package orderControllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/sidjamyl/Darine-emballage/models"
)

// ExportOrdersToExcel hands the local order book to the back-office as a
// spreadsheet, one row per order with its items flattened.
func ExportOrdersToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Preload("Items").Order("created_at DESC").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"OrderNumber", "Customer", "Phone", "Wilaya", "Municipality",
			"DeliveryType", "Items", "Subtotal", "ShippingCost", "Total",
			"Status", "Tracking", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, o := range orders {
			row := sheet.AddRow()

			row.AddCell().SetValue(o.OrderNumber)
			row.AddCell().SetValue(o.CustomerName)
			row.AddCell().SetValue(o.CustomerPhone)
			row.AddCell().SetValue(o.Wilaya)
			row.AddCell().SetValue(o.Municipality)
			row.AddCell().SetValue(string(o.DeliveryType))

			var lines []string
			for _, item := range o.Items {
				name := item.ProductName
				if item.VariantName != "" {
					name += " - " + item.VariantName
				}
				lines = append(lines, name+" x"+strconv.Itoa(item.Quantity))
			}
			row.AddCell().SetValue(strings.Join(lines, "; "))

			row.AddCell().SetValue(o.Subtotal)
			row.AddCell().SetValue(o.ShippingCost)
			row.AddCell().SetValue(o.Total)
			row.AddCell().SetValue(string(o.Status))
			row.AddCell().SetValue(o.TrackingNumber)
			row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}

package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/sidjamyl/Darine-emballage/controllers/order"
	"github.com/sidjamyl/Darine-emballage/elogistia"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB, client *elogistia.Client) {
	orders := r.Group("/orders")
	{
		// Checkout: persist locally then forward to the carrier
		orders.POST("/place", orderControllers.PlaceOrderHandler(db, client))

		// Customer-facing order lookup by phone number (?phone=)
		orders.GET("/by-phone", orderControllers.OrdersByPhoneHandler(db, client))

		// websocket endpoint for real-time order updates
		orders.GET("/ws", orderControllers.OrderWebSocketHandler)
	}
}

package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	contactControllers "github.com/sidjamyl/Darine-emballage/controllers/contact"
	orderControllers "github.com/sidjamyl/Darine-emballage/controllers/order"
	productcontroller "github.com/sidjamyl/Darine-emballage/controllers/product"
	userControllers "github.com/sidjamyl/Darine-emballage/controllers/user"
	"github.com/sidjamyl/Darine-emballage/elogistia"
	"github.com/sidjamyl/Darine-emballage/middleware"
)

func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, client *elogistia.Client) {
	admin := r.Group("/admin")
	admin.Use(middleware.ValidateToken(), middleware.RequireAdmin())
	{
		products := admin.Group("/products")
		{
			products.POST("/", productcontroller.CreateProduct(db))
			products.PUT("/:id", productcontroller.UpdateProduct(db))
			products.DELETE("/:id", productcontroller.DeleteProduct(db))
			products.POST("/upload", productcontroller.UploadImage())
			products.GET("/export", productcontroller.ExportProductsToExcel(db))
		}

		orders := admin.Group("/orders")
		{
			orders.GET("/", orderControllers.GetAllOrdersHandler(db))
			orders.GET("/:orderID", orderControllers.GetOrderByIDHandler(db))

			// Live feed from the carrier, normalized to the local shape
			orders.GET("/carrier", orderControllers.GetCarrierOrdersHandler(client))

			orders.POST("/:orderID/confirm", orderControllers.ConfirmOrderHandler(db, client))
			orders.POST("/:orderID/cancel", orderControllers.CancelOrderHandler(db))
			orders.GET("/export", orderControllers.ExportOrdersToExcel(db))
		}

		users := admin.Group("/users")
		{
			users.GET("/", userControllers.GetAllUsers(db))
			users.POST("/", userControllers.CreateUser(db))
			users.DELETE("/:id", userControllers.DeleteUser(db))
			users.PATCH("/:id/role", userControllers.UpdateUserRole(db))
		}

		admin.GET("/contact-messages", contactControllers.GetContactMessages(db))
	}
}

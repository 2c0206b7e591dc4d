package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/sidjamyl/Darine-emballage/controllers/cart"
)

func SetupCartRoutes(r *gin.Engine, db *gorm.DB) {
	cart := r.Group("/cart")
	{
		// Issue a fresh cart token for a new visitor
		cart.POST("/token", cartControllers.IssueCartToken(db))

		// Current cart contents with subtotal
		cart.GET("/", cartControllers.GetCart(db))

		// Add a product (or one of its variants) to the cart
		cart.POST("/items", cartControllers.AddCartItem(db))

		// Change the quantity of a line
		cart.PUT("/items", cartControllers.UpdateCartItem(db))

		// Remove a single line (?variant= selects the variant line)
		cart.DELETE("/items/:product_id", cartControllers.DeleteCartItem(db))

		// Empty the cart
		cart.DELETE("/", cartControllers.ClearCart(db))
	}
}

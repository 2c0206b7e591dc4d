package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	contactControllers "github.com/sidjamyl/Darine-emballage/controllers/contact"
	geoControllers "github.com/sidjamyl/Darine-emballage/controllers/geo"
	productcontroller "github.com/sidjamyl/Darine-emballage/controllers/product"
	"github.com/sidjamyl/Darine-emballage/elogistia"
)

func SetupStoreRoutes(r *gin.Engine, db *gorm.DB, client *elogistia.Client) {
	products := r.Group("/products")
	{
		// Catalog listing with ?type=, ?popular=, ?pinned= and ?search= filters
		products.GET("/", productcontroller.GetProducts(db))

		// Single product with variants preloaded
		products.GET("/:id", productcontroller.GetProductByID(db))

		// Variants of a product
		products.GET("/:id/variants", productcontroller.GetProductVariants(db))
	}

	geo := r.Group("/geo")
	{
		geo.GET("/wilayas", geoControllers.GetWilayas(client))
		geo.GET("/municipalities/:wilayaId", geoControllers.GetMunicipalities(client))
		geo.GET("/tracking/:tracking", geoControllers.GetTracking(client))
	}

	r.POST("/contact", contactControllers.SubmitContactForm(db))
}

package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sidjamyl/Darine-emballage/elogistia"
)

// SetupRoutes is the single entry-point that wires up the public storefront,
// auth, and admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, client *elogistia.Client) {
	// Public storefront (no middleware)
	SetupStoreRoutes(r, db, client)

	// Cart routes (token-based, no auth)
	SetupCartRoutes(r, db)

	// Checkout and order tracking
	SetupOrderRoutes(r, db, client)

	// Login / register
	SetupAuthRoutes(r, db)

	// Back office (JWT + admin role)
	SetupAdminRoutes(r, db, client)
}

package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sidjamyl/Darine-emballage/auth"
)

func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	a := r.Group("/auth")
	{
		a.POST("/login", auth.LoginHandler(db))
		a.POST("/register", auth.RegisterHandler(db))
	}
}

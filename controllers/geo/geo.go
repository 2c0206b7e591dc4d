package geoControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sidjamyl/Darine-emballage/elogistia"
)

// Thin handlers over the carrier's geography catalog. Failures already fold
// to empty lists inside the client, so these never error out: an empty list
// means "try later" to the storefront.

// GET /geo/wilayas
func GetWilayas(client *elogistia.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, client.GetWilayas())
	}
}

// GET /geo/municipalities/:wilayaId
func GetMunicipalities(client *elogistia.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, client.GetMunicipalities(c.Param("wilayaId")))
	}
}

// GET /geo/tracking/:tracking
func GetTracking(client *elogistia.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := client.GetTracking(c.Param("tracking"))
		if status == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "tracking information unavailable"})
			return
		}
		c.JSON(http.StatusOK, status)
	}
}

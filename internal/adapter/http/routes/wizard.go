package routes

import (
	"estimate_wizard/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathWizards   = "/wizards"
	PathCatalog   = "/catalog"
	PathGallery   = "/gallery"
	PathEstimates = "/estimates"
)

func addWizardRoutes(rg *gin.RouterGroup, h *handlers.WizardHandler) {
	wizards := rg.Group(PathWizards)
	{
		wizards.POST("", h.Mount)
		wizards.POST("/:session_id", h.Mount)
		wizards.GET("/:session_id", h.Get)

		// One endpoint per wizard step.
		wizards.PATCH("/:session_id/vehicle", h.UpdateVehicle)
		wizards.PATCH("/:session_id/services", h.UpdateServices)
		wizards.PATCH("/:session_id/package", h.UpdatePackage)
		wizards.PATCH("/:session_id/contact", h.UpdateContact)

		wizards.POST("/:session_id/next", h.Next)
		wizards.POST("/:session_id/previous", h.Previous)
		wizards.POST("/:session_id/submit", h.Submit)
		wizards.POST("/:session_id/reset", h.Reset)
	}
}

func addCatalogRoutes(rg *gin.RouterGroup, h *handlers.CatalogHandler) {
	cat := rg.Group(PathCatalog)
	{
		cat.GET("", h.List)
		cat.GET("/recommendations", h.Recommendations)
	}
}

func addGalleryRoutes(rg *gin.RouterGroup, h *handlers.GalleryHandler) {
	gallery := rg.Group(PathGallery)
	{
		gallery.GET("", h.List)
		gallery.GET("/:id", h.Get)
		gallery.GET("/:id/neighbors", h.Neighbors)
	}
}

func addEstimateRoutes(rg *gin.RouterGroup, h *handlers.EstimateHandler) {
	rg.GET(PathEstimates+"/:id", h.GetEstimate)
}

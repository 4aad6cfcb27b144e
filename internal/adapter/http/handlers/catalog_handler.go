package handlers

import (
	"net/http"

	request "estimate_wizard/internal/adapter/http/dto/request"
	response "estimate_wizard/internal/adapter/http/dto/response"
	"estimate_wizard/internal/domain/catalog"
	"estimate_wizard/internal/usecase/pricing"
	"estimate_wizard/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCatalogQuery = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

// CatalogHandler serves the read-only service and package catalog.
type CatalogHandler struct {
	catalog *catalog.Catalog
}

func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

func (h *CatalogHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, response.CatalogResponse{
		Services: response.FromServices(h.catalog.Services()),
		Packages: response.FromPackages(h.catalog.Packages()),
	})
}

// Recommendations returns the services ordered for the given vehicle.
func (h *CatalogHandler) Recommendations(c *gin.Context) {
	var q request.RecommendationQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidCatalogQuery.HTTPStatus, errInvalidCatalogQuery.ToHTTPError())
		return
	}

	ordered := pricing.RecommendServices(h.catalog.Services(), q.ToVehicle())
	c.JSON(http.StatusOK, response.FromServices(ordered))
}

package handlers

import (
	"errors"
	"net/http"

	request "estimate_wizard/internal/adapter/http/dto/request"
	response "estimate_wizard/internal/adapter/http/dto/response"
	"estimate_wizard/internal/usecase"
	"estimate_wizard/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidGalleryQuery = pkg.NewDomainErrorSimple("INVALID_GALLERY_FILTER", "Invalid gallery filter", http.StatusBadRequest)
)

// GalleryHandler serves the portfolio list and its detail navigation. The
// filter travels in the query string so prev/next stay inside it.
type GalleryHandler struct {
	usecase usecase.IGalleryUseCase
}

func NewGalleryHandler(uc usecase.IGalleryUseCase) *GalleryHandler {
	return &GalleryHandler{usecase: uc}
}

func (h *GalleryHandler) List(c *gin.Context) {
	var q request.GalleryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidGalleryQuery.HTTPStatus, errInvalidGalleryQuery.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromGallery(h.usecase.Filter(q.ToFilter())))
}

func (h *GalleryHandler) Get(c *gin.Context) {
	var q request.GalleryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidGalleryQuery.HTTPStatus, errInvalidGalleryQuery.ToHTTPError())
		return
	}

	item, err := h.usecase.Open(q.ToFilter(), c.Param("id"))
	if err != nil {
		appErr := mapGalleryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromMediaItem(item))
}

func (h *GalleryHandler) Neighbors(c *gin.Context) {
	var q request.GalleryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidGalleryQuery.HTTPStatus, errInvalidGalleryQuery.ToHTTPError())
		return
	}

	prev, next, err := h.usecase.Neighbors(q.ToFilter(), c.Param("id"))
	if err != nil {
		appErr := mapGalleryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.NeighborsResponse{
		Previous: response.FromMediaItem(prev),
		Next:     response.FromMediaItem(next),
	})
}

func mapGalleryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMediaNotFound):
		return pkg.NewDomainErrorSimple("MEDIA_NOT_FOUND", "Media item not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

package handlers

import (
	"errors"
	"log"
	"net/http"

	response "estimate_wizard/internal/adapter/http/dto/response"
	"estimate_wizard/internal/usecase"
	"estimate_wizard/pkg"

	"github.com/gin-gonic/gin"
)

// EstimateHandler reads back submitted estimate requests.
type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	id := c.Param("id")

	rec, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("[estimate][handler] get failed estimate_id=%s err=%v", id, err)
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimateRecord(rec))
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEstimateID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

package handlers

import (
	"errors"
	"log"
	"net/http"

	request "estimate_wizard/internal/adapter/http/dto/request"
	response "estimate_wizard/internal/adapter/http/dto/response"
	"estimate_wizard/internal/usecase"
	"estimate_wizard/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidWizardPayload = pkg.NewDomainErrorSimple("INVALID_WIZARD_INPUT", "Invalid wizard payload", http.StatusBadRequest)
)

// WizardHandler exposes the estimate wizard of one browser session.
type WizardHandler struct {
	usecase usecase.IWizardUseCase
}

func NewWizardHandler(uc usecase.IWizardUseCase) *WizardHandler {
	return &WizardHandler{usecase: uc}
}

// Mount hydrates the session's wizard from its draft, or starts an empty one.
// Without a session id a new session is created.
func (h *WizardHandler) Mount(c *gin.Context) {
	sessionID := c.Param("session_id")

	snap, err := h.usecase.Mount(c.Request.Context(), sessionID)
	if err != nil {
		h.fail(c, "mount", sessionID, err)
		return
	}

	status := http.StatusOK
	if sessionID == "" {
		status = http.StatusCreated
	}
	c.JSON(status, response.FromSnapshot(snap))
}

func (h *WizardHandler) Get(c *gin.Context) {
	sessionID := c.Param("session_id")

	snap, err := h.usecase.Get(c.Request.Context(), sessionID)
	if err != nil {
		h.fail(c, "get", sessionID, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSnapshot(snap))
}

func (h *WizardHandler) UpdateVehicle(c *gin.Context) {
	sessionID := c.Param("session_id")

	var payload request.VehicleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWizardPayload.HTTPStatus, errInvalidWizardPayload.ToHTTPError())
		return
	}

	snap, err := h.usecase.UpdateVehicle(c.Request.Context(), sessionID, payload.ToPatch())
	if err != nil {
		h.fail(c, "vehicle", sessionID, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSnapshot(snap))
}

// UpdateServices toggles a single service when "toggle" is set and replaces
// the whole selection otherwise.
func (h *WizardHandler) UpdateServices(c *gin.Context) {
	sessionID := c.Param("session_id")

	var payload request.ServicesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWizardPayload.HTTPStatus, errInvalidWizardPayload.ToHTTPError())
		return
	}

	var (
		snap usecase.Snapshot
		err  error
	)
	if payload.IsToggle() {
		snap, err = h.usecase.ToggleService(c.Request.Context(), sessionID, payload.Toggle)
	} else {
		snap, err = h.usecase.SetServices(c.Request.Context(), sessionID, payload.ResolveServices())
	}
	if err != nil {
		h.fail(c, "services", sessionID, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSnapshot(snap))
}

func (h *WizardHandler) UpdatePackage(c *gin.Context) {
	sessionID := c.Param("session_id")

	var payload request.PackageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWizardPayload.HTTPStatus, errInvalidWizardPayload.ToHTTPError())
		return
	}

	snap, err := h.usecase.SelectPackage(c.Request.Context(), sessionID, payload.PackageID)
	if err != nil {
		h.fail(c, "package", sessionID, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSnapshot(snap))
}

func (h *WizardHandler) UpdateContact(c *gin.Context) {
	sessionID := c.Param("session_id")

	var payload request.ContactRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWizardPayload.HTTPStatus, errInvalidWizardPayload.ToHTTPError())
		return
	}

	snap, err := h.usecase.UpdateContact(c.Request.Context(), sessionID, payload.ToPatch())
	if err != nil {
		h.fail(c, "contact", sessionID, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSnapshot(snap))
}

// Next runs the active step's gate. A blocked gate is still a 200: the field
// errors are part of the body.
func (h *WizardHandler) Next(c *gin.Context) {
	sessionID := c.Param("session_id")

	res, snap, err := h.usecase.Next(c.Request.Context(), sessionID)
	if err != nil {
		h.fail(c, "next", sessionID, err)
		return
	}
	c.JSON(http.StatusOK, response.FromStep(res, snap))
}

func (h *WizardHandler) Previous(c *gin.Context) {
	sessionID := c.Param("session_id")

	snap, err := h.usecase.Previous(c.Request.Context(), sessionID)
	if err != nil {
		h.fail(c, "previous", sessionID, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSnapshot(snap))
}

func (h *WizardHandler) Submit(c *gin.Context) {
	sessionID := c.Param("session_id")
	log.Printf("[wizard][handler] submit start session_id=%s", sessionID)

	snap, err := h.usecase.Submit(c.Request.Context(), sessionID)
	if err != nil {
		log.Printf("[wizard][handler] submit failed session_id=%s err=%v", sessionID, err)
		appErr := mapWizardError(err)
		switch {
		case errors.Is(err, usecase.ErrRecordInvalid):
			appErr = appErr.WithDetails(snap.Errors)
		case errors.Is(err, usecase.ErrSubmissionFailed) && snap.SubmitError != "":
			appErr.Message = snap.SubmitError
		}
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[wizard][handler] submit success session_id=%s", sessionID)
	c.JSON(http.StatusCreated, response.FromSnapshot(snap))
}

func (h *WizardHandler) Reset(c *gin.Context) {
	sessionID := c.Param("session_id")

	snap, err := h.usecase.Reset(c.Request.Context(), sessionID)
	if err != nil {
		h.fail(c, "reset", sessionID, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSnapshot(snap))
}

func (h *WizardHandler) fail(c *gin.Context, op, sessionID string, err error) {
	log.Printf("[wizard][handler] %s failed session_id=%s err=%v", op, sessionID, err)
	appErr := mapWizardError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapWizardError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID):
		return pkg.NewDomainErrorSimple("INVALID_SESSION_ID", "Invalid session id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSubmissionInProgress):
		return pkg.NewDomainErrorSimple("SUBMISSION_IN_PROGRESS", "A submission is already in progress", http.StatusConflict)
	case errors.Is(err, usecase.ErrAlreadySubmitted):
		return pkg.NewDomainErrorSimple("ESTIMATE_ALREADY_SUBMITTED", "This estimate request was already sent", http.StatusConflict)
	case errors.Is(err, usecase.ErrNotOnFinalStep):
		return pkg.NewDomainErrorSimple("NOT_ON_FINAL_STEP", "Submit is only available on the review step", http.StatusConflict)
	case errors.Is(err, usecase.ErrResetNotAllowed):
		return pkg.NewDomainErrorSimple("RESET_NOT_ALLOWED", "The wizard can only be reset after a submission", http.StatusConflict)
	case errors.Is(err, usecase.ErrRecordInvalid):
		return pkg.NewDomainErrorSimple("VALIDATION_FAILED", "Some answers need attention", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrSubmissionFailed):
		return pkg.NewDomainError("SUBMISSION_FAILED", usecase.SubmitFailureMessage, err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

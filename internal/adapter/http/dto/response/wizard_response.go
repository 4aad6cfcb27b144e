package response

import (
	"estimate_wizard/internal/domain/entities"
	"estimate_wizard/internal/usecase"
)

// WizardResponse is everything the form needs to render the active step.
type WizardResponse struct {
	SessionID      string               `json:"session_id"`
	CurrentStep    int                  `json:"current_step"`
	Status         string               `json:"status"`
	Vehicle        entities.VehicleInfo `json:"vehicle"`
	Services       []string             `json:"services"`
	Package        string               `json:"package,omitempty"`
	Contact        entities.ContactInfo `json:"contact"`
	Errors         map[string]string    `json:"errors"`
	EstimatedPrice float64              `json:"estimated_price"`
	Recommended    []ServiceResponse    `json:"recommended_services"`
	SubmitError    string               `json:"submit_error,omitempty"`
	Estimate       *EstimateResponse    `json:"estimate,omitempty"`
}

// StepResponse is returned by the next action. A blocked gate is a 200 with
// advanced=false and the field errors.
type StepResponse struct {
	Advanced bool              `json:"advanced"`
	Step     int               `json:"step"`
	Errors   map[string]string `json:"errors"`
	Wizard   WizardResponse    `json:"wizard"`
}

func FromSnapshot(s usecase.Snapshot) WizardResponse {
	services := s.State.Services
	if services == nil {
		services = []string{}
	}
	errs := map[string]string(s.Errors)
	if errs == nil {
		errs = map[string]string{}
	}

	res := WizardResponse{
		SessionID:      s.SessionID,
		CurrentStep:    s.State.CurrentStep,
		Status:         string(s.State.Status),
		Vehicle:        s.State.Vehicle,
		Services:       services,
		Package:        s.State.Package,
		Contact:        s.State.Contact,
		Errors:         errs,
		EstimatedPrice: s.EstimatedPrice,
		Recommended:    FromServices(s.Recommended),
		SubmitError:    s.SubmitError,
	}
	if s.Record != nil {
		est := FromEstimateRecord(*s.Record)
		res.Estimate = &est
	}
	return res
}

func FromStep(r usecase.StepResult, s usecase.Snapshot) StepResponse {
	errs := map[string]string(r.Errors)
	if errs == nil {
		errs = map[string]string{}
	}
	return StepResponse{
		Advanced: r.Advanced,
		Step:     r.Step,
		Errors:   errs,
		Wizard:   FromSnapshot(s),
	}
}

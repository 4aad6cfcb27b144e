package request

import (
	"strings"

	"estimate_wizard/internal/domain/entities"
	"estimate_wizard/internal/usecase"
)

// VehicleRequest patches step 1. Absent fields are left untouched; values are
// checked by the wizard's step gate, not here.
type VehicleRequest struct {
	Year      *int    `json:"year" binding:"omitempty,min=0,max=9999"`
	Make      *string `json:"make" binding:"omitempty,max=200"`
	Model     *string `json:"model" binding:"omitempty,max=200"`
	Color     *string `json:"color" binding:"omitempty,max=200"`
	Condition *string `json:"condition" binding:"omitempty,max=20"`
}

func (r VehicleRequest) ToPatch() usecase.VehiclePatch {
	p := usecase.VehiclePatch{
		Year:  r.Year,
		Make:  r.Make,
		Model: r.Model,
		Color: r.Color,
	}
	if r.Condition != nil {
		c := entities.VehicleCondition(strings.TrimSpace(*r.Condition))
		p.Condition = &c
	}
	return p
}

// ServicesRequest either toggles one service or replaces the selection.
type ServicesRequest struct {
	Toggle   string   `json:"toggle" binding:"omitempty,max=64"`
	Services []string `json:"services" binding:"omitempty,max=32,dive,max=64"`
}

func (r ServicesRequest) IsToggle() bool {
	return strings.TrimSpace(r.Toggle) != ""
}

// ResolveServices returns the trimmed replacement selection, never nil.
func (r ServicesRequest) ResolveServices() []string {
	out := make([]string, 0, len(r.Services))
	for _, id := range r.Services {
		if id = strings.TrimSpace(id); id != "" {
			out = append(out, id)
		}
	}
	return out
}

// PackageRequest selects a bundle. An empty package_id clears it.
type PackageRequest struct {
	PackageID string `json:"package_id" binding:"max=64"`
}

type ContactRequest struct {
	Name                   *string `json:"name" binding:"omitempty,max=200"`
	Email                  *string `json:"email" binding:"omitempty,max=320"`
	Phone                  *string `json:"phone" binding:"omitempty,max=50"`
	PreferredContactMethod *string `json:"preferred_contact_method" binding:"omitempty,max=20"`
	Timeframe              *string `json:"timeframe" binding:"omitempty,max=20"`
	Notes                  *string `json:"notes" binding:"omitempty,max=2000"`
}

func (r ContactRequest) ToPatch() usecase.ContactPatch {
	p := usecase.ContactPatch{
		Name:  r.Name,
		Email: r.Email,
		Phone: r.Phone,
		Notes: r.Notes,
	}
	if r.PreferredContactMethod != nil {
		m := entities.ContactMethod(strings.TrimSpace(*r.PreferredContactMethod))
		p.PreferredContactMethod = &m
	}
	if r.Timeframe != nil {
		tf := entities.Timeframe(strings.TrimSpace(*r.Timeframe))
		p.Timeframe = &tf
	}
	return p
}

package response

import (
	"time"

	"estimate_wizard/internal/domain/entities"
)

type EstimateResponse struct {
	EstimateID     string               `json:"estimate_id"`
	SessionID      string               `json:"session_id"`
	Vehicle        entities.VehicleInfo `json:"vehicle"`
	Services       []string             `json:"services"`
	Package        string               `json:"package,omitempty"`
	Contact        entities.ContactInfo `json:"contact"`
	EstimatedPrice float64              `json:"estimated_price"`
	Status         string               `json:"status"`
	CreatedAt      time.Time            `json:"created_at"`
}

func FromEstimateRecord(r entities.EstimateRecord) EstimateResponse {
	services := r.Services
	if services == nil {
		services = []string{}
	}
	return EstimateResponse{
		EstimateID:     r.ID,
		SessionID:      r.SessionID,
		Vehicle:        r.Vehicle,
		Services:       services,
		Package:        r.Package,
		Contact:        r.Contact,
		EstimatedPrice: r.EstimatedPrice,
		Status:         string(r.Status),
		CreatedAt:      r.CreatedAt,
	}
}

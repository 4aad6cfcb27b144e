package entities

import "time"

// EstimateStatus represents the lifecycle of a submitted estimate request.
//
// The wizard only ever creates records in the pending state; the shop
// moves them forward in its own tooling.
type EstimateStatus string

const (
	EstimateStatusPending EstimateStatus = "pending"
)

// EstimateRecord is the lead handed to the submission boundary.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Storage model (PostgreSQL):
//   - table estimate_requests, PK id
type EstimateRecord struct {
	ID             string         `json:"id"`
	SessionID      string         `json:"session_id"`
	Vehicle        VehicleInfo    `json:"vehicle"`
	Services       []string       `json:"services"`
	Package        string         `json:"package,omitempty"`
	Contact        ContactInfo    `json:"contact"`
	EstimatedPrice float64        `json:"estimated_price"`
	Status         EstimateStatus `json:"status"`
	CreatedAt      time.Time      `json:"created_at"`
}

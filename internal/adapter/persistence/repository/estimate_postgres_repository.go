package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"estimate_wizard/internal/domain/entities"
	"estimate_wizard/internal/usecase/interfaces"

	"github.com/lib/pq"
)

const uniqueViolation = "23505"

const estimateRequestsSchema = `
CREATE TABLE IF NOT EXISTS estimate_requests (
    id TEXT PRIMARY KEY,
    session_id TEXT NOT NULL,
    vehicle_year INTEGER NOT NULL,
    vehicle_make TEXT NOT NULL,
    vehicle_model TEXT NOT NULL,
    vehicle_color TEXT NOT NULL,
    vehicle_condition TEXT NOT NULL,
    services TEXT[] NOT NULL DEFAULT '{}',
    package_id TEXT NOT NULL DEFAULT '',
    contact_name TEXT NOT NULL,
    contact_email TEXT NOT NULL,
    contact_phone TEXT NOT NULL,
    preferred_contact_method TEXT NOT NULL,
    timeframe TEXT NOT NULL,
    notes TEXT NOT NULL DEFAULT '',
    estimated_price NUMERIC(12,2) NOT NULL,
    status TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_estimate_requests_session_id ON estimate_requests(session_id);
`

// EstimatePostgresRepository persists submitted estimate requests in
// PostgreSQL.
type EstimatePostgresRepository struct {
	db *sql.DB
}

var _ interfaces.IEstimateRepository = (*EstimatePostgresRepository)(nil)

func NewEstimatePostgresRepository(db *sql.DB) *EstimatePostgresRepository {
	return &EstimatePostgresRepository{db: db}
}

// Migrate creates the estimate_requests table when it does not exist.
func (r *EstimatePostgresRepository) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, estimateRequestsSchema); err != nil {
		return fmt.Errorf("failed to migrate estimate_requests: %w", err)
	}
	return nil
}

func (r *EstimatePostgresRepository) Create(ctx context.Context, e entities.EstimateRecord) (entities.EstimateRecord, error) {
	query := `
		INSERT INTO estimate_requests (
			id, session_id,
			vehicle_year, vehicle_make, vehicle_model, vehicle_color, vehicle_condition,
			services, package_id,
			contact_name, contact_email, contact_phone, preferred_contact_method, timeframe, notes,
			estimated_price, status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`

	services := e.Services
	if services == nil {
		services = []string{}
	}

	_, err := r.db.ExecContext(
		ctx,
		query,
		e.ID,
		e.SessionID,
		e.Vehicle.Year,
		e.Vehicle.Make,
		e.Vehicle.Model,
		e.Vehicle.Color,
		string(e.Vehicle.Condition),
		pq.Array(services),
		e.Package,
		e.Contact.Name,
		e.Contact.Email,
		e.Contact.Phone,
		string(e.Contact.PreferredContactMethod),
		string(e.Contact.Timeframe),
		e.Contact.Notes,
		e.EstimatedPrice,
		string(e.Status),
		e.CreatedAt.UTC(),
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return entities.EstimateRecord{}, interfaces.ErrEstimateConflict
		}
		return entities.EstimateRecord{}, fmt.Errorf("failed to create estimate request: %w", err)
	}
	return e, nil
}

func (r *EstimatePostgresRepository) GetByID(ctx context.Context, id string) (entities.EstimateRecord, error) {
	query := `
		SELECT id, session_id,
			vehicle_year, vehicle_make, vehicle_model, vehicle_color, vehicle_condition,
			services, package_id,
			contact_name, contact_email, contact_phone, preferred_contact_method, timeframe, notes,
			estimated_price, status, created_at
		FROM estimate_requests
		WHERE id = $1`

	var (
		e         entities.EstimateRecord
		condition string
		method    string
		timeframe string
		status    string
	)
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&e.ID,
		&e.SessionID,
		&e.Vehicle.Year,
		&e.Vehicle.Make,
		&e.Vehicle.Model,
		&e.Vehicle.Color,
		&condition,
		pq.Array(&e.Services),
		&e.Package,
		&e.Contact.Name,
		&e.Contact.Email,
		&e.Contact.Phone,
		&method,
		&timeframe,
		&e.Contact.Notes,
		&e.EstimatedPrice,
		&status,
		&e.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.EstimateRecord{}, nil
	}
	if err != nil {
		return entities.EstimateRecord{}, fmt.Errorf("failed to get estimate request: %w", err)
	}

	e.Vehicle.Condition = entities.VehicleCondition(condition)
	e.Contact.PreferredContactMethod = entities.ContactMethod(method)
	e.Contact.Timeframe = entities.Timeframe(timeframe)
	e.Status = entities.EstimateStatus(status)
	return e, nil
}

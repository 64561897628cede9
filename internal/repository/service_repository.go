package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"bookly-be/internal/apperrors"
	"bookly-be/internal/entities"
)

// ServiceRepository defines the interface for service catalog database operations
type ServiceRepository interface {
	Create(name, description string, price float64, status string) (*entities.Service, error)
	FindByID(id string) (*entities.Service, error)
	ListActive() ([]*entities.Service, error)
	ListAll() ([]*entities.Service, error)
	Update(id string, name, description *string, price *float64, status *string) (*entities.Service, error)
	Delete(id string) error
}

type serviceRepository struct {
	db *sql.DB
}

// NewServiceRepository creates a new service repository
func NewServiceRepository(db *sql.DB) ServiceRepository {
	return &serviceRepository{db: db}
}

const serviceColumns = "id, name, description, price, status, created_at, updated_at"

func scanService(row interface{ Scan(...interface{}) error }) (*entities.Service, error) {
	var svc entities.Service
	err := row.Scan(
		&svc.ID,
		&svc.Name,
		&svc.Description,
		&svc.Price,
		&svc.Status,
		&svc.CreatedAt,
		&svc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &svc, nil
}

// Create inserts a new service into the database
func (r *serviceRepository) Create(name, description string, price float64, status string) (*entities.Service, error) {
	query := `
		INSERT INTO services (name, description, price, status)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + serviceColumns

	svc, err := scanService(r.db.QueryRow(query, name, description, price, status))
	if err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	return svc, nil
}

// FindByID finds a service by ID (UUID)
func (r *serviceRepository) FindByID(id string) (*entities.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE id = $1`

	svc, err := scanService(r.db.QueryRow(query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("service: %w", apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find service: %w", err)
	}
	return svc, nil
}

// ListActive returns services with status = active
func (r *serviceRepository) ListActive() ([]*entities.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE status = $1`
	return r.list(query, entities.ServiceStatusActive)
}

// ListAll returns every service regardless of status
func (r *serviceRepository) ListAll() ([]*entities.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services`
	return r.list(query)
}

func (r *serviceRepository) list(query string, args ...interface{}) ([]*entities.Service, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	defer rows.Close()

	var services []*entities.Service
	for rows.Next() {
		svc, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan service: %w", err)
		}
		services = append(services, svc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate services: %w", err)
	}
	return services, nil
}

// Update applies the non-nil fields to a service and returns the updated row
func (r *serviceRepository) Update(id string, name, description *string, price *float64, status *string) (*entities.Service, error) {
	query := `
		UPDATE services
		SET name = COALESCE($2, name),
		    description = COALESCE($3, description),
		    price = COALESCE($4, price),
		    status = COALESCE($5, status),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + serviceColumns

	svc, err := scanService(r.db.QueryRow(query, id, name, description, price, status))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("service: %w", apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update service: %w", err)
	}
	return svc, nil
}

// Delete removes a service from the database
func (r *serviceRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete service: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("service: %w", apperrors.ErrNotFound)
	}
	return nil
}

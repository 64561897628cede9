package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"bookly-be/internal/apperrors"
	"bookly-be/internal/entities"
)

// BookingRepository defines the interface for booking database operations
type BookingRepository interface {
	// Create checks the target service is active and inserts the booking in
	// one transaction, so a concurrent deactivation cannot slip between the
	// check and the insert. The returned booking has its Service attached.
	Create(userID, serviceID string, bookingDate time.Time, notes *string) (*entities.Booking, error)
	FindByID(id string) (*entities.Booking, error)
	// UpdateStatus overwrites the status and returns the booking with its
	// User and Service attached.
	UpdateStatus(id, status string) (*entities.Booking, error)
	// ListByUser returns a user's bookings newest-first with Service attached.
	ListByUser(userID string) ([]*entities.Booking, error)
	// ListAll returns every booking newest-first with User and Service attached.
	ListAll() ([]*entities.Booking, error)
}

type bookingRepository struct {
	db *sql.DB
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(db *sql.DB) BookingRepository {
	return &bookingRepository{db: db}
}

const bookingColumns = "id, user_id, service_id, booking_date, status, notes, created_at, updated_at"

func scanBooking(row interface{ Scan(...interface{}) error }) (*entities.Booking, error) {
	var b entities.Booking
	err := row.Scan(
		&b.ID,
		&b.UserID,
		&b.ServiceID,
		&b.BookingDate,
		&b.Status,
		&b.Notes,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Create inserts a new booking after verifying the service is active,
// all inside a single transaction.
func (r *bookingRepository) Create(userID, serviceID string, bookingDate time.Time, notes *string) (*entities.Booking, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Lock the service row so its status cannot change under us.
	svcQuery := `SELECT ` + serviceColumns + ` FROM services WHERE id = $1 FOR SHARE`
	svc, err := scanService(tx.QueryRow(svcQuery, serviceID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("service: %w", apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find service: %w", err)
	}
	if !svc.IsActive() {
		return nil, apperrors.ErrServiceUnavailable
	}

	insertQuery := `
		INSERT INTO bookings (user_id, service_id, booking_date, status, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + bookingColumns

	booking, err := scanBooking(tx.QueryRow(insertQuery, userID, serviceID, bookingDate.UTC(), entities.BookingStatusPending, notes))
	if err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit booking: %w", err)
	}

	booking.Service = svc
	return booking, nil
}

// FindByID finds a booking by ID (UUID) without relations
func (r *bookingRepository) FindByID(id string) (*entities.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.db.QueryRow(query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("booking: %w", apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find booking: %w", err)
	}
	return booking, nil
}

// UpdateStatus overwrites the booking status in a single atomic statement
func (r *bookingRepository) UpdateStatus(id, status string) (*entities.Booking, error) {
	query := `
		UPDATE bookings
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	err := r.db.QueryRow(query, id, status).Scan(&updatedID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("booking: %w", apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}

	return r.findWithRelations(updatedID)
}

func (r *bookingRepository) findWithRelations(id string) (*entities.Booking, error) {
	query := `
		SELECT b.id, b.user_id, b.service_id, b.booking_date, b.status, b.notes, b.created_at, b.updated_at,
		       u.id, u.name, u.email, u.password_hash, u.is_admin, u.created_at, u.updated_at,
		       s.id, s.name, s.description, s.price, s.status, s.created_at, s.updated_at
		FROM bookings b
		JOIN users u ON u.id = b.user_id
		JOIN services s ON s.id = b.service_id
		WHERE b.id = $1
	`

	var b entities.Booking
	var u entities.User
	var s entities.Service
	err := r.db.QueryRow(query, id).Scan(
		&b.ID, &b.UserID, &b.ServiceID, &b.BookingDate, &b.Status, &b.Notes, &b.CreatedAt, &b.UpdatedAt,
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt,
		&s.ID, &s.Name, &s.Description, &s.Price, &s.Status, &s.CreatedAt, &s.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("booking: %w", apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}

	b.User = &u
	b.Service = &s
	return &b, nil
}

// ListByUser returns the user's bookings, most recently created first
func (r *bookingRepository) ListByUser(userID string) ([]*entities.Booking, error) {
	query := `
		SELECT b.id, b.user_id, b.service_id, b.booking_date, b.status, b.notes, b.created_at, b.updated_at,
		       s.id, s.name, s.description, s.price, s.status, s.created_at, s.updated_at
		FROM bookings b
		JOIN services s ON s.id = b.service_id
		WHERE b.user_id = $1
		ORDER BY b.created_at DESC
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*entities.Booking
	for rows.Next() {
		var b entities.Booking
		var s entities.Service
		err := rows.Scan(
			&b.ID, &b.UserID, &b.ServiceID, &b.BookingDate, &b.Status, &b.Notes, &b.CreatedAt, &b.UpdatedAt,
			&s.ID, &s.Name, &s.Description, &s.Price, &s.Status, &s.CreatedAt, &s.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		b.Service = &s
		bookings = append(bookings, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bookings: %w", err)
	}
	return bookings, nil
}

// ListAll returns every booking, most recently created first
func (r *bookingRepository) ListAll() ([]*entities.Booking, error) {
	query := `
		SELECT b.id, b.user_id, b.service_id, b.booking_date, b.status, b.notes, b.created_at, b.updated_at,
		       u.id, u.name, u.email, u.password_hash, u.is_admin, u.created_at, u.updated_at,
		       s.id, s.name, s.description, s.price, s.status, s.created_at, s.updated_at
		FROM bookings b
		JOIN users u ON u.id = b.user_id
		JOIN services s ON s.id = b.service_id
		ORDER BY b.created_at DESC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*entities.Booking
	for rows.Next() {
		var b entities.Booking
		var u entities.User
		var s entities.Service
		err := rows.Scan(
			&b.ID, &b.UserID, &b.ServiceID, &b.BookingDate, &b.Status, &b.Notes, &b.CreatedAt, &b.UpdatedAt,
			&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt,
			&s.ID, &s.Name, &s.Description, &s.Price, &s.Status, &s.CreatedAt, &s.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		b.User = &u
		b.Service = &s
		bookings = append(bookings, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bookings: %w", err)
	}
	return bookings, nil
}

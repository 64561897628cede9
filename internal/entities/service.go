package entities

import "time"

// Service statuses
const (
	ServiceStatusActive   = "active"
	ServiceStatusInactive = "inactive"
)

// Service represents a bookable catalog entry in the database
type Service struct {
	ID          string    `json:"id"` // UUID
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Status      string    `json:"status"` // active, inactive
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// IsActive reports whether the service can currently be booked.
func (s *Service) IsActive() bool {
	return s.Status == ServiceStatusActive
}

package entities

import "time"

// Booking statuses
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

// ValidBookingStatus reports whether status is one of the four known values.
func ValidBookingStatus(status string) bool {
	switch status {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled, BookingStatusCompleted:
		return true
	}
	return false
}

// Booking represents a booking entity in the database.
// User and Service are set when the row is loaded with its relations.
type Booking struct {
	ID          string    `json:"id"`         // UUID
	UserID      string    `json:"user_id"`    // UUID, immutable after creation
	ServiceID   string    `json:"service_id"` // UUID, immutable after creation
	BookingDate time.Time `json:"booking_date"`
	Status      string    `json:"status"` // pending, confirmed, cancelled, completed
	Notes       *string   `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	User    *User    `json:"user,omitempty"`
	Service *Service `json:"service,omitempty"`
}

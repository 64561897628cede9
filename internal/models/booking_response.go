package models

import (
	"time"

	"bookly-be/internal/entities"
)

// BookingResponse represents a booking in API responses, with its relations
// attached when they were eagerly loaded.
type BookingResponse struct {
	ID          string           `json:"id"` // UUID
	UserID      string           `json:"user_id"`
	ServiceID   string           `json:"service_id"`
	BookingDate time.Time        `json:"booking_date"`
	Status      string           `json:"status"`
	Notes       *string          `json:"notes,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	User        *UserResponse    `json:"user,omitempty"`
	Service     *ServiceResponse `json:"service,omitempty"`
}

// NewBookingResponse converts a booking entity to its API shape
func NewBookingResponse(b *entities.Booking) BookingResponse {
	resp := BookingResponse{
		ID:          b.ID,
		UserID:      b.UserID,
		ServiceID:   b.ServiceID,
		BookingDate: b.BookingDate,
		Status:      b.Status,
		Notes:       b.Notes,
		CreatedAt:   b.CreatedAt,
	}
	if b.User != nil {
		u := NewUserResponse(b.User)
		resp.User = &u
	}
	if b.Service != nil {
		s := NewServiceResponse(b.Service)
		resp.Service = &s
	}
	return resp
}

// NewBookingListResponse converts a slice of booking entities
func NewBookingListResponse(bookings []*entities.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, NewBookingResponse(b))
	}
	return out
}

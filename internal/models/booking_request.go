package models

import "time"

// CreateBookingRequest represents the request body for booking a service
type CreateBookingRequest struct {
	ServiceID   string    `json:"service_id" binding:"required,uuid"`
	BookingDate time.Time `json:"booking_date" binding:"required"`
	Notes       *string   `json:"notes,omitempty"`
}

// UpdateBookingStatusRequest represents the request body for a status change
type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed cancelled completed"`
}

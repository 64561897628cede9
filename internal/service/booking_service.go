package service

import (
	"fmt"

	"bookly-be/internal/apperrors"
	"bookly-be/internal/authz"
	"bookly-be/internal/entities"
	"bookly-be/internal/metrics"
	"bookly-be/internal/models"
	"bookly-be/internal/repository"
)

// BookingService defines the interface for the booking lifecycle.
// Bookings are created here and only here; status is the one field that
// changes after creation, and only through UpdateStatus.
type BookingService interface {
	Create(actor *authz.Actor, req *models.CreateBookingRequest) (*models.BookingResponse, error)
	ListMine(actor *authz.Actor) ([]models.BookingResponse, error)
	ListAll(actor *authz.Actor) ([]models.BookingResponse, error)
	UpdateStatus(actor *authz.Actor, id string, req *models.UpdateBookingStatusRequest) (*models.BookingResponse, error)
	// Get returns a single booking; non-admins can only fetch their own.
	Get(actor *authz.Actor, id string) (*models.BookingResponse, error)
}

type bookingService struct {
	repo repository.BookingRepository
}

// NewBookingService creates a new booking service
func NewBookingService(repo repository.BookingRepository) BookingService {
	return &bookingService{repo: repo}
}

// Create books a service for the actor. The booking starts as pending and
// is only admitted while the target service is active; the repository runs
// the status check and the insert in one transaction so a failed attempt
// never leaves a partial record.
func (s *bookingService) Create(actor *authz.Actor, req *models.CreateBookingRequest) (*models.BookingResponse, error) {
	if !authz.CanPerform(actor, authz.ActionCreateBooking) {
		return nil, apperrors.ErrForbidden
	}

	booking, err := s.repo.Create(actor.UserID, req.ServiceID, req.BookingDate, req.Notes)
	if err != nil {
		return nil, err
	}

	metrics.IncBookingCreated()
	resp := models.NewBookingResponse(booking)
	return &resp, nil
}

// ListMine returns the actor's bookings, newest first
func (s *bookingService) ListMine(actor *authz.Actor) ([]models.BookingResponse, error) {
	if !authz.CanPerform(actor, authz.ActionListOwnBookings) {
		return nil, apperrors.ErrForbidden
	}

	bookings, err := s.repo.ListByUser(actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return models.NewBookingListResponse(bookings), nil
}

// ListAll returns every booking, newest first (admin only)
func (s *bookingService) ListAll(actor *authz.Actor) ([]models.BookingResponse, error) {
	if !authz.CanPerform(actor, authz.ActionListAllBookings) {
		return nil, apperrors.ErrForbidden
	}

	bookings, err := s.repo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return models.NewBookingListResponse(bookings), nil
}

// UpdateStatus overwrites a booking's status (admin only). Any of the four
// known statuses may follow any other; there is deliberately no transition
// graph. The value is still checked here even though the request binding
// already did, since this is the last layer before the write.
func (s *bookingService) UpdateStatus(actor *authz.Actor, id string, req *models.UpdateBookingStatusRequest) (*models.BookingResponse, error) {
	if !authz.CanPerform(actor, authz.ActionUpdateBookingStatus) {
		return nil, apperrors.ErrForbidden
	}
	if !entities.ValidBookingStatus(req.Status) {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidStatus, req.Status)
	}

	booking, err := s.repo.UpdateStatus(id, req.Status)
	if err != nil {
		return nil, err
	}

	metrics.IncBookingStatusChange(req.Status)
	resp := models.NewBookingResponse(booking)
	return &resp, nil
}

// Get returns one booking. Owners see their own; admins see any.
func (s *bookingService) Get(actor *authz.Actor, id string) (*models.BookingResponse, error) {
	if actor == nil {
		return nil, apperrors.ErrUnauthenticated
	}

	booking, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if booking.UserID != actor.UserID && !actor.IsAdmin {
		return nil, apperrors.ErrForbidden
	}

	resp := models.NewBookingResponse(booking)
	return &resp, nil
}

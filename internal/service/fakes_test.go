package service

import (
	"fmt"
	"strconv"
	"time"

	"bookly-be/internal/apperrors"
	"bookly-be/internal/entities"
)

// In-memory repository fakes mirroring the behavior of the SQL
// implementations closely enough for service-level tests.

type fakeUserRepo struct {
	users  []*entities.User
	nextID int
}

func (r *fakeUserRepo) Create(name, email, passwordHash string) (*entities.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return nil, apperrors.ErrEmailTaken
		}
	}
	r.nextID++
	u := &entities.User{
		ID:           "user-" + strconv.Itoa(r.nextID),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	r.users = append(r.users, u)
	return u, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entities.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, fmt.Errorf("user: %w", apperrors.ErrNotFound)
}

func (r *fakeUserRepo) FindByID(id string) (*entities.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, fmt.Errorf("user: %w", apperrors.ErrNotFound)
}

func (r *fakeUserRepo) ListPaged(page, pageSize int) ([]*entities.User, error) {
	// Newest first: creation order reversed
	var out []*entities.User
	for i := len(r.users) - 1; i >= 0; i-- {
		out = append(out, r.users[i])
	}
	start := (page - 1) * pageSize
	if start >= len(out) {
		return nil, nil
	}
	end := start + pageSize
	if end > len(out) {
		end = len(out)
	}
	return out[start:end], nil
}

type fakeServiceRepo struct {
	services []*entities.Service
	nextID   int
}

func (r *fakeServiceRepo) Create(name, description string, price float64, status string) (*entities.Service, error) {
	r.nextID++
	s := &entities.Service{
		ID:          "svc-" + strconv.Itoa(r.nextID),
		Name:        name,
		Description: description,
		Price:       price,
		Status:      status,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	r.services = append(r.services, s)
	return s, nil
}

func (r *fakeServiceRepo) FindByID(id string) (*entities.Service, error) {
	for _, s := range r.services {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, fmt.Errorf("service: %w", apperrors.ErrNotFound)
}

func (r *fakeServiceRepo) ListActive() ([]*entities.Service, error) {
	var out []*entities.Service
	for _, s := range r.services {
		if s.IsActive() {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeServiceRepo) ListAll() ([]*entities.Service, error) {
	return r.services, nil
}

func (r *fakeServiceRepo) Update(id string, name, description *string, price *float64, status *string) (*entities.Service, error) {
	s, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if name != nil {
		s.Name = *name
	}
	if description != nil {
		s.Description = *description
	}
	if price != nil {
		s.Price = *price
	}
	if status != nil {
		s.Status = *status
	}
	s.UpdatedAt = time.Now()
	return s, nil
}

func (r *fakeServiceRepo) Delete(id string) error {
	for i, s := range r.services {
		if s.ID == id {
			r.services = append(r.services[:i], r.services[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("service: %w", apperrors.ErrNotFound)
}

type fakeBookingRepo struct {
	services *fakeServiceRepo
	users    *fakeUserRepo
	bookings []*entities.Booking
	nextID   int
}

func (r *fakeBookingRepo) Create(userID, serviceID string, bookingDate time.Time, notes *string) (*entities.Booking, error) {
	svc, err := r.services.FindByID(serviceID)
	if err != nil {
		return nil, err
	}
	if !svc.IsActive() {
		return nil, apperrors.ErrServiceUnavailable
	}
	r.nextID++
	b := &entities.Booking{
		ID:          "bkg-" + strconv.Itoa(r.nextID),
		UserID:      userID,
		ServiceID:   serviceID,
		BookingDate: bookingDate,
		Status:      entities.BookingStatusPending,
		Notes:       notes,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
		Service:     svc,
	}
	r.bookings = append(r.bookings, b)
	return b, nil
}

func (r *fakeBookingRepo) FindByID(id string) (*entities.Booking, error) {
	for _, b := range r.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, fmt.Errorf("booking: %w", apperrors.ErrNotFound)
}

func (r *fakeBookingRepo) UpdateStatus(id, status string) (*entities.Booking, error) {
	b, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	b.Status = status
	b.UpdatedAt = time.Now()
	if b.User == nil {
		if u, err := r.users.FindByID(b.UserID); err == nil {
			b.User = u
		}
	}
	if b.Service == nil {
		if s, err := r.services.FindByID(b.ServiceID); err == nil {
			b.Service = s
		}
	}
	return b, nil
}

func (r *fakeBookingRepo) ListByUser(userID string) ([]*entities.Booking, error) {
	var out []*entities.Booking
	for i := len(r.bookings) - 1; i >= 0; i-- {
		if r.bookings[i].UserID == userID {
			out = append(out, r.bookings[i])
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) ListAll() ([]*entities.Booking, error) {
	var out []*entities.Booking
	for i := len(r.bookings) - 1; i >= 0; i-- {
		out = append(out, r.bookings[i])
	}
	return out, nil
}

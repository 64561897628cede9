package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookly-be/internal/apperrors"
	"bookly-be/internal/entities"
)

func bookingRows(id, userID, serviceID, status string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "user_id", "service_id", "booking_date", "status", "notes", "created_at", "updated_at"}).
		AddRow(id, userID, serviceID, time.Now(), status, nil, time.Now(), time.Now())
}

func TestBookingCreate(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewBookingRepository(db)

	date := time.Now().Add(24 * time.Hour)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM services WHERE id = (.+) FOR SHARE").
		WithArgs("s1").
		WillReturnRows(serviceRows(serviceRow("s1", "Cleaning", entities.ServiceStatusActive, 100)))
	mock.ExpectQuery("INSERT INTO bookings").
		WithArgs("u1", "s1", date.UTC(), entities.BookingStatusPending, nil).
		WillReturnRows(bookingRows("b1", "u1", "s1", entities.BookingStatusPending))
	mock.ExpectCommit()

	booking, err := repo.Create("u1", "s1", date, nil)
	require.NoError(t, err)
	assert.Equal(t, "b1", booking.ID)
	assert.Equal(t, entities.BookingStatusPending, booking.Status)
	require.NotNil(t, booking.Service)
	assert.Equal(t, "s1", booking.Service.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingCreateInactiveServiceRollsBack(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewBookingRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM services WHERE id = (.+) FOR SHARE").
		WithArgs("s1").
		WillReturnRows(serviceRows(serviceRow("s1", "Closed", entities.ServiceStatusInactive, 100)))
	mock.ExpectRollback()

	_, err := repo.Create("u1", "s1", time.Now(), nil)
	require.ErrorIs(t, err, apperrors.ErrServiceUnavailable)
	assert.NoError(t, mock.ExpectationsWereMet(), "no insert may run for an inactive service")
}

func TestBookingCreateUnknownService(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewBookingRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM services WHERE id = (.+) FOR SHARE").
		WithArgs("s-nope").
		WillReturnRows(serviceRows())
	mock.ExpectRollback()

	_, err := repo.Create("u1", "s-nope", time.Now(), nil)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestBookingUpdateStatus(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewBookingRepository(db)

	mock.ExpectQuery("(?s)UPDATE bookings.+SET status").
		WithArgs("b1", entities.BookingStatusConfirmed).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("b1"))
	mock.ExpectQuery("(?s)SELECT (.+) FROM bookings b.+JOIN users u.+JOIN services s").
		WithArgs("b1").
		WillReturnRows(sqlmock.NewRows([]string{
			"b_id", "b_user_id", "b_service_id", "b_booking_date", "b_status", "b_notes", "b_created_at", "b_updated_at",
			"u_id", "u_name", "u_email", "u_password_hash", "u_is_admin", "u_created_at", "u_updated_at",
			"s_id", "s_name", "s_description", "s_price", "s_status", "s_created_at", "s_updated_at",
		}).AddRow(
			"b1", "u1", "s1", time.Now(), entities.BookingStatusConfirmed, nil, time.Now(), time.Now(),
			"u1", "Alice", "alice@example.com", "hash", false, time.Now(), time.Now(),
			"s1", "Cleaning", "desc", 100.0, entities.ServiceStatusActive, time.Now(), time.Now(),
		))

	booking, err := repo.UpdateStatus("b1", entities.BookingStatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, entities.BookingStatusConfirmed, booking.Status)
	require.NotNil(t, booking.User)
	assert.Equal(t, "Alice", booking.User.Name)
	require.NotNil(t, booking.Service)
	assert.Equal(t, "Cleaning", booking.Service.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingUpdateStatusNotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewBookingRepository(db)

	mock.ExpectQuery("(?s)UPDATE bookings.+SET status").
		WithArgs("b-nope", entities.BookingStatusConfirmed).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.UpdateStatus("b-nope", entities.BookingStatusConfirmed)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestBookingListByUser(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewBookingRepository(db)

	mock.ExpectQuery("(?s)SELECT (.+) FROM bookings b.+JOIN services s.+WHERE b.user_id.+ORDER BY b.created_at DESC").
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{
			"b_id", "b_user_id", "b_service_id", "b_booking_date", "b_status", "b_notes", "b_created_at", "b_updated_at",
			"s_id", "s_name", "s_description", "s_price", "s_status", "s_created_at", "s_updated_at",
		}).AddRow(
			"b1", "u1", "s1", time.Now(), entities.BookingStatusPending, nil, time.Now(), time.Now(),
			"s1", "Cleaning", "desc", 100.0, entities.ServiceStatusActive, time.Now(), time.Now(),
		))

	bookings, err := repo.ListByUser("u1")
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "u1", bookings[0].UserID)
	require.NotNil(t, bookings[0].Service)
	assert.Equal(t, "Cleaning", bookings[0].Service.Name)
}

package generate_qr

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	bookingStorage "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/booking"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type mockBookingRepo struct {
	booking *domain.Booking
	err     error
}

func (m *mockBookingRepo) GetByID(context.Context, uuid.UUID, uuid.UUID) (*domain.Booking, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.booking, nil
}

type mockIssuer struct{}

func (mockIssuer) CreateQrToken(*domain.Booking) (string, error) {
	return "signed-token", nil
}

func activeBooking(userID, companyID uuid.UUID) *domain.Booking {
	return &domain.Booking{
		ID:        uuid.New(),
		UserID:    userID,
		CompanyID: companyID,
		TimeStart: time.Now().Add(-time.Hour),
		TimeEnd:   time.Now().Add(time.Hour),
	}
}

func TestGenerateQrForOwner(t *testing.T) {
	userID, companyID := uuid.New(), uuid.New()
	booking := activeBooking(userID, companyID)
	uc := NewUseCase(&mockBookingRepo{booking: booking}, mockIssuer{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:    userID,
		CompanyID: companyID,
		Role:      domain.RoleStudent,
		BookingID: booking.ID,
	})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", resp.Token)
	assert.Equal(t, booking.TimeEnd, resp.ExpiresAt)
}

func TestGenerateQrForeignBooking(t *testing.T) {
	companyID := uuid.New()
	booking := activeBooking(uuid.New(), companyID)
	uc := NewUseCase(&mockBookingRepo{booking: booking}, mockIssuer{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    uuid.New(),
		CompanyID: companyID,
		Role:      domain.RoleStudent,
		BookingID: booking.ID,
	})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestGenerateQrAdminForForeignBooking(t *testing.T) {
	companyID := uuid.New()
	booking := activeBooking(uuid.New(), companyID)
	uc := NewUseCase(&mockBookingRepo{booking: booking}, mockIssuer{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:    uuid.New(),
		CompanyID: companyID,
		Role:      domain.RoleAdmin,
		BookingID: booking.ID,
	})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", resp.Token)
}

func TestGenerateQrBookingNotFound(t *testing.T) {
	uc := NewUseCase(&mockBookingRepo{err: bookingStorage.ErrBookingNotFound}, mockIssuer{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    uuid.New(),
		CompanyID: uuid.New(),
		Role:      domain.RoleStudent,
		BookingID: uuid.New(),
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGenerateQrEndedBooking(t *testing.T) {
	userID, companyID := uuid.New(), uuid.New()
	booking := activeBooking(userID, companyID)
	booking.TimeEnd = time.Now().Add(-time.Minute)
	uc := NewUseCase(&mockBookingRepo{booking: booking}, mockIssuer{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    userID,
		CompanyID: companyID,
		Role:      domain.RoleStudent,
		BookingID: booking.ID,
	})
	assert.ErrorIs(t, err, ErrBookingEnded)
}

package verify_qr

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CoworkingService/internal/auth"
	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	bookingStorage "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/booking"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type mockVerifier struct {
	claims *auth.QrClaims
	err    error
}

func (m *mockVerifier) ValidateQrToken(string) (*auth.QrClaims, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.claims, nil
}

type mockBookingRepo struct {
	booking *domain.PublicBooking
	err     error
}

func (m *mockBookingRepo) GetPublicByID(context.Context, uuid.UUID, uuid.UUID) (*domain.PublicBooking, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.booking, nil
}

func newTestUseCase(repo *mockBookingRepo, verifier *mockVerifier, now time.Time) *UseCase {
	uc := NewUseCase(repo, verifier, nopLogger{})
	uc.timeProvider = fixedTime{now: now}
	return uc
}

func TestVerifyQrValid(t *testing.T) {
	now := time.Now()
	bookingID := uuid.New()
	repo := &mockBookingRepo{booking: &domain.PublicBooking{
		ID:        bookingID,
		UserEmail: "student@example.com",
		ItemName:  "desk 7",
		TimeEnd:   now.Add(time.Hour),
	}}
	verifier := &mockVerifier{claims: &auth.QrClaims{BookingID: bookingID}}
	uc := newTestUseCase(repo, verifier, now)

	resp, err := uc.Execute(context.Background(), &Request{CompanyID: uuid.New(), Token: "signed"})

	require.NoError(t, err)
	assert.Equal(t, VerdictValid, resp.Verdict)
	require.NotNil(t, resp.Booking)
	assert.Equal(t, "student@example.com", resp.Booking.UserEmail)
}

func TestVerifyQrEmptyToken(t *testing.T) {
	uc := newTestUseCase(&mockBookingRepo{}, &mockVerifier{}, time.Now())

	resp, err := uc.Execute(context.Background(), &Request{CompanyID: uuid.New(), Token: ""})

	require.NoError(t, err)
	assert.Equal(t, VerdictInvalid, resp.Verdict)
	assert.Nil(t, resp.Booking)
}

func TestVerifyQrBadSignature(t *testing.T) {
	verifier := &mockVerifier{err: fmt.Errorf("%w: signature mismatch", auth.ErrInvalidToken)}
	uc := newTestUseCase(&mockBookingRepo{}, verifier, time.Now())

	resp, err := uc.Execute(context.Background(), &Request{CompanyID: uuid.New(), Token: "tampered"})

	require.NoError(t, err)
	assert.Equal(t, VerdictInvalid, resp.Verdict)
}

func TestVerifyQrExpiredToken(t *testing.T) {
	verifier := &mockVerifier{err: fmt.Errorf("%w: exp in the past", auth.ErrTokenExpired)}
	uc := newTestUseCase(&mockBookingRepo{}, verifier, time.Now())

	resp, err := uc.Execute(context.Background(), &Request{CompanyID: uuid.New(), Token: "old"})

	require.NoError(t, err)
	assert.Equal(t, VerdictExpired, resp.Verdict)
}

// Токен подписан для бронирования другой компании: для проверяющего
// такое бронирование не существует
func TestVerifyQrForeignCompany(t *testing.T) {
	verifier := &mockVerifier{claims: &auth.QrClaims{BookingID: uuid.New()}}
	repo := &mockBookingRepo{err: bookingStorage.ErrBookingNotFound}
	uc := newTestUseCase(repo, verifier, time.Now())

	resp, err := uc.Execute(context.Background(), &Request{CompanyID: uuid.New(), Token: "signed"})

	require.NoError(t, err)
	assert.Equal(t, VerdictNotFound, resp.Verdict)
}

// Подпись еще жива, а бронирование уже закончилось
func TestVerifyQrEndedBooking(t *testing.T) {
	now := time.Now()
	bookingID := uuid.New()
	repo := &mockBookingRepo{booking: &domain.PublicBooking{
		ID:      bookingID,
		TimeEnd: now.Add(-time.Minute),
	}}
	verifier := &mockVerifier{claims: &auth.QrClaims{BookingID: bookingID}}
	uc := newTestUseCase(repo, verifier, now)

	resp, err := uc.Execute(context.Background(), &Request{CompanyID: uuid.New(), Token: "signed"})

	require.NoError(t, err)
	assert.Equal(t, VerdictExpired, resp.Verdict)
}

func TestVerifyQrRepoFailure(t *testing.T) {
	verifier := &mockVerifier{claims: &auth.QrClaims{BookingID: uuid.New()}}
	repo := &mockBookingRepo{err: errors.New("connection refused")}
	uc := newTestUseCase(repo, verifier, time.Now())

	_, err := uc.Execute(context.Background(), &Request{CompanyID: uuid.New(), Token: "signed"})
	assert.ErrorIs(t, err, ErrInternal)
}

package update_booking

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	bookingStorage "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-CoworkingService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

// fakeTxManager исполняет fn без реальной транзакции
type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockBookingRepo struct {
	existing  *domain.Booking
	getErr    error
	updateErr error

	updateCalled bool
}

func (m *mockBookingRepo) GetByID(context.Context, uuid.UUID, uuid.UUID) (*domain.Booking, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.existing, nil
}

func (m *mockBookingRepo) Update(_ context.Context, _, _ uuid.UUID, timeStart, timeEnd *time.Time) (*domain.Booking, error) {
	m.updateCalled = true
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	out := *m.existing
	if timeStart != nil {
		out.TimeStart = *timeStart
	}
	if timeEnd != nil {
		out.TimeEnd = *timeEnd
	}
	return &out, nil
}

func newTestUseCase(repo *mockBookingRepo, now time.Time) *UseCase {
	uc := NewUseCase(repo, fakeTxManager{}, nopLogger{})
	uc.timeProvider = fixedTime{now: now}
	return uc
}

func existingBooking(userID, companyID uuid.UUID, now time.Time) *domain.Booking {
	return &domain.Booking{
		ID:               uuid.New(),
		UserID:           userID,
		CompanyID:        companyID,
		CoworkingSpaceID: uuid.New(),
		CoworkingItemID:  uuid.New(),
		TimeStart:        now.Add(time.Hour),
		TimeEnd:          now.Add(2 * time.Hour),
	}
}

func TestUpdateBookingSuccess(t *testing.T) {
	now := time.Now()
	userID, companyID := uuid.New(), uuid.New()
	repo := &mockBookingRepo{existing: existingBooking(userID, companyID, now)}
	uc := newTestUseCase(repo, now)

	newEnd := now.Add(3 * time.Hour)
	resp, err := uc.Execute(context.Background(), &Request{
		UserID:    userID,
		CompanyID: companyID,
		Role:      domain.RoleStudent,
		BookingID: repo.existing.ID,
		TimeEnd:   ptr.Ptr(newEnd),
	})

	require.NoError(t, err)
	assert.Equal(t, newEnd, resp.TimeEnd)
	assert.Equal(t, repo.existing.TimeStart, resp.TimeStart)
}

func TestUpdateBookingRequiresAtLeastOneField(t *testing.T) {
	now := time.Now()
	uc := newTestUseCase(&mockBookingRepo{}, now)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    uuid.New(),
		CompanyID: uuid.New(),
		Role:      domain.RoleStudent,
		BookingID: uuid.New(),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateBookingNotFound(t *testing.T) {
	now := time.Now()
	repo := &mockBookingRepo{getErr: bookingStorage.ErrBookingNotFound}
	uc := newTestUseCase(repo, now)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    uuid.New(),
		CompanyID: uuid.New(),
		Role:      domain.RoleStudent,
		BookingID: uuid.New(),
		TimeEnd:   ptr.Ptr(now.Add(3 * time.Hour)),
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

// Чужое бронирование: UPDATE выполняется, но проверка владения после него
// возвращает ошибку, и транзакция откатывает изменение
func TestUpdateBookingForeignRollsBack(t *testing.T) {
	now := time.Now()
	owner, companyID := uuid.New(), uuid.New()
	repo := &mockBookingRepo{existing: existingBooking(owner, companyID, now)}
	uc := newTestUseCase(repo, now)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    uuid.New(),
		CompanyID: companyID,
		Role:      domain.RoleStudent,
		BookingID: repo.existing.ID,
		TimeEnd:   ptr.Ptr(now.Add(3 * time.Hour)),
	})

	assert.ErrorIs(t, err, ErrForbidden)
	assert.True(t, repo.updateCalled)
}

func TestUpdateBookingAdminCanEditForeign(t *testing.T) {
	now := time.Now()
	owner, companyID := uuid.New(), uuid.New()
	repo := &mockBookingRepo{existing: existingBooking(owner, companyID, now)}
	uc := newTestUseCase(repo, now)

	newEnd := now.Add(3 * time.Hour)
	resp, err := uc.Execute(context.Background(), &Request{
		UserID:    uuid.New(),
		CompanyID: companyID,
		Role:      domain.RoleAdmin,
		BookingID: repo.existing.ID,
		TimeEnd:   ptr.Ptr(newEnd),
	})

	require.NoError(t, err)
	assert.Equal(t, newEnd, resp.TimeEnd)
}

// Конец уже идущего бронирования можно подвинуть, если начало не трогали
func TestUpdateBookingExtendRunningBooking(t *testing.T) {
	now := time.Now()
	userID, companyID := uuid.New(), uuid.New()
	booking := existingBooking(userID, companyID, now)
	booking.TimeStart = now.Add(-time.Hour)
	booking.TimeEnd = now.Add(time.Hour)
	repo := &mockBookingRepo{existing: booking}
	uc := newTestUseCase(repo, now)

	newEnd := now.Add(2 * time.Hour)
	resp, err := uc.Execute(context.Background(), &Request{
		UserID:    userID,
		CompanyID: companyID,
		Role:      domain.RoleStudent,
		BookingID: booking.ID,
		TimeEnd:   ptr.Ptr(newEnd),
	})

	require.NoError(t, err)
	assert.Equal(t, newEnd, resp.TimeEnd)
}

// Перенос начала в прошлое недопустим
func TestUpdateBookingStartInPast(t *testing.T) {
	now := time.Now()
	userID, companyID := uuid.New(), uuid.New()
	repo := &mockBookingRepo{existing: existingBooking(userID, companyID, now)}
	uc := newTestUseCase(repo, now)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    userID,
		CompanyID: companyID,
		Role:      domain.RoleStudent,
		BookingID: repo.existing.ID,
		TimeStart: ptr.Ptr(now.Add(-time.Hour)),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateBookingTimeConflict(t *testing.T) {
	now := time.Now()
	userID, companyID := uuid.New(), uuid.New()
	repo := &mockBookingRepo{
		existing:  existingBooking(userID, companyID, now),
		updateErr: bookingStorage.ErrTimeConflict,
	}
	uc := newTestUseCase(repo, now)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    userID,
		CompanyID: companyID,
		Role:      domain.RoleStudent,
		BookingID: repo.existing.ID,
		TimeEnd:   ptr.Ptr(now.Add(3 * time.Hour)),
	})
	assert.ErrorIs(t, err, ErrTimeConflict)
}

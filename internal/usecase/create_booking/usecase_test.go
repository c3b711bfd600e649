package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	bookingStorage "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/booking"
	itemStorage "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/item"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

// fakeTxManager исполняет fn без реальной транзакции и отмечает ее границы
type fakeTxManager struct {
	inTx bool
}

func (m *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.inTx = true
	defer func() { m.inTx = false }()
	return fn(ctx)
}

type mockBookingRepo struct {
	tx *fakeTxManager

	created     *domain.Booking
	createErr   error
	createdInTx bool
}

func (m *mockBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if m.tx != nil {
		m.createdInTx = m.tx.inTx
	}
	if m.createErr != nil {
		return nil, m.createErr
	}
	out := *booking
	out.ID = uuid.New()
	m.created = &out
	return &out, nil
}

type mockItemRepo struct {
	tx *fakeTxManager

	bookable    bool
	err         error
	checkedInTx bool
}

func (m *mockItemRepo) GetItemBookable(context.Context, uuid.UUID, uuid.UUID, uuid.UUID) (bool, error) {
	if m.tx != nil {
		m.checkedInTx = m.tx.inTx
	}
	return m.bookable, m.err
}

func newTestUseCase(bookings *mockBookingRepo, items *mockItemRepo, now time.Time) *UseCase {
	tx := &fakeTxManager{}
	bookings.tx = tx
	items.tx = tx
	uc := NewUseCase(bookings, items, tx, nopLogger{})
	uc.timeProvider = fixedTime{now: now}
	return uc
}

func validRequest(now time.Time) *Request {
	return &Request{
		UserID:      uuid.New(),
		CompanyID:   uuid.New(),
		Role:        domain.RoleStudent,
		CoworkingID: uuid.New(),
		ItemID:      uuid.New(),
		TimeStart:   now.Add(time.Hour),
		TimeEnd:     now.Add(2 * time.Hour),
	}
}

func TestCreateBookingSuccess(t *testing.T) {
	now := time.Now()
	bookings := &mockBookingRepo{}
	uc := newTestUseCase(bookings, &mockItemRepo{bookable: true}, now)
	req := validRequest(now)

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, req.UserID, resp.UserID)
	assert.Equal(t, req.ItemID, resp.ItemID)
	assert.Equal(t, req.TimeStart, resp.TimeStart)
	require.NotNil(t, bookings.created)
	assert.Equal(t, req.CompanyID, bookings.created.CompanyID)
}

// Проверка bookable и вставка идут в одной транзакции: между ними
// администратор мог бы выключить бронирование предмета
func TestCreateBookingChecksAndInsertsInOneTransaction(t *testing.T) {
	now := time.Now()
	bookings := &mockBookingRepo{}
	items := &mockItemRepo{bookable: true}
	uc := newTestUseCase(bookings, items, now)

	_, err := uc.Execute(context.Background(), validRequest(now))

	require.NoError(t, err)
	assert.True(t, items.checkedInTx)
	assert.True(t, bookings.createdInTx)
}

func TestCreateBookingGuestForbidden(t *testing.T) {
	now := time.Now()
	uc := newTestUseCase(&mockBookingRepo{}, &mockItemRepo{bookable: true}, now)
	req := validRequest(now)
	req.Role = domain.RoleGuest

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrRoleForbidden)
}

func TestCreateBookingIntervalValidation(t *testing.T) {
	now := time.Now()
	uc := newTestUseCase(&mockBookingRepo{}, &mockItemRepo{bookable: true}, now)

	// Начало не раньше конца
	req := validRequest(now)
	req.TimeEnd = req.TimeStart
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Начало в прошлом
	req = validRequest(now)
	req.TimeStart = now.Add(-time.Hour)
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Длительность не кратна шагу сетки
	req = validRequest(now)
	req.TimeEnd = req.TimeStart.Add(100 * time.Minute)
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Ровно один шаг сетки проходит
	req = validRequest(now)
	req.TimeEnd = req.TimeStart.Add(domain.BookingStep)
	_, err = uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestCreateBookingItemNotFound(t *testing.T) {
	now := time.Now()
	uc := newTestUseCase(&mockBookingRepo{}, &mockItemRepo{err: itemStorage.ErrItemNotFound}, now)

	_, err := uc.Execute(context.Background(), validRequest(now))
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestCreateBookingItemNotBookable(t *testing.T) {
	now := time.Now()
	uc := newTestUseCase(&mockBookingRepo{}, &mockItemRepo{bookable: false}, now)

	_, err := uc.Execute(context.Background(), validRequest(now))
	assert.ErrorIs(t, err, ErrItemNotBookable)
}

func TestCreateBookingTimeConflict(t *testing.T) {
	now := time.Now()
	bookings := &mockBookingRepo{createErr: bookingStorage.ErrTimeConflict}
	uc := newTestUseCase(bookings, &mockItemRepo{bookable: true}, now)

	_, err := uc.Execute(context.Background(), validRequest(now))
	assert.ErrorIs(t, err, ErrTimeConflict)
}

package resize_coworking

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockPlaceRepo struct {
	coworking *domain.CoworkingSpace

	updateCalled bool
}

func (m *mockPlaceRepo) GetCoworking(context.Context, uuid.UUID, uuid.UUID, uuid.UUID) (*domain.CoworkingSpace, error) {
	return m.coworking, nil
}

func (m *mockPlaceRepo) UpdateCoworkingDimensions(_ context.Context, _, _, _ uuid.UUID, width, height int64) (*domain.CoworkingSpace, error) {
	m.updateCalled = true
	out := *m.coworking
	out.Width = width
	out.Height = height
	return &out, nil
}

type mockItemRepo struct {
	coordinates []domain.ItemCoordinates
}

func (m *mockItemRepo) ListCoordinates(context.Context, uuid.UUID) ([]domain.ItemCoordinates, error) {
	return m.coordinates, nil
}

func testRequest(width, height int64) *Request {
	return &Request{
		CompanyID:   uuid.New(),
		BuildingID:  uuid.New(),
		CoworkingID: uuid.New(),
		Width:       width,
		Height:      height,
	}
}

func TestResizeShrinkWithFittingItems(t *testing.T) {
	places := &mockPlaceRepo{coworking: &domain.CoworkingSpace{ID: uuid.New(), Width: 10, Height: 10}}
	items := &mockItemRepo{coordinates: []domain.ItemCoordinates{
		{BasePoint: domain.Point{X: 1, Y: 1}, Offsets: domain.Offsets{{X: 0, Y: 0}, {X: 1, Y: 0}}},
	}}
	uc := NewUseCase(places, items, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), testRequest(3, 3))

	require.NoError(t, err)
	assert.True(t, places.updateCalled)
	assert.Equal(t, int64(3), resp.Width)
	assert.Equal(t, int64(3), resp.Height)
}

// Сжатие, отрезающее клетку размещенного предмета, отклоняется
func TestResizeRejectsCuttingItems(t *testing.T) {
	places := &mockPlaceRepo{coworking: &domain.CoworkingSpace{ID: uuid.New(), Width: 10, Height: 10}}
	items := &mockItemRepo{coordinates: []domain.ItemCoordinates{
		{BasePoint: domain.Point{X: 4, Y: 4}, Offsets: domain.Offsets{{X: 0, Y: 0}}},
	}}
	uc := NewUseCase(places, items, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), testRequest(4, 4))

	assert.ErrorIs(t, err, ErrItemsOutOfBounds)
	assert.False(t, places.updateCalled)
}

func TestResizeGrowAlwaysFits(t *testing.T) {
	places := &mockPlaceRepo{coworking: &domain.CoworkingSpace{ID: uuid.New(), Width: 5, Height: 5}}
	items := &mockItemRepo{coordinates: []domain.ItemCoordinates{
		{BasePoint: domain.Point{X: 4, Y: 4}, Offsets: domain.Offsets{{X: 0, Y: 0}}},
	}}
	uc := NewUseCase(places, items, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), testRequest(20, 20))

	require.NoError(t, err)
	assert.Equal(t, int64(20), resp.Width)
}

func TestResizeValidation(t *testing.T) {
	uc := NewUseCase(&mockPlaceRepo{}, &mockItemRepo{}, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), testRequest(0, 5))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), testRequest(5, -1))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

package put_items

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
}

func (m *mockPlaceRepo) GetCoworking(context.Context, uuid.UUID, uuid.UUID, uuid.UUID) (*domain.CoworkingSpace, error) {
	return m.coworking, nil
}

type mockItemRepo struct {
	types map[uuid.UUID]*domain.ItemType

	deleteCalled bool
	typeLookups  int
	created      []*domain.CoworkingItem
}

func (m *mockItemRepo) GetItemType(_ context.Context, _ uuid.UUID, id uuid.UUID) (*domain.ItemType, error) {
	m.typeLookups++
	return m.types[id], nil
}

func (m *mockItemRepo) CreateItem(_ context.Context, item *domain.CoworkingItem) (*domain.CoworkingItem, error) {
	out := *item
	out.ID = uuid.New()
	m.created = append(m.created, &out)
	return &out, nil
}

func (m *mockItemRepo) DeleteItemsByCoworking(context.Context, uuid.UUID) error {
	m.deleteCalled = true
	return nil
}

func singleCellType() *domain.ItemType {
	return &domain.ItemType{
		ID:      uuid.New(),
		Name:    "chair",
		Offsets: domain.Offsets{{X: 0, Y: 0}},
	}
}

func testRequest(items []ItemInput) *Request {
	return &Request{
		CompanyID:   uuid.New(),
		BuildingID:  uuid.New(),
		CoworkingID: uuid.New(),
		Items:       items,
	}
}

func TestPutItemsReplacesSet(t *testing.T) {
	chair := singleCellType()
	repo := &mockItemRepo{types: map[uuid.UUID]*domain.ItemType{chair.ID: chair}}
	uc := NewUseCase(&mockPlaceRepo{coworking: &domain.CoworkingSpace{Width: 3, Height: 3}}, repo, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), testRequest([]ItemInput{
		{ItemTypeID: chair.ID, Name: "chair 1", BasePoint: domain.Point{X: 0, Y: 0}},
		{ItemTypeID: chair.ID, Name: "chair 2", BasePoint: domain.Point{X: 1, Y: 0}},
		{ItemTypeID: chair.ID, Name: "chair 3", BasePoint: domain.Point{X: 2, Y: 0}},
	}))

	require.NoError(t, err)
	assert.True(t, repo.deleteCalled)
	assert.Len(t, resp.Items, 3)
	assert.Len(t, repo.created, 3)
	// Повторяющийся тип выбирается из БД один раз
	assert.Equal(t, 1, repo.typeLookups)
}

// Пустой набор означает очистку коворкинга
func TestPutItemsEmptySetClears(t *testing.T) {
	repo := &mockItemRepo{types: map[uuid.UUID]*domain.ItemType{}}
	uc := NewUseCase(&mockPlaceRepo{coworking: &domain.CoworkingSpace{Width: 3, Height: 3}}, repo, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), testRequest(nil))

	require.NoError(t, err)
	assert.True(t, repo.deleteCalled)
	assert.Empty(t, resp.Items)
}

func TestPutItemsOutOfBoundsFailsFast(t *testing.T) {
	chair := singleCellType()
	repo := &mockItemRepo{types: map[uuid.UUID]*domain.ItemType{chair.ID: chair}}
	uc := NewUseCase(&mockPlaceRepo{coworking: &domain.CoworkingSpace{Width: 3, Height: 3}}, repo, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), testRequest([]ItemInput{
		{ItemTypeID: chair.ID, Name: "inside", BasePoint: domain.Point{X: 0, Y: 0}},
		{ItemTypeID: chair.ID, Name: "outside", BasePoint: domain.Point{X: 3, Y: 0}},
	}))

	assert.ErrorIs(t, err, ErrOutOfBounds)
	// Первый предмет успел вставиться, но транзакция откатывает всё
	assert.Len(t, repo.created, 1)
}

func TestPutItemsOverlapWithinSet(t *testing.T) {
	chair := singleCellType()
	repo := &mockItemRepo{types: map[uuid.UUID]*domain.ItemType{chair.ID: chair}}
	uc := NewUseCase(&mockPlaceRepo{coworking: &domain.CoworkingSpace{Width: 3, Height: 3}}, repo, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), testRequest([]ItemInput{
		{ItemTypeID: chair.ID, Name: "chair 1", BasePoint: domain.Point{X: 1, Y: 1}},
		{ItemTypeID: chair.ID, Name: "chair 2", BasePoint: domain.Point{X: 1, Y: 1}},
	}))

	assert.ErrorIs(t, err, ErrItemsOverlap)
}

func TestPutItemsValidation(t *testing.T) {
	chair := singleCellType()
	uc := NewUseCase(&mockPlaceRepo{coworking: &domain.CoworkingSpace{Width: 3, Height: 3}}, &mockItemRepo{}, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), testRequest([]ItemInput{
		{ItemTypeID: chair.ID, Name: "", BasePoint: domain.Point{X: 0, Y: 0}},
	}))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

package place_item

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	itemStorage "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/item"
	placeStorage "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/place"
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
	err       error
}

func (m *mockPlaceRepo) GetCoworking(context.Context, uuid.UUID, uuid.UUID, uuid.UUID) (*domain.CoworkingSpace, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.coworking, nil
}

type mockItemRepo struct {
	itemType    *domain.ItemType
	typeErr     error
	coordinates []domain.ItemCoordinates

	created *domain.CoworkingItem
}

func (m *mockItemRepo) GetItemType(context.Context, uuid.UUID, uuid.UUID) (*domain.ItemType, error) {
	if m.typeErr != nil {
		return nil, m.typeErr
	}
	return m.itemType, nil
}

func (m *mockItemRepo) ListCoordinates(context.Context, uuid.UUID) ([]domain.ItemCoordinates, error) {
	return m.coordinates, nil
}

func (m *mockItemRepo) CreateItem(_ context.Context, item *domain.CoworkingItem) (*domain.CoworkingItem, error) {
	out := *item
	out.ID = uuid.New()
	m.created = &out
	return &out, nil
}

func testCoworking() *domain.CoworkingSpace {
	return &domain.CoworkingSpace{
		ID:     uuid.New(),
		Width:  5,
		Height: 5,
	}
}

// Стол 2x1: базовая клетка и клетка справа
func deskType() *domain.ItemType {
	return &domain.ItemType{
		ID:      uuid.New(),
		Name:    "desk",
		Offsets: domain.Offsets{{X: 0, Y: 0}, {X: 1, Y: 0}},
	}
}

func testRequest(itemTypeID uuid.UUID, base domain.Point) *Request {
	return &Request{
		CompanyID:   uuid.New(),
		BuildingID:  uuid.New(),
		CoworkingID: uuid.New(),
		ItemTypeID:  itemTypeID,
		Name:        "window desk",
		BasePoint:   base,
	}
}

func TestPlaceItemSuccess(t *testing.T) {
	itemType := deskType()
	items := &mockItemRepo{itemType: itemType}
	uc := NewUseCase(&mockPlaceRepo{coworking: testCoworking()}, items, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), testRequest(itemType.ID, domain.Point{X: 1, Y: 2}))

	require.NoError(t, err)
	assert.Equal(t, itemType.ID, resp.ItemTypeID)
	assert.Equal(t, domain.Point{X: 1, Y: 2}, resp.BasePoint)
	require.NotNil(t, items.created)
	assert.Equal(t, "window desk", items.created.Name)
}

func TestPlaceItemOutOfBounds(t *testing.T) {
	itemType := deskType()
	items := &mockItemRepo{itemType: itemType}
	uc := NewUseCase(&mockPlaceRepo{coworking: testCoworking()}, items, fakeTxManager{}, nopLogger{})

	// Базовая клетка на правой границе, вторая клетка за сеткой
	_, err := uc.Execute(context.Background(), testRequest(itemType.ID, domain.Point{X: 4, Y: 0}))

	assert.ErrorIs(t, err, ErrOutOfBounds)
	assert.Nil(t, items.created)
}

func TestPlaceItemOverlapsExisting(t *testing.T) {
	itemType := deskType()
	items := &mockItemRepo{
		itemType: itemType,
		coordinates: []domain.ItemCoordinates{
			{BasePoint: domain.Point{X: 2, Y: 2}, Offsets: domain.Offsets{{X: 0, Y: 0}}},
		},
	}
	uc := NewUseCase(&mockPlaceRepo{coworking: testCoworking()}, items, fakeTxManager{}, nopLogger{})

	// Клетки нового предмета: (1,2) и (2,2); вторая занята
	_, err := uc.Execute(context.Background(), testRequest(itemType.ID, domain.Point{X: 1, Y: 2}))

	assert.ErrorIs(t, err, ErrItemsOverlap)
	assert.Nil(t, items.created)
}

func TestPlaceItemCoworkingNotFound(t *testing.T) {
	itemType := deskType()
	uc := NewUseCase(
		&mockPlaceRepo{err: placeStorage.ErrCoworkingNotFound},
		&mockItemRepo{itemType: itemType},
		fakeTxManager{}, nopLogger{},
	)

	_, err := uc.Execute(context.Background(), testRequest(itemType.ID, domain.Point{X: 0, Y: 0}))
	assert.ErrorIs(t, err, ErrCoworkingNotFound)
}

func TestPlaceItemTypeNotFound(t *testing.T) {
	uc := NewUseCase(
		&mockPlaceRepo{coworking: testCoworking()},
		&mockItemRepo{typeErr: itemStorage.ErrItemTypeNotFound},
		fakeTxManager{}, nopLogger{},
	)

	_, err := uc.Execute(context.Background(), testRequest(uuid.New(), domain.Point{X: 0, Y: 0}))
	assert.ErrorIs(t, err, ErrItemTypeNotFound)
}

func TestPlaceItemValidation(t *testing.T) {
	itemType := deskType()
	uc := NewUseCase(&mockPlaceRepo{coworking: testCoworking()}, &mockItemRepo{itemType: itemType}, fakeTxManager{}, nopLogger{})

	req := testRequest(itemType.ID, domain.Point{X: 0, Y: 0})
	req.Name = ""
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

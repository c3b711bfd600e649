package put_items

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
)

// PlaceRepository интерфейс репозитория коворкингов
type PlaceRepository interface {
	GetCoworking(ctx context.Context, companyID, buildingID, id uuid.UUID) (*domain.CoworkingSpace, error)
}

// ItemRepository интерфейс репозитория предметов
type ItemRepository interface {
	GetItemType(ctx context.Context, companyID, id uuid.UUID) (*domain.ItemType, error)
	CreateItem(ctx context.Context, item *domain.CoworkingItem) (*domain.CoworkingItem, error)
	DeleteItemsByCoworking(ctx context.Context, coworkingID uuid.UUID) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

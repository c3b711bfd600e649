package items

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
)

// ItemRepository интерфейс репозитория типов предметов
type ItemRepository interface {
	CreateItemType(ctx context.Context, itemType *domain.ItemType) (*domain.ItemType, error)
	ListItemTypes(ctx context.Context, companyID uuid.UUID) ([]*domain.ItemType, error)
	GetItemType(ctx context.Context, companyID, id uuid.UUID) (*domain.ItemType, error)
	DeleteItemType(ctx context.Context, companyID, id uuid.UUID) error
}

// ObjectStore интерфейс объектного хранилища иконок
type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, body []byte) error
	Get(ctx context.Context, key string) ([]byte, string, error)
	Delete(ctx context.Context, key string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package items

import (
	"context"

	"github.com/google/uuid"

	itemsmodels "github.com/m04kA/SMC-CoworkingService/internal/service/items/models"
)

// ItemService интерфейс сервиса типов предметов
type ItemService interface {
	CreateItemType(ctx context.Context, req *itemsmodels.CreateItemTypeRequest) (*itemsmodels.ItemTypeResponse, error)
	ListItemTypes(ctx context.Context, companyID uuid.UUID) ([]*itemsmodels.ItemTypeResponse, error)
	GetItemType(ctx context.Context, companyID, id uuid.UUID) (*itemsmodels.ItemTypeResponse, error)
	GetIcon(ctx context.Context, companyID, id uuid.UUID) (*itemsmodels.IconResponse, error)
	DeleteItemType(ctx context.Context, companyID, id uuid.UUID) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package places

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
)

// PlaceRepository интерфейс репозитория зданий и коворкингов
type PlaceRepository interface {
	CreateBuilding(ctx context.Context, building *domain.Building) (*domain.Building, error)
	ListBuildings(ctx context.Context, companyID uuid.UUID) ([]*domain.Building, error)
	GetBuilding(ctx context.Context, companyID, id uuid.UUID) (*domain.Building, error)
	CreateCoworking(ctx context.Context, coworking *domain.CoworkingSpace) (*domain.CoworkingSpace, error)
	ListCoworkingsByBuilding(ctx context.Context, companyID, buildingID uuid.UUID) ([]*domain.CoworkingSpace, error)
	GetCoworking(ctx context.Context, companyID, buildingID, id uuid.UUID) (*domain.CoworkingSpace, error)
	UpdateCoworkingAddress(ctx context.Context, companyID, buildingID, id uuid.UUID, address string) (*domain.CoworkingSpace, error)
	DeleteCoworking(ctx context.Context, companyID, buildingID, id uuid.UUID) error
}

// ItemRepository интерфейс репозитория предметов
type ItemRepository interface {
	ListItems(ctx context.Context, coworkingID uuid.UUID) ([]*domain.CoworkingItem, error)
	DeleteItem(ctx context.Context, coworkingID, id uuid.UUID) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

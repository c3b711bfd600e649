package places

import (
	"context"

	"github.com/google/uuid"

	placesmodels "github.com/m04kA/SMC-CoworkingService/internal/service/places/models"
	"github.com/m04kA/SMC-CoworkingService/internal/usecase/place_item"
	"github.com/m04kA/SMC-CoworkingService/internal/usecase/put_items"
	"github.com/m04kA/SMC-CoworkingService/internal/usecase/resize_coworking"
)

// PlaceService интерфейс сервиса зданий и коворкингов
type PlaceService interface {
	CreateBuilding(ctx context.Context, req *placesmodels.CreateBuildingRequest) (*placesmodels.BuildingResponse, error)
	ListBuildings(ctx context.Context, companyID uuid.UUID) ([]*placesmodels.BuildingResponse, error)
	GetBuilding(ctx context.Context, companyID, id uuid.UUID) (*placesmodels.BuildingResponse, error)
	CreateCoworking(ctx context.Context, req *placesmodels.CreateCoworkingRequest) (*placesmodels.CoworkingResponse, error)
	ListCoworkings(ctx context.Context, companyID, buildingID uuid.UUID) ([]*placesmodels.CoworkingResponse, error)
	GetCoworking(ctx context.Context, companyID, buildingID, id uuid.UUID) (*placesmodels.CoworkingResponse, error)
	UpdateCoworkingAddress(ctx context.Context, companyID, buildingID, id uuid.UUID, address string) (*placesmodels.CoworkingResponse, error)
	DeleteCoworking(ctx context.Context, companyID, buildingID, id uuid.UUID) error
	ListItems(ctx context.Context, companyID, buildingID, coworkingID uuid.UUID) ([]*placesmodels.ItemResponse, error)
	DeleteItem(ctx context.Context, companyID, buildingID, coworkingID, id uuid.UUID) error
}

// PlaceItemUseCase интерфейс use case размещения одного предмета
type PlaceItemUseCase interface {
	Execute(ctx context.Context, req *place_item.Request) (*place_item.Response, error)
}

// PutItemsUseCase интерфейс use case полной замены предметов коворкинга
type PutItemsUseCase interface {
	Execute(ctx context.Context, req *put_items.Request) (*put_items.Response, error)
}

// ResizeCoworkingUseCase интерфейс use case изменения размеров сетки
type ResizeCoworkingUseCase interface {
	Execute(ctx context.Context, req *resize_coworking.Request) (*resize_coworking.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

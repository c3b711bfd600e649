package put_items

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
)

// ItemInput один предмет заменяющего набора
type ItemInput struct {
	ItemTypeID  uuid.UUID
	Name        string
	Description *string
	BasePoint   domain.Point
}

// Request модель запроса на полную замену предметов коворкинга
type Request struct {
	CompanyID   uuid.UUID
	BuildingID  uuid.UUID
	CoworkingID uuid.UUID
	Items       []ItemInput
}

// PlacedItem размещенный предмет в ответе
type PlacedItem struct {
	ID          uuid.UUID
	ItemTypeID  uuid.UUID
	Name        string
	Description *string
	BasePoint   domain.Point
}

// Response модель ответа с новым набором предметов
type Response struct {
	CoworkingID uuid.UUID
	Items       []PlacedItem
}

package place_item

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
)

// Request модель запроса на размещение предмета
type Request struct {
	CompanyID   uuid.UUID    // Компания (из токена)
	BuildingID  uuid.UUID    // Здание коворкинга
	CoworkingID uuid.UUID    // Коворкинг
	ItemTypeID  uuid.UUID    // Тип размещаемого предмета
	Name        string       // Отображаемое имя предмета
	Description *string      // Описание (опционально)
	BasePoint   domain.Point // Базовая точка на сетке
}

// Response модель ответа с размещенным предметом
type Response struct {
	ID          uuid.UUID
	ItemTypeID  uuid.UUID
	Name        string
	Description *string
	CoworkingID uuid.UUID
	BasePoint   domain.Point
}

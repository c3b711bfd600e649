package resize_coworking

import "github.com/google/uuid"

// Request модель запроса на изменение размеров сетки коворкинга
type Request struct {
	CompanyID   uuid.UUID
	BuildingID  uuid.UUID
	CoworkingID uuid.UUID
	Width       int64
	Height      int64
}

// Response модель ответа с обновленным коворкингом
type Response struct {
	ID         uuid.UUID
	Address    string
	Width      int64
	Height     int64
	BuildingID uuid.UUID
}

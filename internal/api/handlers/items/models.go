package items

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	itemsmodels "github.com/m04kA/SMC-CoworkingService/internal/service/items/models"
)

// PointModel точка сетки в wire формате
type PointModel struct {
	X int64 `json:"x"`
	Y int64 `json:"y"`
}

// CreateItemTypeData JSON часть multipart запроса на создание типа предмета
// Иконка передается отдельной частью формы
type CreateItemTypeData struct {
	Name        string       `json:"name"`
	Description *string      `json:"description,omitempty"`
	Color       string       `json:"color,omitempty"`
	Offsets     []PointModel `json:"offsets"`
	Bookable    bool         `json:"bookable"`
}

// ItemTypeResponse HTTP response model
type ItemTypeResponse struct {
	ID          uuid.UUID    `json:"id"`
	Name        string       `json:"name"`
	Description *string      `json:"description,omitempty"`
	Color       string       `json:"color"`
	HasIcon     bool         `json:"hasIcon"`
	Offsets     []PointModel `json:"offsets"`
	Bookable    bool         `json:"bookable"`
}

// ItemTypeListResponse HTTP response model
type ItemTypeListResponse struct {
	ItemTypes []*ItemTypeResponse `json:"itemTypes"`
}

// ToServiceRequest конвертирует данные формы в модель сервиса
func (d *CreateItemTypeData) ToServiceRequest(companyID uuid.UUID, icon []byte) *itemsmodels.CreateItemTypeRequest {
	offsets := make(domain.Offsets, 0, len(d.Offsets))
	for _, p := range d.Offsets {
		offsets = append(offsets, domain.Point{X: p.X, Y: p.Y})
	}
	return &itemsmodels.CreateItemTypeRequest{
		CompanyID:   companyID,
		Name:        d.Name,
		Description: d.Description,
		Color:       d.Color,
		Offsets:     offsets,
		Bookable:    d.Bookable,
		Icon:        icon,
	}
}

// FromServiceItemType конвертирует ответ сервиса в HTTP response
func FromServiceItemType(it *itemsmodels.ItemTypeResponse) *ItemTypeResponse {
	offsets := make([]PointModel, 0, len(it.Offsets))
	for _, p := range it.Offsets {
		offsets = append(offsets, PointModel{X: p.X, Y: p.Y})
	}
	return &ItemTypeResponse{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Color:       it.Color,
		HasIcon:     it.HasIcon,
		Offsets:     offsets,
		Bookable:    it.Bookable,
	}
}

// FromServiceItemTypeList конвертирует список типов предметов
func FromServiceItemTypeList(itemTypes []*itemsmodels.ItemTypeResponse) *ItemTypeListResponse {
	out := make([]*ItemTypeResponse, 0, len(itemTypes))
	for _, it := range itemTypes {
		out = append(out, FromServiceItemType(it))
	}
	return &ItemTypeListResponse{ItemTypes: out}
}

package models

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
)

// CreateItemTypeRequest запрос на создание типа предмета
// Icon - содержимое SVG файла; nil означает тип без иконки
type CreateItemTypeRequest struct {
	CompanyID   uuid.UUID
	Name        string
	Description *string
	Color       string
	Offsets     domain.Offsets
	Bookable    bool
	Icon        []byte
}

// ItemTypeResponse представление типа предмета
type ItemTypeResponse struct {
	ID          uuid.UUID
	Name        string
	Description *string
	Color       string
	HasIcon     bool
	Offsets     domain.Offsets
	Bookable    bool
}

// IconResponse содержимое иконки типа предмета
type IconResponse struct {
	Body        []byte
	ContentType string
}

// FromDomainItemType конвертирует доменную модель в response
func FromDomainItemType(it *domain.ItemType) *ItemTypeResponse {
	return &ItemTypeResponse{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Color:       it.Color,
		HasIcon:     it.Icon != nil,
		Offsets:     it.Offsets,
		Bookable:    it.Bookable,
	}
}

// FromDomainItemTypeList конвертирует список типов предметов
func FromDomainItemTypeList(itemTypes []*domain.ItemType) []*ItemTypeResponse {
	out := make([]*ItemTypeResponse, 0, len(itemTypes))
	for _, it := range itemTypes {
		out = append(out, FromDomainItemType(it))
	}
	return out
}

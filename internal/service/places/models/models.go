package models

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
)

// CreateBuildingRequest запрос на создание здания
type CreateBuildingRequest struct {
	CompanyID uuid.UUID
	Address   string
}

// BuildingResponse представление здания
type BuildingResponse struct {
	ID      uuid.UUID
	Address string
}

// CreateCoworkingRequest запрос на создание коворкинга
type CreateCoworkingRequest struct {
	CompanyID  uuid.UUID
	BuildingID uuid.UUID
	Address    string
	Width      int64
	Height     int64
}

// CoworkingResponse представление коворкинга
type CoworkingResponse struct {
	ID         uuid.UUID
	Address    string
	Width      int64
	Height     int64
	BuildingID uuid.UUID
}

// ItemResponse представление размещенного предмета
type ItemResponse struct {
	ID          uuid.UUID
	ItemTypeID  uuid.UUID
	Name        string
	Description *string
	BasePoint   domain.Point
}

// FromDomainBuilding конвертирует доменную модель в response
func FromDomainBuilding(b *domain.Building) *BuildingResponse {
	return &BuildingResponse{ID: b.ID, Address: b.Address}
}

// FromDomainBuildingList конвертирует список зданий
func FromDomainBuildingList(buildings []*domain.Building) []*BuildingResponse {
	out := make([]*BuildingResponse, 0, len(buildings))
	for _, b := range buildings {
		out = append(out, FromDomainBuilding(b))
	}
	return out
}

// FromDomainCoworking конвертирует доменную модель в response
func FromDomainCoworking(c *domain.CoworkingSpace) *CoworkingResponse {
	return &CoworkingResponse{
		ID:         c.ID,
		Address:    c.Address,
		Width:      c.Width,
		Height:     c.Height,
		BuildingID: c.BuildingID,
	}
}

// FromDomainCoworkingList конвертирует список коворкингов
func FromDomainCoworkingList(coworkings []*domain.CoworkingSpace) []*CoworkingResponse {
	out := make([]*CoworkingResponse, 0, len(coworkings))
	for _, c := range coworkings {
		out = append(out, FromDomainCoworking(c))
	}
	return out
}

// FromDomainItem конвертирует доменную модель в response
func FromDomainItem(i *domain.CoworkingItem) *ItemResponse {
	return &ItemResponse{
		ID:          i.ID,
		ItemTypeID:  i.ItemID,
		Name:        i.Name,
		Description: i.Description,
		BasePoint:   i.BasePoint,
	}
}

// FromDomainItemList конвертирует список предметов
func FromDomainItemList(items []*domain.CoworkingItem) []*ItemResponse {
	out := make([]*ItemResponse, 0, len(items))
	for _, i := range items {
		out = append(out, FromDomainItem(i))
	}
	return out
}

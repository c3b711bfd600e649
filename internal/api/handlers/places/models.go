package places

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	placesmodels "github.com/m04kA/SMC-CoworkingService/internal/service/places/models"
	"github.com/m04kA/SMC-CoworkingService/internal/usecase/place_item"
	"github.com/m04kA/SMC-CoworkingService/internal/usecase/put_items"
	"github.com/m04kA/SMC-CoworkingService/internal/usecase/resize_coworking"
)

// PointModel точка сетки в wire формате
type PointModel struct {
	X int64 `json:"x"`
	Y int64 `json:"y"`
}

// CreateBuildingRequest HTTP request model
type CreateBuildingRequest struct {
	Address string `json:"address"`
}

// BuildingResponse HTTP response model
type BuildingResponse struct {
	ID      uuid.UUID `json:"id"`
	Address string    `json:"address"`
}

// CreateCoworkingRequest HTTP request model
type CreateCoworkingRequest struct {
	Address string `json:"address"`
	Width   int64  `json:"width"`
	Height  int64  `json:"height"`
}

// UpdateCoworkingRequest HTTP request model
type UpdateCoworkingRequest struct {
	Address string `json:"address"`
}

// ResizeCoworkingRequest HTTP request model
type ResizeCoworkingRequest struct {
	Width  int64 `json:"width"`
	Height int64 `json:"height"`
}

// CoworkingResponse HTTP response model
type CoworkingResponse struct {
	ID         uuid.UUID `json:"id"`
	Address    string    `json:"address"`
	Width      int64     `json:"width"`
	Height     int64     `json:"height"`
	BuildingID uuid.UUID `json:"buildingId"`
}

// PlaceItemRequest HTTP request model
type PlaceItemRequest struct {
	ItemTypeID  uuid.UUID  `json:"itemTypeId"`
	Name        string     `json:"name"`
	Description *string    `json:"description,omitempty"`
	BasePoint   PointModel `json:"basePoint"`
}

// PutItemsRequest HTTP request model
// Пустой список означает очистку коворкинга
type PutItemsRequest struct {
	Items []PlaceItemRequest `json:"items"`
}

// ItemResponse HTTP response model
type ItemResponse struct {
	ID          uuid.UUID  `json:"id"`
	ItemTypeID  uuid.UUID  `json:"itemTypeId"`
	Name        string     `json:"name"`
	Description *string    `json:"description,omitempty"`
	BasePoint   PointModel `json:"basePoint"`
}

// ItemListResponse HTTP response model
type ItemListResponse struct {
	Items []*ItemResponse `json:"items"`
}

// ToDomainPoint конвертирует wire точку в доменную
func (p PointModel) ToDomainPoint() domain.Point {
	return domain.Point{X: p.X, Y: p.Y}
}

// FromDomainPoint конвертирует доменную точку в wire формат
func FromDomainPoint(p domain.Point) PointModel {
	return PointModel{X: p.X, Y: p.Y}
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateBuildingRequest) ToServiceRequest(companyID uuid.UUID) *placesmodels.CreateBuildingRequest {
	return &placesmodels.CreateBuildingRequest{
		CompanyID: companyID,
		Address:   r.Address,
	}
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateCoworkingRequest) ToServiceRequest(companyID, buildingID uuid.UUID) *placesmodels.CreateCoworkingRequest {
	return &placesmodels.CreateCoworkingRequest{
		CompanyID:  companyID,
		BuildingID: buildingID,
		Address:    r.Address,
		Width:      r.Width,
		Height:     r.Height,
	}
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *PlaceItemRequest) ToUseCaseRequest(companyID, buildingID, coworkingID uuid.UUID) *place_item.Request {
	return &place_item.Request{
		CompanyID:   companyID,
		BuildingID:  buildingID,
		CoworkingID: coworkingID,
		ItemTypeID:  r.ItemTypeID,
		Name:        r.Name,
		Description: r.Description,
		BasePoint:   r.BasePoint.ToDomainPoint(),
	}
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *PutItemsRequest) ToUseCaseRequest(companyID, buildingID, coworkingID uuid.UUID) *put_items.Request {
	items := make([]put_items.ItemInput, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, put_items.ItemInput{
			ItemTypeID:  item.ItemTypeID,
			Name:        item.Name,
			Description: item.Description,
			BasePoint:   item.BasePoint.ToDomainPoint(),
		})
	}
	return &put_items.Request{
		CompanyID:   companyID,
		BuildingID:  buildingID,
		CoworkingID: coworkingID,
		Items:       items,
	}
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ResizeCoworkingRequest) ToUseCaseRequest(companyID, buildingID, coworkingID uuid.UUID) *resize_coworking.Request {
	return &resize_coworking.Request{
		CompanyID:   companyID,
		BuildingID:  buildingID,
		CoworkingID: coworkingID,
		Width:       r.Width,
		Height:      r.Height,
	}
}

// FromServiceBuilding конвертирует ответ сервиса в HTTP response
func FromServiceBuilding(b *placesmodels.BuildingResponse) *BuildingResponse {
	return &BuildingResponse{ID: b.ID, Address: b.Address}
}

// FromServiceBuildingList конвертирует список зданий
func FromServiceBuildingList(buildings []*placesmodels.BuildingResponse) []*BuildingResponse {
	out := make([]*BuildingResponse, 0, len(buildings))
	for _, b := range buildings {
		out = append(out, FromServiceBuilding(b))
	}
	return out
}

// FromServiceCoworking конвертирует ответ сервиса в HTTP response
func FromServiceCoworking(c *placesmodels.CoworkingResponse) *CoworkingResponse {
	return &CoworkingResponse{
		ID:         c.ID,
		Address:    c.Address,
		Width:      c.Width,
		Height:     c.Height,
		BuildingID: c.BuildingID,
	}
}

// FromServiceCoworkingList конвертирует список коворкингов
func FromServiceCoworkingList(coworkings []*placesmodels.CoworkingResponse) []*CoworkingResponse {
	out := make([]*CoworkingResponse, 0, len(coworkings))
	for _, c := range coworkings {
		out = append(out, FromServiceCoworking(c))
	}
	return out
}

// FromServiceItem конвертирует ответ сервиса в HTTP response
func FromServiceItem(i *placesmodels.ItemResponse) *ItemResponse {
	return &ItemResponse{
		ID:          i.ID,
		ItemTypeID:  i.ItemTypeID,
		Name:        i.Name,
		Description: i.Description,
		BasePoint:   FromDomainPoint(i.BasePoint),
	}
}

// FromServiceItemList конвертирует список предметов
func FromServiceItemList(items []*placesmodels.ItemResponse) []*ItemResponse {
	out := make([]*ItemResponse, 0, len(items))
	for _, i := range items {
		out = append(out, FromServiceItem(i))
	}
	return out
}

// FromPlaceItemResponse конвертирует ответ use case в HTTP response
func FromPlaceItemResponse(resp *place_item.Response) *ItemResponse {
	return &ItemResponse{
		ID:          resp.ID,
		ItemTypeID:  resp.ItemTypeID,
		Name:        resp.Name,
		Description: resp.Description,
		BasePoint:   FromDomainPoint(resp.BasePoint),
	}
}

// FromPutItemsResponse конвертирует ответ use case в HTTP response
func FromPutItemsResponse(resp *put_items.Response) *ItemListResponse {
	items := make([]*ItemResponse, 0, len(resp.Items))
	for _, item := range resp.Items {
		items = append(items, &ItemResponse{
			ID:          item.ID,
			ItemTypeID:  item.ItemTypeID,
			Name:        item.Name,
			Description: item.Description,
			BasePoint:   FromDomainPoint(item.BasePoint),
		})
	}
	return &ItemListResponse{Items: items}
}

// FromResizeResponse конвертирует ответ use case в HTTP response
func FromResizeResponse(resp *resize_coworking.Response) *CoworkingResponse {
	return &CoworkingResponse{
		ID:         resp.ID,
		Address:    resp.Address,
		Width:      resp.Width,
		Height:     resp.Height,
		BuildingID: resp.BuildingID,
	}
}

package places

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CoworkingService/internal/api/handlers"
	"github.com/m04kA/SMC-CoworkingService/internal/api/middleware"
	placesService "github.com/m04kA/SMC-CoworkingService/internal/service/places"
	"github.com/m04kA/SMC-CoworkingService/internal/usecase/place_item"
	"github.com/m04kA/SMC-CoworkingService/internal/usecase/put_items"
	"github.com/m04kA/SMC-CoworkingService/internal/usecase/resize_coworking"
)

const (
	msgInvalidBody       = "некорректное тело запроса"
	msgInvalidID         = "некорректный идентификатор в пути"
	msgInvalidInput      = "некорректные входные данные"
	msgBuildingNotFound  = "здание не найдено"
	msgCoworkingNotFound = "коворкинг не найден"
	msgItemNotFound      = "предмет не найден"
	msgItemTypeNotFound  = "тип предмета не найден"
	msgOutOfBounds       = "предмет выходит за границы сетки"
	msgItemsOverlap      = "предметы пересекаются"
	msgItemsDontFit      = "размещенные предметы не помещаются в новые размеры"
)

// Handler обработчик зданий, коворкингов и размещения предметов
type Handler struct {
	placeService PlaceService
	placeItem    PlaceItemUseCase
	putItems     PutItemsUseCase
	resize       ResizeCoworkingUseCase
	logger       Logger
}

// NewHandler создает новый экземпляр обработчика
func NewHandler(
	placeService PlaceService,
	placeItem PlaceItemUseCase,
	putItems PutItemsUseCase,
	resize ResizeCoworkingUseCase,
	logger Logger,
) *Handler {
	return &Handler{
		placeService: placeService,
		placeItem:    placeItem,
		putItems:     putItems,
		resize:       resize,
		logger:       logger,
	}
}

// pathUUID достает UUID параметр из пути запроса
func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.Parse(mux.Vars(r)[name])
}

// CreateBuilding обрабатывает POST /buildings
func (h *Handler) CreateBuilding(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	var req CreateBuildingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("CreateBuilding: failed to decode request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	resp, err := h.placeService.CreateBuilding(r.Context(), req.ToServiceRequest(claims.CompanyID))
	if err != nil {
		switch {
		case errors.Is(err, placesService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("CreateBuilding: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, FromServiceBuilding(resp))
}

// ListBuildings обрабатывает GET /buildings
func (h *Handler) ListBuildings(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	resp, err := h.placeService.ListBuildings(r.Context(), claims.CompanyID)
	if err != nil {
		h.logger.Error("ListBuildings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceBuildingList(resp))
}

// GetBuilding обрабатывает GET /buildings/{buildingId}
func (h *Handler) GetBuilding(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	buildingID, err := pathUUID(r, "buildingId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	resp, err := h.placeService.GetBuilding(r.Context(), claims.CompanyID, buildingID)
	if err != nil {
		switch {
		case errors.Is(err, placesService.ErrBuildingNotFound):
			handlers.RespondNotFound(w, msgBuildingNotFound)
		default:
			h.logger.Error("GetBuilding: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceBuilding(resp))
}

// CreateCoworking обрабатывает POST /buildings/{buildingId}/coworkings
func (h *Handler) CreateCoworking(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	buildingID, err := pathUUID(r, "buildingId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req CreateCoworkingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("CreateCoworking: failed to decode request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	resp, err := h.placeService.CreateCoworking(r.Context(), req.ToServiceRequest(claims.CompanyID, buildingID))
	if err != nil {
		switch {
		case errors.Is(err, placesService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)
		case errors.Is(err, placesService.ErrBuildingNotFound):
			handlers.RespondNotFound(w, msgBuildingNotFound)
		default:
			h.logger.Error("CreateCoworking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, FromServiceCoworking(resp))
}

// ListCoworkings обрабатывает GET /buildings/{buildingId}/coworkings
func (h *Handler) ListCoworkings(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	buildingID, err := pathUUID(r, "buildingId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	resp, err := h.placeService.ListCoworkings(r.Context(), claims.CompanyID, buildingID)
	if err != nil {
		switch {
		case errors.Is(err, placesService.ErrBuildingNotFound):
			handlers.RespondNotFound(w, msgBuildingNotFound)
		default:
			h.logger.Error("ListCoworkings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceCoworkingList(resp))
}

// GetCoworking обрабатывает GET /buildings/{buildingId}/coworkings/{coworkingId}
func (h *Handler) GetCoworking(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	buildingID, err := pathUUID(r, "buildingId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}
	coworkingID, err := pathUUID(r, "coworkingId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	resp, err := h.placeService.GetCoworking(r.Context(), claims.CompanyID, buildingID, coworkingID)
	if err != nil {
		switch {
		case errors.Is(err, placesService.ErrCoworkingNotFound):
			handlers.RespondNotFound(w, msgCoworkingNotFound)
		default:
			h.logger.Error("GetCoworking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceCoworking(resp))
}

// UpdateCoworking обрабатывает PATCH /buildings/{buildingId}/coworkings/{coworkingId}
func (h *Handler) UpdateCoworking(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	buildingID, err := pathUUID(r, "buildingId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}
	coworkingID, err := pathUUID(r, "coworkingId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req UpdateCoworkingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("UpdateCoworking: failed to decode request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	resp, err := h.placeService.UpdateCoworkingAddress(r.Context(), claims.CompanyID, buildingID, coworkingID, req.Address)
	if err != nil {
		switch {
		case errors.Is(err, placesService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)
		case errors.Is(err, placesService.ErrCoworkingNotFound):
			handlers.RespondNotFound(w, msgCoworkingNotFound)
		default:
			h.logger.Error("UpdateCoworking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceCoworking(resp))
}

// ResizeCoworking обрабатывает PUT /buildings/{buildingId}/coworkings/{coworkingId}/dimensions
func (h *Handler) ResizeCoworking(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	buildingID, err := pathUUID(r, "buildingId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}
	coworkingID, err := pathUUID(r, "coworkingId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req ResizeCoworkingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("ResizeCoworking: failed to decode request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	resp, err := h.resize.Execute(r.Context(), req.ToUseCaseRequest(claims.CompanyID, buildingID, coworkingID))
	if err != nil {
		switch {
		case errors.Is(err, resize_coworking.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)
		case errors.Is(err, resize_coworking.ErrCoworkingNotFound):
			handlers.RespondNotFound(w, msgCoworkingNotFound)
		case errors.Is(err, resize_coworking.ErrItemsOutOfBounds):
			handlers.RespondConflict(w, msgItemsDontFit)
		default:
			h.logger.Error("ResizeCoworking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromResizeResponse(resp))
}

// DeleteCoworking обрабатывает DELETE /buildings/{buildingId}/coworkings/{coworkingId}
func (h *Handler) DeleteCoworking(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	buildingID, err := pathUUID(r, "buildingId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}
	coworkingID, err := pathUUID(r, "coworkingId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.placeService.DeleteCoworking(r.Context(), claims.CompanyID, buildingID, coworkingID); err != nil {
		switch {
		case errors.Is(err, placesService.ErrCoworkingNotFound):
			handlers.RespondNotFound(w, msgCoworkingNotFound)
		default:
			h.logger.Error("DeleteCoworking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListItems обрабатывает GET /buildings/{buildingId}/coworkings/{coworkingId}/items
func (h *Handler) ListItems(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	buildingID, err := pathUUID(r, "buildingId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}
	coworkingID, err := pathUUID(r, "coworkingId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	resp, err := h.placeService.ListItems(r.Context(), claims.CompanyID, buildingID, coworkingID)
	if err != nil {
		switch {
		case errors.Is(err, placesService.ErrCoworkingNotFound):
			handlers.RespondNotFound(w, msgCoworkingNotFound)
		default:
			h.logger.Error("ListItems: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &ItemListResponse{Items: FromServiceItemList(resp)})
}

// PlaceItem обрабатывает POST /buildings/{buildingId}/coworkings/{coworkingId}/items
func (h *Handler) PlaceItem(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	buildingID, err := pathUUID(r, "buildingId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}
	coworkingID, err := pathUUID(r, "coworkingId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req PlaceItemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PlaceItem: failed to decode request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	resp, err := h.placeItem.Execute(r.Context(), req.ToUseCaseRequest(claims.CompanyID, buildingID, coworkingID))
	if err != nil {
		switch {
		case errors.Is(err, place_item.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)
		case errors.Is(err, place_item.ErrCoworkingNotFound):
			handlers.RespondNotFound(w, msgCoworkingNotFound)
		case errors.Is(err, place_item.ErrItemTypeNotFound):
			handlers.RespondNotFound(w, msgItemTypeNotFound)
		case errors.Is(err, place_item.ErrOutOfBounds):
			handlers.RespondConflict(w, msgOutOfBounds)
		case errors.Is(err, place_item.ErrItemsOverlap):
			handlers.RespondConflict(w, msgItemsOverlap)
		default:
			h.logger.Error("PlaceItem: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, FromPlaceItemResponse(resp))
}

// PutItems обрабатывает PUT /buildings/{buildingId}/coworkings/{coworkingId}/items
func (h *Handler) PutItems(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	buildingID, err := pathUUID(r, "buildingId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}
	coworkingID, err := pathUUID(r, "coworkingId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req PutItemsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PutItems: failed to decode request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	resp, err := h.putItems.Execute(r.Context(), req.ToUseCaseRequest(claims.CompanyID, buildingID, coworkingID))
	if err != nil {
		switch {
		case errors.Is(err, put_items.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)
		case errors.Is(err, put_items.ErrCoworkingNotFound):
			handlers.RespondNotFound(w, msgCoworkingNotFound)
		case errors.Is(err, put_items.ErrItemTypeNotFound):
			handlers.RespondNotFound(w, msgItemTypeNotFound)
		case errors.Is(err, put_items.ErrOutOfBounds):
			handlers.RespondConflict(w, msgOutOfBounds)
		case errors.Is(err, put_items.ErrItemsOverlap):
			handlers.RespondConflict(w, msgItemsOverlap)
		default:
			h.logger.Error("PutItems: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromPutItemsResponse(resp))
}

// DeleteItem обрабатывает DELETE /buildings/{buildingId}/coworkings/{coworkingId}/items/{itemId}
func (h *Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	buildingID, err := pathUUID(r, "buildingId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}
	coworkingID, err := pathUUID(r, "coworkingId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}
	itemID, err := pathUUID(r, "itemId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.placeService.DeleteItem(r.Context(), claims.CompanyID, buildingID, coworkingID, itemID); err != nil {
		switch {
		case errors.Is(err, placesService.ErrCoworkingNotFound):
			handlers.RespondNotFound(w, msgCoworkingNotFound)
		case errors.Is(err, placesService.ErrItemNotFound):
			handlers.RespondNotFound(w, msgItemNotFound)
		default:
			h.logger.Error("DeleteItem: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

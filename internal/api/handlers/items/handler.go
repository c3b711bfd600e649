package items

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CoworkingService/internal/api/handlers"
	"github.com/m04kA/SMC-CoworkingService/internal/api/middleware"
	itemsService "github.com/m04kA/SMC-CoworkingService/internal/service/items"
)

const (
	msgInvalidForm      = "некорректная multipart форма"
	msgInvalidID        = "некорректный идентификатор в пути"
	msgInvalidInput     = "некорректные входные данные"
	msgItemTypeNotFound = "тип предмета не найден"
	msgIconNotFound     = "иконка не найдена"
)

// Handler обработчик типов предметов и их иконок
type Handler struct {
	itemService ItemService
	logger      Logger
}

// NewHandler создает новый экземпляр обработчика
func NewHandler(itemService ItemService, logger Logger) *Handler {
	return &Handler{
		itemService: itemService,
		logger:      logger,
	}
}

// pathUUID достает UUID параметр из пути запроса
func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.Parse(mux.Vars(r)[name])
}

// CreateItemType обрабатывает POST /item-types
// Запрос multipart: часть data с JSON описанием и опциональная часть icon с SVG
func (h *Handler) CreateItemType(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	var data CreateItemTypeData
	var icon []byte

	err := handlers.DecodeMultipart(r, map[string]handlers.MultipartField{
		"data": {
			Required: true,
			Decode: func(raw []byte) error {
				return json.Unmarshal(raw, &data)
			},
		},
		"icon": {
			Decode: func(raw []byte) error {
				icon = raw
				return nil
			},
		},
	})
	if err != nil {
		h.logger.Warn("CreateItemType: failed to decode form: %v", err)
		handlers.RespondBadRequest(w, msgInvalidForm)
		return
	}

	resp, err := h.itemService.CreateItemType(r.Context(), data.ToServiceRequest(claims.CompanyID, icon))
	if err != nil {
		switch {
		case errors.Is(err, itemsService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("CreateItemType: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, FromServiceItemType(resp))
}

// ListItemTypes обрабатывает GET /item-types
func (h *Handler) ListItemTypes(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	resp, err := h.itemService.ListItemTypes(r.Context(), claims.CompanyID)
	if err != nil {
		h.logger.Error("ListItemTypes: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceItemTypeList(resp))
}

// GetItemType обрабатывает GET /item-types/{itemTypeId}
func (h *Handler) GetItemType(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	itemTypeID, err := pathUUID(r, "itemTypeId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	resp, err := h.itemService.GetItemType(r.Context(), claims.CompanyID, itemTypeID)
	if err != nil {
		switch {
		case errors.Is(err, itemsService.ErrItemTypeNotFound):
			handlers.RespondNotFound(w, msgItemTypeNotFound)
		default:
			h.logger.Error("GetItemType: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceItemType(resp))
}

// GetIcon обрабатывает GET /item-types/{itemTypeId}/icon
// Отдает содержимое иконки как есть, с content type из хранилища
func (h *Handler) GetIcon(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	itemTypeID, err := pathUUID(r, "itemTypeId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	resp, err := h.itemService.GetIcon(r.Context(), claims.CompanyID, itemTypeID)
	if err != nil {
		switch {
		case errors.Is(err, itemsService.ErrItemTypeNotFound):
			handlers.RespondNotFound(w, msgItemTypeNotFound)
		case errors.Is(err, itemsService.ErrIconNotFound):
			handlers.RespondNotFound(w, msgIconNotFound)
		default:
			h.logger.Error("GetIcon: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	w.Header().Set("Content-Type", resp.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(resp.Body)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(resp.Body)
}

// DeleteItemType обрабатывает DELETE /item-types/{itemTypeId}
func (h *Handler) DeleteItemType(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	itemTypeID, err := pathUUID(r, "itemTypeId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.itemService.DeleteItemType(r.Context(), claims.CompanyID, itemTypeID); err != nil {
		switch {
		case errors.Is(err, itemsService.ErrItemTypeNotFound):
			handlers.RespondNotFound(w, msgItemTypeNotFound)
		default:
			h.logger.Error("DeleteItemType: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

package bookings

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CoworkingService/internal/api/handlers"
	"github.com/m04kA/SMC-CoworkingService/internal/api/middleware"
	bookingsService "github.com/m04kA/SMC-CoworkingService/internal/service/bookings"
	"github.com/m04kA/SMC-CoworkingService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-CoworkingService/internal/usecase/update_booking"
)

const (
	msgInvalidBody       = "некорректное тело запроса"
	msgInvalidID         = "некорректный идентификатор в пути"
	msgInvalidInput      = "некорректные входные данные"
	msgBookingNotFound   = "бронирование не найдено"
	msgCoworkingNotFound = "коворкинг не найден"
	msgItemNotFound      = "предмет не найден"
	msgItemNotBookable   = "предмет нельзя забронировать"
	msgRoleForbidden     = "роль не позволяет бронировать"
	msgTimeConflict      = "интервал пересекается с существующим бронированием"
	msgAccessDenied      = "бронирование принадлежит другому пользователю"
)

// Handler обработчик бронирований
type Handler struct {
	bookingService BookingService
	createBooking  CreateBookingUseCase
	updateBooking  UpdateBookingUseCase
	logger         Logger
}

// NewHandler создает новый экземпляр обработчика
func NewHandler(
	bookingService BookingService,
	createBooking CreateBookingUseCase,
	updateBooking UpdateBookingUseCase,
	logger Logger,
) *Handler {
	return &Handler{
		bookingService: bookingService,
		createBooking:  createBooking,
		updateBooking:  updateBooking,
		logger:         logger,
	}
}

// pathUUID достает UUID параметр из пути запроса
func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.Parse(mux.Vars(r)[name])
}

// Create обрабатывает POST /bookings
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("CreateBooking: failed to decode request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	resp, err := h.createBooking.Execute(r.Context(), req.ToUseCaseRequest(claims))
	if err != nil {
		switch {
		case errors.Is(err, create_booking.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)
		case errors.Is(err, create_booking.ErrRoleForbidden):
			handlers.RespondForbidden(w, msgRoleForbidden)
		case errors.Is(err, create_booking.ErrItemNotFound):
			handlers.RespondNotFound(w, msgItemNotFound)
		case errors.Is(err, create_booking.ErrItemNotBookable):
			handlers.RespondBadRequest(w, msgItemNotBookable)
		case errors.Is(err, create_booking.ErrTimeConflict):
			handlers.RespondConflict(w, msgTimeConflict)
		default:
			h.logger.Error("CreateBooking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, FromCreateResponse(resp))
}

// Get обрабатывает GET /bookings/{bookingId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	bookingID, err := pathUUID(r, "bookingId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	resp, err := h.bookingService.GetByID(r.Context(), identityFromClaims(claims), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgBookingNotFound)
		case errors.Is(err, bookingsService.ErrAccessDenied):
			handlers.RespondForbidden(w, msgAccessDenied)
		default:
			h.logger.Error("GetBooking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceBooking(resp))
}

// ListMine обрабатывает GET /bookings
// Возвращает только еще не закончившиеся бронирования пользователя
func (h *Handler) ListMine(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	resp, err := h.bookingService.ListMine(r.Context(), identityFromClaims(claims))
	if err != nil {
		h.logger.Error("ListMyBookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceBookingList(resp))
}

// ListByCoworking обрабатывает GET /buildings/{buildingId}/coworkings/{coworkingId}/bookings
func (h *Handler) ListByCoworking(w http.ResponseWriter, r *http.Request) {
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

	resp, err := h.bookingService.ListByCoworking(r.Context(), identityFromClaims(claims), buildingID, coworkingID)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrCoworkingNotFound):
			handlers.RespondNotFound(w, msgCoworkingNotFound)
		default:
			h.logger.Error("ListCoworkingBookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceBookingList(resp))
}

// Update обрабатывает PATCH /bookings/{bookingId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	bookingID, err := pathUUID(r, "bookingId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("UpdateBooking: failed to decode request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	resp, err := h.updateBooking.Execute(r.Context(), req.ToUseCaseRequest(claims, bookingID))
	if err != nil {
		switch {
		case errors.Is(err, update_booking.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)
		case errors.Is(err, update_booking.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgBookingNotFound)
		case errors.Is(err, update_booking.ErrForbidden):
			handlers.RespondForbidden(w, msgAccessDenied)
		case errors.Is(err, update_booking.ErrTimeConflict):
			handlers.RespondConflict(w, msgTimeConflict)
		default:
			h.logger.Error("UpdateBooking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUpdateResponse(resp))
}

// Delete обрабатывает DELETE /bookings/{bookingId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	bookingID, err := pathUUID(r, "bookingId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.bookingService.Delete(r.Context(), identityFromClaims(claims), bookingID); err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgBookingNotFound)
		case errors.Is(err, bookingsService.ErrAccessDenied):
			handlers.RespondForbidden(w, msgAccessDenied)
		default:
			h.logger.Error("DeleteBooking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

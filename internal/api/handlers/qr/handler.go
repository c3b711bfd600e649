package qr

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/yeqown/go-qrcode"

	"github.com/m04kA/SMC-CoworkingService/internal/api/handlers"
	"github.com/m04kA/SMC-CoworkingService/internal/api/middleware"
	"github.com/m04kA/SMC-CoworkingService/internal/usecase/generate_qr"
	"github.com/m04kA/SMC-CoworkingService/internal/usecase/verify_qr"
)

const (
	msgInvalidBody     = "некорректное тело запроса"
	msgInvalidID       = "некорректный идентификатор в пути"
	msgBookingNotFound = "бронирование не найдено"
	msgAccessDenied    = "бронирование принадлежит другому пользователю"
	msgBookingEnded    = "бронирование уже закончилось"
)

// Handler обработчик QR-кодов бронирований
type Handler struct {
	generateQr GenerateQrUseCase
	verifyQr   VerifyQrUseCase
	logger     Logger
}

// NewHandler создает новый экземпляр обработчика
func NewHandler(generateQr GenerateQrUseCase, verifyQr VerifyQrUseCase, logger Logger) *Handler {
	return &Handler{
		generateQr: generateQr,
		verifyQr:   verifyQr,
		logger:     logger,
	}
}

// Generate обрабатывает GET /bookings/{bookingId}/qr
// По умолчанию отдает JPEG картинку QR-кода; с format=json отдает
// подписанный токен для рендера на стороне клиента
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	bookingID, err := uuid.Parse(mux.Vars(r)["bookingId"])
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	resp, err := h.generateQr.Execute(r.Context(), &generate_qr.Request{
		UserID:    claims.UserID,
		CompanyID: claims.CompanyID,
		Role:      claims.Role,
		BookingID: bookingID,
	})
	if err != nil {
		switch {
		case errors.Is(err, generate_qr.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgBookingNotFound)
		case errors.Is(err, generate_qr.ErrForbidden):
			handlers.RespondForbidden(w, msgAccessDenied)
		case errors.Is(err, generate_qr.ErrBookingEnded):
			handlers.RespondConflict(w, msgBookingEnded)
		default:
			h.logger.Error("GenerateQr: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if r.URL.Query().Get("format") == "json" {
		handlers.RespondJSON(w, http.StatusOK, &GenerateQrResponse{
			Token:     resp.Token,
			ExpiresAt: resp.ExpiresAt,
		})
		return
	}

	qrc, err := qrcode.New(resp.Token)
	if err != nil {
		h.logger.Error("GenerateQr: failed to build qr code: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.WriteHeader(http.StatusOK)
	if err := qrc.SaveTo(w); err != nil {
		h.logger.Error("GenerateQr: failed to write qr image: %v", err)
	}
}

// Verify обрабатывает POST /qr/verify
// Любой исход проверки это 200 с вердиктом: пост охраны различает
// valid, invalid, expired и not_found по телу ответа
func (h *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	var req VerifyQrRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("VerifyQr: failed to decode request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	resp, err := h.verifyQr.Execute(r.Context(), &verify_qr.Request{
		CompanyID: claims.CompanyID,
		Token:     req.Token,
	})
	if err != nil {
		h.logger.Error("VerifyQr: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromVerifyResponse(resp))
}

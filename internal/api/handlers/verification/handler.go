package verification

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CoworkingService/internal/api/handlers"
	"github.com/m04kA/SMC-CoworkingService/internal/api/middleware"
	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	verificationService "github.com/m04kA/SMC-CoworkingService/internal/service/verification"
)

const (
	msgInvalidForm      = "некорректная multipart форма"
	msgInvalidID        = "некорректный идентификатор в пути"
	msgInvalidInput     = "некорректные входные данные"
	msgNotGuest         = "верификация доступна только гостям"
	msgAlreadyPending   = "запрос на верификацию уже отправлен"
	msgRequestNotFound  = "запрос на верификацию не найден"
	msgDocumentNotFound = "документ не найден"
)

// Handler обработчик верификации гостей
type Handler struct {
	verificationService VerificationService
	logger              Logger
}

// NewHandler создает новый экземпляр обработчика
func NewHandler(verificationService VerificationService, logger Logger) *Handler {
	return &Handler{
		verificationService: verificationService,
		logger:              logger,
	}
}

// Request обрабатывает POST /verification
// Запрос multipart: часть document с PDF документом
func (h *Handler) Request(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	var document []byte
	err := handlers.DecodeMultipart(r, map[string]handlers.MultipartField{
		"document": {
			Required: true,
			Decode: func(raw []byte) error {
				document = raw
				return nil
			},
		},
	})
	if err != nil {
		h.logger.Warn("RequestVerification: failed to decode form: %v", err)
		handlers.RespondBadRequest(w, msgInvalidForm)
		return
	}

	if err := h.verificationService.Request(r.Context(), claims.UserID, claims.CompanyID, document); err != nil {
		switch {
		case errors.Is(err, verificationService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)
		case errors.Is(err, verificationService.ErrNotGuest):
			handlers.RespondForbidden(w, msgNotGuest)
		case errors.Is(err, verificationService.ErrAlreadyPending):
			handlers.RespondConflict(w, msgAlreadyPending)
		default:
			h.logger.Error("RequestVerification: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

// ListPending обрабатывает GET /verification
func (h *Handler) ListPending(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	resp, err := h.verificationService.ListPending(r.Context(), claims.CompanyID)
	if err != nil {
		h.logger.Error("ListPendingVerifications: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceUserList(resp))
}

// GetDocument обрабатывает GET /verification/{userId}/document
func (h *Handler) GetDocument(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	userID, err := uuid.Parse(mux.Vars(r)["userId"])
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	document, err := h.verificationService.GetDocument(r.Context(), claims.CompanyID, userID)
	if err != nil {
		switch {
		case errors.Is(err, verificationService.ErrRequestNotFound):
			handlers.RespondNotFound(w, msgRequestNotFound)
		case errors.Is(err, verificationService.ErrDocumentNotFound):
			handlers.RespondNotFound(w, msgDocumentNotFound)
		default:
			h.logger.Error("GetVerificationDocument: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	w.Header().Set("Content-Type", domain.ContentTypePDF)
	w.Header().Set("Content-Length", strconv.Itoa(len(document)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(document)
}

// Approve обрабатывает POST /verification/{userId}/approve
func (h *Handler) Approve(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, "ApproveVerification", h.verificationService.Approve)
}

// Decline обрабатывает POST /verification/{userId}/decline
func (h *Handler) Decline(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, "DeclineVerification", h.verificationService.Decline)
}

// resolve общая часть одобрения и отклонения запроса
func (h *Handler) resolve(
	w http.ResponseWriter,
	r *http.Request,
	op string,
	fn func(ctx context.Context, companyID, userID uuid.UUID) error,
) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	userID, err := uuid.Parse(mux.Vars(r)["userId"])
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := fn(r.Context(), claims.CompanyID, userID); err != nil {
		switch {
		case errors.Is(err, verificationService.ErrRequestNotFound):
			handlers.RespondNotFound(w, msgRequestNotFound)
		case errors.Is(err, verificationService.ErrNotGuest):
			handlers.RespondConflict(w, msgNotGuest)
		default:
			h.logger.Error("%s: %v", op, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

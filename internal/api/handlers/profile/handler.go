package profile

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CoworkingService/internal/api/handlers"
	"github.com/m04kA/SMC-CoworkingService/internal/api/middleware"
	"github.com/m04kA/SMC-CoworkingService/internal/service/companies"
	"github.com/m04kA/SMC-CoworkingService/internal/service/users"
)

const (
	msgInvalidBody     = "некорректное тело запроса"
	msgInvalidInput    = "некорректные входные данные"
	msgUserNotFound    = "пользователь не найден"
	msgCompanyNotFound = "компания не найдена"
)

// Handler обработчик профиля текущего пользователя и его компании
type Handler struct {
	userService    UserService
	companyService CompanyService
	logger         Logger
}

// NewHandler создает новый экземпляр обработчика
func NewHandler(userService UserService, companyService CompanyService, logger Logger) *Handler {
	return &Handler{
		userService:    userService,
		companyService: companyService,
		logger:         logger,
	}
}

// GetProfile обрабатывает GET /profile
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	resp, err := h.userService.GetProfile(r.Context(), claims.UserID)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrUserNotFound):
			handlers.RespondNotFound(w, msgUserNotFound)
		default:
			h.logger.Error("GetProfile: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceUser(resp))
}

// UpdateProfile обрабатывает PATCH /profile
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	var req UpdateProfileRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("UpdateProfile: failed to decode request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	resp, err := h.userService.UpdateProfile(r.Context(), claims.UserID, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, users.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)
		case errors.Is(err, users.ErrUserNotFound):
			handlers.RespondNotFound(w, msgUserNotFound)
		default:
			h.logger.Error("UpdateProfile: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceUser(resp))
}

// GetCompany обрабатывает GET /company
func (h *Handler) GetCompany(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	resp, err := h.companyService.GetByID(r.Context(), claims.CompanyID)
	if err != nil {
		switch {
		case errors.Is(err, companies.ErrCompanyNotFound):
			handlers.RespondNotFound(w, msgCompanyNotFound)
		default:
			h.logger.Error("GetCompany: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceCompany(resp))
}

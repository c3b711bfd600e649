package auth

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CoworkingService/internal/api/handlers"
	"github.com/m04kA/SMC-CoworkingService/internal/service/companies"
	"github.com/m04kA/SMC-CoworkingService/internal/service/users"
)

const (
	msgInvalidBody        = "некорректное тело запроса"
	msgInvalidInput       = "некорректные входные данные"
	msgDomainTaken        = "домен компании уже занят"
	msgEmailTaken         = "email уже зарегистрирован в этой компании"
	msgCompanyNotFound    = "компания с таким доменом не найдена"
	msgInvalidCredentials = "неверный email или пароль"
)

// Handler обработчик публичных операций: регистрация компании,
// регистрация пользователя и вход
type Handler struct {
	companyService CompanyService
	userService    UserService
	logger         Logger
}

// NewHandler создает новый экземпляр обработчика
func NewHandler(companyService CompanyService, userService UserService, logger Logger) *Handler {
	return &Handler{
		companyService: companyService,
		userService:    userService,
		logger:         logger,
	}
}

// RegisterCompany обрабатывает POST /companies
func (h *Handler) RegisterCompany(w http.ResponseWriter, r *http.Request) {
	var req RegisterCompanyRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("RegisterCompany: failed to decode request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	resp, err := h.companyService.Register(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, companies.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)
		case errors.Is(err, companies.ErrDomainTaken):
			handlers.RespondConflict(w, msgDomainTaken)
		default:
			h.logger.Error("RegisterCompany: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, FromServiceCompany(resp))
}

// RegisterUser обрабатывает POST /auth/register
func (h *Handler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var req RegisterUserRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("RegisterUser: failed to decode request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	resp, err := h.userService.Register(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, users.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)
		case errors.Is(err, users.ErrCompanyNotFound):
			handlers.RespondNotFound(w, msgCompanyNotFound)
		case errors.Is(err, users.ErrEmailTaken):
			handlers.RespondConflict(w, msgEmailTaken)
		default:
			h.logger.Error("RegisterUser: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, FromServiceAuth(resp))
}

// Login обрабатывает POST /auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("Login: failed to decode request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	resp, err := h.userService.Login(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, users.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)
		case errors.Is(err, users.ErrInvalidCredentials):
			handlers.RespondForbidden(w, msgInvalidCredentials)
		default:
			h.logger.Error("Login: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceAuth(resp))
}

package auth

import (
	"context"

	companiesmodels "github.com/m04kA/SMC-CoworkingService/internal/service/companies/models"
	usersmodels "github.com/m04kA/SMC-CoworkingService/internal/service/users/models"
)

// CompanyService интерфейс сервиса компаний
type CompanyService interface {
	Register(ctx context.Context, req *companiesmodels.RegisterRequest) (*companiesmodels.RegisterResponse, error)
}

// UserService интерфейс сервиса пользователей
type UserService interface {
	Register(ctx context.Context, req *usersmodels.RegisterRequest) (*usersmodels.AuthResponse, error)
	Login(ctx context.Context, req *usersmodels.LoginRequest) (*usersmodels.AuthResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

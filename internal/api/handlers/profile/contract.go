package profile

import (
	"context"

	"github.com/google/uuid"

	companiesmodels "github.com/m04kA/SMC-CoworkingService/internal/service/companies/models"
	usersmodels "github.com/m04kA/SMC-CoworkingService/internal/service/users/models"
)

// UserService интерфейс сервиса пользователей
type UserService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*usersmodels.UserResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *usersmodels.UpdateProfileRequest) (*usersmodels.UserResponse, error)
}

// CompanyService интерфейс сервиса компаний
type CompanyService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*companiesmodels.CompanyResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

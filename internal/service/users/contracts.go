package users

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	userRepo "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/user"
)

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, companyID uuid.UUID, email string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, params userRepo.UpdateProfileParams) (*domain.User, error)
}

// CompanyRepository интерфейс репозитория компаний
type CompanyRepository interface {
	GetByDomain(ctx context.Context, companyDomain string) (*domain.Company, error)
}

// TokenIssuer интерфейс выпуска сессионных токенов
type TokenIssuer interface {
	CreateToken(user *domain.User) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

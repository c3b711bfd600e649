package verification

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
)

// UserRepository интерфейс репозитория пользователей и запросов на верификацию
type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateRole(ctx context.Context, id uuid.UUID, from, to domain.Role) error
	CreatePending(ctx context.Context, userID, companyID uuid.UUID) error
	GetPending(ctx context.Context, companyID, userID uuid.UUID) (*domain.PendingVerification, error)
	DeletePending(ctx context.Context, companyID, userID uuid.UUID) error
	ListPendingUsers(ctx context.Context, companyID uuid.UUID) ([]*domain.User, error)
}

// ObjectStore интерфейс объектного хранилища документов верификации
type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, body []byte) error
	Get(ctx context.Context, key string) ([]byte, string, error)
	Delete(ctx context.Context, key string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

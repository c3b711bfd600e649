package verification

import (
	"context"

	"github.com/google/uuid"

	usersmodels "github.com/m04kA/SMC-CoworkingService/internal/service/users/models"
)

// VerificationService интерфейс сервиса верификации гостей
type VerificationService interface {
	Request(ctx context.Context, userID, companyID uuid.UUID, document []byte) error
	ListPending(ctx context.Context, companyID uuid.UUID) ([]*usersmodels.UserResponse, error)
	GetDocument(ctx context.Context, companyID, userID uuid.UUID) ([]byte, error)
	Approve(ctx context.Context, companyID, userID uuid.UUID) error
	Decline(ctx context.Context, companyID, userID uuid.UUID) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

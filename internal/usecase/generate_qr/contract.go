package generate_qr

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, companyID, id uuid.UUID) (*domain.Booking, error)
}

// TokenIssuer интерфейс выпуска QR-токенов
type TokenIssuer interface {
	CreateQrToken(booking *domain.Booking) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

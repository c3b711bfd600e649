package bookings

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
)

// Identity личность вызывающего из токена сессии
type Identity struct {
	UserID    uuid.UUID
	CompanyID uuid.UUID
	Role      domain.Role
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, companyID, id uuid.UUID) (*domain.Booking, error)
	ListByUser(ctx context.Context, companyID, userID uuid.UUID, now time.Time) ([]*domain.Booking, error)
	ListByCoworking(ctx context.Context, companyID, coworkingID uuid.UUID, now time.Time) ([]*domain.Booking, error)
	Delete(ctx context.Context, companyID, id uuid.UUID) error
}

// PlaceRepository интерфейс репозитория коворкингов
type PlaceRepository interface {
	GetCoworking(ctx context.Context, companyID, buildingID, id uuid.UUID) (*domain.CoworkingSpace, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

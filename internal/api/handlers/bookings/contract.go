package bookings

import (
	"context"

	"github.com/google/uuid"

	bookingsService "github.com/m04kA/SMC-CoworkingService/internal/service/bookings"
	bookingsmodels "github.com/m04kA/SMC-CoworkingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-CoworkingService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-CoworkingService/internal/usecase/update_booking"
)

// BookingService интерфейс сервиса бронирований
type BookingService interface {
	GetByID(ctx context.Context, claims *bookingsService.Identity, id uuid.UUID) (*bookingsmodels.BookingResponse, error)
	ListMine(ctx context.Context, claims *bookingsService.Identity) ([]*bookingsmodels.BookingResponse, error)
	ListByCoworking(ctx context.Context, claims *bookingsService.Identity, buildingID, coworkingID uuid.UUID) ([]*bookingsmodels.BookingResponse, error)
	Delete(ctx context.Context, claims *bookingsService.Identity, id uuid.UUID) error
}

// CreateBookingUseCase интерфейс use case создания бронирования
type CreateBookingUseCase interface {
	Execute(ctx context.Context, req *create_booking.Request) (*create_booking.Response, error)
}

// UpdateBookingUseCase интерфейс use case изменения интервала бронирования
type UpdateBookingUseCase interface {
	Execute(ctx context.Context, req *update_booking.Request) (*update_booking.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

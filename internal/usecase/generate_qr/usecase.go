package generate_qr

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/booking"
)

// Request модель запроса на выпуск QR-токена бронирования
type Request struct {
	UserID    uuid.UUID   // Пользователь (из токена)
	CompanyID uuid.UUID   // Компания (из токена)
	Role      domain.Role // Роль пользователя (из токена)
	BookingID uuid.UUID   // Бронирование
}

// Response модель ответа с подписанным QR-токеном
type Response struct {
	Token     string
	ExpiresAt time.Time
}

// UseCase use case выпуска QR-токена бронирования
type UseCase struct {
	bookingRepo BookingRepository
	tokens      TokenIssuer
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, tokens TokenIssuer, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		tokens:      tokens,
		logger:      logger,
	}
}

// Execute выполняет use case выпуска QR-токена
// Токен выдается только владельцу бронирования (или администратору компании)
// и живет до конца самого бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GenerateQr: user=%s, company=%s, booking=%s", req.UserID, req.CompanyID, req.BookingID)

	if req.BookingID == uuid.Nil {
		return nil, fmt.Errorf("%w: bookingID is required", ErrInvalidInput)
	}

	booking, err := uc.bookingRepo.GetByID(ctx, req.CompanyID, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("GenerateQr: booking id=%s not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("GenerateQr: failed to get booking: %v", err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	if !req.Role.IsAdmin() && !booking.IsOwnedBy(req.UserID, req.CompanyID) {
		uc.logger.Warn("GenerateQr: booking id=%s belongs to another user", req.BookingID)
		return nil, ErrForbidden
	}

	if !booking.TimeEnd.After(time.Now()) {
		uc.logger.Warn("GenerateQr: booking id=%s has already ended", req.BookingID)
		return nil, ErrBookingEnded
	}

	token, err := uc.tokens.CreateQrToken(booking)
	if err != nil {
		uc.logger.Error("GenerateQr: failed to sign token: %v", err)
		return nil, fmt.Errorf("%w: failed to sign token: %v", ErrInternal, err)
	}

	uc.logger.Info("GenerateQr: issued token for booking id=%s, exp=%s",
		booking.ID, booking.TimeEnd.Format(domain.TimeFormat))

	return &Response{
		Token:     token,
		ExpiresAt: booking.TimeEnd,
	}, nil
}

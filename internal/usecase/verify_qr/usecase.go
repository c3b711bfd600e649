package verify_qr

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CoworkingService/internal/auth"
	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/booking"
)

// Verdict результат проверки QR-токена
type Verdict string

const (
	// VerdictValid токен корректен, бронирование активно
	VerdictValid Verdict = "valid"
	// VerdictInvalid подпись не сошлась или токен не разбирается
	VerdictInvalid Verdict = "invalid"
	// VerdictExpired токен или само бронирование уже истекли
	VerdictExpired Verdict = "expired"
	// VerdictNotFound бронирование не существует в компании проверяющего
	VerdictNotFound Verdict = "not_found"
)

// Request модель запроса на проверку QR-токена
type Request struct {
	CompanyID uuid.UUID // Компания проверяющего (из токена сессии)
	Token     string    // QR-токен из отсканированного кода
}

// Response вердикт проверки
// Booking заполняется только при VerdictValid
type Response struct {
	Verdict Verdict
	Booking *domain.PublicBooking
}

// UseCase use case проверки QR-токена бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	tokens       TokenVerifier
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, tokens TokenVerifier, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		tokens:       tokens,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case проверки QR-токена
// Проверка fail-soft: негодный токен это не ошибка запроса, а отрицательный
// вердикт. HTTP слой всегда отвечает 200 с вердиктом внутри
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Token == "" {
		uc.logger.Warn("VerifyQr: empty token, company=%s", req.CompanyID)
		return &Response{Verdict: VerdictInvalid}, nil
	}

	claims, err := uc.tokens.ValidateQrToken(req.Token)
	if err != nil {
		if errors.Is(err, auth.ErrTokenExpired) {
			uc.logger.Info("VerifyQr: expired token, company=%s", req.CompanyID)
			return &Response{Verdict: VerdictExpired}, nil
		}
		uc.logger.Info("VerifyQr: invalid token, company=%s: %v", req.CompanyID, err)
		return &Response{Verdict: VerdictInvalid}, nil
	}

	// Бронирование ищется в компании проверяющего: чужое бронирование
	// неотличимо от несуществующего
	booking, err := uc.bookingRepo.GetPublicByID(ctx, req.CompanyID, claims.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Info("VerifyQr: booking id=%s not found in company=%s", claims.BookingID, req.CompanyID)
			return &Response{Verdict: VerdictNotFound}, nil
		}
		uc.logger.Error("VerifyQr: failed to get booking: %v", err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	// Подпись может быть живой, а бронирование уже закончившимся,
	// если часы проверяющего и exp разошлись на границе
	if !booking.TimeEnd.After(uc.timeProvider.Now()) {
		uc.logger.Info("VerifyQr: booking id=%s has already ended", booking.ID)
		return &Response{Verdict: VerdictExpired}, nil
	}

	uc.logger.Info("VerifyQr: booking id=%s is valid", booking.ID)

	return &Response{
		Verdict: VerdictValid,
		Booking: booking,
	}, nil
}

package update_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/booking"
)

// UseCase use case изменения интервала бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case изменения бронирования
// Обновление и проверка владения идут в одной транзакции: если запись
// после обновления оказалась чужой, транзакция откатывается и изменение
// не публикуется
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBooking: user=%s, company=%s, booking=%s",
		req.UserID, req.CompanyID, req.BookingID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	var result *domain.Booking

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		existing, err := uc.bookingRepo.GetByID(txCtx, req.CompanyID, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("UpdateBooking: booking id=%s not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to get booking: %v", err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// Эффективный интервал: незаданные поля берутся из текущей записи
		effectiveStart := existing.TimeStart
		if req.TimeStart != nil {
			effectiveStart = *req.TimeStart
		}
		effectiveEnd := existing.TimeEnd
		if req.TimeEnd != nil {
			effectiveEnd = *req.TimeEnd
		}

		if err := validateInterval(effectiveStart, effectiveEnd, now, req.TimeStart != nil); err != nil {
			uc.logger.Warn("UpdateBooking: interval validation failed: %v", err)
			return err
		}

		updated, err := uc.bookingRepo.Update(txCtx, req.CompanyID, req.BookingID, req.TimeStart, req.TimeEnd)
		if err != nil {
			switch {
			case errors.Is(err, bookingRepo.ErrBookingNotFound):
				return ErrBookingNotFound
			case errors.Is(err, bookingRepo.ErrTimeConflict):
				uc.logger.Warn("UpdateBooking: time conflict for booking=%s", req.BookingID)
				return ErrTimeConflict
			case errors.Is(err, bookingRepo.ErrInvalidTimeRange):
				uc.logger.Warn("UpdateBooking: invalid time range rejected by constraints")
				return fmt.Errorf("%w: invalid time range", ErrInvalidInput)
			}
			uc.logger.Error("UpdateBooking: failed to update booking: %v", err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		// Владение проверяется по обновленной записи; ошибка откатывает UPDATE
		if !req.Role.IsAdmin() && !updated.IsOwnedBy(req.UserID, req.CompanyID) {
			uc.logger.Warn("UpdateBooking: booking id=%s belongs to another user", req.BookingID)
			return ErrForbidden
		}

		result = updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateBooking: successfully updated booking id=%s", result.ID)

	return &Response{
		ID:          result.ID,
		UserID:      result.UserID,
		CoworkingID: result.CoworkingSpaceID,
		ItemID:      result.CoworkingItemID,
		TimeStart:   result.TimeStart,
		TimeEnd:     result.TimeEnd,
	}, nil
}

// validateInterval проверяет эффективный интервал после применения патча
// Начало проверяется на будущее только когда его меняют: дотянуть конец
// уже идущего бронирования допустимо
func validateInterval(start, end, now time.Time, startChanged bool) error {
	if !start.Before(end) {
		return fmt.Errorf("%w: timeStart must be before timeEnd", ErrInvalidInput)
	}
	if startChanged && !start.After(now) {
		return fmt.Errorf("%w: booking must start in the future", ErrInvalidInput)
	}
	if end.Sub(start)%domain.BookingStep != 0 {
		return fmt.Errorf("%w: duration must be a multiple of %d minutes",
			ErrInvalidInput, int(domain.BookingStep.Minutes()))
	}

	return nil
}

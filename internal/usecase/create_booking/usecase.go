package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/booking"
	itemRepo "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/item"
)

// UseCase use case создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	itemRepo     ItemRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	itemRepo ItemRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		itemRepo:     itemRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Пересечения интервалов отлавливает exclusion constraint БД;
// проверка bookable и вставка идут в одной транзакции, чтобы предмет
// не перестал быть бронируемым между проверкой и вставкой
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%s, company=%s, item=%s, start=%s, end=%s",
		req.UserID, req.CompanyID, req.ItemID,
		req.TimeStart.Format(domain.TimeFormat), req.TimeEnd.Format(domain.TimeFormat))

	now := uc.timeProvider.Now()

	// 1. Роль должна давать право бронировать: гости без верификации не бронируют
	if !req.Role.CanBook() {
		uc.logger.Warn("CreateBooking: role %s is not allowed to book, user=%s", req.Role, req.UserID)
		return nil, ErrRoleForbidden
	}

	// 2. Валидация интервала
	if err := validateInterval(req.TimeStart, req.TimeEnd, now); err != nil {
		uc.logger.Warn("CreateBooking: interval validation failed: %v", err)
		return nil, err
	}

	var created *domain.Booking

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 3. Предмет существует в рамках компании и коворкинга и допускает бронирование
		bookable, err := uc.itemRepo.GetItemBookable(txCtx, req.CompanyID, req.CoworkingID, req.ItemID)
		if err != nil {
			if errors.Is(err, itemRepo.ErrItemNotFound) {
				uc.logger.Warn("CreateBooking: item id=%s not found", req.ItemID)
				return ErrItemNotFound
			}
			uc.logger.Error("CreateBooking: failed to check item: %v", err)
			return fmt.Errorf("%w: failed to check item: %v", ErrInternal, err)
		}
		if !bookable {
			uc.logger.Warn("CreateBooking: item id=%s is not bookable", req.ItemID)
			return ErrItemNotBookable
		}

		// 4. Вставка; конфликт интервалов приходит от БД
		booking := &domain.Booking{
			UserID:           req.UserID,
			CoworkingSpaceID: req.CoworkingID,
			CoworkingItemID:  req.ItemID,
			CompanyID:        req.CompanyID,
			TimeStart:        req.TimeStart,
			TimeEnd:          req.TimeEnd,
		}

		created, err = uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			switch {
			case errors.Is(err, bookingRepo.ErrTimeConflict):
				uc.logger.Warn("CreateBooking: time conflict for item=%s", req.ItemID)
				return ErrTimeConflict
			case errors.Is(err, bookingRepo.ErrInvalidTimeRange):
				uc.logger.Warn("CreateBooking: invalid time range rejected by constraints")
				return fmt.Errorf("%w: invalid time range", ErrInvalidInput)
			case errors.Is(err, bookingRepo.ErrReferenceNotFound):
				uc.logger.Warn("CreateBooking: booking reference not found")
				return ErrItemNotFound
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s", created.ID)

	return &Response{
		ID:          created.ID,
		UserID:      created.UserID,
		CoworkingID: created.CoworkingSpaceID,
		ItemID:      created.CoworkingItemID,
		TimeStart:   created.TimeStart,
		TimeEnd:     created.TimeEnd,
	}, nil
}

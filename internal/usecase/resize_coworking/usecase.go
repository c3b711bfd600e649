package resize_coworking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	placeRepo "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/place"
)

// UseCase use case изменения размеров сетки коворкинга
type UseCase struct {
	placeRepo PlaceRepository
	itemRepo  ItemRepository
	txManager TransactionManager
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	placeRepo PlaceRepository,
	itemRepo ItemRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		placeRepo: placeRepo,
		itemRepo:  itemRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// Execute выполняет use case изменения размеров
// Сжатие допустимо только если все размещенные предметы остаются
// внутри новой сетки. Проверка и обновление идут в одной транзакции,
// чтобы конкурирующее размещение не въехало в отрезаемую область
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ResizeCoworking: company=%s, coworking=%s, size=%dx%d",
		req.CompanyID, req.CoworkingID, req.Width, req.Height)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ResizeCoworking: validation failed: %v", err)
		return nil, err
	}

	var result *domain.CoworkingSpace

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		_, err := uc.placeRepo.GetCoworking(txCtx, req.CompanyID, req.BuildingID, req.CoworkingID)
		if err != nil {
			if errors.Is(err, placeRepo.ErrCoworkingNotFound) {
				uc.logger.Warn("ResizeCoworking: coworking id=%s not found", req.CoworkingID)
				return ErrCoworkingNotFound
			}
			uc.logger.Error("ResizeCoworking: failed to get coworking: %v", err)
			return fmt.Errorf("%w: failed to get coworking: %v", ErrInternal, err)
		}

		coordinates, err := uc.itemRepo.ListCoordinates(txCtx, req.CoworkingID)
		if err != nil {
			uc.logger.Error("ResizeCoworking: failed to list item coordinates: %v", err)
			return fmt.Errorf("%w: failed to list item coordinates: %v", ErrInternal, err)
		}

		for _, coords := range coordinates {
			cells := domain.AbsoluteCells(coords.BasePoint, coords.Offsets)
			if err := domain.ValidateBounds(cells, req.Width, req.Height); err != nil {
				uc.logger.Warn("ResizeCoworking: items do not fit %dx%d", req.Width, req.Height)
				return ErrItemsOutOfBounds
			}
		}

		updated, err := uc.placeRepo.UpdateCoworkingDimensions(
			txCtx, req.CompanyID, req.BuildingID, req.CoworkingID, req.Width, req.Height,
		)
		if err != nil {
			uc.logger.Error("ResizeCoworking: failed to update dimensions: %v", err)
			return fmt.Errorf("%w: failed to update dimensions: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("ResizeCoworking: successfully resized coworking id=%s to %dx%d",
		result.ID, result.Width, result.Height)

	return &Response{
		ID:         result.ID,
		Address:    result.Address,
		Width:      result.Width,
		Height:     result.Height,
		BuildingID: result.BuildingID,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CompanyID == uuid.Nil {
		return fmt.Errorf("%w: companyID is required", ErrInvalidInput)
	}
	if req.BuildingID == uuid.Nil {
		return fmt.Errorf("%w: buildingID is required", ErrInvalidInput)
	}
	if req.CoworkingID == uuid.Nil {
		return fmt.Errorf("%w: coworkingID is required", ErrInvalidInput)
	}
	if req.Width <= 0 || req.Height <= 0 {
		return fmt.Errorf("%w: width and height must be positive", ErrInvalidInput)
	}

	return nil
}

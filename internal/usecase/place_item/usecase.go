package place_item

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	itemRepo "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/item"
	placeRepo "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/place"
)

// UseCase use case размещения одного предмета в коворкинге
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

// Execute выполняет use case размещения предмета
// Геометрические проверки и вставка идут в одной сериализуемой транзакции:
// конкурирующее размещение не может протиснуть предмет в ту же клетку
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("PlaceItem: company=%s, coworking=%s, itemType=%s, base=(%d,%d)",
		req.CompanyID, req.CoworkingID, req.ItemTypeID, req.BasePoint.X, req.BasePoint.Y)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("PlaceItem: validation failed: %v", err)
		return nil, err
	}

	var result *domain.CoworkingItem

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Коворкинг в рамках компании
		coworking, err := uc.placeRepo.GetCoworking(txCtx, req.CompanyID, req.BuildingID, req.CoworkingID)
		if err != nil {
			if errors.Is(err, placeRepo.ErrCoworkingNotFound) {
				uc.logger.Warn("PlaceItem: coworking id=%s not found", req.CoworkingID)
				return ErrCoworkingNotFound
			}
			uc.logger.Error("PlaceItem: failed to get coworking: %v", err)
			return fmt.Errorf("%w: failed to get coworking: %v", ErrInternal, err)
		}

		// 2. Тип предмета в рамках компании
		itemType, err := uc.itemRepo.GetItemType(txCtx, req.CompanyID, req.ItemTypeID)
		if err != nil {
			if errors.Is(err, itemRepo.ErrItemTypeNotFound) {
				uc.logger.Warn("PlaceItem: item type id=%s not found", req.ItemTypeID)
				return ErrItemTypeNotFound
			}
			uc.logger.Error("PlaceItem: failed to get item type: %v", err)
			return fmt.Errorf("%w: failed to get item type: %v", ErrInternal, err)
		}

		// 3. Клетки нового предмета внутри сетки
		newCells := domain.AbsoluteCells(req.BasePoint, itemType.Offsets)
		if err := domain.ValidateBounds(newCells, coworking.Width, coworking.Height); err != nil {
			uc.logger.Warn("PlaceItem: item out of bounds in coworking %dx%d", coworking.Width, coworking.Height)
			return ErrOutOfBounds
		}

		// 4. Пересечение с уже размещенными предметами
		existing, err := uc.itemRepo.ListCoordinates(txCtx, req.CoworkingID)
		if err != nil {
			uc.logger.Error("PlaceItem: failed to list item coordinates: %v", err)
			return fmt.Errorf("%w: failed to list item coordinates: %v", ErrInternal, err)
		}

		allCells := newCells
		for _, coords := range existing {
			allCells = append(allCells, domain.AbsoluteCells(coords.BasePoint, coords.Offsets)...)
		}
		if err := domain.ValidateNoOverlap(allCells); err != nil {
			uc.logger.Warn("PlaceItem: item overlaps with existing items")
			return ErrItemsOverlap
		}

		// 5. Вставка
		item := &domain.CoworkingItem{
			ItemID:      req.ItemTypeID,
			Name:        req.Name,
			Description: req.Description,
			CoworkingID: req.CoworkingID,
			BasePoint:   req.BasePoint,
		}

		created, err := uc.itemRepo.CreateItem(txCtx, item)
		if err != nil {
			uc.logger.Error("PlaceItem: failed to create item: %v", err)
			return fmt.Errorf("%w: failed to create item: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("PlaceItem: successfully placed item id=%s", result.ID)

	return &Response{
		ID:          result.ID,
		ItemTypeID:  result.ItemID,
		Name:        result.Name,
		Description: result.Description,
		CoworkingID: result.CoworkingID,
		BasePoint:   result.BasePoint,
	}, nil
}

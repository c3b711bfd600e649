package put_items

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	itemRepo "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/item"
	placeRepo "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/place"
)

// UseCase use case полной замены набора предметов коворкинга
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

// Execute выполняет use case замены предметов
// Протокол: в одной сериализуемой транзакции удалить старый набор,
// вставить новый с проверкой границ по ходу, затем одна общая проверка
// пересечений. Любая ошибка откатывает транзакцию и возвращает старый набор
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("PutItems: company=%s, coworking=%s, items=%d",
		req.CompanyID, req.CoworkingID, len(req.Items))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("PutItems: validation failed: %v", err)
		return nil, err
	}

	var placed []PlacedItem

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		coworking, err := uc.placeRepo.GetCoworking(txCtx, req.CompanyID, req.BuildingID, req.CoworkingID)
		if err != nil {
			if errors.Is(err, placeRepo.ErrCoworkingNotFound) {
				uc.logger.Warn("PutItems: coworking id=%s not found", req.CoworkingID)
				return ErrCoworkingNotFound
			}
			uc.logger.Error("PutItems: failed to get coworking: %v", err)
			return fmt.Errorf("%w: failed to get coworking: %v", ErrInternal, err)
		}

		if err := uc.itemRepo.DeleteItemsByCoworking(txCtx, req.CoworkingID); err != nil {
			uc.logger.Error("PutItems: failed to delete existing items: %v", err)
			return fmt.Errorf("%w: failed to delete existing items: %v", ErrInternal, err)
		}

		// Типы предметов часто повторяются в наборе, кешируем выборку
		typeCache := make(map[uuid.UUID]*domain.ItemType)
		allCells := make([]domain.Point, 0, len(req.Items))
		placed = make([]PlacedItem, 0, len(req.Items))

		for i, input := range req.Items {
			itemType, ok := typeCache[input.ItemTypeID]
			if !ok {
				itemType, err = uc.itemRepo.GetItemType(txCtx, req.CompanyID, input.ItemTypeID)
				if err != nil {
					if errors.Is(err, itemRepo.ErrItemTypeNotFound) {
						uc.logger.Warn("PutItems: item type id=%s not found (item #%d)", input.ItemTypeID, i)
						return ErrItemTypeNotFound
					}
					uc.logger.Error("PutItems: failed to get item type: %v", err)
					return fmt.Errorf("%w: failed to get item type: %v", ErrInternal, err)
				}
				typeCache[input.ItemTypeID] = itemType
			}

			// Границы проверяются на каждом предмете, первый же выход
			// за сетку прерывает транзакцию
			cells := domain.AbsoluteCells(input.BasePoint, itemType.Offsets)
			if err := domain.ValidateBounds(cells, coworking.Width, coworking.Height); err != nil {
				uc.logger.Warn("PutItems: item #%d out of bounds in coworking %dx%d", i, coworking.Width, coworking.Height)
				return ErrOutOfBounds
			}
			allCells = append(allCells, cells...)

			created, err := uc.itemRepo.CreateItem(txCtx, &domain.CoworkingItem{
				ItemID:      input.ItemTypeID,
				Name:        input.Name,
				Description: input.Description,
				CoworkingID: req.CoworkingID,
				BasePoint:   input.BasePoint,
			})
			if err != nil {
				uc.logger.Error("PutItems: failed to create item #%d: %v", i, err)
				return fmt.Errorf("%w: failed to create item: %v", ErrInternal, err)
			}

			placed = append(placed, PlacedItem{
				ID:          created.ID,
				ItemTypeID:  created.ItemID,
				Name:        created.Name,
				Description: created.Description,
				BasePoint:   created.BasePoint,
			})
		}

		// Одна общая проверка пересечений на весь набор
		if err := domain.ValidateNoOverlap(allCells); err != nil {
			uc.logger.Warn("PutItems: items overlap within the new set")
			return ErrItemsOverlap
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("PutItems: successfully replaced items, coworking=%s, count=%d", req.CoworkingID, len(placed))

	return &Response{
		CoworkingID: req.CoworkingID,
		Items:       placed,
	}, nil
}

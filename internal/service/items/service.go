package items

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	itemRepo "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/item"
	"github.com/m04kA/SMC-CoworkingService/internal/integrations/objstore"
	"github.com/m04kA/SMC-CoworkingService/internal/service/items/models"
)

// Service сервис для работы с типами предметов
type Service struct {
	itemRepo ItemRepository
	store    ObjectStore
	logger   Logger
}

// NewService создает новый экземпляр сервиса типов предметов
func NewService(itemRepo ItemRepository, store ObjectStore, logger Logger) *Service {
	return &Service{
		itemRepo: itemRepo,
		store:    store,
		logger:   logger,
	}
}

// CreateItemType создает тип предмета компании
// ID генерируется заранее: он входит в ключ иконки в объектном хранилище.
// Иконка грузится до записи в БД, осиротевший объект при сбое вставки
// перезапишется при следующей попытке
func (s *Service) CreateItemType(ctx context.Context, req *models.CreateItemTypeRequest) (*models.ItemTypeResponse, error) {
	s.logger.Info("CreateItemType: company=%s, name=%q, bookable=%t", req.CompanyID, req.Name, req.Bookable)

	if err := validateCreateItemType(req); err != nil {
		s.logger.Warn("CreateItemType: validation failed: %v", err)
		return nil, err
	}

	id := uuid.New()

	color := req.Color
	if color == "" {
		color = domain.DefaultItemColor
	}

	var icon *string
	if req.Icon != nil {
		key := iconKey(req.CompanyID, id)
		if err := s.store.Put(ctx, key, domain.ContentTypeSVG, req.Icon); err != nil {
			s.logger.Error("CreateItemType: failed to upload icon: %v", err)
			return nil, fmt.Errorf("%w: CreateItemType - failed to upload icon: %v", ErrInternal, err)
		}
		icon = &key
	}

	itemType, err := s.itemRepo.CreateItemType(ctx, &domain.ItemType{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Color:       color,
		Icon:        icon,
		Offsets:     req.Offsets,
		Bookable:    req.Bookable,
		CompanyID:   req.CompanyID,
	})
	if err != nil {
		s.logger.Error("CreateItemType: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateItemType - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateItemType: successfully created item type id=%s", itemType.ID)
	return models.FromDomainItemType(itemType), nil
}

// ListItemTypes возвращает типы предметов компании
func (s *Service) ListItemTypes(ctx context.Context, companyID uuid.UUID) ([]*models.ItemTypeResponse, error) {
	s.logger.Info("ListItemTypes: company=%s", companyID)

	itemTypes, err := s.itemRepo.ListItemTypes(ctx, companyID)
	if err != nil {
		s.logger.Error("ListItemTypes: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListItemTypes - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainItemTypeList(itemTypes), nil
}

// GetItemType получает тип предмета по ID в рамках компании
func (s *Service) GetItemType(ctx context.Context, companyID, id uuid.UUID) (*models.ItemTypeResponse, error) {
	s.logger.Info("GetItemType: company=%s, itemType=%s", companyID, id)

	itemType, err := s.itemRepo.GetItemType(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, itemRepo.ErrItemTypeNotFound) {
			s.logger.Warn("GetItemType: item type id=%s not found", id)
			return nil, ErrItemTypeNotFound
		}
		s.logger.Error("GetItemType: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetItemType - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainItemType(itemType), nil
}

// GetIcon скачивает иконку типа предмета из объектного хранилища
func (s *Service) GetIcon(ctx context.Context, companyID, id uuid.UUID) (*models.IconResponse, error) {
	s.logger.Info("GetIcon: company=%s, itemType=%s", companyID, id)

	itemType, err := s.itemRepo.GetItemType(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, itemRepo.ErrItemTypeNotFound) {
			s.logger.Warn("GetIcon: item type id=%s not found", id)
			return nil, ErrItemTypeNotFound
		}
		s.logger.Error("GetIcon: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetIcon - repository error: %v", ErrInternal, err)
	}

	if itemType.Icon == nil {
		return nil, ErrIconNotFound
	}

	body, contentType, err := s.store.Get(ctx, *itemType.Icon)
	if err != nil {
		if errors.Is(err, objstore.ErrObjectNotFound) {
			s.logger.Warn("GetIcon: icon object missing for item type id=%s", id)
			return nil, ErrIconNotFound
		}
		s.logger.Error("GetIcon: object store error: %v", err)
		return nil, fmt.Errorf("%w: GetIcon - object store error: %v", ErrInternal, err)
	}

	if contentType == "" {
		contentType = domain.ContentTypeSVG
	}

	return &models.IconResponse{Body: body, ContentType: contentType}, nil
}

// DeleteItemType удаляет тип предмета и его иконку
// Размещенные предметы этого типа удаляются каскадом в БД
func (s *Service) DeleteItemType(ctx context.Context, companyID, id uuid.UUID) error {
	s.logger.Info("DeleteItemType: company=%s, itemType=%s", companyID, id)

	itemType, err := s.itemRepo.GetItemType(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, itemRepo.ErrItemTypeNotFound) {
			s.logger.Warn("DeleteItemType: item type id=%s not found", id)
			return ErrItemTypeNotFound
		}
		s.logger.Error("DeleteItemType: repository error: %v", err)
		return fmt.Errorf("%w: DeleteItemType - repository error: %v", ErrInternal, err)
	}

	if err := s.itemRepo.DeleteItemType(ctx, companyID, id); err != nil {
		if errors.Is(err, itemRepo.ErrItemTypeNotFound) {
			return ErrItemTypeNotFound
		}
		s.logger.Error("DeleteItemType: repository error: %v", err)
		return fmt.Errorf("%w: DeleteItemType - repository error: %v", ErrInternal, err)
	}

	// Иконка чистится best effort: запись в БД уже удалена,
	// осиротевший объект не влияет на корректность
	if itemType.Icon != nil {
		if err := s.store.Delete(ctx, *itemType.Icon); err != nil {
			s.logger.Warn("DeleteItemType: failed to delete icon %s: %v", *itemType.Icon, err)
		}
	}

	s.logger.Info("DeleteItemType: successfully deleted item type id=%s", id)
	return nil
}

// validateCreateItemType валидирует запрос на создание типа предмета
func validateCreateItemType(req *models.CreateItemTypeRequest) error {
	if req.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(req.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}
	if req.Description != nil && len(*req.Description) > domain.MaxDescriptionLength {
		return fmt.Errorf("%w: description is too long", ErrInvalidInput)
	}
	if len(req.Offsets) == 0 {
		return fmt.Errorf("%w: offsets must not be empty", ErrInvalidInput)
	}
	if err := domain.ValidateNoOverlap([]domain.Point(req.Offsets)); err != nil {
		return fmt.Errorf("%w: offsets contain duplicates", ErrInvalidInput)
	}

	return nil
}

// iconKey ключ иконки в объектном хранилище
func iconKey(companyID, itemTypeID uuid.UUID) string {
	return fmt.Sprintf("icons/%s/%s.svg", companyID, itemTypeID)
}

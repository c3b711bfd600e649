package places

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	itemRepo "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/item"
	placeRepo "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/place"
	"github.com/m04kA/SMC-CoworkingService/internal/service/places/models"
)

// Service сервис для работы со зданиями, коворкингами и их предметами
type Service struct {
	placeRepo PlaceRepository
	itemRepo  ItemRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса зданий и коворкингов
func NewService(placeRepo PlaceRepository, itemRepo ItemRepository, logger Logger) *Service {
	return &Service{
		placeRepo: placeRepo,
		itemRepo:  itemRepo,
		logger:    logger,
	}
}

// CreateBuilding создает здание компании
func (s *Service) CreateBuilding(ctx context.Context, req *models.CreateBuildingRequest) (*models.BuildingResponse, error) {
	s.logger.Info("CreateBuilding: company=%s, address=%q", req.CompanyID, req.Address)

	if req.Address == "" {
		return nil, fmt.Errorf("%w: address is required", ErrInvalidInput)
	}
	if len(req.Address) > domain.MaxAddressLength {
		return nil, fmt.Errorf("%w: address is too long", ErrInvalidInput)
	}

	building, err := s.placeRepo.CreateBuilding(ctx, &domain.Building{
		Address:   req.Address,
		CompanyID: req.CompanyID,
	})
	if err != nil {
		s.logger.Error("CreateBuilding: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateBuilding - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateBuilding: successfully created building id=%s", building.ID)
	return models.FromDomainBuilding(building), nil
}

// ListBuildings возвращает здания компании
func (s *Service) ListBuildings(ctx context.Context, companyID uuid.UUID) ([]*models.BuildingResponse, error) {
	s.logger.Info("ListBuildings: company=%s", companyID)

	buildings, err := s.placeRepo.ListBuildings(ctx, companyID)
	if err != nil {
		s.logger.Error("ListBuildings: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListBuildings - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBuildingList(buildings), nil
}

// GetBuilding получает здание по ID в рамках компании
func (s *Service) GetBuilding(ctx context.Context, companyID, id uuid.UUID) (*models.BuildingResponse, error) {
	s.logger.Info("GetBuilding: company=%s, building=%s", companyID, id)

	building, err := s.placeRepo.GetBuilding(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, placeRepo.ErrBuildingNotFound) {
			s.logger.Warn("GetBuilding: building id=%s not found", id)
			return nil, ErrBuildingNotFound
		}
		s.logger.Error("GetBuilding: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetBuilding - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBuilding(building), nil
}

// CreateCoworking создает коворкинг в здании компании
func (s *Service) CreateCoworking(ctx context.Context, req *models.CreateCoworkingRequest) (*models.CoworkingResponse, error) {
	s.logger.Info("CreateCoworking: company=%s, building=%s, size=%dx%d",
		req.CompanyID, req.BuildingID, req.Width, req.Height)

	if req.Address == "" {
		return nil, fmt.Errorf("%w: address is required", ErrInvalidInput)
	}
	if len(req.Address) > domain.MaxAddressLength {
		return nil, fmt.Errorf("%w: address is too long", ErrInvalidInput)
	}
	if req.Width <= 0 || req.Height <= 0 {
		return nil, fmt.Errorf("%w: width and height must be positive", ErrInvalidInput)
	}

	// Здание проверяется в рамках компании до вставки: чужое здание
	// неотличимо от несуществующего
	if _, err := s.placeRepo.GetBuilding(ctx, req.CompanyID, req.BuildingID); err != nil {
		if errors.Is(err, placeRepo.ErrBuildingNotFound) {
			s.logger.Warn("CreateCoworking: building id=%s not found", req.BuildingID)
			return nil, ErrBuildingNotFound
		}
		s.logger.Error("CreateCoworking: failed to get building: %v", err)
		return nil, fmt.Errorf("%w: CreateCoworking - failed to get building: %v", ErrInternal, err)
	}

	coworking, err := s.placeRepo.CreateCoworking(ctx, &domain.CoworkingSpace{
		Address:    req.Address,
		Width:      req.Width,
		Height:     req.Height,
		BuildingID: req.BuildingID,
		CompanyID:  req.CompanyID,
	})
	if err != nil {
		if errors.Is(err, placeRepo.ErrBuildingNotFound) {
			return nil, ErrBuildingNotFound
		}
		if errors.Is(err, placeRepo.ErrInvalidDimensions) {
			return nil, fmt.Errorf("%w: invalid dimensions", ErrInvalidInput)
		}
		s.logger.Error("CreateCoworking: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateCoworking - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateCoworking: successfully created coworking id=%s", coworking.ID)
	return models.FromDomainCoworking(coworking), nil
}

// ListCoworkings возвращает коворкинги здания в рамках компании
func (s *Service) ListCoworkings(ctx context.Context, companyID, buildingID uuid.UUID) ([]*models.CoworkingResponse, error) {
	s.logger.Info("ListCoworkings: company=%s, building=%s", companyID, buildingID)

	if _, err := s.placeRepo.GetBuilding(ctx, companyID, buildingID); err != nil {
		if errors.Is(err, placeRepo.ErrBuildingNotFound) {
			s.logger.Warn("ListCoworkings: building id=%s not found", buildingID)
			return nil, ErrBuildingNotFound
		}
		s.logger.Error("ListCoworkings: failed to get building: %v", err)
		return nil, fmt.Errorf("%w: ListCoworkings - failed to get building: %v", ErrInternal, err)
	}

	coworkings, err := s.placeRepo.ListCoworkingsByBuilding(ctx, companyID, buildingID)
	if err != nil {
		s.logger.Error("ListCoworkings: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListCoworkings - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCoworkingList(coworkings), nil
}

// GetCoworking получает коворкинг по ID в рамках компании и здания
func (s *Service) GetCoworking(ctx context.Context, companyID, buildingID, id uuid.UUID) (*models.CoworkingResponse, error) {
	s.logger.Info("GetCoworking: company=%s, building=%s, coworking=%s", companyID, buildingID, id)

	coworking, err := s.placeRepo.GetCoworking(ctx, companyID, buildingID, id)
	if err != nil {
		if errors.Is(err, placeRepo.ErrCoworkingNotFound) {
			s.logger.Warn("GetCoworking: coworking id=%s not found", id)
			return nil, ErrCoworkingNotFound
		}
		s.logger.Error("GetCoworking: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetCoworking - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCoworking(coworking), nil
}

// UpdateCoworkingAddress обновляет адрес коворкинга
// Размеры сетки меняются отдельным use case с геометрическими проверками
func (s *Service) UpdateCoworkingAddress(ctx context.Context, companyID, buildingID, id uuid.UUID, address string) (*models.CoworkingResponse, error) {
	s.logger.Info("UpdateCoworkingAddress: company=%s, coworking=%s", companyID, id)

	if address == "" {
		return nil, fmt.Errorf("%w: address is required", ErrInvalidInput)
	}
	if len(address) > domain.MaxAddressLength {
		return nil, fmt.Errorf("%w: address is too long", ErrInvalidInput)
	}

	coworking, err := s.placeRepo.UpdateCoworkingAddress(ctx, companyID, buildingID, id, address)
	if err != nil {
		if errors.Is(err, placeRepo.ErrCoworkingNotFound) {
			s.logger.Warn("UpdateCoworkingAddress: coworking id=%s not found", id)
			return nil, ErrCoworkingNotFound
		}
		s.logger.Error("UpdateCoworkingAddress: repository error: %v", err)
		return nil, fmt.Errorf("%w: UpdateCoworkingAddress - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateCoworkingAddress: successfully updated coworking id=%s", id)
	return models.FromDomainCoworking(coworking), nil
}

// DeleteCoworking удаляет коворкинг вместе с предметами (каскад в БД)
func (s *Service) DeleteCoworking(ctx context.Context, companyID, buildingID, id uuid.UUID) error {
	s.logger.Info("DeleteCoworking: company=%s, coworking=%s", companyID, id)

	if err := s.placeRepo.DeleteCoworking(ctx, companyID, buildingID, id); err != nil {
		if errors.Is(err, placeRepo.ErrCoworkingNotFound) {
			s.logger.Warn("DeleteCoworking: coworking id=%s not found", id)
			return ErrCoworkingNotFound
		}
		s.logger.Error("DeleteCoworking: repository error: %v", err)
		return fmt.Errorf("%w: DeleteCoworking - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteCoworking: successfully deleted coworking id=%s", id)
	return nil
}

// ListItems возвращает предметы коворкинга
func (s *Service) ListItems(ctx context.Context, companyID, buildingID, coworkingID uuid.UUID) ([]*models.ItemResponse, error) {
	s.logger.Info("ListItems: company=%s, coworking=%s", companyID, coworkingID)

	if _, err := s.placeRepo.GetCoworking(ctx, companyID, buildingID, coworkingID); err != nil {
		if errors.Is(err, placeRepo.ErrCoworkingNotFound) {
			s.logger.Warn("ListItems: coworking id=%s not found", coworkingID)
			return nil, ErrCoworkingNotFound
		}
		s.logger.Error("ListItems: failed to get coworking: %v", err)
		return nil, fmt.Errorf("%w: ListItems - failed to get coworking: %v", ErrInternal, err)
	}

	items, err := s.itemRepo.ListItems(ctx, coworkingID)
	if err != nil {
		s.logger.Error("ListItems: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListItems - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainItemList(items), nil
}

// DeleteItem удаляет предмет из коворкинга
func (s *Service) DeleteItem(ctx context.Context, companyID, buildingID, coworkingID, id uuid.UUID) error {
	s.logger.Info("DeleteItem: company=%s, coworking=%s, item=%s", companyID, coworkingID, id)

	if _, err := s.placeRepo.GetCoworking(ctx, companyID, buildingID, coworkingID); err != nil {
		if errors.Is(err, placeRepo.ErrCoworkingNotFound) {
			s.logger.Warn("DeleteItem: coworking id=%s not found", coworkingID)
			return ErrCoworkingNotFound
		}
		s.logger.Error("DeleteItem: failed to get coworking: %v", err)
		return fmt.Errorf("%w: DeleteItem - failed to get coworking: %v", ErrInternal, err)
	}

	if err := s.itemRepo.DeleteItem(ctx, coworkingID, id); err != nil {
		if errors.Is(err, itemRepo.ErrItemNotFound) {
			s.logger.Warn("DeleteItem: item id=%s not found", id)
			return ErrItemNotFound
		}
		s.logger.Error("DeleteItem: repository error: %v", err)
		return fmt.Errorf("%w: DeleteItem - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteItem: successfully deleted item id=%s", id)
	return nil
}

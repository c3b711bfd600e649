package companies

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CoworkingService/internal/auth"
	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	companyRepo "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/company"
	userRepo "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/user"
	"github.com/m04kA/SMC-CoworkingService/internal/service/companies/models"
)

// Service сервис для работы с компаниями
type Service struct {
	companyRepo CompanyRepository
	userRepo    UserRepository
	tokens      TokenIssuer
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса компаний
func NewService(
	companyRepo CompanyRepository,
	userRepo UserRepository,
	tokens TokenIssuer,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		companyRepo: companyRepo,
		userRepo:    userRepo,
		tokens:      tokens,
		txManager:   txManager,
		logger:      logger,
	}
}

// Register регистрирует компанию и её первого администратора
// Компания и администратор создаются в одной транзакции: компания
// без администратора неуправляема и существовать не должна
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.RegisterResponse, error) {
	s.logger.Info("Register: registering company name=%q, domain=%q", req.Name, req.Domain)

	if err := validateRegister(req); err != nil {
		s.logger.Warn("Register: validation failed: %v", err)
		return nil, err
	}

	hashed, err := auth.HashPassword(req.AdminPassword)
	if err != nil {
		s.logger.Error("Register: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: Register - failed to hash password: %v", ErrInternal, err)
	}

	var (
		company *domain.Company
		admin   *domain.User
	)

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		company, err = s.companyRepo.Create(txCtx, &domain.Company{
			Name:   req.Name,
			Domain: strings.ToLower(req.Domain),
			Avatar: req.Avatar,
		})
		if err != nil {
			if errors.Is(err, companyRepo.ErrDomainTaken) {
				s.logger.Warn("Register: domain %q already taken", req.Domain)
				return ErrDomainTaken
			}
			s.logger.Error("Register: failed to create company: %v", err)
			return fmt.Errorf("%w: Register - failed to create company: %v", ErrInternal, err)
		}

		admin, err = s.userRepo.Create(txCtx, &domain.User{
			Name:      req.Name,
			Surname:   "Admin",
			Email:     req.AdminEmail,
			Password:  hashed,
			Role:      domain.RoleAdmin,
			CompanyID: company.ID,
		})
		if err != nil {
			if errors.Is(err, userRepo.ErrEmailTaken) {
				s.logger.Warn("Register: admin email already taken in company %s", company.ID)
				return fmt.Errorf("%w: admin email already taken", ErrInvalidInput)
			}
			s.logger.Error("Register: failed to create admin user: %v", err)
			return fmt.Errorf("%w: Register - failed to create admin user: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.CreateToken(admin)
	if err != nil {
		s.logger.Error("Register: failed to issue token for admin id=%s: %v", admin.ID, err)
		return nil, fmt.Errorf("%w: Register - failed to issue token: %v", ErrInternal, err)
	}

	s.logger.Info("Register: successfully registered company id=%s with admin id=%s", company.ID, admin.ID)

	return &models.RegisterResponse{
		Company: *models.FromDomainCompany(company),
		Token:   token,
	}, nil
}

// GetByID получает компанию по ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.CompanyResponse, error) {
	s.logger.Info("GetByID: fetching company id=%s", id)

	company, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, companyRepo.ErrCompanyNotFound) {
			s.logger.Warn("GetByID: company id=%s not found", id)
			return nil, ErrCompanyNotFound
		}
		s.logger.Error("GetByID: repository error for company id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCompany(company), nil
}

// validateRegister валидирует запрос на регистрацию компании
func validateRegister(req *models.RegisterRequest) error {
	if req.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(req.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}
	if req.Domain == "" {
		return fmt.Errorf("%w: domain is required", ErrInvalidInput)
	}
	if len(req.Domain) > domain.MaxDomainLength {
		return fmt.Errorf("%w: domain is too long", ErrInvalidInput)
	}
	if req.AdminEmail == "" {
		return fmt.Errorf("%w: admin email is required", ErrInvalidInput)
	}
	if req.AdminPassword == "" {
		return fmt.Errorf("%w: admin password is required", ErrInvalidInput)
	}

	return nil
}

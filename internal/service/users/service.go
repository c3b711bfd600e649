package users

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
	"github.com/m04kA/SMC-CoworkingService/internal/service/users/models"
)

// Service сервис для работы с пользователями
type Service struct {
	userRepo    UserRepository
	companyRepo CompanyRepository
	tokens      TokenIssuer
	logger      Logger
}

// NewService создает новый экземпляр сервиса пользователей
func NewService(
	userRepo UserRepository,
	companyRepo CompanyRepository,
	tokens TokenIssuer,
	logger Logger,
) *Service {
	return &Service{
		userRepo:    userRepo,
		companyRepo: companyRepo,
		tokens:      tokens,
		logger:      logger,
	}
}

// Register регистрирует пользователя в компании по её домену
// Новый пользователь всегда гость: права появляются после верификации
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	s.logger.Info("Register: registering user email=%q in company domain=%q", req.Email, req.CompanyDomain)

	if err := validateRegister(req); err != nil {
		s.logger.Warn("Register: validation failed: %v", err)
		return nil, err
	}

	company, err := s.companyRepo.GetByDomain(ctx, strings.ToLower(req.CompanyDomain))
	if err != nil {
		if errors.Is(err, companyRepo.ErrCompanyNotFound) {
			s.logger.Warn("Register: company domain %q not found", req.CompanyDomain)
			return nil, ErrCompanyNotFound
		}
		s.logger.Error("Register: failed to get company by domain: %v", err)
		return nil, fmt.Errorf("%w: Register - failed to get company: %v", ErrInternal, err)
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		s.logger.Error("Register: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: Register - failed to hash password: %v", ErrInternal, err)
	}

	user, err := s.userRepo.Create(ctx, &domain.User{
		Name:      req.Name,
		Surname:   req.Surname,
		Email:     req.Email,
		Password:  hashed,
		Role:      domain.RoleGuest,
		CompanyID: company.ID,
	})
	if err != nil {
		if errors.Is(err, userRepo.ErrEmailTaken) {
			s.logger.Warn("Register: email %q already taken in company %s", req.Email, company.ID)
			return nil, ErrEmailTaken
		}
		s.logger.Error("Register: failed to create user: %v", err)
		return nil, fmt.Errorf("%w: Register - failed to create user: %v", ErrInternal, err)
	}

	token, err := s.tokens.CreateToken(user)
	if err != nil {
		s.logger.Error("Register: failed to issue token for user id=%s: %v", user.ID, err)
		return nil, fmt.Errorf("%w: Register - failed to issue token: %v", ErrInternal, err)
	}

	s.logger.Info("Register: successfully registered user id=%s in company %s", user.ID, company.ID)

	return &models.AuthResponse{
		User:  *models.FromDomainUser(user),
		Token: token,
	}, nil
}

// Login аутентифицирует пользователя по домену компании, email и паролю
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	s.logger.Info("Login: user email=%q, company domain=%q", req.Email, req.CompanyDomain)

	if req.CompanyDomain == "" || req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: companyDomain, email and password are required", ErrInvalidInput)
	}

	company, err := s.companyRepo.GetByDomain(ctx, strings.ToLower(req.CompanyDomain))
	if err != nil {
		if errors.Is(err, companyRepo.ErrCompanyNotFound) {
			s.logger.Warn("Login: company domain %q not found", req.CompanyDomain)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: failed to get company by domain: %v", err)
		return nil, fmt.Errorf("%w: Login - failed to get company: %v", ErrInternal, err)
	}

	user, err := s.userRepo.GetByEmail(ctx, company.ID, req.Email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Login: user email=%q not found in company %s", req.Email, company.ID)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: failed to get user by email: %v", err)
		return nil, fmt.Errorf("%w: Login - failed to get user: %v", ErrInternal, err)
	}

	ok, err := auth.VerifyPassword(req.Password, user.Password)
	if err != nil {
		s.logger.Error("Login: failed to verify password for user id=%s: %v", user.ID, err)
		return nil, fmt.Errorf("%w: Login - failed to verify password: %v", ErrInternal, err)
	}
	if !ok {
		s.logger.Warn("Login: wrong password for user id=%s", user.ID)
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.CreateToken(user)
	if err != nil {
		s.logger.Error("Login: failed to issue token for user id=%s: %v", user.ID, err)
		return nil, fmt.Errorf("%w: Login - failed to issue token: %v", ErrInternal, err)
	}

	s.logger.Info("Login: successful login for user id=%s", user.ID)

	return &models.AuthResponse{
		User:  *models.FromDomainUser(user),
		Token: token,
	}, nil
}

// GetProfile получает профиль пользователя
// Пользователь видит только собственный профиль: ID берется из токена
func (s *Service) GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserResponse, error) {
	s.logger.Info("GetProfile: fetching profile for user id=%s", userID)

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("GetProfile: user id=%s not found", userID)
			return nil, ErrUserNotFound
		}
		s.logger.Error("GetProfile: repository error for user id=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: GetProfile - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainUser(user), nil
}

// UpdateProfile частично обновляет профиль пользователя
// Новый пароль хешируется до записи
func (s *Service) UpdateProfile(ctx context.Context, userID uuid.UUID, req *models.UpdateProfileRequest) (*models.UserResponse, error) {
	s.logger.Info("UpdateProfile: updating profile for user id=%s", userID)

	if err := validateUpdateProfile(req); err != nil {
		s.logger.Warn("UpdateProfile: validation failed: %v", err)
		return nil, err
	}

	params := userRepo.UpdateProfileParams{
		Name:    req.Name,
		Surname: req.Surname,
		Avatar:  req.Avatar,
	}

	if req.Password != nil {
		hashed, err := auth.HashPassword(*req.Password)
		if err != nil {
			s.logger.Error("UpdateProfile: failed to hash password: %v", err)
			return nil, fmt.Errorf("%w: UpdateProfile - failed to hash password: %v", ErrInternal, err)
		}
		params.Password = &hashed
	}

	user, err := s.userRepo.UpdateProfile(ctx, userID, params)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("UpdateProfile: user id=%s not found", userID)
			return nil, ErrUserNotFound
		}
		s.logger.Error("UpdateProfile: repository error for user id=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: UpdateProfile - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateProfile: successfully updated profile for user id=%s", userID)
	return models.FromDomainUser(user), nil
}

// validateRegister валидирует запрос на регистрацию пользователя
func validateRegister(req *models.RegisterRequest) error {
	if req.CompanyDomain == "" {
		return fmt.Errorf("%w: companyDomain is required", ErrInvalidInput)
	}
	if req.Name == "" || req.Surname == "" {
		return fmt.Errorf("%w: name and surname are required", ErrInvalidInput)
	}
	if len(req.Name) > domain.MaxNameLength || len(req.Surname) > domain.MaxNameLength {
		return fmt.Errorf("%w: name or surname is too long", ErrInvalidInput)
	}
	if req.Email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if req.Password == "" {
		return fmt.Errorf("%w: password is required", ErrInvalidInput)
	}

	return nil
}

// validateUpdateProfile валидирует частичное обновление профиля
func validateUpdateProfile(req *models.UpdateProfileRequest) error {
	if req.Name == nil && req.Surname == nil && req.Password == nil && req.Avatar == nil {
		return fmt.Errorf("%w: at least one field is required", ErrInvalidInput)
	}
	if req.Name != nil && (*req.Name == "" || len(*req.Name) > domain.MaxNameLength) {
		return fmt.Errorf("%w: invalid name", ErrInvalidInput)
	}
	if req.Surname != nil && (*req.Surname == "" || len(*req.Surname) > domain.MaxNameLength) {
		return fmt.Errorf("%w: invalid surname", ErrInvalidInput)
	}
	if req.Password != nil && *req.Password == "" {
		return fmt.Errorf("%w: password must not be empty", ErrInvalidInput)
	}

	return nil
}

package verification

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	userRepo "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/user"
	"github.com/m04kA/SMC-CoworkingService/internal/integrations/objstore"
	usersmodels "github.com/m04kA/SMC-CoworkingService/internal/service/users/models"
)

// Service сервис верификации гостей
// Гость прикладывает PDF документ, администратор компании рассматривает
// запрос и либо подтверждает (роль становится verified_guest), либо отклоняет
type Service struct {
	userRepo  UserRepository
	store     ObjectStore
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса верификации
func NewService(
	userRepo UserRepository,
	store ObjectStore,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		userRepo:  userRepo,
		store:     store,
		txManager: txManager,
		logger:    logger,
	}
}

// Request создает запрос на верификацию с приложенным PDF документом
// Документ грузится до записи в БД: при сбое вставки осиротевший объект
// перезапишется следующей попыткой
func (s *Service) Request(ctx context.Context, userID, companyID uuid.UUID, document []byte) error {
	s.logger.Info("Request: verification request from user=%s, company=%s", userID, companyID)

	if len(document) == 0 {
		return fmt.Errorf("%w: document is required", ErrInvalidInput)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Request: user id=%s not found", userID)
			return ErrUserNotFound
		}
		s.logger.Error("Request: failed to get user: %v", err)
		return fmt.Errorf("%w: Request - failed to get user: %v", ErrInternal, err)
	}

	if user.Role != domain.RoleGuest {
		s.logger.Warn("Request: user id=%s has role %s, verification not applicable", userID, user.Role)
		return ErrNotGuest
	}

	if err := s.store.Put(ctx, documentKey(companyID, userID), domain.ContentTypePDF, document); err != nil {
		s.logger.Error("Request: failed to upload document: %v", err)
		return fmt.Errorf("%w: Request - failed to upload document: %v", ErrInternal, err)
	}

	if err := s.userRepo.CreatePending(ctx, userID, companyID); err != nil {
		if errors.Is(err, userRepo.ErrVerificationPending) {
			s.logger.Warn("Request: user id=%s already has a pending request", userID)
			return ErrAlreadyPending
		}
		s.logger.Error("Request: failed to create pending request: %v", err)
		return fmt.Errorf("%w: Request - failed to create pending request: %v", ErrInternal, err)
	}

	s.logger.Info("Request: verification request created for user=%s", userID)
	return nil
}

// ListPending возвращает пользователей компании с необработанными запросами
func (s *Service) ListPending(ctx context.Context, companyID uuid.UUID) ([]*usersmodels.UserResponse, error) {
	s.logger.Info("ListPending: company=%s", companyID)

	users, err := s.userRepo.ListPendingUsers(ctx, companyID)
	if err != nil {
		s.logger.Error("ListPending: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListPending - repository error: %v", ErrInternal, err)
	}

	out := make([]*usersmodels.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, usersmodels.FromDomainUser(u))
	}

	s.logger.Info("ListPending: %d pending requests in company=%s", len(out), companyID)
	return out, nil
}

// GetDocument скачивает документ верификации пользователя
// Доступно администратору компании по необработанному запросу
func (s *Service) GetDocument(ctx context.Context, companyID, userID uuid.UUID) ([]byte, error) {
	s.logger.Info("GetDocument: company=%s, user=%s", companyID, userID)

	if _, err := s.userRepo.GetPending(ctx, companyID, userID); err != nil {
		if errors.Is(err, userRepo.ErrVerificationNotFound) {
			s.logger.Warn("GetDocument: no pending request for user=%s", userID)
			return nil, ErrRequestNotFound
		}
		s.logger.Error("GetDocument: failed to get pending request: %v", err)
		return nil, fmt.Errorf("%w: GetDocument - failed to get pending request: %v", ErrInternal, err)
	}

	body, _, err := s.store.Get(ctx, documentKey(companyID, userID))
	if err != nil {
		if errors.Is(err, objstore.ErrObjectNotFound) {
			s.logger.Warn("GetDocument: document missing for user=%s", userID)
			return nil, ErrDocumentNotFound
		}
		s.logger.Error("GetDocument: object store error: %v", err)
		return nil, fmt.Errorf("%w: GetDocument - object store error: %v", ErrInternal, err)
	}

	return body, nil
}

// Approve подтверждает верификацию: запрос закрывается, роль гостя
// становится verified_guest. Обе записи меняются в одной транзакции
func (s *Service) Approve(ctx context.Context, companyID, userID uuid.UUID) error {
	s.logger.Info("Approve: company=%s, user=%s", companyID, userID)

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.userRepo.DeletePending(txCtx, companyID, userID); err != nil {
			if errors.Is(err, userRepo.ErrVerificationNotFound) {
				s.logger.Warn("Approve: no pending request for user=%s", userID)
				return ErrRequestNotFound
			}
			s.logger.Error("Approve: failed to delete pending request: %v", err)
			return fmt.Errorf("%w: Approve - failed to delete pending request: %v", ErrInternal, err)
		}

		// Смена роли условна: если пользователь уже не гость,
		// транзакция откатывается вместе с удалением запроса
		if err := s.userRepo.UpdateRole(txCtx, userID, domain.RoleGuest, domain.RoleVerifiedGuest); err != nil {
			if errors.Is(err, userRepo.ErrUserNotFound) {
				s.logger.Warn("Approve: user id=%s is not a guest anymore", userID)
				return ErrNotGuest
			}
			s.logger.Error("Approve: failed to update role: %v", err)
			return fmt.Errorf("%w: Approve - failed to update role: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	// Документ больше не нужен, чистится best effort
	if err := s.store.Delete(ctx, documentKey(companyID, userID)); err != nil {
		s.logger.Warn("Approve: failed to delete document for user=%s: %v", userID, err)
	}

	s.logger.Info("Approve: user=%s verified in company=%s", userID, companyID)
	return nil
}

// Decline отклоняет запрос на верификацию; роль пользователя не меняется
func (s *Service) Decline(ctx context.Context, companyID, userID uuid.UUID) error {
	s.logger.Info("Decline: company=%s, user=%s", companyID, userID)

	if err := s.userRepo.DeletePending(ctx, companyID, userID); err != nil {
		if errors.Is(err, userRepo.ErrVerificationNotFound) {
			s.logger.Warn("Decline: no pending request for user=%s", userID)
			return ErrRequestNotFound
		}
		s.logger.Error("Decline: failed to delete pending request: %v", err)
		return fmt.Errorf("%w: Decline - failed to delete pending request: %v", ErrInternal, err)
	}

	if err := s.store.Delete(ctx, documentKey(companyID, userID)); err != nil {
		s.logger.Warn("Decline: failed to delete document for user=%s: %v", userID, err)
	}

	s.logger.Info("Decline: request declined for user=%s in company=%s", userID, companyID)
	return nil
}

// documentKey ключ документа верификации в объектном хранилище
func documentKey(companyID, userID uuid.UUID) string {
	return fmt.Sprintf("verifications/%s/%s.pdf", companyID, userID)
}

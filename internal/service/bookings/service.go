package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	bookingRepo "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/booking"
	placeRepo "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/place"
	"github.com/m04kA/SMC-CoworkingService/internal/service/bookings/models"
)

// Service сервис для чтения и удаления бронирований
// Создание и изменение интервалов живут в отдельных use case
type Service struct {
	bookingRepo  BookingRepository
	placeRepo    PlaceRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, placeRepo PlaceRepository, logger Logger) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		placeRepo:    placeRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
// Владение проверяется после выборки: чужое бронирование в той же компании
// отдает доступ запрещен, а не не найдено
func (s *Service) GetByID(ctx context.Context, claims *Identity, id uuid.UUID) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s for user=%s", id, claims.UserID)

	booking, err := s.bookingRepo.GetByID(ctx, claims.CompanyID, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !claims.Role.IsAdmin() && !booking.IsOwnedBy(claims.UserID, claims.CompanyID) {
		s.logger.Warn("GetByID: access denied for user=%s to booking id=%s", claims.UserID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking), nil
}

// ListMine возвращает активные бронирования пользователя
func (s *Service) ListMine(ctx context.Context, claims *Identity) ([]*models.BookingResponse, error) {
	s.logger.Info("ListMine: fetching bookings for user=%s", claims.UserID)

	bookings, err := s.bookingRepo.ListByUser(ctx, claims.CompanyID, claims.UserID, s.timeProvider.Now())
	if err != nil {
		s.logger.Error("ListMine: repository error for user=%s: %v", claims.UserID, err)
		return nil, fmt.Errorf("%w: ListMine - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListMine: fetched %d bookings for user=%s", len(bookings), claims.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// ListByCoworking возвращает активные бронирования коворкинга
// Доступно администратору компании
func (s *Service) ListByCoworking(ctx context.Context, claims *Identity, buildingID, coworkingID uuid.UUID) ([]*models.BookingResponse, error) {
	s.logger.Info("ListByCoworking: company=%s, coworking=%s", claims.CompanyID, coworkingID)

	if _, err := s.placeRepo.GetCoworking(ctx, claims.CompanyID, buildingID, coworkingID); err != nil {
		if errors.Is(err, placeRepo.ErrCoworkingNotFound) {
			s.logger.Warn("ListByCoworking: coworking id=%s not found", coworkingID)
			return nil, ErrCoworkingNotFound
		}
		s.logger.Error("ListByCoworking: failed to get coworking: %v", err)
		return nil, fmt.Errorf("%w: ListByCoworking - failed to get coworking: %v", ErrInternal, err)
	}

	bookings, err := s.bookingRepo.ListByCoworking(ctx, claims.CompanyID, coworkingID, s.timeProvider.Now())
	if err != nil {
		s.logger.Error("ListByCoworking: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListByCoworking - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByCoworking: fetched %d bookings for coworking=%s", len(bookings), coworkingID)
	return models.FromDomainBookingList(bookings), nil
}

// Delete удаляет бронирование
// Пользователь удаляет только своё; администратор - любое в компании
func (s *Service) Delete(ctx context.Context, claims *Identity, id uuid.UUID) error {
	s.logger.Info("Delete: deleting booking id=%s by user=%s", id, claims.UserID)

	booking, err := s.bookingRepo.GetByID(ctx, claims.CompanyID, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%s not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if !claims.Role.IsAdmin() && !booking.IsOwnedBy(claims.UserID, claims.CompanyID) {
		s.logger.Warn("Delete: access denied for user=%s to booking id=%s", claims.UserID, id)
		return ErrAccessDenied
	}

	if err := s.bookingRepo.Delete(ctx, claims.CompanyID, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted booking id=%s", id)
	return nil
}

package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
)

// BookingResponse представление бронирования
type BookingResponse struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	CoworkingID uuid.UUID
	ItemID      uuid.UUID
	TimeStart   time.Time
	TimeEnd     time.Time
}

// FromDomainBooking конвертирует доменную модель в response
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:          b.ID,
		UserID:      b.UserID,
		CoworkingID: b.CoworkingSpaceID,
		ItemID:      b.CoworkingItemID,
		TimeStart:   b.TimeStart,
		TimeEnd:     b.TimeEnd,
	}
}

// FromDomainBookingList конвертирует список бронирований
func FromDomainBookingList(bookings []*domain.Booking) []*BookingResponse {
	out := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, FromDomainBooking(b))
	}
	return out
}

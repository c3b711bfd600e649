package bookings

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CoworkingService/internal/auth"
	bookingsService "github.com/m04kA/SMC-CoworkingService/internal/service/bookings"
	bookingsmodels "github.com/m04kA/SMC-CoworkingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-CoworkingService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-CoworkingService/internal/usecase/update_booking"
)

// CreateBookingRequest HTTP request model
// Времена в формате RFC3339
type CreateBookingRequest struct {
	CoworkingID uuid.UUID `json:"coworkingId"`
	ItemID      uuid.UUID `json:"itemId"`
	TimeStart   time.Time `json:"timeStart"`
	TimeEnd     time.Time `json:"timeEnd"`
}

// UpdateBookingRequest HTTP request model
// nil поля не изменяются
type UpdateBookingRequest struct {
	TimeStart *time.Time `json:"timeStart,omitempty"`
	TimeEnd   *time.Time `json:"timeEnd,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	CoworkingID uuid.UUID `json:"coworkingId"`
	ItemID      uuid.UUID `json:"itemId"`
	TimeStart   time.Time `json:"timeStart"`
	TimeEnd     time.Time `json:"timeEnd"`
}

// BookingListResponse HTTP response model
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
}

// identityFromClaims конвертирует claims сессии в личность для сервиса
func identityFromClaims(claims *auth.Claims) *bookingsService.Identity {
	return &bookingsService.Identity{
		UserID:    claims.UserID,
		CompanyID: claims.CompanyID,
		Role:      claims.Role,
	}
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(claims *auth.Claims) *create_booking.Request {
	return &create_booking.Request{
		UserID:      claims.UserID,
		CompanyID:   claims.CompanyID,
		Role:        claims.Role,
		CoworkingID: r.CoworkingID,
		ItemID:      r.ItemID,
		TimeStart:   r.TimeStart,
		TimeEnd:     r.TimeEnd,
	}
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateBookingRequest) ToUseCaseRequest(claims *auth.Claims, bookingID uuid.UUID) *update_booking.Request {
	return &update_booking.Request{
		UserID:    claims.UserID,
		CompanyID: claims.CompanyID,
		Role:      claims.Role,
		BookingID: bookingID,
		TimeStart: r.TimeStart,
		TimeEnd:   r.TimeEnd,
	}
}

// FromServiceBooking конвертирует ответ сервиса в HTTP response
func FromServiceBooking(b *bookingsmodels.BookingResponse) *BookingResponse {
	return &BookingResponse{
		ID:          b.ID,
		UserID:      b.UserID,
		CoworkingID: b.CoworkingID,
		ItemID:      b.ItemID,
		TimeStart:   b.TimeStart,
		TimeEnd:     b.TimeEnd,
	}
}

// FromServiceBookingList конвертирует список бронирований
func FromServiceBookingList(bookings []*bookingsmodels.BookingResponse) *BookingListResponse {
	out := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, FromServiceBooking(b))
	}
	return &BookingListResponse{Bookings: out}
}

// FromCreateResponse конвертирует ответ use case в HTTP response
func FromCreateResponse(resp *create_booking.Response) *BookingResponse {
	return &BookingResponse{
		ID:          resp.ID,
		UserID:      resp.UserID,
		CoworkingID: resp.CoworkingID,
		ItemID:      resp.ItemID,
		TimeStart:   resp.TimeStart,
		TimeEnd:     resp.TimeEnd,
	}
}

// FromUpdateResponse конвертирует ответ use case в HTTP response
func FromUpdateResponse(resp *update_booking.Response) *BookingResponse {
	return &BookingResponse{
		ID:          resp.ID,
		UserID:      resp.UserID,
		CoworkingID: resp.CoworkingID,
		ItemID:      resp.ItemID,
		TimeStart:   resp.TimeStart,
		TimeEnd:     resp.TimeEnd,
	}
}

package qr

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CoworkingService/internal/usecase/verify_qr"
)

// GenerateQrResponse HTTP response model для JSON варианта выдачи токена
type GenerateQrResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// VerifyQrRequest HTTP request model
type VerifyQrRequest struct {
	Token string `json:"token"`
}

// VerifiedBooking публичные данные бронирования для поста охраны
type VerifiedBooking struct {
	ID               uuid.UUID `json:"id"`
	UserEmail        string    `json:"userEmail"`
	BuildingAddress  string    `json:"buildingAddress"`
	CoworkingAddress string    `json:"coworkingAddress"`
	ItemName         string    `json:"itemName"`
	TimeStart        time.Time `json:"timeStart"`
	TimeEnd          time.Time `json:"timeEnd"`
}

// VerifyQrResponse HTTP response model
// Booking заполняется только при вердикте valid
type VerifyQrResponse struct {
	Verdict string           `json:"verdict"`
	Booking *VerifiedBooking `json:"booking,omitempty"`
}

// FromVerifyResponse конвертирует ответ use case в HTTP response
func FromVerifyResponse(resp *verify_qr.Response) *VerifyQrResponse {
	out := &VerifyQrResponse{Verdict: string(resp.Verdict)}
	if resp.Booking != nil {
		out.Booking = &VerifiedBooking{
			ID:               resp.Booking.ID,
			UserEmail:        resp.Booking.UserEmail,
			BuildingAddress:  resp.Booking.BuildingAddress,
			CoworkingAddress: resp.Booking.CoworkingAddress,
			ItemName:         resp.Booking.ItemName,
			TimeStart:        resp.Booking.TimeStart,
			TimeEnd:          resp.Booking.TimeEnd,
		}
	}
	return out
}

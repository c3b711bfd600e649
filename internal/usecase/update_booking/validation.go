package update_booking

import (
	"fmt"

	"github.com/google/uuid"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID == uuid.Nil {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}
	if req.CompanyID == uuid.Nil {
		return fmt.Errorf("%w: companyID is required", ErrInvalidInput)
	}
	if req.BookingID == uuid.Nil {
		return fmt.Errorf("%w: bookingID is required", ErrInvalidInput)
	}
	if req.TimeStart == nil && req.TimeEnd == nil {
		return fmt.Errorf("%w: at least one of timeStart, timeEnd is required", ErrInvalidInput)
	}

	return nil
}

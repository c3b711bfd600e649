package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
)

// validateInterval проверяет интервал бронирования
// Интервал полуоткрытый [start, end): границы упорядочены, начало в будущем,
// длительность кратна шагу сетки
func validateInterval(start, end, now time.Time) error {
	if start.IsZero() || end.IsZero() {
		return fmt.Errorf("%w: timeStart and timeEnd are required", ErrInvalidInput)
	}
	if !start.Before(end) {
		return fmt.Errorf("%w: timeStart must be before timeEnd", ErrInvalidInput)
	}
	if !start.After(now) {
		return fmt.Errorf("%w: booking must start in the future", ErrInvalidInput)
	}
	if end.Sub(start)%domain.BookingStep != 0 {
		return fmt.Errorf("%w: duration must be a multiple of %d minutes",
			ErrInvalidInput, int(domain.BookingStep.Minutes()))
	}

	return nil
}

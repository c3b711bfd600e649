package update_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено в рамках компании
	ErrBookingNotFound = errors.New("update_booking: booking not found")

	// ErrForbidden возвращается при попытке изменить чужое бронирование
	ErrForbidden = errors.New("update_booking: booking belongs to another user")

	// ErrTimeConflict возвращается при пересечении с существующим бронированием
	ErrTimeConflict = errors.New("update_booking: booking time conflict")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking: internal error")
)

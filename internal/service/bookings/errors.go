package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено в рамках компании
	ErrBookingNotFound = errors.New("bookings.service: booking not found")

	// ErrCoworkingNotFound возвращается, когда коворкинг не найден в рамках компании
	ErrCoworkingNotFound = errors.New("bookings.service: coworking not found")

	// ErrAccessDenied возвращается при попытке работать с чужим бронированием
	ErrAccessDenied = errors.New("bookings.service: access denied")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings.service: internal error")
)

package generate_qr

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено в рамках компании
	ErrBookingNotFound = errors.New("generate_qr: booking not found")

	// ErrForbidden возвращается при попытке получить QR чужого бронирования
	ErrForbidden = errors.New("generate_qr: booking belongs to another user")

	// ErrBookingEnded возвращается для уже закончившегося бронирования:
	// токен с exp в прошлом бесполезен
	ErrBookingEnded = errors.New("generate_qr: booking has already ended")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("generate_qr: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("generate_qr: internal error")
)

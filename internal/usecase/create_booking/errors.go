package create_booking

import "errors"

var (
	// ErrItemNotFound возвращается, когда предмет не найден в рамках компании
	// и коворкинга
	ErrItemNotFound = errors.New("create_booking: item not found")

	// ErrItemNotBookable возвращается, когда тип предмета не допускает бронирование
	ErrItemNotBookable = errors.New("create_booking: item is not bookable")

	// ErrRoleForbidden возвращается, когда роль пользователя не дает права бронировать
	ErrRoleForbidden = errors.New("create_booking: role is not allowed to book")

	// ErrTimeConflict возвращается при пересечении с существующим бронированием
	ErrTimeConflict = errors.New("create_booking: booking time conflict")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

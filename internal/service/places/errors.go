package places

import "errors"

var (
	// ErrBuildingNotFound возвращается, когда здание не найдено в рамках компании
	ErrBuildingNotFound = errors.New("places.service: building not found")

	// ErrCoworkingNotFound возвращается, когда коворкинг не найден в рамках компании
	ErrCoworkingNotFound = errors.New("places.service: coworking not found")

	// ErrItemNotFound возвращается, когда предмет не найден в коворкинге
	ErrItemNotFound = errors.New("places.service: item not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("places.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("places.service: internal error")
)

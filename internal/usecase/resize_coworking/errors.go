package resize_coworking

import "errors"

var (
	// ErrCoworkingNotFound возвращается, когда коворкинг не найден в рамках компании
	ErrCoworkingNotFound = errors.New("resize_coworking: coworking not found")

	// ErrItemsOutOfBounds возвращается, когда новые размеры отрезали бы
	// хотя бы одну клетку уже размещенного предмета
	ErrItemsOutOfBounds = errors.New("resize_coworking: items do not fit new dimensions")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("resize_coworking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("resize_coworking: internal error")
)

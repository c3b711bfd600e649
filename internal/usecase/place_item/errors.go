package place_item

import "errors"

var (
	// ErrCoworkingNotFound возвращается, когда коворкинг не найден в рамках компании
	ErrCoworkingNotFound = errors.New("place_item: coworking not found")

	// ErrItemTypeNotFound возвращается, когда тип предмета не найден в рамках компании
	ErrItemTypeNotFound = errors.New("place_item: item type not found")

	// ErrOutOfBounds возвращается, когда предмет выходит за границы сетки
	ErrOutOfBounds = errors.New("place_item: item overlaps with borders")

	// ErrItemsOverlap возвращается, когда предмет пересекается с уже размещенным
	ErrItemsOverlap = errors.New("place_item: item overlaps with other item")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("place_item: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("place_item: internal error")
)

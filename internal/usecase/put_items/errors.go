package put_items

import "errors"

var (
	// ErrCoworkingNotFound возвращается, когда коворкинг не найден в рамках компании
	ErrCoworkingNotFound = errors.New("put_items: coworking not found")

	// ErrItemTypeNotFound возвращается, когда тип одного из предметов не найден
	ErrItemTypeNotFound = errors.New("put_items: item type not found")

	// ErrOutOfBounds возвращается, когда предмет выходит за границы сетки
	ErrOutOfBounds = errors.New("put_items: item overlaps with borders")

	// ErrItemsOverlap возвращается, когда предметы набора пересекаются между собой
	ErrItemsOverlap = errors.New("put_items: item overlaps with other item")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("put_items: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("put_items: internal error")
)

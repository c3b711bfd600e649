package items

import "errors"

var (
	// ErrItemTypeNotFound возвращается, когда тип предмета не найден в рамках компании
	ErrItemTypeNotFound = errors.New("items.service: item type not found")

	// ErrIconNotFound возвращается, когда у типа предмета нет иконки
	ErrIconNotFound = errors.New("items.service: icon not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("items.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("items.service: internal error")
)

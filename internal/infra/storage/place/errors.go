package place

import "errors"

var (
	// ErrBuildingNotFound возвращается, когда здание не найдено в рамках компании
	ErrBuildingNotFound = errors.New("place.repository: building not found")

	// ErrCoworkingNotFound возвращается, когда коворкинг не найден в рамках компании
	ErrCoworkingNotFound = errors.New("place.repository: coworking not found")

	// ErrInvalidDimensions возвращается при неположительных размерах сетки
	ErrInvalidDimensions = errors.New("place.repository: invalid coworking dimensions")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("place.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("place.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("place.repository: failed to scan row")
)

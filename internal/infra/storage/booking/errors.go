package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrTimeConflict возвращается при пересечении интервала с существующим
	// бронированием того же предмета (exclusion constraint)
	ErrTimeConflict = errors.New("booking.repository: booking time conflict")

	// ErrInvalidTimeRange возвращается при нарушении порядка границ
	// или шага длительности (check constraints)
	ErrInvalidTimeRange = errors.New("booking.repository: invalid booking time range")

	// ErrReferenceNotFound возвращается, когда предмет или пользователь
	// бронирования не существует (foreign key)
	ErrReferenceNotFound = errors.New("booking.repository: booking reference not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)

package update_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
)

// Request модель запроса на изменение интервала бронирования
// Незаданные поля интервала остаются без изменений
type Request struct {
	UserID    uuid.UUID   // Пользователь (из токена)
	CompanyID uuid.UUID   // Компания (из токена)
	Role      domain.Role // Роль пользователя (из токена)
	BookingID uuid.UUID   // Изменяемое бронирование
	TimeStart *time.Time  // Новое начало (опционально)
	TimeEnd   *time.Time  // Новый конец (опционально)
}

// Response модель ответа с обновленным бронированием
type Response struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	CoworkingID uuid.UUID
	ItemID      uuid.UUID
	TimeStart   time.Time
	TimeEnd     time.Time
}

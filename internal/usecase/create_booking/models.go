package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID      uuid.UUID   // Пользователь (из токена)
	CompanyID   uuid.UUID   // Компания (из токена)
	Role        domain.Role // Роль пользователя (из токена)
	CoworkingID uuid.UUID   // Коворкинг
	ItemID      uuid.UUID   // Бронируемый предмет
	TimeStart   time.Time   // Начало интервала (включительно)
	TimeEnd     time.Time   // Конец интервала (исключительно)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	CoworkingID uuid.UUID
	ItemID      uuid.UUID
	TimeStart   time.Time
	TimeEnd     time.Time
}

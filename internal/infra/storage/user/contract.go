package user

import "github.com/m04kA/SMC-CoworkingService/pkg/dbmetrics"

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// UpdateProfileParams частичное обновление профиля
// nil поле означает "оставить как есть" (COALESCE в запросе)
type UpdateProfileParams struct {
	Name     *string
	Surname  *string
	Password *string
	Avatar   *string
}

package verification

import (
	"github.com/google/uuid"

	usersmodels "github.com/m04kA/SMC-CoworkingService/internal/service/users/models"
)

// PendingUserResponse пользователь с ожидающим запросом на верификацию
type PendingUserResponse struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Surname string    `json:"surname"`
	Email   string    `json:"email"`
}

// PendingListResponse HTTP response model
type PendingListResponse struct {
	Users []*PendingUserResponse `json:"users"`
}

// FromServiceUserList конвертирует список пользователей в HTTP response
func FromServiceUserList(users []*usersmodels.UserResponse) *PendingListResponse {
	out := make([]*PendingUserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, &PendingUserResponse{
			ID:      u.ID,
			Name:    u.Name,
			Surname: u.Surname,
			Email:   u.Email,
		})
	}
	return &PendingListResponse{Users: out}
}

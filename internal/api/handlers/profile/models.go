package profile

import (
	"github.com/google/uuid"

	companiesmodels "github.com/m04kA/SMC-CoworkingService/internal/service/companies/models"
	usersmodels "github.com/m04kA/SMC-CoworkingService/internal/service/users/models"
)

// UpdateProfileRequest HTTP request model
// nil поля не изменяются
type UpdateProfileRequest struct {
	Name     *string `json:"name,omitempty"`
	Surname  *string `json:"surname,omitempty"`
	Password *string `json:"password,omitempty"`
	Avatar   *string `json:"avatar,omitempty"`
}

// UserResponse HTTP response model
type UserResponse struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Surname string    `json:"surname"`
	Email   string    `json:"email"`
	Avatar  *string   `json:"avatar,omitempty"`
	Role    string    `json:"role"`
}

// CompanyResponse HTTP response model
type CompanyResponse struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Domain string    `json:"domain"`
	Avatar *string   `json:"avatar,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateProfileRequest) ToServiceRequest() *usersmodels.UpdateProfileRequest {
	return &usersmodels.UpdateProfileRequest{
		Name:     r.Name,
		Surname:  r.Surname,
		Password: r.Password,
		Avatar:   r.Avatar,
	}
}

// FromServiceUser конвертирует ответ сервиса в HTTP response
func FromServiceUser(u *usersmodels.UserResponse) *UserResponse {
	return &UserResponse{
		ID:      u.ID,
		Name:    u.Name,
		Surname: u.Surname,
		Email:   u.Email,
		Avatar:  u.Avatar,
		Role:    string(u.Role),
	}
}

// FromServiceCompany конвертирует ответ сервиса в HTTP response
func FromServiceCompany(c *companiesmodels.CompanyResponse) *CompanyResponse {
	return &CompanyResponse{
		ID:     c.ID,
		Name:   c.Name,
		Domain: c.Domain,
		Avatar: c.Avatar,
	}
}

package models

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
)

// RegisterRequest запрос на регистрацию пользователя в компании
// Компания определяется по домену; новый пользователь получает роль гостя
type RegisterRequest struct {
	CompanyDomain string
	Name          string
	Surname       string
	Email         string
	Password      string
}

// LoginRequest запрос на вход
type LoginRequest struct {
	CompanyDomain string
	Email         string
	Password      string
}

// UpdateProfileRequest частичное обновление профиля
// nil поля не изменяются
type UpdateProfileRequest struct {
	Name     *string
	Surname  *string
	Password *string
	Avatar   *string
}

// UserResponse представление пользователя без пароля
type UserResponse struct {
	ID        uuid.UUID
	Name      string
	Surname   string
	Email     string
	Avatar    *string
	Role      domain.Role
	CompanyID uuid.UUID
}

// AuthResponse результат регистрации или входа
type AuthResponse struct {
	User  UserResponse
	Token string
}

// FromDomainUser конвертирует доменную модель в response
// Хеш пароля наружу не отдается
func FromDomainUser(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Surname:   u.Surname,
		Email:     u.Email,
		Avatar:    u.Avatar,
		Role:      u.Role,
		CompanyID: u.CompanyID,
	}
}

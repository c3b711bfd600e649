package models

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
)

// RegisterRequest запрос на регистрацию компании
// Вместе с компанией создается её первый администратор
type RegisterRequest struct {
	Name          string
	Domain        string
	Avatar        *string
	AdminEmail    string
	AdminPassword string
}

// CompanyResponse представление компании
type CompanyResponse struct {
	ID     uuid.UUID
	Name   string
	Domain string
	Avatar *string
}

// RegisterResponse результат регистрации: компания и токен администратора
type RegisterResponse struct {
	Company CompanyResponse
	Token   string
}

// FromDomainCompany конвертирует доменную модель в response
func FromDomainCompany(c *domain.Company) *CompanyResponse {
	return &CompanyResponse{
		ID:     c.ID,
		Name:   c.Name,
		Domain: c.Domain,
		Avatar: c.Avatar,
	}
}

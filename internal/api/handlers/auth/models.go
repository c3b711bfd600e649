package auth

import (
	"github.com/google/uuid"

	companiesmodels "github.com/m04kA/SMC-CoworkingService/internal/service/companies/models"
	usersmodels "github.com/m04kA/SMC-CoworkingService/internal/service/users/models"
)

// RegisterCompanyRequest HTTP request model
type RegisterCompanyRequest struct {
	Name          string  `json:"name"`
	Domain        string  `json:"domain"`
	Avatar        *string `json:"avatar,omitempty"`
	AdminEmail    string  `json:"adminEmail"`
	AdminPassword string  `json:"adminPassword"`
}

// RegisterUserRequest HTTP request model
type RegisterUserRequest struct {
	CompanyDomain string `json:"companyDomain"`
	Name          string `json:"name"`
	Surname       string `json:"surname"`
	Email         string `json:"email"`
	Password      string `json:"password"`
}

// LoginRequest HTTP request model
type LoginRequest struct {
	CompanyDomain string `json:"companyDomain"`
	Email         string `json:"email"`
	Password      string `json:"password"`
}

// CompanyResponse HTTP response model
type CompanyResponse struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Domain string    `json:"domain"`
	Avatar *string   `json:"avatar,omitempty"`
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

// RegisterCompanyResponse HTTP response model
type RegisterCompanyResponse struct {
	Company CompanyResponse `json:"company"`
	Token   string          `json:"token"`
}

// AuthResponse HTTP response model
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *RegisterCompanyRequest) ToServiceRequest() *companiesmodels.RegisterRequest {
	return &companiesmodels.RegisterRequest{
		Name:          r.Name,
		Domain:        r.Domain,
		Avatar:        r.Avatar,
		AdminEmail:    r.AdminEmail,
		AdminPassword: r.AdminPassword,
	}
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *RegisterUserRequest) ToServiceRequest() *usersmodels.RegisterRequest {
	return &usersmodels.RegisterRequest{
		CompanyDomain: r.CompanyDomain,
		Name:          r.Name,
		Surname:       r.Surname,
		Email:         r.Email,
		Password:      r.Password,
	}
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *LoginRequest) ToServiceRequest() *usersmodels.LoginRequest {
	return &usersmodels.LoginRequest{
		CompanyDomain: r.CompanyDomain,
		Email:         r.Email,
		Password:      r.Password,
	}
}

// FromServiceCompany конвертирует ответ сервиса в HTTP response
func FromServiceCompany(resp *companiesmodels.RegisterResponse) *RegisterCompanyResponse {
	return &RegisterCompanyResponse{
		Company: CompanyResponse{
			ID:     resp.Company.ID,
			Name:   resp.Company.Name,
			Domain: resp.Company.Domain,
			Avatar: resp.Company.Avatar,
		},
		Token: resp.Token,
	}
}

// FromServiceAuth конвертирует ответ сервиса в HTTP response
func FromServiceAuth(resp *usersmodels.AuthResponse) *AuthResponse {
	return &AuthResponse{
		User: UserResponse{
			ID:      resp.User.ID,
			Name:    resp.User.Name,
			Surname: resp.User.Surname,
			Email:   resp.User.Email,
			Avatar:  resp.User.Avatar,
			Role:    string(resp.User.Role),
		},
		Token: resp.Token,
	}
}

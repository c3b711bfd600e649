package companies

import "errors"

var (
	// ErrCompanyNotFound возвращается, когда компания не найдена
	ErrCompanyNotFound = errors.New("companies.service: company not found")

	// ErrDomainTaken возвращается, когда домен компании уже занят
	ErrDomainTaken = errors.New("companies.service: company domain already taken")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("companies.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("companies.service: internal error")
)

package users

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("users.service: user not found")

	// ErrCompanyNotFound возвращается, когда компания с таким доменом не существует
	ErrCompanyNotFound = errors.New("users.service: company not found")

	// ErrEmailTaken возвращается, когда email уже занят в рамках компании
	ErrEmailTaken = errors.New("users.service: email already taken")

	// ErrInvalidCredentials возвращается при неверной паре email/пароль
	// Несуществующий email и неверный пароль намеренно неразличимы
	ErrInvalidCredentials = errors.New("users.service: invalid credentials")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("users.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("users.service: internal error")
)

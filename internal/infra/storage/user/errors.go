package user

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("user.repository: user not found")

	// ErrEmailTaken возвращается, когда email уже занят в рамках компании
	ErrEmailTaken = errors.New("user.repository: email already taken in this company")

	// ErrCompanyNotFound возвращается, когда компания пользователя не существует
	ErrCompanyNotFound = errors.New("user.repository: company not found")

	// ErrVerificationPending возвращается, когда у пользователя уже есть
	// необработанный запрос на верификацию
	ErrVerificationPending = errors.New("user.repository: verification request already submitted")

	// ErrVerificationNotFound возвращается, когда запроса на верификацию нет
	ErrVerificationNotFound = errors.New("user.repository: verification request not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("user.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("user.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("user.repository: failed to scan row")
)

package verification

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("verification.service: user not found")

	// ErrNotGuest возвращается, когда верификацию запрашивает не гость
	ErrNotGuest = errors.New("verification.service: user is not a guest")

	// ErrAlreadyPending возвращается при повторном запросе верификации
	ErrAlreadyPending = errors.New("verification.service: verification request already submitted")

	// ErrRequestNotFound возвращается, когда запроса на верификацию нет
	ErrRequestNotFound = errors.New("verification.service: verification request not found")

	// ErrDocumentNotFound возвращается, когда документ отсутствует в хранилище
	ErrDocumentNotFound = errors.New("verification.service: document not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("verification.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("verification.service: internal error")
)

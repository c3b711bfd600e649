package verify_qr

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках usecase
	// Все прочие исходы проверки не являются ошибками, а выражаются вердиктом
	ErrInternal = errors.New("verify_qr: internal error")
)

package objstore

import "errors"

var (
	// ErrObjectNotFound возвращается, когда объект отсутствует в бакете
	ErrObjectNotFound = errors.New("objstore client: object not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("objstore client: internal error")
)

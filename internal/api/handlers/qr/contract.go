package qr

import (
	"context"

	"github.com/m04kA/SMC-CoworkingService/internal/usecase/generate_qr"
	"github.com/m04kA/SMC-CoworkingService/internal/usecase/verify_qr"
)

// GenerateQrUseCase интерфейс use case выпуска QR-токена
type GenerateQrUseCase interface {
	Execute(ctx context.Context, req *generate_qr.Request) (*generate_qr.Response, error)
}

// VerifyQrUseCase интерфейс use case проверки QR-токена
type VerifyQrUseCase interface {
	Execute(ctx context.Context, req *verify_qr.Request) (*verify_qr.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

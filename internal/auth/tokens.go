package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
)

var (
	// ErrInvalidToken возвращается при любой ошибке разбора или проверки токена
	ErrInvalidToken = errors.New("auth: invalid token")

	// ErrTokenExpired возвращается для корректно подписанного, но истекшего токена
	ErrTokenExpired = errors.New("auth: token expired")
)

// Claims сессионные claims пользователя
type Claims struct {
	Role      domain.Role `json:"role"`
	UserID    uuid.UUID   `json:"user_id"`
	CompanyID uuid.UUID   `json:"company_id"`
	Iat       int64       `json:"iat"`
	Exp       int64       `json:"exp"`
}

// QrClaims claims QR-токена бронирования
// Срок действия токена привязан к окончанию самого бронирования:
// после time_end токен бесполезен
type QrClaims struct {
	BookingID uuid.UUID `json:"booking_id"`
	Iat       int64     `json:"iat"`
	Exp       int64     `json:"exp"`
}

// GetExpirationTime implements jwt.Claims
func (c *Claims) GetExpirationTime() (*jwt.NumericDate, error) {
	return jwt.NewNumericDate(time.Unix(c.Exp, 0)), nil
}

// GetIssuedAt implements jwt.Claims
func (c *Claims) GetIssuedAt() (*jwt.NumericDate, error) {
	return jwt.NewNumericDate(time.Unix(c.Iat, 0)), nil
}

// GetNotBefore implements jwt.Claims
func (c *Claims) GetNotBefore() (*jwt.NumericDate, error) { return nil, nil }

// GetIssuer implements jwt.Claims
func (c *Claims) GetIssuer() (string, error) { return "", nil }

// GetSubject implements jwt.Claims
func (c *Claims) GetSubject() (string, error) { return "", nil }

// GetAudience implements jwt.Claims
func (c *Claims) GetAudience() (jwt.ClaimStrings, error) { return nil, nil }

// GetExpirationTime implements jwt.Claims
func (c *QrClaims) GetExpirationTime() (*jwt.NumericDate, error) {
	return jwt.NewNumericDate(time.Unix(c.Exp, 0)), nil
}

// GetIssuedAt implements jwt.Claims
func (c *QrClaims) GetIssuedAt() (*jwt.NumericDate, error) {
	return jwt.NewNumericDate(time.Unix(c.Iat, 0)), nil
}

// GetNotBefore implements jwt.Claims
func (c *QrClaims) GetNotBefore() (*jwt.NumericDate, error) { return nil, nil }

// GetIssuer implements jwt.Claims
func (c *QrClaims) GetIssuer() (string, error) { return "", nil }

// GetSubject implements jwt.Claims
func (c *QrClaims) GetSubject() (string, error) { return "", nil }

// GetAudience implements jwt.Claims
func (c *QrClaims) GetAudience() (jwt.ClaimStrings, error) { return nil, nil }

// Manager выпускает и проверяет подписанные токены (HS256, общий секрет)
type Manager struct {
	secret     []byte
	sessionTTL time.Duration
}

// NewManager создает менеджер токенов
func NewManager(secret string, sessionTTLHours int) *Manager {
	return &Manager{
		secret:     []byte(secret),
		sessionTTL: time.Duration(sessionTTLHours) * time.Hour,
	}
}

// CreateToken выпускает сессионный токен пользователя
func (m *Manager) CreateToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		Role:      user.Role,
		UserID:    user.ID,
		CompanyID: user.CompanyID,
		Iat:       now.Unix(),
		Exp:       now.Add(m.sessionTTL).Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("auth: sign session token: %w", err)
	}
	return signed, nil
}

// CreateQrToken выпускает QR-токен бронирования с exp = booking.time_end
func (m *Manager) CreateQrToken(booking *domain.Booking) (string, error) {
	claims := &QrClaims{
		BookingID: booking.ID,
		Iat:       time.Now().Unix(),
		Exp:       booking.TimeEnd.Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("auth: sign qr token: %w", err)
	}
	return signed, nil
}

// ValidateToken проверяет подпись и срок действия сессионного токена
func (m *Manager) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	if err := m.parse(tokenString, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

// ValidateQrToken проверяет подпись и срок действия QR-токена
func (m *Manager) ValidateQrToken(tokenString string) (*QrClaims, error) {
	claims := &QrClaims{}
	if err := m.parse(tokenString, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

func (m *Manager) parse(tokenString string, claims jwt.Claims) error {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return fmt.Errorf("%w: %v", ErrTokenExpired, err)
		}
		return fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return ErrInvalidToken
	}
	return nil
}

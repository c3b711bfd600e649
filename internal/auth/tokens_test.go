package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
)

func testUser() *domain.User {
	return &domain.User{
		ID:        uuid.New(),
		CompanyID: uuid.New(),
		Role:      domain.RoleStudent,
	}
}

func TestSessionTokenRoundTrip(t *testing.T) {
	manager := NewManager("test-secret", 24)
	user := testUser()

	token, err := manager.CreateToken(user)
	require.NoError(t, err)

	claims, err := manager.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.CompanyID, claims.CompanyID)
	assert.Equal(t, domain.RoleStudent, claims.Role)
}

func TestSessionTokenWrongSecret(t *testing.T) {
	token, err := NewManager("secret-a", 24).CreateToken(testUser())
	require.NoError(t, err)

	_, err = NewManager("secret-b", 24).ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSessionTokenGarbage(t *testing.T) {
	manager := NewManager("test-secret", 24)

	_, err := manager.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestQrTokenRoundTrip(t *testing.T) {
	manager := NewManager("test-secret", 24)
	booking := &domain.Booking{
		ID:      uuid.New(),
		TimeEnd: time.Now().Add(time.Hour),
	}

	token, err := manager.CreateQrToken(booking)
	require.NoError(t, err)

	claims, err := manager.ValidateQrToken(token)
	require.NoError(t, err)
	assert.Equal(t, booking.ID, claims.BookingID)
	assert.Equal(t, booking.TimeEnd.Unix(), claims.Exp)
}

// Токен закончившегося бронирования имеет exp в прошлом и должен
// различаться с просто невалидным токеном
func TestQrTokenExpired(t *testing.T) {
	manager := NewManager("test-secret", 24)
	booking := &domain.Booking{
		ID:      uuid.New(),
		TimeEnd: time.Now().Add(-time.Hour),
	}

	token, err := manager.CreateQrToken(booking)
	require.NoError(t, err)

	_, err = manager.ValidateQrToken(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
	assert.NotErrorIs(t, err, ErrInvalidToken)
}

func TestQrTokenTampered(t *testing.T) {
	manager := NewManager("test-secret", 24)
	booking := &domain.Booking{
		ID:      uuid.New(),
		TimeEnd: time.Now().Add(time.Hour),
	}

	token, err := manager.CreateQrToken(booking)
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = manager.ValidateQrToken(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CoworkingService/internal/auth"
	"github.com/m04kA/SMC-CoworkingService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type mockValidator struct {
	claims *auth.Claims
	err    error
}

func (m *mockValidator) ValidateToken(string) (*auth.Claims, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.claims, nil
}

func callAuth(t *testing.T, validator TokenValidator, header string) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()

	Auth(validator, nopLogger{})(next).ServeHTTP(rec, req)
	return rec, nextCalled
}

func TestAuthPassesClaimsToNext(t *testing.T) {
	claims := &auth.Claims{Role: domain.RoleStudent, UserID: uuid.New(), CompanyID: uuid.New()}

	var got *auth.Claims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = ClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()

	Auth(&mockValidator{claims: claims}, nopLogger{})(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got)
	assert.Equal(t, claims.UserID, got.UserID)
}

// В таксономии ошибок нет 401: отсутствие и невалидность токена дают 403
func TestAuthMissingTokenForbidden(t *testing.T) {
	rec, nextCalled := callAuth(t, &mockValidator{}, "")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, nextCalled)
}

func TestAuthInvalidTokenForbidden(t *testing.T) {
	rec, nextCalled := callAuth(t, &mockValidator{err: auth.ErrInvalidToken}, "Bearer garbage")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, nextCalled)
}

func TestAuthNonBearerHeaderForbidden(t *testing.T) {
	rec, nextCalled := callAuth(t, &mockValidator{}, "Basic dXNlcjpwYXNz")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, nextCalled)
}

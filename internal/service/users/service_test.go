package users

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CoworkingService/internal/auth"
	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	companyStorage "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/company"
	userStorage "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/user"
	"github.com/m04kA/SMC-CoworkingService/internal/service/users/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type mockUserRepo struct {
	user      *domain.User
	getErr    error
	created   *domain.User
	createErr error
}

func (m *mockUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	out := *user
	out.ID = uuid.New()
	m.created = &out
	return &out, nil
}

func (m *mockUserRepo) GetByID(context.Context, uuid.UUID) (*domain.User, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.user, nil
}

func (m *mockUserRepo) GetByEmail(context.Context, uuid.UUID, string) (*domain.User, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.user, nil
}

func (m *mockUserRepo) UpdateProfile(context.Context, uuid.UUID, userStorage.UpdateProfileParams) (*domain.User, error) {
	return m.user, nil
}

type mockCompanyRepo struct {
	company *domain.Company
	err     error
}

func (m *mockCompanyRepo) GetByDomain(context.Context, string) (*domain.Company, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.company, nil
}

type mockIssuer struct{}

func (mockIssuer) CreateToken(*domain.User) (string, error) { return "session-token", nil }

func testCompany() *domain.Company {
	return &domain.Company{ID: uuid.New(), Name: "ACME", Domain: "acme"}
}

func TestLoginSuccess(t *testing.T) {
	hash, err := auth.HashPassword("correct-password")
	require.NoError(t, err)

	users := &mockUserRepo{user: &domain.User{
		ID:       uuid.New(),
		Email:    "user@acme.test",
		Password: hash,
		Role:     domain.RoleStudent,
	}}
	svc := NewService(users, &mockCompanyRepo{company: testCompany()}, mockIssuer{}, nopLogger{})

	resp, err := svc.Login(context.Background(), &models.LoginRequest{
		CompanyDomain: "acme",
		Email:         "user@acme.test",
		Password:      "correct-password",
	})

	require.NoError(t, err)
	assert.Equal(t, "session-token", resp.Token)
	assert.Equal(t, "user@acme.test", resp.User.Email)
}

// Несуществующая компания, несуществующий email и неверный пароль
// намеренно дают одну и ту же ошибку
func TestLoginIndistinguishableFailures(t *testing.T) {
	hash, err := auth.HashPassword("correct-password")
	require.NoError(t, err)
	user := &domain.User{ID: uuid.New(), Password: hash}

	// Компания не найдена
	svc := NewService(&mockUserRepo{user: user}, &mockCompanyRepo{err: companyStorage.ErrCompanyNotFound}, mockIssuer{}, nopLogger{})
	_, err = svc.Login(context.Background(), &models.LoginRequest{CompanyDomain: "ghost", Email: "a@b.c", Password: "x"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Пользователь не найден
	svc = NewService(&mockUserRepo{getErr: userStorage.ErrUserNotFound}, &mockCompanyRepo{company: testCompany()}, mockIssuer{}, nopLogger{})
	_, err = svc.Login(context.Background(), &models.LoginRequest{CompanyDomain: "acme", Email: "ghost@b.c", Password: "x"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Неверный пароль
	svc = NewService(&mockUserRepo{user: user}, &mockCompanyRepo{company: testCompany()}, mockIssuer{}, nopLogger{})
	_, err = svc.Login(context.Background(), &models.LoginRequest{CompanyDomain: "acme", Email: "a@b.c", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginValidation(t *testing.T) {
	svc := NewService(&mockUserRepo{}, &mockCompanyRepo{}, mockIssuer{}, nopLogger{})

	_, err := svc.Login(context.Background(), &models.LoginRequest{CompanyDomain: "acme", Email: "a@b.c"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

// Новый пользователь всегда регистрируется гостем, пароль не хранится открытым
func TestRegisterCreatesGuest(t *testing.T) {
	users := &mockUserRepo{}
	svc := NewService(users, &mockCompanyRepo{company: testCompany()}, mockIssuer{}, nopLogger{})

	resp, err := svc.Register(context.Background(), &models.RegisterRequest{
		CompanyDomain: "acme",
		Name:          "Ivan",
		Surname:       "Petrov",
		Email:         "ivan@acme.test",
		Password:      "secret-password",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.RoleGuest, resp.User.Role)
	require.NotNil(t, users.created)
	assert.NotEqual(t, "secret-password", users.created.Password)

	ok, err := auth.VerifyPassword("secret-password", users.created.Password)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRegisterEmailTaken(t *testing.T) {
	users := &mockUserRepo{createErr: userStorage.ErrEmailTaken}
	svc := NewService(users, &mockCompanyRepo{company: testCompany()}, mockIssuer{}, nopLogger{})

	_, err := svc.Register(context.Background(), &models.RegisterRequest{
		CompanyDomain: "acme",
		Name:          "Ivan",
		Surname:       "Petrov",
		Email:         "ivan@acme.test",
		Password:      "secret-password",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

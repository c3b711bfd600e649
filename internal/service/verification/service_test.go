package verification

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	userStorage "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/user"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockUserRepo struct {
	user *domain.User

	createPendingErr error
	deletePendingErr error
	updateRoleErr    error

	deletePendingCalled bool
	roleFrom, roleTo    domain.Role
	roleUpdated         bool
}

func (m *mockUserRepo) GetByID(context.Context, uuid.UUID) (*domain.User, error) {
	if m.user == nil {
		return nil, userStorage.ErrUserNotFound
	}
	return m.user, nil
}

func (m *mockUserRepo) UpdateRole(_ context.Context, _ uuid.UUID, from, to domain.Role) error {
	if m.updateRoleErr != nil {
		return m.updateRoleErr
	}
	m.roleUpdated = true
	m.roleFrom, m.roleTo = from, to
	return nil
}

func (m *mockUserRepo) CreatePending(context.Context, uuid.UUID, uuid.UUID) error {
	return m.createPendingErr
}

func (m *mockUserRepo) GetPending(context.Context, uuid.UUID, uuid.UUID) (*domain.PendingVerification, error) {
	return &domain.PendingVerification{}, nil
}

func (m *mockUserRepo) DeletePending(context.Context, uuid.UUID, uuid.UUID) error {
	if m.deletePendingErr != nil {
		return m.deletePendingErr
	}
	m.deletePendingCalled = true
	return nil
}

func (m *mockUserRepo) ListPendingUsers(context.Context, uuid.UUID) ([]*domain.User, error) {
	return nil, nil
}

type mockStore struct {
	putKey    string
	deleteKey string
}

func (m *mockStore) Put(_ context.Context, key, _ string, _ []byte) error {
	m.putKey = key
	return nil
}

func (m *mockStore) Get(context.Context, string) ([]byte, string, error) {
	return []byte("%PDF-1.4"), domain.ContentTypePDF, nil
}

func (m *mockStore) Delete(_ context.Context, key string) error {
	m.deleteKey = key
	return nil
}

func guest(id uuid.UUID) *domain.User {
	return &domain.User{ID: id, Role: domain.RoleGuest}
}

func TestRequestUploadsDocument(t *testing.T) {
	userID, companyID := uuid.New(), uuid.New()
	store := &mockStore{}
	svc := NewService(&mockUserRepo{user: guest(userID)}, store, fakeTxManager{}, nopLogger{})

	err := svc.Request(context.Background(), userID, companyID, []byte("%PDF-1.4"))

	require.NoError(t, err)
	assert.Equal(t, documentKey(companyID, userID), store.putKey)
}

func TestRequestNotGuest(t *testing.T) {
	userID := uuid.New()
	user := guest(userID)
	user.Role = domain.RoleStudent
	svc := NewService(&mockUserRepo{user: user}, &mockStore{}, fakeTxManager{}, nopLogger{})

	err := svc.Request(context.Background(), userID, uuid.New(), []byte("%PDF-1.4"))
	assert.ErrorIs(t, err, ErrNotGuest)
}

func TestRequestAlreadyPending(t *testing.T) {
	userID := uuid.New()
	repo := &mockUserRepo{user: guest(userID), createPendingErr: userStorage.ErrVerificationPending}
	svc := NewService(repo, &mockStore{}, fakeTxManager{}, nopLogger{})

	err := svc.Request(context.Background(), userID, uuid.New(), []byte("%PDF-1.4"))
	assert.ErrorIs(t, err, ErrAlreadyPending)
}

func TestRequestEmptyDocument(t *testing.T) {
	svc := NewService(&mockUserRepo{}, &mockStore{}, fakeTxManager{}, nopLogger{})

	err := svc.Request(context.Background(), uuid.New(), uuid.New(), nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestApproveFlipsRoleAndCleansUp(t *testing.T) {
	userID, companyID := uuid.New(), uuid.New()
	repo := &mockUserRepo{user: guest(userID)}
	store := &mockStore{}
	svc := NewService(repo, store, fakeTxManager{}, nopLogger{})

	err := svc.Approve(context.Background(), companyID, userID)

	require.NoError(t, err)
	assert.True(t, repo.deletePendingCalled)
	assert.True(t, repo.roleUpdated)
	assert.Equal(t, domain.RoleGuest, repo.roleFrom)
	assert.Equal(t, domain.RoleVerifiedGuest, repo.roleTo)
	assert.Equal(t, documentKey(companyID, userID), store.deleteKey)
}

// Пользователь успел сменить роль: смена не находит гостя и
// подтверждение отклоняется целиком
func TestApproveUserNoLongerGuest(t *testing.T) {
	repo := &mockUserRepo{updateRoleErr: userStorage.ErrUserNotFound}
	store := &mockStore{}
	svc := NewService(repo, store, fakeTxManager{}, nopLogger{})

	err := svc.Approve(context.Background(), uuid.New(), uuid.New())

	assert.ErrorIs(t, err, ErrNotGuest)
	assert.Empty(t, store.deleteKey)
}

func TestApproveNoPendingRequest(t *testing.T) {
	repo := &mockUserRepo{deletePendingErr: userStorage.ErrVerificationNotFound}
	svc := NewService(repo, &mockStore{}, fakeTxManager{}, nopLogger{})

	err := svc.Approve(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestDeclineKeepsRole(t *testing.T) {
	userID, companyID := uuid.New(), uuid.New()
	repo := &mockUserRepo{user: guest(userID)}
	store := &mockStore{}
	svc := NewService(repo, store, fakeTxManager{}, nopLogger{})

	err := svc.Decline(context.Background(), companyID, userID)

	require.NoError(t, err)
	assert.True(t, repo.deletePendingCalled)
	assert.False(t, repo.roleUpdated)
	assert.Equal(t, documentKey(companyID, userID), store.deleteKey)
}

func TestDeclineNoPendingRequest(t *testing.T) {
	repo := &mockUserRepo{deletePendingErr: userStorage.ErrVerificationNotFound}
	svc := NewService(repo, &mockStore{}, fakeTxManager{}, nopLogger{})

	err := svc.Decline(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

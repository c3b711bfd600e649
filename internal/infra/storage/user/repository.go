package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	"github.com/m04kA/SMC-CoworkingService/internal/infra/storage/pgerr"
	"github.com/m04kA/SMC-CoworkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CoworkingService/pkg/psqlbuilder"
)

const userColumns = "id, name, surname, email, password, avatar, role, company_id"

// Repository репозиторий для работы с пользователями и запросами на верификацию
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория пользователей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает нового пользователя
// Уникальность (company_id, email) мапится в ErrEmailTaken,
// несуществующая компания - в ErrCompanyNotFound
func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("users").
		Columns("name", "surname", "email", "password", "avatar", "role", "company_id").
		Values(user.Name, user.Surname, user.Email, user.Password, user.Avatar, string(user.Role), user.CompanyID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&user.ID)
	if err != nil {
		if pgerr.IsUniqueViolation(err, "users_company_email_unique") {
			return nil, ErrEmailTaken
		}
		if pgerr.IsForeignKeyViolation(err) {
			return nil, ErrCompanyNotFound
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return user, nil
}

// GetByID получает пользователя по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByEmail получает пользователя по email в рамках компании
func (r *Repository) GetByEmail(ctx context.Context, companyID uuid.UUID, email string) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Eq{"company_id": companyID, "email": email})
}

// UpdateProfile частично обновляет профиль пользователя
// nil поля не изменяются (COALESCE)
func (r *Repository) UpdateProfile(ctx context.Context, id uuid.UUID, params UpdateProfileParams) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("users").
		Set("name", squirrel.Expr("COALESCE(?, name)", params.Name)).
		Set("surname", squirrel.Expr("COALESCE(?, surname)", params.Surname)).
		Set("password", squirrel.Expr("COALESCE(?, password)", params.Password)).
		Set("avatar", squirrel.Expr("COALESCE(?, avatar)", params.Avatar)).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + userColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateProfile - build update query: %v", ErrBuildQuery, err)
	}

	user, err := r.scanUser(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateProfile - scan user: %v", ErrScanRow, err)
	}

	return user, nil
}

// UpdateRole меняет роль пользователя при условии его текущей роли
// Возвращает ErrUserNotFound, если пользователь не найден или роль не совпала
func (r *Repository) UpdateRole(ctx context.Context, id uuid.UUID, from, to domain.Role) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("users").
		Set("role", string(to)).
		Where(squirrel.Eq{"id": id, "role": string(from)}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateRole - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateRole - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateRole - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// CreatePending создает запрос на верификацию гостя
// Повторный запрос нарушает PK и мапится в ErrVerificationPending
func (r *Repository) CreatePending(ctx context.Context, userID, companyID uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("pending_verifications").
		Columns("user_id", "company_id").
		Values(userID, companyID).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: CreatePending - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		if pgerr.IsUniqueViolation(err) {
			return ErrVerificationPending
		}
		return fmt.Errorf("%w: CreatePending - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetPending получает запрос на верификацию пользователя в рамках компании
func (r *Repository) GetPending(ctx context.Context, companyID, userID uuid.UUID) (*domain.PendingVerification, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("user_id", "company_id").
		From("pending_verifications").
		Where(squirrel.Eq{"user_id": userID, "company_id": companyID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetPending - build select query: %v", ErrBuildQuery, err)
	}

	var pending domain.PendingVerification
	err = executor.QueryRowContext(ctx, query, args...).Scan(&pending.UserID, &pending.CompanyID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrVerificationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetPending - scan row: %v", ErrScanRow, err)
	}

	return &pending, nil
}

// DeletePending удаляет запрос на верификацию пользователя
func (r *Repository) DeletePending(ctx context.Context, companyID, userID uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("pending_verifications").
		Where(squirrel.Eq{"user_id": userID, "company_id": companyID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeletePending - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeletePending - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeletePending - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrVerificationNotFound
	}

	return nil
}

// HasPending сообщает, есть ли у пользователя необработанный запрос на верификацию
func (r *Repository) HasPending(ctx context.Context, userID uuid.UUID) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("pending_verifications").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: HasPending - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: HasPending - scan count: %v", ErrScanRow, err)
	}

	return count > 0, nil
}

// ListPendingUsers возвращает пользователей компании с необработанными
// запросами на верификацию
func (r *Repository) ListPendingUsers(ctx context.Context, companyID uuid.UUID) ([]*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"u.id", "u.name", "u.surname", "u.email", "u.password", "u.avatar", "u.role", "u.company_id",
	).
		From("pending_verifications pv").
		Join("users u ON u.id = pv.user_id").
		Where(squirrel.Eq{"pv.company_id": companyID}).
		OrderBy("u.email ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListPendingUsers - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListPendingUsers - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	users := make([]*domain.User, 0)
	for rows.Next() {
		var u domain.User
		var role string
		err := rows.Scan(&u.ID, &u.Name, &u.Surname, &u.Email, &u.Password, &u.Avatar, &role, &u.CompanyID)
		if err != nil {
			return nil, fmt.Errorf("%w: ListPendingUsers - scan row: %v", ErrScanRow, err)
		}
		u.Role = domain.Role(role)
		users = append(users, &u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListPendingUsers - rows error: %v", ErrScanRow, err)
	}

	return users, nil
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "name", "surname", "email", "password", "avatar", "role", "company_id",
	).
		From("users").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - build select query: %v", ErrBuildQuery, err)
	}

	user, err := r.scanUser(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - scan user: %v", ErrScanRow, err)
	}

	return user, nil
}

func (r *Repository) scanUser(row *sql.Row) (*domain.User, error) {
	var u domain.User
	var role string
	err := row.Scan(&u.ID, &u.Name, &u.Surname, &u.Email, &u.Password, &u.Avatar, &role, &u.CompanyID)
	if err != nil {
		return nil, err
	}
	u.Role = domain.Role(role)
	return &u, nil
}

package company

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

// Repository репозиторий для работы с компаниями (тенантами)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория компаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую компанию
// Нарушение уникальности домена мапится в ErrDomainTaken
func (r *Repository) Create(ctx context.Context, company *domain.Company) (*domain.Company, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("companies").
		Columns("name", "domain", "avatar").
		Values(company.Name, company.Domain, company.Avatar).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&company.ID)
	if err != nil {
		if pgerr.IsUniqueViolation(err, "companies_domain_unique") {
			return nil, ErrDomainTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return company, nil
}

// GetByID получает компанию по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByDomain получает компанию по её домену
func (r *Repository) GetByDomain(ctx context.Context, companyDomain string) (*domain.Company, error) {
	return r.getOne(ctx, squirrel.Eq{"domain": companyDomain})
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq) (*domain.Company, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "domain", "avatar").
		From("companies").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - build select query: %v", ErrBuildQuery, err)
	}

	var company domain.Company
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&company.ID,
		&company.Name,
		&company.Domain,
		&company.Avatar,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCompanyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - scan company: %v", ErrScanRow, err)
	}

	return &company, nil
}

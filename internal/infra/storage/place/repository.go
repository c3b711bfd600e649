package place

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

const coworkingColumns = "id, address, width, height, building_id, company_id"

// Repository репозиторий для работы со зданиями и коворкингами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория зданий и коворкингов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateBuilding создает здание компании
func (r *Repository) CreateBuilding(ctx context.Context, building *domain.Building) (*domain.Building, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("buildings").
		Columns("address", "company_id").
		Values(building.Address, building.CompanyID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateBuilding - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&building.ID); err != nil {
		return nil, fmt.Errorf("%w: CreateBuilding - execute insert: %v", ErrExecQuery, err)
	}

	return building, nil
}

// ListBuildings возвращает все здания компании
func (r *Repository) ListBuildings(ctx context.Context, companyID uuid.UUID) ([]*domain.Building, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "address", "company_id").
		From("buildings").
		Where(squirrel.Eq{"company_id": companyID}).
		OrderBy("address ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListBuildings - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBuildings - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	buildings := make([]*domain.Building, 0)
	for rows.Next() {
		var b domain.Building
		if err := rows.Scan(&b.ID, &b.Address, &b.CompanyID); err != nil {
			return nil, fmt.Errorf("%w: ListBuildings - scan row: %v", ErrScanRow, err)
		}
		buildings = append(buildings, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBuildings - rows error: %v", ErrScanRow, err)
	}

	return buildings, nil
}

// GetBuilding получает здание по ID в рамках компании
func (r *Repository) GetBuilding(ctx context.Context, companyID, id uuid.UUID) (*domain.Building, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "address", "company_id").
		From("buildings").
		Where(squirrel.Eq{"id": id, "company_id": companyID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBuilding - build select query: %v", ErrBuildQuery, err)
	}

	var b domain.Building
	err = executor.QueryRowContext(ctx, query, args...).Scan(&b.ID, &b.Address, &b.CompanyID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBuildingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBuilding - scan row: %v", ErrScanRow, err)
	}

	return &b, nil
}

// CreateCoworking создает коворкинг в здании
// Несуществующее здание мапится в ErrBuildingNotFound (foreign key),
// неположительные размеры - в ErrInvalidDimensions (check constraint)
func (r *Repository) CreateCoworking(ctx context.Context, coworking *domain.CoworkingSpace) (*domain.CoworkingSpace, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("coworking_spaces").
		Columns("address", "width", "height", "building_id", "company_id").
		Values(coworking.Address, coworking.Width, coworking.Height, coworking.BuildingID, coworking.CompanyID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateCoworking - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&coworking.ID)
	if err != nil {
		if pgerr.IsForeignKeyViolation(err) {
			return nil, ErrBuildingNotFound
		}
		if pgerr.IsCheckViolation(err, "coworking_spaces_dimensions_positive") {
			return nil, ErrInvalidDimensions
		}
		return nil, fmt.Errorf("%w: CreateCoworking - execute insert: %v", ErrExecQuery, err)
	}

	return coworking, nil
}

// ListCoworkings возвращает все коворкинги компании
func (r *Repository) ListCoworkings(ctx context.Context, companyID uuid.UUID) ([]*domain.CoworkingSpace, error) {
	return r.list(ctx, squirrel.Eq{"company_id": companyID})
}

// ListCoworkingsByBuilding возвращает коворкинги здания в рамках компании
func (r *Repository) ListCoworkingsByBuilding(ctx context.Context, companyID, buildingID uuid.UUID) ([]*domain.CoworkingSpace, error) {
	return r.list(ctx, squirrel.Eq{"company_id": companyID, "building_id": buildingID})
}

// GetCoworking получает коворкинг по ID в рамках компании и здания
// Запрос всегда несет company_id: сущности другой компании неотличимы
// от несуществующих
func (r *Repository) GetCoworking(ctx context.Context, companyID, buildingID, id uuid.UUID) (*domain.CoworkingSpace, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "address", "width", "height", "building_id", "company_id").
		From("coworking_spaces").
		Where(squirrel.Eq{"id": id, "building_id": buildingID, "company_id": companyID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetCoworking - build select query: %v", ErrBuildQuery, err)
	}

	coworking, err := r.scanCoworking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCoworkingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetCoworking - scan row: %v", ErrScanRow, err)
	}

	return coworking, nil
}

// UpdateCoworkingAddress обновляет адрес коворкинга
func (r *Repository) UpdateCoworkingAddress(ctx context.Context, companyID, buildingID, id uuid.UUID, address string) (*domain.CoworkingSpace, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("coworking_spaces").
		Set("address", address).
		Where(squirrel.Eq{"id": id, "building_id": buildingID, "company_id": companyID}).
		Suffix("RETURNING " + coworkingColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateCoworkingAddress - build update query: %v", ErrBuildQuery, err)
	}

	coworking, err := r.scanCoworking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCoworkingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateCoworkingAddress - scan row: %v", ErrScanRow, err)
	}

	return coworking, nil
}

// UpdateCoworkingDimensions обновляет размеры сетки коворкинга
// Геометрическая допустимость нового размера проверяется usecase'ом
// до вызова, в той же транзакции
func (r *Repository) UpdateCoworkingDimensions(ctx context.Context, companyID, buildingID, id uuid.UUID, width, height int64) (*domain.CoworkingSpace, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("coworking_spaces").
		Set("width", width).
		Set("height", height).
		Where(squirrel.Eq{"id": id, "building_id": buildingID, "company_id": companyID}).
		Suffix("RETURNING " + coworkingColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateCoworkingDimensions - build update query: %v", ErrBuildQuery, err)
	}

	coworking, err := r.scanCoworking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCoworkingNotFound
	}
	if err != nil {
		if pgerr.IsCheckViolation(err, "coworking_spaces_dimensions_positive") {
			return nil, ErrInvalidDimensions
		}
		return nil, fmt.Errorf("%w: UpdateCoworkingDimensions - scan row: %v", ErrScanRow, err)
	}

	return coworking, nil
}

// DeleteCoworking удаляет коворкинг в рамках компании и здания
func (r *Repository) DeleteCoworking(ctx context.Context, companyID, buildingID, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("coworking_spaces").
		Where(squirrel.Eq{"id": id, "building_id": buildingID, "company_id": companyID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteCoworking - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteCoworking - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteCoworking - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrCoworkingNotFound
	}

	return nil
}

func (r *Repository) list(ctx context.Context, where squirrel.Eq) ([]*domain.CoworkingSpace, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "address", "width", "height", "building_id", "company_id").
		From("coworking_spaces").
		Where(where).
		OrderBy("address ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: list - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: list - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	coworkings := make([]*domain.CoworkingSpace, 0)
	for rows.Next() {
		var c domain.CoworkingSpace
		if err := rows.Scan(&c.ID, &c.Address, &c.Width, &c.Height, &c.BuildingID, &c.CompanyID); err != nil {
			return nil, fmt.Errorf("%w: list - scan row: %v", ErrScanRow, err)
		}
		coworkings = append(coworkings, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list - rows error: %v", ErrScanRow, err)
	}

	return coworkings, nil
}

func (r *Repository) scanCoworking(row *sql.Row) (*domain.CoworkingSpace, error) {
	var c domain.CoworkingSpace
	err := row.Scan(&c.ID, &c.Address, &c.Width, &c.Height, &c.BuildingID, &c.CompanyID)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

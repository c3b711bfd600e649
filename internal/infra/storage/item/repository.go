package item

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

// Repository репозиторий для работы с типами предметов и размещенными предметами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория предметов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateItemType создает тип предмета компании
// ID генерируется вызывающей стороной: он нужен заранее для ключа иконки
// в объектном хранилище
func (r *Repository) CreateItemType(ctx context.Context, itemType *domain.ItemType) (*domain.ItemType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("item_types").
		Columns("id", "name", "description", "color", "icon", "offsets", "bookable", "company_id").
		Values(
			itemType.ID,
			itemType.Name,
			itemType.Description,
			itemType.Color,
			itemType.Icon,
			itemType.Offsets,
			itemType.Bookable,
			itemType.CompanyID,
		).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateItemType - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: CreateItemType - execute insert: %v", ErrExecQuery, err)
	}

	return itemType, nil
}

// ListItemTypes возвращает все типы предметов компании
func (r *Repository) ListItemTypes(ctx context.Context, companyID uuid.UUID) ([]*domain.ItemType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "name", "description", "color", "icon", "offsets", "bookable", "company_id",
	).
		From("item_types").
		Where(squirrel.Eq{"company_id": companyID}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListItemTypes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListItemTypes - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	itemTypes := make([]*domain.ItemType, 0)
	for rows.Next() {
		var it domain.ItemType
		err := rows.Scan(&it.ID, &it.Name, &it.Description, &it.Color, &it.Icon, &it.Offsets, &it.Bookable, &it.CompanyID)
		if err != nil {
			return nil, fmt.Errorf("%w: ListItemTypes - scan row: %v", ErrScanRow, err)
		}
		itemTypes = append(itemTypes, &it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListItemTypes - rows error: %v", ErrScanRow, err)
	}

	return itemTypes, nil
}

// GetItemType получает тип предмета по ID в рамках компании
func (r *Repository) GetItemType(ctx context.Context, companyID, id uuid.UUID) (*domain.ItemType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "name", "description", "color", "icon", "offsets", "bookable", "company_id",
	).
		From("item_types").
		Where(squirrel.Eq{"id": id, "company_id": companyID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetItemType - build select query: %v", ErrBuildQuery, err)
	}

	var it domain.ItemType
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&it.ID, &it.Name, &it.Description, &it.Color, &it.Icon, &it.Offsets, &it.Bookable, &it.CompanyID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrItemTypeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetItemType - scan row: %v", ErrScanRow, err)
	}

	return &it, nil
}

// DeleteItemType удаляет тип предмета в рамках компании
func (r *Repository) DeleteItemType(ctx context.Context, companyID, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("item_types").
		Where(squirrel.Eq{"id": id, "company_id": companyID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteItemType - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteItemType - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteItemType - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrItemTypeNotFound
	}

	return nil
}

// ListItems возвращает предметы коворкинга
// Принадлежность коворкинга компании проверяется вызывающей стороной
func (r *Repository) ListItems(ctx context.Context, coworkingID uuid.UUID) ([]*domain.CoworkingItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "item_id", "name", "description", "coworking_id", "base_x", "base_y",
	).
		From("coworking_items").
		Where(squirrel.Eq{"coworking_id": coworkingID}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListItems - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListItems - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	items := make([]*domain.CoworkingItem, 0)
	for rows.Next() {
		var it domain.CoworkingItem
		err := rows.Scan(&it.ID, &it.ItemID, &it.Name, &it.Description, &it.CoworkingID, &it.BasePoint.X, &it.BasePoint.Y)
		if err != nil {
			return nil, fmt.Errorf("%w: ListItems - scan row: %v", ErrScanRow, err)
		}
		items = append(items, &it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListItems - rows error: %v", ErrScanRow, err)
	}

	return items, nil
}

// ListCoordinates возвращает базовые точки и footprint'ы всех предметов коворкинга
// Используется геометрическими проверками
func (r *Repository) ListCoordinates(ctx context.Context, coworkingID uuid.UUID) ([]domain.ItemCoordinates, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("ci.base_x", "ci.base_y", "it.offsets").
		From("coworking_items ci").
		Join("item_types it ON it.id = ci.item_id").
		Where(squirrel.Eq{"ci.coworking_id": coworkingID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListCoordinates - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCoordinates - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	coordinates := make([]domain.ItemCoordinates, 0)
	for rows.Next() {
		var c domain.ItemCoordinates
		if err := rows.Scan(&c.BasePoint.X, &c.BasePoint.Y, &c.Offsets); err != nil {
			return nil, fmt.Errorf("%w: ListCoordinates - scan row: %v", ErrScanRow, err)
		}
		coordinates = append(coordinates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListCoordinates - rows error: %v", ErrScanRow, err)
	}

	return coordinates, nil
}

// CreateItem размещает предмет в коворкинге
// Несуществующий тип предмета мапится в ErrItemTypeNotFound (foreign key)
func (r *Repository) CreateItem(ctx context.Context, item *domain.CoworkingItem) (*domain.CoworkingItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("coworking_items").
		Columns("name", "description", "item_id", "coworking_id", "base_x", "base_y").
		Values(item.Name, item.Description, item.ItemID, item.CoworkingID, item.BasePoint.X, item.BasePoint.Y).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateItem - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&item.ID)
	if err != nil {
		if pgerr.IsForeignKeyViolation(err) {
			return nil, ErrItemTypeNotFound
		}
		return nil, fmt.Errorf("%w: CreateItem - execute insert: %v", ErrExecQuery, err)
	}

	return item, nil
}

// DeleteItemsByCoworking удаляет все предметы коворкинга
// Используется bulk-replace протоколом внутри транзакции
func (r *Repository) DeleteItemsByCoworking(ctx context.Context, coworkingID uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("coworking_items").
		Where(squirrel.Eq{"coworking_id": coworkingID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteItemsByCoworking - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteItemsByCoworking - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

// DeleteItem удаляет предмет из коворкинга
func (r *Repository) DeleteItem(ctx context.Context, coworkingID, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("coworking_items").
		Where(squirrel.Eq{"id": id, "coworking_id": coworkingID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteItem - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteItem - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteItem - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrItemNotFound
	}

	return nil
}

// GetItemBookable сообщает, допускает ли предмет бронирование
// Запрос скоупится компанией и коворкингом: чужой предмет неотличим
// от несуществующего
func (r *Repository) GetItemBookable(ctx context.Context, companyID, coworkingID, id uuid.UUID) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("it.bookable").
		From("coworking_items ci").
		Join("item_types it ON it.id = ci.item_id").
		Join("coworking_spaces cs ON cs.id = ci.coworking_id").
		Where(squirrel.Eq{"ci.id": id, "ci.coworking_id": coworkingID, "cs.company_id": companyID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: GetItemBookable - build select query: %v", ErrBuildQuery, err)
	}

	var bookable bool
	err = executor.QueryRowContext(ctx, query, args...).Scan(&bookable)
	if errors.Is(err, sql.ErrNoRows) {
		return false, ErrItemNotFound
	}
	if err != nil {
		return false, fmt.Errorf("%w: GetItemBookable - scan row: %v", ErrScanRow, err)
	}

	return bookable, nil
}

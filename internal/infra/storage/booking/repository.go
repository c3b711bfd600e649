package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	"github.com/m04kA/SMC-CoworkingService/internal/infra/storage/pgerr"
	"github.com/m04kA/SMC-CoworkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CoworkingService/pkg/psqlbuilder"
)

const bookingColumns = "id, user_id, coworking_space_id, coworking_item_id, company_id, time_start, time_end"

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает бронирование
// Пересечение интервалов ловится exclusion constraint'ом bookings_no_overlap:
// никакой предварительный SELECT не нужен, БД является источником истины
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns("user_id", "coworking_space_id", "coworking_item_id", "company_id", "time_start", "time_end").
		Values(
			booking.UserID,
			booking.CoworkingSpaceID,
			booking.CoworkingItemID,
			booking.CompanyID,
			booking.TimeStart,
			booking.TimeEnd,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&booking.ID)
	if err != nil {
		if mapped := mapConstraintError(err); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return booking, nil
}

// GetByID получает бронирование по ID в рамках компании
func (r *Repository) GetByID(ctx context.Context, companyID, id uuid.UUID) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "user_id", "coworking_space_id", "coworking_item_id", "company_id", "time_start", "time_end",
	).
		From("bookings").
		Where(squirrel.Eq{"id": id, "company_id": companyID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan row: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetPublicByID получает отображаемую проекцию бронирования
// Используется при проверке QR: без внутренних идентификаторов
func (r *Repository) GetPublicByID(ctx context.Context, companyID, id uuid.UUID) (*domain.PublicBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"b.id", "u.email", "bld.address", "cs.address", "ci.name", "b.time_start", "b.time_end",
	).
		From("bookings b").
		Join("users u ON u.id = b.user_id").
		Join("coworking_spaces cs ON cs.id = b.coworking_space_id").
		Join("buildings bld ON bld.id = cs.building_id").
		Join("coworking_items ci ON ci.id = b.coworking_item_id").
		Where(squirrel.Eq{"b.id": id, "b.company_id": companyID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetPublicByID - build select query: %v", ErrBuildQuery, err)
	}

	var pb domain.PublicBooking
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&pb.ID, &pb.UserEmail, &pb.BuildingAddress, &pb.CoworkingAddress, &pb.ItemName, &pb.TimeStart, &pb.TimeEnd,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetPublicByID - scan row: %v", ErrScanRow, err)
	}

	return &pb, nil
}

// ListByUser возвращает активные бронирования пользователя
// Активные - те, что еще не закончились: time_end > now
func (r *Repository) ListByUser(ctx context.Context, companyID, userID uuid.UUID, now time.Time) ([]*domain.Booking, error) {
	return r.list(ctx, squirrel.Eq{"company_id": companyID, "user_id": userID}, now)
}

// ListByCoworking возвращает активные бронирования коворкинга
func (r *Repository) ListByCoworking(ctx context.Context, companyID, coworkingID uuid.UUID, now time.Time) ([]*domain.Booking, error) {
	return r.list(ctx, squirrel.Eq{"company_id": companyID, "coworking_space_id": coworkingID}, now)
}

// Update обновляет интервал бронирования
// Нарушения constraint'ов мапятся так же, как при создании
func (r *Repository) Update(ctx context.Context, companyID, id uuid.UUID, timeStart, timeEnd *time.Time) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("time_start", squirrel.Expr("COALESCE(?, time_start)", timeStart)).
		Set("time_end", squirrel.Expr("COALESCE(?, time_end)", timeEnd)).
		Where(squirrel.Eq{"id": id, "company_id": companyID}).
		Suffix("RETURNING " + bookingColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		if mapped := mapConstraintError(err); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("%w: Update - scan row: %v", ErrScanRow, err)
	}

	return booking, nil
}

// Delete удаляет бронирование в рамках компании
func (r *Repository) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id, "company_id": companyID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func (r *Repository) list(ctx context.Context, where squirrel.Eq, now time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "user_id", "coworking_space_id", "coworking_item_id", "company_id", "time_start", "time_end",
	).
		From("bookings").
		Where(where).
		Where(squirrel.Gt{"time_end": now}).
		OrderBy("time_start ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: list - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: list - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		var b domain.Booking
		err := rows.Scan(&b.ID, &b.UserID, &b.CoworkingSpaceID, &b.CoworkingItemID, &b.CompanyID, &b.TimeStart, &b.TimeEnd)
		if err != nil {
			return nil, fmt.Errorf("%w: list - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

func scanBooking(row *sql.Row) (*domain.Booking, error) {
	var b domain.Booking
	err := row.Scan(&b.ID, &b.UserID, &b.CoworkingSpaceID, &b.CoworkingItemID, &b.CompanyID, &b.TimeStart, &b.TimeEnd)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func mapConstraintError(err error) error {
	switch {
	case pgerr.IsExclusionViolation(err, "bookings_no_overlap"):
		return ErrTimeConflict
	case pgerr.IsCheckViolation(err, "bookings_time_order", "bookings_duration_step"):
		return ErrInvalidTimeRange
	case pgerr.IsForeignKeyViolation(err):
		return ErrReferenceNotFound
	}
	return nil
}

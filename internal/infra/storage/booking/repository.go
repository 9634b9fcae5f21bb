package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/RMS-BookingService/internal/domain"
	"github.com/m04kA/RMS-BookingService/pkg/dbmetrics"
	"github.com/m04kA/RMS-BookingService/pkg/psqlbuilder"
)

// uniqueViolationCode SQLSTATE код нарушения уникальности PostgreSQL
const uniqueViolationCode = "23505"

var bookingColumns = []string{
	"id",
	"booking_id",
	"guest_id",
	"room_id",
	"checkin_date",
	"checkout_date",
	"status",
	"paid_amount",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция (через context.Value), использует её.
// Вызов внутри транзакции обязателен, когда создание следует за проверкой
// конфликта дат: только так пара "проверка + запись" атомарна.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"booking_id",
			"guest_id",
			"room_id",
			"checkin_date",
			"checkout_date",
			"status",
			"paid_amount",
		).
		Values(
			b.BookingID,
			b.GuestID,
			b.RoomID,
			b.CheckinDate,
			b.CheckoutDate,
			b.Status,
			b.PaidAmount,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateBookingID
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return b, nil
}

// GetByID получает бронирование по внутреннему идентификатору
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByBookingID получает бронирование по бизнес-идентификатору
func (r *Repository) GetByBookingID(ctx context.Context, bookingID string) (*domain.Booking, error) {
	return r.getOne(ctx, squirrel.Eq{"booking_id": bookingID})
}

// ExistsByBookingID проверяет занятость бизнес-идентификатора
// Внутри транзакции блокирует найденную строку (FOR UPDATE)
func (r *Repository) ExistsByBookingID(ctx context.Context, bookingID string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id").
		From("bookings").
		Where(squirrel.Eq{"booking_id": bookingID})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: ExistsByBookingID - build select query: %v", ErrBuildQuery, err)
	}

	var id int64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ExistsByBookingID - scan id: %v", ErrScanRow, err)
	}
	return true, nil
}

// FindClashes возвращает активные бронирования того же номера,
// пересекающиеся с запрошенным диапазоном дат
//
// Политика определяет семантику границ:
//   - OverlapClosedInterval: checkin_date <= checkout AND checkout_date >= checkin
//     (выселение и заселение в один день конфликтуют, semantics источника)
//   - OverlapHalfOpen: строгие неравенства, однодневный turnover разрешён
//
// Внутри транзакции найденные строки блокируются (FOR UPDATE),
// чтобы пара "проверка + запись" не допускала гонку
func (r *Repository) FindClashes(ctx context.Context, q domain.ClashQuery, policy domain.OverlapPolicy) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"room_id": q.RoomID}).
		Where(squirrel.NotEq{"status": inactiveStatusStrings()})

	if policy == domain.OverlapHalfOpen {
		selectBuilder = selectBuilder.
			Where(squirrel.Lt{"checkin_date": q.CheckoutDate}).
			Where(squirrel.Gt{"checkout_date": q.CheckinDate})
	} else {
		selectBuilder = selectBuilder.
			Where(squirrel.LtOrEq{"checkin_date": q.CheckoutDate}).
			Where(squirrel.GtOrEq{"checkout_date": q.CheckinDate})
	}

	if q.ExcludeBookingID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"booking_id": *q.ExcludeBookingID})
	}

	selectBuilder = selectBuilder.OrderBy("checkin_date ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindClashes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindClashes - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// List получает бронирования с фильтрацией по статусу, номеру, гостю
// и окну дат (checkin_date или checkout_date попадает в [StartDate, EndDate])
// Сортировка: сначала поздние заезды (как в списках админки)
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings")

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.RoomID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"room_id": *filter.RoomID})
	}
	if filter.GuestID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"guest_id": *filter.GuestID})
	}

	// Оконный фильтр применяется только при обеих границах, как в источнике
	if filter.StartDate != nil && filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.And{
				squirrel.GtOrEq{"checkin_date": *filter.StartDate},
				squirrel.LtOrEq{"checkin_date": *filter.EndDate},
			},
			squirrel.And{
				squirrel.GtOrEq{"checkout_date": *filter.StartDate},
				squirrel.LtOrEq{"checkout_date": *filter.EndDate},
			},
		})
	}

	selectBuilder = selectBuilder.OrderBy("checkin_date DESC")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// Update перезаписывает бронирование целиком по бизнес-идентификатору
// booking_id не входит в SET: бизнес-идентификатор неизменяем
func (r *Repository) Update(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("guest_id", b.GuestID).
		Set("room_id", b.RoomID).
		Set("checkin_date", b.CheckinDate).
		Set("checkout_date", b.CheckoutDate).
		Set("status", b.Status).
		Set("paid_amount", b.PaidAmount).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"booking_id": b.BookingID}).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return b, nil
}

// Delete удаляет бронирование по бизнес-идентификатору
func (r *Repository) Delete(ctx context.Context, bookingID string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"booking_id": bookingID}).
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

// CountOccupiedRooms считает уникальные номера с бронированиями
// в статусах Confirmed/Checked-in, пересекающимися с периодом
func (r *Repository) CountOccupiedRooms(ctx context.Context, start, end time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(DISTINCT room_id)").
		From("bookings").
		Where(squirrel.Eq{"status": []string{
			string(domain.StatusConfirmed),
			string(domain.StatusCheckedIn),
		}}).
		Where(squirrel.LtOrEq{"checkin_date": end}).
		Where(squirrel.GtOrEq{"checkout_date": start}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountOccupiedRooms - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountOccupiedRooms - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// CountByStatus считает бронирования по каждому статусу
func (r *Repository) CountByStatus(ctx context.Context) (map[domain.BookingStatus]int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("status", "COUNT(*)").
		From("bookings").
		GroupBy("status").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CountByStatus - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CountByStatus - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	counts := make(map[domain.BookingStatus]int64)
	for rows.Next() {
		var status domain.BookingStatus
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("%w: CountByStatus - scan row: %v", ErrScanRow, err)
		}
		counts[status] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CountByStatus - rows error: %v", ErrScanRow, err)
	}

	return counts, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var b domain.Booking
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&b.ID,
			&b.BookingID,
			&b.GuestID,
			&b.RoomID,
			&b.CheckinDate,
			&b.CheckoutDate,
			&b.Status,
			&b.PaidAmount,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		b.CreatedAt = createdAt.Time
		b.UpdatedAt = updatedAt.Time

		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getOne - build select query: %v", ErrBuildQuery, err)
	}

	var b domain.Booking
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&b.BookingID,
		&b.GuestID,
		&b.RoomID,
		&b.CheckinDate,
		&b.CheckoutDate,
		&b.Status,
		&b.PaidAmount,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - scan booking: %v", ErrScanRow, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}

// inactiveStatusStrings статусы, исключаемые из проверки конфликтов
func inactiveStatusStrings() []string {
	statuses := make([]string, len(domain.InactiveStatuses))
	for i, s := range domain.InactiveStatuses {
		statuses[i] = string(s)
	}
	return statuses
}

// isUniqueViolation проверяет, что ошибка вызвана нарушением уникальности
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolationCode
	}
	return false
}

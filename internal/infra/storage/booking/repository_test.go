package booking

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RMS-BookingService/internal/domain"
	"github.com/m04kA/RMS-BookingService/pkg/ptr"
)

func date(s string) time.Time {
	t, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		panic(err)
	}
	return t
}

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db), mock
}

func bookingRows(bookings ...*domain.Booking) *sqlmock.Rows {
	rows := sqlmock.NewRows(bookingColumns)
	for _, b := range bookings {
		rows.AddRow(
			b.ID, b.BookingID, b.GuestID, b.RoomID,
			b.CheckinDate, b.CheckoutDate,
			string(b.Status), b.PaidAmount,
			b.CreatedAt, b.UpdatedAt,
		)
	}
	return rows
}

func sampleBooking() *domain.Booking {
	return &domain.Booking{
		ID:           1,
		BookingID:    "BK12345",
		GuestID:      "guest-001",
		RoomID:       "room-101",
		CheckinDate:  date("2025-11-01"),
		CheckoutDate: date("2025-11-05"),
		Status:       domain.StatusConfirmed,
		PaidAmount:   300,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}

func TestCreate(t *testing.T) {
	repo, mock := newMockRepo(t)

	b := &domain.Booking{
		BookingID:    "BK12345",
		GuestID:      "guest-001",
		RoomID:       "room-101",
		CheckinDate:  date("2025-11-01"),
		CheckoutDate: date("2025-11-05"),
		Status:       domain.StatusPending,
		PaidAmount:   0,
	}

	now := time.Now()
	mock.ExpectQuery("INSERT INTO bookings").
		WithArgs("BK12345", "guest-001", "room-101",
			b.CheckinDate, b.CheckoutDate, domain.StatusPending, 0.0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(int64(42), now, now))

	created, err := repo.Create(context.Background(), b)

	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DuplicateBookingID(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("INSERT INTO bookings").
		WillReturnError(&pq.Error{Code: "23505"})

	_, err := repo.Create(context.Background(), sampleBooking())

	assert.ErrorIs(t, err, ErrDuplicateBookingID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByBookingID(t *testing.T) {
	repo, mock := newMockRepo(t)
	b := sampleBooking()

	mock.ExpectQuery(`SELECT .* FROM bookings WHERE booking_id = \$1`).
		WithArgs("BK12345").
		WillReturnRows(bookingRows(b))

	got, err := repo.GetByBookingID(context.Background(), "BK12345")

	require.NoError(t, err)
	assert.Equal(t, "BK12345", got.BookingID)
	assert.Equal(t, domain.StatusConfirmed, got.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByBookingID_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT .* FROM bookings WHERE booking_id = \$1`).
		WithArgs("MISSING1").
		WillReturnRows(bookingRows())

	_, err := repo.GetByBookingID(context.Background(), "MISSING1")

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExistsByBookingID(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT id FROM bookings WHERE booking_id = \$1`).
		WithArgs("BK12345").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

	exists, err := repo.ExistsByBookingID(context.Background(), "BK12345")

	require.NoError(t, err)
	assert.True(t, exists)
}

func TestExistsByBookingID_Free(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT id FROM bookings WHERE booking_id = \$1`).
		WithArgs("BK99999").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	exists, err := repo.ExistsByBookingID(context.Background(), "BK99999")

	require.NoError(t, err)
	assert.False(t, exists)
}

func TestFindClashes_ClosedInterval(t *testing.T) {
	repo, mock := newMockRepo(t)
	b := sampleBooking()

	// Нестрогие неравенства и исключение неактивных статусов
	mock.ExpectQuery(`SELECT .* FROM bookings WHERE room_id = \$1 AND status NOT IN \(\$2,\$3\) AND checkin_date <= \$4 AND checkout_date >= \$5 ORDER BY checkin_date ASC`).
		WithArgs("room-101",
			string(domain.StatusCancelled), string(domain.StatusCheckedOut),
			date("2025-11-08"), date("2025-11-04")).
		WillReturnRows(bookingRows(b))

	clashes, err := repo.FindClashes(context.Background(), domain.ClashQuery{
		RoomID:       "room-101",
		CheckinDate:  date("2025-11-04"),
		CheckoutDate: date("2025-11-08"),
	}, domain.OverlapClosedInterval)

	require.NoError(t, err)
	require.Len(t, clashes, 1)
	assert.Equal(t, "BK12345", clashes[0].BookingID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindClashes_HalfOpenUsesStrictBounds(t *testing.T) {
	repo, mock := newMockRepo(t)

	// Строгие неравенства: однодневный turnover не конфликтует
	mock.ExpectQuery(`SELECT .* FROM bookings WHERE room_id = \$1 AND status NOT IN \(\$2,\$3\) AND checkin_date < \$4 AND checkout_date > \$5 ORDER BY checkin_date ASC`).
		WithArgs("room-101",
			string(domain.StatusCancelled), string(domain.StatusCheckedOut),
			date("2025-11-08"), date("2025-11-05")).
		WillReturnRows(bookingRows())

	clashes, err := repo.FindClashes(context.Background(), domain.ClashQuery{
		RoomID:       "room-101",
		CheckinDate:  date("2025-11-05"),
		CheckoutDate: date("2025-11-08"),
	}, domain.OverlapHalfOpen)

	require.NoError(t, err)
	assert.Empty(t, clashes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindClashes_ExcludesBookingID(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT .* FROM bookings WHERE room_id = \$1 AND status NOT IN \(\$2,\$3\) AND checkin_date <= \$4 AND checkout_date >= \$5 AND booking_id <> \$6 ORDER BY checkin_date ASC`).
		WithArgs("room-101",
			string(domain.StatusCancelled), string(domain.StatusCheckedOut),
			date("2025-11-08"), date("2025-11-04"), "BK12345").
		WillReturnRows(bookingRows())

	clashes, err := repo.FindClashes(context.Background(), domain.ClashQuery{
		RoomID:           "room-101",
		CheckinDate:      date("2025-11-04"),
		CheckoutDate:     date("2025-11-08"),
		ExcludeBookingID: ptr.Ptr("BK12345"),
	}, domain.OverlapClosedInterval)

	require.NoError(t, err)
	assert.Empty(t, clashes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList_WithFilters(t *testing.T) {
	repo, mock := newMockRepo(t)
	b := sampleBooking()

	mock.ExpectQuery(`SELECT .* FROM bookings WHERE status = \$1 AND room_id = \$2 ORDER BY checkin_date DESC`).
		WithArgs(string(domain.StatusConfirmed), "room-101").
		WillReturnRows(bookingRows(b))

	status := domain.StatusConfirmed
	roomID := "room-101"
	bookings, err := repo.List(context.Background(), domain.BookingsFilter{
		Status: &status,
		RoomID: &roomID,
	})

	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList_DateWindow(t *testing.T) {
	repo, mock := newMockRepo(t)

	// Попадание checkin_date ИЛИ checkout_date в окно
	start := date("2025-11-01")
	end := date("2025-11-30")

	mock.ExpectQuery(`SELECT .* FROM bookings WHERE \(\(checkin_date >= \$1 AND checkin_date <= \$2\) OR \(checkout_date >= \$3 AND checkout_date <= \$4\)\) ORDER BY checkin_date DESC`).
		WithArgs(start, end, start, end).
		WillReturnRows(bookingRows())

	_, err := repo.List(context.Background(), domain.BookingsFilter{
		StartDate: &start,
		EndDate:   &end,
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("UPDATE bookings SET").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}))

	_, err := repo.Update(context.Background(), sampleBooking())

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestDelete(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`DELETE FROM bookings WHERE booking_id = \$1`).
		WithArgs("BK12345").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(context.Background(), "BK12345")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`DELETE FROM bookings WHERE booking_id = \$1`).
		WithArgs("MISSING1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "MISSING1")

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCountOccupiedRooms(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT COUNT\(DISTINCT room_id\) FROM bookings WHERE status IN \(\$1,\$2\) AND checkin_date <= \$3 AND checkout_date >= \$4`).
		WithArgs(string(domain.StatusConfirmed), string(domain.StatusCheckedIn),
			date("2025-11-30"), date("2025-11-01")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(7)))

	count, err := repo.CountOccupiedRooms(context.Background(), date("2025-11-01"), date("2025-11-30"))

	require.NoError(t, err)
	assert.Equal(t, int64(7), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountByStatus(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT status, COUNT\(\*\) FROM bookings GROUP BY status`).
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).
			AddRow("Pending", int64(3)).
			AddRow("Confirmed", int64(5)))

	counts, err := repo.CountByStatus(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), counts[domain.StatusPending])
	assert.Equal(t, int64(5), counts[domain.StatusConfirmed])
}

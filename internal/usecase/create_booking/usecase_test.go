package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RMS-BookingService/internal/domain"
	"github.com/m04kA/RMS-BookingService/pkg/ptr"
)

// fakeRepo in-memory репозиторий для тестов usecase
type fakeRepo struct {
	bookings  []*domain.Booking
	createErr error
	nextID    int64
}

func (r *fakeRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.nextID++
	created := *b
	created.ID = r.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	r.bookings = append(r.bookings, &created)
	return &created, nil
}

func (r *fakeRepo) ExistsByBookingID(_ context.Context, bookingID string) (bool, error) {
	for _, b := range r.bookings {
		if b.BookingID == bookingID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRepo) FindClashes(_ context.Context, q domain.ClashQuery, policy domain.OverlapPolicy) ([]*domain.Booking, error) {
	var clashes []*domain.Booking
	for _, b := range r.bookings {
		if b.RoomID != q.RoomID || !b.IsActive() {
			continue
		}
		if q.ExcludeBookingID != nil && b.BookingID == *q.ExcludeBookingID {
			continue
		}
		if b.OverlapsRange(policy, q.CheckinDate, q.CheckoutDate) {
			clashes = append(clashes, b)
		}
	}
	return clashes, nil
}

// fakeTxManager выполняет функцию без настоящей транзакции
type fakeTxManager struct {
	calls int
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func date(s string) time.Time {
	t, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		panic(err)
	}
	return t
}

func validRequest() *Request {
	return &Request{
		BookingID:    "BK12345",
		GuestID:      "guest-001",
		RoomID:       "room-101",
		CheckinDate:  date("2025-11-01"),
		CheckoutDate: date("2025-11-05"),
	}
}

func newTestUseCase(repo *fakeRepo, policy domain.OverlapPolicy) (*UseCase, *fakeTxManager) {
	txm := &fakeTxManager{}
	return NewUseCase(repo, txm, policy, noopLogger{}), txm
}

func TestExecute_Success(t *testing.T) {
	repo := &fakeRepo{}
	uc, txm := newTestUseCase(repo, domain.OverlapClosedInterval)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, "BK12345", resp.BookingID)
	assert.Equal(t, string(domain.StatusPending), resp.Status, "status defaults to Pending")
	assert.Equal(t, float64(0), resp.PaidAmount, "paid amount defaults to 0")
	assert.Equal(t, 1, txm.calls, "check and insert run in one transaction")
}

func TestExecute_ExplicitStatusAndPaidAmount(t *testing.T) {
	repo := &fakeRepo{}
	uc, _ := newTestUseCase(repo, domain.OverlapClosedInterval)

	req := validRequest()
	req.Status = ptr.Ptr("Confirmed")
	req.PaidAmount = ptr.Ptr(500.0)

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "Confirmed", resp.Status)
	assert.Equal(t, 500.0, resp.PaidAmount)
}

func TestExecute_ValidationFailure(t *testing.T) {
	repo := &fakeRepo{}
	uc, txm := newTestUseCase(repo, domain.OverlapClosedInterval)

	req := validRequest()
	req.CheckoutDate = req.CheckinDate

	_, err := uc.Execute(context.Background(), req)

	var fieldErrs domain.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Contains(t, fieldErrs, "checkoutDate")
	assert.Equal(t, 0, txm.calls, "validation failure must not open a transaction")
	assert.Empty(t, repo.bookings)
}

func TestExecute_BookingIDTaken(t *testing.T) {
	repo := &fakeRepo{}
	uc, _ := newTestUseCase(repo, domain.OverlapClosedInterval)

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Тот же идентификатор, другой номер: конфликт идентификатора, не дат
	req := validRequest()
	req.RoomID = "room-999"

	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrBookingIDTaken)
	assert.Len(t, repo.bookings, 1)
}

func TestExecute_DateClash(t *testing.T) {
	repo := &fakeRepo{}
	uc, _ := newTestUseCase(repo, domain.OverlapClosedInterval)

	// Существующее бронирование: [2025-11-01, 2025-11-05]
	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Пересекающееся: [2025-11-04, 2025-11-08], тот же номер
	req := validRequest()
	req.BookingID = "BK67890"
	req.CheckinDate = date("2025-11-04")
	req.CheckoutDate = date("2025-11-08")

	_, err = uc.Execute(context.Background(), req)

	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "room-101", conflict.RoomID)
	require.Len(t, conflict.Clashes, 1)
	assert.Equal(t, "BK12345", conflict.Clashes[0].BookingID)
}

func TestExecute_TouchingEndpointClashesByDefault(t *testing.T) {
	repo := &fakeRepo{}
	uc, _ := newTestUseCase(repo, domain.OverlapClosedInterval)

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Заезд в день чужого выезда: [2025-11-05, 2025-11-08]
	req := validRequest()
	req.BookingID = "BK67890"
	req.CheckinDate = date("2025-11-05")
	req.CheckoutDate = date("2025-11-08")

	_, err = uc.Execute(context.Background(), req)

	var conflict *domain.ConflictError
	assert.ErrorAs(t, err, &conflict)
}

func TestExecute_TouchingEndpointAllowedWithSameDayTurnover(t *testing.T) {
	repo := &fakeRepo{}
	uc, _ := newTestUseCase(repo, domain.OverlapHalfOpen)

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.BookingID = "BK67890"
	req.CheckinDate = date("2025-11-05")
	req.CheckoutDate = date("2025-11-08")

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "BK67890", resp.BookingID)
}

func TestExecute_DifferentRoomNoClash(t *testing.T) {
	repo := &fakeRepo{}
	uc, _ := newTestUseCase(repo, domain.OverlapClosedInterval)

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Те же даты, другой номер
	req := validRequest()
	req.BookingID = "BK67890"
	req.RoomID = "room-202"

	_, err = uc.Execute(context.Background(), req)
	assert.NoError(t, err)
	assert.Len(t, repo.bookings, 2)
}

func TestExecute_CancelledBookingDoesNotClash(t *testing.T) {
	repo := &fakeRepo{}
	uc, _ := newTestUseCase(repo, domain.OverlapClosedInterval)

	first := validRequest()
	first.Status = ptr.Ptr("Cancelled")
	_, err := uc.Execute(context.Background(), first)
	require.NoError(t, err)

	// Те же даты и номер: отменённое бронирование не блокирует
	req := validRequest()
	req.BookingID = "BK67890"

	_, err = uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_CheckedOutBookingDoesNotClash(t *testing.T) {
	repo := &fakeRepo{}
	uc, _ := newTestUseCase(repo, domain.OverlapClosedInterval)

	first := validRequest()
	first.Status = ptr.Ptr("Checked-out")
	_, err := uc.Execute(context.Background(), first)
	require.NoError(t, err)

	req := validRequest()
	req.BookingID = "BK67890"

	_, err = uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_RepoFailureWrapsInternal(t *testing.T) {
	repo := &fakeRepo{createErr: errors.New("connection refused")}
	uc, _ := newTestUseCase(repo, domain.OverlapClosedInterval)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}

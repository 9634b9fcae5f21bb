package room

import (
	"context"
	"fmt"

	"github.com/m04kA/RMS-BookingService/pkg/dbmetrics"
	"github.com/m04kA/RMS-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий номерного фонда
// Используется отчётами как источник общего числа номеров;
// CRUD номеров живёт в админ-приложении и сюда не входит
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория номеров
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// CountAll возвращает общее количество номеров
func (r *Repository) CountAll(ctx context.Context) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("rooms").
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountAll - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountAll - scan count: %v", ErrExecQuery, err)
	}

	return count, nil
}

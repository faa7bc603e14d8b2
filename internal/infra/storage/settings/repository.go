package settings

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/NLS-BookingService/pkg/dbmetrics"
	"github.com/m04kA/NLS-BookingService/pkg/psqlbuilder"
)

// keyCancellationHours ключ настройки минимального числа часов до отмены
const keyCancellationHours = "cancellation_hours"

// Repository репозиторий одиночных настроек (key-value)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetCancellationHours возвращает настройку политики отмены.
// Отсутствие настройки трактуется как 0 - отмена всегда разрешена.
func (r *Repository) GetCancellationHours(ctx context.Context) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("value").
		From("settings").
		Where(squirrel.Eq{"key": keyCancellationHours}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: GetCancellationHours - build select query: %v", ErrBuildQuery, err)
	}

	var value string
	err = executor.QueryRowContext(ctx, query, args...).Scan(&value)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: GetCancellationHours - scan row: %v", ErrScanRow, err)
	}

	hours, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: GetCancellationHours - parse value %q: %v", ErrScanRow, value, err)
	}

	return hours, nil
}

// SaveCancellationHours сохраняет настройку политики отмены
func (r *Repository) SaveCancellationHours(ctx context.Context, hours int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("settings").
		Columns("key", "value", "updated_at").
		Values(keyCancellationHours, strconv.Itoa(hours), squirrel.Expr("NOW()")).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SaveCancellationHours - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: SaveCancellationHours - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}

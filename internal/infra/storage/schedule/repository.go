package schedule

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/NLS-BookingService/internal/domain"
	"github.com/m04kA/NLS-BookingService/pkg/dbmetrics"
	"github.com/m04kA/NLS-BookingService/pkg/psqlbuilder"
)

// uniqueViolation код PostgreSQL для нарушения уникальности
const uniqueViolation = "23505"

// Repository репозиторий недельного расписания и заблокированных дат
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetWeeklySchedule загружает недельное расписание целиком.
// Если расписание еще не сохранялось, возвращает ErrScheduleNotFound -
// сервисный слой подставит расписание по умолчанию.
func (r *Repository) GetWeeklySchedule(ctx context.Context) (domain.WeeklySchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("day", "enabled", "intervals").
		From("weekly_schedule").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWeeklySchedule - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWeeklySchedule - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	schedule := make(domain.WeeklySchedule)
	for rows.Next() {
		var day string
		var enabled bool
		var rawIntervals []byte

		if err := rows.Scan(&day, &enabled, &rawIntervals); err != nil {
			return nil, fmt.Errorf("%w: GetWeeklySchedule - scan row: %v", ErrScanRow, err)
		}

		var intervals []domain.TimeInterval
		if err := json.Unmarshal(rawIntervals, &intervals); err != nil {
			return nil, fmt.Errorf("%w: GetWeeklySchedule - unmarshal intervals for %s: %v", ErrScanRow, day, err)
		}

		schedule[day] = domain.DaySchedule{Enabled: enabled, Intervals: intervals}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetWeeklySchedule - rows error: %v", ErrScanRow, err)
	}

	if len(schedule) == 0 {
		return nil, ErrScheduleNotFound
	}

	return schedule, nil
}

// SaveWeeklySchedule сохраняет расписание целиком (upsert по каждому дню).
// Частичных обновлений нет - расписание всегда перезаписывается как единый документ.
func (r *Repository) SaveWeeklySchedule(ctx context.Context, schedule domain.WeeklySchedule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	for _, day := range domain.WeekdayNames {
		ds := schedule[day]

		intervals, err := json.Marshal(ds.Intervals)
		if err != nil {
			return fmt.Errorf("%w: SaveWeeklySchedule - marshal intervals for %s: %v", ErrBuildQuery, day, err)
		}

		query, args, err := psqlbuilder.Insert("weekly_schedule").
			Columns("day", "enabled", "intervals", "updated_at").
			Values(day, ds.Enabled, intervals, squirrel.Expr("NOW()")).
			Suffix("ON CONFLICT (day) DO UPDATE SET enabled = EXCLUDED.enabled, intervals = EXCLUDED.intervals, updated_at = NOW()").
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: SaveWeeklySchedule - build upsert query: %v", ErrBuildQuery, err)
		}

		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: SaveWeeklySchedule - execute upsert for %s: %v", ErrExecQuery, day, err)
		}
	}

	return nil
}

// GetBlockedDates возвращает все заблокированные даты в хронологическом порядке
func (r *Repository) GetBlockedDates(ctx context.Context) ([]*domain.BlockedDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "blocked_date", "reason", "created_at").
		From("blocked_dates").
		OrderBy("blocked_date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBlockedDates - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBlockedDates - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	blocked := make([]*domain.BlockedDate, 0)
	for rows.Next() {
		var bd domain.BlockedDate
		var createdAt sql.NullTime

		if err := rows.Scan(&bd.ID, &bd.Date, &bd.Reason, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: GetBlockedDates - scan row: %v", ErrScanRow, err)
		}
		bd.CreatedAt = createdAt.Time
		blocked = append(blocked, &bd)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetBlockedDates - rows error: %v", ErrScanRow, err)
	}

	return blocked, nil
}

// IsDateBlocked проверяет, заблокирована ли конкретная дата
func (r *Repository) IsDateBlocked(ctx context.Context, date time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("blocked_dates").
		Where(squirrel.Eq{"blocked_date": date.Format(domain.DateFormat)}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: IsDateBlocked - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: IsDateBlocked - scan row: %v", ErrScanRow, err)
	}

	return true, nil
}

// AddBlockedDate блокирует дату. Повторная блокировка той же даты - ошибка.
func (r *Repository) AddBlockedDate(ctx context.Context, date time.Time, reason *string) (*domain.BlockedDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("blocked_dates").
		Columns("blocked_date", "reason").
		Values(date.Format(domain.DateFormat), reason).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: AddBlockedDate - build insert query: %v", ErrBuildQuery, err)
	}

	bd := &domain.BlockedDate{Date: date, Reason: reason}
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(&bd.ID, &createdAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return nil, ErrDateAlreadyBlocked
		}
		return nil, fmt.Errorf("%w: AddBlockedDate - execute insert: %v", ErrExecQuery, err)
	}
	bd.CreatedAt = createdAt.Time

	return bd, nil
}

// RemoveBlockedDate снимает блокировку даты по ID
func (r *Repository) RemoveBlockedDate(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blocked_dates").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: RemoveBlockedDate - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: RemoveBlockedDate - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: RemoveBlockedDate - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBlockedDateNotFound
	}

	return nil
}

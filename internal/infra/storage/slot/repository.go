package slot

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/PKC-SchedulerService/internal/domain"
	"github.com/m04kA/PKC-SchedulerService/pkg/dbmetrics"
	"github.com/m04kA/PKC-SchedulerService/pkg/psqlbuilder"
)

// SlotsFilter фильтр для выборки слотов провайдера
type SlotsFilter struct {
	ProviderID string
	Day        *string            // lowercase имя дня недели (опционально)
	Status     *domain.SlotStatus // статус слота (опционально)
}

// Repository репозиторий для работы со слотами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateBatch вставляет пачку слотов одним запросом.
// Генерация сетки на неделю — это до 112 строк, поэтому вставляем пакетно.
// Если в контексте передана активная транзакция, использует её.
func (r *Repository) CreateBatch(ctx context.Context, slots []*domain.Slot) error {
	if len(slots) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("slots").
		Columns(
			"slot_id",
			"provider_id",
			"day",
			"start_time",
			"end_time",
			"status",
		)

	for _, s := range slots {
		insertBuilder = insertBuilder.Values(
			s.SlotID,
			s.ProviderID,
			s.Day,
			s.StartTime,
			s.EndTime,
			s.Status,
		)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: CreateBatch - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: CreateBatch - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// DeleteByProvider удаляет все слоты провайдера (перед полной регенерацией)
func (r *Repository) DeleteByProvider(ctx context.Context, providerID string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("slots").
		Where(squirrel.Eq{"provider_id": providerID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteByProvider - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteByProvider - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByProvider получает слоты провайдера с опциональной фильтрацией
// по дню недели и статусу, отсортированные по дню и времени начала
func (r *Repository) GetByProvider(ctx context.Context, filter SlotsFilter) ([]*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"slot_id",
		"provider_id",
		"day",
		"start_time",
		"end_time",
		"status",
		"created_at",
		"updated_at",
	).
		From("slots").
		Where(squirrel.Eq{"provider_id": filter.ProviderID})

	if filter.Day != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"day": *filter.Day})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	selectBuilder = selectBuilder.OrderBy("day ASC", "start_time ASC")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProvider - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProvider - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSlots(rows)
}

// GetByID получает слот по идентификатору
func (r *Repository) GetByID(ctx context.Context, slotID string) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"slot_id",
		"provider_id",
		"day",
		"start_time",
		"end_time",
		"status",
		"created_at",
		"updated_at",
	).
		From("slots").
		Where(squirrel.Eq{"slot_id": slotID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Slot
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.SlotID,
		&s.ProviderID,
		&s.Day,
		&s.StartTime,
		&s.EndTime,
		&s.Status,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan slot: %v", ErrScanRow, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

// UpdateStatus обновляет статус слота
// Повторная установка того же статуса — допустимый no-op
func (r *Repository) UpdateStatus(ctx context.Context, slotID string, status domain.SlotStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("slots").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"slot_id": slotID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotNotFound
	}

	return nil
}

// CountByProvider возвращает количество слотов провайдера
// Используется для ленивой генерации: сетка создаётся только если пуста
func (r *Repository) CountByProvider(ctx context.Context, providerID string) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("slots").
		Where(squirrel.Eq{"provider_id": providerID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountByProvider - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByProvider - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// scanSlots сканирует результаты запроса в слайс слотов
func (r *Repository) scanSlots(rows *sql.Rows) ([]*domain.Slot, error) {
	slots := make([]*domain.Slot, 0)

	for rows.Next() {
		var s domain.Slot
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&s.SlotID,
			&s.ProviderID,
			&s.Day,
			&s.StartTime,
			&s.EndTime,
			&s.Status,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanSlots - scan row: %v", ErrScanRow, err)
		}

		s.CreatedAt = createdAt.Time
		s.UpdatedAt = updatedAt.Time

		slots = append(slots, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

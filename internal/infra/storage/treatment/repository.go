package treatment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/PKC-SchedulerService/internal/domain"
	"github.com/m04kA/PKC-SchedulerService/pkg/dbmetrics"
	"github.com/m04kA/PKC-SchedulerService/pkg/psqlbuilder"
	"github.com/m04kA/PKC-SchedulerService/pkg/types"
)

const uniqueViolationCode = "23505"

// Repository репозиторий для работы с планами лечения и сессиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория планов лечения
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreatePlan создает план лечения
// Вызывается аллокатором внутри сериализуемой транзакции вместе со всеми
// сессиями плана: либо сохраняется весь план целиком, либо ничего
func (r *Repository) CreatePlan(ctx context.Context, plan *domain.TreatmentPlan) (*domain.TreatmentPlan, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("treatment_plans").
		Columns(
			"treatment_plan_id",
			"patient_id",
			"practitioner_id",
			"treatment_name",
			"treatment_type",
			"start_date",
			"end_date",
			"total_sessions",
			"total_cost",
			"status",
		).
		Values(
			plan.TreatmentPlanID,
			plan.PatientID,
			plan.PractitionerID,
			plan.TreatmentName,
			plan.TreatmentType,
			plan.StartDate,
			plan.EndDate,
			plan.TotalSessions,
			plan.TotalCost,
			plan.Status,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreatePlan - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: CreatePlan - execute insert: %v", ErrExecQuery, err)
	}

	plan.CreatedAt = createdAt.Time
	plan.UpdatedAt = updatedAt.Time

	return plan, nil
}

// CreateSession создает сессию плана лечения
// Нарушение уникального индекса (therapist_id, session_date, start_time)
// среди неотменённых сессий транслируется в ErrSessionSlotTaken
func (r *Repository) CreateSession(ctx context.Context, session *domain.TreatmentSession) (*domain.TreatmentSession, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("treatment_sessions").
		Columns(
			"session_id",
			"treatment_plan_id",
			"session_number",
			"session_date",
			"start_time",
			"end_time",
			"therapist_id",
			"staff_id",
			"procedures_performed",
			"duration_minutes",
			"status",
		).
		Values(
			session.SessionID,
			session.TreatmentPlanID,
			session.SessionNumber,
			session.SessionDate,
			session.StartTime,
			session.EndTime,
			session.TherapistID,
			session.StaffID,
			pq.Array(session.ProceduresPerformed),
			session.DurationMinutes,
			session.Status,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateSession - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSessionSlotTaken
		}
		return nil, fmt.Errorf("%w: CreateSession - execute insert: %v", ErrExecQuery, err)
	}

	session.CreatedAt = createdAt.Time
	session.UpdatedAt = updatedAt.Time

	return session, nil
}

// CountSessionsAt возвращает количество неотменённых сессий терапевта
// на конкретную дату и время начала. Ноль означает свободный слот.
func (r *Repository) CountSessionsAt(ctx context.Context, therapistID string, date time.Time, startTime types.TimeString) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("treatment_sessions").
		Where(squirrel.Eq{"therapist_id": therapistID}).
		Where(squirrel.Eq{"session_date": date}).
		Where(squirrel.Eq{"start_time": startTime}).
		Where(squirrel.NotEq{"status": domain.SessionStatusCancelled}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountSessionsAt - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountSessionsAt - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// GetPlanByID получает план лечения по идентификатору
func (r *Repository) GetPlanByID(ctx context.Context, planID string) (*domain.TreatmentPlan, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := planColumns().
		Where(squirrel.Eq{"treatment_plan_id": planID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetPlanByID - build select query: %v", ErrBuildQuery, err)
	}

	plan, err := r.scanPlan(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}

	return plan, nil
}

// GetPlansByPatient получает планы лечения пациента, свежие первыми
func (r *Repository) GetPlansByPatient(ctx context.Context, patientID string) ([]*domain.TreatmentPlan, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := planColumns().
		Where(squirrel.Eq{"patient_id": patientID}).
		OrderBy("start_date DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetPlansByPatient - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetPlansByPatient - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	plans := make([]*domain.TreatmentPlan, 0)
	for rows.Next() {
		plan, err := r.scanPlan(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetPlansByPatient - rows error: %v", ErrScanRow, err)
	}

	return plans, nil
}

// GetSessionsByPlan получает сессии плана в порядке следования
func (r *Repository) GetSessionsByPlan(ctx context.Context, planID string) ([]*domain.TreatmentSession, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"session_id",
		"treatment_plan_id",
		"session_number",
		"session_date",
		"start_time",
		"end_time",
		"therapist_id",
		"staff_id",
		"procedures_performed",
		"duration_minutes",
		"status",
		"created_at",
		"updated_at",
	).
		From("treatment_sessions").
		Where(squirrel.Eq{"treatment_plan_id": planID}).
		OrderBy("session_number ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetSessionsByPlan - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetSessionsByPlan - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	sessions := make([]*domain.TreatmentSession, 0)
	for rows.Next() {
		var s domain.TreatmentSession
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&s.SessionID,
			&s.TreatmentPlanID,
			&s.SessionNumber,
			&s.SessionDate,
			&s.StartTime,
			&s.EndTime,
			&s.TherapistID,
			&s.StaffID,
			pq.Array(&s.ProceduresPerformed),
			&s.DurationMinutes,
			&s.Status,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: GetSessionsByPlan - scan row: %v", ErrScanRow, err)
		}

		s.CreatedAt = createdAt.Time
		s.UpdatedAt = updatedAt.Time

		sessions = append(sessions, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetSessionsByPlan - rows error: %v", ErrScanRow, err)
	}

	return sessions, nil
}

func planColumns() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"treatment_plan_id",
		"patient_id",
		"practitioner_id",
		"treatment_name",
		"treatment_type",
		"start_date",
		"end_date",
		"total_sessions",
		"total_cost",
		"status",
		"created_at",
		"updated_at",
	).From("treatment_plans")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanPlan(row rowScanner) (*domain.TreatmentPlan, error) {
	var plan domain.TreatmentPlan
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&plan.TreatmentPlanID,
		&plan.PatientID,
		&plan.PractitionerID,
		&plan.TreatmentName,
		&plan.TreatmentType,
		&plan.StartDate,
		&plan.EndDate,
		&plan.TotalSessions,
		&plan.TotalCost,
		&plan.Status,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, sql.ErrNoRows
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scanPlan - scan row: %v", ErrScanRow, err)
	}

	plan.CreatedAt = createdAt.Time
	plan.UpdatedAt = updatedAt.Time

	return &plan, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolationCode
	}
	return false
}

package appointment

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
)

const uniqueViolationCode = "23505"

// Repository репозиторий для работы с записями на приём
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей на приём
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает запись на приём
// Нарушение уникального индекса активных записей транслируется в ErrTimeConflict:
// проверка доступности перед вставкой не защищает от гонки двух бронирований,
// жёсткую гарантию даёт только индекс
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"appointment_id",
			"patient_id",
			"practitioner_id",
			"therapist_id",
			"appointment_date",
			"start_time",
			"end_time",
			"service_type",
			"consultation_type",
			"special_instructions",
			"preparation_notes",
			"status",
		).
		Values(
			appt.AppointmentID,
			appt.PatientID,
			appt.PractitionerID,
			appt.TherapistID,
			appt.AppointmentDate,
			appt.StartTime,
			appt.EndTime,
			appt.ServiceType,
			appt.ConsultationType,
			appt.SpecialInstructions,
			appt.PreparationNotes,
			appt.Status,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrTimeConflict
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return appt, nil
}

// GetByID получает запись на приём по идентификатору
func (r *Repository) GetByID(ctx context.Context, appointmentID string) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"appointment_id",
		"patient_id",
		"practitioner_id",
		"therapist_id",
		"appointment_date",
		"start_time",
		"end_time",
		"service_type",
		"consultation_type",
		"special_instructions",
		"preparation_notes",
		"status",
		"created_at",
		"updated_at",
	).
		From("appointments").
		Where(squirrel.Eq{"appointment_id": appointmentID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var a domain.Appointment
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&a.AppointmentID,
		&a.PatientID,
		&a.PractitionerID,
		&a.TherapistID,
		&a.AppointmentDate,
		&a.StartTime,
		&a.EndTime,
		&a.ServiceType,
		&a.ConsultationType,
		&a.SpecialInstructions,
		&a.PreparationNotes,
		&a.Status,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	a.CreatedAt = createdAt.Time
	a.UpdatedAt = updatedAt.Time

	return &a, nil
}

// GetByPatient получает все записи пациента на приём, свежие первыми
func (r *Repository) GetByPatient(ctx context.Context, patientID string) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"appointment_id",
		"patient_id",
		"practitioner_id",
		"therapist_id",
		"appointment_date",
		"start_time",
		"end_time",
		"service_type",
		"consultation_type",
		"special_instructions",
		"preparation_notes",
		"status",
		"created_at",
		"updated_at",
	).
		From("appointments").
		Where(squirrel.Eq{"patient_id": patientID}).
		OrderBy("appointment_date DESC", "start_time DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByPatient - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPatient - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var appointments []*domain.Appointment
	for rows.Next() {
		var a domain.Appointment
		var createdAt, updatedAt sql.NullTime

		err = rows.Scan(
			&a.AppointmentID,
			&a.PatientID,
			&a.PractitionerID,
			&a.TherapistID,
			&a.AppointmentDate,
			&a.StartTime,
			&a.EndTime,
			&a.ServiceType,
			&a.ConsultationType,
			&a.SpecialInstructions,
			&a.PreparationNotes,
			&a.Status,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByPatient - scan appointment: %v", ErrScanRow, err)
		}

		a.CreatedAt = createdAt.Time
		a.UpdatedAt = updatedAt.Time
		appointments = append(appointments, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByPatient - iterate rows: %v", ErrScanRow, err)
	}

	return appointments, nil
}

// CountActiveAt возвращает количество активных записей врача на дату,
// начинающихся в запрошенное время. timePrefix — "HH:MM": сравнение по
// префиксу игнорирует секунды в TIME колонке.
func (r *Repository) CountActiveAt(ctx context.Context, practitionerID string, date time.Time, timePrefix string) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	activeStatuses := make([]string, len(domain.ActiveAppointmentStatuses))
	for i, s := range domain.ActiveAppointmentStatuses {
		activeStatuses[i] = string(s)
	}

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("appointments").
		Where(squirrel.Eq{"practitioner_id": practitionerID}).
		Where(squirrel.Eq{"appointment_date": date}).
		Where(squirrel.Like{"start_time::text": timePrefix + "%"}).
		Where(squirrel.Eq{"status": activeStatuses}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountActiveAt - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountActiveAt - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolationCode
	}
	return false
}

package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PKC-SchedulerService/internal/domain"
)

var appointmentColumns = []string{
	"appointment_id", "patient_id", "practitioner_id", "therapist_id",
	"appointment_date", "start_time", "end_time", "service_type", "consultation_type",
	"special_instructions", "preparation_notes", "status", "created_at", "updated_at",
}

func date(value string) time.Time {
	d, err := time.Parse(domain.DateFormat, value)
	if err != nil {
		panic(err)
	}
	return d
}

func TestCreate(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO appointments .+ RETURNING created_at, updated_at`).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	created, err := repo.Create(context.Background(), &domain.Appointment{
		AppointmentID:    "appt-1",
		PatientID:        "patient-1",
		PractitionerID:   "doc-1",
		AppointmentDate:  date("2026-03-02"),
		StartTime:        "10:00",
		EndTime:          "10:30",
		ServiceType:      "consultation",
		ConsultationType: "initial",
		Status:           domain.AppointmentStatusScheduled,
	})
	require.NoError(t, err)

	assert.Equal(t, now, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_UniqueViolation(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery(`INSERT INTO appointments .+ RETURNING created_at, updated_at`).
		WillReturnError(&pq.Error{Code: "23505"})

	_, err = repo.Create(context.Background(), &domain.Appointment{
		AppointmentID:   "appt-1",
		PatientID:       "patient-1",
		PractitionerID:  "doc-1",
		AppointmentDate: date("2026-03-02"),
		StartTime:       "10:00",
		EndTime:         "10:30",
		ServiceType:     "consultation",
		Status:          domain.AppointmentStatusScheduled,
	})
	assert.ErrorIs(t, err, ErrTimeConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery(`SELECT .+ FROM appointments WHERE appointment_id = \$1`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(appointmentColumns))

	_, err = repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByPatient(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows(appointmentColumns).
		AddRow("appt-2", "patient-1", "doc-1", nil, date("2026-03-09"), "11:00:00", "11:30:00",
			"consultation", "follow-up", nil, nil, "scheduled", now, now).
		AddRow("appt-1", "patient-1", "doc-1", nil, date("2026-03-02"), "10:00:00", "10:30:00",
			"consultation", "initial", nil, nil, "completed", now, now)

	mock.ExpectQuery(`SELECT .+ FROM appointments WHERE patient_id = \$1 ORDER BY appointment_date DESC, start_time DESC`).
		WithArgs("patient-1").
		WillReturnRows(rows)

	appointments, err := repo.GetByPatient(context.Background(), "patient-1")
	require.NoError(t, err)

	require.Len(t, appointments, 2)
	assert.Equal(t, "appt-2", appointments[0].AppointmentID)
	assert.Equal(t, "11:00", appointments[0].StartTime.String())
	assert.Equal(t, domain.AppointmentStatusCompleted, appointments[1].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountActiveAt(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM appointments WHERE practitioner_id = \$1 AND appointment_date = \$2 AND start_time::text LIKE \$3 AND status IN \(\$4,\$5\)`).
		WithArgs("doc-1", date("2026-03-02"), "10:00%", "scheduled", "confirmed").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	count, err := repo.CountActiveAt(context.Background(), "doc-1", date("2026-03-02"), "10:00")
	require.NoError(t, err)

	assert.Equal(t, 1, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

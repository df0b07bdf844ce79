package treatment

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PKC-SchedulerService/internal/domain"
	"github.com/m04kA/PKC-SchedulerService/pkg/types"
)

var planColumnNames = []string{
	"treatment_plan_id", "patient_id", "practitioner_id", "treatment_name", "treatment_type",
	"start_date", "end_date", "total_sessions", "total_cost", "status", "created_at", "updated_at",
}

func date(value string) time.Time {
	d, err := time.Parse(domain.DateFormat, value)
	if err != nil {
		panic(err)
	}
	return d
}

func TestCreatePlan(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO treatment_plans .+ RETURNING created_at, updated_at`).
		WithArgs(
			"plan-1", "patient-1", "doc-1", "Abhyanga", "massage",
			date("2026-03-02"), date("2026-03-30"), 5, 0.0, "planned",
		).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	plan, err := repo.CreatePlan(context.Background(), &domain.TreatmentPlan{
		TreatmentPlanID: "plan-1",
		PatientID:       "patient-1",
		PractitionerID:  "doc-1",
		TreatmentName:   "Abhyanga",
		TreatmentType:   "massage",
		StartDate:       date("2026-03-02"),
		EndDate:         date("2026-03-30"),
		TotalSessions:   5,
		Status:          domain.PlanStatusPlanned,
	})
	require.NoError(t, err)

	assert.Equal(t, now, plan.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateSession_UniqueViolation(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery(`INSERT INTO treatment_sessions .+ RETURNING created_at, updated_at`).
		WillReturnError(&pq.Error{Code: "23505"})

	_, err = repo.CreateSession(context.Background(), &domain.TreatmentSession{
		SessionID:           "sess-1",
		TreatmentPlanID:     "plan-1",
		SessionNumber:       1,
		SessionDate:         date("2026-03-02"),
		StartTime:           "09:00",
		EndTime:             "09:30",
		TherapistID:         "ther-1",
		StaffID:             "staff-1",
		ProceduresPerformed: []string{"Abhyanga"},
		DurationMinutes:     30,
		Status:              domain.SessionStatusScheduled,
	})
	assert.ErrorIs(t, err, ErrSessionSlotTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountSessionsAt(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM treatment_sessions WHERE therapist_id = \$1 AND session_date = \$2 AND start_time = \$3 AND status <> \$4`).
		WithArgs("ther-1", date("2026-03-02"), "09:00", "cancelled").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	count, err := repo.CountSessionsAt(context.Background(), "ther-1", date("2026-03-02"), types.TimeString("09:00"))
	require.NoError(t, err)

	assert.Equal(t, 1, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPlanByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery(`SELECT .+ FROM treatment_plans WHERE treatment_plan_id = \$1`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(planColumnNames))

	_, err = repo.GetPlanByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrPlanNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPlansByPatient(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows(planColumnNames).
		AddRow("plan-2", "patient-1", "doc-1", "Shirodhara", "therapy",
			date("2026-04-01"), date("2026-04-29"), 5, 0.0, "planned", now, now).
		AddRow("plan-1", "patient-1", "doc-1", "Abhyanga", "massage",
			date("2026-03-02"), date("2026-03-30"), 5, 0.0, "completed", now, now)

	mock.ExpectQuery(`SELECT .+ FROM treatment_plans WHERE patient_id = \$1 ORDER BY start_date DESC`).
		WithArgs("patient-1").
		WillReturnRows(rows)

	plans, err := repo.GetPlansByPatient(context.Background(), "patient-1")
	require.NoError(t, err)

	require.Len(t, plans, 2)
	assert.Equal(t, "plan-2", plans[0].TreatmentPlanID)
	assert.Equal(t, domain.PlanStatusCompleted, plans[1].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetSessionsByPlan(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"session_id", "treatment_plan_id", "session_number", "session_date", "start_time", "end_time",
		"therapist_id", "staff_id", "procedures_performed", "duration_minutes", "status", "created_at", "updated_at",
	}).
		AddRow("sess-1", "plan-1", 1, date("2026-03-02"), "09:00:00", "09:30:00",
			"ther-1", "staff-1", "{Abhyanga}", 30, "scheduled", now, now).
		AddRow("sess-2", "plan-1", 2, date("2026-03-09"), "09:00:00", "09:30:00",
			"ther-1", "staff-2", "{Abhyanga}", 30, "scheduled", now, now)

	mock.ExpectQuery(`SELECT .+ FROM treatment_sessions WHERE treatment_plan_id = \$1 ORDER BY session_number ASC`).
		WithArgs("plan-1").
		WillReturnRows(rows)

	sessions, err := repo.GetSessionsByPlan(context.Background(), "plan-1")
	require.NoError(t, err)

	require.Len(t, sessions, 2)
	assert.Equal(t, 1, sessions[0].SessionNumber)
	assert.Equal(t, "09:00", sessions[0].StartTime.String())
	assert.Equal(t, []string{"Abhyanga"}, sessions[1].ProceduresPerformed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

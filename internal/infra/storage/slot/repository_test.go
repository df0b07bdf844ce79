package slot

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PKC-SchedulerService/internal/domain"
	"github.com/m04kA/PKC-SchedulerService/pkg/ptr"
)

var slotColumns = []string{
	"slot_id", "provider_id", "day", "start_time", "end_time", "status", "created_at", "updated_at",
}

func TestCreateBatch(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectExec(`INSERT INTO slots \(slot_id,provider_id,day,start_time,end_time,status\) VALUES \(\$1,\$2,\$3,\$4,\$5,\$6\),\(\$7,\$8,\$9,\$10,\$11,\$12\)`).
		WithArgs(
			"s1", "doc-1", "monday", "09:00", "09:30", "free",
			"s2", "doc-1", "monday", "09:30", "10:00", "free",
		).
		WillReturnResult(sqlmock.NewResult(0, 2))

	err = repo.CreateBatch(context.Background(), []*domain.Slot{
		{SlotID: "s1", ProviderID: "doc-1", Day: "monday", StartTime: "09:00", EndTime: "09:30", Status: domain.SlotStatusFree},
		{SlotID: "s2", ProviderID: "doc-1", Day: "monday", StartTime: "09:30", EndTime: "10:00", Status: domain.SlotStatusFree},
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBatch_EmptyInput(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	require.NoError(t, repo.CreateBatch(context.Background(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByProvider_WithFilters(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows(slotColumns).
		AddRow("s1", "doc-1", "monday", "09:00:00", "09:30:00", "free", now, now).
		AddRow("s2", "doc-1", "monday", "09:30:00", "10:00:00", "free", now, now)

	mock.ExpectQuery(`SELECT .+ FROM slots WHERE provider_id = \$1 AND day = \$2 AND status = \$3 ORDER BY day ASC, start_time ASC`).
		WithArgs("doc-1", "monday", "free").
		WillReturnRows(rows)

	status := domain.SlotStatusFree
	slots, err := repo.GetByProvider(context.Background(), SlotsFilter{
		ProviderID: "doc-1",
		Day:        ptr.Ptr("monday"),
		Status:     &status,
	})
	require.NoError(t, err)

	require.Len(t, slots, 2)
	assert.Equal(t, "09:00", slots[0].StartTime.String())
	assert.Equal(t, "09:30", slots[1].StartTime.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByProvider_Empty(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery(`SELECT .+ FROM slots WHERE provider_id = \$1 ORDER BY day ASC, start_time ASC`).
		WithArgs("doc-1").
		WillReturnRows(sqlmock.NewRows(slotColumns))

	slots, err := repo.GetByProvider(context.Background(), SlotsFilter{ProviderID: "doc-1"})
	require.NoError(t, err)

	assert.Empty(t, slots)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery(`SELECT .+ FROM slots WHERE slot_id = \$1`).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows(slotColumns))

	_, err = repo.GetByID(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrSlotNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectExec(`UPDATE slots SET status = \$1, updated_at = NOW\(\) WHERE slot_id = \$2`).
		WithArgs("booked", "s1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.UpdateStatus(context.Background(), "s1", domain.SlotStatusBooked)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectExec(`UPDATE slots SET status = \$1, updated_at = NOW\(\) WHERE slot_id = \$2`).
		WithArgs("booked", "ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.UpdateStatus(context.Background(), "ghost", domain.SlotStatusBooked)
	assert.ErrorIs(t, err, ErrSlotNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteByProvider(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectExec(`DELETE FROM slots WHERE provider_id = \$1`).
		WithArgs("doc-1").
		WillReturnResult(sqlmock.NewResult(0, 112))

	require.NoError(t, repo.DeleteByProvider(context.Background(), "doc-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountByProvider(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM slots WHERE provider_id = \$1`).
		WithArgs("doc-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(112))

	count, err := repo.CountByProvider(context.Background(), "doc-1")
	require.NoError(t, err)

	assert.Equal(t, 112, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

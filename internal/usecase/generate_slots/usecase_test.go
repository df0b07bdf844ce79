package generate_slots

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PKC-SchedulerService/internal/domain"
	"github.com/m04kA/PKC-SchedulerService/internal/integrations/staffservice"
)

type fakeSlotRepo struct {
	slots   map[string][]*domain.Slot
	deletes []string
}

func newFakeSlotRepo() *fakeSlotRepo {
	return &fakeSlotRepo{slots: make(map[string][]*domain.Slot)}
}

func (f *fakeSlotRepo) CreateBatch(_ context.Context, slots []*domain.Slot) error {
	for _, slot := range slots {
		f.slots[slot.ProviderID] = append(f.slots[slot.ProviderID], slot)
	}
	return nil
}

func (f *fakeSlotRepo) DeleteByProvider(_ context.Context, providerID string) error {
	f.deletes = append(f.deletes, providerID)
	f.slots[providerID] = nil
	return nil
}

func (f *fakeSlotRepo) CountByProvider(_ context.Context, providerID string) (int, error) {
	return len(f.slots[providerID]), nil
}

type fakeStaffClient struct {
	practitioners map[string]*staffservice.Practitioner
}

func (f *fakeStaffClient) GetPractitioner(_ context.Context, practitionerID string) (*staffservice.Practitioner, error) {
	p, ok := f.practitioners[practitionerID]
	if !ok {
		return nil, staffservice.ErrPractitionerNotFound
	}
	return p, nil
}

func (f *fakeStaffClient) ListPractitioners(_ context.Context) ([]staffservice.Practitioner, error) {
	var result []staffservice.Practitioner
	for _, p := range f.practitioners {
		result = append(result, *p)
	}
	return result, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(repo *fakeSlotRepo, staff *fakeStaffClient) *UseCase {
	return NewUseCase(repo, staff, fakeTxManager{}, nopLogger{})
}

func slotsByDay(slots []*domain.Slot, day string) []*domain.Slot {
	var result []*domain.Slot
	for _, slot := range slots {
		if slot.Day == day {
			result = append(result, slot)
		}
	}
	return result
}

func TestExecute_DefaultSchedule(t *testing.T) {
	repo := newFakeSlotRepo()
	staff := &fakeStaffClient{practitioners: map[string]*staffservice.Practitioner{
		"doc-1": {PractitionerID: "doc-1"},
	}}
	uc := newTestUseCase(repo, staff)

	resp, err := uc.Execute(context.Background(), "doc-1", false)
	require.NoError(t, err)

	// 7 дней по 16 интервалов: будни свободны, выходные заняты заглушками
	assert.Equal(t, 112, resp.SlotsCreated)
	assert.False(t, resp.Skipped)

	monday := slotsByDay(repo.slots["doc-1"], "monday")
	require.Len(t, monday, 16)
	assert.Equal(t, domain.SlotStatusFree, monday[0].Status)
	assert.Equal(t, "09:00", monday[0].StartTime.String())

	saturday := slotsByDay(repo.slots["doc-1"], "saturday")
	require.Len(t, saturday, 16)
	for _, slot := range saturday {
		assert.Equal(t, domain.SlotStatusLeave, slot.Status)
	}
}

func TestExecute_LeaveDayGetsPlaceholders(t *testing.T) {
	repo := newFakeSlotRepo()
	staff := &fakeStaffClient{practitioners: map[string]*staffservice.Practitioner{
		"doc-1": {PractitionerID: "doc-1", LeaveDays: []string{"wednesday"}},
	}}
	uc := newTestUseCase(repo, staff)

	_, err := uc.Execute(context.Background(), "doc-1", false)
	require.NoError(t, err)

	wednesday := slotsByDay(repo.slots["doc-1"], "wednesday")
	require.Len(t, wednesday, 16)
	for _, slot := range wednesday {
		assert.Equal(t, domain.SlotStatusLeave, slot.Status)
	}
}

func TestExecute_CustomWorkingHours(t *testing.T) {
	schedule := domain.DefaultWeekSchedule()
	for i := range schedule {
		if schedule[i].Day == "monday" {
			schedule[i].StartTime = "10:00"
			schedule[i].EndTime = "14:00"
		}
	}
	repo := newFakeSlotRepo()
	staff := &fakeStaffClient{practitioners: map[string]*staffservice.Practitioner{
		"doc-1": {PractitionerID: "doc-1", WorkingHours: schedule},
	}}
	uc := newTestUseCase(repo, staff)

	_, err := uc.Execute(context.Background(), "doc-1", false)
	require.NoError(t, err)

	monday := slotsByDay(repo.slots["doc-1"], "monday")
	require.Len(t, monday, 8)
	assert.Equal(t, "10:00", monday[0].StartTime.String())
	assert.Equal(t, "14:00", monday[7].EndTime.String())
}

func TestExecute_SkipsExistingWithoutRegenerate(t *testing.T) {
	repo := newFakeSlotRepo()
	repo.slots["doc-1"] = []*domain.Slot{{SlotID: "existing", ProviderID: "doc-1", Day: "monday"}}
	staff := &fakeStaffClient{practitioners: map[string]*staffservice.Practitioner{
		"doc-1": {PractitionerID: "doc-1"},
	}}
	uc := newTestUseCase(repo, staff)

	resp, err := uc.Execute(context.Background(), "doc-1", false)
	require.NoError(t, err)

	assert.True(t, resp.Skipped)
	assert.Zero(t, resp.SlotsCreated)
	assert.Empty(t, repo.deletes)
	require.Len(t, repo.slots["doc-1"], 1)
	assert.Equal(t, "existing", repo.slots["doc-1"][0].SlotID)
}

func TestExecute_RegenerateReplacesExisting(t *testing.T) {
	repo := newFakeSlotRepo()
	repo.slots["doc-1"] = []*domain.Slot{{SlotID: "stale", ProviderID: "doc-1", Day: "monday"}}
	staff := &fakeStaffClient{practitioners: map[string]*staffservice.Practitioner{
		"doc-1": {PractitionerID: "doc-1"},
	}}
	uc := newTestUseCase(repo, staff)

	resp, err := uc.Execute(context.Background(), "doc-1", true)
	require.NoError(t, err)

	assert.False(t, resp.Skipped)
	assert.Equal(t, 112, resp.SlotsCreated)
	assert.Equal(t, []string{"doc-1"}, repo.deletes)
	assert.Len(t, repo.slots["doc-1"], 112)
}

func TestExecute_PractitionerNotFound(t *testing.T) {
	uc := newTestUseCase(newFakeSlotRepo(), &fakeStaffClient{practitioners: map[string]*staffservice.Practitioner{}})

	_, err := uc.Execute(context.Background(), "ghost", false)
	assert.ErrorIs(t, err, ErrPractitionerNotFound)
}

func TestExecute_EmptyProviderID(t *testing.T) {
	uc := newTestUseCase(newFakeSlotRepo(), &fakeStaffClient{})

	_, err := uc.Execute(context.Background(), "", false)
	assert.ErrorIs(t, err, ErrInvalidData)
}

func TestExecuteAll(t *testing.T) {
	repo := newFakeSlotRepo()
	staff := &fakeStaffClient{practitioners: map[string]*staffservice.Practitioner{
		"doc-1": {PractitionerID: "doc-1"},
		"doc-2": {PractitionerID: "doc-2"},
	}}
	uc := newTestUseCase(repo, staff)

	resp, err := uc.ExecuteAll(context.Background(), false)
	require.NoError(t, err)

	assert.Len(t, resp.Providers, 2)
	assert.Equal(t, 224, resp.Total)
}

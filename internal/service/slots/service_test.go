package slots

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PKC-SchedulerService/internal/domain"
	slotRepo "github.com/m04kA/PKC-SchedulerService/internal/infra/storage/slot"
	"github.com/m04kA/PKC-SchedulerService/internal/service/slots/models"
	"github.com/m04kA/PKC-SchedulerService/internal/usecase/generate_slots"
	"github.com/m04kA/PKC-SchedulerService/pkg/ptr"
)

type fakeSlotRepo struct {
	byProvider map[string][]*domain.Slot
	byID       map[string]*domain.Slot
	updated    map[string]domain.SlotStatus
}

func newFakeSlotRepo() *fakeSlotRepo {
	return &fakeSlotRepo{
		byProvider: make(map[string][]*domain.Slot),
		byID:       make(map[string]*domain.Slot),
		updated:    make(map[string]domain.SlotStatus),
	}
}

func (f *fakeSlotRepo) GetByProvider(_ context.Context, filter slotRepo.SlotsFilter) ([]*domain.Slot, error) {
	var result []*domain.Slot
	for _, slot := range f.byProvider[filter.ProviderID] {
		if filter.Day != nil && slot.Day != *filter.Day {
			continue
		}
		if filter.Status != nil && slot.Status != *filter.Status {
			continue
		}
		result = append(result, slot)
	}
	return result, nil
}

func (f *fakeSlotRepo) GetByID(_ context.Context, slotID string) (*domain.Slot, error) {
	slot, ok := f.byID[slotID]
	if !ok {
		return nil, slotRepo.ErrSlotNotFound
	}
	return slot, nil
}

func (f *fakeSlotRepo) UpdateStatus(_ context.Context, slotID string, status domain.SlotStatus) error {
	slot, ok := f.byID[slotID]
	if !ok {
		return slotRepo.ErrSlotNotFound
	}
	slot.Status = status
	f.updated[slotID] = status
	return nil
}

type fakeGenerator struct {
	err    error
	fill   func()
	called int
}

func (f *fakeGenerator) Execute(_ context.Context, providerID string, regenerate bool) (*generate_slots.Response, error) {
	f.called++
	if f.err != nil {
		return nil, f.err
	}
	if f.fill != nil {
		f.fill()
	}
	return &generate_slots.Response{ProviderID: providerID, SlotsCreated: 1}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestList_ReturnsExistingSlots(t *testing.T) {
	repo := newFakeSlotRepo()
	repo.byProvider["doc-1"] = []*domain.Slot{
		{SlotID: "s1", ProviderID: "doc-1", Day: "monday", StartTime: "09:00", EndTime: "09:30", Status: domain.SlotStatusFree},
	}
	gen := &fakeGenerator{}
	svc := NewService(repo, gen, nopLogger{})

	resp, err := svc.List(context.Background(), &models.ListSlotsRequest{ProviderID: "doc-1", Day: ptr.Ptr("monday")})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Total)
	assert.Zero(t, gen.called)
}

func TestList_LazyGenerationOnEmptyDay(t *testing.T) {
	repo := newFakeSlotRepo()
	gen := &fakeGenerator{}
	gen.fill = func() {
		repo.byProvider["doc-1"] = []*domain.Slot{
			{SlotID: "s1", ProviderID: "doc-1", Day: "monday", Status: domain.SlotStatusFree},
		}
	}
	svc := NewService(repo, gen, nopLogger{})

	resp, err := svc.List(context.Background(), &models.ListSlotsRequest{ProviderID: "doc-1", Day: ptr.Ptr("monday")})
	require.NoError(t, err)

	assert.Equal(t, 1, gen.called)
	assert.Equal(t, 1, resp.Total)
}

func TestList_NoLazyGenerationWithoutDayFilter(t *testing.T) {
	repo := newFakeSlotRepo()
	gen := &fakeGenerator{}
	svc := NewService(repo, gen, nopLogger{})

	resp, err := svc.List(context.Background(), &models.ListSlotsRequest{ProviderID: "doc-1"})
	require.NoError(t, err)

	assert.Zero(t, gen.called)
	assert.Zero(t, resp.Total)
}

func TestList_GenerationFailureReturnsEmptyList(t *testing.T) {
	repo := newFakeSlotRepo()
	gen := &fakeGenerator{err: errors.New("staff service down")}
	svc := NewService(repo, gen, nopLogger{})

	resp, err := svc.List(context.Background(), &models.ListSlotsRequest{ProviderID: "doc-1", Day: ptr.Ptr("monday")})
	require.NoError(t, err)

	assert.Zero(t, resp.Total)
}

func TestList_InvalidDay(t *testing.T) {
	svc := NewService(newFakeSlotRepo(), &fakeGenerator{}, nopLogger{})

	_, err := svc.List(context.Background(), &models.ListSlotsRequest{ProviderID: "doc-1", Day: ptr.Ptr("someday")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestList_InvalidStatus(t *testing.T) {
	svc := NewService(newFakeSlotRepo(), &fakeGenerator{}, nopLogger{})

	_, err := svc.List(context.Background(), &models.ListSlotsRequest{ProviderID: "doc-1", Status: ptr.Ptr("occupied")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSetStatus(t *testing.T) {
	repo := newFakeSlotRepo()
	repo.byID["s1"] = &domain.Slot{SlotID: "s1", ProviderID: "doc-1", Day: "monday", StartTime: "09:00", EndTime: "09:30", Status: domain.SlotStatusFree}
	svc := NewService(repo, &fakeGenerator{}, nopLogger{})

	resp, err := svc.SetStatus(context.Background(), "s1", &models.UpdateSlotStatusRequest{Status: "booked"})
	require.NoError(t, err)

	assert.Equal(t, "booked", resp.Status)
	assert.Equal(t, domain.SlotStatusBooked, repo.updated["s1"])
}

func TestSetStatus_NormalizesCase(t *testing.T) {
	repo := newFakeSlotRepo()
	repo.byID["s1"] = &domain.Slot{SlotID: "s1", Status: domain.SlotStatusFree}
	svc := NewService(repo, &fakeGenerator{}, nopLogger{})

	resp, err := svc.SetStatus(context.Background(), "s1", &models.UpdateSlotStatusRequest{Status: "Leave"})
	require.NoError(t, err)

	assert.Equal(t, "leave", resp.Status)
}

func TestSetStatus_NotFound(t *testing.T) {
	svc := NewService(newFakeSlotRepo(), &fakeGenerator{}, nopLogger{})

	_, err := svc.SetStatus(context.Background(), "ghost", &models.UpdateSlotStatusRequest{Status: "booked"})
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestSetStatus_InvalidStatus(t *testing.T) {
	svc := NewService(newFakeSlotRepo(), &fakeGenerator{}, nopLogger{})

	_, err := svc.SetStatus(context.Background(), "s1", &models.UpdateSlotStatusRequest{Status: "taken"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

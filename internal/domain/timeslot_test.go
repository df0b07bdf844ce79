package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PKC-SchedulerService/pkg/types"
)

func TestGenerateTimeSlots_FullWorkday(t *testing.T) {
	slots := GenerateTimeSlots("09:00", "17:00", 30)

	require.Len(t, slots, 16)
	assert.Equal(t, TimeRange{Start: "09:00", End: "09:30"}, slots[0])
	assert.Equal(t, TimeRange{Start: "12:30", End: "13:00"}, slots[7])
	assert.Equal(t, TimeRange{Start: "16:30", End: "17:00"}, slots[15])
}

func TestGenerateTimeSlots_DropsTrailingPartial(t *testing.T) {
	// 09:00-10:15 вмещает два полных слота, остаток 15 минут отбрасывается
	slots := GenerateTimeSlots("09:00", "10:15", 30)

	require.Len(t, slots, 2)
	assert.Equal(t, types.TimeString("10:00"), slots[1].End)
}

func TestGenerateTimeSlots_RangeShorterThanGranularity(t *testing.T) {
	slots := GenerateTimeSlots("09:00", "09:20", 30)
	assert.Empty(t, slots)
}

func TestGenerateTimeSlots_EmptyAndInvertedRanges(t *testing.T) {
	assert.Empty(t, GenerateTimeSlots("09:00", "09:00", 30))
	assert.Empty(t, GenerateTimeSlots("17:00", "09:00", 30))
}

func TestGenerateTimeSlots_InvalidGranularity(t *testing.T) {
	assert.Empty(t, GenerateTimeSlots("09:00", "17:00", 0))
	assert.Empty(t, GenerateTimeSlots("09:00", "17:00", -15))
}

func TestGenerateTimeSlots_CustomGranularity(t *testing.T) {
	slots := GenerateTimeSlots("10:00", "12:00", 60)

	require.Len(t, slots, 2)
	assert.Equal(t, TimeRange{Start: "10:00", End: "11:00"}, slots[0])
	assert.Equal(t, TimeRange{Start: "11:00", End: "12:00"}, slots[1])
}

func TestGenerateTimeSlots_ContiguousCoverage(t *testing.T) {
	slots := GenerateTimeSlots("09:00", "17:00", 30)

	for i := 1; i < len(slots); i++ {
		assert.Equal(t, slots[i-1].End, slots[i].Start)
	}
}

package domain

import "github.com/m04kA/PKC-SchedulerService/pkg/types"

// TimeRange is a half-open [Start, End) wall-clock interval
type TimeRange struct {
	Start types.TimeString
	End   types.TimeString
}

// GenerateTimeSlots decomposes [start, end) into consecutive slots of
// granularityMinutes each. A trailing remainder shorter than the granularity
// is dropped: a slot is only emitted when its computed end does not pass the
// requested end. start >= end yields an empty list. The function is pure;
// callers are responsible for same-day, non-midnight-crossing ranges.
func GenerateTimeSlots(start, end types.TimeString, granularityMinutes int) []TimeRange {
	slots := make([]TimeRange, 0)
	if granularityMinutes <= 0 || !start.IsBefore(end) {
		return slots
	}

	current := start
	for current.IsBefore(end) {
		slotEnd, err := current.AddMinutes(granularityMinutes)
		if err != nil {
			break
		}
		if slotEnd.IsAfter(end) {
			break
		}

		slots = append(slots, TimeRange{Start: current, End: slotEnd})
		current = slotEnd
	}

	return slots
}

package service

import "draftgen/internal/domain"

const (
	TrackSingle = "single"
	TrackMulti  = "multi"
)

// trackSlots maps each schedule track to the HH:MM slots (pipeline timezone)
// at which a scheduled run is allowed to proceed.
var trackSlots = map[string]map[string]bool{
	TrackSingle: {
		"05:05": true,
	},
	TrackMulti: {
		"05:05": true,
		"09:05": true,
		"13:05": true,
		"17:05": true,
	},
}

// checkSchedule gates a scheduled run. Manual runs never call it.
func checkSchedule(track, timeKey string) (bool, domain.SkipReason) {
	slots, ok := trackSlots[track]
	if !ok {
		return false, domain.SkipUnknownTrack
	}
	if !slots[timeKey] {
		return false, domain.SkipNotInScheduleSlot
	}
	return true, ""
}

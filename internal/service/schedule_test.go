package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"draftgen/internal/domain"
)

func TestCheckSchedule(t *testing.T) {
	cases := []struct {
		name    string
		track   string
		timeKey string
		ok      bool
		reason  domain.SkipReason
	}{
		{"single track morning slot", TrackSingle, "05:05", true, ""},
		{"single track off slot", TrackSingle, "09:05", false, domain.SkipNotInScheduleSlot},
		{"single track one minute late", TrackSingle, "05:06", false, domain.SkipNotInScheduleSlot},
		{"multi track morning slot", TrackMulti, "05:05", true, ""},
		{"multi track mid-morning slot", TrackMulti, "09:05", true, ""},
		{"multi track midday slot", TrackMulti, "13:05", true, ""},
		{"multi track evening slot", TrackMulti, "17:05", true, ""},
		{"multi track off slot", TrackMulti, "12:00", false, domain.SkipNotInScheduleSlot},
		{"unknown track", "hourly", "05:05", false, domain.SkipUnknownTrack},
		{"empty track", "", "05:05", false, domain.SkipUnknownTrack},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, reason := checkSchedule(tc.track, tc.timeKey)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.reason, reason)
		})
	}
}

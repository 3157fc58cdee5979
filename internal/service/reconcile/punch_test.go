package reconcile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExtractPunch(t *testing.T) {
	tests := []struct {
		name  string
		field string
		want  Punch
	}{
		{
			name:  "plain punch",
			field: "21/07/2025 08:02",
			want:  Punch{Time: "08:02"},
		},
		{
			name:  "adjustment marker is stripped and flagged",
			field: "21/07/2025 17:05*",
			want:  Punch{Time: "17:05", Adjusted: true},
		},
		{
			name:  "seconds are dropped",
			field: "21/07/2025 08:02:45",
			want:  Punch{Time: "08:02"},
		},
		{
			name:  "single digit hour is zero padded",
			field: "21/07/2025 8:02",
			want:  Punch{Time: "08:02"},
		},
		{
			name:  "hour out of range",
			field: "21/07/2025 25:00",
			want:  Punch{},
		},
		{
			name:  "minute out of range",
			field: "21/07/2025 12:60",
			want:  Punch{},
		},
		{
			name:  "not a time at all",
			field: "21/07/2025 abc",
			want:  Punch{},
		},
		{
			name:  "date only",
			field: "21/07/2025",
			want:  Punch{},
		},
		{
			name:  "empty field",
			field: "",
			want:  Punch{},
		},
		{
			name:  "whitespace only",
			field: "   ",
			want:  Punch{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractPunch(tt.field))
		})
	}
}

func TestSelectExitPunch(t *testing.T) {
	punches := func(p2, p4 string) [5]string {
		return [5]string{"19/07/2025 08:00", p2, "", p4, ""}
	}

	tests := []struct {
		name            string
		day             time.Weekday
		punches         [5]string
		want            Punch
		wantForcedEarly bool
	}{
		{
			name:    "saturday takes punch 2",
			day:     time.Saturday,
			punches: punches("19/07/2025 12:03", "19/07/2025 17:00"),
			want:    Punch{Time: "12:03"},
		},
		{
			name:    "saturday has no fallback",
			day:     time.Saturday,
			punches: punches("", "19/07/2025 17:00"),
			want:    Punch{},
		},
		{
			name:    "weekday prefers punch 4",
			day:     time.Monday,
			punches: punches("21/07/2025 12:00", "21/07/2025 17:02"),
			want:    Punch{Time: "17:02"},
		},
		{
			name:            "weekday falls back to punch 2 as forced early",
			day:             time.Tuesday,
			punches:         punches("22/07/2025 12:00", ""),
			want:            Punch{Time: "12:00"},
			wantForcedEarly: true,
		},
		{
			name:    "weekday with neither punch",
			day:     time.Friday,
			punches: punches("", ""),
			want:    Punch{},
		},
		{
			name:    "sunday never selects an exit",
			day:     time.Sunday,
			punches: punches("20/07/2025 12:00", "20/07/2025 17:00"),
			want:    Punch{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, forcedEarly := SelectExitPunch(tt.day, tt.punches)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantForcedEarly, forcedEarly)
		})
	}
}

package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseContractualHours(t *testing.T) {
	tests := []struct {
		name      string
		schedule  string
		wantEntry string
		wantExit  string
	}{
		{
			name:      "four block schedule uses first and last",
			schedule:  "08:00 - 12:00 - 13:00 - 17:00",
			wantEntry: "08:00",
			wantExit:  "17:00",
		},
		{
			name:      "two block schedule",
			schedule:  "09:00 - 18:00",
			wantEntry: "09:00",
			wantExit:  "18:00",
		},
		{
			name:      "single time fills both sides",
			schedule:  "08:00",
			wantEntry: "08:00",
			wantExit:  "08:00",
		},
		{
			name:      "single digit hour is zero padded",
			schedule:  "8:00 - 17:30",
			wantEntry: "08:00",
			wantExit:  "17:30",
		},
		{
			name:      "no times means absent schedule",
			schedule:  "FOLGA",
			wantEntry: "",
			wantExit:  "",
		},
		{
			name:      "empty string",
			schedule:  "",
			wantEntry: "",
			wantExit:  "",
		},
		{
			name:      "times buried in surrounding text",
			schedule:  "turno 07:30 às 16:45 com intervalo",
			wantEntry: "07:30",
			wantExit:  "16:45",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, exit := ParseContractualHours(tt.schedule)
			assert.Equal(t, tt.wantEntry, entry)
			assert.Equal(t, tt.wantExit, exit)
		})
	}
}

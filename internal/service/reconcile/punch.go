package reconcile

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// AdjustmentMarker is appended by the punch-clock software to times that
// were corrected by hand instead of recorded by the device.
const AdjustmentMarker = "*"

// Punch is one extracted clock time plus its manual-adjustment flag.
// The zero value means the raw field carried no usable time.
type Punch struct {
	Time     string // "HH:MM"
	Adjusted bool
}

func (p Punch) IsZero() bool {
	return p.Time == ""
}

var punchClockRegex = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):([0-5][0-9])(:[0-5][0-9])?$`)

// ExtractPunch pulls the time of day out of a raw punch field shaped
// "DD/MM/YYYY HH:MM", where the time may carry a trailing adjustment
// marker ("17:05*"). The last whitespace-separated token is taken as
// the time candidate; anything that fails validation yields a zero
// Punch rather than an error.
func ExtractPunch(field string) Punch {
	parts := strings.Fields(strings.TrimSpace(field))
	if len(parts) < 2 {
		return Punch{}
	}

	candidate := parts[len(parts)-1]
	adjusted := strings.Contains(candidate, AdjustmentMarker)
	candidate = strings.TrimSpace(strings.ReplaceAll(candidate, AdjustmentMarker, ""))

	clock := normalizeClock(candidate)
	if clock == "" {
		return Punch{}
	}

	return Punch{Time: clock, Adjusted: adjusted}
}

// normalizeClock validates an HH:MM[:SS] candidate and re-renders it as
// zero-padded HH:MM. Seconds are accepted on input and dropped.
func normalizeClock(candidate string) string {
	if !punchClockRegex.MatchString(candidate) {
		return ""
	}
	parts := strings.Split(candidate, ":")
	hours, _ := strconv.Atoi(parts[0])
	minutes, _ := strconv.Atoi(parts[1])
	return fmt.Sprintf("%02d:%02d", hours, minutes)
}

// SelectExitPunch applies the exit-column policy of the punch-clock
// layout. Entry is always punch 1; the exit depends on the weekday:
//
//   - Saturday: punch 2, with no fallback.
//   - Monday to Friday: punch 4; when punch 4 is empty, punch 2 is used
//     instead and the exit is forced to an early departure, because an
//     exit taken from the intermediate column means the employee left
//     before the final punch of the day.
//   - Sunday: no exit column is defined for the layout.
//
// The second return value reports the forced-early condition.
func SelectExitPunch(day time.Weekday, punches [5]string) (Punch, bool) {
	switch {
	case day == time.Saturday:
		return ExtractPunch(punches[1]), false

	case day >= time.Monday && day <= time.Friday:
		if p := ExtractPunch(punches[3]); !p.IsZero() {
			return p, false
		}
		if p := ExtractPunch(punches[1]); !p.IsZero() {
			return p, true
		}
		return Punch{}, false

	default: // Sunday
		return Punch{}, false
	}
}

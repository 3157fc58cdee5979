package reconcile

import (
	"regexp"
)

var scheduleTimeRegex = regexp.MustCompile(`\d{1,2}:\d{2}`)

// ParseContractualHours extracts the contractual entry and exit from a
// free-text schedule string like "08:00 - 12:00 - 13:00 - 17:00": the
// first time found is the entry and the last one the exit. A schedule
// carrying a single time yields that time on both sides; with no times
// at all both sides come back empty. Malformed input never errors.
func ParseContractualHours(schedule string) (entry, exit string) {
	matches := scheduleTimeRegex.FindAllString(schedule, -1)
	if len(matches) == 0 {
		return "", ""
	}
	entry = normalizeClock(matches[0])
	exit = normalizeClock(matches[len(matches)-1])
	return entry, exit
}

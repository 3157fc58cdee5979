package reconcile

import (
	"strconv"
	"strings"

	"github.com/pontolabs/ponto-backend/internal/domain/record"
)

// Classify compares an actual punch against its contractual time within
// a tolerance in minutes. It returns nil when there is nothing to
// classify: no punch, or no contractual time to compare it against.
// A manually adjusted punch is always StatusAdjusted, whatever the
// time difference says. The tolerance boundary is inclusive: a punch
// exactly tolerance minutes off is still on time.
func Classify(contractual string, actual Punch, toleranceMinutes int) *record.Status {
	if actual.IsZero() {
		return nil
	}
	if actual.Adjusted {
		return statusPtr(record.StatusAdjusted)
	}
	if contractual == "" {
		return nil
	}

	contractualMins, ok := clockToMinutes(contractual)
	if !ok {
		return nil
	}
	actualMins, ok := clockToMinutes(actual.Time)
	if !ok {
		return nil
	}

	diff := actualMins - contractualMins
	switch {
	case diff > toleranceMinutes:
		return statusPtr(record.StatusLate)
	case diff < -toleranceMinutes:
		return statusPtr(record.StatusEarly)
	default:
		return statusPtr(record.StatusOnTime)
	}
}

func statusPtr(s record.Status) *record.Status {
	return &s
}

// clockToMinutes converts "HH:MM" to minutes since midnight, so the
// comparison is a same-day wall-clock difference.
func clockToMinutes(clock string) (int, bool) {
	parts := strings.Split(clock, ":")
	if len(parts) < 2 {
		return 0, false
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	return hours*60 + minutes, true
}

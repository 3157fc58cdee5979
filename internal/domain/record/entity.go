package record

import (
	"time"
)

// Status classifies one side (entry or exit) of a reconciled punch.
type Status string

const (
	StatusOnTime   Status = "on_time"
	StatusLate     Status = "late"
	StatusEarly    Status = "early"
	StatusAdjusted Status = "adjusted"
)

// AllStatuses lists every status in display order.
func AllStatuses() []Status {
	return []Status{StatusOnTime, StatusLate, StatusEarly, StatusAdjusted}
}

func (s Status) Valid() bool {
	switch s {
	case StatusOnTime, StatusLate, StatusEarly, StatusAdjusted:
		return true
	}
	return false
}

// DisplayText returns the Portuguese label the punch-clock reports use.
func (s Status) DisplayText() string {
	switch s {
	case StatusOnTime:
		return "No horário"
	case StatusLate:
		return "Atrasado"
	case StatusEarly:
		return "Antecipado"
	case StatusAdjusted:
		return "Ajustado"
	}
	return "Desconhecido"
}

// TimeRecord is one reconciled punch-clock row: the contractual schedule
// times, the actual entry/exit punches, and their derived statuses.
// Records are created in bulk by an import and never edited in place.
type TimeRecord struct {
	ID      string
	OwnerID string

	Name       string
	Department string
	Location   string
	Equipment  string

	ContractualEntry *string // "HH:MM", nil when the schedule had none
	ContractualExit  *string

	PunchDate string // "YYYY-MM-DD"

	ActualEntry   *string // "HH:MM", nil when no usable punch
	ActualExit    *string
	EntryAdjusted bool
	ExitAdjusted  bool

	EntryStatus *Status // nil when either side of the comparison is missing
	ExitStatus  *Status

	CreatedAt time.Time
}

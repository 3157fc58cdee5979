package settings

import (
	"github.com/pontolabs/ponto-backend/internal/domain/record"
)

// DefaultToleranceMinutes is applied whenever no saved configuration exists.
const DefaultToleranceMinutes = 5

// ToleranceConfig holds the minutes of deviation still counted as
// on-time. General applies to both sides; Entry and Exit, when set,
// override it for their axis.
type ToleranceConfig struct {
	General int  `json:"general"`
	Entry   *int `json:"entry,omitempty"`
	Exit    *int `json:"exit,omitempty"`
}

// ForEntry resolves the tolerance used to classify entry punches.
func (c ToleranceConfig) ForEntry() int {
	if c.Entry != nil {
		return *c.Entry
	}
	return c.General
}

// ForExit resolves the tolerance used to classify exit punches.
func (c ToleranceConfig) ForExit() int {
	if c.Exit != nil {
		return *c.Exit
	}
	return c.General
}

// StatusColorMap assigns a display color to each status. Presentation
// only; classification never looks at it.
type StatusColorMap map[record.Status]string

// Settings is the per-owner configuration document, persisted as a
// single flat JSON value.
type Settings struct {
	Tolerances ToleranceConfig `json:"tolerances"`
	Colors     StatusColorMap  `json:"colors"`
}

// Default returns the configuration used before the owner ever saves one.
func Default() Settings {
	return Settings{
		Tolerances: ToleranceConfig{General: DefaultToleranceMinutes},
		Colors: StatusColorMap{
			record.StatusOnTime:   "#22c55e",
			record.StatusLate:     "#ef4444",
			record.StatusEarly:    "#3b82f6",
			record.StatusAdjusted: "#f59e0b",
		},
	}
}

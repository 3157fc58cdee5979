package settings

import (
	"fmt"

	"github.com/pontolabs/ponto-backend/internal/domain/record"
	"github.com/pontolabs/ponto-backend/internal/pkg/validator"
)

// UpdateSettingsRequest replaces the owner's configuration document.
type UpdateSettingsRequest struct {
	Tolerances ToleranceConfig `json:"tolerances"`
	Colors     StatusColorMap  `json:"colors"`
}

func (r *UpdateSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	checkTolerance := func(field string, minutes int) {
		if minutes < 0 || minutes > 60 {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: "tolerance must be between 0 and 60 minutes",
			})
		}
	}

	checkTolerance("tolerances.general", r.Tolerances.General)
	if r.Tolerances.Entry != nil {
		checkTolerance("tolerances.entry", *r.Tolerances.Entry)
	}
	if r.Tolerances.Exit != nil {
		checkTolerance("tolerances.exit", *r.Tolerances.Exit)
	}

	for status, color := range r.Colors {
		if !status.Valid() {
			errs = append(errs, validator.ValidationError{
				Field:   "colors",
				Message: fmt.Sprintf("unknown status %q", status),
			})
			continue
		}
		if !validator.IsValidHexColor(color) {
			errs = append(errs, validator.ValidationError{
				Field:   "colors." + string(status),
				Message: "color must be a 6-digit hex value like #22c55e",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Merge applies the request over the defaults so statuses the caller
// left out keep their default color.
func (r *UpdateSettingsRequest) Merge() Settings {
	merged := Default()
	merged.Tolerances = r.Tolerances
	for _, status := range record.AllStatuses() {
		if color, ok := r.Colors[status]; ok {
			merged.Colors[status] = color
		}
	}
	return merged
}

package response

import (
	"errors"
	"net/http"

	"github.com/pontolabs/ponto-backend/internal/domain/record"
	"github.com/pontolabs/ponto-backend/internal/domain/settings"
	"github.com/pontolabs/ponto-backend/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Record domain errors
	case errors.Is(err, record.ErrMissingNameColumn):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, record.ErrEmptyWorkbook):
		BadRequest(w, "The uploaded spreadsheet has no data rows", nil)
	case errors.Is(err, record.ErrUnreadableFile):
		BadRequest(w, "The uploaded file could not be read as a spreadsheet", nil)

	// Settings domain errors
	case errors.Is(err, settings.ErrSettingsNotFound):
		NotFound(w, "Settings not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}

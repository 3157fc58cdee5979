package record

import (
	"io"
	"strings"

	"github.com/pontolabs/ponto-backend/internal/pkg/validator"
)

// ========================================
// RECORD DTOs
// ========================================

// ImportRequest carries one uploaded punch-clock spreadsheet.
type ImportRequest struct {
	File     io.Reader `json:"-"`
	Filename string    `json:"-"`
	Size     int64     `json:"-"`
}

func (r *ImportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.File == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "file",
			Message: "spreadsheet file is required",
		})
	}

	if !validator.IsEmpty(r.Filename) {
		name := strings.ToLower(r.Filename)
		if !strings.HasSuffix(name, ".xlsx") && !strings.HasSuffix(name, ".xls") {
			errs = append(errs, validator.ValidationError{
				Field:   "file",
				Message: "invalid file type: only xlsx and xls allowed",
			})
		}
	}

	if r.Size > 10<<20 { // 10MB
		errs = append(errs, validator.ValidationError{
			Field:   "file",
			Message: "spreadsheet size must not exceed 10MB",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ImportResponse struct {
	Imported    int    `json:"imported"`
	ArchivePath string `json:"archive_path,omitempty"`
}

type RecordResponse struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Department       string  `json:"department"`
	Location         string  `json:"location"`
	Equipment        string  `json:"equipment"`
	ContractualEntry *string `json:"contractual_entry,omitempty"`
	ContractualExit  *string `json:"contractual_exit,omitempty"`
	PunchDate        string  `json:"punch_date"`
	ActualEntry      *string `json:"actual_entry,omitempty"`
	ActualExit       *string `json:"actual_exit,omitempty"`
	EntryAdjusted    bool    `json:"entry_adjusted"`
	ExitAdjusted     bool    `json:"exit_adjusted"`
	EntryStatus      *Status `json:"entry_status,omitempty"`
	ExitStatus       *Status `json:"exit_status,omitempty"`
	CreatedAt        string  `json:"created_at"`
}

type RecordFilter struct {
	// Search & Filter
	Search     *string `json:"search,omitempty"` // matches name, department, location, equipment
	Name       *string `json:"name,omitempty"`
	Department *string `json:"department,omitempty"`
	Status     *Status `json:"status,omitempty"` // matches either the entry or the exit status
	Date       *string `json:"date,omitempty"`       // YYYY-MM-DD
	StartDate  *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate    *string `json:"end_date,omitempty"`   // YYYY-MM-DD

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`

	// Sorting
	SortBy    string `json:"sort_by"`    // punch_date, name, department, actual_entry, actual_exit
	SortOrder string `json:"sort_order"` // asc, desc
}

func (f *RecordFilter) Validate() error {
	var errs validator.ValidationErrors

	// Page validation
	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1 // Default page
	}

	// Limit validation
	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20 // Default limit
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	// Status validation
	if f.Status != nil && !f.Status.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: on_time, late, early, adjusted",
		})
	}

	// Date validation
	if f.Date != nil && *f.Date != "" {
		if _, valid := validator.IsValidDate(*f.Date); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.StartDate != nil && *f.StartDate != "" {
		if _, valid := validator.IsValidDate(*f.StartDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != nil && *f.EndDate != "" {
		if _, valid := validator.IsValidDate(*f.EndDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	// Sort validation
	if f.SortBy != "" {
		validSortFields := []string{"punch_date", "name", "department", "actual_entry", "actual_exit"}
		if !validator.IsInSlice(f.SortBy, validSortFields) {
			errs = append(errs, validator.ValidationError{
				Field:   "sort_by",
				Message: "sort_by must be one of: punch_date, name, department, actual_entry, actual_exit",
			})
		}
	} else {
		f.SortBy = "punch_date" // Default sort
	}

	if f.SortOrder != "" {
		validSortOrders := []string{"asc", "desc"}
		if !validator.IsInSlice(strings.ToLower(f.SortOrder), validSortOrders) {
			errs = append(errs, validator.ValidationError{
				Field:   "sort_order",
				Message: "sort_order must be one of: asc, desc",
			})
		}
	} else {
		f.SortOrder = "desc" // Default descending (newest first)
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListRecordsResponse struct {
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"total_pages"`
	Showing    string           `json:"showing"`
	Records    []RecordResponse `json:"records"`
}

// SummaryResponse counts statuses across both the entry and the exit
// side of every matching record, the way the dashboard cards do.
type SummaryResponse struct {
	Total    int64 `json:"total"`
	OnTime   int64 `json:"on_time"`
	Late     int64 `json:"late"`
	Early    int64 `json:"early"`
	Adjusted int64 `json:"adjusted"`
}

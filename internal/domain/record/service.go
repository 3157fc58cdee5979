package record

import (
	"context"
)

// RecordService defines business logic for reconciled punch records
type RecordService interface {
	// ImportRecords parses an uploaded spreadsheet, reconciles every row
	// and appends the batch to the owner's collection
	ImportRecords(ctx context.Context, req ImportRequest) (ImportResponse, error)

	// ListRecords retrieves reconciled records with filters
	ListRecords(ctx context.Context, filter RecordFilter) (ListRecordsResponse, error)

	// Summary returns per-status counts for the dashboard cards
	Summary(ctx context.Context, filter RecordFilter) (SummaryResponse, error)

	// ExportRecords renders the filtered records as a colored XLSX report
	ExportRecords(ctx context.Context, filter RecordFilter) ([]byte, error)

	// TemplateWorkbook renders a sample import file
	TemplateWorkbook(ctx context.Context) ([]byte, error)

	// ClearRecords removes the owner's whole collection
	ClearRecords(ctx context.Context) error
}

package record

import (
	"context"
)

// RecordRepository defines data access methods for reconciled records.
// All methods include ownerID to keep one user's uploads away from another's.
type RecordRepository interface {
	// CreateBatch inserts every record of one import atomically; either
	// the whole batch lands or none of it does.
	CreateBatch(ctx context.Context, records []TimeRecord) error

	// List retrieves records with filters and pagination
	List(ctx context.Context, filter RecordFilter, ownerID string) ([]TimeRecord, int64, error)

	// ListAll retrieves every record matching the filter, unpaginated.
	// Used by the export path.
	ListAll(ctx context.Context, filter RecordFilter, ownerID string) ([]TimeRecord, error)

	// Summary counts statuses over the entry and exit side of matching records
	Summary(ctx context.Context, filter RecordFilter, ownerID string) (SummaryResponse, error)

	// DeleteByOwner removes the owner's whole collection
	DeleteByOwner(ctx context.Context, ownerID string) error
}

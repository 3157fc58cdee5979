package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/pontolabs/ponto-backend/internal/domain/record"
	"github.com/pontolabs/ponto-backend/internal/pkg/database"
)

type recordRepository struct {
	db *database.DB
}

func NewRecordRepository(db *database.DB) record.RecordRepository {
	return &recordRepository{db: db}
}

const recordColumns = `id, owner_id, name, department, location, equipment,
	   contractual_entry, contractual_exit, punch_date,
	   actual_entry, actual_exit, entry_adjusted, exit_adjusted,
	   entry_status, exit_status, created_at`

// CreateBatch implements record.RecordRepository.
func (r *recordRepository) CreateBatch(ctx context.Context, records []record.TimeRecord) error {
	if len(records) == 0 {
		return nil
	}

	query := `
		INSERT INTO time_records (
			id, owner_id, name, department, location, equipment,
			contractual_entry, contractual_exit, punch_date,
			actual_entry, actual_exit, entry_adjusted, exit_adjusted,
			entry_status, exit_status, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16
		)
	`

	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		for _, rec := range records {
			_, err := tx.Exec(ctx, query,
				rec.ID,
				rec.OwnerID,
				rec.Name,
				rec.Department,
				rec.Location,
				rec.Equipment,
				rec.ContractualEntry,
				rec.ContractualExit,
				rec.PunchDate,
				rec.ActualEntry,
				rec.ActualExit,
				rec.EntryAdjusted,
				rec.ExitAdjusted,
				statusText(rec.EntryStatus),
				statusText(rec.ExitStatus),
				rec.CreatedAt,
			)
			if err != nil {
				return fmt.Errorf("failed to insert record for %q: %w", rec.Name, err)
			}
		}
		return nil
	})
}

// buildWhere translates a filter into a WHERE clause scoped to the owner.
func buildWhere(filter record.RecordFilter, ownerID string) (string, []interface{}) {
	where := "owner_id = $1"
	args := []interface{}{ownerID}
	argIdx := 2

	if filter.Search != nil && *filter.Search != "" {
		where += fmt.Sprintf(
			" AND (name ILIKE $%d OR department ILIKE $%d OR location ILIKE $%d OR equipment ILIKE $%d)",
			argIdx, argIdx, argIdx, argIdx,
		)
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}

	if filter.Name != nil && *filter.Name != "" {
		where += fmt.Sprintf(" AND name = $%d", argIdx)
		args = append(args, *filter.Name)
		argIdx++
	}

	if filter.Department != nil && *filter.Department != "" {
		where += fmt.Sprintf(" AND department = $%d", argIdx)
		args = append(args, *filter.Department)
		argIdx++
	}

	// A status filter matches records carrying it on either side.
	if filter.Status != nil && *filter.Status != "" {
		where += fmt.Sprintf(" AND (entry_status = $%d OR exit_status = $%d)", argIdx, argIdx)
		args = append(args, string(*filter.Status))
		argIdx++
	}

	if filter.Date != nil && *filter.Date != "" {
		where += fmt.Sprintf(" AND punch_date = $%d", argIdx)
		args = append(args, *filter.Date)
		argIdx++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		where += fmt.Sprintf(" AND punch_date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		where += fmt.Sprintf(" AND punch_date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	return where, args
}

func orderBy(filter record.RecordFilter) string {
	field := "punch_date"
	switch filter.SortBy {
	case "name":
		field = "name"
	case "department":
		field = "department"
	case "actual_entry":
		field = "actual_entry"
	case "actual_exit":
		field = "actual_exit"
	}
	order := "DESC"
	if strings.ToLower(filter.SortOrder) == "asc" {
		order = "ASC"
	}
	// Secondary sort keeps pagination stable across identical dates.
	return fmt.Sprintf("%s %s, created_at DESC, id", field, order)
}

// List implements record.RecordRepository.
func (r *recordRepository) List(ctx context.Context, filter record.RecordFilter, ownerID string) ([]record.TimeRecord, int64, error) {
	q := GetQuerier(ctx, r.db)

	where, args := buildWhere(filter, ownerID)

	countQuery := "SELECT COUNT(*) FROM time_records WHERE " + where
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count records: %w", err)
	}

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	offset := (filter.Page - 1) * limit

	selectQuery := fmt.Sprintf(`
		SELECT %s
		FROM time_records
		WHERE %s
		ORDER BY %s
		LIMIT $%d OFFSET $%d
	`, recordColumns, where, orderBy(filter), len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	records, err := scanRecords(rows)
	if err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

// ListAll implements record.RecordRepository.
func (r *recordRepository) ListAll(ctx context.Context, filter record.RecordFilter, ownerID string) ([]record.TimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	where, args := buildWhere(filter, ownerID)

	query := fmt.Sprintf(`
		SELECT %s
		FROM time_records
		WHERE %s
		ORDER BY %s
	`, recordColumns, where, orderBy(filter))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// Summary implements record.RecordRepository.
func (r *recordRepository) Summary(ctx context.Context, filter record.RecordFilter, ownerID string) (record.SummaryResponse, error) {
	q := GetQuerier(ctx, r.db)

	where, args := buildWhere(filter, ownerID)

	// Entry and exit statuses both count, so one record can contribute
	// to two buckets.
	query := fmt.Sprintf(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE entry_status = 'on_time') + COUNT(*) FILTER (WHERE exit_status = 'on_time'),
			COUNT(*) FILTER (WHERE entry_status = 'late')    + COUNT(*) FILTER (WHERE exit_status = 'late'),
			COUNT(*) FILTER (WHERE entry_status = 'early')   + COUNT(*) FILTER (WHERE exit_status = 'early'),
			COUNT(*) FILTER (WHERE entry_status = 'adjusted') + COUNT(*) FILTER (WHERE exit_status = 'adjusted')
		FROM time_records
		WHERE %s
	`, where)

	var summary record.SummaryResponse
	err := q.QueryRow(ctx, query, args...).Scan(
		&summary.Total,
		&summary.OnTime,
		&summary.Late,
		&summary.Early,
		&summary.Adjusted,
	)
	if err != nil {
		return record.SummaryResponse{}, fmt.Errorf("failed to summarize records: %w", err)
	}

	return summary, nil
}

// DeleteByOwner implements record.RecordRepository.
func (r *recordRepository) DeleteByOwner(ctx context.Context, ownerID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, "DELETE FROM time_records WHERE owner_id = $1", ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete records: %w", err)
	}

	return nil
}

func scanRecords(rows pgx.Rows) ([]record.TimeRecord, error) {
	var records []record.TimeRecord
	for rows.Next() {
		var rec record.TimeRecord
		var entryStatus, exitStatus *string
		err := rows.Scan(
			&rec.ID, &rec.OwnerID, &rec.Name, &rec.Department, &rec.Location, &rec.Equipment,
			&rec.ContractualEntry, &rec.ContractualExit, &rec.PunchDate,
			&rec.ActualEntry, &rec.ActualExit, &rec.EntryAdjusted, &rec.ExitAdjusted,
			&entryStatus, &exitStatus, &rec.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		rec.EntryStatus = statusFromText(entryStatus)
		rec.ExitStatus = statusFromText(exitStatus)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read records: %w", err)
	}
	return records, nil
}

func statusText(s *record.Status) *string {
	if s == nil {
		return nil
	}
	v := string(*s)
	return &v
}

func statusFromText(s *string) *record.Status {
	if s == nil {
		return nil
	}
	v := record.Status(*s)
	return &v
}

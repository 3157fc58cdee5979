package record

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"path/filepath"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/pontolabs/ponto-backend/internal/domain/record"
	"github.com/pontolabs/ponto-backend/internal/domain/settings"
	"github.com/pontolabs/ponto-backend/internal/pkg/spreadsheet"
	"github.com/pontolabs/ponto-backend/internal/pkg/storage"
	"github.com/pontolabs/ponto-backend/internal/service/reconcile"
)

type RecordServiceImpl struct {
	record.RecordRepository
	settings.SettingsRepository
	fileStorage storage.FileStorage
	reconciler  *reconcile.Reconciler
}

func NewRecordService(
	recordRepo record.RecordRepository,
	settingsRepo settings.SettingsRepository,
	fileStorage storage.FileStorage,
) record.RecordService {
	return &RecordServiceImpl{
		RecordRepository:   recordRepo,
		SettingsRepository: settingsRepo,
		fileStorage:        fileStorage,
		reconciler:         reconcile.NewReconciler(),
	}
}

// ownerFromContext extracts the authenticated user's ID from the JWT claims.
func ownerFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	ownerID, ok := claims["user_id"].(string)
	if !ok || ownerID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}

	return ownerID, nil
}

// ownerSettings returns the owner's saved configuration, falling back
// to the defaults when nothing was ever saved.
func (s *RecordServiceImpl) ownerSettings(ctx context.Context, ownerID string) (settings.Settings, error) {
	saved, err := s.SettingsRepository.Get(ctx, ownerID)
	if err != nil {
		if errors.Is(err, settings.ErrSettingsNotFound) {
			return settings.Default(), nil
		}
		return settings.Settings{}, fmt.Errorf("failed to load settings: %w", err)
	}
	return saved, nil
}

// ImportRecords implements record.RecordService.
func (s *RecordServiceImpl) ImportRecords(ctx context.Context, req record.ImportRequest) (record.ImportResponse, error) {
	if err := req.Validate(); err != nil {
		return record.ImportResponse{}, err
	}

	ownerID, err := ownerFromContext(ctx)
	if err != nil {
		return record.ImportResponse{}, err
	}

	// The upload is consumed twice: once by the parser and once by the
	// archive, so it is buffered up front.
	data, err := io.ReadAll(req.File)
	if err != nil {
		return record.ImportResponse{}, fmt.Errorf("failed to read upload: %w", err)
	}

	rows, err := spreadsheet.ReadRows(bytes.NewReader(data))
	if err != nil {
		return record.ImportResponse{}, record.ErrUnreadableFile
	}

	cfg, err := s.ownerSettings(ctx, ownerID)
	if err != nil {
		return record.ImportResponse{}, err
	}

	records, err := s.reconciler.ReconcileBatch(rows, ownerID, cfg.Tolerances)
	if err != nil {
		return record.ImportResponse{}, err
	}

	if err := s.RecordRepository.CreateBatch(ctx, records); err != nil {
		return record.ImportResponse{}, fmt.Errorf("failed to save imported records: %w", err)
	}

	resp := record.ImportResponse{Imported: len(records)}

	// Archiving the source file is best effort; the batch is already
	// committed and a storage hiccup must not fail the import.
	if s.fileStorage != nil {
		archivePath := fmt.Sprintf("imports/%s/%d_%s",
			ownerID, time.Now().Unix(), filepath.Base(req.Filename))
		path, err := s.fileStorage.Upload(ctx, bytes.NewReader(data), archivePath,
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		if err != nil {
			slog.Warn("failed to archive imported spreadsheet", "path", archivePath, "error", err)
		} else {
			resp.ArchivePath = path
		}
	}

	return resp, nil
}

// ListRecords implements record.RecordService.
func (s *RecordServiceImpl) ListRecords(ctx context.Context, filter record.RecordFilter) (record.ListRecordsResponse, error) {
	if err := filter.Validate(); err != nil {
		return record.ListRecordsResponse{}, err
	}

	ownerID, err := ownerFromContext(ctx)
	if err != nil {
		return record.ListRecordsResponse{}, err
	}

	records, total, err := s.RecordRepository.List(ctx, filter, ownerID)
	if err != nil {
		return record.ListRecordsResponse{}, fmt.Errorf("failed to list records: %w", err)
	}

	responses := make([]record.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, mapRecordToResponse(rec))
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))
	showing := fmt.Sprintf("%d-%d of %d", (filter.Page-1)*filter.Limit+1, min(filter.Page*filter.Limit, int(total)), total)
	if total == 0 {
		showing = "0 of 0"
	}

	return record.ListRecordsResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Showing:    showing,
		Records:    responses,
	}, nil
}

// Summary implements record.RecordService.
func (s *RecordServiceImpl) Summary(ctx context.Context, filter record.RecordFilter) (record.SummaryResponse, error) {
	if err := filter.Validate(); err != nil {
		return record.SummaryResponse{}, err
	}

	ownerID, err := ownerFromContext(ctx)
	if err != nil {
		return record.SummaryResponse{}, err
	}

	summary, err := s.RecordRepository.Summary(ctx, filter, ownerID)
	if err != nil {
		return record.SummaryResponse{}, fmt.Errorf("failed to summarize records: %w", err)
	}

	return summary, nil
}

// ExportRecords implements record.RecordService.
func (s *RecordServiceImpl) ExportRecords(ctx context.Context, filter record.RecordFilter) ([]byte, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	ownerID, err := ownerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.RecordRepository.ListAll(ctx, filter, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list records for export: %w", err)
	}

	cfg, err := s.ownerSettings(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	report, err := spreadsheet.BuildReport(records, cfg.Colors)
	if err != nil {
		return nil, fmt.Errorf("failed to build report: %w", err)
	}
	defer func() { _ = report.Close() }()

	buf, err := report.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}

	return buf.Bytes(), nil
}

// TemplateWorkbook implements record.RecordService.
func (s *RecordServiceImpl) TemplateWorkbook(ctx context.Context) ([]byte, error) {
	template, err := spreadsheet.BuildTemplate()
	if err != nil {
		return nil, fmt.Errorf("failed to build template: %w", err)
	}
	defer func() { _ = template.Close() }()

	buf, err := template.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render template: %w", err)
	}

	return buf.Bytes(), nil
}

// ClearRecords implements record.RecordService.
func (s *RecordServiceImpl) ClearRecords(ctx context.Context) error {
	ownerID, err := ownerFromContext(ctx)
	if err != nil {
		return err
	}

	if err := s.RecordRepository.DeleteByOwner(ctx, ownerID); err != nil {
		return fmt.Errorf("failed to clear records: %w", err)
	}

	return nil
}

// mapRecordToResponse converts a TimeRecord entity to RecordResponse
func mapRecordToResponse(rec record.TimeRecord) record.RecordResponse {
	return record.RecordResponse{
		ID:               rec.ID,
		Name:             rec.Name,
		Department:       rec.Department,
		Location:         rec.Location,
		Equipment:        rec.Equipment,
		ContractualEntry: rec.ContractualEntry,
		ContractualExit:  rec.ContractualExit,
		PunchDate:        rec.PunchDate,
		ActualEntry:      rec.ActualEntry,
		ActualExit:       rec.ActualExit,
		EntryAdjusted:    rec.EntryAdjusted,
		ExitAdjusted:     rec.ExitAdjusted,
		EntryStatus:      rec.EntryStatus,
		ExitStatus:       rec.ExitStatus,
		CreatedAt:        rec.CreatedAt.Format(time.RFC3339),
	}
}

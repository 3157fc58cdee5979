package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/pontolabs/ponto-backend/internal/domain/record"
	"github.com/pontolabs/ponto-backend/internal/handler/http/response"
)

type RecordHandler interface {
	Import(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
	Template(w http.ResponseWriter, r *http.Request)
	Clear(w http.ResponseWriter, r *http.Request)
}

type recordHandlerImpl struct {
	recordService record.RecordService
}

func NewRecordHandler(recordService record.RecordService) RecordHandler {
	return &recordHandlerImpl{
		recordService: recordService,
	}
}

// Import implements RecordHandler.
func (h *recordHandlerImpl) Import(w http.ResponseWriter, r *http.Request) {
	// Parse multipart form (max 10MB)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		if err == http.ErrMissingFile {
			response.BadRequest(w, "Spreadsheet file is required", nil)
			return
		}
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}
	defer file.Close()

	req := record.ImportRequest{
		File:     file,
		Filename: fileHeader.Filename,
		Size:     fileHeader.Size,
	}

	result, err := h.recordService.ImportRecords(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, fmt.Sprintf("Imported %d records", result.Imported), result)
}

// parseRecordFilter reads the list/summary/export query parameters.
func parseRecordFilter(r *http.Request) record.RecordFilter {
	var filter record.RecordFilter

	if search := r.URL.Query().Get("search"); search != "" {
		filter.Search = &search
	}

	if name := r.URL.Query().Get("name"); name != "" {
		filter.Name = &name
	}

	if department := r.URL.Query().Get("department"); department != "" {
		filter.Department = &department
	}

	if status := r.URL.Query().Get("status"); status != "" {
		s := record.Status(status)
		filter.Status = &s
	}

	if date := r.URL.Query().Get("date"); date != "" {
		filter.Date = &date
	}

	if startDate := r.URL.Query().Get("start_date"); startDate != "" {
		filter.StartDate = &startDate
	}

	if endDate := r.URL.Query().Get("end_date"); endDate != "" {
		filter.EndDate = &endDate
	}

	if p := r.URL.Query().Get("page"); p != "" {
		if pageNum, err := strconv.Atoi(p); err == nil && pageNum > 0 {
			filter.Page = pageNum
		}
	}

	if l := r.URL.Query().Get("limit"); l != "" {
		if limitNum, err := strconv.Atoi(l); err == nil && limitNum > 0 {
			filter.Limit = limitNum
		}
	}

	if sortBy := r.URL.Query().Get("sort_by"); sortBy != "" {
		filter.SortBy = sortBy
	}

	if sortOrder := r.URL.Query().Get("sort_order"); sortOrder != "" {
		filter.SortOrder = sortOrder
	}

	return filter
}

// List implements RecordHandler.
func (h *recordHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.recordService.ListRecords(r.Context(), parseRecordFilter(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Summary implements RecordHandler.
func (h *recordHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	result, err := h.recordService.Summary(r.Context(), parseRecordFilter(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Export implements RecordHandler.
func (h *recordHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	data, err := h.recordService.ExportRecords(r.Context(), parseRecordFilter(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filename := fmt.Sprintf("registros_de_ponto_%s.xlsx", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	if _, err := w.Write(data); err != nil {
		slog.Error("Failed to write export", "error", err)
	}
}

// Template implements RecordHandler.
func (h *recordHandlerImpl) Template(w http.ResponseWriter, r *http.Request) {
	data, err := h.recordService.TemplateWorkbook(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="novo_modelo_registros.xlsx"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	if _, err := w.Write(data); err != nil {
		slog.Error("Failed to write template", "error", err)
	}
}

// Clear implements RecordHandler.
func (h *recordHandlerImpl) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.recordService.ClearRecords(r.Context()); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "All records removed", nil)
}

package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ren-lyn/hrms-system-backup12-sub008/internal/domain/attendance"
	"github.com/ren-lyn/hrms-system-backup12-sub008/internal/domain/importjob"
	"github.com/ren-lyn/hrms-system-backup12-sub008/internal/handler/http/response"
)

// maxImportFileSize bounds the multipart upload at 25MB, enough for a year of
// punches from a single device export.
const maxImportFileSize = 25 << 20

type ImportHandler interface {
	Import(w http.ResponseWriter, r *http.Request)
	DetectPeriod(w http.ResponseWriter, r *http.Request)
	ListJobs(w http.ResponseWriter, r *http.Request)
	GetJob(w http.ResponseWriter, r *http.Request)
}

type importHandlerImpl struct {
	importService attendance.ImportService
	jobRepository importjob.ImportJobRepository
}

func NewImportHandler(importService attendance.ImportService, jobRepository importjob.ImportJobRepository) ImportHandler {
	return &importHandlerImpl{
		importService: importService,
		jobRepository: jobRepository,
	}
}

// Import implements ImportHandler.
func (h *importHandlerImpl) Import(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImportFileSize); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		if err == http.ErrMissingFile {
			response.BadRequest(w, "Field 'file' is required", nil)
			return
		}
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}
	defer file.Close()

	opts := attendance.ImportOptions{
		Filename:   fileHeader.Filename,
		ImportType: r.FormValue("import_type"),
		ImportedBy: r.FormValue("imported_by"),
	}

	opts.PeriodStart, err = parseDateField(r.FormValue("period_start"))
	if err != nil {
		response.BadRequest(w, "Invalid period_start, expected YYYY-MM-DD", nil)
		return
	}
	opts.PeriodEnd, err = parseDateField(r.FormValue("period_end"))
	if err != nil {
		response.BadRequest(w, "Invalid period_end, expected YYYY-MM-DD", nil)
		return
	}

	if err := opts.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.importService.CheckPeriodOverlap(r.Context(), opts.PeriodStart, opts.PeriodEnd); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.importService.Import(r.Context(), file, opts)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance import completed", result)
}

// DetectPeriod implements ImportHandler.
func (h *importHandlerImpl) DetectPeriod(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImportFileSize); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		if err == http.ErrMissingFile {
			response.BadRequest(w, "Field 'file' is required", nil)
			return
		}
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}
	defer file.Close()

	detection, err := h.importService.DetectPeriod(r.Context(), file, fileHeader.Filename)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if detection == nil {
		response.BadRequest(w, "No parsable dates found in file", nil)
		return
	}

	response.Success(w, detection)
}

// ListJobs implements ImportHandler.
func (h *importHandlerImpl) ListJobs(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", 20)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	jobs, total, err := h.jobRepository.List(r.Context(), limit, (page-1)*limit)
	if err != nil {
		slog.Error("Failed to list import jobs", "error", err)
		response.HandleError(w, err)
		return
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	response.SuccessWithMeta(w, toJobResponses(jobs), &response.Meta{
		Page:       page,
		Limit:      limit,
		TotalItems: total,
		TotalPages: totalPages,
	})
}

// GetJob implements ImportHandler.
func (h *importHandlerImpl) GetJob(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		response.BadRequest(w, "Invalid import job id", nil)
		return
	}

	job, err := h.jobRepository.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, toJobResponse(job))
}

type importJobResponse struct {
	ID             string     `json:"id"`
	Filename       string     `json:"filename"`
	PeriodStart    *string    `json:"period_start"`
	PeriodEnd      *string    `json:"period_end"`
	ImportType     string     `json:"import_type"`
	Status         string     `json:"status"`
	TotalRows      int        `json:"total_rows"`
	SuccessfulRows int        `json:"successful_rows"`
	FailedRows     int        `json:"failed_rows"`
	SkippedRows    int        `json:"skipped_rows"`
	AbsentMarked   int        `json:"absent_marked"`
	Errors         []string   `json:"errors"`
	ImportedBy     *string    `json:"imported_by,omitempty"`
	CompletedAt    *time.Time `json:"completed_at"`
	CreatedAt      time.Time  `json:"created_at"`
}

func toJobResponse(job importjob.ImportJob) importJobResponse {
	return importJobResponse{
		ID:             job.ID,
		Filename:       job.Filename,
		PeriodStart:    formatDatePtr(job.PeriodStart),
		PeriodEnd:      formatDatePtr(job.PeriodEnd),
		ImportType:     job.ImportType,
		Status:         string(job.Status),
		TotalRows:      job.TotalRows,
		SuccessfulRows: job.SuccessfulRows,
		FailedRows:     job.FailedRows,
		SkippedRows:    job.SkippedRows,
		AbsentMarked:   job.AbsentMarked,
		Errors:         job.Errors,
		ImportedBy:     job.ImportedBy,
		CompletedAt:    job.CompletedAt,
		CreatedAt:      job.CreatedAt,
	}
}

func toJobResponses(jobs []importjob.ImportJob) []importJobResponse {
	out := make([]importJobResponse, 0, len(jobs))
	for _, job := range jobs {
		out = append(out, toJobResponse(job))
	}
	return out
}

func parseDateField(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format("2006-01-02")
	return &formatted
}

func queryInt(r *http.Request, key string, fallback int) int {
	value := r.URL.Query().Get(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}

package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ren-lyn/hrms-system-backup12-sub008/internal/domain/importjob"
	"github.com/ren-lyn/hrms-system-backup12-sub008/internal/pkg/database"
)

type importJobRepository struct {
	db *database.DB
}

func NewImportJobRepository(db *database.DB) importjob.ImportJobRepository {
	return &importJobRepository{db: db}
}

const importJobColumns = `
	id, filename, period_start, period_end, import_type, status,
	total_rows, successful_rows, failed_rows, skipped_rows, absent_marked,
	errors, imported_by, completed_at, created_at, updated_at`

func scanImportJob(row pgx.Row) (importjob.ImportJob, error) {
	var j importjob.ImportJob
	err := row.Scan(
		&j.ID, &j.Filename, &j.PeriodStart, &j.PeriodEnd, &j.ImportType, &j.Status,
		&j.TotalRows, &j.SuccessfulRows, &j.FailedRows, &j.SkippedRows, &j.AbsentMarked,
		&j.Errors, &j.ImportedBy, &j.CompletedAt, &j.CreatedAt, &j.UpdatedAt,
	)
	return j, err
}

// Create implements importjob.ImportJobRepository.
func (r *importJobRepository) Create(ctx context.Context, job importjob.ImportJob) (importjob.ImportJob, error) {
	query := `
		INSERT INTO attendance_import_jobs (
			filename, period_start, period_end, import_type, status, imported_by
		) VALUES (
			$1, $2, $3, $4, $5, $6
		) RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		job.Filename,
		job.PeriodStart,
		job.PeriodEnd,
		job.ImportType,
		job.Status,
		job.ImportedBy,
	).Scan(&job.ID, &job.CreatedAt, &job.UpdatedAt)

	if err != nil {
		return importjob.ImportJob{}, fmt.Errorf("failed to create import job: %w", err)
	}

	return job, nil
}

// Finish implements importjob.ImportJobRepository.
func (r *importJobRepository) Finish(ctx context.Context, job importjob.ImportJob) error {
	query := `
		UPDATE attendance_import_jobs SET
			status = $2,
			total_rows = $3,
			successful_rows = $4,
			failed_rows = $5,
			skipped_rows = $6,
			absent_marked = $7,
			errors = $8,
			completed_at = $9,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query,
		job.ID,
		job.Status,
		job.TotalRows,
		job.SuccessfulRows,
		job.FailedRows,
		job.SkippedRows,
		job.AbsentMarked,
		job.Errors,
		job.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to finish import job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return importjob.ErrJobNotFound
	}

	return nil
}

// GetByID implements importjob.ImportJobRepository.
func (r *importJobRepository) GetByID(ctx context.Context, id string) (importjob.ImportJob, error) {
	query := fmt.Sprintf(`SELECT %s FROM attendance_import_jobs WHERE id = $1`, importJobColumns)

	job, err := scanImportJob(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return importjob.ImportJob{}, importjob.ErrJobNotFound
		}
		return importjob.ImportJob{}, fmt.Errorf("failed to get import job: %w", err)
	}
	return job, nil
}

// List implements importjob.ImportJobRepository. Newest first.
func (r *importJobRepository) List(ctx context.Context, limit, offset int) ([]importjob.ImportJob, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM attendance_import_jobs`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count import jobs: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s FROM attendance_import_jobs
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, importJobColumns)

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list import jobs: %w", err)
	}
	defer rows.Close()

	jobs := []importjob.ImportJob{}
	for rows.Next() {
		job, err := scanImportJob(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan import job: %w", err)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate import jobs: %w", err)
	}

	return jobs, total, nil
}

// HasOverlappingPeriod implements importjob.ImportJobRepository. Failed runs
// never block a re-import of the same period.
func (r *importJobRepository) HasOverlappingPeriod(ctx context.Context, start, end time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM attendance_import_jobs
			WHERE status != $1
			  AND period_start IS NOT NULL
			  AND period_end IS NOT NULL
			  AND period_start <= $3
			  AND period_end >= $2
		)
	`

	var exists bool
	if err := r.db.QueryRow(ctx, query, importjob.StatusFailed, start, end).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check overlapping period: %w", err)
	}
	return exists, nil
}

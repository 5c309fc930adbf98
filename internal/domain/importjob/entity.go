package importjob

import "time"

type Status string

const (
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

const (
	// MaxErrors caps the persisted error list.
	MaxErrors = 200
	// MaxErrorLength truncates each persisted error message.
	MaxErrorLength = 255
)

// ImportJob is the ledger record of one ingestion run. It is created in the
// processing state and mutated exactly once at the end (or on fatal failure).
type ImportJob struct {
	ID             string
	Filename       string
	PeriodStart    *time.Time
	PeriodEnd      *time.Time
	ImportType     string
	Status         Status
	TotalRows      int
	SuccessfulRows int
	FailedRows     int
	SkippedRows    int
	AbsentMarked   int
	Errors         []string
	ImportedBy     *string
	CompletedAt    *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// AppendError records a bounded, truncated error message. Messages past the
// cap are dropped so a pathological file cannot bloat the ledger.
func (j *ImportJob) AppendError(msg string) {
	if len(j.Errors) >= MaxErrors {
		return
	}
	if len(msg) > MaxErrorLength {
		msg = msg[:MaxErrorLength]
	}
	j.Errors = append(j.Errors, msg)
}

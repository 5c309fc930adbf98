package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ren-lyn/hrms-system-backup12-sub008/internal/config"
	"github.com/ren-lyn/hrms-system-backup12-sub008/internal/domain/attendance"
	"github.com/ren-lyn/hrms-system-backup12-sub008/internal/pkg/database"
	"github.com/ren-lyn/hrms-system-backup12-sub008/internal/repository/postgresql"
	"github.com/ren-lyn/hrms-system-backup12-sub008/internal/service/attendanceimport"
)

type importOptions struct {
	periodStart string
	periodEnd   string
	importType  string
	importedBy  string
	detectOnly  bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts importOptions

	cmd := &cobra.Command{
		Use:   "importer <file>",
		Short: "Import biometric punch exports into attendance records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd.Context(), args[0], opts)
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVar(&opts.periodStart, "period-start", "", "Period start (YYYY-MM-DD); with --period-end enables absence backfill")
	cmd.Flags().StringVar(&opts.periodEnd, "period-end", "", "Period end (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.importType, "type", "biometric", "Import type label recorded on the job")
	cmd.Flags().StringVar(&opts.importedBy, "by", "", "Operator recorded on the job")
	cmd.Flags().BoolVar(&opts.detectOnly, "detect-period", false, "Only scan the file and report the detected date range")

	return cmd
}

func runImport(ctx context.Context, path string, opts importOptions) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	svc := attendanceimport.NewImportService(
		postgresql.NewAttendanceRepository(db),
		postgresql.NewEmployeeRepository(db),
		postgresql.NewHolidayRepository(db),
		postgresql.NewLeaveRequestRepository(db),
		postgresql.NewWorkShiftRepository(db),
		postgresql.NewUserRepository(db),
		postgresql.NewImportJobRepository(db),
	)

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	if opts.detectOnly {
		detection, err := svc.DetectPeriod(ctx, file, path)
		if err != nil {
			return err
		}
		if detection == nil {
			fmt.Println("No parsable dates found")
			return nil
		}
		fmt.Printf("Period: %s to %s (%d distinct dates)\n",
			detection.PeriodStart.Format("2006-01-02"),
			detection.PeriodEnd.Format("2006-01-02"),
			detection.TotalDates)
		return nil
	}

	importOpts := attendance.ImportOptions{
		Filename:   path,
		ImportType: opts.importType,
		ImportedBy: opts.importedBy,
	}
	if importOpts.PeriodStart, err = parseDateFlag(opts.periodStart); err != nil {
		return fmt.Errorf("invalid --period-start: %w", err)
	}
	if importOpts.PeriodEnd, err = parseDateFlag(opts.periodEnd); err != nil {
		return fmt.Errorf("invalid --period-end: %w", err)
	}

	if err := svc.CheckPeriodOverlap(ctx, importOpts.PeriodStart, importOpts.PeriodEnd); err != nil {
		return err
	}

	result, err := svc.Import(ctx, file, importOpts)
	if err != nil {
		return err
	}

	fmt.Printf("Job %s completed\n", result.JobID)
	fmt.Printf("  rows:          %d\n", result.TotalRows)
	fmt.Printf("  imported:      %d\n", result.SuccessCount)
	fmt.Printf("  failed:        %d\n", result.FailedCount)
	fmt.Printf("  skipped:       %d\n", result.SkippedCount)
	fmt.Printf("  marked absent: %d\n", result.AbsentMarkedCount)
	if result.UnknownMergedRows > 0 {
		fmt.Printf("  rows without identifier merged: %d\n", result.UnknownMergedRows)
	}
	for _, msg := range result.Errors {
		fmt.Printf("  error: %s\n", msg)
	}
	return nil
}

func parseDateFlag(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

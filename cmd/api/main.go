package main

import (
	"fmt"
	"net/http"

	"github.com/ren-lyn/hrms-system-backup12-sub008/internal/config"
	appHTTP "github.com/ren-lyn/hrms-system-backup12-sub008/internal/handler/http"
	"github.com/ren-lyn/hrms-system-backup12-sub008/internal/pkg/database"
	"github.com/ren-lyn/hrms-system-backup12-sub008/internal/repository/postgresql"
	"github.com/ren-lyn/hrms-system-backup12-sub008/internal/service/attendanceimport"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	workShiftRepo := postgresql.NewWorkShiftRepository(db)
	userRepo := postgresql.NewUserRepository(db)
	importJobRepo := postgresql.NewImportJobRepository(db)

	importService := attendanceimport.NewImportService(
		attendanceRepo,
		employeeRepo,
		holidayRepo,
		leaveRequestRepo,
		workShiftRepo,
		userRepo,
		importJobRepo,
	)

	importHandler := appHTTP.NewImportHandler(importService, importJobRepo)
	attendanceHandler := appHTTP.NewAttendanceHandler(importService)

	router := appHTTP.NewRouter(cfg, importHandler, attendanceHandler)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Server running on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

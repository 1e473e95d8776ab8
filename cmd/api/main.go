package main

import (
	"fmt"
	"net/http"

	"github.com/construxhq/ops-backend-go/internal/config"
	appHTTP "github.com/construxhq/ops-backend-go/internal/handler/http"
	"github.com/construxhq/ops-backend-go/internal/pkg/clock"
	"github.com/construxhq/ops-backend-go/internal/pkg/database"
	"github.com/construxhq/ops-backend-go/internal/pkg/jwt"
	"github.com/construxhq/ops-backend-go/internal/repository/postgresql"
	calendarService "github.com/construxhq/ops-backend-go/internal/service/calendar"
	wageRunService "github.com/construxhq/ops-backend-go/internal/service/wagerun"
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

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	loanRepo := postgresql.NewLoanRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	wageRunRepo := postgresql.NewWageRunRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret)
	wageRunSvc := wageRunService.NewWageRunService(
		wageRunRepo,
		employeeRepo,
		attendanceRepo,
		loanRepo,
		holidayRepo,
		clock.System(),
	)
	holidaySvc := calendarService.NewHolidayService(holidayRepo)

	wageRunHandler := appHTTP.NewWageRunHandler(wageRunSvc)
	holidayHandler := appHTTP.NewHolidayHandler(holidaySvc)

	router := appHTTP.NewRouter(
		JWTService,
		wageRunHandler,
		holidayHandler,
		cfg.App.Env,
		cfg.App.AllowedOrigin,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

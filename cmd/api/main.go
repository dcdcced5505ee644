package main

import (
	"fmt"
	"net/http"

	"github.com/fieldops/presence-backend-go/internal/config"
	appHTTP "github.com/fieldops/presence-backend-go/internal/handler/http"
	"github.com/fieldops/presence-backend-go/internal/pkg/cache"
	"github.com/fieldops/presence-backend-go/internal/pkg/database"
	"github.com/fieldops/presence-backend-go/internal/pkg/jwt"
	"github.com/fieldops/presence-backend-go/internal/repository/postgresql"
	attendanceService "github.com/fieldops/presence-backend-go/internal/service/attendance"
	projectService "github.com/fieldops/presence-backend-go/internal/service/project"
	reportService "github.com/fieldops/presence-backend-go/internal/service/report"
	userService "github.com/fieldops/presence-backend-go/internal/service/user"
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

	var monthCache *cache.MonthCache
	if cfg.Redis.Addr != "" {
		monthCache, err = cache.NewMonthCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.TTL)
		if err != nil {
			fmt.Println("Error connecting to redis:", err)
			return
		}
	}

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	userRepo := postgresql.NewUserRepository(db)
	projectRepo := postgresql.NewProjectRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, userRepo, projectRepo, monthCache)
	userSvc := userService.NewUserService(userRepo)
	projectSvc := projectService.NewProjectService(projectRepo, userRepo)
	reportSvc := reportService.NewReportService(attendanceRepo, userRepo)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	userHandler := appHTTP.NewUserHandler(userSvc, projectSvc)
	projectHandler := appHTTP.NewProjectHandler(projectSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		JWTService,
		attendanceHandler,
		userHandler,
		projectHandler,
		reportHandler,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

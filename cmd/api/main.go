package main

import (
	"fmt"
	"net/http"

	"github.com/staffhub-io/ess-backend-go/internal/config"
	appHTTP "github.com/staffhub-io/ess-backend-go/internal/handler/http"
	"github.com/staffhub-io/ess-backend-go/internal/handler/http/middleware"
	"github.com/staffhub-io/ess-backend-go/internal/pkg/database"
	"github.com/staffhub-io/ess-backend-go/internal/pkg/jwt"
	"github.com/staffhub-io/ess-backend-go/internal/repository/postgresql"
	attendanceService "github.com/staffhub-io/ess-backend-go/internal/service/attendance"
	authService "github.com/staffhub-io/ess-backend-go/internal/service/auth"
	featureService "github.com/staffhub-io/ess-backend-go/internal/service/feature"
	overtimeService "github.com/staffhub-io/ess-backend-go/internal/service/overtime"
	reportService "github.com/staffhub-io/ess-backend-go/internal/service/report"
	shiftService "github.com/staffhub-io/ess-backend-go/internal/service/shift"
	userService "github.com/staffhub-io/ess-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	tokenRepo := postgresql.NewTokenRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	rateRepo := postgresql.NewRateRepository(db)
	featureRepo := postgresql.NewFeatureRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(userRepo, tokenRepo, jwtService)
	userSvc := userService.NewUserService(userRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo)
	reportSvc := reportService.NewReportService(attendanceRepo)
	overtimeSvc := overtimeService.NewOvertimeService(attendanceRepo, rateRepo)
	shiftSvc := shiftService.NewShiftService(attendanceRepo, shiftRepo)
	featureSvc := featureService.NewFeatureService(featureRepo)

	featureMW := middleware.NewFeatureMiddleware(featureSvc)

	authHandler := appHTTP.NewAuthHandler(authSvc, jwtService)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	overtimeHandler := appHTTP.NewOvertimeHandler(overtimeSvc)
	shiftHandler := appHTTP.NewShiftHandler(shiftSvc)
	userHandler := appHTTP.NewUserHandler(userSvc)
	featureHandler := appHTTP.NewFeatureHandler(featureSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			FrontendURL: cfg.App.FrontendURL,
			Env:         cfg.App.Env,
		},
		jwtService,
		featureMW,
		authHandler,
		attendanceHandler,
		reportHandler,
		overtimeHandler,
		shiftHandler,
		userHandler,
		featureHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

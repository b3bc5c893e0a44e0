package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/staffhub-io/ess-backend-go/internal/domain/feature"
	"github.com/staffhub-io/ess-backend-go/internal/domain/user"
	"github.com/staffhub-io/ess-backend-go/internal/handler/http/middleware"
	"github.com/staffhub-io/ess-backend-go/internal/pkg/jwt"
)

type RouterConfig struct {
	FrontendURL string
	Env         string
}

func NewRouter(
	cfg RouterConfig,
	jwtService jwt.Service,
	featureMW *middleware.FeatureMiddleware,
	authHandler AuthHandler,
	attendanceHandler AttendanceHandler,
	reportHandler ReportHandler,
	overtimeHandler OvertimeHandler,
	shiftHandler ShiftHandler,
	userHandler UserHandler,
	featureHandler FeatureHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "ess-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.Refresh)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/dashboard", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionAttendanceViewAll)).
					Get("/overview", attendanceHandler.GetOverview)
			})

			// HRMS screens; the super admin must have purchased the tile
			r.Group(func(r chi.Router) {
				r.Use(featureMW.RequireFeature(feature.HRMS))

				r.Route("/attendance", func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionAttendanceViewAll))
					r.Get("/daily", attendanceHandler.GetDailyRoster)
					r.Get("/shifts", shiftHandler.GetShiftAttendance)
				})

				r.Route("/reports", func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionReportsView))
					r.Get("/monthly-summary", reportHandler.GetMonthlySummary)
					r.Get("/department-summary", reportHandler.GetDepartmentSummary)
					r.With(middleware.RequirePermission(user.PermissionReportsExport)).
						Get("/monthly-summary/export", reportHandler.ExportMonthlySummary)
				})

				r.Route("/overtime", func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionReportsView))
					r.Get("/summary", overtimeHandler.GetMonthlySummary)
					r.Get("/department-summary", overtimeHandler.GetDepartmentSummary)
					r.With(middleware.RequirePermission(user.PermissionReportsExport)).
						Get("/summary/export", overtimeHandler.ExportMonthlySummary)
				})
			})

			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionUserView))
				r.Use(featureMW.RequireFeature(feature.UserManagement))
				r.Get("/", userHandler.ListUsers)
				r.Get("/{id}", userHandler.GetUser)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionUserManage))
					r.Post("/", userHandler.CreateUser)
					r.Put("/{id}", userHandler.UpdateUser)
					r.Delete("/{id}", userHandler.DeleteUser)
				})
			})

			// Super admin only
			r.Route("/superadmin", func(r chi.Router) {
				r.Use(middleware.RequireSuperAdmin)
				r.Get("/features", featureHandler.GetFeatures)
				r.Post("/features", featureHandler.UpdateFeatures)
			})
		})
	})

	return r
}

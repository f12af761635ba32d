package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/pontolabs/ponto-backend-go/internal/handler/http/middleware"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Kiosk     KioskHandler
	Auth      AuthHandler
	Timesheet TimesheetHandler
	HourBank  HourBankHandler
	Employee  EmployeeHandler
	Sector    SectorHandler
	Device    DeviceHandler
	Schedule  ScheduleHandler
}

func NewRouter(jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "ponto-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
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

		// Kiosk endpoints authenticate by device secret in the body, not
		// by JWT. They stay public.
		r.Route("/kiosk", func(r chi.Router) {
			r.Post("/validate", h.Kiosk.Validate)
			r.Post("/punch", h.Kiosk.Punch)
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.AdminLogin)
			r.Post("/logout", h.Auth.Logout)
			r.Route("/oauth", func(r chi.Router) {
				r.Get("/google", h.Auth.OAuthLogin)
				r.Get("/callback/google", h.Auth.OAuthCallback)
			})
		})

		// Admin panel. Everything below requires an admin/HR session.
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService))
			r.Use(middleware.AdminOnly)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.Post("/", h.Employee.Create)
				r.Get("/{id}", h.Employee.Get)
				r.Put("/{id}", h.Employee.Update)
				r.Post("/{id}/reset-pin", h.Employee.ResetPIN)
				r.Delete("/{id}", h.Employee.Deactivate)
				r.Get("/{id}/timesheets", h.Timesheet.ListByEmployee)
				r.Get("/{id}/hour-bank/balance", h.HourBank.GetBalance)
			})

			r.Route("/sectors", func(r chi.Router) {
				r.Get("/", h.Sector.List)
				r.Post("/", h.Sector.Create)
				r.Get("/{id}", h.Sector.Get)
				r.Put("/{id}", h.Sector.Update)
				r.Delete("/{id}", h.Sector.Delete)
			})

			r.Route("/devices", func(r chi.Router) {
				r.Get("/", h.Device.List)
				r.Post("/", h.Device.Register)
				r.Delete("/{id}", h.Device.Deactivate)
			})

			r.Route("/schedules", func(r chi.Router) {
				r.Get("/", h.Schedule.List)
				r.Post("/", h.Schedule.Create)
				r.Get("/{id}", h.Schedule.Get)
				r.Put("/{id}", h.Schedule.Update)
				r.Delete("/{id}", h.Schedule.Delete)
			})

			r.Route("/timesheets", func(r chi.Router) {
				r.Get("/", h.Timesheet.ListByMonth)
				r.Post("/recalculate", h.Timesheet.Recalculate)
			})

			r.Route("/hour-bank", func(r chi.Router) {
				r.Get("/ledger", h.HourBank.ListLedger)
				r.Post("/ledger", h.HourBank.CreateManualEntry)
				r.Post("/ledger/{id}/approve", h.HourBank.Approve)
				r.Post("/ledger/{id}/reject", h.HourBank.Reject)
				r.Get("/balances", h.HourBank.ListBalances)
			})
		})
	})
	return r
}

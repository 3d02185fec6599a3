package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/hatchhr/hatchhr-backend-go/internal/config"
	"github.com/hatchhr/hatchhr-backend-go/internal/handler/http/middleware"
	"github.com/hatchhr/hatchhr-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Hatchery     HatcheryHandler
	Employee     EmployeeHandler
	Leave        LeaveHandler
	Salary       SalaryHandler
	Inventory    InventoryHandler
	Notification NotificationHandler
}

func NewRouter(appCfg config.AppConfig, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hatchhr"),
		slog.String("version", "v1.0.0"),
		slog.String("env", appCfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   appCfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
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

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/hatcheries", func(r chi.Router) {
				r.Get("/{id}", h.Hatchery.Get)
				r.Get("/{id}/employees", h.Employee.ListByHatchery)
				r.Get("/{id}/leaves", h.Leave.ListByHatchery)
				r.Get("/{id}/inventory", h.Inventory.ListByHatchery)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Hatchery.Create)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/{id}", h.Employee.Get)
				r.Get("/{id}/leaves", h.Leave.ListByEmployee)
				r.Get("/{id}/salaries", h.Salary.ListByEmployee)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Employee.Create)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", h.Leave.Submit)
				r.Get("/{id}", h.Leave.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Patch("/{id}/decision", h.Leave.Decide)
				})
			})

			r.Route("/salaries", func(r chi.Router) {
				r.Get("/{id}", h.Salary.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Salary.Pay)
					r.Delete("/{id}", h.Salary.Delete)
				})
			})

			r.Route("/inventory", func(r chi.Router) {
				r.Get("/{id}", h.Inventory.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Inventory.Create)
					r.Patch("/{id}/quantity", h.Inventory.AdjustQuantity)
				})
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", h.Notification.List)
				r.Patch("/{id}/read", h.Notification.MarkRead)
				r.Delete("/{id}", h.Notification.Delete)
			})
		})
	})

	return r
}

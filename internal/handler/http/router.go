package http

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/paskibra-rajawali/admin-dashboard/internal/handler/http/middleware"
	"github.com/paskibra-rajawali/admin-dashboard/internal/pkg/jwt"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouterConfig carries everything NewRouter wires together.
type RouterConfig struct {
	Logger         *slog.Logger
	AllowedOrigins []string
	JWTService     jwt.Service
	Registry       *prometheus.Registry

	Auth       AuthHandler
	Pendaftar  PendaftarHandler
	User       UserHandler
	Absensi    AbsensiHandler
	Statistics StatisticsHandler
	Upload     UploadHandler
}

func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()
	metrics := middleware.NewMetrics(cfg.Registry)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(cfg.Logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(metrics.Handler)
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Handle("/metrics", promhttp.HandlerFor(cfg.Registry, promhttp.HandlerOpts{}))
	r.Get("/uploads/*", cfg.Upload.Serve)

	r.Route("/api", func(r chi.Router) {
		r.Use(chiMiddleware.AllowContentType("application/json"))

		r.Post("/auth/login", cfg.Auth.Login)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(cfg.JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(cfg.JWTService))

			r.Get("/auth/me", cfg.Auth.Me)
			r.Post("/auth/logout", cfg.Auth.Logout)

			// Admin only
			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Route("/pendaftar", func(r chi.Router) {
					r.Get("/", cfg.Pendaftar.List)
					r.Get("/{id}", cfg.Pendaftar.Get)
					r.Put("/{id}/status", cfg.Pendaftar.UpdateStatus)
				})
				r.Post("/generate-kta", cfg.Pendaftar.GenerateKTA)

				r.Route("/users", func(r chi.Router) {
					r.Get("/", cfg.User.List)
					r.Put("/{id}/reset-password", cfg.User.ResetPassword)
				})

				r.Get("/absensi", cfg.Absensi.List)
				r.Get("/statistics", cfg.Statistics.Get)
			})
		})
	})
	return r
}

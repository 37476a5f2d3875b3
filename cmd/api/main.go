package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/httplog/v3"
	"github.com/paskibra-rajawali/admin-dashboard/internal/config"
	"github.com/paskibra-rajawali/admin-dashboard/internal/domain/statistics"
	appHTTP "github.com/paskibra-rajawali/admin-dashboard/internal/handler/http"
	"github.com/paskibra-rajawali/admin-dashboard/internal/pkg/cache"
	"github.com/paskibra-rajawali/admin-dashboard/internal/pkg/database"
	"github.com/paskibra-rajawali/admin-dashboard/internal/pkg/jwt"
	"github.com/paskibra-rajawali/admin-dashboard/internal/pkg/storage"
	"github.com/paskibra-rajawali/admin-dashboard/internal/repository/postgresql"
	serviceAbsensi "github.com/paskibra-rajawali/admin-dashboard/internal/service/absensi"
	serviceAuth "github.com/paskibra-rajawali/admin-dashboard/internal/service/auth"
	servicePendaftar "github.com/paskibra-rajawali/admin-dashboard/internal/service/pendaftar"
	serviceStatistics "github.com/paskibra-rajawali/admin-dashboard/internal/service/statistics"
	serviceUser "github.com/paskibra-rajawali/admin-dashboard/internal/service/user"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const version = "v1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.App)
	slog.SetDefault(logger)

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), database.PoolConfig{MaxConns: cfg.Database.MaxConns})
	if err != nil {
		slog.Error("Error connecting to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Statistics cache is optional
	var statsCache statistics.StatisticsCache
	var redisClient *cache.Redis
	if cfg.Redis.Addr != "" {
		redisClient = cache.NewRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if redisClient.Healthy(pingCtx) {
			statsCache = cache.NewStatisticsCache(redisClient, cfg.Redis.StatsTTL)
			slog.Info("statistics cache enabled", "addr", cfg.Redis.Addr, "ttl", cfg.Redis.StatsTTL)
		} else {
			slog.Warn("redis unreachable, statistics cache disabled", "addr", cfg.Redis.Addr)
		}
		cancel()
		defer redisClient.Close()
	}

	mediaStore, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		slog.Error("Error initializing upload storage", "error", err)
		os.Exit(1)
	}

	// Repositories
	userRepo := postgresql.NewUserRepository(db)
	pendaftarRepo := postgresql.NewPendaftarRepository(db)
	absensiRepo := postgresql.NewAbsensiRepository(db)
	statisticsRepo := postgresql.NewStatisticsRepository(db)
	transactor := postgresql.NewTransactor(db)

	// Services
	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	statisticsService := serviceStatistics.NewStatisticsService(statisticsRepo, statsCache)
	authService := serviceAuth.NewAuthService(userRepo, jwtService)
	pendaftarService := servicePendaftar.NewPendaftarService(pendaftarRepo, transactor, statisticsService, cfg.KTA.Prefix)
	userService := serviceUser.NewUserService(userRepo)
	absensiService := serviceAbsensi.NewAbsensiService(absensiRepo)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	router := appHTTP.NewRouter(appHTTP.RouterConfig{
		Logger:         logger,
		AllowedOrigins: cfg.App.AllowedOrigins,
		JWTService:     jwtService,
		Registry:       registry,
		Auth:           appHTTP.NewAuthHandler(jwtService, authService),
		Pendaftar:      appHTTP.NewPendaftarHandler(pendaftarService),
		User:           appHTTP.NewUserHandler(userService),
		Absensi:        appHTTP.NewAbsensiHandler(absensiService),
		Statistics:     appHTTP.NewStatisticsHandler(statisticsService),
		Upload:         appHTTP.NewUploadHandler(mediaStore),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Server starting", "addr", server.Addr, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server shutdown error", "error", err)
	}
}

func newLogger(app config.AppConfig) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(app.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	logFormat := httplog.SchemaECS.Concise(app.Env != "production")
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "paskibra-rajawali-admin"),
		slog.String("version", version),
		slog.String("env", app.Env),
	)
}

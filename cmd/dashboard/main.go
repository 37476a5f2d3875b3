// dashboard is the terminal admin dashboard for Paskibra Rajawali. It logs
// in against the admin API and shows the applicant, card number, user,
// attendance and statistics pages as tabs.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/paskibra-rajawali/admin-dashboard/internal/client"
	"github.com/paskibra-rajawali/admin-dashboard/internal/config"
	"github.com/paskibra-rajawali/admin-dashboard/internal/dashboard"
	"github.com/paskibra-rajawali/admin-dashboard/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadDashboard()
	if err != nil {
		return err
	}

	flagSet := pflag.NewFlagSet("dashboard", pflag.ContinueOnError)
	flagSet.StringVar(&cfg.APIURL, "api-url", cfg.APIURL, "admin API base URL")
	flagSet.StringVar(&cfg.UploadURL, "upload-url", cfg.UploadURL, "base URL of uploaded photos")
	flagSet.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "per-request timeout")
	flagSet.IntVar(&cfg.PageSize, "page-size", cfg.PageSize, "rows per page (1-100)")
	flagSet.StringVarP(&cfg.Username, "username", "u", cfg.Username, "admin username (prompted when empty)")
	flagSet.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "write log records to this file")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// stdout belongs to the TUI, so records go to a file.
	logger, closeLog, err := newLogger(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	api := client.New(cfg.APIURL, client.WithTimeout(cfg.Timeout), client.WithLogger(logger))

	var session *client.Session
	login := tui.NewLoginModel(ctx, cfg.Username, func(ctx context.Context, username, password string) error {
		s, err := client.Login(ctx, api, username, password)
		if err != nil {
			logger.Warn("login failed", "username", username, "error", err)
			return err
		}
		session = s
		return nil
	})
	if _, err := tea.NewProgram(login, tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if session == nil {
		return nil
	}
	logger.Info("logged in", "username", session.CurrentUser().Username)

	toasts := tui.NewToasts(logger)
	model := tui.NewModel(ctx, tui.Config{
		Pages: tui.Pages{
			Pendaftar:  dashboard.NewPendaftarPage(api, toasts, cfg.PageSize),
			KTA:        dashboard.NewKTAPage(api, toasts, cfg.PageSize),
			Users:      dashboard.NewUsersPage(api, toasts, cfg.PageSize),
			Absensi:    dashboard.NewAbsensiPage(api, toasts, cfg.UploadURL, cfg.PageSize),
			Statistics: dashboard.NewStatisticsPage(api, toasts),
		},
		Session:   session,
		Toasts:    toasts,
		UploadURL: cfg.UploadURL,
	})

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	logger.Info("dashboard closed")
	return nil
}

func newLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(file, &slog.HandlerOptions{Level: slog.LevelInfo}))
	return logger, func() { _ = file.Close() }, nil
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `Paskibra Rajawali admin dashboard.

Defaults come from the environment (DASHBOARD_API_URL, DASHBOARD_UPLOAD_URL,
DASHBOARD_TIMEOUT, DASHBOARD_PAGE_SIZE, DASHBOARD_USERNAME, DASHBOARD_LOG_FILE)
or a .env file; flags override them.

Usage:
  dashboard [flags]

Flags:
`)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}

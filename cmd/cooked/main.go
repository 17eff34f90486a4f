// COOKED - effort-scored tutoring client
package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/ashureev/cooked/internal/config"
	"github.com/ashureev/cooked/internal/evaluator"
	"github.com/ashureev/cooked/internal/history"
	"github.com/ashureev/cooked/internal/identity"
	"github.com/ashureev/cooked/internal/session"
	"github.com/ashureev/cooked/internal/store"
	"github.com/ashureev/cooked/internal/telemetry"
	"github.com/ashureev/cooked/internal/tui"
)

// setupLogging sends structured logs to a file next to the database. Writing
// JSON to stdout would corrupt the terminal UI.
func setupLogging(dbPath string) io.Closer {
	logPath := filepath.Join(filepath.Dir(dbPath), "cooked.log")
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	w := io.Writer(io.Discard)
	var closer io.Closer
	if err == nil {
		w = f
		closer = f
	}
	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)
	return closer
}

func main() {
	// A missing .env file is fine; environment variables are the normal path.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("invalid configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err == nil {
		if f := setupLogging(cfg.DBPath); f != nil {
			defer f.Close()
		}
	}

	// The client stays usable when local persistence is unavailable; identity
	// and history just do not survive the run.
	var repo store.Repository
	repo, err = store.NewSQLite(cfg.DBPath)
	if err != nil {
		slog.Warn("local store unavailable, running without persistence", "error", err)
		repo = store.NewMemory()
	}
	defer func() {
		if closeErr := repo.Close(); closeErr != nil {
			slog.Error("failed to close store", "error", closeErr)
		}
	}()

	ctx := context.Background()
	sessionID := identity.NewStore(repo).GetOrCreate(ctx)
	slog.Info("session ready", "session_id", sessionID)

	hist := history.NewLog(repo)
	pastAttempts := 0
	if entries, histErr := hist.All(ctx); histErr == nil {
		pastAttempts = len(entries)
	} else {
		slog.Warn("failed to read attempt history", "error", histErr)
	}

	client := evaluator.New(cfg.APIBase, cfg.HTTPTimeout)
	engine := session.NewEngine(sessionID, cfg.Mode, client, telemetry.New(nil), hist)

	p := tea.NewProgram(tui.New(engine, pastAttempts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		slog.Error("UI failed", "error", err)
		os.Exit(1)
	}
}

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/jwebster45206/fiction-engine/internal/config"
	"github.com/jwebster45206/fiction-engine/internal/logger"
	redisstorage "github.com/jwebster45206/fiction-engine/internal/storage"
	"github.com/jwebster45206/fiction-engine/pkg/engine"
	"github.com/jwebster45206/fiction-engine/pkg/events"
	"github.com/jwebster45206/fiction-engine/pkg/sample"
	"github.com/jwebster45206/fiction-engine/pkg/storage"
	"github.com/jwebster45206/fiction-engine/pkg/world"
	"github.com/jwebster45206/fiction-engine/pkg/worldfile"
)

// WorldEntry is one playable world offered by the selection screen.
type WorldEntry struct {
	Name    string
	Builder engine.WorldBuilder
}

// App holds everything the UI needs to start games.
type App struct {
	cfg       *config.Config
	logger    *slog.Logger
	store     storage.Storage
	sessionID uuid.UUID
	worlds    []WorldEntry
}

func main() {
	cfg := config.Load()

	// The alt screen owns the terminal, so logs go to a file or nowhere.
	logWriter := io.Writer(io.Discard)
	if path := os.Getenv("LOG_FILE"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Could not open log file: %v\n", err)
			os.Exit(1)
		}
		defer func() {
			_ = f.Close() // Ignore error in defer
		}()
		logWriter = f
	}
	log := logger.Setup(cfg, logWriter)

	app := &App{
		cfg:       cfg,
		logger:    log,
		store:     openStorage(cfg, log),
		sessionID: sessionID(),
		worlds:    discoverWorlds(cfg, log),
	}
	defer func() {
		_ = app.store.Close() // Ignore error in defer
	}()

	p := tea.NewProgram(NewPlayUI(app),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}

// openStorage picks Redis when configured and reachable, in-memory otherwise.
// Memory saves work within the session, which is all a local game needs.
func openStorage(cfg *config.Config, log *slog.Logger) storage.Storage {
	if cfg.RedisURL == "" {
		return storage.NewMemoryStorage()
	}

	rs, err := redisstorage.NewRedisStorage(cfg.RedisURL, cfg.SaveTTL, log)
	if err != nil {
		log.Warn("Redis unavailable, using in-memory saves", "error", err)
		return storage.NewMemoryStorage()
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rs.Ping(ctx); err != nil {
		log.Warn("Redis unavailable, using in-memory saves", "error", err)
		_ = rs.Close()
		return storage.NewMemoryStorage()
	}
	return rs
}

// sessionID reuses SESSION_ID when set so saves survive across runs against
// the same Redis.
func sessionID() uuid.UUID {
	if raw := os.Getenv("SESSION_ID"); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			return id
		}
	}
	return uuid.New()
}

// discoverWorlds lists the built-in game plus every valid YAML world in the
// world directory.
func discoverWorlds(cfg *config.Config, log *slog.Logger) []WorldEntry {
	entries := []WorldEntry{
		{Name: "Cloak of Darkness", Builder: sample.NewCloakWorld},
	}

	var files []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(cfg.WorldDir, pattern))
		if err == nil {
			files = append(files, matches...)
		}
	}
	sort.Strings(files)

	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Warn("Skipping unreadable world file", "path", path, "error", err)
			continue
		}
		doc, err := worldfile.Parse(data)
		if err != nil {
			log.Warn("Skipping invalid world file", "path", path, "error", err)
			continue
		}
		if err := worldfile.Validate(doc); err != nil {
			log.Warn("Skipping invalid world file", "path", path, "error", err)
			continue
		}

		worldPath := path
		entries = append(entries, WorldEntry{
			Name: doc.Name,
			Builder: func(_ *events.Scheduler) (*world.World, error) {
				return worldfile.Load(worldPath)
			},
		})
	}
	return entries
}

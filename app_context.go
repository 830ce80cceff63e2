package main

import (
	"log/slog"
	"net/http"
	"time"
)

// AppContext carries every shared dependency the handlers need. It is
// assembled once in main and passed explicitly; nothing reaches for
// globals.
type AppContext struct {
	Config     *Config
	Registry   *CommandRegistry
	Menus      *MenuTree
	Sessions   *SessionStore
	Artifacts  *ArtifactCache
	Gate       *Gate
	Downloader MediaDownloader
	HTTP       *http.Client
	StartTime  time.Time
}

// InitApp wires the application together: command registry, menu tree,
// session and artifact stores, and the membership gate.
func InitApp(cfg *Config, bot BotAPI, downloader MediaDownloader) *AppContext {
	app := &AppContext{
		Config:     cfg,
		Registry:   NewCommandRegistry(),
		Menus:      buildMenuTree(),
		Sessions:   NewSessionStore(),
		Artifacts:  NewArtifactCache(),
		Gate:       newGate(cfg, bot),
		Downloader: downloader,
		HTTP:       &http.Client{Timeout: cfg.lookupTimeout()},
		StartTime:  time.Now(),
	}
	registerCommands(app)
	return app
}

const janitorInterval = 5 * time.Minute

// StartJanitors launches the TTL sweeps for artifacts and idle sessions.
// A negative TTL disables the corresponding sweep.
func (app *AppContext) StartJanitors() {
	if app.Config.TTL.ArtifactMinutes > 0 {
		ttl := time.Duration(app.Config.TTL.ArtifactMinutes) * time.Minute
		go app.runJanitor("artifacts", func() int {
			return app.Artifacts.EvictOlderThan(ttl)
		})
	}
	if app.Config.TTL.SessionIdleHours > 0 {
		maxIdle := time.Duration(app.Config.TTL.SessionIdleHours) * time.Hour
		go app.runJanitor("sessions", func() int {
			return app.Sessions.EvictIdle(maxIdle, func(s *Session) {
				app.Artifacts.Release(s.UserID)
			})
		})
	}
}

func (app *AppContext) runJanitor(name string, sweep func() int) {
	ticker := time.NewTicker(janitorInterval)
	defer ticker.Stop()
	for range ticker.C {
		if n := sweep(); n > 0 {
			slog.Info("Janitor sweep", "target", name, "evicted", n)
		}
	}
}

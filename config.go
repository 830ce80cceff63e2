package main

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// loadConfig reads config.json (optional) with env overrides. A missing
// bot token is fatal here, never later.
func loadConfig() *Config {
	// .env is a convenience for local runs; absence is not an error.
	_ = godotenv.Load()

	cfg := &Config{}
	data, err := os.ReadFile("config.json")
	switch {
	case err == nil:
		if err := json.Unmarshal(data, cfg); err != nil {
			log.Fatalf("config.json unparseable: %v", err)
		}
	case errors.Is(err, os.ErrNotExist):
		// Defaults plus env vars are enough to run.
	default:
		log.Fatalf("config.json unreadable: %v", err)
	}

	if tok := os.Getenv("BOT_TOKEN"); tok != "" {
		cfg.BotToken = tok
	}
	if cfg.BotToken == "" {
		log.Fatal("bot token missing: set BOT_TOKEN or bot_token in config.json")
	}

	applyConfigDefaults(cfg)
	return cfg
}

// applyConfigDefaults fills in sensible defaults for everything optional.
func applyConfigDefaults(cfg *Config) {
	if cfg.Lookup.TimeoutSeconds <= 0 {
		cfg.Lookup.TimeoutSeconds = 10
	}
	if cfg.Lookup.DNSServer == "" {
		cfg.Lookup.DNSServer = "8.8.8.8:53"
	}
	if cfg.Media.DownloadDir == "" {
		cfg.Media.DownloadDir = os.TempDir()
	}
	if cfg.Media.DownloadTimeoutSeconds <= 0 {
		cfg.Media.DownloadTimeoutSeconds = 30
	}
	if cfg.Greeting.Text == "" {
		cfg.Greeting.Text = "🔍 OSINT TOOLKIT 🔍"
	}
	if cfg.Greeting.RevealDelayMs <= 0 {
		cfg.Greeting.RevealDelayMs = 80
	}
	if cfg.TTL.ArtifactMinutes == 0 {
		cfg.TTL.ArtifactMinutes = 60
	}
	if cfg.TTL.SessionIdleHours == 0 {
		cfg.TTL.SessionIdleHours = 24
	}
}

func (c *Config) lookupTimeout() time.Duration {
	return time.Duration(c.Lookup.TimeoutSeconds) * time.Second
}

func (c *Config) downloadTimeout() time.Duration {
	return time.Duration(c.Media.DownloadTimeoutSeconds) * time.Second
}

func (c *Config) revealDelay() time.Duration {
	return time.Duration(c.Greeting.RevealDelayMs) * time.Millisecond
}

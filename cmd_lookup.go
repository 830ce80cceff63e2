package main

import (
	"context"
	"log/slog"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"osintbot/internal/format"
	"osintbot/internal/osint"
)

// ProviderCmd adapts a lookup provider to the command surface: it runs the
// provider under the configured timeout and replies with its text, bounded.
type ProviderCmd struct {
	provider osint.Provider
	desc     string
	minArgs  int
	usage    string
}

func NewProviderCmd(p osint.Provider, desc string, minArgs int, usage string) *ProviderCmd {
	return &ProviderCmd{provider: p, desc: desc, minArgs: minArgs, usage: usage}
}

func (c *ProviderCmd) Description() string { return c.desc }
func (c *ProviderCmd) MinArgs() int        { return c.minArgs }
func (c *ProviderCmd) Usage() string       { return c.usage }

func (c *ProviderCmd) Execute(app *AppContext, bot BotAPI, sess *Session, msg *tgbotapi.Message, args []string) {
	runLookup(app, bot, sess, c.provider, c.desc, args)
}

// ArtifactCmd runs a provider against the user's cached upload in a given
// slot. The provider sees the local file path as its single argument; users
// without a cached upload get pointed at the upload flow instead.
type ArtifactCmd struct {
	provider osint.Provider
	slot     string
	desc     string
	usage    string
	missing  string
}

func NewArtifactCmd(p osint.Provider, slot, desc, usage, missing string) *ArtifactCmd {
	return &ArtifactCmd{provider: p, slot: slot, desc: desc, usage: usage, missing: missing}
}

func (c *ArtifactCmd) Description() string { return c.desc }
func (c *ArtifactCmd) MinArgs() int        { return 0 }
func (c *ArtifactCmd) Usage() string       { return c.usage }

func (c *ArtifactCmd) Execute(app *AppContext, bot BotAPI, sess *Session, msg *tgbotapi.Message, args []string) {
	ref, ok := app.Artifacts.Fetch(sess.UserID, c.slot)
	if !ok {
		safeSend(bot, sess.ChatID, c.missing)
		return
	}
	runLookup(app, bot, sess, c.provider, c.desc, []string{ref.Path})
}

// runLookup executes a provider with the lookup timeout and renders the
// outcome. Success text goes out as-is (bounded); failures become a single
// user-safe error line and a structured log entry.
func runLookup(app *AppContext, bot BotAPI, sess *Session, p osint.Provider, label string, args []string) {
	ctx, cancel := context.WithTimeout(context.Background(), app.Config.lookupTimeout())
	defer cancel()

	start := time.Now()
	text, err := p.Execute(ctx, args)
	if err != nil {
		slog.Warn("Lookup failed", "cmd", label, "user", sess.UserID, "err", err, "took", time.Since(start))
		safeSend(bot, sess.ChatID, format.UserError(label, err))
		return
	}
	slog.Info("Lookup served", "cmd", label, "user", sess.UserID, "took", time.Since(start))
	safeSend(bot, sess.ChatID, format.Bound(text))
}

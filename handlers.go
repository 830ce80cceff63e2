package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"osintbot/internal/format"
	"osintbot/internal/model"
)

// Callback namespaces. Menu ids are their own namespace (menu_*).
const (
	callbackVerify         = "verify_membership"
	cmdCallbackPrefix      = "cmd_"
	artifactCallbackPrefix = "art_"
)

// Dispatch is the entry point for every update. It routes the event into
// the owning user's mailbox; the per-session worker goroutine does the
// actual handling, so one user's events are processed strictly in order
// while different users never wait on each other.
func Dispatch(app *AppContext, bot BotAPI, update tgbotapi.Update) {
	from, chatID, ok := eventSource(update)
	if !ok {
		return
	}

	sess, created := app.Sessions.GetOrCreate(from.ID, chatID)
	if created {
		go sessionWorker(app, bot, sess)
	}

	// A newer event cuts any greeting animation short so the reply the
	// user is waiting for is never stuck behind cosmetic edits.
	sess.CancelReveal()
	sess.Enqueue(update)
}

// eventSource extracts the acting user and chat from an update.
func eventSource(update tgbotapi.Update) (*tgbotapi.User, int64, bool) {
	switch {
	case update.CallbackQuery != nil && update.CallbackQuery.Message != nil:
		return update.CallbackQuery.From, update.CallbackQuery.Message.Chat.ID, true
	case update.Message != nil && update.Message.From != nil:
		return update.Message.From, update.Message.Chat.ID, true
	default:
		return nil, 0, false
	}
}

// sessionWorker drains one user's mailbox until the session is evicted.
func sessionWorker(app *AppContext, bot BotAPI, sess *Session) {
	slog.Info("Session started", "user", sess.UserID)
	for update := range sess.inbox {
		processEvent(app, bot, sess, update)
	}
	slog.Info("Session ended", "user", sess.UserID)
}

// processEvent handles a single event end to end: greeting, gate, then
// feature dispatch. A panic in any command is contained to this event.
func processEvent(app *AppContext, bot BotAPI, sess *Session, update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Panic while handling event", "user", sess.UserID, "panic", r)
			safeSend(bot, sess.ChatID, "❌ Something went wrong handling that. Try again.")
		}
	}()

	sess.Touch()

	if sess.MarkGreeted() {
		greet(app, bot, sess)
	}

	// The verify button must work for unverified users; everything else
	// sits behind the gate.
	if cb := update.CallbackQuery; cb != nil && cb.Data == callbackVerify {
		handleVerifyCallback(app, bot, sess, cb)
		return
	}

	if !sess.Verified() {
		allowed, err := checkGate(app, sess)
		if err != nil {
			slog.Warn("Membership check errored", "user", sess.UserID, "err", err)
			safeSend(bot, sess.ChatID, "⚠️ Could not verify your membership right now. Try again in a moment.")
			return
		}
		if !allowed {
			sendJoinPrompt(app, bot, sess)
			return
		}
		sess.SetVerified(true)
	}

	switch {
	case update.CallbackQuery != nil:
		handleCallback(app, bot, sess, update.CallbackQuery)
	case update.Message != nil:
		handleMessage(app, bot, sess, update.Message)
	}
}

func checkGate(app *AppContext, sess *Session) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), app.Config.lookupTimeout())
	defer cancel()
	return app.Gate.Check(ctx, sess.UserID)
}

// greet plays the one-time animated welcome. The reveal is cancellable so
// a user who types straight through it is not held up.
func greet(app *AppContext, bot BotAPI, sess *Session) {
	ctx, cancel := context.WithCancel(context.Background())
	sess.SetRevealCancel(cancel)
	defer sess.SetRevealCancel(nil)

	revealMessage(ctx, bot, sess.ChatID, app.Config.Greeting.Text, app.Config.revealDelay())
	cancel()
}

// sendJoinPrompt tells an unverified user how to get in.
func sendJoinPrompt(app *AppContext, bot BotAPI, sess *Session) {
	channel := app.Config.Channel.Username
	text := fmt.Sprintf("🔒 *Access required*\n\n"+
		"This bot is available to members of %s.\n"+
		"Join the channel, then tap the button below.", channel)

	rows := [][]tgbotapi.InlineKeyboardButton{}
	if channel != "" {
		joinURL := "https://t.me/" + strings.TrimPrefix(channel, "@")
		rows = append(rows, []tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonURL("📢 Join channel", joinURL),
		})
	}
	rows = append(rows, []tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardButtonData("✅ I joined — verify", callbackVerify),
	})
	sendWithKeyboard(bot, sess.ChatID, text, tgbotapi.NewInlineKeyboardMarkup(rows...))
}

// handleVerifyCallback re-runs the membership check on demand. Verifying
// twice is harmless; a verified user just gets the menu again.
func handleVerifyCallback(app *AppContext, bot BotAPI, sess *Session, cb *tgbotapi.CallbackQuery) {
	ackCallback(bot, cb.ID)

	if sess.Verified() {
		renderMenu(app, bot, sess, app.Menus.Root(), 0)
		return
	}

	allowed, err := checkGate(app, sess)
	if err != nil {
		slog.Warn("Membership check errored", "user", sess.UserID, "err", err)
		safeSend(bot, sess.ChatID, "⚠️ Could not verify your membership right now. Try again in a moment.")
		return
	}
	if !allowed {
		safeSend(bot, sess.ChatID, "❌ You are not a member yet. Join the channel first, then verify again.")
		sendJoinPrompt(app, bot, sess)
		return
	}

	sess.SetVerified(true)
	safeSend(bot, sess.ChatID, "✅ Membership verified. Welcome!")
	renderMenu(app, bot, sess, app.Menus.Root(), 0)
}

// handleCallback routes inline-button presses. Menu navigation edits the
// menu surface in place; command buttons are re-resolved against the menu
// the session is currently on, so taps on a stale render cannot fire a
// command from a screen the user already left.
func handleCallback(app *AppContext, bot BotAPI, sess *Session, cb *tgbotapi.CallbackQuery) {
	ackCallback(bot, cb.ID)
	data := cb.Data

	if app.Menus.IsMenu(data) {
		renderMenu(app, bot, sess, data, cb.Message.MessageID)
		return
	}

	if token, ok := strings.CutPrefix(data, artifactCallbackPrefix); ok {
		// Upload follow-up buttons are tied to the artifact, not to a
		// menu screen, so they skip the staleness check.
		if cmd, found := app.Registry.Resolve(token); found {
			cmd.Execute(app, bot, sess, cb.Message, nil)
		}
		return
	}

	token, cmd, found := app.Registry.ResolveCallback(data)
	if !found {
		// Unknown ids come from outdated renders or foreign keyboards.
		// The user still gets a hint, never a dead button.
		slog.Warn("Callback for unknown command", "user", sess.UserID, "data", data)
		safeSend(bot, sess.ChatID, "❓ That button is no longer valid. Try /menu.")
		return
	}

	current, msgID := sess.Menu()
	node, ok := app.Menus.Node(current)
	if !ok || !nodeHasCommand(node, token) {
		// Stale button: the session has moved on. Re-sync the surface to
		// the menu the user is actually on instead of firing the command.
		target := current
		if !ok {
			target = app.Menus.Root()
		}
		renderMenu(app, bot, sess, target, msgID)
		return
	}

	if cmd.MinArgs() > 0 {
		// Buttons carry no arguments; show how to run it as a command.
		safeSend(bot, sess.ChatID, usageReply(cmd))
		return
	}
	cmd.Execute(app, bot, sess, cb.Message, nil)
}

// handleMessage routes plain messages: media uploads feed the artifact
// cache, slash commands go through the registry, anything else gets a hint.
func handleMessage(app *AppContext, bot BotAPI, sess *Session, msg *tgbotapi.Message) {
	if len(msg.Photo) > 0 || msg.Document != nil {
		handleMediaUpload(app, bot, sess, msg)
		return
	}

	if !msg.IsCommand() {
		safeSend(bot, sess.ChatID, "💡 Send /menu to browse the tools or /help for the command list.")
		return
	}

	token := msg.Command()
	cmd, found := app.Registry.Resolve(token)
	if !found {
		safeSend(bot, sess.ChatID, fmt.Sprintf("❓ Unknown command `/%s`. Try /help.", token))
		return
	}

	args := strings.Fields(msg.CommandArguments())
	if len(args) < cmd.MinArgs() {
		safeSend(bot, sess.ChatID, usageReply(cmd))
		return
	}

	slog.Info("Command dispatched", "cmd", token, "user", sess.UserID)
	cmd.Execute(app, bot, sess, msg, args)
}

// handleMediaUpload downloads the upload, caches it under the right slot
// and offers the follow-up actions for that slot.
func handleMediaUpload(app *AppContext, bot BotAPI, sess *Session, msg *tgbotapi.Message) {
	var fileID, slot string
	switch {
	case len(msg.Photo) > 0:
		// Telegram lists photo sizes smallest first; take the largest.
		fileID = msg.Photo[len(msg.Photo)-1].FileID
		slot = model.SlotImage
	case msg.Document != nil:
		fileID = msg.Document.FileID
		slot = model.SlotDocument
		if strings.HasPrefix(msg.Document.MimeType, "image/") {
			slot = model.SlotImage
		}
	default:
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), app.Config.downloadTimeout())
	defer cancel()

	path, err := app.Downloader.Download(ctx, fileID)
	if err != nil {
		slog.Warn("Media download failed", "user", sess.UserID, "err", err)
		safeSend(bot, sess.ChatID, format.UserError("upload", err))
		return
	}
	if err := app.Artifacts.Store(sess.UserID, slot, path); err != nil {
		slog.Error("Artifact store failed", "user", sess.UserID, "err", err)
		safeSend(bot, sess.ChatID, format.UserError("upload", err))
		return
	}
	slog.Info("Upload cached", "user", sess.UserID, "slot", slot)

	if slot == model.SlotImage {
		kb := tgbotapi.NewInlineKeyboardMarkup(
			[]tgbotapi.InlineKeyboardButton{
				tgbotapi.NewInlineKeyboardButtonData("📊 EXIF Data", artifactCallbackPrefix+"exif_data"),
				tgbotapi.NewInlineKeyboardButtonData("🗺 Geolocation", artifactCallbackPrefix+"image_geolocation"),
			},
			[]tgbotapi.InlineKeyboardButton{
				tgbotapi.NewInlineKeyboardButtonData("🔍 Reverse Search", artifactCallbackPrefix+"reverse_image_search"),
			},
		)
		sendWithKeyboard(bot, sess.ChatID, "🖼 *Image received and cached.*\nPick an analysis:", kb)
		return
	}

	kb := tgbotapi.NewInlineKeyboardMarkup(
		[]tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData("📄 Document Metadata", artifactCallbackPrefix+"document_metadata"),
		},
	)
	sendWithKeyboard(bot, sess.ChatID, "📄 *Document received and cached.*\nPick an analysis:", kb)
}

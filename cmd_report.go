package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"osintbot/internal/format"
	"osintbot/internal/model"
)

// ReportCmd summarizes the user's current investigation session: access
// status, cached uploads with their remaining context, and where the user
// is in the menu tree. Everything it reads lives in memory, so the report
// reflects exactly what the next command would see.
type ReportCmd struct{}

func (c *ReportCmd) Description() string { return "Summary of your current session" }
func (c *ReportCmd) MinArgs() int        { return 0 }
func (c *ReportCmd) Usage() string       { return "/report_generate" }

func (c *ReportCmd) Execute(app *AppContext, bot BotAPI, sess *Session, msg *tgbotapi.Message, args []string) {
	var b strings.Builder
	b.WriteString("📊 *Session Report*\n\n")
	b.WriteString(fmt.Sprintf("👤 User: `%d`\n", sess.UserID))

	if sess.Verified() {
		b.WriteString("🔐 Access: verified\n")
	} else {
		b.WriteString("🔐 Access: not verified\n")
	}

	current, _ := sess.Menu()
	if n, ok := app.Menus.Node(current); ok {
		b.WriteString(fmt.Sprintf("🧭 Current menu: %s\n", n.Title))
	} else {
		b.WriteString("🧭 Current menu: none (send /menu)\n")
	}

	b.WriteString("\n📂 *Cached uploads*\n")
	b.WriteString(artifactLine(app, sess.UserID, model.SlotImage, "🖼 Image"))
	b.WriteString(artifactLine(app, sess.UserID, model.SlotDocument, "📄 Document"))

	b.WriteString(fmt.Sprintf("\n🤖 Bot uptime: %s\n", format.FormatUptime(uint64(time.Since(app.StartTime).Seconds()))))
	b.WriteString(fmt.Sprintf("👥 Active sessions: %d\n", app.Sessions.Len()))

	safeSend(bot, sess.ChatID, b.String())
}

func artifactLine(app *AppContext, userID int64, slot, label string) string {
	ref, ok := app.Artifacts.Fetch(userID, slot)
	if !ok {
		return fmt.Sprintf("%s: none\n", label)
	}
	age := time.Since(ref.CreatedAt).Round(time.Second)
	return fmt.Sprintf("%s: `%s` (cached %s ago)\n", label, filepath.Base(ref.Path), age)
}

package main

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// StartCmd re-enters the gated welcome flow: verified users get the main
// menu, everyone else gets the join prompt again.
type StartCmd struct{}

func (c *StartCmd) Description() string { return "Show the welcome screen and main menu" }
func (c *StartCmd) MinArgs() int        { return 0 }
func (c *StartCmd) Usage() string       { return "/start" }

func (c *StartCmd) Execute(app *AppContext, bot BotAPI, sess *Session, msg *tgbotapi.Message, args []string) {
	// The dispatcher has already gated this call, so reaching here means
	// the user is verified; a fresh main menu message is the whole job.
	renderMenu(app, bot, sess, app.Menus.Root(), 0)
}

// MenuCmd jumps back to the main menu from anywhere.
type MenuCmd struct{}

func (c *MenuCmd) Description() string { return "Open the main menu" }
func (c *MenuCmd) MinArgs() int        { return 0 }
func (c *MenuCmd) Usage() string       { return "/menu" }

func (c *MenuCmd) Execute(app *AppContext, bot BotAPI, sess *Session, msg *tgbotapi.Message, args []string) {
	renderMenu(app, bot, sess, app.Menus.Root(), 0)
}

// HelpCmd lists every registered command with its usage line.
type HelpCmd struct{}

func (c *HelpCmd) Description() string { return "List all commands" }
func (c *HelpCmd) MinArgs() int        { return 0 }
func (c *HelpCmd) Usage() string       { return "/help" }

func (c *HelpCmd) Execute(app *AppContext, bot BotAPI, sess *Session, msg *tgbotapi.Message, args []string) {
	var b strings.Builder
	b.WriteString("ℹ️ *Available commands*\n\n")
	for _, token := range app.Registry.Tokens() {
		cmd, _ := app.Registry.Resolve(token)
		b.WriteString(fmt.Sprintf("`%s` — %s\n", cmd.Usage(), cmd.Description()))
	}
	b.WriteString("\n💡 _Or navigate with /menu_")
	safeSend(bot, sess.ChatID, b.String())
}

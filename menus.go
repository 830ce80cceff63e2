package main

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"osintbot/internal/model"
)

// Menu ids double as callback identifiers. Everything prefixed menu_ is a
// navigation target; cmd_-prefixed callbacks resolve through the registry.
const (
	menuMain      = "menu_main"
	menuUser      = "menu_user"
	menuWeb       = "menu_web"
	menuSocial    = "menu_social"
	menuImage     = "menu_image"
	menuAdvanced  = "menu_advanced"
	menuUtilities = "menu_utilities"
	menuEducation = "menu_education"
)

// MenuTree is the immutable navigation hierarchy, built once at startup
// and only read afterwards.
type MenuTree struct {
	root  string
	nodes map[string]*model.MenuNode
}

func buildMenuTree() *MenuTree {
	nodes := []*model.MenuNode{
		{
			ID:    menuMain,
			Title: "🎯 *OSINT Toolkit — Main Menu*",
			Body: "Choose a category below:\n\n" +
				"🔹 *User OSINT* — username, email, phone lookups\n" +
				"🔹 *Web OSINT* — domain, IP, archive searches\n" +
				"🔹 *Social Media* — profile discovery\n" +
				"🔹 *Image OSINT* — reverse search & metadata\n" +
				"🔹 *Advanced Tools* — specialized investigations\n" +
				"🔹 *Utilities* — translation, URL tools & more\n\n" +
				"💡 _Tip: /help lists every command_",
			Entries: []model.MenuEntry{
				{Label: "👤 User OSINT", Target: menuUser},
				{Label: "🌐 Web OSINT", Target: menuWeb},
				{Label: "📱 Social Media", Target: menuSocial},
				{Label: "🖼 Image OSINT", Target: menuImage},
				{Label: "🔍 Advanced Tools", Target: menuAdvanced},
				{Label: "🛠 Utilities", Target: menuUtilities},
				{Label: "📚 Education", Target: menuEducation},
				{Label: "📊 Generate Report", Target: "report_generate"},
				{Label: "ℹ️ Help", Target: "help"},
			},
		},
		{
			ID:     menuUser,
			Parent: menuMain,
			Title:  "👤 *User OSINT*",
			Body: "• `/username_lookup <username>` — search a handle across platforms\n" +
				"• `/email_lookup <email>` — check an address against breach data\n" +
				"• `/phone_lookup <phone>` — phone number information\n" +
				"• `/ip_lookup <ip_address>` — geolocate an IP address\n" +
				"• `/domain_whois <domain>` — registration records\n\n" +
				"💡 _Tap a button or type the command directly_",
			Entries: []model.MenuEntry{
				{Label: "🔍 Username Lookup", Target: "username_lookup"},
				{Label: "📧 Email Lookup", Target: "email_lookup"},
				{Label: "📱 Phone Lookup", Target: "phone_lookup"},
				{Label: "🌍 IP Lookup", Target: "ip_lookup"},
				{Label: "🏢 Domain WHOIS", Target: "domain_whois"},
			},
		},
		{
			ID:     menuWeb,
			Parent: menuMain,
			Title:  "🌐 *Web OSINT*",
			Body: "• `/dns_lookup <domain>` — DNS records\n" +
				"• `/website_archive <url>` — archived versions\n" +
				"• `/subdomain_finder <domain>` — subdomain discovery\n" +
				"• `/port_scan <host>` — passive port intelligence\n" +
				"• `/pastebin_search <keyword>` — paste site search\n" +
				"• `/whois_history <domain>` — historical registration records\n\n" +
				"💡 _Tap a button or type the command directly_",
			Entries: []model.MenuEntry{
				{Label: "🔍 DNS Lookup", Target: "dns_lookup"},
				{Label: "🏛 Website Archive", Target: "website_archive"},
				{Label: "🌐 Subdomain Finder", Target: "subdomain_finder"},
				{Label: "🔓 Port Scan", Target: "port_scan"},
				{Label: "📋 Pastebin Search", Target: "pastebin_search"},
				{Label: "🕰 WHOIS History", Target: "whois_history"},
			},
		},
		{
			ID:     menuSocial,
			Parent: menuMain,
			Title:  "📱 *Social Media OSINT*",
			Body: "• `/social_media_scan <name>` — find social profiles\n" +
				"• `/github_search <keyword>` — search GitHub\n" +
				"• `/telegram_channel_info <channel>` — channel details\n" +
				"• `/telegram_user_info <user_id>` — user information\n\n" +
				"💡 _Tap a button or type the command directly_",
			Entries: []model.MenuEntry{
				{Label: "👥 Social Media Scan", Target: "social_media_scan"},
				{Label: "💻 GitHub Search", Target: "github_search"},
				{Label: "📺 Telegram Channel Info", Target: "telegram_channel_info"},
				{Label: "👤 Telegram User Info", Target: "telegram_user_info"},
			},
		},
		{
			ID:     menuImage,
			Parent: menuMain,
			Title:  "🖼 *Image OSINT*",
			Body: "Upload an image or document to this chat, then pick an\n" +
				"analysis action — or use the commands:\n\n" +
				"• `/reverse_image_search` — reverse search engines\n" +
				"• `/exif_data` — metadata of your last upload\n" +
				"• `/image_geolocation` — GPS data of your last upload\n" +
				"• `/document_metadata` — document file analysis",
			Entries: []model.MenuEntry{
				{Label: "🔍 Reverse Image Search", Target: "reverse_image_search"},
				{Label: "📊 EXIF Data", Target: "exif_data"},
				{Label: "🗺 Image Geolocation", Target: "image_geolocation"},
				{Label: "📄 Document Metadata", Target: "document_metadata"},
			},
		},
		{
			ID:     menuAdvanced,
			Parent: menuMain,
			Title:  "🔍 *Advanced OSINT*",
			Body: "• `/google_dork <query>` — curated dork queries\n" +
				"• `/shodan_lookup <host>` — internet-wide scan data\n" +
				"• `/hash_lookup <hash>` — identify and pivot on hashes\n" +
				"• `/breach_check <email>` — breach database check\n" +
				"• `/breach_check_domain <domain>` — domain-wide breach exposure\n" +
				"• `/censys_lookup <host>` — Censys scan data",
			Entries: []model.MenuEntry{
				{Label: "🔍 Google Dork", Target: "google_dork"},
				{Label: "🛰 Shodan Lookup", Target: "shodan_lookup"},
				{Label: "🔐 Hash Lookup", Target: "hash_lookup"},
				{Label: "💥 Breach Check", Target: "breach_check"},
				{Label: "💣 Domain Breach Check", Target: "breach_check_domain"},
				{Label: "🔭 Censys Lookup", Target: "censys_lookup"},
			},
		},
		{
			ID:     menuUtilities,
			Parent: menuMain,
			Title:  "🛠 *Utilities*",
			Body: "• `/translate <text>` — translation pivots\n" +
				"• `/url_expander <url>` — unshorten and trace URLs\n" +
				"• `/video_metadata <url>` — video analysis tools\n" +
				"• `/proxy_settings` — operational hygiene notes\n" +
				"• `/botstats` — bot host diagnostics",
			Entries: []model.MenuEntry{
				{Label: "🌐 Translate", Target: "translate"},
				{Label: "🔗 URL Expander", Target: "url_expander"},
				{Label: "🎬 Video Metadata", Target: "video_metadata"},
				{Label: "🔒 Proxy Settings", Target: "proxy_settings"},
				{Label: "📊 Bot Stats", Target: "botstats"},
			},
		},
		{
			ID:     menuEducation,
			Parent: menuMain,
			Title:  "📚 *Education*",
			Body:   "Curated learning material and news sources.",
			Entries: []model.MenuEntry{
				{Label: "📚 Educational Resources", Target: "educational_resources"},
				{Label: "📰 OSINT News", Target: "osint_news"},
			},
		},
	}

	t := &MenuTree{root: menuMain, nodes: make(map[string]*model.MenuNode, len(nodes))}
	for _, n := range nodes {
		t.nodes[n.ID] = n
	}
	return t
}

func (t *MenuTree) Root() string { return t.root }

func (t *MenuTree) Node(id string) (*model.MenuNode, bool) {
	n, ok := t.nodes[id]
	return n, ok
}

// IsMenu reports whether a callback identifier names a menu screen.
func (t *MenuTree) IsMenu(id string) bool {
	_, ok := t.nodes[id]
	return ok
}

// Depth counts the back-steps from a node to the root.
func (t *MenuTree) Depth(id string) int {
	depth := 0
	for id != t.root {
		n, ok := t.nodes[id]
		if !ok {
			return -1
		}
		id = n.Parent
		depth++
	}
	return depth
}

// Validate enforces the startup invariants: the root exists and has no
// parent, every parent link leads back to the root, and every entry target
// resolves to a menu or a registered command. Violations are fatal
// configuration errors, caught before the first event is accepted.
func (t *MenuTree) Validate(reg *CommandRegistry) error {
	root, ok := t.nodes[t.root]
	if !ok {
		return fmt.Errorf("menu tree has no root node %q", t.root)
	}
	if root.Parent != "" {
		return fmt.Errorf("root menu %q must not have a parent", t.root)
	}

	for id, n := range t.nodes {
		if id != t.root {
			if _, ok := t.nodes[n.Parent]; !ok {
				return fmt.Errorf("menu %q has unknown parent %q", id, n.Parent)
			}
		}
		// Walking more steps than there are nodes means a parent cycle.
		steps := 0
		for cur := id; cur != t.root; steps++ {
			if steps > len(t.nodes) {
				return fmt.Errorf("menu %q is not reachable from the root", id)
			}
			cur = t.nodes[cur].Parent
		}

		if len(n.Entries) == 0 {
			return fmt.Errorf("menu %q has no entries", id)
		}
		for _, e := range n.Entries {
			if t.IsMenu(e.Target) {
				continue
			}
			if _, ok := reg.Resolve(e.Target); !ok {
				return fmt.Errorf("menu %q entry %q targets unknown command %q", id, e.Label, e.Target)
			}
		}
	}
	return nil
}

// HasCommand reports whether a command token is an entry of the node.
// The dispatcher uses it to re-resolve button presses against the menu the
// user is actually on, so a tap on a stale render cannot desynchronize.
func nodeHasCommand(n *model.MenuNode, token string) bool {
	for _, e := range n.Entries {
		if e.Target == token {
			return true
		}
	}
	return false
}

// menuKeyboard renders a node's entries as inline buttons plus a
// synthesized Back row everywhere except the root.
func menuKeyboard(n *model.MenuNode) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, e := range n.Entries {
		data := e.Target
		if !strings.HasPrefix(e.Target, "menu_") {
			data = cmdCallbackPrefix + e.Target
		}
		rows = append(rows, []tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData(e.Label, data),
		})
	}
	if n.Parent != "" {
		rows = append(rows, []tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData("🔙 Back", n.Parent),
		})
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// renderMenu shows a menu screen. With editMsgID > 0 the existing message
// surface is updated in place; otherwise a new message is sent. Either way
// the session's current menu follows the render.
func renderMenu(app *AppContext, bot BotAPI, sess *Session, menuID string, editMsgID int) {
	n, ok := app.Menus.Node(menuID)
	if !ok {
		return
	}
	text := n.Title + "\n\n" + n.Body
	kb := menuKeyboard(n)

	if editMsgID > 0 {
		editMessage(bot, sess.ChatID, editMsgID, text, &kb)
		sess.SetMenu(menuID, editMsgID)
		return
	}

	msg := tgbotapi.NewMessage(sess.ChatID, text)
	msg.ParseMode = "Markdown"
	msg.ReplyMarkup = kb
	sent, err := bot.Send(msg)
	if err != nil {
		// Markdown rejection falls back to plain text, same surface.
		msg.ParseMode = ""
		sent, _ = bot.Send(msg)
	}
	sess.SetMenu(menuID, sent.MessageID)
}

package osint

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// The link-builder providers produce curated pivot links instead of
// calling scraping APIs: the user clicks through to verify, the bot never
// hammers third-party sites.

var usernamePlatforms = []struct {
	Name string
	URL  string
}{
	{"Instagram", "https://instagram.com/%s"},
	{"Twitter/X", "https://twitter.com/%s"},
	{"GitHub", "https://github.com/%s"},
	{"Reddit", "https://reddit.com/u/%s"},
	{"YouTube", "https://youtube.com/@%s"},
	{"TikTok", "https://tiktok.com/@%s"},
	{"LinkedIn", "https://linkedin.com/in/%s"},
	{"Facebook", "https://facebook.com/%s"},
	{"Telegram", "https://t.me/%s"},
}

// UsernameSearch builds profile links for a handle across major platforms.
func UsernameSearch() ProviderFunc {
	return func(ctx context.Context, args []string) (string, error) {
		username := strings.TrimPrefix(strings.TrimSpace(args[0]), "@")
		if username == "" {
			return "", fmt.Errorf("empty username")
		}
		var b strings.Builder
		b.WriteString(fmt.Sprintf("🎯 *Username Search Results for: %s*\n\n", username))
		for _, p := range usernamePlatforms {
			b.WriteString(fmt.Sprintf("🔗 *%s*: %s\n", p.Name, fmt.Sprintf(p.URL, url.PathEscape(username))))
		}
		b.WriteString("\n💡 _Click links to verify profile existence_")
		return b.String(), nil
	}
}

// WebsiteArchive points at the Wayback Machine captures for a URL.
func WebsiteArchive() ProviderFunc {
	return func(ctx context.Context, args []string) (string, error) {
		target := strings.TrimSpace(args[0])
		var b strings.Builder
		b.WriteString("🏛 *Website Archive Search*\n\n")
		b.WriteString(fmt.Sprintf("🔗 Original URL: %s\n", target))
		b.WriteString(fmt.Sprintf("📚 Wayback Machine: https://web.archive.org/web/*/%s\n", target))
		b.WriteString(fmt.Sprintf("📸 Archive.today: https://archive.ph/%s\n", target))
		b.WriteString("\n💡 _Open the links to browse archived versions_")
		return b.String(), nil
	}
}

var commonSubdomains = []string{
	"www", "mail", "ftp", "admin", "blog", "shop", "api", "dev", "test", "staging",
	"vpn", "portal", "cdn", "static", "m",
}

// SubdomainFinder lists common subdomain candidates plus passive discovery
// links. It performs no active enumeration.
func SubdomainFinder() ProviderFunc {
	return func(ctx context.Context, args []string) (string, error) {
		domain := strings.ToLower(strings.TrimSpace(args[0]))
		var b strings.Builder
		b.WriteString(fmt.Sprintf("🌐 *Subdomain Discovery for: %s*\n\n", domain))
		b.WriteString("🔍 *Common candidates to probe:*\n")
		for _, sub := range commonSubdomains {
			b.WriteString(fmt.Sprintf("  • `%s.%s`\n", sub, domain))
		}
		b.WriteString("\n🗄 *Passive sources:*\n")
		b.WriteString(fmt.Sprintf("  • https://crt.sh/?q=%%25.%s\n", domain))
		b.WriteString(fmt.Sprintf("  • https://dnsdumpster.com/?target=%s\n", url.QueryEscape(domain)))
		return b.String(), nil
	}
}

// PortScanInfo points at passive scan databases for a host. The bot never
// probes ports itself.
func PortScanInfo() ProviderFunc {
	return func(ctx context.Context, args []string) (string, error) {
		host := strings.TrimSpace(args[0])
		var b strings.Builder
		b.WriteString(fmt.Sprintf("🔓 *Port Scan Information for: %s*\n\n", host))
		b.WriteString("⚠️ _This bot performs passive reconnaissance only._\n\n")
		b.WriteString(fmt.Sprintf("🌐 Shodan: https://shodan.io/host/%s\n", host))
		b.WriteString(fmt.Sprintf("🔍 Censys: https://search.censys.io/hosts/%s\n", host))
		b.WriteString("\n💡 _Use /shodan\\_lookup or /censys\\_lookup for API-based results_")
		return b.String(), nil
	}
}

// PastebinSearch builds search links for paste sites.
func PastebinSearch() ProviderFunc {
	return func(ctx context.Context, args []string) (string, error) {
		keyword := strings.Join(args, " ")
		q := url.QueryEscape(keyword)
		var b strings.Builder
		b.WriteString(fmt.Sprintf("📋 *Paste Site Search for: %s*\n\n", keyword))
		b.WriteString(fmt.Sprintf("  • https://psbdmp.ws/search/%s\n", q))
		b.WriteString(fmt.Sprintf("  • https://www.google.com/search?q=site:pastebin.com+%s\n", q))
		b.WriteString(fmt.Sprintf("  • https://www.google.com/search?q=site:ghostbin.com+%s\n", q))
		return b.String(), nil
	}
}

// GithubSearch builds code/repo/user search links on GitHub.
func GithubSearch() ProviderFunc {
	return func(ctx context.Context, args []string) (string, error) {
		keyword := strings.Join(args, " ")
		q := url.QueryEscape(keyword)
		var b strings.Builder
		b.WriteString(fmt.Sprintf("💻 *GitHub Search for: %s*\n\n", keyword))
		b.WriteString(fmt.Sprintf("📦 Repositories: https://github.com/search?q=%s&type=repositories\n", q))
		b.WriteString(fmt.Sprintf("📄 Code: https://github.com/search?q=%s&type=code\n", q))
		b.WriteString(fmt.Sprintf("👤 Users: https://github.com/search?q=%s&type=users\n", q))
		b.WriteString(fmt.Sprintf("🐛 Issues: https://github.com/search?q=%s&type=issues\n", q))
		return b.String(), nil
	}
}

var dorkTemplates = []struct {
	Label string
	Dork  string
}{
	{"Exposed documents", `%s filetype:pdf OR filetype:doc OR filetype:xls`},
	{"Login pages", `%s inurl:login OR inurl:admin`},
	{"Directory listings", `%s intitle:"index of"`},
	{"Config files", `%s filetype:env OR filetype:cfg OR filetype:ini`},
	{"Subdomains", `site:*.%s`},
}

// GoogleDork renders ready-made dork queries around a target term.
func GoogleDork() ProviderFunc {
	return func(ctx context.Context, args []string) (string, error) {
		target := strings.Join(args, " ")
		var b strings.Builder
		b.WriteString(fmt.Sprintf("🔍 *Google Dorks for: %s*\n\n", target))
		for _, t := range dorkTemplates {
			dork := fmt.Sprintf(t.Dork, target)
			b.WriteString(fmt.Sprintf("*%s*\n`%s`\nhttps://www.google.com/search?q=%s\n\n", t.Label, dork, url.QueryEscape(dork)))
		}
		return b.String(), nil
	}
}

// SocialMediaScan builds people-search pivot links for a display name.
func SocialMediaScan() ProviderFunc {
	return func(ctx context.Context, args []string) (string, error) {
		name := strings.Join(args, " ")
		q := url.QueryEscape(name)
		var b strings.Builder
		b.WriteString(fmt.Sprintf("👥 *Social Media Scan for: %s*\n\n", name))
		b.WriteString(fmt.Sprintf("🔗 Facebook: https://www.facebook.com/search/people/?q=%s\n", q))
		b.WriteString(fmt.Sprintf("🔗 LinkedIn: https://www.linkedin.com/search/results/people/?keywords=%s\n", q))
		b.WriteString(fmt.Sprintf("🔗 Twitter/X: https://twitter.com/search?q=%s&f=user\n", q))
		b.WriteString(fmt.Sprintf("🔗 Instagram: https://www.instagram.com/explore/search/keyword/?q=%s\n", q))
		return b.String(), nil
	}
}

// WhoisHistory points at historical registration-record archives. Current
// records come from /domain_whois; history needs an archive service.
func WhoisHistory() ProviderFunc {
	return func(ctx context.Context, args []string) (string, error) {
		domain := strings.ToLower(strings.TrimSpace(args[0]))
		var b strings.Builder
		b.WriteString(fmt.Sprintf("🕰 *WHOIS History for: %s*\n\n", domain))
		b.WriteString(fmt.Sprintf("  • Whoxy: https://www.whoxy.com/%s#history\n", domain))
		b.WriteString(fmt.Sprintf("  • SecurityTrails: https://securitytrails.com/domain/%s/history/whois\n", domain))
		b.WriteString(fmt.Sprintf("  • Whoisology: https://whoisology.com/%s\n", domain))
		b.WriteString("\n💡 _Current registration data: /domain\\_whois_")
		return b.String(), nil
	}
}

// TelegramChannelInfo builds preview links for a public channel handle.
func TelegramChannelInfo() ProviderFunc {
	return func(ctx context.Context, args []string) (string, error) {
		handle := strings.TrimPrefix(strings.TrimSpace(args[0]), "@")
		var b strings.Builder
		b.WriteString(fmt.Sprintf("📺 *Telegram Channel: @%s*\n\n", handle))
		b.WriteString(fmt.Sprintf("🔗 Preview: https://t.me/s/%s\n", handle))
		b.WriteString(fmt.Sprintf("🔗 Direct: https://t.me/%s\n", handle))
		b.WriteString(fmt.Sprintf("📊 Analytics: https://tgstat.com/channel/@%s\n", handle))
		return b.String(), nil
	}
}

// TelegramUserInfo explains what is discoverable for a numeric user id.
func TelegramUserInfo() ProviderFunc {
	return func(ctx context.Context, args []string) (string, error) {
		id := strings.TrimSpace(args[0])
		var b strings.Builder
		b.WriteString(fmt.Sprintf("👤 *Telegram User Lookup: %s*\n\n", id))
		b.WriteString(fmt.Sprintf("🔗 Open chat: tg://user?id=%s\n\n", url.QueryEscape(id)))
		b.WriteString("💡 _Telegram only exposes public profile data. Forward a message\n")
		b.WriteString("from the user to a bot like @userinfobot for id confirmation._")
		return b.String(), nil
	}
}

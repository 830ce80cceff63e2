package main

import (
	"osintbot/internal/model"
	"osintbot/internal/osint"
)

// registerCommands binds every command token to its implementation. The
// registry panics on duplicates, so a copy-paste mistake here dies at
// startup instead of shadowing a command in production.
func registerCommands(app *AppContext) {
	reg := app.Registry
	cfg := app.Config

	reg.Register("start", &StartCmd{})
	reg.Register("menu", &MenuCmd{})
	reg.Register("help", &HelpCmd{})
	reg.Register("botstats", NewBotStatsCmd())
	reg.Register("report_generate", &ReportCmd{})

	// User OSINT
	reg.Register("username_lookup", NewProviderCmd(osint.UsernameSearch(),
		"Search a username across platforms", 1, "/username_lookup <username>"))
	reg.Register("email_lookup", NewProviderCmd(osint.EmailLookup(),
		"Check an email address against breach data", 1, "/email_lookup <email>"))
	reg.Register("phone_lookup", NewProviderCmd(osint.PhoneLookup(),
		"Phone number information", 1, "/phone_lookup <phone>"))
	reg.Register("ip_lookup", NewProviderCmd(&osint.GeoIP{Client: app.HTTP},
		"Geolocate an IP address", 1, "/ip_lookup <ip_address>"))
	reg.Register("domain_whois", NewProviderCmd(&osint.Whois{},
		"Domain registration records", 1, "/domain_whois <domain>"))

	// Web OSINT
	reg.Register("dns_lookup", NewProviderCmd(&osint.DNSLookup{Server: cfg.Lookup.DNSServer},
		"DNS records for a domain", 1, "/dns_lookup <domain>"))
	reg.Register("website_archive", NewProviderCmd(osint.WebsiteArchive(),
		"Archived versions of a site", 1, "/website_archive <url>"))
	reg.Register("subdomain_finder", NewProviderCmd(osint.SubdomainFinder(),
		"Subdomain discovery", 1, "/subdomain_finder <domain>"))
	reg.Register("port_scan", NewProviderCmd(osint.PortScanInfo(),
		"Passive port intelligence", 1, "/port_scan <host>"))
	reg.Register("pastebin_search", NewProviderCmd(osint.PastebinSearch(),
		"Search paste sites for a keyword", 1, "/pastebin_search <keyword>"))
	reg.Register("whois_history", NewProviderCmd(osint.WhoisHistory(),
		"Historical domain registration records", 1, "/whois_history <domain>"))

	// Social media
	reg.Register("social_media_scan", NewProviderCmd(osint.SocialMediaScan(),
		"Find social profiles for a name", 1, "/social_media_scan <name>"))
	reg.Register("github_search", NewProviderCmd(osint.GithubSearch(),
		"Search GitHub", 1, "/github_search <keyword>"))
	reg.Register("telegram_channel_info", NewProviderCmd(osint.TelegramChannelInfo(),
		"Telegram channel details", 1, "/telegram_channel_info <channel>"))
	reg.Register("telegram_user_info", NewProviderCmd(osint.TelegramUserInfo(),
		"Telegram user information", 1, "/telegram_user_info <user_id>"))

	// Image and document OSINT, driven by the cached upload.
	const (
		needImage = "🖼 Upload an image to this chat first, then run the command again."
		needDoc   = "📄 Upload a document to this chat first, then run the command again."
	)
	reg.Register("reverse_image_search", NewArtifactCmd(osint.ReverseImageSearch(), model.SlotImage,
		"Reverse search engines for your last image", "/reverse_image_search", needImage))
	reg.Register("exif_data", NewArtifactCmd(&osint.ExifDump{}, model.SlotImage,
		"EXIF metadata of your last image", "/exif_data", needImage))
	reg.Register("image_geolocation", NewArtifactCmd(&osint.ExifGeo{}, model.SlotImage,
		"GPS coordinates of your last image", "/image_geolocation", needImage))
	reg.Register("document_metadata", NewArtifactCmd(&osint.DocumentMeta{}, model.SlotDocument,
		"Metadata of your last document", "/document_metadata", needDoc))

	// Advanced
	reg.Register("google_dork", NewProviderCmd(osint.GoogleDork(),
		"Curated dork queries", 1, "/google_dork <query>"))
	reg.Register("shodan_lookup", NewProviderCmd(osint.ShodanLookup(),
		"Internet-wide scan data", 1, "/shodan_lookup <host>"))
	reg.Register("hash_lookup", NewProviderCmd(osint.HashLookup(),
		"Identify and pivot on a hash", 1, "/hash_lookup <hash>"))
	reg.Register("breach_check", NewProviderCmd(osint.BreachCheck(),
		"Breach database check", 1, "/breach_check <email>"))
	reg.Register("breach_check_domain", NewProviderCmd(osint.DomainBreachCheck(),
		"Domain-wide breach exposure", 1, "/breach_check_domain <domain>"))
	reg.Register("censys_lookup", NewProviderCmd(osint.CensysLookup(),
		"Censys scan data", 1, "/censys_lookup <host>"))

	// Utilities
	reg.Register("translate", NewProviderCmd(osint.Translate(),
		"Translation pivots", 1, "/translate <text>"))
	reg.Register("url_expander", NewProviderCmd(&osint.URLExpander{Client: app.HTTP},
		"Unshorten and trace a URL", 1, "/url_expander <url>"))
	reg.Register("video_metadata", NewProviderCmd(osint.VideoMetadata(),
		"Video analysis tools", 1, "/video_metadata <url>"))
	reg.Register("proxy_settings", NewProviderCmd(osint.ProxySettings(),
		"Operational hygiene notes", 0, "/proxy_settings"))

	// Education
	reg.Register("educational_resources", NewProviderCmd(osint.EducationalResources(),
		"Curated learning material", 0, "/educational_resources"))
	reg.Register("osint_news", NewProviderCmd(osint.OsintNews(),
		"News sources and feeds", 0, "/osint_news"))
}

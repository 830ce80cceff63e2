package osint

import (
	"context"
	"strings"
)

// Static wraps a fixed text block as a Provider. Used for the education
// and news screens, which are curated rather than looked up.
func Static(text string) ProviderFunc {
	return func(ctx context.Context, args []string) (string, error) {
		return text, nil
	}
}

// EducationalResources is the curated OSINT learning screen.
func EducationalResources() ProviderFunc {
	var b strings.Builder
	b.WriteString("📚 *Educational Resources*\n\n")
	b.WriteString("🎓 *Free courses:*\n")
	b.WriteString("  • OSINT Curious webinars\n")
	b.WriteString("  • Bellingcat Online Investigation Toolkit\n")
	b.WriteString("  • Trace Labs OSINT Search Party\n\n")
	b.WriteString("📖 *Books:*\n")
	b.WriteString("  • \"Open Source Intelligence Techniques\" — Michael Bazzell\n")
	b.WriteString("  • \"OSINT Handbook\" — i-intelligence\n\n")
	b.WriteString("🔧 *Practice platforms:*\n")
	b.WriteString("  • Trace Labs CTF\n")
	b.WriteString("  • Gralhix challenges\n")
	b.WriteString("  • OSINT Dojo\n\n")
	b.WriteString("🌐 *Reference sites:*\n")
	b.WriteString("  • https://osintframework.com/\n")
	b.WriteString("  • https://github.com/jivoi/awesome-osint\n")
	return Static(b.String())
}

// OsintNews links the places where technique updates actually get posted.
func OsintNews() ProviderFunc {
	var b strings.Builder
	b.WriteString("📰 *OSINT News & Updates*\n\n")
	b.WriteString("  • Bellingcat: https://www.bellingcat.com/\n")
	b.WriteString("  • OSINT Curious: https://osintcurio.us/\n")
	b.WriteString("  • Sector035 Week in OSINT: https://sector035.nl/\n")
	b.WriteString("  • r/OSINT: https://reddit.com/r/OSINT\n")
	return Static(b.String())
}

// ProxySettings explains the recommended operational hygiene.
func ProxySettings() ProviderFunc {
	var b strings.Builder
	b.WriteString("🔒 *Proxy & Operational Hygiene*\n\n")
	b.WriteString("This bot talks to lookup services directly from its host.\n")
	b.WriteString("For sensitive investigations:\n\n")
	b.WriteString("  • Route your own browsing through a VPN or Tor\n")
	b.WriteString("  • Use dedicated research accounts, never personal ones\n")
	b.WriteString("  • Assume every site you pivot through logs your visit\n")
	return Static(b.String())
}

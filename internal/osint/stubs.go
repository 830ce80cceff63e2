package osint

import (
	"context"
	"fmt"
	"net/mail"
	"net/url"
	"strings"
)

// The families below are deliberately pluggable: breach databases, Shodan,
// Censys, and translation all need paid API keys and are out of scope for
// the core. Each stub keeps the command surface intact and tells the user
// exactly which integration to plug in.

// BreachCheck validates the address and reports the integration status.
func BreachCheck() ProviderFunc {
	return func(ctx context.Context, args []string) (string, error) {
		email := strings.TrimSpace(args[0])
		if _, err := mail.ParseAddress(email); err != nil {
			return "", fmt.Errorf("%q is not a valid email address", email)
		}
		var b strings.Builder
		b.WriteString(fmt.Sprintf("🛡 *Breach Check for: %s*\n\n", email))
		b.WriteString("⚙️ No breach-database provider is configured.\n\n")
		b.WriteString("🔍 *Check manually:*\n")
		b.WriteString("  • https://haveibeenpwned.com/\n")
		b.WriteString("  • https://dehashed.com/\n")
		b.WriteString("\n💡 _Wire a HaveIBeenPwned API key to enable live checks_")
		return b.String(), nil
	}
}

// EmailLookup is the breach check plus basic address validation; kept as a
// distinct token because the menu exposes both.
func EmailLookup() ProviderFunc {
	breach := BreachCheck()
	return func(ctx context.Context, args []string) (string, error) {
		return breach(ctx, args)
	}
}

// DomainBreachCheck reports breach exposure for a whole domain. Domain
// search needs a verified HaveIBeenPwned subscription, so this stays a
// pivot screen until one is wired.
func DomainBreachCheck() ProviderFunc {
	return func(ctx context.Context, args []string) (string, error) {
		domain := strings.ToLower(strings.TrimSpace(args[0]))
		if !strings.Contains(domain, ".") || strings.ContainsAny(domain, " @/") {
			return "", fmt.Errorf("%q is not a valid domain name", domain)
		}
		var b strings.Builder
		b.WriteString(fmt.Sprintf("💥 *Domain Breach Check for: %s*\n\n", domain))
		b.WriteString("⚙️ No breach-database provider is configured.\n\n")
		b.WriteString("🔍 *Check manually:*\n")
		b.WriteString("  • https://haveibeenpwned.com/DomainSearch\n")
		b.WriteString(fmt.Sprintf("  • https://dehashed.com/search?query=%s\n", url.QueryEscape(domain)))
		b.WriteString("\n💡 _Wire a HaveIBeenPwned domain subscription to enable live checks_")
		return b.String(), nil
	}
}

// PhoneLookup reports what a live numbering-plan provider would return.
func PhoneLookup() ProviderFunc {
	return func(ctx context.Context, args []string) (string, error) {
		phone := strings.TrimSpace(args[0])
		var b strings.Builder
		b.WriteString(fmt.Sprintf("📞 *Phone Number Analysis: %s*\n\n", phone))
		b.WriteString("⚙️ No numbering-plan provider is configured.\n\n")
		b.WriteString("🔍 *Check manually:*\n")
		b.WriteString(fmt.Sprintf("  • https://www.truecaller.com/search/%s\n", strings.TrimPrefix(phone, "+")))
		b.WriteString("  • https://numverify.com/\n")
		b.WriteString("\n💡 _Wire a numverify API key to enable live lookups_")
		return b.String(), nil
	}
}

// ShodanLookup points at the Shodan host page until an API key is wired.
func ShodanLookup() ProviderFunc {
	return func(ctx context.Context, args []string) (string, error) {
		host := strings.TrimSpace(args[0])
		var b strings.Builder
		b.WriteString(fmt.Sprintf("🛰 *Shodan Lookup: %s*\n\n", host))
		b.WriteString("⚙️ No Shodan API key is configured.\n\n")
		b.WriteString(fmt.Sprintf("🔗 Host page: https://shodan.io/host/%s\n", host))
		b.WriteString("💡 _Wire a Shodan API key to query device data directly_")
		return b.String(), nil
	}
}

// CensysLookup points at the Censys host page until an API key is wired.
func CensysLookup() ProviderFunc {
	return func(ctx context.Context, args []string) (string, error) {
		host := strings.TrimSpace(args[0])
		var b strings.Builder
		b.WriteString(fmt.Sprintf("🔭 *Censys Lookup: %s*\n\n", host))
		b.WriteString("⚙️ No Censys API credentials are configured.\n\n")
		b.WriteString(fmt.Sprintf("🔗 Host page: https://search.censys.io/hosts/%s\n", host))
		b.WriteString("💡 _Wire Censys API credentials to query scan data directly_")
		return b.String(), nil
	}
}

// Translate points at web translators until a translation provider is wired.
func Translate() ProviderFunc {
	return func(ctx context.Context, args []string) (string, error) {
		text := strings.Join(args, " ")
		var b strings.Builder
		b.WriteString("🌐 *Translation*\n\n")
		b.WriteString("⚙️ No translation provider is configured.\n\n")
		b.WriteString(fmt.Sprintf("🔗 Google Translate: https://translate.google.com/?text=%s\n", url.QueryEscape(text)))
		b.WriteString(fmt.Sprintf("🔗 DeepL: https://www.deepl.com/translator#auto/en/%s\n", url.QueryEscape(text)))
		return b.String(), nil
	}
}

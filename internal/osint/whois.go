package osint

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/likexian/whois"
	whoisparser "github.com/likexian/whois-parser"
)

// Whois queries domain registration data and renders the parsed record.
type Whois struct {
	// Lookup is swappable for tests; defaults to a live whois query.
	Lookup func(ctx context.Context, domain string) (string, error)
}

func liveWhois(ctx context.Context, domain string) (string, error) {
	c := whois.NewClient()
	if deadline, ok := ctx.Deadline(); ok {
		c.SetTimeout(time.Until(deadline))
	}
	return c.Whois(domain)
}

func (w *Whois) Execute(ctx context.Context, args []string) (string, error) {
	domain := strings.ToLower(strings.TrimSpace(args[0]))

	lookup := w.Lookup
	if lookup == nil {
		lookup = liveWhois
	}
	raw, err := lookup(ctx, domain)
	if err != nil {
		return "", fmt.Errorf("whois query failed: %w", err)
	}

	parsed, err := whoisparser.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("whois record for %s unparseable: %w", domain, err)
	}

	return RenderWhois(domain, parsed), nil
}

// RenderWhois formats a parsed whois record for the chat surface.
func RenderWhois(domain string, info whoisparser.WhoisInfo) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("🏢 *WHOIS Information for: %s*\n\n", domain))

	if d := info.Domain; d != nil {
		b.WriteString(fmt.Sprintf("📅 Created: `%s`\n", orUnknown(d.CreatedDate)))
		b.WriteString(fmt.Sprintf("📅 Expires: `%s`\n", orUnknown(d.ExpirationDate)))
		b.WriteString(fmt.Sprintf("🔄 Updated: `%s`\n", orUnknown(d.UpdatedDate)))
		if len(d.NameServers) > 0 {
			b.WriteString("🌐 Name Servers:\n")
			for _, ns := range d.NameServers {
				b.WriteString(fmt.Sprintf("  • `%s`\n", ns))
			}
		}
		if len(d.Status) > 0 {
			b.WriteString(fmt.Sprintf("🚦 Status: `%s`\n", strings.Join(d.Status, ", ")))
		}
	}
	if r := info.Registrar; r != nil && r.Name != "" {
		b.WriteString(fmt.Sprintf("🏬 Registrar: `%s`\n", r.Name))
	}
	if reg := info.Registrant; reg != nil {
		if reg.Organization != "" {
			b.WriteString(fmt.Sprintf("👤 Registrant: `%s`\n", reg.Organization))
		}
		if reg.Email != "" {
			b.WriteString(fmt.Sprintf("📧 Registrant Email: `%s`\n", reg.Email))
		}
	}
	return b.String()
}

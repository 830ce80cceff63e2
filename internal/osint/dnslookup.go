package osint

import (
	"context"
	"fmt"
	"strings"

	"github.com/miekg/dns"
)

// DNSLookup resolves the common record types for a domain against a
// configured resolver.
type DNSLookup struct {
	Server string // host:port, e.g. "8.8.8.8:53"

	// Exchange is swappable for tests; defaults to a UDP exchange.
	Exchange func(ctx context.Context, m *dns.Msg, server string) (*dns.Msg, error)
}

var recordTypes = []struct {
	Label string
	Icon  string
	Type  uint16
}{
	{"A Records", "📍", dns.TypeA},
	{"AAAA Records", "📍", dns.TypeAAAA},
	{"MX Records", "📧", dns.TypeMX},
	{"NS Records", "🌐", dns.TypeNS},
	{"TXT Records", "📝", dns.TypeTXT},
}

func liveExchange(ctx context.Context, m *dns.Msg, server string) (*dns.Msg, error) {
	c := new(dns.Client)
	r, _, err := c.ExchangeContext(ctx, m, server)
	return r, err
}

func (d *DNSLookup) Execute(ctx context.Context, args []string) (string, error) {
	domain := dns.Fqdn(strings.ToLower(strings.TrimSpace(args[0])))
	if _, ok := dns.IsDomainName(domain); !ok {
		return "", fmt.Errorf("%q is not a valid domain name", args[0])
	}

	exchange := d.Exchange
	if exchange == nil {
		exchange = liveExchange
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("🌐 *DNS Records for: %s*\n\n", strings.TrimSuffix(domain, ".")))

	answered := false
	for _, rt := range recordTypes {
		m := new(dns.Msg)
		m.SetQuestion(domain, rt.Type)
		m.RecursionDesired = true

		r, err := exchange(ctx, m, d.Server)
		if err != nil {
			// One failing record type does not sink the whole lookup.
			b.WriteString(fmt.Sprintf("%s *%s*: query failed\n\n", rt.Icon, rt.Label))
			continue
		}
		if len(r.Answer) == 0 {
			b.WriteString(fmt.Sprintf("%s *%s*: none found\n\n", rt.Icon, rt.Label))
			continue
		}
		answered = true
		b.WriteString(fmt.Sprintf("%s *%s*:\n", rt.Icon, rt.Label))
		for _, rr := range r.Answer {
			b.WriteString(fmt.Sprintf("  • `%s`\n", renderRR(rr)))
		}
		b.WriteString("\n")
	}

	if !answered {
		return "", fmt.Errorf("no DNS records found for %s", strings.TrimSuffix(domain, "."))
	}
	return b.String(), nil
}

func renderRR(rr dns.RR) string {
	switch v := rr.(type) {
	case *dns.A:
		return v.A.String()
	case *dns.AAAA:
		return v.AAAA.String()
	case *dns.MX:
		return fmt.Sprintf("%d %s", v.Preference, v.Mx)
	case *dns.NS:
		return v.Ns
	case *dns.TXT:
		return strings.Join(v.Txt, " ")
	default:
		// Strip the header; keep only the rdata portion.
		s := rr.String()
		if i := strings.LastIndex(s, "\t"); i >= 0 {
			return s[i+1:]
		}
		return s
	}
}

package osint

import (
	"context"
	"errors"
	"strings"
	"testing"

	whoisparser "github.com/likexian/whois-parser"
)

func TestRenderWhoisFullRecord(t *testing.T) {
	info := whoisparser.WhoisInfo{
		Domain: &whoisparser.Domain{
			CreatedDate:    "1995-08-14T04:00:00Z",
			ExpirationDate: "2026-08-13T04:00:00Z",
			UpdatedDate:    "2025-08-14T07:01:38Z",
			NameServers:    []string{"a.iana-servers.net", "b.iana-servers.net"},
			Status:         []string{"clientDeleteProhibited"},
		},
		Registrar:  &whoisparser.Contact{Name: "RESERVED-Internet Assigned Numbers Authority"},
		Registrant: &whoisparser.Contact{Organization: "Internet Assigned Numbers Authority"},
	}

	out := RenderWhois("example.com", info)
	for _, want := range []string{
		"WHOIS Information for: example.com",
		"1995-08-14T04:00:00Z",
		"a.iana-servers.net",
		"clientDeleteProhibited",
		"RESERVED-Internet Assigned Numbers Authority",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderWhoisSparseRecord(t *testing.T) {
	out := RenderWhois("example.com", whoisparser.WhoisInfo{
		Domain: &whoisparser.Domain{},
	})
	if !strings.Contains(out, "Unknown") {
		t.Errorf("missing dates should render as Unknown:\n%s", out)
	}
}

func TestWhoisLookupFailurePropagates(t *testing.T) {
	w := &Whois{Lookup: func(ctx context.Context, domain string) (string, error) {
		return "", errors.New("connection refused")
	}}
	_, err := w.Execute(context.Background(), []string{"example.com"})
	if err == nil || !strings.Contains(err.Error(), "whois query failed") {
		t.Fatalf("want wrapped lookup error, got %v", err)
	}
}

func TestWhoisNormalizesDomainCase(t *testing.T) {
	var asked string
	w := &Whois{Lookup: func(ctx context.Context, domain string) (string, error) {
		asked = domain
		return "", errors.New("stop here")
	}}
	_, _ = w.Execute(context.Background(), []string{"  EXAMPLE.com "})
	if asked != "example.com" {
		t.Errorf("lookup asked for %q, want example.com", asked)
	}
}

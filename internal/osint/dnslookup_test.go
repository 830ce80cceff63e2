package osint

import (
	"context"
	"errors"
	"net"
	"strings"
	"testing"

	"github.com/miekg/dns"
)

// fakeExchange serves canned answers per record type.
func fakeExchange(answers map[uint16][]dns.RR) func(ctx context.Context, m *dns.Msg, server string) (*dns.Msg, error) {
	return func(ctx context.Context, m *dns.Msg, server string) (*dns.Msg, error) {
		r := new(dns.Msg)
		r.SetReply(m)
		r.Answer = answers[m.Question[0].Qtype]
		return r, nil
	}
}

func aRecord(name, ip string) *dns.A {
	return &dns.A{
		Hdr: dns.RR_Header{Name: name, Rrtype: dns.TypeA, Class: dns.ClassINET, Ttl: 300},
		A:   net.ParseIP(ip),
	}
}

func TestDNSLookupRendersAnswers(t *testing.T) {
	d := &DNSLookup{
		Server: "test:53",
		Exchange: fakeExchange(map[uint16][]dns.RR{
			dns.TypeA: {aRecord("example.com.", "93.184.216.34")},
			dns.TypeMX: {&dns.MX{
				Hdr:        dns.RR_Header{Name: "example.com.", Rrtype: dns.TypeMX, Class: dns.ClassINET, Ttl: 300},
				Preference: 10,
				Mx:         "mail.example.com.",
			}},
		}),
	}

	out, err := d.Execute(context.Background(), []string{"EXAMPLE.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "93.184.216.34") {
		t.Errorf("A record missing:\n%s", out)
	}
	if !strings.Contains(out, "10 mail.example.com.") {
		t.Errorf("MX record missing:\n%s", out)
	}
	if !strings.Contains(out, "DNS Records for: example.com") {
		t.Errorf("header should use the lowercased domain:\n%s", out)
	}
}

func TestDNSLookupPartialFailureStillAnswers(t *testing.T) {
	calls := 0
	d := &DNSLookup{
		Server: "test:53",
		Exchange: func(ctx context.Context, m *dns.Msg, server string) (*dns.Msg, error) {
			calls++
			if m.Question[0].Qtype == dns.TypeTXT {
				return nil, errors.New("timeout")
			}
			r := new(dns.Msg)
			r.SetReply(m)
			if m.Question[0].Qtype == dns.TypeA {
				r.Answer = []dns.RR{aRecord("example.com.", "1.2.3.4")}
			}
			return r, nil
		},
	}

	out, err := d.Execute(context.Background(), []string{"example.com"})
	if err != nil {
		t.Fatalf("one failed record type sank the lookup: %v", err)
	}
	if !strings.Contains(out, "1.2.3.4") {
		t.Errorf("surviving answers missing:\n%s", out)
	}
	if !strings.Contains(out, "query failed") {
		t.Errorf("failed record type not reported:\n%s", out)
	}
	if calls != len(recordTypes) {
		t.Errorf("want %d queries, got %d", len(recordTypes), calls)
	}
}

func TestDNSLookupAllEmptyIsAnError(t *testing.T) {
	d := &DNSLookup{
		Server:   "test:53",
		Exchange: fakeExchange(map[uint16][]dns.RR{}),
	}
	if _, err := d.Execute(context.Background(), []string{"example.com"}); err == nil {
		t.Fatal("want error when no record type answers")
	}
}

func TestDNSLookupRejectsInvalidDomain(t *testing.T) {
	d := &DNSLookup{Server: "test:53", Exchange: fakeExchange(nil)}
	bad := strings.Repeat("x", 80) + "." + strings.Repeat("y", 200)
	if _, err := d.Execute(context.Background(), []string{bad}); err == nil {
		t.Fatal("oversized label accepted as a domain")
	}
}

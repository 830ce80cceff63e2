package osint

import (
	"context"
	"strings"
	"testing"
)

func TestUsernameSearchStripsAtAndEscapes(t *testing.T) {
	p := UsernameSearch()
	out, err := p(context.Background(), []string{"@jane_doe"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "https://github.com/jane_doe") {
		t.Errorf("github link missing:\n%s", out)
	}
	if strings.Contains(out, "@jane_doe*") {
		t.Error("leading @ not stripped from header")
	}

	if _, err := p(context.Background(), []string{"@"}); err == nil {
		t.Error("bare @ accepted as a username")
	}
}

func TestSubdomainFinderListsCandidatesAndSources(t *testing.T) {
	p := SubdomainFinder()
	out, err := p(context.Background(), []string{"Example.COM"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "`www.example.com`") {
		t.Errorf("candidates not lowercased:\n%s", out)
	}
	if !strings.Contains(out, "crt.sh") {
		t.Error("passive source links missing")
	}
}

func TestGoogleDorkEscapesQueries(t *testing.T) {
	p := GoogleDork()
	out, err := p(context.Background(), []string{"acme", "corp"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "`acme corp intitle:\"index of\"`") {
		t.Errorf("dork template not filled:\n%s", out)
	}
	if strings.Contains(out, "search?q=acme corp") {
		t.Error("query not URL-escaped in the link")
	}
}

func TestWhoisHistoryLinksArchiveServices(t *testing.T) {
	p := WhoisHistory()
	out, err := p(context.Background(), []string{"Example.COM"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "https://www.whoxy.com/example.com#history") {
		t.Errorf("domain not lowercased in archive link:\n%s", out)
	}
	if !strings.Contains(out, "securitytrails.com/domain/example.com/history/whois") {
		t.Errorf("history pivot missing:\n%s", out)
	}
}

func TestTelegramChannelInfoNormalizesHandle(t *testing.T) {
	p := TelegramChannelInfo()
	out, err := p(context.Background(), []string{"@somechannel"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "https://t.me/s/somechannel") {
		t.Errorf("preview link missing or handle not normalized:\n%s", out)
	}
}

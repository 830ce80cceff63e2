package osint

import (
	"context"
	"strings"
	"testing"
)

func TestBreachCheckValidatesEmail(t *testing.T) {
	p := BreachCheck()
	if _, err := p(context.Background(), []string{"not-an-email"}); err == nil {
		t.Error("invalid address accepted")
	}

	out, err := p(context.Background(), []string{"jane@example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "haveibeenpwned.com") {
		t.Errorf("manual-check pivot missing:\n%s", out)
	}
}

func TestDomainBreachCheckValidatesDomain(t *testing.T) {
	p := DomainBreachCheck()
	for _, bad := range []string{"notadomain", "user@example.com", "two words.com"} {
		if _, err := p(context.Background(), []string{bad}); err == nil {
			t.Errorf("%q accepted as a domain", bad)
		}
	}

	out, err := p(context.Background(), []string{"Example.COM"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "example.com") {
		t.Errorf("domain not lowercased:\n%s", out)
	}
	if !strings.Contains(out, "haveibeenpwned.com/DomainSearch") {
		t.Errorf("manual-check pivot missing:\n%s", out)
	}
}

func TestTranslateEscapesQuery(t *testing.T) {
	p := Translate()
	out, err := p(context.Background(), []string{"hello", "world", "&", "more"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(out, "text=hello world") {
		t.Error("query not URL-escaped")
	}
	if !strings.Contains(out, "translate.google.com") {
		t.Errorf("translator link missing:\n%s", out)
	}
}

func TestShodanLookupLinksHostPage(t *testing.T) {
	p := ShodanLookup()
	out, err := p(context.Background(), []string{"203.0.113.7"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "https://shodan.io/host/203.0.113.7") {
		t.Errorf("host page link missing:\n%s", out)
	}
}

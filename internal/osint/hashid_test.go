package osint

import (
	"context"
	"strings"
	"testing"
)

func TestHashLookupIdentifiesByLength(t *testing.T) {
	cases := []struct {
		name string
		hash string
		want string
	}{
		{"md5", "d41d8cd98f00b204e9800998ecf8427e", "MD5"},
		{"sha1", strings.Repeat("a", 40), "SHA-1"},
		{"sha256", strings.Repeat("b", 64), "SHA-256"},
		{"sha512", strings.Repeat("c", 128), "SHA-512"},
	}
	p := HashLookup()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := p(context.Background(), []string{tc.hash})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(out, tc.want) {
				t.Errorf("want %q named in output, got:\n%s", tc.want, out)
			}
		})
	}
}

func TestHashLookupRecognizesPrefixedFormats(t *testing.T) {
	p := HashLookup()
	out, err := p(context.Background(), []string{"$2b$12$abcdefghijklmnopqrstuv"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "bcrypt") {
		t.Errorf("bcrypt prefix not recognized:\n%s", out)
	}
}

func TestHashLookupRejectsGarbage(t *testing.T) {
	p := HashLookup()
	for _, bad := range []string{"not-a-hash", "zzzz", "12345"} {
		if _, err := p(context.Background(), []string{bad}); err == nil {
			t.Errorf("%q accepted as a hash", bad)
		}
	}
}

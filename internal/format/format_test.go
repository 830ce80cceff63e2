package format

import (
	"errors"
	"strings"
	"testing"
)

func TestFormatUptime(t *testing.T) {
	cases := []struct {
		seconds uint64
		want    string
	}{
		{90061, "1d1h"},
		{3660, "1h1m"},
		{59, "0h0m"},
	}
	for _, tc := range cases {
		if got := FormatUptime(tc.seconds); got != tc.want {
			t.Errorf("FormatUptime(%d) = %q, want %q", tc.seconds, got, tc.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("hello", 10); got != "hello" {
		t.Errorf("short string modified: %q", got)
	}
	got := Truncate("hello world", 5)
	if len(got) != 5 || !strings.HasSuffix(got, "~") {
		t.Errorf("Truncate = %q", got)
	}
}

func TestBoundCapsLongReplies(t *testing.T) {
	short := "fine"
	if Bound(short) != short {
		t.Error("short reply modified")
	}

	long := strings.Repeat("x", MaxReplyLen+500)
	bounded := Bound(long)
	if len(bounded) > MaxReplyLen+50 {
		t.Errorf("bounded reply still %d chars", len(bounded))
	}
	if !strings.HasSuffix(bounded, "_...truncated_") {
		t.Error("truncation not marked")
	}
}

func TestUserErrorIsBoundedAndSafe(t *testing.T) {
	err := errors.New(strings.Repeat("y", 10000))
	got := UserError("dns_lookup", err)
	if len(got) > MaxReplyLen {
		t.Errorf("user error exceeds reply ceiling: %d chars", len(got))
	}
	if !strings.Contains(got, "dns_lookup") {
		t.Errorf("prefix missing: %q", got)
	}

	if got := UserError("x", nil); !strings.Contains(got, "unknown error") {
		t.Errorf("nil error not handled: %q", got)
	}
}

func TestMakeProgressBar(t *testing.T) {
	if got := MakeProgressBar(0); strings.Contains(got, "█") {
		t.Errorf("empty bar has filled cells: %q", got)
	}
	if got := MakeProgressBar(100); strings.Contains(got, "░") {
		t.Errorf("full bar has empty cells: %q", got)
	}
	if got := MakeProgressBar(150); got != MakeProgressBar(100) {
		t.Error("overflow not clamped")
	}
	if got := MakeProgressBar(-5); got != MakeProgressBar(0) {
		t.Error("underflow not clamped")
	}
}

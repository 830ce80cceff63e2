package format

import (
	"fmt"
	"strings"
)

// MaxReplyLen is the hard ceiling for any single outbound reply. Telegram
// rejects messages above 4096 chars; we stay under it with room for markup.
const MaxReplyLen = 3500

// FormatUptime formats uptime in a readable format.
func FormatUptime(seconds uint64) string {
	days := seconds / 86400
	hours := (seconds % 86400) / 3600
	mins := (seconds % 3600) / 60
	if days > 0 {
		return fmt.Sprintf("%dd%dh", days, hours)
	}
	return fmt.Sprintf("%dh%dm", hours, mins)
}

// FormatBytes formats bytes in a readable format.
func FormatBytes(bytes uint64) string {
	gb := float64(bytes) / 1024 / 1024 / 1024
	if gb >= 1000 {
		return fmt.Sprintf("%.0fT", gb/1024)
	}
	return fmt.Sprintf("%.0fG", gb)
}

// FormatRAM formats RAM in a readable format.
func FormatRAM(mb uint64) string {
	if mb >= 1024 {
		return fmt.Sprintf("%.1fG", float64(mb)/1024.0)
	}
	return fmt.Sprintf("%dM", mb)
}

// Truncate truncates a string to max length.
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "~"
}

// Bound caps reply text at MaxReplyLen, marking the cut.
func Bound(s string) string {
	if len(s) <= MaxReplyLen {
		return s
	}
	return s[:MaxReplyLen] + "\n\n_...truncated_"
}

// UserError renders an error as a single bounded, user-safe line. The raw
// error is never allowed to blow past the reply ceiling.
func UserError(prefix string, err error) string {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	return Bound(fmt.Sprintf("❌ %s: `%s`", prefix, Truncate(msg, 200)))
}

// SafeFloat safely gets a float from an array.
func SafeFloat(arr []float64, def float64) float64 {
	if len(arr) > 0 {
		return arr[0]
	}
	return def
}

// MakeProgressBar creates a 10-step visual progress bar.
func MakeProgressBar(percent float64) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	filled := int((percent + 5) / 10)
	if filled > 10 {
		filled = 10
	}

	return strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
}

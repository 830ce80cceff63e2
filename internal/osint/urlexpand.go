package osint

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

const maxRedirectHops = 10

// URLExpander follows a shortened URL redirect chain and reports every hop.
type URLExpander struct {
	Client *http.Client
}

func (u *URLExpander) Execute(ctx context.Context, args []string) (string, error) {
	target := strings.TrimSpace(args[0])
	if !strings.HasPrefix(target, "http://") && !strings.HasPrefix(target, "https://") {
		target = "https://" + target
	}

	var chain []string
	client := &http.Client{
		Timeout:   u.Client.Timeout,
		Transport: u.Client.Transport,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			chain = append(chain, req.URL.String())
			if len(via) >= maxRedirectHops {
				return http.ErrUseLastResponse
			}
			return nil
		},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, target, nil)
	if err != nil {
		return "", fmt.Errorf("invalid URL: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("could not reach %s: %w", target, err)
	}
	resp.Body.Close()

	var b strings.Builder
	b.WriteString("🔗 *URL Expansion*\n\n")
	b.WriteString(fmt.Sprintf("📥 Input: %s\n", target))
	if len(chain) == 0 {
		b.WriteString("\n✅ No redirects — the URL points where it says.\n")
	} else {
		b.WriteString(fmt.Sprintf("\n🔀 *Redirect chain (%d hops):*\n", len(chain)))
		for i, hop := range chain {
			b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, hop))
		}
		b.WriteString(fmt.Sprintf("\n🎯 Final destination: %s\n", resp.Request.URL.String()))
	}
	b.WriteString(fmt.Sprintf("📡 Final status: `%s`", resp.Status))
	return b.String(), nil
}

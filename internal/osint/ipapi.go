package osint

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// GeoIP looks up IP geolocation through the ip-api.com JSON endpoint.
type GeoIP struct {
	Client  *http.Client
	BaseURL string // overridable in tests; defaults to the public endpoint
}

type geoIPResponse struct {
	Status     string  `json:"status"`
	Message    string  `json:"message"`
	Query      string  `json:"query"`
	City       string  `json:"city"`
	RegionName string  `json:"regionName"`
	Country    string  `json:"country"`
	ISP        string  `json:"isp"`
	Org        string  `json:"org"`
	Timezone   string  `json:"timezone"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
}

func (g *GeoIP) Execute(ctx context.Context, args []string) (string, error) {
	target := strings.TrimSpace(args[0])
	base := g.BaseURL
	if base == "" {
		base = "http://ip-api.com/json"
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"/"+url.PathEscape(target), nil)
	if err != nil {
		return "", err
	}
	resp, err := g.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("geolocation service returned HTTP %d", resp.StatusCode)
	}

	var data geoIPResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", fmt.Errorf("geolocation response unreadable: %w", err)
	}
	if data.Status != "success" {
		reason := data.Message
		if reason == "" {
			reason = "no data"
		}
		return "", fmt.Errorf("could not analyze %s: %s", target, reason)
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("🌍 *IP Address Analysis: %s*\n\n", data.Query))
	b.WriteString(fmt.Sprintf("🏙 City: `%s`\n", orUnknown(data.City)))
	b.WriteString(fmt.Sprintf("📍 Region: `%s`\n", orUnknown(data.RegionName)))
	b.WriteString(fmt.Sprintf("🌍 Country: `%s`\n", orUnknown(data.Country)))
	b.WriteString(fmt.Sprintf("🏢 ISP: `%s`\n", orUnknown(data.ISP)))
	b.WriteString(fmt.Sprintf("🏛 Organization: `%s`\n", orUnknown(data.Org)))
	b.WriteString(fmt.Sprintf("🕐 Timezone: `%s`\n", orUnknown(data.Timezone)))
	b.WriteString(fmt.Sprintf("🗺 Coordinates: `%.4f, %.4f`\n", data.Lat, data.Lon))
	b.WriteString(fmt.Sprintf("\n🔗 https://www.google.com/maps?q=%.4f,%.4f", data.Lat, data.Lon))
	return b.String(), nil
}

func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return "Unknown"
	}
	return s
}

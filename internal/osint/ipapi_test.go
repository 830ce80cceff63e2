package osint

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGeoIPRendersSuccessResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/8.8.8.8" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Write([]byte(`{
			"status": "success", "query": "8.8.8.8",
			"city": "Mountain View", "regionName": "California",
			"country": "United States", "isp": "Google LLC",
			"org": "Google Public DNS", "timezone": "America/Los_Angeles",
			"lat": 37.4056, "lon": -122.0775
		}`))
	}))
	defer srv.Close()

	g := &GeoIP{Client: srv.Client(), BaseURL: srv.URL}
	out, err := g.Execute(context.Background(), []string{"8.8.8.8"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"Mountain View", "Google LLC", "America/Los_Angeles", "37.4056, -122.0775"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "google.com/maps?q=37.4056,-122.0775") {
		t.Error("maps link missing")
	}
}

func TestGeoIPSurfacesServiceFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "fail", "message": "private range", "query": "10.0.0.1"}`))
	}))
	defer srv.Close()

	g := &GeoIP{Client: srv.Client(), BaseURL: srv.URL}
	_, err := g.Execute(context.Background(), []string{"10.0.0.1"})
	if err == nil || !strings.Contains(err.Error(), "private range") {
		t.Fatalf("want the service reason surfaced, got %v", err)
	}
}

func TestGeoIPRejectsHTTPErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	g := &GeoIP{Client: srv.Client(), BaseURL: srv.URL}
	if _, err := g.Execute(context.Background(), []string{"1.1.1.1"}); err == nil {
		t.Fatal("want error on HTTP 429")
	}
}

func TestGeoIPFillsUnknownFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "success", "query": "1.2.3.4"}`))
	}))
	defer srv.Close()

	g := &GeoIP{Client: srv.Client(), BaseURL: srv.URL}
	out, err := g.Execute(context.Background(), []string{"1.2.3.4"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Unknown") {
		t.Errorf("empty fields should render as Unknown:\n%s", out)
	}
}

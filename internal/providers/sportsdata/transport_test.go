package sportsdata

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"
)

func TestNormalizeBaseURLTrimsTrailingSlashAndDefaults(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"", defaultBaseURL},
		{"https://api.example.com/", "https://api.example.com"},
		{"https://api.example.com", "https://api.example.com"},
	}

	for _, c := range cases {
		if got := normalizeBaseURL(c.input); got != c.expected {
			t.Fatalf("expected %s, got %s", c.expected, got)
		}
	}
}

func TestResolveHTTPClientHonorsTimeout(t *testing.T) {
	client := resolveHTTPClient(nil, 3*time.Second)
	httpClient, ok := client.(*http.Client)
	if !ok {
		t.Fatalf("expected *http.Client, got %T", client)
	}
	if httpClient.Timeout != 3*time.Second {
		t.Fatalf("expected timeout 3s, got %s", httpClient.Timeout)
	}
}

func TestResolveHTTPClientUsesProvidedClient(t *testing.T) {
	custom := &http.Client{Timeout: 5 * time.Second}
	client := resolveHTTPClient(custom, time.Second)
	if client != custom {
		t.Fatalf("expected provided client to be used")
	}
}

func TestParseRetryAfter(t *testing.T) {
	cases := map[string]time.Duration{
		"":     0,
		"15":   15 * time.Second,
		" 2 ":  2 * time.Second,
		"-1":   0,
		"soon": 0,
	}
	for raw, want := range cases {
		if got := parseRetryAfter(raw); got != want {
			t.Fatalf("parseRetryAfter(%q) = %s, want %s", raw, got, want)
		}
	}
}

func TestRedactKey(t *testing.T) {
	err := &url.Error{Op: "Get", URL: "https://api.example.com/teams?key=abc123", Err: errors.New("timeout")}
	got := redactKey(err).Error()
	if strings.Contains(got, "abc123") || !strings.Contains(got, "REDACTED") {
		t.Fatalf("expected redacted key, got %q", got)
	}

	plain := errors.New("plain")
	if redactKey(plain) != plain {
		t.Fatalf("expected non-url errors to pass through")
	}
}

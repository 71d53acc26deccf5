package sportsdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/preston-bernstein/cbb-daily-report/internal/domain/games"
	"github.com/preston-bernstein/cbb-daily-report/internal/domain/teams"
	"github.com/preston-bernstein/cbb-daily-report/internal/providers"
)

const (
	opGames = "games"
	opTeams = "teams"
)

// Config controls how the SportsData.io client reaches the upstream API.
type Config struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client fetches college basketball games and team records from SportsData.io.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
}

// NewClient constructs a SportsData.io client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
	}
}

// FetchGames retrieves every game the upstream reports for date.
// Scores are nil for games that have not finished.
func (c *Client) FetchGames(ctx context.Context, date time.Time) ([]games.Game, error) {
	path := "/GamesByDateFinal/" + date.Format(pathDateLayout)

	var payload []gameResponse
	if err := c.getJSON(ctx, opGames, path, &payload); err != nil {
		return nil, err
	}

	out := make([]games.Game, 0, len(payload))
	for _, g := range payload {
		game, err := mapGame(g)
		if err != nil {
			return nil, err
		}
		out = append(out, game)
	}
	return out, nil
}

// FetchTeams retrieves the season record of every team the upstream knows.
func (c *Client) FetchTeams(ctx context.Context) ([]teams.SeasonInfo, error) {
	var payload []teamResponse
	if err := c.getJSON(ctx, opTeams, "/teams", &payload); err != nil {
		return nil, err
	}

	out := make([]teams.SeasonInfo, 0, len(payload))
	for _, t := range payload {
		info, err := mapTeam(t)
		if err != nil {
			return nil, err
		}
		out = append(out, info)
	}
	return out, nil
}

func (c *Client) getJSON(ctx context.Context, op, path string, dest any) error {
	req, err := c.buildRequest(ctx, path)
	if err != nil {
		return &providers.TransportError{Provider: providerName, Op: op, Message: "build request", Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &providers.TransportError{Provider: providerName, Op: op, Err: redactKey(err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return &providers.TransportError{
			Provider:   providerName,
			Op:         op,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
			Message:    fmt.Sprintf("unexpected status: %s", strings.TrimSpace(string(body))),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return &providers.FormatError{Provider: providerName, Op: op, Err: err}
	}
	return nil
}

func (c *Client) buildRequest(ctx context.Context, path string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("key", c.apiKey)
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Accept", "application/json")
	return req, nil
}

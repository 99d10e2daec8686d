package sportsdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/mww/sports_scoreboard/model"
)

const (
	SportsDBURL = "https://www.thesportsdb.com"
	// The public test key, it does not need to be kept secret.
	DefaultKey = "123"
)

// ErrNoTeams is returned when a lookup succeeds but the response has no teams.
var ErrNoTeams = errors.New("no teams in response")

type Client interface {
	// SearchTeams finds teams by name.
	SearchTeams(ctx context.Context, name string) ([]model.Team, error)
	// LookupAllTeams lists the teams in a league by TheSportsDB league id.
	LookupAllTeams(ctx context.Context, leagueID string) ([]model.Team, error)
}

type client struct {
	url        string
	key        string
	httpClient *http.Client
}

func New(key string) (Client, error) {
	return NewWithURL(SportsDBURL, key)
}

func NewWithURL(baseURL, key string) (Client, error) {
	if baseURL == "" {
		return nil, errors.New("sportsdb url must be provided")
	}
	if key == "" {
		key = DefaultKey
	}
	c := &client{
		url: baseURL,
		key: key,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
	return c, nil
}

func NewForTest(url string) Client {
	return &client{
		url:        url,
		key:        DefaultKey,
		httpClient: http.DefaultClient,
	}
}

func (c *client) SearchTeams(ctx context.Context, name string) ([]model.Team, error) {
	q := url.Values{}
	q.Set("t", name)
	return c.teamsRequest(ctx, "searchteams.php", q)
}

func (c *client) LookupAllTeams(ctx context.Context, leagueID string) ([]model.Team, error) {
	q := url.Values{}
	q.Set("id", leagueID)
	return c.teamsRequest(ctx, "lookup_all_teams.php", q)
}

func (c *client) teamsRequest(ctx context.Context, endpoint string, q url.Values) ([]model.Team, error) {
	var parsed teamsResponse
	if err := c.sportsDBRequest(ctx, &parsed, endpoint, q); err != nil {
		return nil, err
	}

	if len(parsed.Teams) == 0 {
		return nil, ErrNoTeams
	}

	result := make([]model.Team, 0, len(parsed.Teams))
	for _, t := range parsed.Teams {
		if t.ID == "" || t.Name == "" {
			continue
		}
		result = append(result, t.toTeam())
	}

	if len(result) == 0 {
		return nil, ErrNoTeams
	}
	return result, nil
}

func (c *client) sportsDBRequest(ctx context.Context, res any, endpoint string, q url.Values) error {
	u := fmt.Sprintf("%s/api/v1/json/%s/%s?%s", c.url, url.PathEscape(c.key), endpoint, q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("error creating sportsdb http request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error sending sportsdb http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code from sportsdb: %d", resp.StatusCode)
	}

	err = json.NewDecoder(resp.Body).Decode(res)
	if err != nil {
		return fmt.Errorf("error parsing response from sportsdb: %w", err)
	}

	return nil
}

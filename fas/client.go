package fas

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/carlmjohnson/versioninfo"
	"github.com/google/go-querystring/query"
	"golang.org/x/time/rate"
)

// Credentials authenticate one search call against the account system. They
// are call-scoped: passed through to the request and never stored.
type Credentials struct {
	Username string
	Password string
	// Account-system root, with trailing slash. Empty means DefaultBaseURL.
	BaseURL string
}

func (c Credentials) baseURL() string {
	if c.BaseURL == "" {
		return DefaultBaseURL
	}
	return c.BaseURL
}

// Person is one matched account record in a search response.
type Person struct {
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	IRCNick  string `json:"ircnick,omitempty"`
}

// SearchResponse is the account-system reply to a user search. Username is
// the response-level account name field, separate from the per-person
// records.
type SearchResponse struct {
	People   []Person `json:"people"`
	Username string   `json:"username"`
}

// Client is the remote account-system search API. Search issues one
// authenticated query and returns the raw response; transport and server
// errors propagate unmodified, with no retries.
type Client interface {
	Search(ctx context.Context, term string, creds Credentials, byEmail bool) (*SearchResponse, error)
}

type searchParams struct {
	Search  string `url:"search"`
	ByEmail int    `url:"by_email,omitempty"`

	// form-based auth fields expected by the account system
	UserName string `url:"user_name"`
	Password string `url:"password"`
	Login    string `url:"login"`
}

// AccountClient queries an account-system instance over HTTP. The zero value
// ('AccountClient{}') is usable; the instance to query and the credentials
// come from each call's Credentials.
type AccountClient struct {
	HTTPClient http.Client
	// If not nil, this limiter will be used to rate-limit search requests
	Limiter   *rate.Limiter
	UserAgent string
}

var _ Client = (*AccountClient)(nil)

func NewAccountClient() *AccountClient {
	return &AccountClient{
		HTTPClient: http.Client{},
		UserAgent:  "fasshim/" + versioninfo.Short(),
	}
}

func (c *AccountClient) Search(ctx context.Context, term string, creds Credentials, byEmail bool) (*SearchResponse, error) {
	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	params := searchParams{
		Search:   term,
		UserName: creds.Username,
		Password: creds.Password,
		Login:    "Login",
	}
	if byEmail {
		params.ByEmail = 1
	}
	vals, err := query.Values(params)
	if err != nil {
		return nil, fmt.Errorf("constructing search request: %w", err)
	}

	u := strings.TrimSuffix(creds.baseURL(), "/") + "/user/list"
	slog.Info("querying account system", "url", u, "search", term, "byEmail", byEmail)

	req, err := http.NewRequestWithContext(ctx, "POST", u, strings.NewReader(vals.Encode()))
	if err != nil {
		return nil, fmt.Errorf("constructing search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("account system HTTP: %w", err)
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("account system HTTP: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("account system HTTP: %d", resp.StatusCode)
	}

	var out SearchResponse
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("account system response parse: %w", err)
	}
	return &out, nil
}

// Package leaderboard talks to the remote high-score service.
//
//	GET  {base}/leaderboard  -> [{"nickname": "...", "score": 123}, ...] (top 10, best first)
//	POST {base}/leaderboard  <- {"nickname": "...", "score": 123}        (201 Created)
package leaderboard

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	// DefaultBaseURL is where the reference backend listens.
	DefaultBaseURL = "http://localhost:8000"
	// MaxNickname is the longest callsign accepted, in characters.
	MaxNickname = 10
	// TopN is how many entries the board shows.
	TopN = 10
	// Anonymous replaces an empty nickname.
	Anonymous = "Anonymous"

	requestTimeout = 5 * time.Second
)

// ErrNegativeScore is returned by Submit without contacting the server.
var ErrNegativeScore = errors.New("leaderboard: score cannot be negative")

type Entry struct {
	Nickname string `json:"nickname"`
	Score    int    `json:"score"`
}

// StatusError is a non-2xx reply from the server.
type StatusError struct {
	Method string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("leaderboard: %s: status %d", e.Method, e.Code)
	}
	return fmt.Sprintf("leaderboard: %s: status %d: %s", e.Method, e.Code, e.Body)
}

type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a client for baseURL (DefaultBaseURL when empty). A nil
// httpClient gets a client with a 5 second timeout.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: requestTimeout}
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient}
}

// NormalizeNickname trims whitespace, truncates to MaxNickname characters and
// substitutes Anonymous for an empty name.
func NormalizeNickname(name string) string {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) > MaxNickname {
		name = string([]rune(name)[:MaxNickname])
	}
	if name == "" {
		return Anonymous
	}
	return name
}

// Top fetches the current top entries, best first.
func (c *Client) Top(ctx context.Context) ([]Entry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/leaderboard", nil)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: fetch: %w", err)
	}
	defer resp.Body.Close()
	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var entries []Entry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("leaderboard: decode: %w", err)
	}
	if len(entries) > TopN {
		entries = entries[:TopN]
	}
	return entries, nil
}

// Submit posts one score. The nickname is normalised first.
func (c *Client) Submit(ctx context.Context, e Entry) error {
	if e.Score < 0 {
		return ErrNegativeScore
	}
	e.Nickname = NormalizeNickname(e.Nickname)

	body, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("leaderboard: encode: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/leaderboard", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("leaderboard: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("leaderboard: submit: %w", err)
	}
	defer resp.Body.Close()
	return checkStatus(resp)
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return &StatusError{
		Method: resp.Request.Method,
		Code:   resp.StatusCode,
		Body:   strings.TrimSpace(string(msg)),
	}
}

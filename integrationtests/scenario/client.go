package scenario

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// LoginResult is the decoded body of a POST /login response.
type LoginResult struct {
	StatusCode int    `json:"-"`
	Success    bool   `json:"success"`
	Error      string `json:"error"`
}

// Client calls the mylogin HTTP API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the server at addr. A missing scheme defaults to http.
func NewClient(addr string) *Client {
	if !strings.HasPrefix(addr, "http://") && !strings.HasPrefix(addr, "https://") {
		addr = "http://" + addr
	}
	return &Client{
		baseURL:    strings.TrimSuffix(addr, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Login posts the credentials as JSON.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	body, err := json.Marshal(map[string]string{"username": username, "password": password})
	if err != nil {
		return nil, fmt.Errorf("marshal login request: %w", err)
	}
	return c.PostLogin(ctx, "application/json", body)
}

// PostLogin posts a raw body to /login and decodes the JSON answer.
func (c *Client) PostLogin(ctx context.Context, contentType string, body []byte) (*LoginResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/login", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create login request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	defer resp.Body.Close()

	result := &LoginResult{StatusCode: resp.StatusCode}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return nil, fmt.Errorf("decode login response (status %d): %w", resp.StatusCode, err)
	}
	return result, nil
}

// Get fetches path and returns the status code and body.
func (c *Client) Get(ctx context.Context, path string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("create request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("GET %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("read GET %s body: %w", path, err)
	}
	return resp.StatusCode, body, nil
}

// ExpectLogin fails unless the login result has the wanted status and success flag.
func ExpectLogin(result *LoginResult, wantStatus int, wantSuccess bool) error {
	if result.StatusCode != wantStatus {
		return fmt.Errorf("status=%d, want %d", result.StatusCode, wantStatus)
	}
	if result.Success != wantSuccess {
		return fmt.Errorf("success=%v, want %v", result.Success, wantSuccess)
	}
	if wantStatus != http.StatusOK && result.Error != http.StatusText(wantStatus) {
		return fmt.Errorf("error=%q, want %q", result.Error, http.StatusText(wantStatus))
	}
	return nil
}

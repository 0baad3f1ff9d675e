// Package api is the HTTP+JSON client for the coaching server. Every
// response carries an {ok, error?} envelope; a call fails when the HTTP
// status is non-2xx OR the envelope says ok:false — both are checked
// because either can fail independently of the other.
package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const DefaultServerURL = "https://strength-coach-ui.onrender.com"

// Client is the coaching server API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
	authStore  *AuthStore
	deviceInfo *DeviceInfo
}

// NewClient creates a new API client. An empty serverURL selects the
// production server.
func NewClient(serverURL string) (*Client, error) {
	if serverURL == "" {
		serverURL = DefaultServerURL
	}
	serverURL = strings.TrimRight(serverURL, "/")

	authStore, err := NewAuthStore()
	if err != nil {
		return nil, err
	}

	return &Client{
		baseURL:    serverURL,
		authStore:  authStore,
		deviceInfo: GetDeviceInfo(),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

// AuthStore returns the auth store.
func (c *Client) AuthStore() *AuthStore {
	return c.authStore
}

// LoginRequest represents login input.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Email            string  `json:"email"`
	UserName         *string `json:"user_name"`
	Role             string  `json:"role"`
	IsCoach          bool    `json:"is_coach"`
	HasLinkedAthlete bool    `json:"has_linked_athlete"`
	AthleteID        *int    `json:"athlete_id"`
	Token            string  `json:"token"`
}

// Login authenticates with the server and caches the bearer token plus the
// user profile for session restoration.
func (c *Client) Login(email, password string) (*User, error) {
	req := LoginRequest{Email: email, Password: password}

	var resp loginResponse
	if err := c.post("/auth/login-mobile", req, &resp); err != nil {
		return nil, err
	}

	user := &User{
		Email:            resp.Email,
		UserName:         resp.UserName,
		Role:             resp.Role,
		IsCoach:          resp.IsCoach,
		HasLinkedAthlete: resp.HasLinkedAthlete,
		AthleteID:        resp.AthleteID,
	}
	if err := c.authStore.Save(&AuthData{Token: resp.Token, User: user}); err != nil {
		return nil, fmt.Errorf("failed to save auth: %w", err)
	}

	return user, nil
}

// Logout tells the server to drop the session, then clears the local
// cache. The server call is best-effort: local credentials are cleared
// even when it fails.
func (c *Client) Logout() error {
	_ = c.post("/auth/logout-mobile", nil, nil)
	return c.authStore.Clear()
}

// HTTP helpers

func (c *Client) get(path string, result interface{}) error {
	return c.do("GET", path, nil, result)
}

func (c *Client) post(path string, body interface{}, result interface{}) error {
	return c.do("POST", path, body, result)
}

// envelope is the common wrapper on every response body.
type envelope struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

func (c *Client) do(method, path string, body interface{}, result interface{}) error {
	var bodyReader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.deviceInfo != nil {
		req.Header.Set("X-Device-ID", c.deviceInfo.DeviceID)
		req.Header.Set("X-Device-Name", c.deviceInfo.DeviceName)
		req.Header.Set("X-Device-OS", c.deviceInfo.OS)
	}

	if token := c.authStore.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Err: err}
	}

	// 401 anywhere invalidates the cached session.
	if resp.StatusCode == http.StatusUnauthorized {
		_ = c.authStore.Clear()
		return &AuthError{Status: resp.StatusCode}
	}

	var env envelope
	envParsed := json.Unmarshal(respBody, &env) == nil

	httpOK := resp.StatusCode >= 200 && resp.StatusCode < 300
	if !httpOK || !envParsed || !env.OK {
		message := ""
		if envParsed {
			message = env.Error
		}
		if resp.StatusCode == http.StatusConflict {
			return &ConflictError{Message: message}
		}
		return &ServerError{Status: resp.StatusCode, Message: message}
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}

	return nil
}

package api

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// AuthStore manages the cached bearer token and user profile, the only
// state the client persists beyond device identity. Stored as
// ~/.plcoach/auth.json with owner-only permissions.
type AuthStore struct {
	path string
}

// User is the authenticated user's profile as returned by login.
type User struct {
	Email            string  `json:"email"`
	UserName         *string `json:"user_name"`
	Role             string  `json:"role"`
	IsCoach          bool    `json:"is_coach"`
	HasLinkedAthlete bool    `json:"has_linked_athlete"`
	AthleteID        *int    `json:"athlete_id"`
}

// DisplayName returns the best available name for the user.
func (u *User) DisplayName() string {
	if u.UserName != nil && *u.UserName != "" {
		return *u.UserName
	}
	return u.Email
}

// AuthData is the persisted session: an opaque bearer token plus the user
// profile for session restoration across restarts.
type AuthData struct {
	Token string `json:"token"`
	User  *User  `json:"user,omitempty"`
}

// NewAuthStore creates the auth store under ~/.plcoach.
func NewAuthStore() (*AuthStore, error) {
	dir, err := stateDir()
	if err != nil {
		return nil, err
	}
	return &AuthStore{path: filepath.Join(dir, "auth.json")}, nil
}

// Save persists auth data.
func (s *AuthStore) Save(data *AuthData) error {
	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal auth data: %w", err)
	}
	if err := os.WriteFile(s.path, b, 0600); err != nil {
		return fmt.Errorf("failed to write auth file: %w", err)
	}
	return nil
}

// Load reads auth data. Returns nil, nil when nothing is stored.
func (s *AuthStore) Load() (*AuthData, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read auth file: %w", err)
	}
	var data AuthData
	if err := json.Unmarshal(b, &data); err != nil {
		return nil, fmt.Errorf("failed to parse auth file: %w", err)
	}
	return &data, nil
}

// Clear removes cached credentials.
func (s *AuthStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove auth file: %w", err)
	}
	return nil
}

// IsLoggedIn reports whether a token is cached. The token is opaque to the
// client; expiry is the server's call and shows up as a 401.
func (s *AuthStore) IsLoggedIn() bool {
	data, err := s.Load()
	return err == nil && data != nil && data.Token != ""
}

// Token returns the cached bearer token, empty when logged out.
func (s *AuthStore) Token() string {
	data, err := s.Load()
	if err != nil || data == nil {
		return ""
	}
	return data.Token
}

// stateDir returns ~/.plcoach, creating it if needed.
func stateDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home dir: %w", err)
	}
	dir := filepath.Join(home, ".plcoach")
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("failed to create .plcoach dir: %w", err)
	}
	return dir, nil
}

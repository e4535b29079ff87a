// Package session owns the locally persisted login state: the bearer token
// and the operator's preferred city. It is the one place credentials are
// read or cleared; the API layer gets them through the TokenSource interface
// rather than any ambient global.
package session

import (
	"errors"

	"github.com/peterbourgon/diskv/v3"
)

const (
	tokenKey = "token"
	cityKey  = "city"
)

// ErrNotLoggedIn is returned when an operation requires a stored token.
var ErrNotLoggedIn = errors.New("session: not logged in, run 'beethoven login'")

// Store persists session state under the configured base path.
type Store struct {
	d *diskv.Diskv
}

// Load opens the session store using the provided config, falling back to
// LoadConfig when nil.
func Load(cfg Config) (*Store, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	return &Store{d: diskv.New(diskv.Options{
		BasePath:     cfg.BasePath(),
		CacheSizeMax: 64 * 1024,
	})}, nil
}

// Token returns the stored bearer token, or "" when logged out.
func (s *Store) Token() string {
	b, err := s.d.Read(tokenKey)
	if err != nil {
		return ""
	}
	return string(b)
}

// SetToken stores a fresh bearer token after login.
func (s *Store) SetToken(token string) error {
	return s.d.Write(tokenKey, []byte(token))
}

// Invalidate drops the stored token. Safe to call repeatedly; the API
// layer's 401 hook and an explicit logout both land here.
func (s *Store) Invalidate() {
	_ = s.d.Erase(tokenKey)
}

// LoggedIn reports whether a token is present.
func (s *Store) LoggedIn() bool {
	return s.Token() != ""
}

// City returns the persisted city preference, or defaultCity when unset.
func (s *Store) City(defaultCity string) string {
	b, err := s.d.Read(cityKey)
	if err != nil || len(b) == 0 {
		return defaultCity
	}
	return string(b)
}

// SetCity persists the operator's city preference.
func (s *Store) SetCity(city string) error {
	return s.d.Write(cityKey, []byte(city))
}

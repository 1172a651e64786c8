package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"golang.org/x/oauth2"

	"wardrobe-catalog/internal/catalog/repository"
)

const (
	tokenObtainPath  = "/api/token/"
	tokenRefreshPath = "/api/token/refresh/"
)

// jwtTokenSource logs into the backend with email and password and keeps the
// refresh token so later renewals skip the password exchange.
type jwtTokenSource struct {
	ctx      context.Context
	hc       *http.Client
	baseURL  string
	email    string
	password string
	lifetime time.Duration

	mu      sync.Mutex
	refresh string
}

// newServiceTokenSource returns nil when no service identity is configured.
func newServiceTokenSource(ctx context.Context, hc *http.Client, cfg Config) oauth2.TokenSource {
	if cfg.AccessToken != "" {
		return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.AccessToken, TokenType: "Bearer"})
	}
	if cfg.Email == "" {
		return nil
	}
	lifetime := cfg.TokenLifetime
	if lifetime <= 0 {
		lifetime = 5 * time.Minute
	}
	return oauth2.ReuseTokenSource(nil, &jwtTokenSource{
		ctx:      ctx,
		hc:       hc,
		baseURL:  cfg.URL,
		email:    cfg.Email,
		password: cfg.Password,
		lifetime: lifetime,
	})
}

type tokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Token implements oauth2.TokenSource.
func (s *jwtTokenSource) Token() (*oauth2.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.refresh != "" {
		var pair tokenPair
		err := s.post(tokenRefreshPath, map[string]string{"refresh": s.refresh}, &pair)
		if err == nil && pair.Access != "" {
			if pair.Refresh != "" {
				s.refresh = pair.Refresh
			}
			return s.token(pair.Access), nil
		}
		// Refresh token expired or was blacklisted, log in again.
		s.refresh = ""
	}

	var pair tokenPair
	if err := s.post(tokenObtainPath, map[string]string{"email": s.email, "password": s.password}, &pair); err != nil {
		return nil, err
	}
	if pair.Access == "" {
		return nil, fmt.Errorf("%w: empty access token", repository.ErrFailedToObtainJWT)
	}
	s.refresh = pair.Refresh
	return s.token(pair.Access), nil
}

func (s *jwtTokenSource) token(access string) *oauth2.Token {
	return &oauth2.Token{
		AccessToken: access,
		TokenType:   "Bearer",
		Expiry:      time.Now().Add(s.lifetime),
	}
}

func (s *jwtTokenSource) post(path string, body any, out any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%w: %v", repository.ErrFailedToObtainJWT, err)
	}

	req, err := http.NewRequestWithContext(s.ctx, http.MethodPost, s.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("%w: %v", repository.ErrFailedToObtainJWT, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", repository.ErrFailedToObtainJWT, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusBadRequest {
		return fmt.Errorf("%w: %w", repository.ErrFailedToObtainJWT, repository.ErrUnauthorized)
	}
	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: status %d: %s", repository.ErrFailedToObtainJWT, resp.StatusCode, msg)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", repository.ErrFailedToObtainJWT, err)
	}
	return nil
}

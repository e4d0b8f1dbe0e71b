// Package auth issues connection-scoped guest identities. There are no
// accounts or passwords: a guest gets an opaque bearer token bound to a
// generated player id, valid for the session TTL.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tgrante/dicegame-go/internal/dependencies/clock"
	"github.com/tgrante/dicegame-go/internal/model"
)

var (
	ErrInvalidToken = errors.New("invalid or expired session token")
)

type Config struct {
	SessionTTL time.Duration
}

func DefaultConfig() Config {
	return Config{
		SessionTTL: 24 * time.Hour,
	}
}

// Session is an authenticated guest identity
type Session struct {
	Token     string
	PlayerID  model.PlayerID
	Name      string
	ExpiresAt time.Time
}

type Service struct {
	logger *slog.Logger
	clock  clock.Clock
	config Config

	mu       sync.RWMutex
	sessions map[string]*Session
}

func New(logger *slog.Logger, clk clock.Clock, config Config) *Service {
	return &Service{
		logger:   logger.With(slog.String("component", "auth")),
		clock:    clk,
		config:   config,
		sessions: make(map[string]*Session),
	}
}

// CreateGuest mints a fresh player id and session token for the given name
func (s *Service) CreateGuest(ctx context.Context, name string) (*Session, error) {
	name = model.NormalizeName(name)
	if name == "" {
		return nil, model.ErrInvalidName
	}

	session := &Session{
		Token:     fmt.Sprintf("sess_%s", uuid.NewString()),
		PlayerID:  model.PlayerID(fmt.Sprintf("p_%s", uuid.NewString())),
		Name:      name,
		ExpiresAt: s.clock.Now().Add(s.config.SessionTTL),
	}

	s.mu.Lock()
	s.sessions[session.Token] = session
	s.mu.Unlock()

	s.logger.Info("guest session created",
		slog.String("player_id", string(session.PlayerID)),
		slog.String("name", name),
	)
	return session, nil
}

// ValidateSession resolves a token to its session, expiring lazily
func (s *Service) ValidateSession(ctx context.Context, token string) (*Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrInvalidToken
	}

	if s.clock.Now().After(session.ExpiresAt) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return nil, ErrInvalidToken
	}
	return session, nil
}

// Interface for dependency injection
type ServiceInterface interface {
	CreateGuest(ctx context.Context, name string) (*Session, error)
	ValidateSession(ctx context.Context, token string) (*Session, error)
}

var _ ServiceInterface = (*Service)(nil)

// Package memory provides an in-process Storage backend. Sessions live until
// the process exits, matching single-node deployments.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/tgrante/dicegame-go/internal/model"
	"github.com/tgrante/dicegame-go/internal/storage"
)

type Storage struct {
	mu       sync.RWMutex
	sessions map[model.RoomCode][]byte
}

var _ storage.Storage = (*Storage)(nil)

func New() *Storage {
	return &Storage{
		sessions: make(map[model.RoomCode][]byte),
	}
}

// SaveSession stores a deep copy via JSON so later caller mutation cannot
// bleed into the registry
func (s *Storage) SaveSession(ctx context.Context, session *model.GameSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshalling session: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.Code] = data
	return nil
}

func (s *Storage) GetSession(ctx context.Context, code model.RoomCode) (*model.GameSession, error) {
	s.mu.RLock()
	data, ok := s.sessions[code]
	s.mu.RUnlock()
	if !ok {
		return nil, model.ErrRoomNotFound
	}

	var session model.GameSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("unmarshalling session: %w", err)
	}
	return &session, nil
}

func (s *Storage) SessionExists(ctx context.Context, code model.RoomCode) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.sessions[code]
	return ok, nil
}

func (s *Storage) DeleteSession(ctx context.Context, code model.RoomCode) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, code)
	return nil
}

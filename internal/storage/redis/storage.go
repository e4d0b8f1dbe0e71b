// Package redis provides a Storage backend on go-redis. Sessions are stored
// as JSON values under a TTL so abandoned rooms eventually evict.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/tgrante/dicegame-go/internal/model"
	"github.com/tgrante/dicegame-go/internal/storage"
)

type Storage struct {
	client *goredis.Client
	config Config
}

var _ storage.Storage = (*Storage)(nil)

func New(config Config) *Storage {
	client := goredis.NewClient(&goredis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})
	return NewWithClient(client, config)
}

// NewWithClient wraps an existing client, used by tests with miniredis
func NewWithClient(client *goredis.Client, config Config) *Storage {
	return &Storage{
		client: client,
		config: config,
	}
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *Storage) SaveSession(ctx context.Context, session *model.GameSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshalling session: %w", err)
	}
	if err := s.client.Set(ctx, s.sessionKey(session.Code), data, s.config.SessionTTL).Err(); err != nil {
		return fmt.Errorf("saving session %s: %w", session.Code, err)
	}
	return nil
}

func (s *Storage) GetSession(ctx context.Context, code model.RoomCode) (*model.GameSession, error) {
	data, err := s.client.Get(ctx, s.sessionKey(code)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, model.ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetching session %s: %w", code, err)
	}

	var session model.GameSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("unmarshalling session %s: %w", code, err)
	}
	return &session, nil
}

func (s *Storage) SessionExists(ctx context.Context, code model.RoomCode) (bool, error) {
	n, err := s.client.Exists(ctx, s.sessionKey(code)).Result()
	if err != nil {
		return false, fmt.Errorf("checking session %s: %w", code, err)
	}
	return n > 0, nil
}

func (s *Storage) DeleteSession(ctx context.Context, code model.RoomCode) error {
	if err := s.client.Del(ctx, s.sessionKey(code)).Err(); err != nil {
		return fmt.Errorf("deleting session %s: %w", code, err)
	}
	return nil
}

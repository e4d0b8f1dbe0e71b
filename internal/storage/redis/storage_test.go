package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/tgrante/dicegame-go/internal/model"
)

type StorageSuite struct {
	suite.Suite
	ctx     context.Context
	mini    *miniredis.Miniredis
	storage *Storage
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.ctx = context.Background()
	s.mini = miniredis.RunT(s.T())

	config := DefaultConfig()
	config.Addr = s.mini.Addr()
	client := goredis.NewClient(&goredis.Options{Addr: s.mini.Addr()})
	s.storage = NewWithClient(client, config)
}

func (s *StorageSuite) session(code model.RoomCode) *model.GameSession {
	return &model.GameSession{
		Code:       code,
		Phase:      model.PhaseWaiting,
		MaxPlayers: 3,
		Players: []model.Player{
			{ID: "p1", Name: "alice", IsHost: true},
		},
	}
}

func (s *StorageSuite) TestSaveAndGet() {
	err := s.storage.SaveSession(s.ctx, s.session("GAMEAB"))
	s.Require().NoError(err)

	got, err := s.storage.GetSession(s.ctx, "GAMEAB")
	s.Require().NoError(err)
	s.Equal(model.RoomCode("GAMEAB"), got.Code)
	s.Equal("alice", got.Players[0].Name)
}

func (s *StorageSuite) TestGetMissing() {
	_, err := s.storage.GetSession(s.ctx, "NOPE99")
	s.ErrorIs(err, model.ErrRoomNotFound)
}

func (s *StorageSuite) TestSessionExists() {
	exists, err := s.storage.SessionExists(s.ctx, "GAMEAB")
	s.Require().NoError(err)
	s.False(exists)

	err = s.storage.SaveSession(s.ctx, s.session("GAMEAB"))
	s.Require().NoError(err)

	exists, err = s.storage.SessionExists(s.ctx, "GAMEAB")
	s.Require().NoError(err)
	s.True(exists)
}

func (s *StorageSuite) TestDeleteSession() {
	err := s.storage.SaveSession(s.ctx, s.session("GAMEAB"))
	s.Require().NoError(err)

	err = s.storage.DeleteSession(s.ctx, "GAMEAB")
	s.Require().NoError(err)

	_, err = s.storage.GetSession(s.ctx, "GAMEAB")
	s.ErrorIs(err, model.ErrRoomNotFound)
}

func (s *StorageSuite) TestSessionEvictsAfterTTL() {
	err := s.storage.SaveSession(s.ctx, s.session("GAMEAB"))
	s.Require().NoError(err)

	s.mini.FastForward(24*time.Hour + time.Minute)

	_, err = s.storage.GetSession(s.ctx, "GAMEAB")
	s.ErrorIs(err, model.ErrRoomNotFound)
}

func (s *StorageSuite) TestSaveRefreshesTTL() {
	session := s.session("GAMEAB")
	err := s.storage.SaveSession(s.ctx, session)
	s.Require().NoError(err)

	s.mini.FastForward(23 * time.Hour)
	err = s.storage.SaveSession(s.ctx, session)
	s.Require().NoError(err)

	s.mini.FastForward(2 * time.Hour)

	_, err = s.storage.GetSession(s.ctx, "GAMEAB")
	s.Require().NoError(err)
}

func (s *StorageSuite) TestKeysArePrefixed() {
	err := s.storage.SaveSession(s.ctx, s.session("GAMEAB"))
	s.Require().NoError(err)

	s.True(s.mini.Exists("dicegame:session:GAMEAB"))
}

package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/tgrante/dicegame-go/internal/dependencies/mocks"
	"github.com/tgrante/dicegame-go/internal/model"
	"github.com/tgrante/dicegame-go/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	ctx     context.Context
	clock   *mocks.MockClock
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = mocks.NewMockClock(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(testutil.NopLogger(), s.clock, DefaultConfig())
}

func (s *ServiceSuite) TestCreateGuest() {
	session, err := s.service.CreateGuest(s.ctx, "  alice  ")

	s.Require().NoError(err)
	s.Equal("alice", session.Name)
	s.NotEmpty(session.Token)
	s.NotEmpty(session.PlayerID)
	s.Equal(s.clock.Now().Add(24*time.Hour), session.ExpiresAt)
}

func (s *ServiceSuite) TestCreateGuestRejectsBlankName() {
	_, err := s.service.CreateGuest(s.ctx, "   ")
	s.ErrorIs(err, model.ErrInvalidName)
}

func (s *ServiceSuite) TestGuestIdentitiesAreDistinct() {
	a, err := s.service.CreateGuest(s.ctx, "alice")
	s.Require().NoError(err)
	b, err := s.service.CreateGuest(s.ctx, "alice")
	s.Require().NoError(err)

	s.NotEqual(a.Token, b.Token)
	s.NotEqual(a.PlayerID, b.PlayerID)
}

func (s *ServiceSuite) TestValidateSession() {
	created, err := s.service.CreateGuest(s.ctx, "alice")
	s.Require().NoError(err)

	session, err := s.service.ValidateSession(s.ctx, created.Token)

	s.Require().NoError(err)
	s.Equal(created.PlayerID, session.PlayerID)
}

func (s *ServiceSuite) TestValidateUnknownToken() {
	_, err := s.service.ValidateSession(s.ctx, "sess_nope")
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *ServiceSuite) TestValidateExpiredToken() {
	created, err := s.service.CreateGuest(s.ctx, "alice")
	s.Require().NoError(err)

	s.clock.Advance(24*time.Hour + time.Minute)

	_, err = s.service.ValidateSession(s.ctx, created.Token)
	s.ErrorIs(err, ErrInvalidToken)
}

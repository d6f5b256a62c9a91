package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/aiguessr/aiguessr-go/internal/dependencies/mocks"
	"github.com/aiguessr/aiguessr-go/internal/model"
	"github.com/aiguessr/aiguessr-go/internal/storage/memory"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	random  *mocks.MockRandom
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.service = New(s.storage, s.clock, s.random, DefaultConfig())
	s.ctx = context.Background()
}

// Guest session tests

func (s *ServiceSuite) TestCreateGuestSession() {
	session, err := s.service.CreateGuestSession(s.ctx, "alice@example.com")
	s.Require().NoError(err)

	s.NotEmpty(session.Token)
	s.Equal(model.Identity("alice@example.com"), session.Email)
	s.True(session.IsGuest)
	s.False(session.IsAdmin)
}

func (s *ServiceSuite) TestSessionTokensDistinct() {
	first, err := s.service.CreateGuestSession(s.ctx, "alice@example.com")
	s.Require().NoError(err)
	second, err := s.service.CreateGuestSession(s.ctx, "bob@example.com")
	s.Require().NoError(err)

	s.NotEqual(first.Token, second.Token)

	// Both sessions stay valid side by side
	_, err = s.service.ValidateSession(first.Token)
	s.Require().NoError(err)
	_, err = s.service.ValidateSession(second.Token)
	s.Require().NoError(err)
}

func (s *ServiceSuite) TestSessionTokenUsesInjectedRandom() {
	s.random.QueueString("abc123")

	session, err := s.service.CreateGuestSession(s.ctx, "alice@example.com")
	s.Require().NoError(err)
	s.Equal("sess_abc123", session.Token)
}

func (s *ServiceSuite) TestGuestEmailNormalized() {
	session, err := s.service.CreateGuestSession(s.ctx, "  Alice@Example.COM ")
	s.Require().NoError(err)
	s.Equal(model.Identity("alice@example.com"), session.Email)
}

func (s *ServiceSuite) TestGuestRejectsNonEmail() {
	_, err := s.service.CreateGuestSession(s.ctx, "not-an-email")
	s.ErrorIs(err, ErrInvalidEmail)
}

func (s *ServiceSuite) TestGuestRejectsAIName() {
	_, err := s.service.CreateGuestSession(s.ctx, "chatgpt")
	s.ErrorIs(err, ErrInvalidEmail)
}

// Register tests

func (s *ServiceSuite) TestRegisterAndLogin() {
	_, err := s.service.Register(s.ctx, "alice@example.com", "hunter2")
	s.Require().NoError(err)

	session, err := s.service.Login(s.ctx, "alice@example.com", "hunter2")
	s.Require().NoError(err)
	s.False(session.IsGuest)
}

func (s *ServiceSuite) TestRegisterDuplicateEmail() {
	_, err := s.service.Register(s.ctx, "alice@example.com", "hunter2")
	s.Require().NoError(err)

	_, err = s.service.Register(s.ctx, "alice@example.com", "other")
	s.ErrorIs(err, ErrEmailExists)
}

func (s *ServiceSuite) TestRegisterHashesPassword() {
	_, err := s.service.Register(s.ctx, "alice@example.com", "hunter2")
	s.Require().NoError(err)

	account, err := s.storage.GetAccount(s.ctx, "alice@example.com")
	s.Require().NoError(err)
	s.NotEqual("hunter2", account.PasswordHash)
	s.NotEmpty(account.PasswordHash)
}

// Login tests

func (s *ServiceSuite) TestLoginWrongPassword() {
	_, _ = s.service.Register(s.ctx, "alice@example.com", "hunter2")

	_, err := s.service.Login(s.ctx, "alice@example.com", "wrong")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *ServiceSuite) TestLoginUnknownEmail() {
	_, err := s.service.Login(s.ctx, "nobody@example.com", "hunter2")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *ServiceSuite) TestLoginAdminRole() {
	_, _ = s.service.Register(s.ctx, "admin@example.com", "hunter2")

	account, _ := s.storage.GetAccount(s.ctx, "admin@example.com")
	account.Role = AdminRole
	_ = s.storage.SaveAccount(s.ctx, account)

	session, err := s.service.Login(s.ctx, "admin@example.com", "hunter2")
	s.Require().NoError(err)
	s.True(session.IsAdmin)
}

// Session tests

func (s *ServiceSuite) TestValidateSession() {
	created, _ := s.service.CreateGuestSession(s.ctx, "alice@example.com")

	session, err := s.service.ValidateSession(created.Token)
	s.Require().NoError(err)
	s.Equal(model.Identity("alice@example.com"), session.Email)
}

func (s *ServiceSuite) TestValidateUnknownToken() {
	_, err := s.service.ValidateSession("sess_bogus")
	s.ErrorIs(err, ErrInvalidSession)
}

func (s *ServiceSuite) TestSessionExpires() {
	created, _ := s.service.CreateGuestSession(s.ctx, "alice@example.com")

	s.clock.Advance(25 * time.Hour)

	_, err := s.service.ValidateSession(created.Token)
	s.ErrorIs(err, ErrInvalidSession)
}

func (s *ServiceSuite) TestInvalidateSession() {
	created, _ := s.service.CreateGuestSession(s.ctx, "alice@example.com")

	s.service.InvalidateSession(created.Token)

	_, err := s.service.ValidateSession(created.Token)
	s.ErrorIs(err, ErrInvalidSession)
}

func (s *ServiceSuite) TestCleanExpiredSessions() {
	expired, _ := s.service.CreateGuestSession(s.ctx, "old@example.com")

	s.clock.Advance(25 * time.Hour)
	fresh, _ := s.service.CreateGuestSession(s.ctx, "new@example.com")

	s.service.CleanExpiredSessions()

	_, err := s.service.ValidateSession(expired.Token)
	s.ErrorIs(err, ErrInvalidSession)

	_, err = s.service.ValidateSession(fresh.Token)
	s.NoError(err)
}

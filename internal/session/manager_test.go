package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type ManagerSuite struct {
	suite.Suite
	manager *Manager
	cookies []*http.Cookie
}

func (s *ManagerSuite) SetupTest() {
	s.manager = NewManager([]byte("test-secret"), 720*time.Hour, NewMemoryDraftStore())
	s.cookies = nil
}

func TestManagerSuite(t *testing.T) {
	suite.Run(t, new(ManagerSuite))
}

// request builds a request carrying every cookie collected so far, mimicking a
// browser revisiting the site.
func (s *ManagerSuite) request() *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range s.cookies {
		req.AddCookie(c)
	}
	return req
}

// collect merges Set-Cookie headers from a response into the jar.
func (s *ManagerSuite) collect(rec *httptest.ResponseRecorder) {
	for _, c := range rec.Result().Cookies() {
		replaced := false
		for i, existing := range s.cookies {
			if existing.Name == c.Name {
				s.cookies[i] = c
				replaced = true
			}
		}
		if !replaced {
			s.cookies = append(s.cookies, c)
		}
	}
}

func (s *ManagerSuite) TestTokenRoundTrip() {
	rec := httptest.NewRecorder()
	s.Require().NoError(s.manager.SetToken(rec, s.request(), "tok-123"))
	s.collect(rec)

	s.Equal("tok-123", s.manager.Token(s.request()))
	s.True(s.manager.LoggedIn(s.request()))
}

func (s *ManagerSuite) TestSetTokenIgnoresEmpty() {
	rec := httptest.NewRecorder()
	s.Require().NoError(s.manager.SetToken(rec, s.request(), ""))

	s.Empty(rec.Result().Cookies())
	s.Equal("", s.manager.Token(s.request()))
	s.False(s.manager.LoggedIn(s.request()))
}

func (s *ManagerSuite) TestClearTokenLogsOut() {
	rec := httptest.NewRecorder()
	s.Require().NoError(s.manager.SetToken(rec, s.request(), "tok-123"))
	s.collect(rec)

	rec = httptest.NewRecorder()
	s.Require().NoError(s.manager.ClearToken(rec, s.request()))
	s.collect(rec)

	s.Equal("", s.manager.Token(s.request()))
}

func (s *ManagerSuite) TestDraftWriteThrough() {
	ctx := context.Background()

	rec := httptest.NewRecorder()
	draft, err := s.manager.UpdateDraft(ctx, rec, s.request(), func(d *Draft) {
		d.SessionID = "S1"
		d.InvitationCode = "TEST001"
	})
	s.Require().NoError(err)
	s.collect(rec)
	s.Equal("S1", draft.SessionID)

	// A later request sees the persisted draft and merges on top of it.
	rec = httptest.NewRecorder()
	draft, err = s.manager.UpdateDraft(ctx, rec, s.request(), func(d *Draft) {
		d.Name = "박우진"
	})
	s.Require().NoError(err)
	s.collect(rec)
	s.Equal("S1", draft.SessionID)
	s.Equal("박우진", draft.Name)

	got := s.manager.Draft(ctx, s.request())
	s.Equal(draft, got)
}

func (s *ManagerSuite) TestDraftMissingIsEmptyShape() {
	s.True(s.manager.Draft(context.Background(), s.request()).IsZero())
}

func (s *ManagerSuite) TestClearDraft() {
	ctx := context.Background()

	rec := httptest.NewRecorder()
	_, err := s.manager.UpdateDraft(ctx, rec, s.request(), func(d *Draft) {
		d.SessionID = "S1"
	})
	s.Require().NoError(err)
	s.collect(rec)

	rec = httptest.NewRecorder()
	s.Require().NoError(s.manager.ClearDraft(ctx, rec, s.request()))
	s.collect(rec)

	s.True(s.manager.Draft(ctx, s.request()).IsZero())
}

func (s *ManagerSuite) TestScopesAreIndependent() {
	ctx := context.Background()

	rec := httptest.NewRecorder()
	s.Require().NoError(s.manager.SetToken(rec, s.request(), "tok-123"))
	s.collect(rec)

	rec = httptest.NewRecorder()
	_, err := s.manager.UpdateDraft(ctx, rec, s.request(), func(d *Draft) {
		d.UserID = "42"
	})
	s.Require().NoError(err)
	s.collect(rec)

	// Clearing the draft scope must not touch the durable token.
	rec = httptest.NewRecorder()
	s.Require().NoError(s.manager.ClearDraft(ctx, rec, s.request()))
	s.collect(rec)

	s.Equal("tok-123", s.manager.Token(s.request()))
	s.True(s.manager.Draft(ctx, s.request()).IsZero())
}

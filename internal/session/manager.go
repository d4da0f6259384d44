package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"vanta/pkg/platform/sentinel"
)

// Cookie names for the two storage scopes. The auth scope is durable across
// browser restarts; the draft scope is a session cookie that vanishes when the
// browsing session ends, matching the lifetime of the registration draft.
const (
	authCookieName  = "vanta_auth"
	draftCookieName = "vanta_draft"

	tokenValueKey = "auth_token"
	draftValueKey = "draft_key"
)

// Manager owns both persisted client scopes: the durable bearer token and the
// per-browser-session registration draft. The draft payload itself lives in a
// DraftStore; the cookie only carries an opaque handle.
type Manager struct {
	cookies     sessions.Store
	drafts      DraftStore
	tokenMaxAge int
}

// NewManager builds a Manager signing its cookies with secret.
func NewManager(secret []byte, tokenMaxAge time.Duration, drafts DraftStore) *Manager {
	store := sessions.NewCookieStore(secret)
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Manager{
		cookies:     store,
		drafts:      drafts,
		tokenMaxAge: int(tokenMaxAge.Seconds()),
	}
}

// Token returns the stored bearer token, or "" when logged out. A cookie that
// fails signature validation is treated as absent rather than as an error.
func (m *Manager) Token(r *http.Request) string {
	sess, err := m.cookies.Get(r, authCookieName)
	if err != nil {
		return ""
	}
	token, _ := sess.Values[tokenValueKey].(string)
	return token
}

// SetToken stores the bearer token in the durable scope. Empty tokens are
// ignored so a missing accessToken field can never clobber a valid login.
func (m *Manager) SetToken(w http.ResponseWriter, r *http.Request, token string) error {
	if token == "" {
		return nil
	}
	sess, _ := m.cookies.Get(r, authCookieName)
	sess.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   m.tokenMaxAge,
	}
	sess.Values[tokenValueKey] = token
	if err := sess.Save(r, w); err != nil {
		return fmt.Errorf("save auth cookie: %w", err)
	}
	return nil
}

// ClearToken erases the durable token scope (logout or detected 401).
func (m *Manager) ClearToken(w http.ResponseWriter, r *http.Request) error {
	sess, _ := m.cookies.Get(r, authCookieName)
	delete(sess.Values, tokenValueKey)
	sess.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	}
	if err := sess.Save(r, w); err != nil {
		return fmt.Errorf("expire auth cookie: %w", err)
	}
	return nil
}

// LoggedIn reports whether a bearer token is present.
func (m *Manager) LoggedIn(r *http.Request) bool {
	return m.Token(r) != ""
}

// Draft returns the current registration draft, or the empty shape when the
// browser session has none.
func (m *Manager) Draft(ctx context.Context, r *http.Request) Draft {
	sess, err := m.cookies.Get(r, draftCookieName)
	if err != nil {
		return Draft{}
	}
	key, _ := sess.Values[draftValueKey].(string)
	if key == "" {
		return Draft{}
	}
	draft, err := m.drafts.Get(ctx, key)
	if err != nil {
		return Draft{}
	}
	return draft
}

// UpdateDraft merge-updates the draft and persists it immediately
// (write-through; there is no separate flush). The first update of a browser
// session mints the draft handle and sets the session-scoped cookie.
func (m *Manager) UpdateDraft(ctx context.Context, w http.ResponseWriter, r *http.Request, merge func(*Draft)) (Draft, error) {
	sess, _ := m.cookies.Get(r, draftCookieName)
	key, _ := sess.Values[draftValueKey].(string)
	if key == "" {
		key = uuid.NewString()
		sess.Values[draftValueKey] = key
		sess.Options = &sessions.Options{
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
			MaxAge:   0, // session cookie
		}
		if err := sess.Save(r, w); err != nil {
			return Draft{}, fmt.Errorf("save draft cookie: %w", err)
		}
	}

	draft, err := m.drafts.Get(ctx, key)
	if err != nil && !errors.Is(err, sentinel.ErrNotFound) {
		return Draft{}, err
	}

	merge(&draft)

	if err := m.drafts.Put(ctx, key, draft); err != nil {
		return Draft{}, err
	}
	return draft, nil
}

// ClearDraft resets the draft to its empty shape: the store entry is removed
// and the cookie expired.
func (m *Manager) ClearDraft(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	sess, _ := m.cookies.Get(r, draftCookieName)
	key, _ := sess.Values[draftValueKey].(string)
	if key != "" {
		if err := m.drafts.Delete(ctx, key); err != nil {
			return err
		}
	}
	delete(sess.Values, draftValueKey)
	sess.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	}
	if err := sess.Save(r, w); err != nil {
		return fmt.Errorf("expire draft cookie: %w", err)
	}
	return nil
}

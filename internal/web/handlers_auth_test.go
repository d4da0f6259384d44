package web

import (
	"net/http"
	"net/url"
)

func (s *WebSuite) TestSplashRefreshesToInvite() {
	rec := s.get("/")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(s.body(rec), `url=/invite`)
}

func (s *WebSuite) TestInviteAcceptedStartsFunnel() {
	s.respond("POST /auth/invitation/verify", http.StatusOK, map[string]any{
		"valid": true, "sessionId": "sess-1",
	})

	rec := s.post("/invite", url.Values{"code": {"TEST001"}})

	s.redirectsTo(rec, "/register/name")
	s.True(s.hasCookie("vanta_draft"))
}

func (s *WebSuite) TestInviteRejectedStaysWithMessage() {
	s.respond("POST /auth/invitation/verify", http.StatusOK, map[string]any{
		"valid": false,
	})

	rec := s.post("/invite", url.Values{"code": {"WRONG"}})

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(s.body(rec), "초대코드가 유효하지 않습니다.")
	s.False(s.hasCookie("vanta_draft"))
}

func (s *WebSuite) TestLoginFailureStaysOnLogin() {
	s.respond("POST /auth/login", http.StatusOK, map[string]any{
		"ok": false, "message": "로그인에 실패했습니다.",
	})

	rec := s.post("/login", url.Values{"user_id": {"woojin01"}, "password": {"wrong"}})

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(s.body(rec), "로그인에 실패했습니다.")
	s.False(s.hasCookie("vanta_auth"), "no token may be stored on a failed login")
}

func (s *WebSuite) TestLoginEmptyFieldsPromptWithoutUpstreamCall() {
	rec := s.post("/login", url.Values{"user_id": {""}, "password": {""}})

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(s.body(rec), "아이디와 비밀번호를 입력해주세요.")
	s.Zero(s.calls["POST /auth/login"])
}

func (s *WebSuite) TestSignupFunnelEndToEnd() {
	s.respond("POST /auth/invitation/verify", http.StatusOK, map[string]any{
		"valid": true, "sessionId": "sess-1",
	})
	s.respond("PUT /auth/register/name", http.StatusOK, map[string]any{"ok": true})
	s.respond("PUT /auth/register/birthday", http.StatusOK, map[string]any{"ok": true})
	s.respond("PUT /auth/register/phone", http.StatusOK, map[string]any{"ok": true})
	s.respond("PUT /auth/register/userid", http.StatusOK, map[string]any{"ok": true})
	s.respond("PUT /auth/register/password", http.StatusOK, map[string]any{
		"ok": true, "userId": 9, "accessToken": "tok-new", "tokenType": "bearer",
	})

	s.redirectsTo(s.post("/invite", url.Values{"code": {"TEST001"}}), "/register/name")
	s.redirectsTo(s.post("/register/name", url.Values{"name": {"박우진"}}), "/register/birthday")
	s.redirectsTo(s.post("/register/birthday", url.Values{"birthday": {"990101"}}), "/register/phone")
	s.redirectsTo(s.post("/register/phone", url.Values{"phone": {"01099998888"}}), "/register/userid")
	s.redirectsTo(s.post("/register/userid", url.Values{"user_id": {"woojin01"}}), "/register/password")
	s.redirectsTo(s.post("/register/password", url.Values{
		"password": {"secret1"}, "password_confirm": {"secret1"},
	}), "/parties")

	s.True(s.hasCookie("vanta_auth"), "signup completion logs the user in")

	// The party list now renders for the fresh account.
	s.respond("GET /party/1/info", http.StatusOK, map[string]any{
		"ok": true, "title": "After-Christmas Party", "spotsLeft": 3, "totalSpots": 50,
	})
	s.respond("GET /enrollment/check/9/1", http.StatusOK, map[string]any{"enrolled": false})

	rec := s.get("/parties")
	s.Equal(http.StatusOK, rec.Code)
	body := s.body(rec)
	s.Contains(body, "After-Christmas Party")
	s.Contains(body, "Enroll")
}

func (s *WebSuite) TestRegisterStepWithoutInvitationSession() {
	// No invite happened: the draft carries no session id, the step must not
	// reach the backend.
	rec := s.post("/register/name", url.Values{"name": {"박우진"}})

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(s.body(rec), "세션이 만료되었습니다. 초대코드부터 다시 시작해주세요.")
	s.Zero(s.calls["PUT /auth/register/name"])
}

func (s *WebSuite) TestBirthdayValidationInline() {
	s.respond("POST /auth/invitation/verify", http.StatusOK, map[string]any{
		"valid": true, "sessionId": "sess-1",
	})
	s.redirectsTo(s.post("/invite", url.Values{"code": {"TEST001"}}), "/register/name")

	rec := s.post("/register/birthday", url.Values{"birthday": {"99011"}})

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(s.body(rec), "6자리 숫자를 입력해주세요 (예: 990101).")
	s.Zero(s.calls["PUT /auth/register/birthday"])
}

func (s *WebSuite) TestPasswordMismatchInline() {
	s.respond("POST /auth/invitation/verify", http.StatusOK, map[string]any{
		"valid": true, "sessionId": "sess-1",
	})
	s.redirectsTo(s.post("/invite", url.Values{"code": {"TEST001"}}), "/register/name")

	rec := s.post("/register/password", url.Values{
		"password": {"secret1"}, "password_confirm": {"secret2"},
	})

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(s.body(rec), "비밀번호가 일치하지 않습니다")
	s.Zero(s.calls["PUT /auth/register/password"])
}

func (s *WebSuite) TestLogoutClearsBothScopes() {
	s.login()

	rec := s.post("/logout", nil)
	s.redirectsTo(rec, "/login")

	// The gated screens bounce back to login afterwards.
	rec = s.get("/parties")
	s.redirectsTo(rec, "/login")
}

func (s *WebSuite) TestGatedScreenRedirectsWhenLoggedOut() {
	for _, path := range []string{"/parties", "/party/1", "/payment/1", "/coupon", "/profile", "/admin"} {
		rec := s.get(path)
		s.redirectsTo(rec, "/login")
	}
}

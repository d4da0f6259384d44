package web

import (
	"net/http"
	"net/url"
)

func (s *WebSuite) TestProfileRendersFormattedDetails() {
	s.login()
	s.respond("GET /profile/7", http.StatusOK, map[string]any{
		"ok": true,
		"user": map[string]any{
			"id": 7, "userId": "woojin01", "name": "박우진",
			"birthday": "990101", "phone": "01099998888",
		},
		"enrollments": []map[string]any{
			{"partyId": 1, "enrolledAt": "2026-08-01T12:30:00", "couponUsed": false, "status": "approved"},
		},
		"couponSummary": map[string]any{"total": 1, "used": 0, "available": 1},
	})
	s.respond("GET /party/1/info", http.StatusOK, map[string]any{
		"ok": true, "title": "After-Christmas Party",
	})

	rec := s.get("/profile")

	body := s.body(rec)
	s.Contains(body, "99.01.01")
	s.Contains(body, "010-9999-8888")
	s.Contains(body, "Enrolled: 2026.08.01")
	s.Contains(body, "After-Christmas Party")
	s.Contains(body, "Coupon Available")
	s.NotContains(body, "Admin Dashboard", "user 7 is not an admin")
}

func (s *WebSuite) TestProfileAdminSeesDashboardLink() {
	s.respond("POST /auth/login", http.StatusOK, map[string]any{
		"ok": true, "userId": 1, "name": "관리자", "accessToken": "tok-admin", "tokenType": "bearer",
	})
	rec := s.post("/login", url.Values{"user_id": {"admin"}, "password": {"secret1"}})
	s.redirectsTo(rec, "/parties")

	s.respond("GET /profile/1", http.StatusOK, map[string]any{
		"ok": true,
		"user": map[string]any{
			"id": 1, "userId": "admin", "name": "관리자",
			"birthday": "990101", "phone": "01011112222",
		},
		"enrollments":   []map[string]any{},
		"couponSummary": map[string]any{"total": 0, "used": 0, "available": 0},
	})

	rec = s.get("/profile")
	s.Contains(s.body(rec), "Admin Dashboard")
}

func (s *WebSuite) TestProfileFailureRendersEmptyShape() {
	s.login()
	s.respond("GET /profile/7", http.StatusOK, map[string]any{
		"ok": false, "message": "사용자를 찾을 수 없습니다",
	})

	rec := s.get("/profile")

	body := s.body(rec)
	s.Contains(body, "프로필 정보를 불러올 수 없습니다.")
	s.Contains(body, "No parties enrolled yet")
	s.Contains(body, "Enrolled Parties (0)")
}

func (s *WebSuite) TestProfileExpiredTokenForcesRelogin() {
	s.login()
	s.respond("GET /profile/7", http.StatusUnauthorized, map[string]any{})

	rec := s.get("/profile")

	s.redirectsTo(rec, "/login")
}

func (s *WebSuite) TestProfilePendingEnrollmentLabel() {
	s.login()
	s.respond("GET /profile/7", http.StatusOK, map[string]any{
		"ok":   true,
		"user": map[string]any{"id": 7, "userId": "woojin01", "name": "박우진", "birthday": "990101", "phone": "01099998888"},
		"enrollments": []map[string]any{
			{"partyId": 1, "enrolledAt": "2026-08-01T12:30:00", "couponUsed": false, "status": "pending"},
		},
		"couponSummary": map[string]any{"total": 0, "used": 0, "available": 0},
	})

	rec := s.get("/profile")

	s.Contains(s.body(rec), "승인 대기중")
}

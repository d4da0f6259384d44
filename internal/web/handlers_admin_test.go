package web

import (
	"encoding/json"
	"net/http"
	"net/url"
)

func (s *WebSuite) pendingQueue() {
	s.respond("GET /admin/enrollments/pending", http.StatusOK, map[string]any{
		"ok": true, "total": 1,
		"enrollments": []map[string]any{
			{
				"id": 42, "partyId": 1, "status": "pending", "createdAt": "2026-08-02T09:15:00",
				"user": map[string]any{
					"id": 9, "userId": "newbie01", "name": "김신입",
					"birthday": "010203", "phone": "01012345678",
				},
			},
		},
	})
}

func (s *WebSuite) TestAdminListsPendingQueue() {
	s.login()
	s.pendingQueue()

	rec := s.get("/admin")

	body := s.body(rec)
	s.Contains(body, "승인 대기 (1)")
	s.Contains(body, "김신입")
	s.Contains(body, "010-1234-5678")
	s.Contains(body, "2026.08.02 09:15")
}

func (s *WebSuite) TestAdminListFailure() {
	s.login()

	rec := s.get("/admin")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(s.body(rec), "승인 대기 목록을 불러오는데 실패했습니다.")
}

func (s *WebSuite) TestAdminApproveRemovesRow() {
	s.login()
	var gotBody map[string]any
	s.handlers["POST /admin/enrollments/approve"] = func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
	}

	rec := s.post("/admin/approve", url.Values{"enrollment_id": {"42"}})

	s.Require().Equal(http.StatusSeeOther, rec.Code)
	s.Contains(rec.Result().Header.Get("Location"), "/admin?msg=")
	s.Equal(float64(42), gotBody["enrollment_id"])
	s.Equal(1, s.calls["POST /admin/enrollments/approve"])

	// The queue re-renders without the approved row and with the flash.
	s.respond("GET /admin/enrollments/pending", http.StatusOK, map[string]any{
		"ok": true, "total": 0, "enrollments": []map[string]any{},
	})
	rec = s.get(rec.Result().Header.Get("Location"))
	body := s.body(rec)
	s.Contains(body, "승인되었습니다!")
	s.Contains(body, "승인 대기중인 신청이 없습니다.")
}

func (s *WebSuite) TestAdminRejectFailureShowsMessage() {
	s.login()
	s.respond("POST /admin/enrollments/reject", http.StatusOK, map[string]any{
		"ok": false, "message": "이미 처리된 신청입니다",
	})
	s.pendingQueue()

	rec := s.post("/admin/reject", url.Values{"enrollment_id": {"42"}})

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(s.body(rec), "거절에 실패했습니다: 이미 처리된 신청입니다")
}

func (s *WebSuite) TestAdminExpiredTokenForcesRelogin() {
	s.login()
	s.respond("GET /admin/enrollments/pending", http.StatusUnauthorized, map[string]any{})

	rec := s.get("/admin")

	s.redirectsTo(rec, "/login")
}

func (s *WebSuite) TestAdminDecisionBadIDJustBounces() {
	s.login()

	rec := s.post("/admin/approve", url.Values{"enrollment_id": {"abc"}})

	s.redirectsTo(rec, "/admin")
	s.Zero(s.calls["POST /admin/enrollments/approve"])
}

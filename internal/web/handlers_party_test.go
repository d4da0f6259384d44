package web

import (
	"net/http"
)

func (s *WebSuite) TestPartyListShowsViewForEnrolled() {
	s.login()
	s.respond("GET /party/1/info", http.StatusOK, map[string]any{
		"ok": true, "title": "After-Christmas Party", "host": "Woojin Park",
	})
	s.respond("GET /enrollment/check/7/1", http.StatusOK, map[string]any{"enrolled": true})

	rec := s.get("/parties")

	s.Equal(http.StatusOK, rec.Code)
	body := s.body(rec)
	s.Contains(body, "After-Christmas Party")
	s.Contains(body, "View")
	s.NotContains(body, ">Enroll<")
}

func (s *WebSuite) TestPartyListFailedCheckCountsAsNotEnrolled() {
	s.login()
	s.respond("GET /party/1/info", http.StatusOK, map[string]any{
		"ok": true, "title": "After-Christmas Party",
	})
	// enrollment check route missing: the backend answers 404.

	rec := s.get("/parties")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(s.body(rec), "Enroll")
}

func (s *WebSuite) TestPartyDetailRedactsLocationUntilEnrolled() {
	s.login()
	s.respond("GET /party/1/info", http.StatusOK, map[string]any{
		"ok": true, "title": "After-Christmas Party", "location": "서울 강남구 압구정로48길 35",
		"spotsLeft": 3, "totalSpots": 50,
	})
	s.respond("GET /enrollment/check/7/1", http.StatusOK, map[string]any{"enrolled": false})

	rec := s.get("/party/1")

	body := s.body(rec)
	s.NotContains(body, "압구정로48길")
	s.Contains(body, "to see location")
	s.Contains(body, "3/50 spots left")
	s.Contains(body, "Enroll")
}

func (s *WebSuite) TestPartyDetailRevealsLocationWhenEnrolled() {
	s.login()
	s.respond("GET /party/1/info", http.StatusOK, map[string]any{
		"ok": true, "title": "After-Christmas Party", "location": "서울 강남구 압구정로48길 35",
		"spotsLeft": 3, "totalSpots": 50,
	})
	s.respond("GET /enrollment/check/7/1", http.StatusOK, map[string]any{"enrolled": true})

	rec := s.get("/party/1")

	body := s.body(rec)
	s.Contains(body, "압구정로48길")
	s.NotContains(body, "to see location")
	s.NotContains(body, `href="/payment/1"`)
}

func (s *WebSuite) TestPaymentShowsTransferDetails() {
	s.login()
	s.respond("GET /payment/info", http.StatusOK, map[string]any{
		"ok": true,
		"payment": map[string]any{
			"bankName": "카카오뱅크", "accountNumber": "3333-01-1234567",
			"accountHolder": "박우진", "amount": 50000,
		},
	})

	rec := s.get("/payment/1")

	body := s.body(rec)
	s.Contains(body, "아래 계좌번호로 송금해주세요")
	s.Contains(body, "카카오뱅크")
	s.Contains(body, "50,000 Won")
}

func (s *WebSuite) TestPaymentCompleteEnrollsOnceAndConfirms() {
	s.login()
	s.respond("POST /enroll", http.StatusOK, map[string]any{
		"ok": true, "enrollment_id": 42, "status": "pending",
	})

	rec := s.post("/payment/1", nil)

	s.redirectsTo(rec, "/enrolled")
	s.Equal(1, s.calls["POST /enroll"])

	rec = s.get("/enrolled")
	body := s.body(rec)
	s.Contains(body, "참가 신청 완료!")
	s.Contains(body, "운영진의 확인 후 승인됩니다")
	s.Contains(body, "url=/parties")
}

func (s *WebSuite) TestPaymentExpiredTokenForcesRelogin() {
	s.login()
	s.respond("POST /enroll", http.StatusUnauthorized, map[string]any{"message": "token expired"})

	rec := s.post("/payment/1", nil)

	s.redirectsTo(rec, "/login")
	s.False(s.hasCookie("vanta_auth"), "401 must clear the stored token")
}

func (s *WebSuite) TestPaymentFailureShowsInlineMessage() {
	s.login()
	s.respond("POST /enroll", http.StatusOK, map[string]any{
		"ok": false, "message": "자리가 마감되었습니다",
	})
	s.respond("GET /payment/info", http.StatusOK, map[string]any{
		"ok": true, "payment": map[string]any{"bankName": "카카오뱅크", "amount": 50000},
	})

	rec := s.post("/payment/1", nil)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(s.body(rec), "파티 참가에 실패했습니다: 자리가 마감되었습니다")
}

func (s *WebSuite) TestPartyDetailBadID() {
	s.login()
	rec := s.get("/party/abc")
	s.Equal(http.StatusNotFound, rec.Code)
}

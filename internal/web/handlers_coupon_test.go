package web

import "net/http"

func (s *WebSuite) TestCouponUnusedOffersUse() {
	s.login()
	s.respond("GET /coupon/7/1", http.StatusOK, map[string]any{
		"ok": true, "couponUsed": false, "status": "approved",
	})
	s.respond("GET /party/1/info", http.StatusOK, map[string]any{
		"ok": true, "title": "After-Christmas Party",
	})

	rec := s.get("/coupon")

	body := s.body(rec)
	s.Contains(body, "1 Free drink")
	s.Contains(body, "After-Christmas Party")
	s.Contains(body, "Use")
	s.NotContains(body, "사용가능한 쿠폰이 없습니다.")
}

func (s *WebSuite) TestCouponMissingShowsEmptyState() {
	s.login()
	s.respond("GET /coupon/7/1", http.StatusOK, map[string]any{
		"ok": false, "status": "not_enrolled",
	})

	rec := s.get("/coupon")

	s.Contains(s.body(rec), "사용가능한 쿠폰이 없습니다.")
}

func (s *WebSuite) TestCouponBackendErrorShowsEmptyState() {
	s.login()
	// coupon route missing entirely: transport-level failure path.

	rec := s.get("/coupon")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(s.body(rec), "사용가능한 쿠폰이 없습니다.")
}

func (s *WebSuite) TestCouponAlreadyUsed() {
	s.login()
	s.respond("GET /coupon/7/1", http.StatusOK, map[string]any{
		"ok": true, "couponUsed": true, "status": "approved",
	})

	rec := s.get("/coupon")

	body := s.body(rec)
	s.Contains(body, "Used")
	s.NotContains(body, `action="/coupon/use"`)
}

func (s *WebSuite) TestUseCouponRedeemsOnce() {
	s.login()
	s.respond("PUT /coupon/use", http.StatusOK, map[string]any{"ok": true})
	s.respond("GET /coupon/7/1", http.StatusOK, map[string]any{
		"ok": true, "couponUsed": true, "status": "approved",
	})

	rec := s.post("/coupon/use", nil)

	s.redirectsTo(rec, "/coupon?used=1")
	s.Equal(1, s.calls["PUT /coupon/use"])

	rec = s.get("/coupon?used=1")
	body := s.body(rec)
	s.Contains(body, "Used!")
	s.Contains(body, "Show this to the merchant")
}

func (s *WebSuite) TestUseCouponFailureShowsMessage() {
	s.login()
	s.respond("PUT /coupon/use", http.StatusOK, map[string]any{
		"ok": false, "message": "이미 사용된 쿠폰입니다",
	})
	s.respond("GET /coupon/7/1", http.StatusOK, map[string]any{
		"ok": true, "couponUsed": false, "status": "approved",
	})

	rec := s.post("/coupon/use", nil)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(s.body(rec), "이미 사용된 쿠폰입니다")
}

func (s *WebSuite) TestUseCouponExpiredTokenForcesRelogin() {
	s.login()
	s.respond("PUT /coupon/use", http.StatusUnauthorized, map[string]any{})

	rec := s.post("/coupon/use", nil)

	s.redirectsTo(rec, "/login")
}

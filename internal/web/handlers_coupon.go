package web

import (
	"fmt"
	"net/http"

	"golang.org/x/sync/errgroup"

	"vanta/internal/api"
)

// couponParty returns the party whose coupon the coupon screen shows. The
// product currently runs one party at a time; the first configured id is it.
func (h *Handler) couponParty() int64 {
	if len(h.cfg.PartyIDs) == 0 {
		return 1
	}
	return h.cfg.PartyIDs[0]
}

// loadCouponView fetches coupon state and the party title concurrently. Any
// coupon failure other than an auth error collapses to the no-coupon state,
// mirroring how enrollment-gated coupons behave for users who never enrolled.
func (h *Handler) loadCouponView(r *http.Request, userID int64) (couponView, error) {
	partyID := h.couponParty()
	token := h.sessions.Token(r)

	view := couponView{PartyTitle: partyFallbackTitle(partyID)}
	var couponErr error
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		res, err := h.api.Coupon(ctx, token, userID, partyID)
		if err != nil {
			couponErr = err
			view.HasNoCoupon = true
			return nil
		}
		if !res.OK {
			view.HasNoCoupon = true
			return nil
		}
		view.Used = res.CouponUsed
		return nil
	})
	g.Go(func() error {
		if info, err := h.api.PartyInfo(ctx, partyID); err == nil && info.OK && info.Title != "" {
			view.PartyTitle = info.Title
		}
		return nil
	})
	_ = g.Wait()

	if couponErr != nil && api.IsUnauthorized(couponErr) {
		return view, couponErr
	}
	return view, nil
}

func (h *Handler) handleCoupon(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.currentUserID(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	view, err := h.loadCouponView(r, userID)
	if err != nil {
		h.handleUnauthorized(w, r)
		return
	}
	view.JustUsed = r.URL.Query().Get("used") == "1"
	h.render(w, r, "coupon", view)
}

// handleCouponUse redeems the coupon behind the action guard: two taps on Use
// reach the backend once.
func (h *Handler) handleCouponUse(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.currentUserID(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	partyID := h.couponParty()
	token := h.sessions.Token(r)

	key := fmt.Sprintf("%d:use_coupon:%d", userID, partyID)
	v, shared, err := h.guard.Do(key, func() (any, error) {
		return h.api.UseCoupon(r.Context(), token, userID, partyID)
	})
	if shared {
		h.metrics.DuplicateSubmits.Inc()
	}
	if err != nil {
		if api.IsUnauthorized(err) {
			h.handleUnauthorized(w, r)
			return
		}
		h.renderCouponError(w, r, userID, api.UserMessage(err, "쿠폰 사용에 실패했습니다."))
		return
	}
	res := v.(*api.SimpleResponse)
	if !res.OK {
		msg := res.Message
		if msg == "" {
			msg = "쿠폰 사용에 실패했습니다."
		}
		h.renderCouponError(w, r, userID, msg)
		return
	}

	h.metrics.CountAction("coupon", "used")
	http.Redirect(w, r, "/coupon?used=1", http.StatusSeeOther)
}

func (h *Handler) renderCouponError(w http.ResponseWriter, r *http.Request, userID int64, msg string) {
	view, err := h.loadCouponView(r, userID)
	if err != nil {
		h.handleUnauthorized(w, r)
		return
	}
	view.Error = msg
	h.render(w, r, "coupon", view)
}

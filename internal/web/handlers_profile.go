package web

import (
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"vanta/internal/api"
)

// handleProfile renders the profile screen. A failed fetch degrades to the
// empty-profile shape rather than an error page; party titles for the
// enrollment list come from the backend like everywhere else.
func (h *Handler) handleProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.currentUserID(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	token := h.sessions.Token(r)

	res, err := h.api.Profile(r.Context(), token, userID)
	if err != nil {
		if api.IsUnauthorized(err) {
			h.handleUnauthorized(w, r)
			return
		}
		h.logger.WarnContext(r.Context(), "profile fetch", "error", err)
		h.render(w, r, "profile", profileView{})
		return
	}
	if !res.OK {
		h.render(w, r, "profile", profileView{})
		return
	}

	view := profileView{
		CouponSummary: couponSummaryView{
			Total:     res.CouponSummary.Total,
			Used:      res.CouponSummary.Used,
			Available: res.CouponSummary.Available,
		},
	}
	if res.User != nil {
		view.User = &profileUserView{
			Name:     res.User.Name,
			UserID:   res.User.UserID,
			Birthday: FormatBirthday(res.User.Birthday),
			Phone:    FormatPhone(res.User.Phone),
		}
		view.ShowAdmin = h.cfg.IsAdmin(strconv.FormatInt(res.User.ID, 10))
	}

	view.Enrollments = make([]profileEnrollmentView, len(res.Enrollments))
	g, ctx := errgroup.WithContext(r.Context())
	for i, e := range res.Enrollments {
		g.Go(func() error {
			row := profileEnrollmentView{
				Title:       partyFallbackTitle(e.PartyID),
				EnrolledAt:  FormatDate(e.EnrolledAt),
				StatusLabel: enrollmentStatusLabel(e),
			}
			if info, err := h.api.PartyInfo(ctx, e.PartyID); err == nil && info.OK && info.Title != "" {
				row.Title = info.Title
			}
			view.Enrollments[i] = row
			return nil
		})
	}
	_ = g.Wait()

	h.render(w, r, "profile", view)
}

func enrollmentStatusLabel(e api.ProfileEnrollment) string {
	switch e.Status {
	case "pending":
		return "승인 대기중"
	case "rejected":
		return "거절됨"
	case "approved":
		if e.CouponUsed {
			return "Coupon Used"
		}
		return "Coupon Available"
	default:
		return e.Status
	}
}

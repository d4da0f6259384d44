package web

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"vanta/internal/api"
)

// adminDecision is one of the two moderation actions on a pending enrollment.
type adminDecision struct {
	name    string
	flash   string
	failure string
	call    func(ctx context.Context, h *Handler, token string, enrollmentID int64) (*api.SimpleResponse, error)
}

var (
	decisionApprove = adminDecision{
		name:    "approve",
		flash:   "승인되었습니다!",
		failure: "승인에 실패했습니다",
		call: func(ctx context.Context, h *Handler, token string, enrollmentID int64) (*api.SimpleResponse, error) {
			return h.api.ApproveEnrollment(ctx, token, enrollmentID)
		},
	}
	decisionReject = adminDecision{
		name:    "reject",
		flash:   "거절되었습니다.",
		failure: "거절에 실패했습니다",
		call: func(ctx context.Context, h *Handler, token string, enrollmentID int64) (*api.SimpleResponse, error) {
			return h.api.RejectEnrollment(ctx, token, enrollmentID)
		},
	}
)

// handleAdmin lists enrollments awaiting approval. Admin rights are enforced
// by the backend; this screen only adds a client-side gate on the dashboard
// link, so a non-admin hitting /admin directly just sees the backend refuse.
func (h *Handler) handleAdmin(w http.ResponseWriter, r *http.Request) {
	token := h.sessions.Token(r)

	view := adminView{Flash: r.URL.Query().Get("msg")}
	res, err := h.api.PendingEnrollments(r.Context(), token)
	if err != nil {
		if api.IsUnauthorized(err) {
			h.handleUnauthorized(w, r)
			return
		}
		view.Error = "승인 대기 목록을 불러오는데 실패했습니다."
		h.render(w, r, "admin", view)
		return
	}
	if res.OK {
		view.Total = res.Total
		for _, e := range res.Enrollments {
			view.Enrollments = append(view.Enrollments, pendingRow{
				ID:        e.ID,
				Name:      e.User.Name,
				UserID:    e.User.UserID,
				Phone:     FormatPhone(e.User.Phone),
				CreatedAt: FormatDateTime(e.CreatedAt),
			})
		}
	}
	h.render(w, r, "admin", view)
}

// handleAdminDecision approves or rejects one enrollment behind the action
// guard, then bounces back to the queue with a flash message.
func (h *Handler) handleAdminDecision(decision adminDecision) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		enrollmentID, err := strconv.ParseInt(r.PostFormValue("enrollment_id"), 10, 64)
		if err != nil {
			http.Redirect(w, r, "/admin", http.StatusSeeOther)
			return
		}
		userID, ok := h.currentUserID(r)
		if !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		token := h.sessions.Token(r)

		key := fmt.Sprintf("%d:%s:%d", userID, decision.name, enrollmentID)
		v, shared, err := h.guard.Do(key, func() (any, error) {
			return decision.call(r.Context(), h, token, enrollmentID)
		})
		if shared {
			h.metrics.DuplicateSubmits.Inc()
		}
		if err != nil {
			if api.IsUnauthorized(err) {
				h.handleUnauthorized(w, r)
				return
			}
			h.renderAdminError(w, r, decision.failure+": "+api.UserMessage(err, decision.failure))
			return
		}
		res := v.(*api.SimpleResponse)
		if !res.OK {
			msg := res.Message
			if msg == "" {
				msg = decision.failure
			}
			h.renderAdminError(w, r, decision.failure+": "+msg)
			return
		}

		h.metrics.CountAction("admin", decision.name)
		http.Redirect(w, r, "/admin?msg="+url.QueryEscape(decision.flash), http.StatusSeeOther)
	}
}

func (h *Handler) renderAdminError(w http.ResponseWriter, r *http.Request, msg string) {
	token := h.sessions.Token(r)
	view := adminView{Error: msg}
	if res, err := h.api.PendingEnrollments(r.Context(), token); err == nil && res.OK {
		view.Total = res.Total
		for _, e := range res.Enrollments {
			view.Enrollments = append(view.Enrollments, pendingRow{
				ID:        e.ID,
				Name:      e.User.Name,
				UserID:    e.User.UserID,
				Phone:     FormatPhone(e.User.Phone),
				CreatedAt: FormatDateTime(e.CreatedAt),
			})
		}
	}
	h.render(w, r, "admin", view)
}

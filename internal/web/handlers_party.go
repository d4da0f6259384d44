package web

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"vanta/internal/api"
	"vanta/pkg/requestcontext"
)

func (h *Handler) currentUserID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(requestcontext.UserID(r.Context()), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func partyFallbackTitle(id int64) string {
	return fmt.Sprintf("Party #%d", id)
}

// handleParties renders the party list. Info and enrollment status are
// fetched for every configured party in parallel; a failed status check just
// shows the party as not enrolled.
func (h *Handler) handleParties(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.currentUserID(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	cards := make([]partyCard, len(h.cfg.PartyIDs))
	g, ctx := errgroup.WithContext(r.Context())
	for i, partyID := range h.cfg.PartyIDs {
		g.Go(func() error {
			card := partyCard{ID: partyID, Title: partyFallbackTitle(partyID)}
			if info, err := h.api.PartyInfo(ctx, partyID); err == nil && info.OK {
				if info.Title != "" {
					card.Title = info.Title
				}
				card.Host = info.Host
			}
			if status, err := h.api.CheckEnrollment(ctx, userID, partyID); err == nil {
				card.Enrolled = status.Enrolled
			} else {
				h.logger.WarnContext(ctx, "enrollment check", "party_id", partyID, "error", err)
			}
			cards[i] = card
			return nil
		})
	}
	_ = g.Wait()

	h.render(w, r, "parties", partiesView{Parties: cards})
}

// handlePartyDetail renders one party. The info and enrollment calls run
// concurrently and fail independently; the location stays redacted until the
// user is enrolled and capacity always comes from the backend.
func (h *Handler) handlePartyDetail(w http.ResponseWriter, r *http.Request) {
	partyID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	userID, ok := h.currentUserID(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	view := partyDetailView{ID: partyID, Title: partyFallbackTitle(partyID)}
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		info, err := h.api.PartyInfo(ctx, partyID)
		if err != nil || !info.OK {
			h.logger.WarnContext(ctx, "party info", "party_id", partyID, "error", err)
			return nil
		}
		if info.Title != "" {
			view.Title = info.Title
		}
		view.Host = info.Host
		view.Date = info.Date
		view.Time = info.Time
		view.Location = info.Location
		view.Description = info.Description
		view.SpotsLeft = info.SpotsLeft
		view.TotalSpots = info.TotalSpots
		return nil
	})
	g.Go(func() error {
		status, err := h.api.CheckEnrollment(ctx, userID, partyID)
		if err != nil {
			h.logger.WarnContext(ctx, "enrollment check", "party_id", partyID, "error", err)
			return nil
		}
		view.Enrolled = status.Enrolled
		return nil
	})
	_ = g.Wait()

	h.render(w, r, "party_detail", view)
}

func (h *Handler) handlePaymentForm(w http.ResponseWriter, r *http.Request) {
	partyID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	view := paymentView{PartyID: partyID}
	info, err := h.api.PaymentInfo(r.Context())
	if err != nil || !info.OK {
		view.Error = api.UserMessage(err, "결제 정보 조회 실패")
	} else {
		view.BankName = info.Payment.BankName
		view.AccountNumber = info.Payment.AccountNumber
		view.AccountHolder = info.Payment.AccountHolder
		view.Amount = FormatAmount(info.Payment.Amount)
	}
	h.render(w, r, "payment", view)
}

// handlePaymentSubmit runs the enroll call behind the action guard so a
// double-tap on 완료 produces exactly one upstream enrollment.
func (h *Handler) handlePaymentSubmit(w http.ResponseWriter, r *http.Request) {
	partyID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	userID, ok := h.currentUserID(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	token := h.sessions.Token(r)

	key := fmt.Sprintf("%d:enroll:%d", userID, partyID)
	v, shared, err := h.guard.Do(key, func() (any, error) {
		return h.api.Enroll(r.Context(), token, userID, partyID)
	})
	if shared {
		h.metrics.DuplicateSubmits.Inc()
	}
	if err != nil {
		if api.IsUnauthorized(err) {
			h.handleUnauthorized(w, r)
			return
		}
		h.metrics.CountAction("payment", "failed")
		h.renderPaymentError(w, r, partyID, "파티 참가에 실패했습니다: "+api.UserMessage(err, "파티 참가 실패"))
		return
	}
	res := v.(*api.EnrollResponse)
	if !res.OK {
		msg := res.Message
		if msg == "" {
			msg = "파티 참가 실패"
		}
		h.metrics.CountAction("payment", "failed")
		h.renderPaymentError(w, r, partyID, "파티 참가에 실패했습니다: "+msg)
		return
	}

	h.metrics.CountAction("payment", "enrolled")
	http.Redirect(w, r, "/enrolled", http.StatusSeeOther)
}

func (h *Handler) renderPaymentError(w http.ResponseWriter, r *http.Request, partyID int64, msg string) {
	view := paymentView{PartyID: partyID, Error: msg}
	if info, err := h.api.PaymentInfo(r.Context()); err == nil && info.OK {
		view.BankName = info.Payment.BankName
		view.AccountNumber = info.Payment.AccountNumber
		view.AccountHolder = info.Payment.AccountHolder
		view.Amount = FormatAmount(info.Payment.Amount)
	}
	h.render(w, r, "payment", view)
}

// handleEnrolled is the confirmation splash; the template refreshes back to
// the party list after two seconds.
func (h *Handler) handleEnrolled(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "enrolled", nil)
}

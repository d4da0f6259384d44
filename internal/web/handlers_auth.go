package web

import (
	"errors"
	"net/http"

	"vanta/internal/register"
	"vanta/internal/session"
)

// registerStep describes one screen of the signup funnel. The password step
// has its own template because it carries two inputs.
type registerStep struct {
	name        string
	title       string
	placeholder string
	inputType   string
	action      string
	next        string
	back        string
	value       func(d session.Draft) string
	submit      func(h *Handler, r *http.Request, d *session.Draft, input string) error
}

var (
	stepName = registerStep{
		name:        "name",
		title:       "이름을 입력해주세요",
		placeholder: "박우진",
		inputType:   "text",
		action:      "/register/name",
		next:        "/register/birthday",
		back:        "/invite",
		value:       func(d session.Draft) string { return d.Name },
		submit: func(h *Handler, r *http.Request, d *session.Draft, input string) error {
			return h.flow.SubmitName(r.Context(), d, input)
		},
	}
	stepBirthday = registerStep{
		name:        "birthday",
		title:       "생년월일을 입력해주세요",
		placeholder: "예시: 990101",
		inputType:   "text",
		action:      "/register/birthday",
		next:        "/register/phone",
		back:        "/register/name",
		value:       func(d session.Draft) string { return d.Birthday },
		submit: func(h *Handler, r *http.Request, d *session.Draft, input string) error {
			return h.flow.SubmitBirthday(r.Context(), d, input)
		},
	}
	stepPhone = registerStep{
		name:        "phone",
		title:       "휴대폰번호를 입력해주세요",
		placeholder: "01012345678",
		inputType:   "tel",
		action:      "/register/phone",
		next:        "/register/userid",
		back:        "/register/birthday",
		value:       func(d session.Draft) string { return d.Phone },
		submit: func(h *Handler, r *http.Request, d *session.Draft, input string) error {
			return h.flow.SubmitPhone(r.Context(), d, input)
		},
	}
	stepUserID = registerStep{
		name:        "user_id",
		title:       "사용할 아이디를 입력해주세요",
		placeholder: "아이디",
		inputType:   "text",
		action:      "/register/userid",
		next:        "/register/password",
		back:        "/register/phone",
		value:       func(d session.Draft) string { return d.UserID },
		submit: func(h *Handler, r *http.Request, d *session.Draft, input string) error {
			return h.flow.SubmitUserID(r.Context(), d, input)
		},
	}
)

func (h *Handler) handleSplash(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "splash", nil)
}

func (h *Handler) handleInviteForm(w http.ResponseWriter, r *http.Request) {
	draft := h.sessions.Draft(r.Context(), r)
	h.render(w, r, "invite", inviteView{Code: draft.InvitationCode})
}

func (h *Handler) handleInviteSubmit(w http.ResponseWriter, r *http.Request) {
	code := r.PostFormValue("code")
	sessionID, err := h.flow.StartInvitation(r.Context(), code)
	if err != nil {
		if errors.Is(err, register.ErrEmptyInput) {
			h.render(w, r, "invite", inviteView{})
			return
		}
		h.metrics.CountAction("invite", "rejected")
		h.render(w, r, "invite", inviteView{Code: code, Error: err.Error()})
		return
	}

	_, err = h.sessions.UpdateDraft(r.Context(), w, r, func(d *session.Draft) {
		d.SessionID = sessionID
		d.InvitationCode = code
	})
	if err != nil {
		h.logger.ErrorContext(r.Context(), "save draft", "error", err)
		h.render(w, r, "invite", inviteView{Code: code, Error: "초대코드 검증 중 오류가 발생했습니다."})
		return
	}
	h.metrics.CountAction("invite", "accepted")
	http.Redirect(w, r, "/register/name", http.StatusSeeOther)
}

func (h *Handler) handleLoginForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "login", loginView{})
}

func (h *Handler) handleLoginSubmit(w http.ResponseWriter, r *http.Request) {
	userID := r.PostFormValue("user_id")
	password := r.PostFormValue("password")

	creds, err := h.flow.Login(r.Context(), userID, password)
	if err != nil {
		msg := err.Error()
		if errors.Is(err, register.ErrEmptyInput) {
			msg = "아이디와 비밀번호를 입력해주세요."
		}
		h.metrics.CountAction("login", "failed")
		h.render(w, r, "login", loginView{UserID: userID, Error: msg})
		return
	}

	if err := h.sessions.SetToken(w, r, creds.Token); err != nil {
		h.logger.ErrorContext(r.Context(), "store token", "error", err)
		h.render(w, r, "login", loginView{UserID: userID, Error: register.MsgLoginFailed})
		return
	}
	_, err = h.sessions.UpdateDraft(r.Context(), w, r, func(d *session.Draft) {
		d.UserID = creds.UserID
		d.Name = creds.Name
	})
	if err != nil {
		h.logger.ErrorContext(r.Context(), "save draft", "error", err)
	}
	h.metrics.CountAction("login", "success")
	http.Redirect(w, r, "/parties", http.StatusSeeOther)
}

// handleLogout drops both scopes and returns to the login screen.
func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.ClearToken(w, r); err != nil {
		h.logger.WarnContext(r.Context(), "clear token", "error", err)
	}
	if err := h.sessions.ClearDraft(r.Context(), w, r); err != nil {
		h.logger.WarnContext(r.Context(), "clear draft", "error", err)
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *Handler) handleRegisterStepForm(step registerStep) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		draft := h.sessions.Draft(r.Context(), r)
		h.render(w, r, "register_step", formView{
			Title:       step.title,
			Action:      step.action,
			Field:       step.name,
			Placeholder: step.placeholder,
			InputType:   step.inputType,
			Value:       step.value(draft),
			Back:        step.back,
		})
	}
}

func (h *Handler) handleRegisterStepSubmit(step registerStep) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		input := r.PostFormValue(step.name)
		draft := h.sessions.Draft(r.Context(), r)

		if err := step.submit(h, r, &draft, input); err != nil {
			if errors.Is(err, register.ErrSessionExpired) {
				h.renderStepError(w, r, step, input, err.Error())
				return
			}
			if errors.Is(err, register.ErrEmptyInput) {
				h.renderStepError(w, r, step, "", "")
				return
			}
			h.renderStepError(w, r, step, input, err.Error())
			return
		}

		_, err := h.sessions.UpdateDraft(r.Context(), w, r, func(d *session.Draft) {
			*d = draft
		})
		if err != nil {
			h.logger.ErrorContext(r.Context(), "save draft", "error", err)
		}
		http.Redirect(w, r, step.next, http.StatusSeeOther)
	}
}

func (h *Handler) renderStepError(w http.ResponseWriter, r *http.Request, step registerStep, value, msg string) {
	h.render(w, r, "register_step", formView{
		Title:       step.title,
		Action:      step.action,
		Field:       step.name,
		Placeholder: step.placeholder,
		InputType:   step.inputType,
		Value:       value,
		Back:        step.back,
		Error:       msg,
	})
}

func (h *Handler) handlePasswordForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "register_password", passwordView{})
}

// handlePasswordSubmit finalizes the account. This is the only place signup
// hands out a token; the draft keeps everything except the password.
func (h *Handler) handlePasswordSubmit(w http.ResponseWriter, r *http.Request) {
	password := r.PostFormValue("password")
	confirm := r.PostFormValue("password_confirm")
	draft := h.sessions.Draft(r.Context(), r)

	creds, err := h.flow.SubmitPassword(r.Context(), &draft, password, confirm)
	if err != nil {
		if errors.Is(err, register.ErrEmptyInput) {
			h.render(w, r, "register_password", passwordView{})
			return
		}
		h.metrics.CountAction("register", "failed")
		h.render(w, r, "register_password", passwordView{Error: err.Error()})
		return
	}

	if err := h.sessions.SetToken(w, r, creds.Token); err != nil {
		h.logger.ErrorContext(r.Context(), "store token", "error", err)
		h.render(w, r, "register_password", passwordView{Error: "회원가입에 실패했습니다."})
		return
	}
	_, err = h.sessions.UpdateDraft(r.Context(), w, r, func(d *session.Draft) {
		*d = draft
	})
	if err != nil {
		h.logger.ErrorContext(r.Context(), "save draft", "error", err)
	}
	h.metrics.CountAction("register", "success")
	http.Redirect(w, r, "/parties", http.StatusSeeOther)
}

// Package register drives the multi-step signup flow: invitation code first,
// then name, birthday, phone, login id and password, each saved remotely
// against the invitation's session before the next step unlocks. It also owns
// the plain login path since both end in the same credentials.
package register

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"vanta/internal/api"
	"vanta/internal/session"
)

//go:generate mockgen -source=flow.go -destination=mocks/mocks.go -package=mocks Gateway

// Gateway is the slice of the backend client the flow needs.
type Gateway interface {
	VerifyInvitation(ctx context.Context, code string) (*api.VerifyInvitationResponse, error)
	Login(ctx context.Context, userID, password string) (*api.LoginResponse, error)
	SaveName(ctx context.Context, sessionID, name string) (*api.RegisterStepResponse, error)
	SaveBirthday(ctx context.Context, sessionID, birthday string) (*api.RegisterStepResponse, error)
	SavePhone(ctx context.Context, sessionID, phone string) (*api.RegisterStepResponse, error)
	SaveUserID(ctx context.Context, sessionID, userID string) (*api.RegisterStepResponse, error)
	SavePassword(ctx context.Context, sessionID, password string) (*api.RegisterCompleteResponse, error)
}

// User-facing messages for flow-level failures. Step and validation messages
// live next to the step that raises them.
const (
	MsgSessionExpired    = "세션이 만료되었습니다. 초대코드부터 다시 시작해주세요."
	MsgInvalidInvitation = "초대코드가 유효하지 않습니다."
	MsgLoginFailed       = "로그인에 실패했습니다."
)

// ErrSessionExpired means the draft has no registration session: the user
// skipped the invitation step or their draft aged out. No upstream call was
// made; the flow restarts at /invite.
var ErrSessionExpired = errors.New(MsgSessionExpired)

// ErrEmptyInput means the submitted field was blank. The screen re-renders
// with no message, same as the original behavior of ignoring the submit.
var ErrEmptyInput = errors.New("empty input")

// userError is a validation or business failure whose text goes straight to
// the screen.
type userError string

func (e userError) Error() string { return string(e) }

// Credentials is what a completed login or signup yields. UserID is the
// backend's numeric id, stringified for the draft.
type Credentials struct {
	Token  string
	UserID string
	Name   string
}

// Flow executes registration steps against the gateway and mutates the draft
// as steps succeed. It holds no per-user state.
type Flow struct {
	gw Gateway
}

func NewFlow(gw Gateway) *Flow {
	return &Flow{gw: gw}
}

// StartInvitation verifies the code and returns the registration session id.
func (f *Flow) StartInvitation(ctx context.Context, code string) (string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", ErrEmptyInput
	}
	res, err := f.gw.VerifyInvitation(ctx, code)
	if err != nil {
		return "", userError(api.UserMessage(err, MsgInvalidInvitation))
	}
	if !res.Valid || res.SessionID == "" {
		if res.Message != "" {
			return "", userError(res.Message)
		}
		return "", userError(MsgInvalidInvitation)
	}
	return res.SessionID, nil
}

// Login authenticates outside the signup flow.
func (f *Flow) Login(ctx context.Context, userID, password string) (*Credentials, error) {
	if strings.TrimSpace(userID) == "" || password == "" {
		return nil, ErrEmptyInput
	}
	res, err := f.gw.Login(ctx, userID, password)
	if err != nil {
		return nil, userError(api.UserMessage(err, MsgLoginFailed))
	}
	if !res.OK || res.AccessToken == "" {
		if res.Message != "" {
			return nil, userError(res.Message)
		}
		return nil, userError(MsgLoginFailed)
	}
	return &Credentials{
		Token:  res.AccessToken,
		UserID: strconv.FormatInt(res.UserID, 10),
		Name:   res.Name,
	}, nil
}

// SubmitName saves the name step and records it in the draft.
func (f *Flow) SubmitName(ctx context.Context, d *session.Draft, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyInput
	}
	if d.SessionID == "" {
		return ErrSessionExpired
	}
	res, err := f.gw.SaveName(ctx, d.SessionID, name)
	if err := stepResult(res, err, "이름 저장에 실패했습니다."); err != nil {
		return err
	}
	d.Name = name
	return nil
}

// SubmitBirthday validates YYMMDD, saves the step, records it in the draft.
func (f *Flow) SubmitBirthday(ctx context.Context, d *session.Draft, birthday string) error {
	birthday = strings.TrimSpace(birthday)
	if birthday == "" {
		return ErrEmptyInput
	}
	if err := ValidateBirthday(birthday); err != nil {
		return err
	}
	if d.SessionID == "" {
		return ErrSessionExpired
	}
	res, err := f.gw.SaveBirthday(ctx, d.SessionID, birthday)
	if err := stepResult(res, err, "생년월일 저장에 실패했습니다."); err != nil {
		return err
	}
	d.Birthday = birthday
	return nil
}

// SubmitPhone validates the number, saves the step, records it in the draft.
func (f *Flow) SubmitPhone(ctx context.Context, d *session.Draft, phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ErrEmptyInput
	}
	if err := ValidatePhone(phone); err != nil {
		return err
	}
	if d.SessionID == "" {
		return ErrSessionExpired
	}
	res, err := f.gw.SavePhone(ctx, d.SessionID, phone)
	if err := stepResult(res, err, "휴대폰 번호 저장에 실패했습니다."); err != nil {
		return err
	}
	d.Phone = phone
	return nil
}

// SubmitUserID validates the login id, saves the step, records it in the
// draft. The numeric account id replaces it once the password step completes.
func (f *Flow) SubmitUserID(ctx context.Context, d *session.Draft, userID string) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return ErrEmptyInput
	}
	if err := ValidateUserID(userID); err != nil {
		return err
	}
	if d.SessionID == "" {
		return ErrSessionExpired
	}
	res, err := f.gw.SaveUserID(ctx, d.SessionID, userID)
	if err := stepResult(res, err, "아이디 저장에 실패했습니다."); err != nil {
		return err
	}
	d.UserID = userID
	return nil
}

// SubmitPassword finalizes the account. On success the draft's UserID becomes
// the backend's numeric id; the password itself is never written to the draft.
func (f *Flow) SubmitPassword(ctx context.Context, d *session.Draft, password, confirm string) (*Credentials, error) {
	if password == "" {
		return nil, ErrEmptyInput
	}
	if err := ValidatePassword(password, confirm); err != nil {
		return nil, err
	}
	if d.SessionID == "" {
		return nil, ErrSessionExpired
	}
	res, err := f.gw.SavePassword(ctx, d.SessionID, password)
	if err != nil {
		return nil, userError(api.UserMessage(err, "회원가입에 실패했습니다."))
	}
	if !res.OK || res.AccessToken == "" {
		if res.Message != "" {
			return nil, userError(res.Message)
		}
		return nil, userError("회원가입에 실패했습니다.")
	}
	creds := &Credentials{
		Token:  res.AccessToken,
		UserID: strconv.FormatInt(res.UserID, 10),
		Name:   d.Name,
	}
	d.UserID = creds.UserID
	return creds, nil
}

func stepResult(res *api.RegisterStepResponse, err error, fallback string) error {
	if err != nil {
		return userError(api.UserMessage(err, fallback))
	}
	if !res.OK {
		if res.Message != "" {
			return userError(res.Message)
		}
		return userError(fallback)
	}
	return nil
}

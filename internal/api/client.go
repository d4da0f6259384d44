// Package api is the gateway client for the party backend: one method per
// remote operation, bearer attachment for the gated ones, and classification
// of HTTP failures into user-presentable errors. It performs no business
// validation and no retries; every call is fire-once and cancels with its ctx.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"vanta/internal/platform/metrics"
	"vanta/pkg/platform/sentinel"
)

// Client talks to the backend API. It is safe for concurrent use; per-session
// credentials are passed per call, never stored here.
type Client struct {
	baseURL string
	httpc   *http.Client
	metrics *metrics.Metrics
	tracer  trace.Tracer
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client (tests).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpc = hc }
}

// WithMetrics enables upstream latency metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// New creates a gateway client for the given base URL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpc:   &http.Client{},
		tracer:  otel.Tracer("vanta/internal/api"),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// do issues one request and decodes the response into out. token is attached
// as a bearer credential when non-empty; fallback becomes the error message
// when the failure body carries none. A 401 on a token-bearing call maps to
// sentinel.ErrUnauthorized so the web layer can force re-login.
func (c *Client) do(ctx context.Context, op, method, path, token string, body, out any, fallback string) error {
	ctx, span := c.tracer.Start(ctx, "api."+op,
		trace.WithAttributes(attribute.String("api.op", op)))
	defer span.End()

	var reqBody *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		reqBody = bytes.NewReader(raw)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	res, err := c.httpc.Do(req)
	if err != nil {
		span.RecordError(err)
		c.observe(op, "error", start)
		return &Error{Op: op, Message: fallback, err: fmt.Errorf("%w: %w", sentinel.ErrUnavailable, err)}
	}
	defer res.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", res.StatusCode))
	c.observe(op, strconv.Itoa(res.StatusCode), start)

	if res.StatusCode == http.StatusUnauthorized && token != "" {
		return &Error{Op: op, Status: res.StatusCode, Message: MsgUnauthorized, err: sentinel.ErrUnauthorized}
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		// Failure bodies carry a message more often than not; use it when present.
		var failure struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(res.Body).Decode(&failure)
		msg := failure.Message
		if msg == "" {
			msg = fallback
		}
		return &Error{Op: op, Status: res.StatusCode, Message: msg}
	}

	if out != nil {
		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			span.RecordError(err)
			return &Error{Op: op, Status: res.StatusCode, Message: fallback, err: fmt.Errorf("decode response: %w", err)}
		}
	}
	return nil
}

func (c *Client) observe(op, status string, start time.Time) {
	if c.metrics != nil {
		c.metrics.ObserveUpstream(op, status, time.Since(start))
	}
}

// VerifyInvitation checks an invitation code and opens a registration session.
func (c *Client) VerifyInvitation(ctx context.Context, code string) (*VerifyInvitationResponse, error) {
	body := map[string]string{"invitation_code": code}
	var out VerifyInvitationResponse
	if err := c.do(ctx, "verify_invitation", http.MethodPost, "/auth/invitation/verify", "", body, &out, "초대코드 검증 실패"); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login authenticates with the user's chosen id and password.
func (c *Client) Login(ctx context.Context, userID, password string) (*LoginResponse, error) {
	body := map[string]string{"user_id": userID, "password": password}
	var out LoginResponse
	if err := c.do(ctx, "login", http.MethodPost, "/auth/login", "", body, &out, "로그인 실패"); err != nil {
		return nil, err
	}
	return &out, nil
}

// SaveName stores the name for an in-progress registration.
func (c *Client) SaveName(ctx context.Context, sessionID, name string) (*RegisterStepResponse, error) {
	return c.saveStep(ctx, "save_name", "/auth/register/name", sessionID, "name", name, "이름 저장 실패")
}

// SaveBirthday stores the birthday (YYMMDD).
func (c *Client) SaveBirthday(ctx context.Context, sessionID, birthday string) (*RegisterStepResponse, error) {
	return c.saveStep(ctx, "save_birthday", "/auth/register/birthday", sessionID, "birthday", birthday, "생년월일 저장 실패")
}

// SavePhone stores the phone number.
func (c *Client) SavePhone(ctx context.Context, sessionID, phone string) (*RegisterStepResponse, error) {
	return c.saveStep(ctx, "save_phone", "/auth/register/phone", sessionID, "phone", phone, "휴대폰 저장 실패")
}

// SaveUserID stores the chosen login id.
func (c *Client) SaveUserID(ctx context.Context, sessionID, userID string) (*RegisterStepResponse, error) {
	return c.saveStep(ctx, "save_userid", "/auth/register/userid", sessionID, "user_id", userID, "아이디 저장 실패")
}

func (c *Client) saveStep(ctx context.Context, op, path, sessionID, field, value, fallback string) (*RegisterStepResponse, error) {
	body := map[string]string{"session_id": sessionID, field: value}
	var out RegisterStepResponse
	if err := c.do(ctx, op, http.MethodPut, path, "", body, &out, fallback); err != nil {
		return nil, err
	}
	return &out, nil
}

// SavePassword finalizes registration. On ok:true the backend creates the
// account and returns a bearer token; storing it is the caller's job.
func (c *Client) SavePassword(ctx context.Context, sessionID, password string) (*RegisterCompleteResponse, error) {
	body := map[string]string{"session_id": sessionID, "password": password}
	var out RegisterCompleteResponse
	if err := c.do(ctx, "save_password", http.MethodPut, "/auth/register/password", "", body, &out, "비밀번호 저장 실패"); err != nil {
		return nil, err
	}
	return &out, nil
}

// Enroll requests to join a party. Requires auth.
func (c *Client) Enroll(ctx context.Context, token string, userID, partyID int64) (*EnrollResponse, error) {
	body := map[string]int64{"user_id": userID, "party_id": partyID}
	var out EnrollResponse
	if err := c.do(ctx, "enroll", http.MethodPost, "/enroll", token, body, &out, "파티 참가 실패"); err != nil {
		return nil, err
	}
	return &out, nil
}

// CheckEnrollment reports whether the user has an enrollment for the party.
// Read-only and safe to repeat.
func (c *Client) CheckEnrollment(ctx context.Context, userID, partyID int64) (*CheckEnrollmentResponse, error) {
	path := fmt.Sprintf("/enrollment/check/%d/%d", userID, partyID)
	var out CheckEnrollmentResponse
	if err := c.do(ctx, "check_enrollment", http.MethodGet, path, "", nil, &out, "참가 상태 확인 실패"); err != nil {
		return nil, err
	}
	return &out, nil
}

// PartyInfo fetches capacity and descriptive metadata for one party.
func (c *Client) PartyInfo(ctx context.Context, partyID int64) (*PartyInfoResponse, error) {
	path := fmt.Sprintf("/party/%d/info", partyID)
	var out PartyInfoResponse
	if err := c.do(ctx, "party_info", http.MethodGet, path, "", nil, &out, "파티 정보 조회 실패"); err != nil {
		return nil, err
	}
	return &out, nil
}

// Coupon fetches the coupon state for an enrollment. Requires auth.
func (c *Client) Coupon(ctx context.Context, token string, userID, partyID int64) (*CouponResponse, error) {
	path := fmt.Sprintf("/coupon/%d/%d", userID, partyID)
	var out CouponResponse
	if err := c.do(ctx, "get_coupon", http.MethodGet, path, token, nil, &out, "쿠폰 조회 실패"); err != nil {
		return nil, err
	}
	return &out, nil
}

// UseCoupon marks the coupon consumed. Requires auth.
func (c *Client) UseCoupon(ctx context.Context, token string, userID, partyID int64) (*SimpleResponse, error) {
	body := map[string]int64{"user_id": userID, "party_id": partyID}
	var out SimpleResponse
	if err := c.do(ctx, "use_coupon", http.MethodPut, "/coupon/use", token, body, &out, "쿠폰 사용 실패"); err != nil {
		return nil, err
	}
	return &out, nil
}

// Profile fetches the user's profile, enrollments and coupon summary. Requires auth.
func (c *Client) Profile(ctx context.Context, token string, userID int64) (*ProfileResponse, error) {
	path := fmt.Sprintf("/profile/%d", userID)
	var out ProfileResponse
	if err := c.do(ctx, "get_profile", http.MethodGet, path, token, nil, &out, "프로필 조회 실패"); err != nil {
		return nil, err
	}
	return &out, nil
}

// PaymentInfo fetches the static transfer instructions.
func (c *Client) PaymentInfo(ctx context.Context) (*PaymentInfoResponse, error) {
	var out PaymentInfoResponse
	if err := c.do(ctx, "payment_info", http.MethodGet, "/payment/info", "", nil, &out, "결제 정보 조회 실패"); err != nil {
		return nil, err
	}
	return &out, nil
}

// PendingEnrollments lists enrollments awaiting approval. Requires auth.
func (c *Client) PendingEnrollments(ctx context.Context, token string) (*PendingEnrollmentsResponse, error) {
	var out PendingEnrollmentsResponse
	if err := c.do(ctx, "pending_enrollments", http.MethodGet, "/admin/enrollments/pending", token, nil, &out, "승인 대기 목록 조회 실패"); err != nil {
		return nil, err
	}
	return &out, nil
}

// ApproveEnrollment approves one pending enrollment. Requires auth.
func (c *Client) ApproveEnrollment(ctx context.Context, token string, enrollmentID int64) (*SimpleResponse, error) {
	return c.decide(ctx, "approve_enrollment", "/admin/enrollments/approve", token, enrollmentID, "승인 실패")
}

// RejectEnrollment rejects one pending enrollment. Requires auth.
func (c *Client) RejectEnrollment(ctx context.Context, token string, enrollmentID int64) (*SimpleResponse, error) {
	return c.decide(ctx, "reject_enrollment", "/admin/enrollments/reject", token, enrollmentID, "거절 실패")
}

func (c *Client) decide(ctx context.Context, op, path, token string, enrollmentID int64, fallback string) (*SimpleResponse, error) {
	body := map[string]int64{"enrollment_id": enrollmentID}
	var out SimpleResponse
	if err := c.do(ctx, op, http.MethodPost, path, token, body, &out, fallback); err != nil {
		return nil, err
	}
	return &out, nil
}

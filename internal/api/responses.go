package api

// Response bodies mirror the backend's JSON exactly. Business-level success
// travels in the ok/valid discriminators; the transport layer never interprets
// them, callers do.

// VerifyInvitationResponse is returned by POST /auth/invitation/verify.
type VerifyInvitationResponse struct {
	Valid     bool   `json:"valid"`
	SessionID string `json:"sessionId"`
	Message   string `json:"message"`
}

// LoginResponse is returned by POST /auth/login. UserID is the backend's
// numeric account id, not the login id the user typed.
type LoginResponse struct {
	OK          bool   `json:"ok"`
	UserID      int64  `json:"userId"`
	Name        string `json:"name"`
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	Message     string `json:"message"`
}

// RegisterStepResponse is returned by the name/birthday/phone/userid steps.
type RegisterStepResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// RegisterCompleteResponse is returned by the password step. A present
// AccessToken means the backend finalized the account and logged it in.
type RegisterCompleteResponse struct {
	OK          bool   `json:"ok"`
	UserID      int64  `json:"userId"`
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	Message     string `json:"message"`
}

// EnrollResponse is returned by POST /enroll. Status reflects the enrollment
// lifecycle (pending/approved/rejected) including pre-existing enrollments.
type EnrollResponse struct {
	OK           bool   `json:"ok"`
	Message      string `json:"message"`
	EnrollmentID int64  `json:"enrollment_id"`
	Status       string `json:"status"`
}

// CheckEnrollmentResponse is returned by GET /enrollment/check/{user}/{party}.
type CheckEnrollmentResponse struct {
	Enrolled bool `json:"enrolled"`
}

// PartyInfoResponse is returned by GET /party/{id}/info. The backend is the
// sole source of party metadata; nothing descriptive is kept client-side.
type PartyInfoResponse struct {
	OK          bool   `json:"ok"`
	SpotsLeft   int    `json:"spotsLeft"`
	TotalSpots  int    `json:"totalSpots"`
	Title       string `json:"title"`
	Host        string `json:"host"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

// CouponResponse is returned by GET /coupon/{user}/{party}. ok:false covers
// both "never enrolled" and "not yet approved" (Status says which).
type CouponResponse struct {
	OK         bool   `json:"ok"`
	CouponUsed bool   `json:"couponUsed"`
	Status     string `json:"status"`
	Message    string `json:"message"`
}

// SimpleResponse covers mutations that only report ok/message
// (use-coupon, admin approve/reject).
type SimpleResponse struct {
	OK           bool   `json:"ok"`
	Message      string `json:"message"`
	EnrollmentID int64  `json:"enrollment_id"`
}

// ProfileUser is the account block inside a profile response.
type ProfileUser struct {
	ID       int64  `json:"id"`
	UserID   string `json:"userId"`
	Name     string `json:"name"`
	Birthday string `json:"birthday"`
	Phone    string `json:"phone"`
}

// ProfileEnrollment is one party the user enrolled in.
type ProfileEnrollment struct {
	PartyID    int64  `json:"partyId"`
	EnrolledAt string `json:"enrolledAt"`
	CouponUsed bool   `json:"couponUsed"`
	Status     string `json:"status"`
}

// CouponSummary aggregates approved enrollments' coupons.
type CouponSummary struct {
	Total     int `json:"total"`
	Used      int `json:"used"`
	Available int `json:"available"`
}

// ProfileResponse is returned by GET /profile/{id}.
type ProfileResponse struct {
	OK            bool                `json:"ok"`
	Message       string              `json:"message"`
	User          *ProfileUser        `json:"user"`
	Enrollments   []ProfileEnrollment `json:"enrollments"`
	CouponSummary CouponSummary       `json:"couponSummary"`
}

// Payment holds the transfer instructions shown on the payment screen.
type Payment struct {
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	AccountHolder string `json:"accountHolder"`
	Amount        int64  `json:"amount"`
}

// PaymentInfoResponse is returned by GET /payment/info.
type PaymentInfoResponse struct {
	OK      bool    `json:"ok"`
	Payment Payment `json:"payment"`
}

// PendingUser is the applicant block inside a pending enrollment.
type PendingUser struct {
	ID       int64  `json:"id"`
	UserID   string `json:"userId"`
	Name     string `json:"name"`
	Birthday string `json:"birthday"`
	Phone    string `json:"phone"`
}

// PendingEnrollment is one row of the admin approval queue.
type PendingEnrollment struct {
	ID        int64       `json:"id"`
	PartyID   int64       `json:"partyId"`
	Status    string      `json:"status"`
	CreatedAt string      `json:"createdAt"`
	User      PendingUser `json:"user"`
}

// PendingEnrollmentsResponse is returned by GET /admin/enrollments/pending.
type PendingEnrollmentsResponse struct {
	OK          bool                `json:"ok"`
	Enrollments []PendingEnrollment `json:"enrollments"`
	Total       int                 `json:"total"`
}

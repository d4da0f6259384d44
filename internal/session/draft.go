package session

// Draft is the in-progress registration record threaded through the multi-step
// sign-up flow. Fields are filled one screen at a time, in order; the empty
// string means "not yet entered". The record is kept after registration
// completes so later screens (profile, coupon) can read the user id and name.
type Draft struct {
	SessionID      string `json:"sessionId"`
	InvitationCode string `json:"invitationCode"`
	Name           string `json:"name"`
	Birthday       string `json:"birthday"`
	Phone          string `json:"phone"`
	UserID         string `json:"userId"`
	// Password exists in the persisted shape for parity with the original
	// client state but is never written; the value only travels to the backend.
	Password string `json:"password"`
}

// IsZero reports whether no field has been filled yet.
func (d Draft) IsZero() bool {
	return d == Draft{}
}

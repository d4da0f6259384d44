package api

import (
	"errors"

	"vanta/pkg/platform/sentinel"
)

// ErrUnauthorized is what the web layer checks for to clear the token and
// force the login screen.
var ErrUnauthorized = sentinel.ErrUnauthorized

// MsgUnauthorized is the user-facing message for an expired or rejected token.
const MsgUnauthorized = "인증이 만료되었습니다. 다시 로그인해주세요."

// Error is a failed backend call. Message is always user-presentable: the
// server's message when the body carried one, the operation's fixed fallback
// otherwise.
type Error struct {
	Op      string
	Status  int
	Message string
	err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.err
}

// IsUnauthorized reports whether err stems from an upstream 401.
func IsUnauthorized(err error) bool {
	return errors.Is(err, sentinel.ErrUnauthorized)
}

// UserMessage extracts the presentable message from err, falling back to the
// given default for errors that did not come from the gateway.
func UserMessage(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

package register

import "regexp"

// Field formats enforced before anything is sent upstream. The backend
// validates again; these exist so the user gets an inline message without a
// round trip.
var (
	birthdayPattern = regexp.MustCompile(`^\d{6}$`)
	phonePattern    = regexp.MustCompile(`^010\d{8}$`)
	userIDPattern   = regexp.MustCompile(`^[a-zA-Z0-9]{4,20}$`)
)

const (
	msgBadBirthday      = "6자리 숫자를 입력해주세요 (예: 990101)."
	msgBadPhone         = "010으로 시작하는 11자리 숫자를 입력해주세요."
	msgBadUserID        = "4-20자의 영문, 숫자 조합만 가능합니다."
	msgPasswordMismatch = "비밀번호가 일치하지 않습니다"
	msgPasswordTooShort = "비밀번호는 6자 이상이어야 합니다"
)

const minPasswordLen = 6

// ValidateBirthday checks the YYMMDD shape.
func ValidateBirthday(v string) error {
	if !birthdayPattern.MatchString(v) {
		return userError(msgBadBirthday)
	}
	return nil
}

// ValidatePhone checks the 010-prefixed 11-digit shape.
func ValidatePhone(v string) error {
	if !phonePattern.MatchString(v) {
		return userError(msgBadPhone)
	}
	return nil
}

// ValidateUserID checks the 4-20 alphanumeric shape.
func ValidateUserID(v string) error {
	if !userIDPattern.MatchString(v) {
		return userError(msgBadUserID)
	}
	return nil
}

// ValidatePassword checks length and confirmation. Mismatch is reported
// before length, matching what the user sees as they fix the second field.
func ValidatePassword(password, confirm string) error {
	if password != confirm {
		return userError(msgPasswordMismatch)
	}
	if len(password) < minPasswordLen {
		return userError(msgPasswordTooShort)
	}
	return nil
}

package web

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatBirthday renders a stored YYMMDD as 99.01.01. Anything that is not
// six digits comes back untouched.
func FormatBirthday(birthday string) string {
	if len(birthday) != 6 {
		return birthday
	}
	return birthday[0:2] + "." + birthday[2:4] + "." + birthday[4:6]
}

// FormatPhone renders a stored 01012345678 as 010-1234-5678.
func FormatPhone(phone string) string {
	if len(phone) != 11 {
		return phone
	}
	return phone[0:3] + "-" + phone[3:7] + "-" + phone[7:11]
}

// FormatDate renders a backend timestamp as yyyy.mm.dd. Unparseable input
// comes back untouched rather than as a zero date.
func FormatDate(raw string) string {
	t, ok := parseBackendTime(raw)
	if !ok {
		return raw
	}
	return t.Format("2006.01.02")
}

// FormatDateTime renders a backend timestamp as yyyy.mm.dd hh:mm for the
// admin queue.
func FormatDateTime(raw string) string {
	t, ok := parseBackendTime(raw)
	if !ok {
		return raw
	}
	return t.Format("2006.01.02 15:04")
}

func parseBackendTime(raw string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatAmount renders 50000 as "50,000 Won".
func FormatAmount(amount int64) string {
	s := strconv.FormatInt(amount, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return fmt.Sprintf("%s Won", out)
}

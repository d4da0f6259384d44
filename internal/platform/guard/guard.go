// Package guard provides the exactly-once action guard applied to every
// mutating screen action (enroll, use-coupon, approve, reject). The original
// screens each grew their own ad hoc "submitting" flag and the coupon screen
// had none; a single shared guard closes that gap.
package guard

import "golang.org/x/sync/singleflight"

// Guard collapses concurrent duplicate submissions of the same action into a
// single upstream call. Callers key by (session, action, target) so fast
// repeated taps share one result instead of issuing doubled requests.
type Guard struct {
	group singleflight.Group
}

// New creates an action guard.
func New() *Guard {
	return &Guard{}
}

// Do runs fn once per key among concurrent callers. Duplicate callers block
// until the first finishes and receive its result; shared reports whether the
// result was reused.
func (g *Guard) Do(key string, fn func() (any, error)) (v any, shared bool, err error) {
	v, err, shared = g.group.Do(key, func() (any, error) {
		return fn()
	})
	return v, shared, err
}

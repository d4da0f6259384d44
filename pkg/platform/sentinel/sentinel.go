package sentinel

import "errors"

// Sentinel errors for infrastructure facts. The gateway client and the draft
// stores return these (optionally wrapped) so the web layer can translate them
// into screen-level behavior.
//
// These represent factual states about resources, not validation failures:
// - ErrNotFound: entity does not exist in store
// - ErrUnauthorized: upstream rejected the bearer token (HTTP 401)
// - ErrExpired: draft session no longer present
// - ErrUnavailable: upstream or store temporarily unreachable
//
// For validation errors (bad input, missing fields), use register.ValidationError.
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrExpired      = errors.New("expired")
	ErrUnavailable  = errors.New("unavailable")
)

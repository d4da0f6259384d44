package session

import "context"

// DraftStore persists registration drafts keyed by an opaque per-browser
// handle. Writes are immediate (write-through); there is no flush step.
// Implementations return sentinel.ErrNotFound for missing keys.
//
// Concurrent writers for the same key are last-writer-wins. The store is the
// single source of truth, so two tabs sharing a browser session converge on
// whichever tab wrote last; nothing here attempts merge resolution.
type DraftStore interface {
	Get(ctx context.Context, key string) (Draft, error)
	Put(ctx context.Context, key string, draft Draft) error
	Delete(ctx context.Context, key string) error
}

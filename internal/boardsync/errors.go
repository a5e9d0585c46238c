package boardsync

import (
	"errors"
	"fmt"
)

// ErrNotLoaded indicates the adapter has no board yet; callers should
// Load before mutating.
var ErrNotLoaded = errors.New("board not loaded")

// SyncError reports a remote confirmation failure. The local state has
// already been rolled back when the caller sees it; it is a transient
// condition to surface, not a fatal one.
type SyncError struct {
	ItemID string
	Op     string
	Err    error
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("sync %s failed for item %s: %v", e.Op, e.ItemID, e.Err)
}

func (e *SyncError) Unwrap() error {
	return e.Err
}

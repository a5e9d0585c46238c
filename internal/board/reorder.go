package board

import (
	"fmt"

	"project-tracker-api/internal/domain"
)

// MoveItem applies a drag gesture: it removes the item from its source
// column (looked up from current state, never trusted from the caller)
// and inserts it at targetIndex in the target column, clamped to
// [0, len]. A cross-column move sets the item's status and returns the
// resulting StatusChange; a same-column reorder returns nil.
//
// On any error the board is left untouched.
func (b *Board) MoveItem(id string, target domain.Status, targetIndex int) (*domain.StatusChange, error) {
	if !target.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidColumn, target)
	}
	item, ok := b.items[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	source := item.Status
	pos := indexOf(b.columns[source], id)
	if pos < 0 {
		return nil, fmt.Errorf("%w: %s missing from its column", ErrNotFound, id)
	}

	src := b.columns[source]
	b.columns[source] = append(src[:pos], src[pos+1:]...)

	// Removing the item shifts everything after its old slot up by one,
	// so a same-column drop behind the old position lands one early
	// unless compensated.
	if target == source && pos < targetIndex {
		targetIndex--
	}
	b.columns[target] = insertAt(b.columns[target], id, targetIndex)

	item.UpdatedAt = b.now()
	if target == source {
		return nil, nil
	}
	item.Status = target
	return &domain.StatusChange{ItemID: id, From: source, To: target}, nil
}

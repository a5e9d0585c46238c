package board

import (
	"fmt"
	"strings"
	"time"

	"project-tracker-api/internal/domain"
)

// Column is one ordered status bucket of the board. ItemIDs order is
// the display order within the workflow stage.
type Column struct {
	Status  domain.Status `json:"status"`
	ItemIDs []string      `json:"item_ids"`
}

// Board holds the authoritative in-memory state for one board view:
// the ordered columns plus the id→item index. All mutation goes through
// the operations below; no caller keeps a writable reference into the
// board. Board is not safe for concurrent use, the sync adapter
// serializes access.
type Board struct {
	columns  map[domain.Status][]string
	items    map[string]*domain.Item
	comments map[string][]domain.Comment
	now      func() time.Time
}

// Load partitions items into columns by status, preserving the given
// relative order as the intra-column order. The whole load fails on
// duplicate ids or an item with a status outside the closed set.
func Load(items []*domain.Item) (*Board, error) {
	b := &Board{
		columns:  make(map[domain.Status][]string, len(domain.ColumnOrder)),
		items:    make(map[string]*domain.Item, len(items)),
		comments: make(map[string][]domain.Comment),
		now:      time.Now,
	}
	for _, status := range domain.ColumnOrder {
		b.columns[status] = []string{}
	}
	for _, item := range items {
		if item.ID == "" {
			return nil, fmt.Errorf("%w: item with empty id", ErrMalformedInput)
		}
		if _, exists := b.items[item.ID]; exists {
			return nil, fmt.Errorf("%w: duplicate item id %s", ErrMalformedInput, item.ID)
		}
		if !item.Status.Valid() {
			return nil, fmt.Errorf("%w: item %s has unknown status %q", ErrMalformedInput, item.ID, item.Status)
		}
		b.items[item.ID] = item.Clone()
		b.columns[item.Status] = append(b.columns[item.Status], item.ID)
	}
	return b, nil
}

// SetNowFunc overrides the clock used for mutation timestamps
func (b *Board) SetNowFunc(now func() time.Time) {
	b.now = now
}

// Get returns a copy of the item with the given id
func (b *Board) Get(id string) (*domain.Item, error) {
	item, ok := b.items[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return item.Clone(), nil
}

// Len returns the number of items on the board
func (b *Board) Len() int {
	return len(b.items)
}

// Columns returns the board columns in their fixed display order. The
// returned slices are copies.
func (b *Board) Columns() []Column {
	cols := make([]Column, 0, len(domain.ColumnOrder))
	for _, status := range domain.ColumnOrder {
		ids := make([]string, len(b.columns[status]))
		copy(ids, b.columns[status])
		cols = append(cols, Column{Status: status, ItemIDs: ids})
	}
	return cols
}

// Flatten returns copies of all items in column-then-index order
func (b *Board) Flatten() []*domain.Item {
	items := make([]*domain.Item, 0, len(b.items))
	for _, status := range domain.ColumnOrder {
		for _, id := range b.columns[status] {
			items = append(items, b.items[id].Clone())
		}
	}
	return items
}

// AttachComments seeds an item's comment thread, typically at load time
func (b *Board) AttachComments(itemID string, comments []domain.Comment) error {
	if _, ok := b.items[itemID]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, itemID)
	}
	thread := make([]domain.Comment, len(comments))
	copy(thread, comments)
	b.comments[itemID] = thread
	return nil
}

// Comments returns a copy of the item's comment thread
func (b *Board) Comments(itemID string) ([]domain.Comment, error) {
	if _, ok := b.items[itemID]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, itemID)
	}
	thread := make([]domain.Comment, len(b.comments[itemID]))
	copy(thread, b.comments[itemID])
	return thread, nil
}

// AddComment appends to the item's thread with the next sequence
// number. Content that is empty after trimming is rejected before any
// state change.
func (b *Board) AddComment(itemID string, author domain.Assignee, content string) (domain.Comment, error) {
	item, ok := b.items[itemID]
	if !ok {
		return domain.Comment{}, fmt.Errorf("%w: %s", ErrNotFound, itemID)
	}
	if strings.TrimSpace(content) == "" {
		return domain.Comment{}, fmt.Errorf("%w: comment content is empty", ErrValidation)
	}
	thread := b.comments[itemID]
	seq := 1
	if n := len(thread); n > 0 {
		seq = thread[n-1].Seq + 1
	}
	comment := domain.Comment{
		ItemID:    itemID,
		Seq:       seq,
		Author:    author,
		Content:   content,
		CreatedAt: b.now(),
	}
	b.comments[itemID] = append(thread, comment)
	item.UpdatedAt = b.now()
	return comment, nil
}

// RemoveComment drops the comment with the given sequence number. The
// sync adapter uses it to roll back an optimistic append; there is no
// user-facing delete.
func (b *Board) RemoveComment(itemID string, seq int) error {
	thread, ok := b.comments[itemID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, itemID)
	}
	for i, c := range thread {
		if c.Seq == seq {
			b.comments[itemID] = append(thread[:i], thread[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: comment %d on item %s", ErrNotFound, seq, itemID)
}

// Snapshot captures an item's placement immediately before an
// optimistic move. It is the only state the sync adapter keeps aside
// from the board itself, and it is discarded once the round trip
// resolves.
type Snapshot struct {
	ItemID  string
	Status  domain.Status
	Index   int
	Updated time.Time
}

// SnapshotItem records the current placement of id for rollback
func (b *Board) SnapshotItem(id string) (Snapshot, error) {
	item, ok := b.items[id]
	if !ok {
		return Snapshot{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	idx := indexOf(b.columns[item.Status], id)
	if idx < 0 {
		return Snapshot{}, fmt.Errorf("%w: %s missing from its column", ErrNotFound, id)
	}
	return Snapshot{ItemID: id, Status: item.Status, Index: idx, Updated: item.UpdatedAt}, nil
}

// Restore reverts the item described by the snapshot to its recorded
// placement, status and timestamp. Items moved since the snapshot was
// taken are left alone; only the snapshotted item is touched.
func (b *Board) Restore(s Snapshot) error {
	item, ok := b.items[s.ItemID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, s.ItemID)
	}
	src := b.columns[item.Status]
	pos := indexOf(src, s.ItemID)
	if pos < 0 {
		return fmt.Errorf("%w: %s missing from its column", ErrNotFound, s.ItemID)
	}
	b.columns[item.Status] = append(src[:pos], src[pos+1:]...)
	b.columns[s.Status] = insertAt(b.columns[s.Status], s.ItemID, s.Index)
	item.Status = s.Status
	item.UpdatedAt = s.Updated
	return nil
}

// Validate checks the core consistency invariant: every item id appears
// in exactly one column, and the item's status equals that column.
func (b *Board) Validate() error {
	seen := make(map[string]domain.Status, len(b.items))
	for _, status := range domain.ColumnOrder {
		for _, id := range b.columns[status] {
			if prev, dup := seen[id]; dup {
				return fmt.Errorf("item %s appears in both %s and %s", id, prev, status)
			}
			seen[id] = status
			item, ok := b.items[id]
			if !ok {
				return fmt.Errorf("column %s references unknown item %s", status, id)
			}
			if item.Status != status {
				return fmt.Errorf("item %s sits in %s but has status %s", id, status, item.Status)
			}
		}
	}
	if len(seen) != len(b.items) {
		return fmt.Errorf("%d items indexed but %d placed in columns", len(b.items), len(seen))
	}
	return nil
}

func indexOf(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}

func insertAt(ids []string, id string, index int) []string {
	if index < 0 {
		index = 0
	}
	if index > len(ids) {
		index = len(ids)
	}
	ids = append(ids, "")
	copy(ids[index+1:], ids[index:])
	ids[index] = id
	return ids
}

package boardsync

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"project-tracker-api/internal/board"
	"project-tracker-api/internal/domain"
)

// ItemPatch is the minimal update the remote store needs after a move
type ItemPatch struct {
	Status     domain.Status `json:"status"`
	OrderIndex int           `json:"orderIndex"`
}

// ItemSource is the remote collaborator the board is reconciled with
type ItemSource interface {
	FetchItems(ctx context.Context) ([]*domain.Item, error)
	UpdateItem(ctx context.Context, id string, patch ItemPatch) (*domain.Item, error)
}

// CommentSink persists comment appends
type CommentSink interface {
	PostComment(ctx context.Context, itemID string, comment domain.Comment) error
}

// Notifier receives confirmed status changes, e.g. for a live feed
type Notifier interface {
	PublishStatusChange(change domain.StatusChange)
}

// Adapter keeps an in-memory board consistent with a remote store
// under optimistic concurrency: mutations apply locally first, then a
// remote update confirms them or the local state rolls back to the
// pre-mutation snapshot.
//
// Moves of the same item are serialized in issue order through a keyed
// lock, so a stale rollback can never clobber a newer optimistic state.
// Moves of different items run concurrently.
type Adapter struct {
	source   ItemSource
	sink     CommentSink
	notifier Notifier
	logger   *zap.Logger

	mu    sync.Mutex // guards brd
	brd   *board.Board

	locksMu sync.Mutex
	locks   map[string]*itemLock
}

type itemLock struct {
	mu   sync.Mutex
	refs int
}

// NewAdapter creates a sync adapter. notifier may be nil.
func NewAdapter(source ItemSource, sink CommentSink, notifier Notifier, logger *zap.Logger) *Adapter {
	return &Adapter{
		source:   source,
		sink:     sink,
		notifier: notifier,
		logger:   logger,
		locks:    make(map[string]*itemLock),
	}
}

// Load fetches the item set from the remote source and (re)builds the
// board from it. Called at startup and whenever local state is found to
// be desynchronized.
func (a *Adapter) Load(ctx context.Context) error {
	items, err := a.source.FetchItems(ctx)
	if err != nil {
		return err
	}
	b, err := board.Load(items)
	if err != nil {
		return err
	}
	a.mu.Lock()
	a.brd = b
	a.mu.Unlock()
	a.logger.Info("Board loaded from remote source", zap.Int("items", len(items)))
	return nil
}

// Loaded reports whether a board has been built yet
func (a *Adapter) Loaded() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.brd != nil
}

// lockItem serializes operations on one item. The returned release
// func must be called once the round trip has resolved.
func (a *Adapter) lockItem(id string) func() {
	a.locksMu.Lock()
	l, ok := a.locks[id]
	if !ok {
		l = &itemLock{}
		a.locks[id] = l
	}
	l.refs++
	a.locksMu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		a.locksMu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(a.locks, id)
		}
		a.locksMu.Unlock()
	}
}

// MoveItem applies a drag gesture optimistically and confirms it
// against the remote store. On remote failure the board reverts to the
// snapshot taken before the local apply and a SyncError is returned.
func (a *Adapter) MoveItem(ctx context.Context, id string, target domain.Status, index int) (*domain.StatusChange, error) {
	release := a.lockItem(id)
	defer release()

	a.mu.Lock()
	if a.brd == nil {
		a.mu.Unlock()
		return nil, ErrNotLoaded
	}
	snap, err := a.brd.SnapshotItem(id)
	if err != nil {
		a.mu.Unlock()
		return nil, err
	}
	change, err := a.brd.MoveItem(id, target, index)
	if err != nil {
		a.mu.Unlock()
		return nil, err
	}
	after, err := a.brd.SnapshotItem(id)
	a.mu.Unlock()
	if err != nil {
		// cannot happen right after a successful move
		return nil, err
	}

	patch := ItemPatch{Status: after.Status, OrderIndex: after.Index}
	if _, err := a.source.UpdateItem(ctx, id, patch); err != nil {
		a.mu.Lock()
		if rerr := a.brd.Restore(snap); rerr != nil {
			a.logger.Error("Failed to roll back optimistic move",
				zap.String("item_id", id),
				zap.Error(rerr),
			)
		}
		a.mu.Unlock()
		a.logger.Warn("Remote rejected move, rolled back",
			zap.String("item_id", id),
			zap.String("target", string(target)),
			zap.Error(err),
		)
		return nil, &SyncError{ItemID: id, Op: "move", Err: err}
	}

	if change != nil && a.notifier != nil {
		a.notifier.PublishStatusChange(*change)
	}
	return change, nil
}

// AddComment appends optimistically and confirms against the comment
// sink, removing the local append again if the sink rejects it.
func (a *Adapter) AddComment(ctx context.Context, itemID string, author domain.Assignee, content string) (domain.Comment, error) {
	release := a.lockItem(itemID)
	defer release()

	a.mu.Lock()
	if a.brd == nil {
		a.mu.Unlock()
		return domain.Comment{}, ErrNotLoaded
	}
	comment, err := a.brd.AddComment(itemID, author, content)
	a.mu.Unlock()
	if err != nil {
		return domain.Comment{}, err
	}

	if a.sink != nil {
		if err := a.sink.PostComment(ctx, itemID, comment); err != nil {
			a.mu.Lock()
			if rerr := a.brd.RemoveComment(itemID, comment.Seq); rerr != nil {
				a.logger.Error("Failed to roll back optimistic comment",
					zap.String("item_id", itemID),
					zap.Int("seq", comment.Seq),
					zap.Error(rerr),
				)
			}
			a.mu.Unlock()
			return domain.Comment{}, &SyncError{ItemID: itemID, Op: "comment", Err: err}
		}
	}
	return comment, nil
}

// Columns returns the current column layout
func (a *Adapter) Columns() []board.Column {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.brd == nil {
		return nil
	}
	return a.brd.Columns()
}

// Item returns a copy of one item
func (a *Adapter) Item(id string) (*domain.Item, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.brd == nil {
		return nil, ErrNotLoaded
	}
	return a.brd.Get(id)
}

// Items returns copies of all items in column-then-index order
func (a *Adapter) Items() []*domain.Item {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.brd == nil {
		return nil
	}
	return a.brd.Flatten()
}

// Comments returns a copy of an item's thread
func (a *Adapter) Comments(itemID string) ([]domain.Comment, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.brd == nil {
		return nil, ErrNotLoaded
	}
	return a.brd.Comments(itemID)
}

// SeedComments attaches persisted comments to an item's thread
func (a *Adapter) SeedComments(itemID string, comments []domain.Comment) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.brd == nil {
		return ErrNotLoaded
	}
	return a.brd.AttachComments(itemID, comments)
}

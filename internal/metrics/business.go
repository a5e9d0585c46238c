package metrics

// IncrementItemCreated increments item creation counter
func (m *Metrics) IncrementItemCreated() {
	m.safeExecute("IncrementItemCreated", func() {
		m.ItemCreatedTotal.Inc()
	})
}

// IncrementCommentAdded increments comment append counter
func (m *Metrics) IncrementCommentAdded() {
	m.safeExecute("IncrementCommentAdded", func() {
		m.CommentAddedTotal.Inc()
	})
}

// IncrementItemsArchived increments the archive counter by the given amount
func (m *Metrics) IncrementItemsArchived(count int) {
	m.safeExecute("IncrementItemsArchived", func() {
		m.ItemsArchivedTotal.Add(float64(count))
	})
}

// RecordBoardMove records a board move gesture outcome (confirmed or rolled_back)
func (m *Metrics) RecordBoardMove(result string) {
	m.safeExecute("RecordBoardMove", func() {
		m.BoardMovesTotal.WithLabelValues(result).Inc()
	})
}

// RecordStatusChange records a confirmed cross-column transition
func (m *Metrics) RecordStatusChange(from, to string) {
	m.safeExecute("RecordStatusChange", func() {
		m.StatusChangesTotal.WithLabelValues(from, to).Inc()
	})
}

// IncrementSyncRollback increments the optimistic rollback counter
func (m *Metrics) IncrementSyncRollback() {
	m.safeExecute("IncrementSyncRollback", func() {
		m.SyncRollbacksTotal.Inc()
	})
}

// SetItemsTotal sets total items gauge
func (m *Metrics) SetItemsTotal(count int64) {
	m.safeExecute("SetItemsTotal", func() {
		m.ItemsTotal.Set(float64(count))
	})
}

// SetSprintsTotal sets total sprints gauge
func (m *Metrics) SetSprintsTotal(count int64) {
	m.safeExecute("SetSprintsTotal", func() {
		m.SprintsTotal.Set(float64(count))
	})
}

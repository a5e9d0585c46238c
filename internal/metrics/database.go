package metrics

import (
	"database/sql"
	"strings"
	"time"
)

// The service owns a fixed set of tables. Anything else observed by the
// gorm callbacks (migrations, advisory queries) lands in one bucket so
// the table label cannot grow unbounded.
var trackedTables = map[string]struct{}{
	"items":          {},
	"sprints":        {},
	"comments":       {},
	"archived_items": {},
}

// UpdateDBStats updates database connection pool metrics
func (m *Metrics) UpdateDBStats(statsInterface interface{}) {
	m.safeExecute("UpdateDBStats", func() {
		stats, ok := statsInterface.(sql.DBStats)
		if !ok {
			return
		}
		m.DBConnectionsOpen.Set(float64(stats.OpenConnections))
		m.DBConnectionsInUse.Set(float64(stats.InUse))
		m.DBConnectionsIdle.Set(float64(stats.Idle))
		m.DBConnectionsMax.Set(float64(stats.MaxOpenConnections))
		m.DBConnectionWaitTotal.Add(float64(stats.WaitCount))
		m.DBConnectionWaitDuration.Add(stats.WaitDuration.Seconds())
	})
}

// RecordDBQuery records duration and errors for one database query
func (m *Metrics) RecordDBQuery(operation, table string, duration time.Duration, err error) {
	m.safeExecute("RecordDBQuery", func() {
		operation = strings.ToLower(operation)
		table = normalizeTable(table)
		m.DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())

		if err != nil {
			m.DBQueryErrors.WithLabelValues(operation, table).Inc()
		}
	})
}

func normalizeTable(table string) string {
	if _, ok := trackedTables[table]; ok {
		return table
	}
	return "other"
}

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestIncrementItemCreated(t *testing.T) {
	m := getTestMetrics()

	// Get initial value
	initialValue := getCounterValue(t, m.ItemCreatedTotal)

	// Increment
	m.IncrementItemCreated()

	// Verify increment
	newValue := getCounterValue(t, m.ItemCreatedTotal)
	if newValue <= initialValue {
		t.Errorf("Expected counter to increment, got %f -> %f", initialValue, newValue)
	}
}

func TestIncrementCommentAdded(t *testing.T) {
	m := getTestMetrics()

	// Get initial value
	initialValue := getCounterValue(t, m.CommentAddedTotal)

	// Increment
	m.IncrementCommentAdded()

	// Verify increment
	newValue := getCounterValue(t, m.CommentAddedTotal)
	if newValue <= initialValue {
		t.Errorf("Expected counter to increment, got %f -> %f", initialValue, newValue)
	}
}

func TestIncrementItemsArchived(t *testing.T) {
	m := getTestMetrics()

	initialValue := getCounterValue(t, m.ItemsArchivedTotal)

	m.IncrementItemsArchived(3)

	newValue := getCounterValue(t, m.ItemsArchivedTotal)
	if newValue != initialValue+3 {
		t.Errorf("Expected counter to grow by 3, got %f -> %f", initialValue, newValue)
	}
}

func TestRecordBoardMove(t *testing.T) {
	m := getTestMetrics()

	m.RecordBoardMove("confirmed")
	m.RecordBoardMove("confirmed")
	m.RecordBoardMove("rolled_back")

	confirmed, err := m.BoardMovesTotal.GetMetricWithLabelValues("confirmed")
	if err != nil {
		t.Fatalf("Failed to get confirmed counter: %v", err)
	}
	if got := getCounterValue(t, confirmed); got != 2 {
		t.Errorf("Expected 2 confirmed moves, got %f", got)
	}

	rolledBack, err := m.BoardMovesTotal.GetMetricWithLabelValues("rolled_back")
	if err != nil {
		t.Fatalf("Failed to get rolled_back counter: %v", err)
	}
	if got := getCounterValue(t, rolledBack); got != 1 {
		t.Errorf("Expected 1 rolled back move, got %f", got)
	}
}

func TestRecordStatusChange(t *testing.T) {
	m := getTestMetrics()

	m.RecordStatusChange("todo", "inProgress")
	m.RecordStatusChange("todo", "inProgress")
	m.RecordStatusChange("review", "done")

	counter, err := m.StatusChangesTotal.GetMetricWithLabelValues("todo", "inProgress")
	if err != nil {
		t.Fatalf("Failed to get status change counter: %v", err)
	}
	if got := getCounterValue(t, counter); got != 2 {
		t.Errorf("Expected 2 todo->inProgress changes, got %f", got)
	}
}

func TestSetItemsTotal(t *testing.T) {
	m := getTestMetrics()

	tests := []struct {
		name  string
		count int64
	}{
		{"zero items", 0},
		{"one item", 1},
		{"multiple items", 42},
		{"large number", 1000000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m.SetItemsTotal(tt.count)
			value := getGaugeValue(t, m.ItemsTotal)
			if value != float64(tt.count) {
				t.Errorf("Expected gauge value %d, got %f", tt.count, value)
			}
		})
	}
}

func TestSetSprintsTotal(t *testing.T) {
	m := getTestMetrics()

	tests := []struct {
		name  string
		count int64
	}{
		{"zero sprints", 0},
		{"one sprint", 1},
		{"multiple sprints", 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m.SetSprintsTotal(tt.count)
			value := getGaugeValue(t, m.SprintsTotal)
			if value != float64(tt.count) {
				t.Errorf("Expected gauge value %d, got %f", tt.count, value)
			}
		})
	}
}

func TestBusinessMetricsIntegration(t *testing.T) {
	m := getTestMetrics()

	// Set initial totals
	m.SetItemsTotal(10)
	m.SetSprintsTotal(2)

	// Verify initial values
	if getGaugeValue(t, m.ItemsTotal) != 10 {
		t.Error("Expected ItemsTotal to be 10")
	}
	if getGaugeValue(t, m.SprintsTotal) != 2 {
		t.Error("Expected SprintsTotal to be 2")
	}

	// Increment creation counters
	initialItemCreated := getCounterValue(t, m.ItemCreatedTotal)
	initialCommentAdded := getCounterValue(t, m.CommentAddedTotal)

	m.IncrementItemCreated()
	m.IncrementCommentAdded()
	m.IncrementCommentAdded()

	// Verify counters
	if getCounterValue(t, m.ItemCreatedTotal) <= initialItemCreated {
		t.Error("Expected ItemCreatedTotal to increment")
	}
	if getCounterValue(t, m.CommentAddedTotal) <= initialCommentAdded {
		t.Error("Expected CommentAddedTotal to increment")
	}

	// Update totals
	m.SetItemsTotal(11)
	m.SetSprintsTotal(3)

	// Verify updated values
	if getGaugeValue(t, m.ItemsTotal) != 11 {
		t.Error("Expected ItemsTotal to be 11")
	}
	if getGaugeValue(t, m.SprintsTotal) != 3 {
		t.Error("Expected SprintsTotal to be 3")
	}
}

// Helper function to get counter value
func getCounterValue(t *testing.T, counter prometheus.Counter) float64 {
	t.Helper()
	metric := &dto.Metric{}
	if err := counter.Write(metric); err != nil {
		t.Fatalf("Failed to write counter metric: %v", err)
	}
	return metric.Counter.GetValue()
}

// Helper function to get gauge value
func getGaugeValue(t *testing.T, gauge prometheus.Gauge) float64 {
	t.Helper()
	metric := &dto.Metric{}
	if err := gauge.Write(metric); err != nil {
		t.Fatalf("Failed to write gauge metric: %v", err)
	}
	return metric.Gauge.GetValue()
}

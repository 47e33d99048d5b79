package layout

import (
	"log/slog"

	"github.com/eleven-am/stepgraph/internal/domain"
	"github.com/eleven-am/stepgraph/internal/ports"
)

// StatusLookup resolves a step name to its last reported status.
type StatusLookup map[string]domain.StepStatus

// Status returns the resolved status, pending when nothing was reported.
func (s StatusLookup) Status(stepName string) domain.StepStatus {
	if status, ok := s[stepName]; ok {
		return status
	}
	return domain.StepStatusPending
}

// ProjectStatuses folds execution records into a lookup. Later records for
// the same step win, so callers wanting "latest by time" must pre-sort.
func ProjectStatuses(records []domain.StepExecutionRecord, logger *slog.Logger) StatusLookup {
	lookup := make(StatusLookup, len(records))
	for _, record := range records {
		if record.StepName == "" || !record.Status.Valid() {
			if logger != nil {
				logger.Debug("ignoring execution record",
					ports.FieldStep, record.StepName,
					ports.FieldStatus, string(record.Status))
			}
			continue
		}
		lookup[record.StepName] = record.Status
	}
	return lookup
}

// CountStatuses tallies the resolved status of each node.
func CountStatuses(nodes []*domain.GraphNode) map[domain.StepStatus]int {
	if len(nodes) == 0 {
		return nil
	}
	counts := make(map[domain.StepStatus]int)
	for _, n := range nodes {
		counts[n.Status]++
	}
	return counts
}

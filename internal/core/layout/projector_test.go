package layout

import (
	"testing"

	"github.com/eleven-am/stepgraph/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestProjectStatuses_DefaultsToPending(t *testing.T) {
	lookup := ProjectStatuses(nil, nil)

	assert.Equal(t, domain.StepStatusPending, lookup.Status("x"))
}

func TestProjectStatuses_LastRecordWins(t *testing.T) {
	records := []domain.StepExecutionRecord{
		{StepName: "x", Status: domain.StepStatusFailed, RetryCount: 0},
		{StepName: "y", Status: domain.StepStatusCompleted},
		{StepName: "x", Status: domain.StepStatusRunning, RetryCount: 1},
	}

	lookup := ProjectStatuses(records, nil)

	assert.Equal(t, domain.StepStatusRunning, lookup.Status("x"))
	assert.Equal(t, domain.StepStatusCompleted, lookup.Status("y"))
}

func TestProjectStatuses_SkipsMalformedRecords(t *testing.T) {
	records := []domain.StepExecutionRecord{
		{StepName: "x", Status: domain.StepStatusCompleted},
		{StepName: "x", Status: "cancelled"},
		{StepName: "", Status: domain.StepStatusFailed},
	}

	lookup := ProjectStatuses(records, nil)

	assert.Equal(t, domain.StepStatusCompleted, lookup.Status("x"))
	assert.Len(t, lookup, 1)
}

func TestProjectStatuses_UnknownStepsIgnoredByTraversal(t *testing.T) {
	def := graph("a", step("a", domain.StepTypeTask))
	records := []domain.StepExecutionRecord{
		{StepName: "ghost", Status: domain.StepStatusFailed},
		{StepName: "a", Status: domain.StepStatusCompleted},
	}

	out := Traverse(def, ProjectStatuses(records, nil))

	assert.Equal(t, []string{"a"}, nodeIDs(out.Nodes))
	assert.Equal(t, domain.StepStatusCompleted, out.Nodes[0].Status)
}

func TestCountStatuses(t *testing.T) {
	nodes := []*domain.GraphNode{
		{ID: "a", Status: domain.StepStatusCompleted},
		{ID: "b", Status: domain.StepStatusCompleted},
		{ID: "c", Status: domain.StepStatusPending},
	}

	counts := CountStatuses(nodes)

	assert.Equal(t, 2, counts[domain.StepStatusCompleted])
	assert.Equal(t, 1, counts[domain.StepStatusPending])
	assert.Nil(t, CountStatuses(nil))
}

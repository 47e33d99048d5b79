package layout

import (
	"testing"

	"github.com/eleven-am/stepgraph/internal/domain"
	"github.com/stretchr/testify/require"
)

func step(name string, typ domain.StepType, next ...string) *domain.StepDefinition {
	return &domain.StepDefinition{Name: name, Type: typ, Next: next}
}

func graph(start string, steps ...*domain.StepDefinition) *domain.GraphDefinition {
	def := &domain.GraphDefinition{Start: start, Steps: make(map[string]*domain.StepDefinition, len(steps))}
	for _, s := range steps {
		def.Steps[s.Name] = s
	}
	return def
}

func levelsOf(nodes []*domain.GraphNode) map[string]int {
	levels := make(map[string]int, len(nodes))
	for _, n := range nodes {
		levels[n.ID] = n.Level
	}
	return levels
}

func nodeIDs(nodes []*domain.GraphNode) []string {
	ids := make([]string, 0, len(nodes))
	for _, n := range nodes {
		ids = append(ids, n.ID)
	}
	return ids
}

func requireEdge(t *testing.T, edges []domain.GraphEdge, from, to string, kind domain.EdgeKind) {
	t.Helper()
	for _, e := range edges {
		if e.From == from && e.To == to && e.Kind == kind {
			return
		}
	}
	require.Failf(t, "edge not found", "%s -> %s (%s) missing from %v", from, to, kind, edges)
}

func hasEdge(edges []domain.GraphEdge, from, to string) bool {
	for _, e := range edges {
		if e.From == from && e.To == to {
			return true
		}
	}
	return false
}

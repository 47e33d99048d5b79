package layout

import (
	"github.com/eleven-am/stepgraph/internal/domain"
)

// FilterEdges drops fork→join shortcuts, which would visually bypass the
// fan-out branches. Order is preserved.
func FilterEdges(def *domain.GraphDefinition, edges []domain.GraphEdge) []domain.GraphEdge {
	filtered := make([]domain.GraphEdge, 0, len(edges))
	for _, e := range edges {
		if e.Kind == domain.EdgeKindForkJoin || isForkJoin(def.Step(e.From), def.Step(e.To)) {
			continue
		}
		filtered = append(filtered, e)
	}
	return filtered
}

func isForkJoin(from, to *domain.StepDefinition) bool {
	return from != nil && to != nil &&
		from.Type == domain.StepTypeFork &&
		to.Type == domain.StepTypeJoin
}

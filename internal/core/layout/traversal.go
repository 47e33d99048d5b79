package layout

import (
	"github.com/eleven-am/stepgraph/internal/domain"
)

// Traversal is the raw output of Traverse: nodes in discovery order, level
// buckets, and the unfiltered edge list.
type Traversal struct {
	Nodes  []*domain.GraphNode
	Levels [][]string
	Edges  []domain.GraphEdge
}

type edgeKey struct {
	from, to string
	kind     domain.EdgeKind
}

type traverser struct {
	def          *domain.GraphDefinition
	statuses     StatusLookup
	predecessors map[string][]string
	visited      map[string]*domain.GraphNode
	seenEdges    map[edgeKey]struct{}
	out          *Traversal
}

// Traverse walks def depth-first from its start step. Unknown and already
// visited steps are skipped silently, so malformed definitions shrink the
// result instead of failing.
func Traverse(def *domain.GraphDefinition, statuses StatusLookup) *Traversal {
	out := &Traversal{}
	if !def.HasStart() {
		return out
	}

	t := &traverser{
		def:          def,
		statuses:     statuses,
		predecessors: buildPredecessors(def),
		visited:      make(map[string]*domain.GraphNode, len(def.Steps)),
		seenEdges:    make(map[edgeKey]struct{}),
		out:          out,
	}
	t.visit(def.Start, 0)
	t.dropOrphanEdges()
	return out
}

// buildPredecessors indexes, for every step named in some next list, the
// steps that name it, in sorted step-name order.
func buildPredecessors(def *domain.GraphDefinition) map[string][]string {
	index := make(map[string][]string)
	for _, name := range def.StepNames() {
		seen := make(map[string]struct{})
		for _, succ := range def.Steps[name].Next {
			if _, dup := seen[succ]; dup {
				continue
			}
			seen[succ] = struct{}{}
			index[succ] = append(index[succ], name)
		}
	}
	return index
}

func (t *traverser) visit(name string, level int) {
	if _, done := t.visited[name]; done {
		return
	}
	step := t.def.Step(name)
	if step == nil {
		return
	}

	node := &domain.GraphNode{
		ID:              name,
		Step:            step,
		Type:            step.Type,
		Status:          t.statuses.Status(name),
		HasCompensation: step.HasCompensation(),
		Level:           level,
	}
	t.visited[name] = node
	t.out.Nodes = append(t.out.Nodes, node)
	for len(t.out.Levels) <= level {
		t.out.Levels = append(t.out.Levels, nil)
	}
	t.out.Levels[level] = append(t.out.Levels[level], name)

	if step.Type == domain.StepTypeJoin {
		for _, pred := range t.predecessors[name] {
			if pred != name {
				t.edge(pred, name, domain.EdgeKindNormal)
			}
		}
	}

	if step.Parallel != nil {
		for _, head := range step.Parallel {
			if t.edge(name, head, domain.EdgeKindParallel) {
				t.visit(head, level+1)
			}
		}
		for _, next := range step.Next {
			for _, head := range step.Parallel {
				t.edge(head, next, domain.EdgeKindNormal)
			}
			if t.known(next) {
				// one level is reserved for the fan-out branches
				t.visit(next, level+2)
			}
		}
	} else {
		for _, next := range step.Next {
			if t.edge(name, next, domain.EdgeKindNormal) {
				t.visit(next, level+1)
			}
		}
	}

	if step.Else != "" {
		if t.edge(name, step.Else, domain.EdgeKindElse) {
			t.visit(step.Else, level+1)
		}
	}

	if step.Type == domain.StepTypeFork {
		// branches converge on their join, which is reached through them
		for _, next := range step.Next {
			t.edge(name, next, domain.EdgeKindNormal)
		}
	}
}

func (t *traverser) known(name string) bool {
	return t.def.Step(name) != nil
}

// edge records from→to once per kind. It reports whether both endpoints
// exist; edges to unknown steps are never recorded. A fork→join shortcut is
// tagged EdgeKindForkJoin so Filter can drop it.
func (t *traverser) edge(from, to string, kind domain.EdgeKind) bool {
	fromStep, toStep := t.def.Step(from), t.def.Step(to)
	if fromStep == nil || toStep == nil {
		return false
	}
	if isForkJoin(fromStep, toStep) {
		kind = domain.EdgeKindForkJoin
	}
	key := edgeKey{from: from, to: to, kind: kind}
	if _, dup := t.seenEdges[key]; dup {
		return true
	}
	t.seenEdges[key] = struct{}{}
	t.out.Edges = append(t.out.Edges, domain.GraphEdge{From: from, To: to, Kind: kind})
	return true
}

// dropOrphanEdges removes synthesized edges whose endpoints were never
// reached from start, such as a join predecessor on a dead branch.
func (t *traverser) dropOrphanEdges() {
	kept := t.out.Edges[:0]
	for _, e := range t.out.Edges {
		_, fromOK := t.visited[e.From]
		_, toOK := t.visited[e.To]
		if fromOK && toOK {
			kept = append(kept, e)
		}
	}
	t.out.Edges = kept
}

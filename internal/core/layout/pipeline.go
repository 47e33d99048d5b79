package layout

import (
	"io"
	"log/slog"

	"github.com/eleven-am/stepgraph/internal/domain"
)

// Engine runs the layout pipeline: status projection, traversal,
// positioning and edge filtering. It holds configuration only; the canvas
// carried between runs belongs to the caller.
type Engine struct {
	layout domain.LayoutConfig
	style  domain.StyleConfig
	logger *slog.Logger
}

func NewEngine(layoutCfg domain.LayoutConfig, styleCfg domain.StyleConfig, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Engine{
		layout: layoutCfg,
		style:  styleCfg,
		logger: logger.With("component", "layout-engine"),
	}
}

// InitialCanvas is the canvas to pass to the first Compute of a session.
func (e *Engine) InitialCanvas() domain.Canvas {
	return e.layout.InitialCanvas
}

// Compute is a pure function of its arguments. A zero prev canvas is
// replaced by the configured initial canvas.
func (e *Engine) Compute(def *domain.GraphDefinition, records []domain.StepExecutionRecord, prev domain.Canvas) *domain.Layout {
	if prev.IsZero() {
		prev = e.layout.InitialCanvas
	}

	statuses := ProjectStatuses(records, e.logger)

	if !def.HasStart() {
		e.logger.Debug("start step missing, producing empty layout", "start", startOf(def))
	}
	traversal := Traverse(def, statuses)
	canvas := Position(traversal.Levels, traversal.Nodes, prev, e.layout)
	edges := FilterEdges(def, traversal.Edges)

	result := &domain.Layout{
		Nodes:  traversal.Nodes,
		Edges:  edges,
		Width:  canvas.Width,
		Height: canvas.Height,
		Title:  e.style.Title,
		Theme:  e.style.Theme,
		Stats:  CountStatuses(traversal.Nodes),
	}
	if result.Nodes == nil {
		result.Nodes = []*domain.GraphNode{}
	}
	if e.style.ShowLegend {
		result.Legend = buildLegend(edges)
	}

	e.logger.Debug("layout computed",
		"nodes", len(result.Nodes),
		"edges", len(result.Edges),
		"levels", len(traversal.Levels),
		"width", result.Width,
		"height", result.Height)
	return result
}

func buildLegend(edges []domain.GraphEdge) *domain.Legend {
	legend := &domain.Legend{
		Statuses:  append([]domain.StepStatus(nil), domain.StatusDomain...),
		EdgeKinds: []domain.EdgeKind{},
	}
	seen := make(map[domain.EdgeKind]bool)
	for _, kind := range []domain.EdgeKind{domain.EdgeKindNormal, domain.EdgeKindElse, domain.EdgeKindParallel} {
		for _, e := range edges {
			if e.Kind == kind && !seen[kind] {
				seen[kind] = true
				legend.EdgeKinds = append(legend.EdgeKinds, kind)
			}
		}
	}
	return legend
}

func startOf(def *domain.GraphDefinition) string {
	if def == nil {
		return ""
	}
	return def.Start
}

package layout

import (
	"testing"

	"github.com/eleven-am/stepgraph/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(style domain.StyleConfig) *Engine {
	return NewEngine(domain.DefaultLayoutConfig(), style, nil)
}

func TestEngine_ComputeForkJoin(t *testing.T) {
	def := graph("f",
		step("f", domain.StepTypeFork, "a", "b"),
		step("a", domain.StepTypeTask, "j"),
		step("b", domain.StepTypeTask, "j"),
		step("j", domain.StepTypeJoin),
	)
	def.Steps["f"].Next = append(def.Steps["f"].Next, "j")
	records := []domain.StepExecutionRecord{
		{StepName: "f", Status: domain.StepStatusCompleted},
		{StepName: "a", Status: domain.StepStatusRunning},
	}

	result := newTestEngine(domain.DefaultStyleConfig()).Compute(def, records, domain.Canvas{})

	assert.True(t, hasEdge(result.Edges, "a", "j"))
	assert.True(t, hasEdge(result.Edges, "b", "j"))
	assert.False(t, hasEdge(result.Edges, "f", "j"))
	assert.Equal(t, domain.StepStatusRunning, result.Node("a").Status)
	assert.Equal(t, domain.StepStatusPending, result.Node("b").Status)
	assert.Equal(t, 1, result.Stats[domain.StepStatusCompleted])
	assert.Equal(t, 2, result.Stats[domain.StepStatusPending])
	assert.Equal(t, 1000.0, result.Width)
	assert.Equal(t, 700.0, result.Height)
}

func TestEngine_ComputeConcreteCase(t *testing.T) {
	cond := step("b", domain.StepTypeCondition, "c")
	cond.Else = "d"
	def := graph("a",
		step("a", domain.StepTypeTask, "b"),
		cond,
		step("c", domain.StepTypeTask),
		step("d", domain.StepTypeTask),
	)

	result := newTestEngine(domain.DefaultStyleConfig()).Compute(def, nil, domain.Canvas{})

	require.Len(t, result.Nodes, 4)
	levels := make([]int, 0, 4)
	for _, n := range result.Nodes {
		levels = append(levels, n.Level)
	}
	assert.Equal(t, []int{0, 1, 2, 2}, levels)
	assert.Equal(t, []domain.GraphEdge{
		{From: "a", To: "b", Kind: domain.EdgeKindNormal},
		{From: "b", To: "c", Kind: domain.EdgeKindNormal},
		{From: "b", To: "d", Kind: domain.EdgeKindElse},
	}, result.Edges)
}

func TestEngine_ComputeMissingStartIsEmpty(t *testing.T) {
	def := graph("nope", step("a", domain.StepTypeTask))
	prev := domain.Canvas{Width: 1500, Height: 900}

	result := newTestEngine(domain.DefaultStyleConfig()).Compute(def, nil, prev)

	assert.NotNil(t, result.Nodes)
	assert.Empty(t, result.Nodes)
	assert.Empty(t, result.Edges)
	assert.Equal(t, prev, result.Canvas())
	assert.Nil(t, result.Stats)
}

func TestEngine_ComputeIsIdempotent(t *testing.T) {
	def := chain(7)
	engine := newTestEngine(domain.DefaultStyleConfig())

	first := engine.Compute(def, nil, domain.Canvas{Width: 2000, Height: 800})
	second := engine.Compute(def, nil, domain.Canvas{Width: 2000, Height: 800})

	assert.Equal(t, first, second)
}

func TestEngine_StatusChangeDoesNotShrink(t *testing.T) {
	def := chain(8)
	engine := newTestEngine(domain.DefaultStyleConfig())

	first := engine.Compute(def, nil, domain.Canvas{})
	second := engine.Compute(graph("s0", step("s0", domain.StepTypeTask)), nil, first.Canvas())

	assert.Equal(t, first.Canvas(), second.Canvas())
}

func TestEngine_StyleSurface(t *testing.T) {
	def := graph("a", step("a", domain.StepTypeTask))

	withLegend := newTestEngine(domain.StyleConfig{Title: "Orders", ShowLegend: true, Theme: domain.ThemeDark}).Compute(def, nil, domain.Canvas{})
	require.NotNil(t, withLegend.Legend)
	assert.Equal(t, domain.StatusDomain, withLegend.Legend.Statuses)
	assert.Empty(t, withLegend.Legend.EdgeKinds)
	assert.Equal(t, "Orders", withLegend.Title)
	assert.Equal(t, domain.ThemeDark, withLegend.Theme)

	withoutLegend := newTestEngine(domain.StyleConfig{Theme: domain.ThemeLight}).Compute(def, nil, domain.Canvas{})
	assert.Nil(t, withoutLegend.Legend)
}

func TestBuildLegend_EdgeKindsInFixedOrder(t *testing.T) {
	legend := buildLegend([]domain.GraphEdge{
		{From: "a", To: "b", Kind: domain.EdgeKindParallel},
		{From: "b", To: "c", Kind: domain.EdgeKindElse},
		{From: "a", To: "c", Kind: domain.EdgeKindParallel},
	})

	assert.Equal(t, []domain.EdgeKind{domain.EdgeKindElse, domain.EdgeKindParallel}, legend.EdgeKinds)
}

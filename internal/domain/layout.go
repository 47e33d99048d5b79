package domain

type EdgeKind string

const (
	EdgeKindNormal   EdgeKind = "normal"
	EdgeKindElse     EdgeKind = "else"
	EdgeKindParallel EdgeKind = "parallel"
	EdgeKindForkJoin EdgeKind = "fork_join"
)

// GraphNode is a positioned step. ID is the step name and is the only
// identity that survives a recomputation.
type GraphNode struct {
	ID              string          `json:"id"`
	Step            *StepDefinition `json:"step"`
	Type            StepType        `json:"type"`
	Status          StepStatus      `json:"status"`
	HasCompensation bool            `json:"has_compensation"`
	Level           int             `json:"level"`
	X               float64         `json:"x"`
	Y               float64         `json:"y"`
	Width           float64         `json:"width"`
	Height          float64         `json:"height"`
}

type GraphEdge struct {
	From string   `json:"from"`
	To   string   `json:"to"`
	Kind EdgeKind `json:"kind"`
}

type Canvas struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Grow returns the component-wise maximum of c and other.
func (c Canvas) Grow(other Canvas) Canvas {
	if other.Width > c.Width {
		c.Width = other.Width
	}
	if other.Height > c.Height {
		c.Height = other.Height
	}
	return c
}

func (c Canvas) IsZero() bool {
	return c.Width == 0 && c.Height == 0
}

type Legend struct {
	Statuses  []StepStatus `json:"statuses"`
	EdgeKinds []EdgeKind   `json:"edge_kinds"`
}

type Layout struct {
	Nodes    []*GraphNode       `json:"nodes"`
	Edges    []GraphEdge        `json:"edges"`
	Width    float64            `json:"width"`
	Height   float64            `json:"height"`
	Title    string             `json:"title,omitempty"`
	Theme    Theme              `json:"theme,omitempty"`
	Legend   *Legend            `json:"legend,omitempty"`
	Stats    map[StepStatus]int `json:"stats,omitempty"`
	Revision uint64             `json:"revision,omitempty"`
}

func (l *Layout) Canvas() Canvas {
	if l == nil {
		return Canvas{}
	}
	return Canvas{Width: l.Width, Height: l.Height}
}

// Node looks a node up by step name.
func (l *Layout) Node(id string) *GraphNode {
	if l == nil {
		return nil
	}
	for _, n := range l.Nodes {
		if n.ID == id {
			return n
		}
	}
	return nil
}

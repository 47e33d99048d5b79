package layout

import (
	"math"

	"github.com/eleven-am/stepgraph/internal/domain"
)

// Position assigns coordinates to every node in levels and returns the grown
// canvas. Columns share the previous canvas width evenly, never narrower
// than MinLevelWidth; each column is centred vertically on the previous
// canvas height. The returned canvas is never smaller than prev.
func Position(levels [][]string, nodes []*domain.GraphNode, prev domain.Canvas, cfg domain.LayoutConfig) domain.Canvas {
	if len(nodes) == 0 || len(levels) == 0 {
		return prev
	}

	byID := make(map[string]*domain.GraphNode, len(nodes))
	for _, n := range nodes {
		byID[n.ID] = n
	}

	levelWidth := math.Max(cfg.MinLevelWidth, prev.Width/float64(len(levels)))

	for levelIndex, names := range levels {
		count := float64(len(names))
		startY := math.Max(cfg.Padding, (prev.Height-(count-1)*cfg.NodeSpacing)/2)

		for i, name := range names {
			n, ok := byID[name]
			if !ok {
				continue
			}
			n.Width = cfg.NodeWidth
			n.Height = cfg.NodeHeight
			n.X = float64(levelIndex)*levelWidth + cfg.Padding
			n.Y = startY + float64(i)*cfg.NodeSpacing
		}
	}

	extent := domain.Canvas{}
	for _, n := range nodes {
		extent.Width = math.Max(extent.Width, n.X+n.Width+cfg.Padding)
		extent.Height = math.Max(extent.Height, n.Y+n.Height+cfg.Padding)
	}
	return prev.Grow(extent)
}

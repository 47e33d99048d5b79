package ports

import (
	"context"

	"github.com/eleven-am/stepgraph/internal/domain"
)

// CanvasStore persists per-session canvas bounds. Grow must never lower a
// stored dimension, so concurrent writers cannot shrink a canvas.
type CanvasStore interface {
	Load(ctx context.Context, sessionID string) (canvas domain.Canvas, exists bool, err error)
	Grow(ctx context.Context, sessionID string, canvas domain.Canvas) (domain.Canvas, error)
	Delete(ctx context.Context, sessionID string) error
	Close() error
}

package memory

import (
	"context"
	"log/slog"
	"sync"

	"github.com/eleven-am/stepgraph/internal/domain"
	"github.com/eleven-am/stepgraph/internal/ports"
)

type MemoryCanvasStore struct {
	canvases map[string]domain.Canvas
	closed   bool
	mu       sync.RWMutex
	logger   *slog.Logger
}

var _ ports.CanvasStore = (*MemoryCanvasStore)(nil)

func NewMemoryCanvasStore(logger *slog.Logger) *MemoryCanvasStore {
	if logger == nil {
		logger = slog.Default()
	}

	return &MemoryCanvasStore{
		canvases: make(map[string]domain.Canvas),
		logger:   logger.With("component", "canvas-store", "type", "memory"),
	}
}

func (s *MemoryCanvasStore) Load(ctx context.Context, sessionID string) (domain.Canvas, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.Canvas{}, false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return domain.Canvas{}, false, domain.ErrClosed
	}
	canvas, exists := s.canvases[sessionID]
	return canvas, exists, nil
}

func (s *MemoryCanvasStore) Grow(ctx context.Context, sessionID string, canvas domain.Canvas) (domain.Canvas, error) {
	if err := ctx.Err(); err != nil {
		return domain.Canvas{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return domain.Canvas{}, domain.ErrClosed
	}
	grown := s.canvases[sessionID].Grow(canvas)
	s.canvases[sessionID] = grown
	s.logger.Debug("canvas grown", "session_id", sessionID, "width", grown.Width, "height", grown.Height)
	return grown, nil
}

func (s *MemoryCanvasStore) Delete(ctx context.Context, sessionID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return domain.ErrClosed
	}
	delete(s.canvases, sessionID)
	return nil
}

func (s *MemoryCanvasStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.canvases = make(map[string]domain.Canvas)
	return nil
}

package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/eleven-am/stepgraph/internal/core/layout"
	"github.com/eleven-am/stepgraph/internal/domain"
	"github.com/eleven-am/stepgraph/internal/ports"
	"github.com/google/uuid"
)

const componentVersion = "v1"

// Session owns the state a caller carries between layout runs for one
// graph: the monotonic canvas (kept in a CanvasStore) and the revision of
// the latest layout handed to the renderer.
type Session struct {
	id     string
	engine *layout.Engine
	store  ports.CanvasStore
	logger *ports.StructuredLogger

	mu        sync.Mutex
	revision  uint64
	published *domain.Layout
}

// New creates a session. An empty id is replaced with a random UUID; pass a
// stable id (such as a workflow instance id) to reuse stored bounds.
func New(id string, engine *layout.Engine, store ports.CanvasStore, logger *slog.Logger) *Session {
	if id == "" {
		id = uuid.New().String()
	}
	return &Session{
		id:     id,
		engine: engine,
		store:  store,
		logger: ports.NewStructuredLogger(logger, "session", componentVersion),
	}
}

func (s *Session) ID() string {
	return s.id
}

// Render computes a layout from the stored canvas, persists the grown
// canvas and stamps the result with a fresh revision. It does not publish.
func (s *Session) Render(ctx context.Context, def *domain.GraphDefinition, records []domain.StepExecutionRecord) (*domain.Layout, error) {
	op := s.logger.WithOperation("render", s.id)

	s.mu.Lock()
	s.revision++
	revision := s.revision
	s.mu.Unlock()

	prev, exists, err := s.store.Load(ctx, s.id)
	if err != nil {
		op.Fail("failed to load canvas", err)
		return nil, fmt.Errorf("session %s: %w", s.id, err)
	}
	if !exists {
		prev = s.engine.InitialCanvas()
		op.Debug("no stored canvas, using initial canvas",
			"width", prev.Width,
			"height", prev.Height)
	}

	result := s.engine.Compute(def, records, prev)

	grown, err := s.store.Grow(ctx, s.id, result.Canvas())
	if err != nil {
		op.Fail("failed to store canvas", err)
		return nil, fmt.Errorf("session %s: %w", s.id, err)
	}
	// another render may have grown the stored canvas in the meantime
	result.Width, result.Height = grown.Width, grown.Height
	result.Revision = revision

	op.Complete("layout rendered",
		ports.FieldRevision, revision,
		ports.FieldNodes, len(result.Nodes),
		ports.FieldEdges, len(result.Edges))
	return result, nil
}

// Publish makes l the latest layout unless a newer revision was already
// published. It reports whether l was accepted.
func (s *Session) Publish(l *domain.Layout) bool {
	if l == nil {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.published != nil && l.Revision <= s.published.Revision {
		s.logger.Warn("dropping stale layout",
			ports.FieldSessionID, s.id,
			ports.FieldRevision, l.Revision,
			"published_revision", s.published.Revision)
		return false
	}
	s.published = l
	return true
}

// Refresh renders and publishes in one step.
func (s *Session) Refresh(ctx context.Context, def *domain.GraphDefinition, records []domain.StepExecutionRecord) (*domain.Layout, bool, error) {
	l, err := s.Render(ctx, def, records)
	if err != nil {
		return nil, false, err
	}
	return l, s.Publish(l), nil
}

// Latest returns the most recently published layout, or nil.
func (s *Session) Latest() *domain.Layout {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.published
}

// Reset forgets the stored canvas so the next render starts from the
// initial canvas again.
func (s *Session) Reset(ctx context.Context) error {
	if err := s.store.Delete(ctx, s.id); err != nil {
		s.logger.Error("failed to reset session", ports.FieldSessionID, s.id, ports.FieldError, err)
		return fmt.Errorf("session %s: %w", s.id, err)
	}
	s.mu.Lock()
	s.published = nil
	s.mu.Unlock()

	s.logger.Info("session reset", ports.FieldSessionID, s.id)
	return nil
}

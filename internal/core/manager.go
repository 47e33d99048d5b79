package core

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/eleven-am/stepgraph/internal/adapters/loader"
	"github.com/eleven-am/stepgraph/internal/core/layout"
	"github.com/eleven-am/stepgraph/internal/core/session"
	"github.com/eleven-am/stepgraph/internal/domain"
	"github.com/eleven-am/stepgraph/internal/ports"
)

// Manager ties the layout engine to a canvas store and keeps one session per
// graph being watched.
type Manager struct {
	config *domain.Config
	logger *slog.Logger
	engine *layout.Engine
	store  ports.CanvasStore
	loader ports.DefinitionLoader

	mu       sync.Mutex
	sessions map[string]*session.Session
	closed   bool
}

func New(logger *slog.Logger) (*Manager, error) {
	return NewWithConfig(domain.NewConfigFromSimple(logger))
}

func NewWithConfig(config *domain.Config) (*Manager, error) {
	if config == nil {
		return nil, domain.NewConfigError("config", domain.ErrInvalidInput)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	logger := config.Logger.With("component", "stepgraph")

	store, err := createCanvasStore(config.Storage, config.Logger)
	if err != nil {
		logger.Error("failed to create canvas store", "error", err)
		return nil, err
	}

	return &Manager{
		config:   config,
		logger:   logger,
		engine:   layout.NewEngine(config.Layout, config.Style, config.Logger),
		store:    store,
		loader:   loader.NewFileLoader(config.Logger),
		sessions: make(map[string]*session.Session),
	}, nil
}

// Compute runs the layout pipeline once without touching any session.
func (m *Manager) Compute(def *domain.GraphDefinition, records []domain.StepExecutionRecord, prev domain.Canvas) *domain.Layout {
	return m.engine.Compute(def, records, prev)
}

// Session returns the session with the given id, creating it on first use.
// An empty id always creates a new session with a generated id.
func (m *Manager) Session(id string) (*session.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil, domain.ErrClosed
	}
	if s, ok := m.sessions[id]; ok && id != "" {
		return s, nil
	}

	s := session.New(id, m.engine, m.store, m.config.Logger)
	m.sessions[s.ID()] = s
	m.logger.Debug("session opened", "session_id", s.ID())
	return s, nil
}

// Render renders and publishes a layout for the session. The returned layout
// is the session's latest one, which may be newer than the one rendered here.
func (m *Manager) Render(ctx context.Context, sessionID string, def *domain.GraphDefinition, records []domain.StepExecutionRecord) (*domain.Layout, error) {
	s, err := m.Session(sessionID)
	if err != nil {
		return nil, err
	}
	if _, _, err := s.Refresh(ctx, def, records); err != nil {
		return nil, err
	}
	return s.Latest(), nil
}

// RenderFiles loads a definition and optional records file, then renders.
func (m *Manager) RenderFiles(ctx context.Context, sessionID, definitionPath, recordsPath string) (*domain.Layout, error) {
	def, err := m.loader.LoadDefinition(ctx, definitionPath)
	if err != nil {
		return nil, err
	}

	var records []domain.StepExecutionRecord
	if recordsPath != "" {
		records, err = m.loader.LoadRecords(ctx, recordsPath)
		if err != nil {
			return nil, err
		}
	}
	return m.Render(ctx, sessionID, def, records)
}

func (m *Manager) LoadDefinition(ctx context.Context, path string) (*domain.GraphDefinition, error) {
	return m.loader.LoadDefinition(ctx, path)
}

func (m *Manager) LoadRecords(ctx context.Context, path string) ([]domain.StepExecutionRecord, error) {
	return m.loader.LoadRecords(ctx, path)
}

// CloseSession forgets the session and its stored canvas.
func (m *Manager) CloseSession(ctx context.Context, id string) error {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if !ok {
		return fmt.Errorf("session %s: %w", id, domain.ErrNotFound)
	}
	return s.Reset(ctx)
}

func (m *Manager) Close() error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil
	}
	m.closed = true
	m.sessions = make(map[string]*session.Session)
	m.mu.Unlock()

	if err := m.store.Close(); err != nil {
		m.logger.Error("failed to close canvas store", "error", err)
		return err
	}
	m.logger.Debug("manager closed")
	return nil
}

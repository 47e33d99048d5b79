// Package stepgraph lays out workflow step graphs for rendering.
//
// A graph definition (task, parallel, condition, fork, join and save-point
// steps wired by next, else and parallel references) is walked from its
// start step, every reachable step is assigned a column level, and nodes are
// positioned on a canvas that only ever grows. Step execution records
// annotate each node with its live status.
//
// Basic usage:
//
//	manager, err := stepgraph.New(logger)
//	if err != nil {
//	    return err
//	}
//	defer manager.Close()
//
//	def, err := manager.LoadDefinition(ctx, "order.hcl")
//	layout, err := manager.Render(ctx, "order-42", def, records)
//
// Render keeps canvas bounds per session so repeated renders of the same
// graph do not jitter when only statuses change.
package stepgraph

import (
	"log/slog"

	"github.com/eleven-am/stepgraph/internal/core"
	"github.com/eleven-am/stepgraph/internal/core/session"
	"github.com/eleven-am/stepgraph/internal/domain"
)

// Manager owns the layout engine, the canvas store and the open sessions.
type Manager = core.Manager

// Session holds the canvas bounds and latest published layout of one graph.
type Session = session.Session

type GraphDefinition = domain.GraphDefinition

type StepDefinition = domain.StepDefinition

type StepType = domain.StepType

const (
	StepTypeTask      = domain.StepTypeTask
	StepTypeParallel  = domain.StepTypeParallel
	StepTypeCondition = domain.StepTypeCondition
	StepTypeFork      = domain.StepTypeFork
	StepTypeJoin      = domain.StepTypeJoin
	StepTypeSavePoint = domain.StepTypeSavePoint
)

type StepExecutionRecord = domain.StepExecutionRecord

// StepStatus is the status contract renderers map to colors and icons.
type StepStatus = domain.StepStatus

const (
	StepStatusPending      = domain.StepStatusPending
	StepStatusRunning      = domain.StepStatusRunning
	StepStatusCompleted    = domain.StepStatusCompleted
	StepStatusFailed       = domain.StepStatusFailed
	StepStatusCompensation = domain.StepStatusCompensation
	StepStatusRolledBack   = domain.StepStatusRolledBack
	StepStatusSkipped      = domain.StepStatusSkipped
)

type Layout = domain.Layout

type GraphNode = domain.GraphNode

type GraphEdge = domain.GraphEdge

type EdgeKind = domain.EdgeKind

const (
	EdgeKindNormal   = domain.EdgeKindNormal
	EdgeKindElse     = domain.EdgeKindElse
	EdgeKindParallel = domain.EdgeKindParallel
)

type Canvas = domain.Canvas

type Legend = domain.Legend

type DecodeError = domain.DecodeError

type ConfigError = domain.ConfigError

var (
	ErrNotFound      = domain.ErrNotFound
	ErrInvalidConfig = domain.ErrInvalidConfig
	ErrClosed        = domain.ErrClosed
	ErrUnknownFormat = domain.ErrUnknownFormat
)

// New creates a manager with default settings and in-memory canvas storage.
func New(logger *slog.Logger) (*Manager, error) {
	return core.New(logger)
}

// NewWithConfig creates a manager from a full configuration. Build one with
// NewConfigBuilder or start from DefaultConfig.
func NewWithConfig(config *Config) (*Manager, error) {
	return core.NewWithConfig(config)
}

// StatusDomain lists every status a node can carry, in display order.
func StatusDomain() []StepStatus {
	return append([]StepStatus(nil), domain.StatusDomain...)
}

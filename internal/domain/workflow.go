package domain

import (
	"sort"
)

type StepType string

const (
	StepTypeTask      StepType = "task"
	StepTypeParallel  StepType = "parallel"
	StepTypeCondition StepType = "condition"
	StepTypeFork      StepType = "fork"
	StepTypeJoin      StepType = "join"
	StepTypeSavePoint StepType = "save_point"
)

type JoinStrategy string

const (
	JoinStrategyAll JoinStrategy = "all"
	JoinStrategyAny JoinStrategy = "any"
)

// StepDefinition describes one step of a workflow graph. OnFailure, WaitFor,
// JoinStrategy and the retry settings are carried as metadata only.
type StepDefinition struct {
	Name         string                 `json:"name" yaml:"name"`
	Type         StepType               `json:"type" yaml:"type"`
	Handler      string                 `json:"handler,omitempty" yaml:"handler,omitempty"`
	MaxRetries   int                    `json:"max_retries,omitempty" yaml:"max_retries,omitempty"`
	Next         []string               `json:"next,omitempty" yaml:"next,omitempty"`
	Prev         string                 `json:"prev,omitempty" yaml:"prev,omitempty"`
	Else         string                 `json:"else,omitempty" yaml:"else,omitempty"`
	OnFailure    string                 `json:"on_failure,omitempty" yaml:"on_failure,omitempty"`
	Condition    string                 `json:"condition,omitempty" yaml:"condition,omitempty"`
	Parallel     []string               `json:"parallel,omitempty" yaml:"parallel,omitempty"`
	WaitFor      []string               `json:"wait_for,omitempty" yaml:"wait_for,omitempty"`
	JoinStrategy JoinStrategy           `json:"join_strategy,omitempty" yaml:"join_strategy,omitempty"`
	Metadata     map[string]interface{} `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	NoIdempotent bool                   `json:"no_idempotent,omitempty" yaml:"no_idempotent,omitempty"`
}

func (s *StepDefinition) HasCompensation() bool {
	return s != nil && s.OnFailure != ""
}

type GraphDefinition struct {
	Start string                     `json:"start" yaml:"start"`
	Steps map[string]*StepDefinition `json:"steps" yaml:"steps"`
}

// Step returns the named step, or nil when the name is unknown.
func (g *GraphDefinition) Step(name string) *StepDefinition {
	if g == nil || g.Steps == nil {
		return nil
	}
	return g.Steps[name]
}

func (g *GraphDefinition) HasStart() bool {
	return g.Step(g.startName()) != nil
}

func (g *GraphDefinition) startName() string {
	if g == nil {
		return ""
	}
	return g.Start
}

// StepNames returns every step name in sorted order so that map-wide scans
// are deterministic.
func (g *GraphDefinition) StepNames() []string {
	if g == nil {
		return nil
	}
	names := make([]string, 0, len(g.Steps))
	for name := range g.Steps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Normalize fills empty step names from their map keys and drops nil entries.
func (g *GraphDefinition) Normalize() {
	if g == nil {
		return
	}
	for key, step := range g.Steps {
		if step == nil {
			delete(g.Steps, key)
			continue
		}
		if step.Name == "" {
			step.Name = key
		}
	}
}

package domain

import (
	"encoding/json"
	"time"
)

type StepStatus string

const (
	StepStatusPending      StepStatus = "pending"
	StepStatusRunning      StepStatus = "running"
	StepStatusCompleted    StepStatus = "completed"
	StepStatusFailed       StepStatus = "failed"
	StepStatusCompensation StepStatus = "compensation"
	StepStatusRolledBack   StepStatus = "rolled_back"
	StepStatusSkipped      StepStatus = "skipped"
)

// StatusDomain lists every status a renderer must be able to draw, in
// legend order.
var StatusDomain = []StepStatus{
	StepStatusPending,
	StepStatusRunning,
	StepStatusCompleted,
	StepStatusFailed,
	StepStatusCompensation,
	StepStatusRolledBack,
	StepStatusSkipped,
}

func (s StepStatus) Valid() bool {
	for _, known := range StatusDomain {
		if s == known {
			return true
		}
	}
	return false
}

// StepExecutionRecord is one execution attempt of a step as reported by the
// workflow backend. It is read-only input.
type StepExecutionRecord struct {
	ID                     int64           `json:"id,omitempty"`
	InstanceID             int64           `json:"instance_id,omitempty"`
	StepName               string          `json:"step_name"`
	StepType               StepType        `json:"step_type,omitempty"`
	Status                 StepStatus      `json:"status"`
	Input                  json.RawMessage `json:"input,omitempty"`
	Output                 json.RawMessage `json:"output,omitempty"`
	Error                  string          `json:"error,omitempty"`
	RetryCount             int             `json:"retry_count"`
	MaxRetries             int             `json:"max_retries"`
	CompensationRetryCount int             `json:"compensation_retry_count"`
	StartedAt              *time.Time      `json:"started_at,omitempty"`
	CompletedAt            *time.Time      `json:"completed_at,omitempty"`
	CreatedAt              time.Time       `json:"created_at"`
}

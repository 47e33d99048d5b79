package ports

import (
	"context"
	"io"

	"github.com/eleven-am/stepgraph/internal/domain"
)

type DefinitionFormat string

const (
	FormatJSON DefinitionFormat = "json"
	FormatHCL  DefinitionFormat = "hcl"
	FormatYAML DefinitionFormat = "yaml"
)

type DefinitionLoader interface {
	LoadDefinition(ctx context.Context, path string) (*domain.GraphDefinition, error)
	DecodeDefinition(ctx context.Context, r io.Reader, source string, format DefinitionFormat) (*domain.GraphDefinition, error)
	LoadRecords(ctx context.Context, path string) ([]domain.StepExecutionRecord, error)
}

package loader

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/eleven-am/stepgraph/internal/domain"
	"github.com/eleven-am/stepgraph/internal/ports"
	"github.com/eleven-am/stepgraph/internal/xjson"
	"gopkg.in/yaml.v3"
)

// FileLoader reads graph definitions and execution records from disk. The
// definition format follows the file extension.
type FileLoader struct {
	logger *slog.Logger
	strict bool
}

var _ ports.DefinitionLoader = (*FileLoader)(nil)

func NewFileLoader(logger *slog.Logger) *FileLoader {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileLoader{
		logger: logger.With("component", "loader"),
	}
}

// Strict makes JSON and YAML decoding reject unknown fields.
func (l *FileLoader) Strict(strict bool) *FileLoader {
	l.strict = strict
	return l
}

// FormatFromPath maps a file extension to a definition format.
func FormatFromPath(path string) (ports.DefinitionFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ports.FormatJSON, nil
	case ".hcl":
		return ports.FormatHCL, nil
	case ".yaml", ".yml":
		return ports.FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownFormat, filepath.Ext(path))
	}
}

func (l *FileLoader) LoadDefinition(ctx context.Context, path string) (*domain.GraphDefinition, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, domain.NewDecodeError(path, "unknown", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open definition: %w", err)
	}
	defer f.Close()

	return l.DecodeDefinition(ctx, f, path, format)
}

func (l *FileLoader) DecodeDefinition(ctx context.Context, r io.Reader, source string, format ports.DefinitionFormat) (*domain.GraphDefinition, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		def *domain.GraphDefinition
		err error
	)
	switch format {
	case ports.FormatJSON:
		def, err = l.decodeJSON(r)
	case ports.FormatHCL:
		def, err = decodeHCL(r, source)
	case ports.FormatYAML:
		def, err = l.decodeYAML(r)
	default:
		err = fmt.Errorf("%w: %q", domain.ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, domain.NewDecodeError(source, string(format), err)
	}

	def.Normalize()
	l.logger.Debug("definition loaded",
		"source", source,
		"format", format,
		"start", def.Start,
		"steps", len(def.Steps))
	return def, nil
}

func (l *FileLoader) decodeJSON(r io.Reader) (*domain.GraphDefinition, error) {
	var def domain.GraphDefinition
	if err := xjson.Decode(r, &def, l.strict); err != nil {
		return nil, err
	}
	return &def, nil
}

func (l *FileLoader) decodeYAML(r io.Reader) (*domain.GraphDefinition, error) {
	var def domain.GraphDefinition
	dec := yaml.NewDecoder(r)
	dec.KnownFields(l.strict)
	if err := dec.Decode(&def); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return &def, nil
}

// LoadRecords reads a JSON array of step execution records. An empty file
// yields no records.
func (l *FileLoader) LoadRecords(ctx context.Context, path string) ([]domain.StepExecutionRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read records: %w", err)
	}
	return l.DecodeRecords(bytes.NewReader(data), path)
}

func (l *FileLoader) DecodeRecords(r io.Reader, source string) ([]domain.StepExecutionRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, domain.NewDecodeError(source, string(ports.FormatJSON), err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var records []domain.StepExecutionRecord
	if err := xjson.Unmarshal(data, &records); err != nil {
		return nil, domain.NewDecodeError(source, string(ports.FormatJSON), err)
	}

	l.logger.Debug("records loaded", "source", source, "count", len(records))
	return records, nil
}

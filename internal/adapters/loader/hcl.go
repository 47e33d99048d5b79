package loader

import (
	"fmt"
	"io"

	"github.com/eleven-am/stepgraph/internal/domain"
	"github.com/eleven-am/stepgraph/internal/xjson"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// hclFile is the top-level shape of an HCL definition:
//
//	start = "validate"
//
//	step "validate" {
//	  type = "task"
//	  next = ["charge"]
//	}
type hclFile struct {
	Start string     `hcl:"start,optional"`
	Steps []*hclStep `hcl:"step,block"`
}

type hclStep struct {
	Name         string     `hcl:"name,label"`
	Type         string     `hcl:"type"`
	Handler      string     `hcl:"handler,optional"`
	MaxRetries   int        `hcl:"max_retries,optional"`
	Next         []string   `hcl:"next,optional"`
	Prev         string     `hcl:"prev,optional"`
	Else         string     `hcl:"else,optional"`
	OnFailure    string     `hcl:"on_failure,optional"`
	Condition    string     `hcl:"condition,optional"`
	Parallel     []string   `hcl:"parallel,optional"`
	WaitFor      []string   `hcl:"wait_for,optional"`
	JoinStrategy string     `hcl:"join_strategy,optional"`
	NoIdempotent bool       `hcl:"no_idempotent,optional"`
	Metadata     *cty.Value `hcl:"metadata,optional"`
}

func decodeHCL(r io.Reader, source string) (*domain.GraphDefinition, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, source)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse: %w", diags)
	}

	var root hclFile
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode: %w", diags)
	}

	def := &domain.GraphDefinition{
		Start: root.Start,
		Steps: make(map[string]*domain.StepDefinition, len(root.Steps)),
	}
	for _, step := range root.Steps {
		if _, dup := def.Steps[step.Name]; dup {
			return nil, fmt.Errorf("duplicate step %q", step.Name)
		}
		translated, err := translateStep(step)
		if err != nil {
			return nil, err
		}
		def.Steps[step.Name] = translated
	}
	return def, nil
}

func translateStep(s *hclStep) (*domain.StepDefinition, error) {
	metadata, err := metadataFromCty(s.Metadata)
	if err != nil {
		return nil, fmt.Errorf("step %q metadata: %w", s.Name, err)
	}

	return &domain.StepDefinition{
		Name:         s.Name,
		Type:         domain.StepType(s.Type),
		Handler:      s.Handler,
		MaxRetries:   s.MaxRetries,
		Next:         s.Next,
		Prev:         s.Prev,
		Else:         s.Else,
		OnFailure:    s.OnFailure,
		Condition:    s.Condition,
		Parallel:     s.Parallel,
		WaitFor:      s.WaitFor,
		JoinStrategy: domain.JoinStrategy(s.JoinStrategy),
		NoIdempotent: s.NoIdempotent,
		Metadata:     metadata,
	}, nil
}

// metadataFromCty round-trips an HCL object through JSON so metadata has the
// same Go shape whichever format the definition came from.
func metadataFromCty(v *cty.Value) (map[string]interface{}, error) {
	if v == nil || v.IsNull() {
		return nil, nil
	}
	ty := v.Type()
	if !ty.IsObjectType() && !ty.IsMapType() {
		return nil, fmt.Errorf("expected an object, got %s", ty.FriendlyName())
	}

	data, err := ctyjson.Marshal(*v, ty)
	if err != nil {
		return nil, err
	}

	var out map[string]interface{}
	if err := xjson.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

package domain

import (
	"dario.cat/mergo"
)

// MergeConfig overlays the non-zero fields of override onto a copy of base.
// Boolean fields can only be switched on by an override; use the With*
// setters to switch them off.
func MergeConfig(base, override *Config) (*Config, error) {
	if base == nil {
		base = DefaultConfig()
	}

	merged := *base
	if override == nil {
		return &merged, nil
	}

	src := *override
	logger := base.Logger
	if src.Logger != nil {
		logger = src.Logger
	}
	// loggers are swapped, never merged field by field
	merged.Logger, src.Logger = nil, nil

	if err := mergo.Merge(&merged, src, mergo.WithOverride); err != nil {
		return nil, NewConfigError("merge", err)
	}

	merged.Logger = logger
	return &merged, nil
}

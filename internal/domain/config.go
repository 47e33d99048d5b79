package domain

import (
	"log/slog"
)

type Config struct {
	Logger *slog.Logger `json:"-" yaml:"-"`

	Layout  LayoutConfig  `json:"layout" yaml:"layout"`
	Style   StyleConfig   `json:"style" yaml:"style"`
	Storage StorageConfig `json:"storage" yaml:"storage"`
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// LayoutConfig holds the geometry used by the positioner. All values are in
// canvas units.
type LayoutConfig struct {
	NodeWidth     float64 `json:"node_width" yaml:"node_width"`
	NodeHeight    float64 `json:"node_height" yaml:"node_height"`
	NodeSpacing   float64 `json:"node_spacing" yaml:"node_spacing"`
	Padding       float64 `json:"padding" yaml:"padding"`
	MinLevelWidth float64 `json:"min_level_width" yaml:"min_level_width"`
	InitialCanvas Canvas  `json:"initial_canvas" yaml:"initial_canvas"`
}

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

type StyleConfig struct {
	Title      string `json:"title,omitempty" yaml:"title,omitempty"`
	ShowLegend bool   `json:"show_legend" yaml:"show_legend"`
	Theme      Theme  `json:"theme" yaml:"theme"`
}

type StorageType string

const (
	StorageMemory StorageType = "memory"
	StorageBadger StorageType = "badger"
)

type StorageConfig struct {
	Type    StorageType `json:"type" yaml:"type"`
	DataDir string      `json:"data_dir,omitempty" yaml:"data_dir,omitempty"`
}

type LoggingConfig struct {
	Level  string `json:"level" yaml:"level"`
	Format string `json:"format" yaml:"format"`
}

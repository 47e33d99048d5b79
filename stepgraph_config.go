package stepgraph

import (
	"log/slog"

	"github.com/eleven-am/stepgraph/internal/domain"
)

type Config = domain.Config

type LayoutConfig = domain.LayoutConfig

type StyleConfig = domain.StyleConfig

type StorageConfig = domain.StorageConfig

type LoggingConfig = domain.LoggingConfig

type Theme = domain.Theme

const (
	ThemeLight = domain.ThemeLight
	ThemeDark  = domain.ThemeDark
)

type StorageType = domain.StorageType

const (
	StorageMemory = domain.StorageMemory
	StorageBadger = domain.StorageBadger
)

func DefaultConfig() *Config {
	return domain.DefaultConfig()
}

func DefaultLayoutConfig() LayoutConfig {
	return domain.DefaultLayoutConfig()
}

func DefaultStyleConfig() StyleConfig {
	return domain.DefaultStyleConfig()
}

// MergeConfig overlays the non-zero fields of override onto base.
func MergeConfig(base, override *Config) (*Config, error) {
	return domain.MergeConfig(base, override)
}

type ConfigBuilder struct {
	config *Config
}

func NewConfigBuilder(logger *slog.Logger) *ConfigBuilder {
	return &ConfigBuilder{config: domain.NewConfigFromSimple(logger)}
}

func (cb *ConfigBuilder) WithTitle(title string) *ConfigBuilder {
	cb.config.WithTitle(title)
	return cb
}

func (cb *ConfigBuilder) WithLegend(show bool) *ConfigBuilder {
	cb.config.WithLegend(show)
	return cb
}

func (cb *ConfigBuilder) WithTheme(theme Theme) *ConfigBuilder {
	cb.config.WithTheme(theme)
	return cb
}

func (cb *ConfigBuilder) WithNodeSize(width, height float64) *ConfigBuilder {
	cb.config.WithNodeSize(width, height)
	return cb
}

func (cb *ConfigBuilder) WithSpacing(nodeSpacing, padding, minLevelWidth float64) *ConfigBuilder {
	cb.config.WithSpacing(nodeSpacing, padding, minLevelWidth)
	return cb
}

func (cb *ConfigBuilder) WithInitialCanvas(width, height float64) *ConfigBuilder {
	cb.config.WithInitialCanvas(width, height)
	return cb
}

func (cb *ConfigBuilder) WithBadgerStorage(dataDir string) *ConfigBuilder {
	cb.config.WithBadgerStorage(dataDir)
	return cb
}

func (cb *ConfigBuilder) Build() *Config {
	return cb.config
}

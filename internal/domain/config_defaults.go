package domain

import (
	"io"
	"log/slog"
)

func DefaultConfig() *Config {
	return &Config{
		Layout:  DefaultLayoutConfig(),
		Style:   DefaultStyleConfig(),
		Storage: DefaultStorageConfig(),
		Logging: DefaultLoggingConfig(),
	}
}

func DefaultLayoutConfig() LayoutConfig {
	return LayoutConfig{
		NodeWidth:     120,
		NodeHeight:    60,
		NodeSpacing:   100,
		Padding:       50,
		MinLevelWidth: 200,
		InitialCanvas: Canvas{Width: 1000, Height: 700},
	}
}

func DefaultStyleConfig() StyleConfig {
	return StyleConfig{
		Title:      "Workflow Graph",
		ShowLegend: true,
		Theme:      ThemeLight,
	}
}

func DefaultStorageConfig() StorageConfig {
	return StorageConfig{
		Type: StorageMemory,
	}
}

func DefaultLoggingConfig() LoggingConfig {
	return LoggingConfig{
		Level:  "info",
		Format: "text",
	}
}

func NewConfigFromSimple(logger *slog.Logger) *Config {
	config := DefaultConfig()
	config.Logger = logger
	if logger == nil {
		config.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return config
}

func (c *Config) WithTitle(title string) *Config {
	c.Style.Title = title
	return c
}

func (c *Config) WithLegend(show bool) *Config {
	c.Style.ShowLegend = show
	return c
}

func (c *Config) WithTheme(theme Theme) *Config {
	c.Style.Theme = theme
	return c
}

func (c *Config) WithNodeSize(width, height float64) *Config {
	c.Layout.NodeWidth = width
	c.Layout.NodeHeight = height
	return c
}

func (c *Config) WithSpacing(nodeSpacing, padding, minLevelWidth float64) *Config {
	c.Layout.NodeSpacing = nodeSpacing
	c.Layout.Padding = padding
	c.Layout.MinLevelWidth = minLevelWidth
	return c
}

func (c *Config) WithInitialCanvas(width, height float64) *Config {
	c.Layout.InitialCanvas = Canvas{Width: width, Height: height}
	return c
}

func (c *Config) WithBadgerStorage(dataDir string) *Config {
	c.Storage.Type = StorageBadger
	c.Storage.DataDir = dataDir
	return c
}

func (c *Config) Validate() error {
	if c.Logger == nil {
		return NewConfigError("logger", ErrInvalidInput)
	}
	if err := c.Layout.Validate(); err != nil {
		return err
	}

	switch c.Style.Theme {
	case ThemeLight, ThemeDark:
	default:
		return NewConfigError("style.theme", ErrInvalidInput)
	}

	switch c.Storage.Type {
	case StorageMemory:
	case StorageBadger:
		if c.Storage.DataDir == "" {
			return NewConfigError("storage.data_dir", ErrInvalidInput)
		}
	default:
		return NewConfigError("storage.type", ErrInvalidInput)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return NewConfigError("logging.level", ErrInvalidInput)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return NewConfigError("logging.format", ErrInvalidInput)
	}

	return nil
}

func (l LayoutConfig) Validate() error {
	if l.NodeWidth <= 0 {
		return NewConfigError("layout.node_width", ErrInvalidInput)
	}
	if l.NodeHeight <= 0 {
		return NewConfigError("layout.node_height", ErrInvalidInput)
	}
	if l.NodeSpacing <= 0 {
		return NewConfigError("layout.node_spacing", ErrInvalidInput)
	}
	if l.Padding < 0 {
		return NewConfigError("layout.padding", ErrInvalidInput)
	}
	if l.MinLevelWidth <= 0 {
		return NewConfigError("layout.min_level_width", ErrInvalidInput)
	}
	if l.InitialCanvas.Width < 0 || l.InitialCanvas.Height < 0 {
		return NewConfigError("layout.initial_canvas", ErrInvalidInput)
	}
	return nil
}

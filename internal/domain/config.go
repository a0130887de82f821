package domain

import (
	"bytes"
	_ "embed"
	"fmt"
	"text/template"
)

// Store backends.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Default configuration values.
const (
	DefaultBackend  = BackendJSON
	DefaultSlotKey  = "tasks_v1"
	DefaultSort     = "dueDate-asc"
	DefaultLocale   = "pt-BR"
	DefaultLogLevel = "info"
)

// Config represents the application configuration.
type Config struct {
	Store    StoreConfig // [store] settings
	View     ViewConfig  // [view] settings
	Log      LogConfig   // [log] settings
	Warnings []string    // Unknown keys found while loading
}

// StoreConfig holds durable slot settings from [store] section.
type StoreConfig struct {
	Backend string // "json" or "sqlite"
	Path    string // Explicit file path (empty = derived from data dir)
	Key     string // Slot name
}

// ViewConfig holds list view defaults from [view] section.
type ViewConfig struct {
	Sort   string // Default sort key
	Locale string // BCP 47 tag used for collation
}

// LogConfig holds logging settings from [log] section.
type LogConfig struct {
	Level string // Log level: debug, info, warn, error
}

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Backend: DefaultBackend,
			Key:     DefaultSlotKey,
		},
		View: ViewConfig{
			Sort:   DefaultSort,
			Locale: DefaultLocale,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

//go:embed config_template.toml
var configTemplateContent string

// RenderConfigTemplate renders a commented config file holding cfg's values.
func RenderConfigTemplate(cfg *Config) string {
	tmpl, err := template.New("config").Delims("<<", ">>").Parse(configTemplateContent)
	if err != nil {
		// Should never happen with embedded template
		panic(fmt.Sprintf("failed to parse config template: %v", err))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, cfg); err != nil {
		panic(fmt.Sprintf("failed to execute config template: %v", err))
	}
	return buf.String()
}

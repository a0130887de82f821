package domain

import "time"

// Slot is the durable key/value location holding the serialized task collection.
type Slot interface {
	// Read returns the stored snapshot. An empty slot returns (nil, nil).
	Read() ([]byte, error)

	// Write replaces the stored snapshot.
	Write(data []byte) error
}

// TaskRepository is the task collection used by the use cases.
// Missing ids are reported the same way taskstore.Store does: Update returns
// ErrTaskNotFound, while Remove and ToggleStatus are silent no-ops.
type TaskRepository interface {
	// List returns every task in insertion order.
	List() []Task

	// Get returns the task with the given id.
	Get(id int) (Task, bool)

	// Categories returns the distinct categories in first-seen order.
	Categories() []string

	// Create validates the draft and stores a new task.
	Create(d Draft) (*Task, error)

	// Update merges the patch onto an existing task.
	Update(id int, p Patch) (*Task, error)

	// Remove deletes a task. It reports whether anything was removed.
	Remove(id int) (bool, error)

	// ToggleStatus advances a task's status. It returns nil for a missing id.
	ToggleStatus(id int) (*Task, error)

	// ClearAll removes every task.
	ClearAll() error
}

// Logger records application events.
// taskID 0 means the entry is not tied to a task.
type Logger interface {
	Info(taskID int, category, msg string)
	Debug(taskID int, category, msg string)
	Warn(taskID int, category, msg string)
	Error(taskID int, category, msg string)
}

// NopLogger discards every entry.
type NopLogger struct{}

func (NopLogger) Info(int, string, string)  {}
func (NopLogger) Debug(int, string, string) {}
func (NopLogger) Warn(int, string, string)  {}
func (NopLogger) Error(int, string, string) {}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (data dir + global).
	Load() (*Config, error)

	// LoadGlobal returns only the global configuration.
	LoadGlobal() (*Config, error)
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// ConfigInfo describes a configuration file on disk.
type ConfigInfo struct {
	Path    string // Absolute path of the file
	Content string // File content (empty when missing)
	Exists  bool   // Whether the file exists
}

// ConfigManager inspects and creates configuration files.
type ConfigManager interface {
	// GetDataConfigInfo returns information about the data dir config file.
	GetDataConfigInfo() ConfigInfo

	// GetGlobalConfigInfo returns information about the global config file.
	GetGlobalConfigInfo() ConfigInfo

	// InitDataConfig creates the data dir config file from the template.
	InitDataConfig(cfg *Config) error

	// InitGlobalConfig creates the global config file from the template.
	InitGlobalConfig(cfg *Config) error
}

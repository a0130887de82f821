// Package app provides the dependency injection container for the application.
package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/runoshun/tasklist/internal/domain"
	"github.com/runoshun/tasklist/internal/infra/config"
	"github.com/runoshun/tasklist/internal/infra/fileslot"
	"github.com/runoshun/tasklist/internal/infra/logging"
	"github.com/runoshun/tasklist/internal/infra/sqliteslot"
	"github.com/runoshun/tasklist/internal/taskstore"
	"github.com/runoshun/tasklist/internal/usecase"
	"github.com/runoshun/tasklist/internal/view"
)

// DataDirEnv names the environment variable that overrides the data directory.
const DataDirEnv = "TASKLIST_DIR"

// Config holds the application paths.
type Config struct {
	DataDir  string // Directory holding the slot, logs and local config
	SlotPath string // File backing the durable slot (JSON file or SQLite database)
}

// ResolveDataDir picks the data directory.
// Order: explicit value, $TASKLIST_DIR, $XDG_DATA_HOME/tasklist, ~/.local/share/tasklist.
func ResolveDataDir(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if dir := os.Getenv(DataDirEnv); dir != "" {
		return dir, nil
	}
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return domain.AppDir(dataHome), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve data directory: %w", err)
	}
	return domain.AppDir(filepath.Join(home, ".local", "share")), nil
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Tasks         domain.TaskRepository
	Clock         domain.Clock
	Logger        domain.Logger
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager

	// Pointer fields
	Pipeline  *view.Pipeline
	AppConfig *domain.Config

	closers []io.Closer

	// Configuration
	Config Config
}

// New creates a new Container for the given data directory.
// The task collection is loaded before New returns.
func New(dataDir string) (*Container, error) {
	configLoader := config.NewLoader(dataDir)
	appConfig, err := configLoader.Load()
	if err != nil {
		// Keep going with defaults; the CLI prints warnings.
		appConfig = domain.NewDefaultConfig()
		appConfig.Warnings = append(appConfig.Warnings, fmt.Sprintf("config ignored: %v", err))
	}

	logger := logging.New(dataDir, logging.ParseLevel(appConfig.Log.Level))

	slot, slotPath, closer, err := openSlot(dataDir, appConfig.Store)
	if err != nil {
		_ = logger.Close()
		return nil, err
	}

	store := taskstore.New(slot, logger)
	store.Load()

	closers := []io.Closer{logger}
	if closer != nil {
		closers = append([]io.Closer{closer}, closers...)
	}

	return &Container{
		Tasks:         store,
		Clock:         domain.RealClock{},
		Logger:        logger,
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManager(dataDir),
		Pipeline:      view.NewForLocale(appConfig.View.Locale),
		AppConfig:     appConfig,
		closers:       closers,
		Config: Config{
			DataDir:  dataDir,
			SlotPath: slotPath,
		},
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, tasks domain.TaskRepository, clock domain.Clock, logger domain.Logger) *Container {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &Container{
		Tasks:     tasks,
		Clock:     clock,
		Logger:    logger,
		Pipeline:  view.New(view.DefaultLocale),
		AppConfig: domain.NewDefaultConfig(),
		Config:    cfg,
	}
}

// openSlot builds the durable slot selected by the [store] settings.
// A relative path is resolved against the data directory.
func openSlot(dataDir string, sc domain.StoreConfig) (domain.Slot, string, io.Closer, error) {
	path := sc.Path
	if path != "" && !filepath.IsAbs(path) {
		path = filepath.Join(dataDir, path)
	}
	key := sc.Key
	if key == "" {
		key = domain.DefaultSlotKey
	}

	switch strings.ToLower(sc.Backend) {
	case "", domain.BackendJSON:
		if path == "" {
			path = domain.SlotFilePath(dataDir, key)
		}
		return fileslot.New(path), path, nil, nil
	case domain.BackendSQLite:
		if path == "" {
			path = domain.SQLitePath(dataDir)
		}
		slot, err := sqliteslot.Open(path, key)
		if err != nil {
			return nil, "", nil, err
		}
		return slot, path, slot, nil
	default:
		return nil, "", nil, fmt.Errorf("%w: %q", domain.ErrUnknownBackend, sc.Backend)
	}
}

// Close releases the slot and the log file.
func (c *Container) Close() error {
	var errs []error
	for _, cl := range c.closers {
		if err := cl.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return errors.Join(errs...)
}

// DefaultSort returns the configured default sort key.
func (c *Container) DefaultSort() view.SortKey {
	key, _ := view.ParseSortKey(c.AppConfig.View.Sort)
	return key
}

// UseCase factory methods

// NewTaskUseCase returns a new NewTask use case.
func (c *Container) NewTaskUseCase() *usecase.NewTask {
	return usecase.NewNewTask(c.Tasks)
}

// EditTaskUseCase returns a new EditTask use case.
func (c *Container) EditTaskUseCase() *usecase.EditTask {
	return usecase.NewEditTask(c.Tasks)
}

// DeleteTaskUseCase returns a new DeleteTask use case.
func (c *Container) DeleteTaskUseCase() *usecase.DeleteTask {
	return usecase.NewDeleteTask(c.Tasks)
}

// ToggleStatusUseCase returns a new ToggleStatus use case.
func (c *Container) ToggleStatusUseCase() *usecase.ToggleStatus {
	return usecase.NewToggleStatus(c.Tasks)
}

// ClearTasksUseCase returns a new ClearTasks use case.
func (c *Container) ClearTasksUseCase() *usecase.ClearTasks {
	return usecase.NewClearTasks(c.Tasks, c.Logger)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Tasks, c.Pipeline, c.Clock, c.DefaultSort())
}

// ShowTaskUseCase returns a new ShowTask use case.
func (c *Container) ShowTaskUseCase() *usecase.ShowTask {
	return usecase.NewShowTask(c.Tasks, c.Clock)
}

// ExportTasksUseCase returns a new ExportTasks use case.
func (c *Container) ExportTasksUseCase() *usecase.ExportTasks {
	return usecase.NewExportTasks(c.Tasks, c.Logger)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}

package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/tasklist/internal/domain"
	"github.com/runoshun/tasklist/internal/usecase"
	"github.com/runoshun/tasklist/internal/view"
)

func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func TestResolveDataDir(t *testing.T) {
	t.Run("explicit wins", func(t *testing.T) {
		t.Setenv(DataDirEnv, "/env/dir")
		dir, err := ResolveDataDir("/flag/dir")
		require.NoError(t, err)
		assert.Equal(t, "/flag/dir", dir)
	})

	t.Run("env var", func(t *testing.T) {
		t.Setenv(DataDirEnv, "/env/dir")
		dir, err := ResolveDataDir("")
		require.NoError(t, err)
		assert.Equal(t, "/env/dir", dir)
	})

	t.Run("xdg data home", func(t *testing.T) {
		t.Setenv(DataDirEnv, "")
		t.Setenv("XDG_DATA_HOME", "/xdg/data")
		dir, err := ResolveDataDir("")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("/xdg/data", "tasklist"), dir)
	})

	t.Run("home fallback", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv(DataDirEnv, "")
		t.Setenv("XDG_DATA_HOME", "")
		t.Setenv("HOME", home)
		dir, err := ResolveDataDir("")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".local", "share", "tasklist"), dir)
	})
}

func TestNew_DefaultJSONBackend(t *testing.T) {
	isolateConfig(t)
	dataDir := t.TempDir()

	c, err := New(dataDir)
	require.NoError(t, err)
	defer func() { _ = c.Close() }()

	assert.Equal(t, domain.SlotFilePath(dataDir, domain.DefaultSlotKey), c.Config.SlotPath)
	assert.Equal(t, view.SortDueDateAsc, c.DefaultSort())

	_, err = c.NewTaskUseCase().Execute(context.Background(), usecase.NewTaskInput{
		Title:    "Buy milk",
		Priority: "High",
		DueDate:  "2024-05-01",
		Category: "Home",
	})
	require.NoError(t, err)

	data, err := os.ReadFile(c.Config.SlotPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"title":"Buy milk"`)
}

func TestNew_ReloadsPersistedTasks(t *testing.T) {
	isolateConfig(t)
	dataDir := t.TempDir()

	first, err := New(dataDir)
	require.NoError(t, err)
	_, err = first.NewTaskUseCase().Execute(context.Background(), usecase.NewTaskInput{
		Title: "Pay rent", Priority: "Medium", DueDate: "2024-05-03", Category: "Home",
	})
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := New(dataDir)
	require.NoError(t, err)
	defer func() { _ = second.Close() }()

	tasks := second.Tasks.List()
	require.Len(t, tasks, 1)
	assert.Equal(t, "Pay rent", tasks[0].Title)
}

func TestNew_SQLiteBackend(t *testing.T) {
	isolateConfig(t)
	dataDir := t.TempDir()
	cfg := "[store]\nbackend = \"sqlite\"\nkey = \"work\"\n\n[view]\nsort = \"title-desc\"\n"
	require.NoError(t, os.WriteFile(domain.ConfigPath(dataDir), []byte(cfg), 0o600))

	c, err := New(dataDir)
	require.NoError(t, err)

	assert.Equal(t, domain.SQLitePath(dataDir), c.Config.SlotPath)
	assert.Equal(t, view.SortTitleDesc, c.DefaultSort())

	_, err = c.NewTaskUseCase().Execute(context.Background(), usecase.NewTaskInput{
		Title: "Write report", Priority: "Low", DueDate: "2024-04-28", Category: "Work",
	})
	require.NoError(t, err)
	require.NoError(t, c.Close())

	reopened, err := New(dataDir)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()
	assert.Len(t, reopened.Tasks.List(), 1)
}

func TestNew_RelativeStorePath(t *testing.T) {
	isolateConfig(t)
	dataDir := t.TempDir()
	cfg := "[store]\npath = \"custom/tasks.json\"\n"
	require.NoError(t, os.WriteFile(domain.ConfigPath(dataDir), []byte(cfg), 0o600))

	c, err := New(dataDir)
	require.NoError(t, err)
	defer func() { _ = c.Close() }()

	assert.Equal(t, filepath.Join(dataDir, "custom", "tasks.json"), c.Config.SlotPath)
}

func TestNew_UnknownBackend(t *testing.T) {
	isolateConfig(t)
	dataDir := t.TempDir()
	cfg := "[store]\nbackend = \"redis\"\n"
	require.NoError(t, os.WriteFile(domain.ConfigPath(dataDir), []byte(cfg), 0o600))

	_, err := New(dataDir)

	assert.ErrorIs(t, err, domain.ErrUnknownBackend)
}

func TestNew_InvalidConfigFallsBackToDefaults(t *testing.T) {
	isolateConfig(t)
	dataDir := t.TempDir()
	require.NoError(t, os.WriteFile(domain.ConfigPath(dataDir), []byte("[store"), 0o600))

	c, err := New(dataDir)
	require.NoError(t, err)
	defer func() { _ = c.Close() }()

	assert.Equal(t, domain.BackendJSON, c.AppConfig.Store.Backend)
	require.Len(t, c.AppConfig.Warnings, 1)
	assert.Contains(t, c.AppConfig.Warnings[0], "config ignored")
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Equal(t, BackendJSON, cfg.Store.Backend)
	assert.Equal(t, "tasks_v1", cfg.Store.Key)
	assert.Empty(t, cfg.Store.Path)
	assert.Equal(t, "dueDate-asc", cfg.View.Sort)
	assert.Equal(t, "pt-BR", cfg.View.Locale)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Warnings)
}

func TestRenderConfigTemplate(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Store.Backend = BackendSQLite
	cfg.Log.Level = "debug"

	out := RenderConfigTemplate(cfg)

	assert.Contains(t, out, "[store]")
	assert.Contains(t, out, `backend = "sqlite"`)
	assert.Contains(t, out, `key = "tasks_v1"`)
	assert.Contains(t, out, `sort = "dueDate-asc"`)
	assert.Contains(t, out, `locale = "pt-BR"`)
	assert.Contains(t, out, `level = "debug"`)
}

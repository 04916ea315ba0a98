package extension

import (
	"context"
	"fmt"
	"sync"

	"github.com/milindvishnoi/FSND/config"
	"github.com/milindvishnoi/FSND/data"
	"github.com/milindvishnoi/FSND/extension/registry"
	"github.com/milindvishnoi/FSND/extension/types"
	"github.com/milindvishnoi/FSND/logging/logger"

	"github.com/gin-gonic/gin"
)

// Manager loads the configured modules and drives their lifecycle
type Manager struct {
	conf        *config.Config
	data        *data.Data
	log         *logger.Logger
	mu          sync.RWMutex
	modules     []types.Interface
	initialized bool
}

// NewManager creates a module manager over an open data layer
func NewManager(conf *config.Config, d *data.Data, l *logger.Logger) *Manager {
	if l == nil {
		l = logger.StdLogger()
	}
	return &Manager{conf: conf, data: d, log: l}
}

// InitExtensions resolves conf.Modules from the registry and initializes them
// in order. Any failure aborts startup.
func (m *Manager) InitExtensions(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return fmt.Errorf("extensions already initialized")
	}

	modules, err := registry.Select(m.conf.Modules)
	if err != nil {
		return err
	}

	deps := &types.Deps{Config: m.conf, Data: m.data, Logger: m.log}
	for _, mod := range modules {
		if err := mod.Init(deps); err != nil {
			m.log.Errorf(ctx, "failed to initialize module %s: %v", mod.Name(), err)
			return fmt.Errorf("init %s: %w", mod.Name(), err)
		}
		m.log.Info(ctx, "module initialized", "module", mod.Name(), "version", mod.Version())
	}

	m.modules = modules
	m.initialized = true
	return nil
}

// Migrate creates the tables of every loaded module.
func (m *Manager) Migrate(ctx context.Context) error {
	for _, mod := range m.GetExtensions() {
		if err := m.data.Migrate(ctx, mod.Tables()...); err != nil {
			return fmt.Errorf("migrate %s: %w", mod.Name(), err)
		}
		m.log.Info(ctx, "module migrated", "module", mod.Name(), "tables", len(mod.Tables()))
	}
	return nil
}

// Seed inserts sample data for every loaded module.
func (m *Manager) Seed(ctx context.Context) error {
	for _, mod := range m.GetExtensions() {
		if err := mod.Seed(ctx); err != nil {
			return fmt.Errorf("seed %s: %w", mod.Name(), err)
		}
		m.log.Info(ctx, "module seeded", "module", mod.Name())
	}
	return nil
}

// RegisterRoutes mounts the routes of every loaded module
func (m *Manager) RegisterRoutes(router *gin.Engine) {
	for _, mod := range m.GetExtensions() {
		mod.RegisterRoutes(router)
	}
}

// GetExtension returns a specific module
func (m *Manager) GetExtension(name string) (types.Interface, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, mod := range m.modules {
		if mod.Name() == name {
			return mod, nil
		}
	}
	return nil, fmt.Errorf("extension %s not found", name)
}

// GetExtensions returns the loaded modules in initialization order
func (m *Manager) GetExtensions() []types.Interface {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return append([]types.Interface(nil), m.modules...)
}

// GetMetadata returns the metadata of the loaded modules
func (m *Manager) GetMetadata() []types.Metadata {
	mods := m.GetExtensions()
	out := make([]types.Metadata, 0, len(mods))
	for _, mod := range mods {
		out = append(out, mod.GetMetadata())
	}
	return out
}

// Cleanup cleans up all loaded modules in reverse order
func (m *Manager) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := len(m.modules) - 1; i >= 0; i-- {
		mod := m.modules[i]
		if err := mod.Cleanup(); err != nil {
			m.log.Errorf(context.Background(), "failed to cleanup module %s: %v", mod.Name(), err)
		}
	}
	m.modules = nil
	m.initialized = false
}

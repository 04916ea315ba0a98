// Package fyyur defines the venue and artist booking module.
package fyyur

import (
	"context"

	"github.com/milindvishnoi/FSND/extension/registry"
	"github.com/milindvishnoi/FSND/extension/types"
	"github.com/milindvishnoi/FSND/internal/fyyur/data/repository"
	"github.com/milindvishnoi/FSND/internal/fyyur/handler"
	"github.com/milindvishnoi/FSND/internal/fyyur/service"
	"github.com/milindvishnoi/FSND/logging/logger"

	"entgo.io/ent/dialect/sql/schema"
	"github.com/gin-gonic/gin"
)

func init() {
	registry.Register(New())
}

// Module represents the fyyur module.
type Module struct {
	logger  *logger.Logger
	service *service.Service
	handler *handler.Handler
}

// New creates a new fyyur module instance.
func New() types.Interface {
	return &Module{}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "fyyur"
}

// Version returns the module version.
func (m *Module) Version() string {
	return "1.0.0"
}

// GetMetadata returns module metadata.
func (m *Module) GetMetadata() types.Metadata {
	return types.Metadata{
		Name:        m.Name(),
		Version:     m.Version(),
		Description: "Venue, artist and show booking site",
	}
}

// Init initializes the module.
func (m *Module) Init(deps *types.Deps) error {
	m.logger = deps.Logger

	var opts []service.Option
	if p := deps.Config.Paging; p != nil {
		opts = append(opts, service.WithPageSize(p.PageSize, p.MaxPageSize))
	}
	m.service = service.New(deps.Data, m.logger, opts...)

	h, err := handler.New(m.service, m.logger)
	if err != nil {
		return err
	}
	m.handler = h
	return nil
}

// Tables returns the venue, artist and show tables.
func (m *Module) Tables() []*schema.Table {
	return repository.Tables()
}

// Seed inserts sample venues, artists and shows.
func (m *Module) Seed(ctx context.Context) error {
	return m.service.Seed(ctx)
}

// RegisterRoutes registers HTTP routes.
func (m *Module) RegisterRoutes(r *gin.Engine) {
	m.handler.RegisterRoutes(r)
}

// Cleanup performs cleanup.
func (m *Module) Cleanup() error {
	return nil
}

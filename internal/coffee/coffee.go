// Package coffee defines the coffee shop menu module.
package coffee

import (
	"context"

	"github.com/milindvishnoi/FSND/extension/registry"
	"github.com/milindvishnoi/FSND/extension/types"
	"github.com/milindvishnoi/FSND/internal/coffee/data/repository"
	"github.com/milindvishnoi/FSND/internal/coffee/handler"
	"github.com/milindvishnoi/FSND/internal/coffee/service"
	"github.com/milindvishnoi/FSND/logging/logger"
	"github.com/milindvishnoi/FSND/security/jwt"

	"entgo.io/ent/dialect/sql/schema"
	"github.com/gin-gonic/gin"
)

func init() {
	registry.Register(New())
}

// Module represents the coffee module.
type Module struct {
	logger  *logger.Logger
	service *service.DrinkService
	handler *handler.DrinkHandler
}

// New creates a new coffee module instance.
func New() types.Interface {
	return &Module{}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "coffee"
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
		Description: "Coffee shop menu with permission based access",
	}
}

// Init initializes the module.
func (m *Module) Init(deps *types.Deps) error {
	m.logger = deps.Logger
	conf := deps.Config

	var pageSize, maxSize int
	if conf.Paging != nil {
		pageSize, maxSize = conf.Paging.PageSize, conf.Paging.MaxPageSize
	}

	var tm *jwt.TokenManager
	if conf.Auth != nil && conf.Auth.JWT != nil {
		tm = jwt.NewTokenManager(conf.Auth.JWT.Secret,
			jwt.WithIssuer(conf.Auth.JWT.Issuer),
			jwt.WithAudience(conf.Auth.JWT.Audience),
		)
		if conf.Auth.JWT.Secret == "" {
			m.logger.Warn(context.Background(), "auth.jwt.secret is empty, protected drink routes will reject every token")
		}
	} else {
		tm = jwt.NewTokenManager("")
	}

	m.service = service.NewDrinkService(deps.Data, pageSize, maxSize, m.logger)
	m.handler = handler.NewDrinkHandler(m.service, tm, m.logger)
	return nil
}

// Tables returns the drinks table.
func (m *Module) Tables() []*schema.Table {
	return repository.Tables()
}

// Seed adds a starter menu.
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

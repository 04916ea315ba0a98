// Package trivia defines the trivia question and quiz module.
package trivia

import (
	"context"
	"time"

	"github.com/milindvishnoi/FSND/extension/registry"
	"github.com/milindvishnoi/FSND/extension/types"
	"github.com/milindvishnoi/FSND/internal/trivia/data/repository"
	"github.com/milindvishnoi/FSND/internal/trivia/data/session"
	"github.com/milindvishnoi/FSND/internal/trivia/handler"
	"github.com/milindvishnoi/FSND/internal/trivia/service"
	"github.com/milindvishnoi/FSND/logging/logger"

	"entgo.io/ent/dialect/sql/schema"
	"github.com/gin-gonic/gin"
)

func init() {
	registry.Register(New())
}

// Module represents the trivia module.
type Module struct {
	logger  *logger.Logger
	service *service.Service
	handler *handler.Handler
}

// New creates a new trivia module instance.
func New() types.Interface {
	return &Module{}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "trivia"
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
		Description: "Trivia questions and quizzes",
	}
}

// Init wires the session store, service and handler. Quiz sessions live in
// redis when it is configured and in process memory otherwise.
func (m *Module) Init(deps *types.Deps) error {
	m.logger = deps.Logger

	var ttl time.Duration
	if deps.Config.Data != nil && deps.Config.Data.Redis != nil {
		ttl = deps.Config.Data.Redis.SessionTTL
	}

	var store session.Store
	if rc := deps.Data.Redis(); rc != nil {
		store = session.NewRedisStore(rc, ttl)
	} else {
		store = session.NewMemoryStore(ttl)
	}

	var opts []service.Option
	if p := deps.Config.Paging; p != nil {
		opts = append(opts, service.WithPageSize(p.PageSize, p.MaxPageSize))
	}

	m.service = service.New(deps.Data, store, m.logger, opts...)
	m.handler = handler.New(m.service, m.logger)

	m.logger.Info(context.Background(), "trivia module initialized", "module", m.Name(), "redis_sessions", deps.Data.Redis() != nil)
	return nil
}

// Tables returns the category and question tables.
func (m *Module) Tables() []*schema.Table {
	return repository.Tables()
}

// Seed inserts sample categories and questions.
func (m *Module) Seed(ctx context.Context) error {
	return m.service.Seed(ctx)
}

// RegisterRoutes registers HTTP routes.
func (m *Module) RegisterRoutes(r *gin.Engine) {
	m.handler.RegisterRoutes(r)
}

// Cleanup performs cleanup.
func (m *Module) Cleanup() error {
	m.logger.Info(context.Background(), "trivia module cleanup", "module", m.Name())
	return nil
}

package types

import (
	"context"

	"github.com/milindvishnoi/FSND/config"
	"github.com/milindvishnoi/FSND/data"
	"github.com/milindvishnoi/FSND/logging/logger"

	"entgo.io/ent/dialect/sql/schema"
	"github.com/gin-gonic/gin"
)

// Deps are the shared resources handed to every module on Init
type Deps struct {
	Config *config.Config
	Data   *data.Data
	Logger *logger.Logger
}

// Metadata describes a module
type Metadata struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description"`
}

// Interface defines the core structure for a module
type Interface interface {
	Name() string
	Version() string
	GetMetadata() Metadata

	// Init wires repositories, services and handlers.
	Init(deps *Deps) error

	// Tables lists the schema tables the module owns, for migration.
	Tables() []*schema.Table

	// Seed inserts sample rows. It must be safe to call on a populated database.
	Seed(ctx context.Context) error

	// RegisterRoutes mounts the module's HTTP routes.
	RegisterRoutes(r *gin.Engine)

	Cleanup() error
}

// Package datatest opens throwaway in-memory SQLite data layers for tests.
package datatest

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/milindvishnoi/FSND/data"
	"github.com/milindvishnoi/FSND/data/config"
	_ "github.com/milindvishnoi/FSND/data/sqlite"

	"entgo.io/ent/dialect/sql/schema"
	"github.com/stretchr/testify/require"
)

// Source returns a shared-cache in-memory DSN unique to the test.
func Source(t testing.TB) string {
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	return fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", name)
}

// Config returns a data config pointing at an in-memory database.
func Config(t testing.TB) *config.Config {
	return &config.Config{
		Database: &config.Database{
			Master: &config.DBNode{Driver: "sqlite", Source: Source(t)},
		},
		Redis: &config.Redis{},
	}
}

// New opens the data layer, migrates tables and closes it when the test ends.
func New(t testing.TB, tables ...*schema.Table) *data.Data {
	t.Helper()

	d, cleanup, err := data.New(context.Background(), Config(t))
	require.NoError(t, err)
	t.Cleanup(cleanup)

	require.NoError(t, d.Migrate(context.Background(), tables...))
	return d
}

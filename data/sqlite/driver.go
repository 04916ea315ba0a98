// Package sqlite registers a SQLite database driver backed by mattn/go-sqlite3.
//
//	import _ "github.com/milindvishnoi/FSND/data/sqlite"
//
// Foreign keys are only enforced when the source enables them, e.g.
// "file:fsnd.db?cache=shared&_fk=1". Schema migration refuses to run otherwise.
package sqlite

import (
	"context"

	"github.com/milindvishnoi/FSND/data"

	"entgo.io/ent/dialect"
	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

const name = "sqlite"

type driver struct{}

func (d *driver) Name() string    { return name }
func (d *driver) Dialect() string { return dialect.SQLite }

// Connect opens the database. One open connection keeps writes serialized.
func (d *driver) Connect(ctx context.Context, cfg any) (any, error) {
	return data.OpenSQL(ctx, name, "sqlite3", cfg, data.Pool{MaxIdleConn: 2, MaxOpenConn: 1})
}

func (d *driver) Close(conn any) error {
	return data.CloseSQL(name, conn)
}

func (d *driver) Ping(ctx context.Context, conn any) error {
	return data.PingSQL(ctx, name, conn)
}

func init() {
	data.RegisterDatabaseDriver(&driver{})
}

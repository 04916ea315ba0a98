package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/milindvishnoi/FSND/data/config"

	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/schema"
	"github.com/redis/go-redis/v9"
)

// ErrNotFound is returned by repositories when a row does not exist.
var ErrNotFound = errors.New("data: record not found")

// ErrClosed is returned once the data layer has been closed.
var ErrClosed = errors.New("data: data layer is closed")

// Data represents the data layer implementation
type Data struct {
	mu      sync.RWMutex
	db      *sql.DB
	ent     *entsql.Driver
	dialect string

	dbDriver    DatabaseDriver
	cacheDriver CacheDriver
	redis       *redis.Client

	closed bool
}

// New opens the configured master database and, when an address is set,
// the redis cache. The returned cleanup closes both.
func New(ctx context.Context, cfg *config.Config) (*Data, func(), error) {
	if cfg == nil || cfg.Database == nil || cfg.Database.Master == nil {
		return nil, nil, errors.New("data: database master node is not configured")
	}

	dbDriver, err := GetDatabaseDriver(cfg.Database.Master.Driver)
	if err != nil {
		return nil, nil, err
	}
	conn, err := dbDriver.Connect(ctx, cfg.Database.Master)
	if err != nil {
		return nil, nil, err
	}
	db, ok := conn.(*sql.DB)
	if !ok {
		_ = dbDriver.Close(conn)
		return nil, nil, fmt.Errorf("data: driver %s returned %T, expected *sql.DB", dbDriver.Name(), conn)
	}

	d := NewWithDB(db, dbDriver.Dialect())
	d.dbDriver = dbDriver

	if cfg.Redis.Enabled() {
		cacheDriver, err := GetCacheDriver("redis")
		if err != nil {
			d.Close()
			return nil, nil, err
		}
		rc, err := cacheDriver.Connect(ctx, cfg.Redis)
		if err != nil {
			d.Close()
			return nil, nil, err
		}
		d.cacheDriver = cacheDriver
		d.redis, _ = rc.(*redis.Client)
	}

	cleanup := func() {
		if errs := d.Close(); len(errs) > 0 {
			fmt.Printf("cleanup errors: %v\n", errs)
		}
	}
	return d, cleanup, nil
}

// NewWithDB wraps an already opened database, mostly for tests.
func NewWithDB(db *sql.DB, dialect string) *Data {
	return &Data{
		db:      db,
		ent:     entsql.OpenDB(dialect, db),
		dialect: dialect,
	}
}

// DB returns the underlying connection pool
func (d *Data) DB() *sql.DB {
	return d.db
}

// Dialect returns the ent dialect name
func (d *Data) Dialect() string {
	return d.dialect
}

// Builder returns an ent SQL builder for the active dialect.
func (d *Data) Builder() *entsql.DialectBuilder {
	return entsql.Dialect(d.dialect)
}

// Redis returns the redis client, or nil when redis is not configured.
func (d *Data) Redis() *redis.Client {
	return d.redis
}

// SetRedis attaches an existing client, used by tests running miniredis.
func (d *Data) SetRedis(rc *redis.Client) {
	d.redis = rc
}

// Query runs a select built with the ent SQL builder. The caller must close rows.
func (d *Data) Query(ctx context.Context, q entsql.Querier) (*entsql.Rows, error) {
	conn, err := d.conn(ctx)
	if err != nil {
		return nil, err
	}
	query, args := q.Query()
	rows := &entsql.Rows{}
	if err := conn.Query(ctx, query, args, rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// Exec runs an insert, update or delete built with the ent SQL builder.
func (d *Data) Exec(ctx context.Context, q entsql.Querier) (sql.Result, error) {
	conn, err := d.conn(ctx)
	if err != nil {
		return nil, err
	}
	query, args := q.Query()
	var res sql.Result
	if err := conn.Exec(ctx, query, args, &res); err != nil {
		return nil, err
	}
	return res, nil
}

// Count runs a COUNT(*) selector and returns its single value.
func (d *Data) Count(ctx context.Context, q *entsql.Selector) (int, error) {
	rows, err := d.Query(ctx, q)
	if err != nil {
		return 0, err
	}
	defer rows.Close()
	return entsql.ScanInt(rows)
}

// InsertID runs an insert ending in RETURNING id and returns the new id.
func (d *Data) InsertID(ctx context.Context, q *entsql.InsertBuilder) (int, error) {
	rows, err := d.Query(ctx, q.Returning("id"))
	if err != nil {
		return 0, err
	}
	defer rows.Close()
	return entsql.ScanInt(rows)
}

// Migrate creates or alters the given tables.
func (d *Data) Migrate(ctx context.Context, tables ...*schema.Table) error {
	if len(tables) == 0 {
		return nil
	}
	m, err := schema.NewMigrate(d.ent)
	if err != nil {
		return fmt.Errorf("data: failed to create migrator: %w", err)
	}
	if err := m.Create(ctx, tables...); err != nil {
		return fmt.Errorf("data: failed to migrate: %w", err)
	}
	return nil
}

// Ping checks the database and, if configured, redis.
func (d *Data) Ping(ctx context.Context) error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return ErrClosed
	}

	if err := d.db.PingContext(ctx); err != nil {
		return fmt.Errorf("data: database ping failed: %w", err)
	}
	if d.redis != nil {
		if err := d.redis.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("data: redis ping failed: %w", err)
		}
	}
	return nil
}

// Close closes all connections. It is safe to call more than once.
func (d *Data) Close() (errs []error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil
	}
	d.closed = true

	if d.redis != nil {
		var err error
		if d.cacheDriver != nil {
			err = d.cacheDriver.Close(d.redis)
		} else {
			err = d.redis.Close()
		}
		if err != nil {
			errs = append(errs, err)
		}
	}

	var err error
	if d.dbDriver != nil {
		err = d.dbDriver.Close(d.db)
	} else {
		err = d.db.Close()
	}
	if err != nil {
		errs = append(errs, err)
	}
	return errs
}

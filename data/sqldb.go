package data

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/milindvishnoi/FSND/data/config"
)

// Pool holds connection pool fallbacks applied when a DBNode leaves them unset.
type Pool struct {
	MaxIdleConn int
	MaxOpenConn int
}

// OpenSQL opens a database/sql pool for a DBNode and verifies it with a ping.
// Drivers use it from Connect.
func OpenSQL(ctx context.Context, name, sqlDriver string, cfg any, fallback Pool) (*sql.DB, error) {
	node, ok := cfg.(*config.DBNode)
	if !ok {
		return nil, fmt.Errorf("%s: invalid configuration type, expected *config.DBNode", name)
	}
	if node.Source == "" {
		return nil, fmt.Errorf("%s: connection source is empty", name)
	}

	db, err := sql.Open(sqlDriver, node.Source)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to open connection: %w", name, err)
	}

	idle, open := node.MaxIdleConn, node.MaxOpenConn
	if idle <= 0 {
		idle = fallback.MaxIdleConn
	}
	if open <= 0 {
		open = fallback.MaxOpenConn
	}
	if idle > 0 {
		db.SetMaxIdleConns(idle)
	}
	if open > 0 {
		db.SetMaxOpenConns(open)
	}
	if node.ConnMaxLifeTime > 0 {
		db.SetConnMaxLifetime(node.ConnMaxLifeTime)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: failed to ping database: %w", name, err)
	}
	return db, nil
}

// CloseSQL closes a connection returned by OpenSQL.
func CloseSQL(name string, conn any) error {
	db, ok := conn.(*sql.DB)
	if !ok {
		return fmt.Errorf("%s: invalid connection type, expected *sql.DB", name)
	}
	if err := db.Close(); err != nil {
		return fmt.Errorf("%s: failed to close connection: %w", name, err)
	}
	return nil
}

// PingSQL pings a connection returned by OpenSQL.
func PingSQL(ctx context.Context, name string, conn any) error {
	db, ok := conn.(*sql.DB)
	if !ok {
		return fmt.Errorf("%s: invalid connection type, expected *sql.DB", name)
	}
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("%s: ping failed: %w", name, err)
	}
	return nil
}

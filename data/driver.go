package data

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Drivers register themselves from init(), following database/sql, and are
// looked up by the name given in configuration:
//
//	import _ "github.com/milindvishnoi/FSND/data/sqlite"

// DatabaseDriver opens relational connections for the SQL builder.
type DatabaseDriver interface {
	// Name is the configuration key, e.g. "sqlite" or "postgres"
	Name() string
	// Dialect is the ent dialect the builder renders for
	Dialect() string
	Connect(ctx context.Context, cfg any) (any, error)
	Close(conn any) error
	Ping(ctx context.Context, conn any) error
}

// CacheDriver opens key-value connections, used for quiz sessions.
type CacheDriver interface {
	Name() string
	Connect(ctx context.Context, cfg any) (any, error)
	Close(conn any) error
	Ping(ctx context.Context, conn any) error
}

type named interface {
	comparable
	Name() string
}

// registry is a name-keyed driver table of one kind
type registry[D named] struct {
	kind    string
	mu      sync.RWMutex
	drivers map[string]D
}

func newRegistry[D named](kind string) *registry[D] {
	return &registry[D]{kind: kind, drivers: make(map[string]D)}
}

func (r *registry[D]) register(d D) {
	var zero D
	if d == zero {
		panic(fmt.Sprintf("data: %s driver is nil", r.kind))
	}
	name := d.Name()
	if name == "" {
		panic(fmt.Sprintf("data: %s driver name is empty", r.kind))
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.drivers[name]; exists {
		panic(fmt.Sprintf("data: %s driver %s registered twice", r.kind, name))
	}
	r.drivers[name] = d
}

func (r *registry[D]) get(name string) (D, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.drivers[name]
	if !ok {
		return d, fmt.Errorf(
			"data: %s driver %q not registered\n\n"+
				"Did you forget to import the driver package?\n"+
				"    _ \"github.com/milindvishnoi/FSND/data/%s\"\n\n"+
				"Available drivers: %v",
			r.kind, name, name, r.namesLocked(),
		)
	}
	return d, nil
}

func (r *registry[D]) namesLocked() []string {
	names := make([]string, 0, len(r.drivers))
	for name := range r.drivers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var (
	databaseDrivers = newRegistry[DatabaseDriver]("database")
	cacheDrivers    = newRegistry[CacheDriver]("cache")
)

// RegisterDatabaseDriver makes a database driver available by its name. It
// panics on a nil driver, an empty name or a duplicate.
func RegisterDatabaseDriver(driver DatabaseDriver) {
	databaseDrivers.register(driver)
}

// RegisterCacheDriver makes a cache driver available by its name.
func RegisterCacheDriver(driver CacheDriver) {
	cacheDrivers.register(driver)
}

// GetDatabaseDriver returns a registered database driver.
func GetDatabaseDriver(name string) (DatabaseDriver, error) {
	return databaseDrivers.get(name)
}

// GetCacheDriver returns a registered cache driver.
func GetCacheDriver(name string) (CacheDriver, error) {
	return cacheDrivers.get(name)
}

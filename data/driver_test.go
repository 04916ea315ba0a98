package data

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockDatabaseDriver struct {
	name string
}

func (d *mockDatabaseDriver) Name() string    { return d.name }
func (d *mockDatabaseDriver) Dialect() string { return "sqlite3" }
func (d *mockDatabaseDriver) Connect(ctx context.Context, cfg any) (any, error) {
	return "mock-connection", nil
}
func (d *mockDatabaseDriver) Close(conn any) error                     { return nil }
func (d *mockDatabaseDriver) Ping(ctx context.Context, conn any) error { return nil }

type mockCacheDriver struct {
	name string
}

func (d *mockCacheDriver) Name() string                                      { return d.name }
func (d *mockCacheDriver) Connect(ctx context.Context, cfg any) (any, error) { return nil, nil }
func (d *mockCacheDriver) Close(conn any) error                              { return nil }
func (d *mockCacheDriver) Ping(ctx context.Context, conn any) error          { return nil }

func TestRegisterDatabaseDriver(t *testing.T) {
	RegisterDatabaseDriver(&mockDatabaseDriver{name: "mock-register"})

	retrieved, err := GetDatabaseDriver("mock-register")
	require.NoError(t, err)
	assert.Equal(t, "mock-register", retrieved.Name())
}

func TestRegisterDatabaseDriverPanics(t *testing.T) {
	assert.Panics(t, func() { RegisterDatabaseDriver(nil) })
	assert.Panics(t, func() { RegisterDatabaseDriver(&mockDatabaseDriver{}) })

	RegisterDatabaseDriver(&mockDatabaseDriver{name: "mock-duplicate"})
	assert.Panics(t, func() { RegisterDatabaseDriver(&mockDatabaseDriver{name: "mock-duplicate"}) })
}

func TestRegisterCacheDriverPanicsOnDuplicate(t *testing.T) {
	RegisterCacheDriver(&mockCacheDriver{name: "mock-cache"})
	assert.Panics(t, func() { RegisterCacheDriver(&mockCacheDriver{name: "mock-cache"}) })
}

func TestGetDatabaseDriverNotFound(t *testing.T) {
	_, err := GetDatabaseDriver("nonexistent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Did you forget to import the driver package?")
	assert.Contains(t, err.Error(), "data/nonexistent")
}

func TestGetCacheDriverNotFound(t *testing.T) {
	_, err := GetCacheDriver("memcached")
	assert.Error(t, err)
}

func TestGetDatabaseDriverNotFound_ListsAvailable(t *testing.T) {
	RegisterDatabaseDriver(&mockDatabaseDriver{name: "mock-list-a"})
	RegisterDatabaseDriver(&mockDatabaseDriver{name: "mock-list-b"})

	_, err := GetDatabaseDriver("mock-list-c")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mock-list-a mock-list-b")
}

func TestDriverConcurrentAccess(t *testing.T) {
	RegisterDatabaseDriver(&mockDatabaseDriver{name: "mock-concurrent"})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := GetDatabaseDriver("mock-concurrent")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
}

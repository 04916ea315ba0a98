// Package redis registers the go-redis cache driver that backs quiz sessions.
//
//	import _ "github.com/milindvishnoi/FSND/data/redis"
package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/milindvishnoi/FSND/data"
	"github.com/milindvishnoi/FSND/data/config"

	"github.com/redis/go-redis/v9"
)

var (
	errConfig = errors.New("redis: expected *config.Redis")
	errConn   = errors.New("redis: expected *redis.Client")
)

type driver struct{}

func init() {
	data.RegisterCacheDriver(&driver{})
}

func (driver) Name() string { return "redis" }

// Options maps the data config onto client options.
func Options(cfg *config.Redis) *redis.Options {
	return &redis.Options{
		Addr:         cfg.Addr,
		Username:     cfg.Username,
		Password:     cfg.Password,
		DB:           cfg.Db,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		DialTimeout:  cfg.DialTimeout,
	}
}

func (d driver) Connect(ctx context.Context, cfg any) (any, error) {
	rc, ok := cfg.(*config.Redis)
	if !ok {
		return nil, errConfig
	}
	if rc.Addr == "" {
		return nil, errors.New("redis: address is empty")
	}

	client := redis.NewClient(Options(rc))
	if err := d.Ping(ctx, client); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

func (driver) Close(conn any) error {
	client, ok := conn.(*redis.Client)
	if !ok {
		return errConn
	}
	if err := client.Close(); err != nil {
		return fmt.Errorf("redis: close: %w", err)
	}
	return nil
}

func (driver) Ping(ctx context.Context, conn any) error {
	client, ok := conn.(*redis.Client)
	if !ok {
		return errConn
	}
	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis: ping: %w", err)
	}
	return nil
}

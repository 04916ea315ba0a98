package data

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect"
)

type txKey struct{}

// conn returns the transaction bound to ctx, or the shared driver.
func (d *Data) conn(ctx context.Context) (dialect.ExecQuerier, error) {
	d.mu.RLock()
	closed := d.closed
	d.mu.RUnlock()
	if closed {
		return nil, ErrClosed
	}

	if tx, ok := ctx.Value(txKey{}).(dialect.Tx); ok {
		return tx, nil
	}
	return d.ent, nil
}

// WithTx wraps function within transaction. Nested calls join the outer one.
func (d *Data) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(dialect.Tx); ok {
		return fn(ctx)
	}

	d.mu.RLock()
	closed := d.closed
	d.mu.RUnlock()
	if closed {
		return ErrClosed
	}

	tx, err := d.ent.Tx(ctx)
	if err != nil {
		return err
	}

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("tx err: %v, rollback err: %v", err, rbErr)
		}
		return err
	}
	return tx.Commit()
}

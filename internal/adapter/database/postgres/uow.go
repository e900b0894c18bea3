package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"tdm/internal/core/port"
)

type txKey struct{}

type UnitOfWork struct {
	db *DB
}

func NewUnitOfWork(db *DB) port.UnitOfWork {
	return &UnitOfWork{db: db}
}

// Do runs fn inside a transaction stored in the context. A nested Do joins
// the transaction already in flight instead of opening a second one.
func (u *UnitOfWork) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return fn(ctx)
	}

	tx, err := u.db.Begin(ctx)

	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback transaction: %v (after: %w)", rbErr, err)
		}

		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/opshr/workforce-automation/internal/pkg/database"
)

type txKey struct{}

// ContextWithTx scopes subsequent repository calls to the given transaction.
func ContextWithTx(ctx context.Context, tx pgx.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// GetQuerier returns the transaction carried by the context, or the pool.
func GetQuerier(ctx context.Context, db *database.DB) database.Querier {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return db.Pool
}

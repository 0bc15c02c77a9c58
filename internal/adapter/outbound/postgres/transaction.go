package postgres

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/civicteams/server/internal/port/outbound"
)

// txContextKey is used to store the transaction in context.
type txContextKeyType struct{}

var txContextKey = txContextKeyType{}

// conn returns the transaction carried by ctx, or db when there is none.
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txContextKey).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}

// forUpdate locks the selected rows until the surrounding transaction ends.
func forUpdate(db *gorm.DB) *gorm.DB {
	return db.Clauses(clause.Locking{Strength: "UPDATE"})
}

// TransactionAdapter implements outbound.TransactionPort.
type TransactionAdapter struct {
	db *gorm.DB
}

// NewTransactionAdapter creates a new transaction adapter.
func NewTransactionAdapter(db *gorm.DB) *TransactionAdapter {
	return &TransactionAdapter{db: db}
}

// RunInTransaction runs fn in a transaction. A context that already carries
// a transaction joins it, and the outermost call commits or rolls back.
func (a *TransactionAdapter) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txContextKey).(*gorm.DB); ok {
		return fn(ctx)
	}
	return a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txContextKey, tx))
	})
}

var _ outbound.TransactionPort = (*TransactionAdapter)(nil)

package outbound

import "context"

// TransactionPort runs a unit of work atomically.
//
// The context passed to fn carries the transaction; ports called with it
// take part in the same unit of work. Calling RunInTransaction with a context
// that already carries a transaction joins it instead of starting a new one.
type TransactionPort interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

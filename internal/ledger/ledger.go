// Package ledger defines the transaction store consumed by every handler.
// Records live for the process lifetime only; backends differ in the engine,
// not in durability guarantees.
package ledger

import (
	"context"

	"grana/internal/core"
)

// Store is an ordered, mutable collection of transactions. Insertion order is
// preserved and is the basis for "most recent" queries. Implementations
// serialize access internally; callers never coordinate.
type Store interface {
	// Append stores the transaction, assigning a fresh unique id, and
	// returns the record as stored.
	Append(ctx context.Context, t core.Transaction) (core.Transaction, error)

	// Find returns the transaction with the given id (case-insensitive).
	Find(ctx context.Context, id string) (core.Transaction, bool, error)

	// Delete removes the transaction with the given id and returns it.
	// A missing id is a normal outcome, reported through ok, not an error.
	Delete(ctx context.Context, id string) (core.Transaction, bool, error)

	// Recent returns up to n transactions, most recently inserted first.
	Recent(ctx context.Context, n int) ([]core.Transaction, error)

	// Filter returns all transactions matching pred, insertion order kept.
	Filter(ctx context.Context, pred func(core.Transaction) bool) ([]core.Transaction, error)

	// Len reports how many transactions are stored.
	Len(ctx context.Context) (int, error)

	Close() error
}

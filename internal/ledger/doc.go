// Package ledger implements the reconciliation engine: it turns a group's
// append-only stream of transactions and settlements into net pairwise
// balances and a merged activity feed.
//
// Every function in this package is pure: it operates on an immutable snapshot
// of already-fetched records, holds no state, and is safe to call concurrently
// and repeatedly. Recomputing with the same inputs always yields the same
// outputs.
package ledger

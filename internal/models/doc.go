// Package models defines the core domain models for hisaab.
//
// Monetary amounts are int64 values in minor currency units (cents, paise).
// Floating point never touches money.
//
// Transactions and settlements form an append-only ledger: once recorded they
// are never mutated or deleted. Everything derived from them (NetBalance,
// ActivityEntry) is recomputed from the persisted records on every read, so
// derived state cannot go stale.
package models

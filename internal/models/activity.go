package models

// ActivityKind discriminates the two event types in a group's activity feed.
type ActivityKind string

const (
	ActivityTransaction ActivityKind = "TRANSACTION"
	ActivitySettlement  ActivityKind = "SETTLEMENT"
)

// ActivityEntry is a tagged union over Transaction and Settlement for feed
// display. Exactly one of Transaction and Settlement is non-nil, matching
// Kind.
type ActivityEntry struct {
	Kind        ActivityKind
	Transaction *Transaction
	Settlement  *Settlement
}

// CreatedAt returns the creation timestamp of the underlying event.
func (e ActivityEntry) CreatedAt() int64 {
	switch e.Kind {
	case ActivityTransaction:
		return e.Transaction.CreatedAt
	case ActivitySettlement:
		return e.Settlement.CreatedAt
	}
	return 0
}

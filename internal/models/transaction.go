package models

// Transaction represents one shared expense recorded in a group.
//
// The participant set is the "split among" list: everyone who owes a share of
// the amount, conceptually including the payer when the payer recovers their
// own share. Historical transactions may carry any participant set of size >= 1
// (members can join a group after a transaction was recorded), so readers must
// tolerate sets the creation-time validation would reject today.
type Transaction struct {
	// ID is the unique identifier for the transaction (UUID format).
	ID string

	// GroupID is the group this expense belongs to.
	GroupID string

	// Name is a short human-readable label ("Dinner", "Cab to airport").
	Name string

	// Amount is the full expense amount in minor currency units. Always >= 1.
	Amount int64

	// CreatorID is the user who recorded the transaction.
	CreatorID string

	// PayerID is the user who actually paid the bill.
	PayerID string

	// SplitEqually marks transactions whose amount is split across the whole
	// group. New members joining the group are retroactively added to the
	// participant set of these transactions.
	SplitEqually bool

	// ParticipantIDs is the ordered set of users the amount is split among.
	ParticipantIDs []string

	// CreatedAt is the Unix timestamp when the transaction was recorded.
	CreatedAt int64
}

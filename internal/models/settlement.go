package models

// Settlement represents a real-world payment between two group members that
// reduces a previously computed debt. It does not reference the transactions
// it settles: settlements net against the aggregate balance between the two
// parties, not against individual expenses.
type Settlement struct {
	// ID is the unique identifier for the settlement (UUID format).
	ID string

	// GroupID is the group this settlement belongs to.
	GroupID string

	// PaidFromID is the user who handed over the money (debtor settling up).
	PaidFromID string

	// ReceivedByID is the user who received the payment.
	ReceivedByID string

	// Amount is the payment amount in minor currency units. Always >= 1.
	Amount int64

	// CreatedAt is the Unix timestamp when the settlement was recorded.
	CreatedAt int64
}

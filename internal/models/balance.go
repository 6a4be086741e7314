package models

// NetBalance is the signed aggregate amount owed between a viewpoint user and
// one counterparty after all transactions and settlements are applied.
// Positive means the counterparty owes the viewpoint user; negative means the
// viewpoint user owes the counterparty. Zero balances are never surfaced.
//
// NetBalance is derived on every read, never persisted.
type NetBalance struct {
	// CounterpartyID is the other user in the pair.
	CounterpartyID string

	// Amount is the signed net amount in minor currency units.
	Amount int64
}

// NetSummary is the result of reconciling a group's ledger from one member's
// viewpoint.
type NetSummary struct {
	// Balances holds one entry per counterparty with a nonzero net amount.
	Balances []NetBalance

	// TotalExpenditure is the total economic cost attributable to the
	// viewpoint user before settlement adjustments: the full amount of every
	// transaction they paid for, plus their owed share of every transaction
	// someone else paid for.
	TotalExpenditure int64
}

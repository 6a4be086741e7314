package ledger

import "github.com/hisaab/hisaab/internal/models"

// Debt is one (debtor, creditor, amount) triple produced by splitting a
// transaction.
type Debt struct {
	DebtorID   string
	CreditorID string
	Amount     int64
}

// Share returns each participant's share of a transaction split n ways:
// amount/n rounded half-up. Shares are rounded independently, so n*Share may
// differ from the transaction amount by up to n/2 minor units in either
// direction. That drift is accepted behavior, not redistributed; determinism
// is the requirement, exact conservation is not.
func Share(amount int64, n int) int64 {
	if n <= 0 {
		return 0
	}
	d := int64(n)
	return (amount + d/2) / d
}

// SplitDebts converts one transaction into per-participant debts owed to the
// payer. The payer owes nothing to themself and is excluded even when present
// in the participant set; a payer who is the sole participant yields no debts
// (self-funded expense).
//
// Inputs are assumed valid (amount >= 1, at least one participant); validation
// happens at ingestion, not here.
func SplitDebts(t *models.Transaction) []Debt {
	n := len(t.ParticipantIDs)
	if n == 0 {
		return nil
	}

	share := Share(t.Amount, n)
	debts := make([]Debt, 0, n)
	for _, p := range t.ParticipantIDs {
		if p == t.PayerID {
			continue
		}
		debts = append(debts, Debt{
			DebtorID:   p,
			CreditorID: t.PayerID,
			Amount:     share,
		})
	}
	return debts
}

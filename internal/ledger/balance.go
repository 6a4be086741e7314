package ledger

import (
	"sort"

	"github.com/hisaab/hisaab/internal/models"
)

// NetDebts merges debt triples into one signed amount per counterparty from
// the viewpoint of selfID. Amounts where self is the creditor add, amounts
// where self is the debtor subtract; triples not involving self are ignored.
// Accumulation is plain integer addition, so the result is independent of
// input order.
//
// Zero entries are kept: a counterparty who both owes and is owed across
// different transactions must net to a single value before any filtering, and
// settlements may still move a zero balance.
func NetDebts(selfID string, debts []Debt) map[string]int64 {
	net := make(map[string]int64)
	for _, d := range debts {
		switch selfID {
		case d.CreditorID:
			net[d.DebtorID] += d.Amount
		case d.DebtorID:
			net[d.CreditorID] -= d.Amount
		}
	}
	return net
}

// Aggregate splits every transaction and nets the resulting debts against
// selfID, returning the per-counterparty balances together with self's total
// expenditure: the full amount of every transaction self paid for, plus
// self's own share of every transaction someone else paid for.
func Aggregate(selfID string, txns []*models.Transaction) (map[string]int64, int64) {
	var debts []Debt
	var expenditure int64

	for _, t := range txns {
		debts = append(debts, SplitDebts(t)...)

		if t.PayerID == selfID {
			expenditure += t.Amount
			continue
		}
		for _, p := range t.ParticipantIDs {
			if p == selfID {
				expenditure += Share(t.Amount, len(t.ParticipantIDs))
				break
			}
		}
	}

	return NetDebts(selfID, debts), expenditure
}

// sortedBalances converts a balance map into a deterministic slice, dropping
// zero entries.
func sortedBalances(net map[string]int64) []models.NetBalance {
	balances := make([]models.NetBalance, 0, len(net))
	for id, amount := range net {
		if amount == 0 {
			continue
		}
		balances = append(balances, models.NetBalance{CounterpartyID: id, Amount: amount})
	}
	sort.Slice(balances, func(i, j int) bool {
		return balances[i].CounterpartyID < balances[j].CounterpartyID
	})
	return balances
}

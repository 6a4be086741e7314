package ledger

import "github.com/hisaab/hisaab/internal/models"

// NetSettlementDeltas sums, per counterparty, the signed effect of every
// settlement touching selfID: a payment self made adds to the balance with
// that counterparty, a payment self received subtracts from it.
//
// The sign convention follows money: a debtor paying their creditor always
// moves the pair's balance toward zero. When self is owed (+) and the
// counterparty pays, the receivable shrinks; when self pays despite being
// owed, the payment is an advance and the receivable grows.
func NetSettlementDeltas(selfID string, settlements []*models.Settlement) map[string]int64 {
	deltas := make(map[string]int64)
	for _, s := range settlements {
		switch selfID {
		case s.PaidFromID:
			if s.ReceivedByID != selfID {
				deltas[s.ReceivedByID] += s.Amount
			}
		case s.ReceivedByID:
			deltas[s.PaidFromID] -= s.Amount
		}
	}
	return deltas
}

// ApplySettlements adjusts transaction-derived balances by the net settled
// amount with each counterparty and returns the adjusted map. The input map
// is not modified.
//
// A counterparty with settlements but no prior balance still appears if the
// net result is nonzero (an erroneous or advance payment); there is no
// clamping at zero, overpayment legitimately flips the sign.
func ApplySettlements(selfID string, net map[string]int64, settlements []*models.Settlement) map[string]int64 {
	adjusted := make(map[string]int64, len(net))
	for id, amount := range net {
		adjusted[id] = amount
	}
	for id, delta := range NetSettlementDeltas(selfID, settlements) {
		adjusted[id] += delta
	}
	return adjusted
}

// Reconcile runs the full pipeline for one viewpoint user: split every
// transaction, net the debts per counterparty, apply settlements, and drop
// the pairs that net to zero.
func Reconcile(selfID string, txns []*models.Transaction, settlements []*models.Settlement) models.NetSummary {
	net, expenditure := Aggregate(selfID, txns)
	settled := ApplySettlements(selfID, net, settlements)
	return models.NetSummary{
		Balances:         sortedBalances(settled),
		TotalExpenditure: expenditure,
	}
}

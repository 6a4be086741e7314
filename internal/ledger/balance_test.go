package ledger

import (
	"math/rand"
	"testing"

	"github.com/hisaab/hisaab/internal/models"
)

func TestNetDebts(t *testing.T) {
	tests := []struct {
		name  string
		self  string
		debts []Debt
		want  map[string]int64
	}{
		{
			name: "credits accumulate per counterparty",
			self: "alice",
			debts: []Debt{
				{DebtorID: "bob", CreditorID: "alice", Amount: 100},
				{DebtorID: "bob", CreditorID: "alice", Amount: 50},
				{DebtorID: "carol", CreditorID: "alice", Amount: 70},
			},
			want: map[string]int64{"bob": 150, "carol": 70},
		},
		{
			name: "cross-direction debts net to one signed value",
			self: "alice",
			debts: []Debt{
				{DebtorID: "bob", CreditorID: "alice", Amount: 100},
				{DebtorID: "alice", CreditorID: "bob", Amount: 160},
			},
			want: map[string]int64{"bob": -60},
		},
		{
			name: "mutual debts canceling exactly stay as zero entry",
			self: "alice",
			debts: []Debt{
				{DebtorID: "bob", CreditorID: "alice", Amount: 80},
				{DebtorID: "alice", CreditorID: "bob", Amount: 80},
			},
			want: map[string]int64{"bob": 0},
		},
		{
			name: "triples not involving self are ignored",
			self: "alice",
			debts: []Debt{
				{DebtorID: "bob", CreditorID: "carol", Amount: 999},
				{DebtorID: "bob", CreditorID: "alice", Amount: 10},
			},
			want: map[string]int64{"bob": 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NetDebts(tt.self, tt.debts)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d counterparties, want %d: %v", len(got), len(tt.want), got)
			}
			for id, amount := range tt.want {
				if got[id] != amount {
					t.Errorf("balance with %s = %d, want %d", id, got[id], amount)
				}
			}
		})
	}
}

// Aggregation is a sum, so any permutation of the debt list must produce the
// same balances.
func TestNetDebtsCommutative(t *testing.T) {
	debts := []Debt{
		{DebtorID: "bob", CreditorID: "alice", Amount: 100},
		{DebtorID: "carol", CreditorID: "alice", Amount: 45},
		{DebtorID: "alice", CreditorID: "bob", Amount: 70},
		{DebtorID: "alice", CreditorID: "carol", Amount: 45},
		{DebtorID: "dave", CreditorID: "alice", Amount: 12},
		{DebtorID: "alice", CreditorID: "dave", Amount: 3},
		{DebtorID: "bob", CreditorID: "carol", Amount: 500},
	}

	want := NetDebts("alice", debts)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		shuffled := make([]Debt, len(debts))
		copy(shuffled, debts)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		got := NetDebts("alice", shuffled)
		if len(got) != len(want) {
			t.Fatalf("permutation %d: got %d counterparties, want %d", i, len(got), len(want))
		}
		for id, amount := range want {
			if got[id] != amount {
				t.Fatalf("permutation %d: balance with %s = %d, want %d", i, id, got[id], amount)
			}
		}
	}
}

func TestAggregate(t *testing.T) {
	txns := []*models.Transaction{
		{
			Amount:         300,
			PayerID:        "alice",
			ParticipantIDs: []string{"alice", "bob", "carol"},
		},
		{
			Amount:         90,
			PayerID:        "bob",
			ParticipantIDs: []string{"alice", "bob", "carol"},
		},
	}

	t.Run("from payer's view", func(t *testing.T) {
		net, expenditure := Aggregate("alice", txns)
		// Alice is owed 100 each from the first, owes 30 from the second.
		if net["bob"] != 70 {
			t.Errorf("balance with bob = %d, want 70", net["bob"])
		}
		if net["carol"] != 100 {
			t.Errorf("balance with carol = %d, want 100", net["carol"])
		}
		// Full 300 paid, plus her 30 share of Bob's expense.
		if expenditure != 330 {
			t.Errorf("expenditure = %d, want 330", expenditure)
		}
	})

	t.Run("from non-payer's view", func(t *testing.T) {
		net, expenditure := Aggregate("carol", txns)
		if net["alice"] != -100 {
			t.Errorf("balance with alice = %d, want -100", net["alice"])
		}
		if net["bob"] != -30 {
			t.Errorf("balance with bob = %d, want -30", net["bob"])
		}
		if expenditure != 130 {
			t.Errorf("expenditure = %d, want 130", expenditure)
		}
	})

	t.Run("self-funded expense leaves others untouched", func(t *testing.T) {
		solo := []*models.Transaction{{
			Amount:         500,
			PayerID:        "alice",
			ParticipantIDs: []string{"alice"},
		}}

		net, expenditure := Aggregate("alice", solo)
		if len(net) != 0 {
			t.Errorf("expected no balances, got %v", net)
		}
		if expenditure != 500 {
			t.Errorf("alice expenditure = %d, want 500", expenditure)
		}

		net, expenditure = Aggregate("bob", solo)
		if len(net) != 0 || expenditure != 0 {
			t.Errorf("bob: net=%v expenditure=%d, want empty and 0", net, expenditure)
		}
	})

	t.Run("uneven split uses rounded share", func(t *testing.T) {
		uneven := []*models.Transaction{{
			Amount:         100,
			PayerID:        "alice",
			ParticipantIDs: []string{"alice", "bob", "carol"},
		}}
		net, _ := Aggregate("bob", uneven)
		if net["alice"] != -33 {
			t.Errorf("balance with alice = %d, want -33", net["alice"])
		}
	})
}

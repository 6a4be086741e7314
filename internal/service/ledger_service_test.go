package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hisaab/hisaab/internal/models"
	"github.com/hisaab/hisaab/internal/storage"
	"github.com/hisaab/hisaab/internal/storage/sqlite"
)

func newTestStore(t *testing.T) storage.Store {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "hisaab-service-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := sqlite.New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

// newTestGroup creates users a, b, c and a group containing all of them.
func newTestGroup(t *testing.T, store storage.Store) (groupID string, a, b, c string) {
	t.Helper()
	ctx := context.Background()

	users := make([]string, 3)
	for i, name := range []string{"Alice", "Bob", "Carol"} {
		u := models.NewUser(name+"@example.com", name, "hash")
		if err := store.CreateUser(ctx, u); err != nil {
			t.Fatalf("CreateUser failed: %v", err)
		}
		users[i] = u.ID
	}

	group := &models.Group{Name: "Trip", CreatorID: users[0]}
	if err := store.CreateGroup(ctx, group); err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	for _, id := range users[1:] {
		if err := store.AddMember(ctx, group.ID, id); err != nil {
			t.Fatalf("AddMember failed: %v", err)
		}
	}

	return group.ID, users[0], users[1], users[2]
}

// Group {A,B,C}: A pays 300 split equally, so B and C each owe A 100. B then
// settles their 100 and disappears from A's balances.
func TestLedgerEndToEnd(t *testing.T) {
	store := newTestStore(t)
	svc := NewLedgerService(store, nil)
	ctx := context.Background()

	groupID, a, b, c := newTestGroup(t, store)

	_, err := svc.RecordTransaction(ctx, groupID, a, "Dinner", 300, a, true, []string{a, b, c})
	if err != nil {
		t.Fatalf("RecordTransaction failed: %v", err)
	}

	summary, err := svc.GetNetSummary(ctx, groupID, a)
	if err != nil {
		t.Fatalf("GetNetSummary failed: %v", err)
	}
	if len(summary.Balances) != 2 {
		t.Fatalf("got %d balances, want 2: %+v", len(summary.Balances), summary.Balances)
	}
	for _, bal := range summary.Balances {
		if bal.Amount != 100 {
			t.Errorf("balance with %s = %d, want 100", bal.CounterpartyID, bal.Amount)
		}
	}
	if summary.TotalExpenditure != 300 {
		t.Errorf("A's expenditure = %d, want 300", summary.TotalExpenditure)
	}

	// B settles up.
	if _, err := svc.RecordSettlement(ctx, groupID, b, 100, b, a); err != nil {
		t.Fatalf("RecordSettlement failed: %v", err)
	}

	summary, err = svc.GetNetSummary(ctx, groupID, a)
	if err != nil {
		t.Fatalf("GetNetSummary failed: %v", err)
	}
	if len(summary.Balances) != 1 {
		t.Fatalf("got %d balances, want 1: %+v", len(summary.Balances), summary.Balances)
	}
	if summary.Balances[0].CounterpartyID != c || summary.Balances[0].Amount != 100 {
		t.Errorf("remaining balance = %+v, want {%s 100}", summary.Balances[0], c)
	}

	// From B's side everything is settled.
	summary, err = svc.GetNetSummary(ctx, groupID, b)
	if err != nil {
		t.Fatalf("GetNetSummary failed: %v", err)
	}
	if len(summary.Balances) != 0 {
		t.Errorf("B should have no open balances, got %+v", summary.Balances)
	}
	if summary.TotalExpenditure != 100 {
		t.Errorf("B's expenditure = %d, want 100", summary.TotalExpenditure)
	}
}

func TestGetNetSummaryIdempotent(t *testing.T) {
	store := newTestStore(t)
	svc := NewLedgerService(store, nil)
	ctx := context.Background()

	groupID, a, b, c := newTestGroup(t, store)

	if _, err := svc.RecordTransaction(ctx, groupID, a, "Cab", 100, a, true, []string{a, b, c}); err != nil {
		t.Fatalf("RecordTransaction failed: %v", err)
	}
	if _, err := svc.RecordSettlement(ctx, groupID, b, 20, b, a); err != nil {
		t.Fatalf("RecordSettlement failed: %v", err)
	}

	first, err := svc.GetNetSummary(ctx, groupID, a)
	if err != nil {
		t.Fatalf("GetNetSummary failed: %v", err)
	}
	second, err := svc.GetNetSummary(ctx, groupID, a)
	if err != nil {
		t.Fatalf("GetNetSummary failed: %v", err)
	}

	if len(first.Balances) != len(second.Balances) {
		t.Fatalf("balance counts differ: %d then %d", len(first.Balances), len(second.Balances))
	}
	for i := range first.Balances {
		if first.Balances[i] != second.Balances[i] {
			t.Errorf("balance %d differs: %+v then %+v", i, first.Balances[i], second.Balances[i])
		}
	}
	if first.TotalExpenditure != second.TotalExpenditure {
		t.Errorf("expenditure differs: %d then %d", first.TotalExpenditure, second.TotalExpenditure)
	}
}

func TestLedgerValidation(t *testing.T) {
	store := newTestStore(t)
	svc := NewLedgerService(store, nil)
	ctx := context.Background()

	groupID, a, b, _ := newTestGroup(t, store)

	t.Run("zero amount rejected", func(t *testing.T) {
		_, err := svc.RecordTransaction(ctx, groupID, a, "Nothing", 0, a, true, []string{a, b})
		if !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("unequal split needs two participants", func(t *testing.T) {
		_, err := svc.RecordTransaction(ctx, groupID, a, "Solo", 100, a, false, []string{a})
		if !errors.Is(err, ErrInsufficientSplitParticipants) {
			t.Errorf("expected ErrInsufficientSplitParticipants, got %v", err)
		}
	})

	t.Run("equal split allows a single participant", func(t *testing.T) {
		if _, err := svc.RecordTransaction(ctx, groupID, a, "Self", 100, a, true, []string{a}); err != nil {
			t.Errorf("RecordTransaction failed: %v", err)
		}
	})

	t.Run("settlement amount must be positive", func(t *testing.T) {
		_, err := svc.RecordSettlement(ctx, groupID, a, 0, b, a)
		if !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("failed validation writes nothing", func(t *testing.T) {
		group, err := store.GetGroup(ctx, groupID)
		if err != nil {
			t.Fatalf("GetGroup failed: %v", err)
		}
		if group.TotalExpenses != 100 {
			t.Errorf("TotalExpenses = %d, want 100 (only the valid transaction)", group.TotalExpenses)
		}
	})
}

func TestLedgerMembershipGate(t *testing.T) {
	store := newTestStore(t)
	svc := NewLedgerService(store, nil)
	ctx := context.Background()

	groupID, a, b, _ := newTestGroup(t, store)

	outsider := models.NewUser("mallory@example.com", "Mallory", "hash")
	if err := store.CreateUser(ctx, outsider); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	t.Run("non-member reads fail as not found", func(t *testing.T) {
		if _, err := svc.GetActivityFeed(ctx, groupID, outsider.ID); !errors.Is(err, ErrNotAMember) {
			t.Errorf("GetActivityFeed: expected ErrNotAMember, got %v", err)
		}
		if _, err := svc.GetNetSummary(ctx, groupID, outsider.ID); !errors.Is(err, ErrNotAMember) {
			t.Errorf("GetNetSummary: expected ErrNotAMember, got %v", err)
		}
	})

	t.Run("non-member writes fail as not found", func(t *testing.T) {
		_, err := svc.RecordTransaction(ctx, groupID, outsider.ID, "Sneaky", 100, outsider.ID, true, []string{a, b})
		if !errors.Is(err, ErrNotAMember) {
			t.Errorf("RecordTransaction: expected ErrNotAMember, got %v", err)
		}
		_, err = svc.RecordSettlement(ctx, groupID, outsider.ID, 100, a, b)
		if !errors.Is(err, ErrNotAMember) {
			t.Errorf("RecordSettlement: expected ErrNotAMember, got %v", err)
		}
	})

	t.Run("missing group looks identical to missing membership", func(t *testing.T) {
		_, err := svc.GetNetSummary(ctx, "no-such-group", a)
		if !errors.Is(err, ErrNotAMember) {
			t.Errorf("expected ErrNotAMember, got %v", err)
		}
	})
}

func TestGetActivityFeed(t *testing.T) {
	store := newTestStore(t)
	svc := NewLedgerService(store, nil)
	ctx := context.Background()

	groupID, a, b, c := newTestGroup(t, store)

	// Timestamps are set explicitly so ordering is under test control.
	txns := []*models.Transaction{
		{GroupID: groupID, Name: "Dinner", Amount: 300, CreatorID: a, PayerID: a,
			ParticipantIDs: []string{a, b, c}, CreatedAt: 3},
		{GroupID: groupID, Name: "Cab", Amount: 90, CreatorID: b, PayerID: b,
			ParticipantIDs: []string{a, b, c}, CreatedAt: 1},
	}
	for _, txn := range txns {
		if err := store.CreateTransaction(ctx, txn); err != nil {
			t.Fatalf("CreateTransaction failed: %v", err)
		}
	}
	settlement := &models.Settlement{GroupID: groupID, PaidFromID: b, ReceivedByID: a, Amount: 100, CreatedAt: 2}
	if err := store.CreateSettlement(ctx, settlement); err != nil {
		t.Fatalf("CreateSettlement failed: %v", err)
	}

	feed, err := svc.GetActivityFeed(ctx, groupID, a)
	if err != nil {
		t.Fatalf("GetActivityFeed failed: %v", err)
	}
	if len(feed) != 3 {
		t.Fatalf("got %d entries, want 3", len(feed))
	}

	wantKinds := []models.ActivityKind{
		models.ActivityTransaction,
		models.ActivitySettlement,
		models.ActivityTransaction,
	}
	for i, entry := range feed {
		if entry.Kind != wantKinds[i] {
			t.Errorf("entry %d kind = %s, want %s", i, entry.Kind, wantKinds[i])
		}
	}
	if feed[0].Transaction.Name != "Dinner" {
		t.Errorf("newest entry = %s, want Dinner", feed[0].Transaction.Name)
	}
}

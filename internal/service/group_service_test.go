package service

import (
	"context"
	"errors"
	"testing"

	"github.com/hisaab/hisaab/internal/models"
)

func TestGroupLifecycle(t *testing.T) {
	store := newTestStore(t)
	groups := NewGroupService(store, nil)
	ctx := context.Background()

	alice := models.NewUser("alice@example.com", "Alice", "hash")
	bob := models.NewUser("bob@example.com", "Bob", "hash")
	for _, u := range []*models.User{alice, bob} {
		if err := store.CreateUser(ctx, u); err != nil {
			t.Fatalf("CreateUser failed: %v", err)
		}
	}

	group, err := groups.CreateGroup(ctx, alice.ID, "Roommates")
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	if group.ID == "" || group.CreatedAt == 0 {
		t.Error("expected generated ID and CreatedAt")
	}

	t.Run("creator sees group details", func(t *testing.T) {
		got, err := groups.GetGroupDetails(ctx, group.ID, alice.ID)
		if err != nil {
			t.Fatalf("GetGroupDetails failed: %v", err)
		}
		if got.Name != "Roommates" || len(got.MemberIDs) != 1 {
			t.Errorf("got %+v, want Roommates with 1 member", got)
		}
	})

	t.Run("non-member details denied as not found", func(t *testing.T) {
		_, err := groups.GetGroupDetails(ctx, group.ID, bob.ID)
		if !errors.Is(err, ErrNotAMember) {
			t.Errorf("expected ErrNotAMember, got %v", err)
		}
	})

	t.Run("joining an unknown group fails", func(t *testing.T) {
		_, err := groups.JoinGroup(ctx, "no-such-group", bob.ID)
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("join grants access", func(t *testing.T) {
		joined, err := groups.JoinGroup(ctx, group.ID, bob.ID)
		if err != nil {
			t.Fatalf("JoinGroup failed: %v", err)
		}
		if len(joined.MemberIDs) != 2 {
			t.Errorf("members = %v, want 2 entries", joined.MemberIDs)
		}
		if _, err := groups.GetGroupDetails(ctx, group.ID, bob.ID); err != nil {
			t.Errorf("GetGroupDetails after join failed: %v", err)
		}
	})

	t.Run("ListMyGroups", func(t *testing.T) {
		mine, err := groups.ListMyGroups(ctx, bob.ID)
		if err != nil {
			t.Fatalf("ListMyGroups failed: %v", err)
		}
		if len(mine) != 1 || mine[0].ID != group.ID {
			t.Errorf("got %+v, want [%s]", mine, group.ID)
		}
	})
}

// A member joining after an equal-split expense inherits a share of it.
func TestJoinGroupBackfillsEqualSplits(t *testing.T) {
	store := newTestStore(t)
	groups := NewGroupService(store, nil)
	ledgerSvc := NewLedgerService(store, nil)
	ctx := context.Background()

	groupID, a, b, _ := newTestGroup(t, store)

	if _, err := ledgerSvc.RecordTransaction(ctx, groupID, a, "Rent", 900, a, true, []string{a, b}); err != nil {
		t.Fatalf("RecordTransaction failed: %v", err)
	}

	late := models.NewUser("dave@example.com", "Dave", "hash")
	if err := store.CreateUser(ctx, late); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if _, err := groups.JoinGroup(ctx, groupID, late.ID); err != nil {
		t.Fatalf("JoinGroup failed: %v", err)
	}

	// The participant set is now {a, b, late}, so the late joiner owes a
	// third of the rent.
	summary, err := ledgerSvc.GetNetSummary(ctx, groupID, late.ID)
	if err != nil {
		t.Fatalf("GetNetSummary failed: %v", err)
	}
	if len(summary.Balances) != 1 {
		t.Fatalf("got %d balances, want 1: %+v", len(summary.Balances), summary.Balances)
	}
	if summary.Balances[0].CounterpartyID != a || summary.Balances[0].Amount != -300 {
		t.Errorf("balance = %+v, want {%s -300}", summary.Balances[0], a)
	}
}

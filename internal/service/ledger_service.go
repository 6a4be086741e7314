package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hisaab/hisaab/internal/ledger"
	"github.com/hisaab/hisaab/internal/models"
	"github.com/hisaab/hisaab/internal/storage"
)

// LedgerService exposes the four ledger operations: the two reads that derive
// state from the record stream (activity feed, net summary) and the two writes
// that append to it (record transaction, record settlement).
//
// Every operation is gated on the requester's group membership; a failed check
// is indistinguishable from a missing group.
type LedgerService struct {
	store  storage.Store
	logger *slog.Logger
}

// NewLedgerService creates a LedgerService with the given storage backend.
func NewLedgerService(store storage.Store, logger *slog.Logger) *LedgerService {
	if logger == nil {
		logger = slog.Default()
	}
	return &LedgerService{store: store, logger: logger}
}

// requireMembership resolves to ErrNotAMember unless the requester belongs to
// the group.
func (s *LedgerService) requireMembership(ctx context.Context, groupID, requesterID string) error {
	isMember, err := s.store.FindMembership(ctx, groupID, requesterID)
	if err != nil {
		return fmt.Errorf("failed to check membership: %w", err)
	}
	if !isMember {
		return ErrNotAMember
	}
	return nil
}

// GetActivityFeed returns the group's transactions and settlements merged into
// one feed, most recent first.
func (s *LedgerService) GetActivityFeed(ctx context.Context, groupID, requesterID string) ([]models.ActivityEntry, error) {
	if err := s.requireMembership(ctx, groupID, requesterID); err != nil {
		return nil, err
	}

	txns, err := s.store.ListTransactions(ctx, groupID, storage.TransactionFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	settlements, err := s.store.ListSettlements(ctx, groupID, storage.SettlementFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list settlements: %w", err)
	}

	feed := ledger.MergeActivity(txns, settlements)
	s.logger.Debug("activity feed computed",
		"group_id", groupID,
		"requester", requesterID,
		"entries", len(feed),
	)
	return feed, nil
}

// GetNetSummary recomputes the requester's net balances and total expenditure
// from the group's full record stream. Nothing is cached: the same records
// always reconcile to the same summary.
func (s *LedgerService) GetNetSummary(ctx context.Context, groupID, requesterID string) (models.NetSummary, error) {
	if err := s.requireMembership(ctx, groupID, requesterID); err != nil {
		return models.NetSummary{}, err
	}

	// All transactions are fetched, not just those the requester participates
	// in: a transaction the requester paid for counts toward their
	// expenditure even when they are outside its participant set.
	txns, err := s.store.ListTransactions(ctx, groupID, storage.TransactionFilter{})
	if err != nil {
		return models.NetSummary{}, fmt.Errorf("failed to list transactions: %w", err)
	}
	settlements, err := s.store.ListSettlements(ctx, groupID, storage.SettlementFilter{UserID: requesterID})
	if err != nil {
		return models.NetSummary{}, fmt.Errorf("failed to list settlements: %w", err)
	}

	summary := ledger.Reconcile(requesterID, txns, settlements)
	s.logger.Debug("net summary computed",
		"group_id", groupID,
		"requester", requesterID,
		"counterparties", len(summary.Balances),
	)
	return summary, nil
}

// RecordTransaction validates and appends a new expense. The insert and the
// group-total increment are one unit of work inside the store, so a partial
// write can never break the running-total invariant.
func (s *LedgerService) RecordTransaction(ctx context.Context, groupID, requesterID, name string, amount int64, payerID string, splitEqually bool, participantIDs []string) (*models.Transaction, error) {
	if err := s.requireMembership(ctx, groupID, requesterID); err != nil {
		return nil, err
	}
	if amount < 1 {
		return nil, ErrInvalidAmount
	}
	if !splitEqually && len(participantIDs) < 2 {
		return nil, ErrInsufficientSplitParticipants
	}

	txn := &models.Transaction{
		GroupID:        groupID,
		Name:           name,
		Amount:         amount,
		CreatorID:      requesterID,
		PayerID:        payerID,
		SplitEqually:   splitEqually,
		ParticipantIDs: participantIDs,
	}
	if err := s.store.CreateTransaction(ctx, txn); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.logger.Info("transaction recorded",
		"group_id", groupID,
		"transaction_id", txn.ID,
		"amount", amount,
		"payer_id", payerID,
		"participants", len(participantIDs),
	)
	return txn, nil
}

// RecordSettlement validates and appends a settlement payment. The group's
// running total is untouched: settlements move money between members, they
// are not expenses.
func (s *LedgerService) RecordSettlement(ctx context.Context, groupID, requesterID string, amount int64, paidFromID, receivedByID string) (*models.Settlement, error) {
	if err := s.requireMembership(ctx, groupID, requesterID); err != nil {
		return nil, err
	}
	if amount < 1 {
		return nil, ErrInvalidAmount
	}

	settlement := &models.Settlement{
		GroupID:      groupID,
		PaidFromID:   paidFromID,
		ReceivedByID: receivedByID,
		Amount:       amount,
	}
	if err := s.store.CreateSettlement(ctx, settlement); err != nil {
		return nil, fmt.Errorf("failed to create settlement: %w", err)
	}

	s.logger.Info("settlement recorded",
		"group_id", groupID,
		"settlement_id", settlement.ID,
		"amount", amount,
		"paid_from", paidFromID,
		"received_by", receivedByID,
	)
	return settlement, nil
}

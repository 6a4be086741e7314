package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hisaab/hisaab/internal/models"
	"github.com/hisaab/hisaab/internal/storage"
)

// CreateTransaction persists a transaction with its participant set and
// increments the group's running total, all inside a single database
// transaction. The total can therefore never drift from the sum of recorded
// expenses, even under concurrent writers or a crash between the two writes.
func (s *SQLiteStore) CreateTransaction(ctx context.Context, txn *models.Transaction) error {
	if txn.ID == "" {
		txn.ID = uuid.New().String()
	}
	if txn.CreatedAt == 0 {
		txn.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO transactions (id, group_id, name, amount, creator_id, payer_id, split_equally, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		txn.ID, txn.GroupID, txn.Name, txn.Amount, txn.CreatorID, txn.PayerID,
		boolToInt(txn.SplitEqually), txn.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	for _, userID := range txn.ParticipantIDs {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO transaction_participants (transaction_id, user_id) VALUES (?, ?)",
			txn.ID, userID,
		)
		if err != nil {
			return fmt.Errorf("failed to insert participant: %w", err)
		}
	}

	res, err := tx.ExecContext(ctx,
		"UPDATE groups SET total_expenses = total_expenses + ? WHERE id = ?",
		txn.Amount, txn.GroupID,
	)
	if err != nil {
		return fmt.Errorf("failed to increment group total: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("group %s: %w", txn.GroupID, storage.ErrNotFound)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// ListTransactions retrieves a group's transactions ordered by creation time
// ascending. With a participant filter, only transactions where that user is
// in the participant set are returned.
func (s *SQLiteStore) ListTransactions(ctx context.Context, groupID string, filter storage.TransactionFilter) ([]*models.Transaction, error) {
	query := `SELECT id, group_id, name, amount, creator_id, payer_id, split_equally, created_at
	          FROM transactions WHERE group_id = ?`
	args := []interface{}{groupID}

	if filter.ParticipantID != "" {
		query += ` AND id IN (SELECT transaction_id FROM transaction_participants WHERE user_id = ?)`
		args = append(args, filter.ParticipantID)
	}
	query += " ORDER BY created_at, id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var txns []*models.Transaction
	for rows.Next() {
		txn := &models.Transaction{}
		var splitEqually int
		if err := rows.Scan(&txn.ID, &txn.GroupID, &txn.Name, &txn.Amount,
			&txn.CreatorID, &txn.PayerID, &splitEqually, &txn.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txn.SplitEqually = splitEqually != 0
		txns = append(txns, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}

	for _, txn := range txns {
		participants, err := s.listParticipantIDs(ctx, txn.ID)
		if err != nil {
			return nil, err
		}
		txn.ParticipantIDs = participants
	}

	return txns, nil
}

// listParticipantIDs returns a transaction's participant set in insertion
// order.
func (s *SQLiteStore) listParticipantIDs(ctx context.Context, transactionID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT user_id FROM transaction_participants WHERE transaction_id = ? ORDER BY rowid",
		transactionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get participants: %w", err)
	}
	defer rows.Close()

	var participants []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		participants = append(participants, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate participants: %w", err)
	}

	return participants, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

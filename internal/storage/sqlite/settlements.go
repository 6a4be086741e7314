package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hisaab/hisaab/internal/models"
	"github.com/hisaab/hisaab/internal/storage"
)

// CreateSettlement persists a new settlement to the database.
func (s *SQLiteStore) CreateSettlement(ctx context.Context, settlement *models.Settlement) error {
	if settlement.ID == "" {
		settlement.ID = uuid.New().String()
	}
	if settlement.CreatedAt == 0 {
		settlement.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO settlements (id, group_id, paid_from_id, received_by_id, amount, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		settlement.ID, settlement.GroupID, settlement.PaidFromID, settlement.ReceivedByID,
		settlement.Amount, settlement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert settlement: %w", err)
	}

	return nil
}

// ListSettlements retrieves a group's settlements ordered by creation time
// ascending. With a user filter, only settlements that user paid or received
// are returned.
func (s *SQLiteStore) ListSettlements(ctx context.Context, groupID string, filter storage.SettlementFilter) ([]*models.Settlement, error) {
	query := `SELECT id, group_id, paid_from_id, received_by_id, amount, created_at
	          FROM settlements WHERE group_id = ?`
	args := []interface{}{groupID}

	if filter.UserID != "" {
		query += " AND (paid_from_id = ? OR received_by_id = ?)"
		args = append(args, filter.UserID, filter.UserID)
	}
	query += " ORDER BY created_at, id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list settlements: %w", err)
	}
	defer rows.Close()

	var settlements []*models.Settlement
	for rows.Next() {
		settlement := &models.Settlement{}
		if err := rows.Scan(&settlement.ID, &settlement.GroupID, &settlement.PaidFromID,
			&settlement.ReceivedByID, &settlement.Amount, &settlement.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan settlement: %w", err)
		}
		settlements = append(settlements, settlement)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate settlements: %w", err)
	}

	return settlements, nil
}

// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/hisaab/hisaab/internal/models"
)

// ErrNotFound is returned when a referenced record does not exist.
// Implementations wrap it so callers can test with errors.Is.
var ErrNotFound = errors.New("not found")

// TransactionFilter narrows ListTransactions results.
type TransactionFilter struct {
	// ParticipantID, when set, restricts to transactions where the given user
	// is in the participant set.
	ParticipantID string
}

// SettlementFilter narrows ListSettlements results.
type SettlementFilter struct {
	// UserID, when set, restricts to settlements the given user paid or
	// received.
	UserID string
}

// Store defines the persistence interface the services depend on.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	// CreateUser persists a new user account.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail retrieves a user by email. Returns (nil, nil) when no
	// such user exists.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID retrieves a user by ID. Returns (nil, nil) when no such
	// user exists.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// GetUsersByIDs retrieves multiple users keyed by ID. Missing users are
	// omitted from the result.
	GetUsersByIDs(ctx context.Context, ids []string) (map[string]*models.User, error)

	// CreateGroup persists a new group and enrolls the creator as its first
	// member. ID and CreatedAt are populated when unset.
	CreateGroup(ctx context.Context, group *models.Group) error

	// GetGroup retrieves a group with its member set. Returns an error
	// wrapping ErrNotFound when the group does not exist.
	GetGroup(ctx context.Context, groupID string) (*models.Group, error)

	// ListGroupsForUser retrieves every group the user is a member of.
	ListGroupsForUser(ctx context.Context, userID string) ([]*models.Group, error)

	// FindMembership reports whether the user is a member of the group.
	FindMembership(ctx context.Context, groupID, userID string) (bool, error)

	// AddMember enrolls the user in the group and, within the same unit of
	// work, adds them to the participant set of every existing equal-split
	// transaction in the group. Adding an existing member is a no-op.
	AddMember(ctx context.Context, groupID, userID string) error

	// CreateTransaction persists a transaction and increments the group's
	// running total by its amount. Both writes happen inside a single
	// database transaction so the total can never drift from the recorded
	// expenses.
	CreateTransaction(ctx context.Context, txn *models.Transaction) error

	// ListTransactions retrieves a group's transactions ordered by creation
	// time ascending.
	ListTransactions(ctx context.Context, groupID string, filter TransactionFilter) ([]*models.Transaction, error)

	// CreateSettlement persists a settlement. The group total is not touched:
	// settlements move money between members, they are not expenses.
	CreateSettlement(ctx context.Context, settlement *models.Settlement) error

	// ListSettlements retrieves a group's settlements ordered by creation
	// time ascending.
	ListSettlements(ctx context.Context, groupID string, filter SettlementFilter) ([]*models.Settlement, error)

	// Close releases any resources held by the store.
	Close() error
}

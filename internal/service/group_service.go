package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hisaab/hisaab/internal/models"
	"github.com/hisaab/hisaab/internal/storage"
)

// GroupService manages groups and their membership.
type GroupService struct {
	store  storage.Store
	logger *slog.Logger
}

// NewGroupService creates a GroupService with the given storage backend.
func NewGroupService(store storage.Store, logger *slog.Logger) *GroupService {
	if logger == nil {
		logger = slog.Default()
	}
	return &GroupService{store: store, logger: logger}
}

// CreateGroup creates a group with the requester as creator and first member.
func (s *GroupService) CreateGroup(ctx context.Context, requesterID, name string) (*models.Group, error) {
	group := &models.Group{
		Name:      name,
		CreatorID: requesterID,
	}
	if err := s.store.CreateGroup(ctx, group); err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	s.logger.Info("group created", "group_id", group.ID, "creator_id", requesterID)
	return group, nil
}

// GetGroupDetails returns the group with its member set. Non-members get the
// same error as a missing group.
func (s *GroupService) GetGroupDetails(ctx context.Context, groupID, requesterID string) (*models.Group, error) {
	isMember, err := s.store.FindMembership(ctx, groupID, requesterID)
	if err != nil {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}
	if !isMember {
		return nil, ErrNotAMember
	}

	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotAMember
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}
	return group, nil
}

// ListMyGroups returns every group the requester belongs to.
func (s *GroupService) ListMyGroups(ctx context.Context, requesterID string) ([]*models.Group, error) {
	groups, err := s.store.ListGroupsForUser(ctx, requesterID)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	return groups, nil
}

// JoinGroup enrolls the requester in the group (the invite-link flow).
// Joining is idempotent, and the store retroactively adds the joiner to every
// equal-split transaction recorded before they arrived.
func (s *GroupService) JoinGroup(ctx context.Context, groupID, requesterID string) (*models.Group, error) {
	if err := s.store.AddMember(ctx, groupID, requesterID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to join group: %w", err)
	}

	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	s.logger.Info("user joined group", "group_id", groupID, "user_id", requesterID)
	return group, nil
}

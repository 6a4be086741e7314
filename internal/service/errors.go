package service

import "errors"

var (
	// ErrNotAMember is returned when the requester is not a member of the
	// group. Missing groups produce the same error so non-members cannot
	// probe for group existence.
	ErrNotAMember = errors.New("group not found")

	// ErrInvalidAmount is returned when a monetary amount is below one minor
	// unit.
	ErrInvalidAmount = errors.New("amount must be at least 1")

	// ErrInsufficientSplitParticipants is returned when an unequal split is
	// requested with fewer than two participants.
	ErrInsufficientSplitParticipants = errors.New("select at least two users to split the amount between")

	// ErrNotFound is returned when a referenced group or user does not exist.
	ErrNotFound = errors.New("not found")
)

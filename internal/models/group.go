package models

// Group represents a set of users who split expenses with each other.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string

	// Name is the display name of the group (e.g., "Goa Trip", "Flat 4B").
	Name string

	// CreatorID is the user who created the group. The creator is always a
	// member.
	CreatorID string

	// TotalExpenses is a running sum, in minor currency units, of every
	// transaction amount ever recorded in the group. It is maintained by an
	// atomic increment at transaction-creation time and is never decremented;
	// settlements do not change it.
	TotalExpenses int64

	// MemberIDs is the set of user IDs currently in the group.
	MemberIDs []string

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64
}

// HasMember reports whether the given user belongs to the group.
func (g *Group) HasMember(userID string) bool {
	for _, id := range g.MemberIDs {
		if id == userID {
			return true
		}
	}
	return false
}

package club

import (
	"context"
	"errors"
)

// ErrDuplicate signals that a member record already exists for the chat.
var ErrDuplicate = errors.New("club: member already exists")

// Store is the authoritative membership list.
type Store interface {
	// IsMember reports whether the chat has completed enrollment.
	IsMember(ctx context.Context, chatID int64) (bool, error)
	// Find returns the member record, or nil when the chat is not enrolled.
	Find(ctx context.Context, chatID int64) (*Member, error)
	// Append commits a new member. Returns ErrDuplicate when a record for
	// the same chat already exists; the existing record is left untouched.
	Append(ctx context.Context, m Member) error
	// Count returns the number of enrolled members.
	Count(ctx context.Context) (int64, error)
}

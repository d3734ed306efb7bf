package club

import (
	"strings"
	"time"
)

// Member is one club enrollment. Records are append-only: created exactly
// once per chat, never mutated or deleted afterwards.
type Member struct {
	ChatID   int64     `db:"chat_id"`
	Name     string    `db:"name"`
	Phone    string    `db:"phone"`
	Email    string    `db:"email"`
	JoinedAt time.Time `db:"joined_at"`
}

// Contact returns the preferred contact line for preorder cards:
// phone when present, e-mail otherwise.
func (m Member) Contact() string {
	if strings.TrimSpace(m.Phone) != "" {
		return m.Phone
	}
	return m.Email
}
